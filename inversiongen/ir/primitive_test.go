package ir

import "testing"

func TestPrimitiveKind_String(t *testing.T) {
	tests := []struct {
		kind PrimitiveKind
		want string
	}{
		{PrimitiveBool, "Bool"},
		{PrimitiveU32, "U32"},
		{PrimitiveString, "String"},
		{PrimitiveKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PrimitiveKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPrimitiveConstructors(t *testing.T) {
	tests := []struct {
		name string
		ref  *PrimitiveRef
		want PrimitiveKind
	}{
		{"Bool", Bool(), PrimitiveBool},
		{"U32", U32(), PrimitiveU32},
		{"String", String(), PrimitiveString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ref.PrimitiveKind != tt.want {
				t.Errorf("%s().PrimitiveKind = %v, want %v", tt.name, tt.ref.PrimitiveKind, tt.want)
			}
			if tt.ref.RefKind() != RefPrimitive {
				t.Errorf("%s().RefKind() = %v, want RefPrimitive", tt.name, tt.ref.RefKind())
			}
		})
	}
}

func TestPathConstructor(t *testing.T) {
	p := Path("call_two", "Sub")
	if p.Namespace != "call_two" || p.Name != "Sub" {
		t.Errorf("Path() = %+v", p)
	}
	if p.RefKind() != RefPath {
		t.Errorf("PathRef.RefKind() = %v, want RefPath", p.RefKind())
	}
}
