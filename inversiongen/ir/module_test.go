package ir

import (
	"reflect"
	"strings"
	"testing"
)

// sampleModule mirrors the declarations generated for a struct with a nested
// struct member:
//
//	pub mod call_two { pub type Yay = bool; pub struct Sub { .. } }
//	pub struct CallTwo { yay: call_two::Yay, sub: call_two::Sub }
func sampleModule() *Module {
	sub := &StructDecl{
		Name:   "Sub",
		Fields: []FieldDecl{{Name: "one", SpecName: "one", Index: 0, Type: Bool()}},
	}
	ns := &Namespace{
		Name: "call_two",
		Items: []Item{
			{Decl: &AliasDecl{Name: "Yay", Underlying: PrimitiveBool}},
			{Decl: sub},
		},
	}
	m := &Module{Title: "Test Api"}
	m.AddItem(Item{Decl: &AliasDecl{Name: "Error", Underlying: PrimitiveString}})
	m.AddItem(Item{Namespace: ns, Decl: &StructDecl{
		Name: "CallTwo",
		Fields: []FieldDecl{
			{Name: "yay", SpecName: "yay", Index: 0, Type: Path("call_two", "Yay")},
			{Name: "sub", SpecName: "sub", Index: 1, Type: Path("call_two", "Sub")},
		},
	}})
	return m
}

func TestModule_AddItemDropsZero(t *testing.T) {
	m := &Module{}
	m.AddItem(Item{})
	if len(m.Items) != 0 {
		t.Errorf("expected zero item to be dropped, got %d items", len(m.Items))
	}
}

func TestModule_AddWarning(t *testing.T) {
	m := &Module{}
	m.AddWarning(Warning{Code: WarnUnknownType, Message: "mystery has unsupported type \"f64\""})

	if len(m.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(m.Warnings))
	}
	if got := m.Warnings[0].String(); !strings.HasPrefix(got, "unknown_type: ") {
		t.Errorf("Warning.String() = %q", got)
	}
}

func TestModule_FindDecl(t *testing.T) {
	m := sampleModule()

	tests := []struct {
		path []string
		want string
	}{
		{[]string{"Error"}, "Error"},
		{[]string{"CallTwo"}, "CallTwo"},
		{[]string{"call_two", "Sub"}, "Sub"},
		{[]string{"call_two", "Yay"}, "Yay"},
	}
	for _, tt := range tests {
		d := m.FindDecl(tt.path...)
		if d == nil {
			t.Errorf("FindDecl(%v) = nil", tt.path)
			continue
		}
		if d.DeclName() != tt.want {
			t.Errorf("FindDecl(%v) = %s, want %s", tt.path, d.DeclName(), tt.want)
		}
	}

	for _, path := range [][]string{{}, {"Missing"}, {"nope", "Sub"}, {"call_two", "Missing"}} {
		if d := m.FindDecl(path...); d != nil {
			t.Errorf("FindDecl(%v) = %v, want nil", path, d)
		}
	}
}

func TestModule_WalkOrder(t *testing.T) {
	m := sampleModule()

	var got []string
	m.Walk(func(path []string, d Decl) bool {
		got = append(got, strings.Join(append(path, d.DeclName()), "::"))
		return true
	})

	want := []string{"Error", "call_two::Yay", "call_two::Sub", "CallTwo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
}

func TestModule_WalkStops(t *testing.T) {
	m := sampleModule()

	visits := 0
	m.Walk(func([]string, Decl) bool {
		visits++
		return visits < 2
	})
	if visits != 2 {
		t.Errorf("expected Walk to stop after 2 visits, got %d", visits)
	}
}

func TestModule_Stats(t *testing.T) {
	s := sampleModule().Stats()
	want := Stats{Aliases: 2, Structs: 2, Namespaces: 1}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
	if s.Decls() != 4 {
		t.Errorf("Decls() = %d, want 4", s.Decls())
	}
}

func TestNamespace_LookupNil(t *testing.T) {
	var ns *Namespace
	if ns.Lookup("x") != nil {
		t.Error("nil namespace Lookup should return nil")
	}
}
