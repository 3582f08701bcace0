package ir

// PrimitiveKind identifies a primitive type.
type PrimitiveKind int

const (
	PrimitiveBool   PrimitiveKind = iota
	PrimitiveU32                  // Unsigned 32-bit integer
	PrimitiveString               // Owned UTF-8 string
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "Bool"
	case PrimitiveU32:
		return "U32"
	case PrimitiveString:
		return "String"
	default:
		return "Unknown"
	}
}

// PrimitiveRef is an inline reference to a primitive type.
type PrimitiveRef struct {
	PrimitiveKind PrimitiveKind
}

// RefKind returns RefPrimitive.
func (*PrimitiveRef) RefKind() RefKind { return RefPrimitive }

func (*PrimitiveRef) sealedRef() {}

// Convenience constructors for the primitives.

// Bool returns a PrimitiveRef for bool.
func Bool() *PrimitiveRef {
	return &PrimitiveRef{PrimitiveKind: PrimitiveBool}
}

// U32 returns a PrimitiveRef for u32.
func U32() *PrimitiveRef {
	return &PrimitiveRef{PrimitiveKind: PrimitiveU32}
}

// String returns a PrimitiveRef for string.
func String() *PrimitiveRef {
	return &PrimitiveRef{PrimitiveKind: PrimitiveString}
}
