// Package ir defines the declaration tree produced from a spec document.
// The tree is language-agnostic: generators render it into target language
// source code. It is built fresh for every generation and never mutated after
// construction.
package ir

// DeclKind identifies the category of a declaration.
type DeclKind int

const (
	KindAlias  DeclKind = iota // Named alias of a primitive
	KindTuple                  // Positional composite
	KindStruct                 // Composite with named fields
)

// String returns the string representation of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case KindAlias:
		return "Alias"
	case KindTuple:
		return "Tuple"
	case KindStruct:
		return "Struct"
	default:
		return "Unknown"
	}
}

// Decl is a named type declaration.
// The concrete type is one of *AliasDecl, *TupleDecl or *StructDecl.
type Decl interface {
	// Kind returns the declaration kind for type switching.
	Kind() DeclKind

	// DeclName returns the declared type name.
	DeclName() string

	// Doc returns the documentation string, "" when absent.
	Doc() string

	// Ensure only types in this package can implement Decl.
	sealedDecl()
}

// RefKind identifies the category of a type reference.
type RefKind int

const (
	RefPrimitive RefKind = iota // Inline primitive (bool, u32, string)
	RefPath                     // Path to a declaration in a child namespace
)

// String returns the string representation of the reference kind.
func (k RefKind) String() string {
	switch k {
	case RefPrimitive:
		return "Primitive"
	case RefPath:
		return "Path"
	default:
		return "Unknown"
	}
}

// TypeRef is the type of a tuple element or struct field.
// The concrete type is one of *PrimitiveRef or *PathRef.
type TypeRef interface {
	// RefKind returns the reference kind for type switching.
	RefKind() RefKind

	sealedRef()
}
