// Package inversion defines the in-memory model of an Inversion API spec document.
//
// A Document is the parsed form of the JSON or YAML specification that the
// generators in inversiongen consume. The model is read-only after parsing:
// generators walk it but never mutate it.
package inversion

// Kind identifies the variant of a spec Type.
type Kind int

const (
	KindUnknown Kind = iota
	KindBool
	KindU32
	KindString
	KindTuple
	KindStruct
)

// String returns the discriminator used for the kind in spec documents.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU32:
		return "u32"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Type is a node of the spec type tree.
// The concrete type is one of *Bool, *U32, *String, *Tuple, *Struct or *Unknown.
type Type interface {
	// Kind returns the variant for type switching.
	Kind() Kind

	// Documentation returns the doc string, or "" when the spec omits it.
	Documentation() string

	sealed()
}

// Bool is a boolean leaf type.
type Bool struct {
	Doc string
}

func (*Bool) Kind() Kind              { return KindBool }
func (t *Bool) Documentation() string { return t.Doc }
func (*Bool) sealed()                 {}

// U32 is an unsigned 32-bit integer leaf type.
type U32 struct {
	Doc string
}

func (*U32) Kind() Kind              { return KindU32 }
func (t *U32) Documentation() string { return t.Doc }
func (*U32) sealed()                 {}

// String is a UTF-8 string leaf type.
type String struct {
	Doc string
}

func (*String) Kind() Kind              { return KindString }
func (t *String) Documentation() string { return t.Doc }
func (*String) sealed()                 {}

// Tuple is a positional composite type.
type Tuple struct {
	Doc string

	// Content holds the elements in document order. Generators order them by Index.
	Content []Element
}

func (*Tuple) Kind() Kind              { return KindTuple }
func (t *Tuple) Documentation() string { return t.Doc }
func (*Tuple) sealed()                 {}

// Element is one slot of a Tuple.
type Element struct {
	Index   int  `validate:"gte=0"`
	Content Type `validate:"required"`
}

// Struct is a composite type with named fields.
type Struct struct {
	Doc string

	// Content holds the fields in document order. Generators order them by Index;
	// fields sharing an index keep their document order.
	Content []Field
}

func (*Struct) Kind() Kind              { return KindStruct }
func (t *Struct) Documentation() string { return t.Doc }
func (*Struct) sealed()                 {}

// Field is one named member of a Struct.
type Field struct {
	Name    string `validate:"required"`
	Index   int    `validate:"gte=0"`
	Content Type   `validate:"required"`
}

// Unknown is a type whose discriminator is not one of the known kinds.
// Parsing keeps it so that generators can report it instead of failing.
type Unknown struct {
	// Name is the discriminator as written in the document.
	Name string
	Doc  string
}

func (*Unknown) Kind() Kind              { return KindUnknown }
func (t *Unknown) Documentation() string { return t.Doc }
func (*Unknown) sealed()                 {}

// IsPrimitive reports whether t is a leaf type (Bool, U32 or String).
func IsPrimitive(t Type) bool {
	switch t.(type) {
	case *Bool, *U32, *String:
		return true
	default:
		return false
	}
}
