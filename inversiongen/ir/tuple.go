package ir

// TupleDecl names a positional composite.
type TupleDecl struct {
	// Name is the declared type name.
	Name string

	// Elements are ordered by their spec index.
	Elements []TupleElement

	// Documentation for this type.
	Documentation string
}

// Kind returns KindTuple.
func (d *TupleDecl) Kind() DeclKind { return KindTuple }

// DeclName returns the tuple's name.
func (d *TupleDecl) DeclName() string { return d.Name }

// Doc returns the tuple's documentation.
func (d *TupleDecl) Doc() string { return d.Documentation }

func (*TupleDecl) sealedDecl() {}

// TupleElement is one slot of a tuple.
type TupleElement struct {
	// Index is the slot's spec index.
	Index int

	// Type is the slot type.
	Type TypeRef

	// Documentation is carried as an inline annotation, not a declaration.
	Documentation string
}
