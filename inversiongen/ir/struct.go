package ir

// StructDecl names a composite with named fields.
type StructDecl struct {
	// Name is the declared type name.
	Name string

	// Fields are ordered by their spec index. This order is used both for the
	// member list and for serialization.
	Fields []FieldDecl

	// Serialize requests a positional serializer that encodes the field values
	// as a tuple in Fields order.
	Serialize bool

	// Documentation for this type.
	Documentation string
}

// Kind returns KindStruct.
func (d *StructDecl) Kind() DeclKind { return KindStruct }

// DeclName returns the struct's name.
func (d *StructDecl) DeclName() string { return d.Name }

// Doc returns the struct's documentation.
func (d *StructDecl) Doc() string { return d.Documentation }

func (*StructDecl) sealedDecl() {}

// SerializationOrder returns the field names in the order the serializer
// encodes them. It is always the member order.
func (d *StructDecl) SerializationOrder() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// FieldDecl represents a single field within a struct.
type FieldDecl struct {
	// Name is the field identifier (snake case of the spec field name).
	Name string

	// SpecName is the field name as written in the spec.
	SpecName string

	// Index is the field's spec index.
	Index int

	// Type is the field's type.
	Type TypeRef

	// Documentation for this field.
	Documentation string
}
