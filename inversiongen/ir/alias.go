package ir

// AliasDecl names a primitive type (pub type Name = u32).
type AliasDecl struct {
	// Name is the declared type name.
	Name string

	// Underlying is the aliased primitive.
	Underlying PrimitiveKind

	// Documentation for this type.
	Documentation string
}

// Kind returns KindAlias.
func (d *AliasDecl) Kind() DeclKind { return KindAlias }

// DeclName returns the alias's name.
func (d *AliasDecl) DeclName() string { return d.Name }

// Doc returns the alias's documentation.
func (d *AliasDecl) Doc() string { return d.Documentation }

func (*AliasDecl) sealedDecl() {}
