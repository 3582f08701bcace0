package inversion

// Document is a parsed spec document.
type Document struct {
	InversionAPISpec Spec
}

// Spec is the body of a document under the "inversionApiSpec" key.
type Spec struct {
	ID        string
	Title     string
	Revision  int
	ErrorType string

	// Types holds the top-level named types in document order.
	Types []NamedType
}

// NamedType is a top-level entry of Spec.Types.
type NamedType struct {
	Name string `validate:"required"`
	Type Type   `validate:"required"`
}

// Lookup returns the top-level type with the given name, or nil.
func (s *Spec) Lookup(name string) Type {
	for _, nt := range s.Types {
		if nt.Name == name {
			return nt.Type
		}
	}
	return nil
}

// Names returns the top-level type names in document order.
func (s *Spec) Names() []string {
	names := make([]string, len(s.Types))
	for i, nt := range s.Types {
		names[i] = nt.Name
	}
	return names
}
