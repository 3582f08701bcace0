package ir

// PathRef references a declaration placed in a child namespace of the
// declaration that uses it, e.g. call_two::Sub.
type PathRef struct {
	// Namespace is the child namespace name (snake case of the parent's name).
	Namespace string

	// Name is the referenced declaration's name within Namespace.
	Name string
}

// RefKind returns RefPath.
func (*PathRef) RefKind() RefKind { return RefPath }

func (*PathRef) sealedRef() {}

// Path returns a PathRef for name inside namespace.
func Path(namespace, name string) *PathRef {
	return &PathRef{Namespace: namespace, Name: name}
}
