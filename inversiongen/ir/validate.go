package ir

import "fmt"

// ValidationError represents a structural issue in a module.
type ValidationError struct {
	// Code is a machine-readable error identifier.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// Validate checks the module for structural issues:
//   - every declaration has a name
//   - every path reference resolves to a declaration in the referring
//     item's namespace
//
// Returns all validation errors found (not just the first).
func (m *Module) Validate() []error {
	var errs []error
	var check func(scope string, items []Item)
	check = func(scope string, items []Item) {
		for _, it := range items {
			if it.Namespace != nil {
				check(scope+it.Namespace.Name+"::", it.Namespace.Items)
			}
			if it.Decl == nil {
				continue
			}
			if it.Decl.DeclName() == "" {
				errs = append(errs, &ValidationError{
					Code:    "empty_name",
					Message: fmt.Sprintf("%s declaration in %q has no name", it.Decl.Kind(), scope),
				})
				continue
			}
			for _, ref := range refsOf(it.Decl) {
				p, ok := ref.(*PathRef)
				if !ok {
					continue
				}
				if it.Namespace == nil || it.Namespace.Name != p.Namespace || it.Namespace.Lookup(p.Name) == nil {
					errs = append(errs, &ValidationError{
						Code:    "unresolved_path",
						Message: fmt.Sprintf("%s%s references %s::%s", scope, it.Decl.DeclName(), p.Namespace, p.Name),
					})
				}
			}
		}
	}
	check("", m.Items)
	return errs
}

func refsOf(d Decl) []TypeRef {
	switch d := d.(type) {
	case *TupleDecl:
		refs := make([]TypeRef, len(d.Elements))
		for i, e := range d.Elements {
			refs[i] = e.Type
		}
		return refs
	case *StructDecl:
		refs := make([]TypeRef, len(d.Fields))
		for i, f := range d.Fields {
			refs[i] = f.Type
		}
		return refs
	}
	return nil
}
