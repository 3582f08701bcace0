package ir

// Module is the complete declaration tree for one spec document.
type Module struct {
	// ID, Title and Revision are copied from the spec header.
	ID       string
	Title    string
	Revision int

	// Items are top-level items in spec document order.
	Items []Item

	// Warnings contains non-fatal issues encountered while building the module.
	Warnings []Warning
}

// Item pairs a declaration with the namespace holding its inline
// dependencies. Either part may be nil: a primitive alias has no namespace,
// and an unsupported type produces neither.
//
// Generators emit the namespace before the declaration.
type Item struct {
	Namespace *Namespace
	Decl      Decl
}

// IsZero reports whether the item carries nothing to emit.
func (it Item) IsZero() bool {
	return it.Namespace == nil && it.Decl == nil
}

// Namespace groups the declarations generated for the composite members of
// one parent type.
type Namespace struct {
	// Name is the snake case form of the parent type's name.
	Name string

	// Items are member declarations in member order.
	Items []Item
}

// Lookup returns the declaration named name directly inside the namespace.
// Returns nil if not found.
func (ns *Namespace) Lookup(name string) Decl {
	if ns == nil {
		return nil
	}
	for _, it := range ns.Items {
		if it.Decl != nil && it.Decl.DeclName() == name {
			return it.Decl
		}
	}
	return nil
}

// AddItem appends a top-level item. Zero items are dropped.
func (m *Module) AddItem(it Item) {
	if it.IsZero() {
		return
	}
	m.Items = append(m.Items, it)
}

// AddWarning adds a warning to the module.
func (m *Module) AddWarning(w Warning) {
	m.Warnings = append(m.Warnings, w)
}

// FindDecl looks up a declaration by path. The last element is the
// declaration name; the preceding elements are namespace names from the top
// level down, e.g. FindDecl("call_two", "Sub"). Returns nil if not found.
func (m *Module) FindDecl(path ...string) Decl {
	if len(path) == 0 {
		return nil
	}
	items := m.Items
	for _, seg := range path[:len(path)-1] {
		ns := findNamespace(items, seg)
		if ns == nil {
			return nil
		}
		items = ns.Items
	}
	for _, it := range items {
		if it.Decl != nil && it.Decl.DeclName() == path[len(path)-1] {
			return it.Decl
		}
	}
	return nil
}

func findNamespace(items []Item, name string) *Namespace {
	for _, it := range items {
		if it.Namespace != nil && it.Namespace.Name == name {
			return it.Namespace
		}
	}
	return nil
}

// Walk visits every declaration depth-first in emission order: an item's
// namespace contents before the item's declaration. path holds the enclosing
// namespace names. Walk stops early when fn returns false.
func (m *Module) Walk(fn func(path []string, d Decl) bool) {
	walkItems(nil, m.Items, fn)
}

func walkItems(path []string, items []Item, fn func([]string, Decl) bool) bool {
	for _, it := range items {
		if it.Namespace != nil {
			inner := append(path[:len(path):len(path)], it.Namespace.Name)
			if !walkItems(inner, it.Namespace.Items, fn) {
				return false
			}
		}
		if it.Decl != nil && !fn(path, it.Decl) {
			return false
		}
	}
	return true
}

// Stats counts the declarations in a module.
type Stats struct {
	Aliases    int
	Tuples     int
	Structs    int
	Namespaces int
}

// Decls returns the total number of declarations.
func (s Stats) Decls() int {
	return s.Aliases + s.Tuples + s.Structs
}

// Stats returns declaration and namespace counts for the module.
func (m *Module) Stats() Stats {
	var s Stats
	var count func(items []Item)
	count = func(items []Item) {
		for _, it := range items {
			if it.Namespace != nil {
				s.Namespaces++
				count(it.Namespace.Items)
			}
			if it.Decl == nil {
				continue
			}
			switch it.Decl.Kind() {
			case KindAlias:
				s.Aliases++
			case KindTuple:
				s.Tuples++
			case KindStruct:
				s.Structs++
			}
		}
	}
	count(m.Items)
	return s
}
