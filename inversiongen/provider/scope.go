package provider

import "github.com/broady/inversion/inversiongen/ir"

// scope collects the items of one namespace and tracks the type and module
// names declared in it.
type scope struct {
	name    string
	items   []ir.Item
	types   nameSet
	modules nameSet
}

func newScope(name string) *scope {
	return &scope{name: name, types: newNameSet(), modules: newNameSet()}
}

// add appends a generated child item and records its names.
func (s *scope) add(b *moduleBuilder, item ir.Item) {
	s.claimItem(b, item)
	s.items = append(s.items, item)
}

// primitiveNames are Rust type names the emitter uses for primitives. A
// declaration with one of these names hides the primitive for its whole module.
var primitiveNames = map[string]bool{"String": true}

func (s *scope) claimItem(b *moduleBuilder, item ir.Item) {
	if item.Decl != nil {
		name := item.Decl.DeclName()
		if !s.types.claim(name) {
			b.collision(name, "type %s is declared more than once in %s", name, s.label())
		}
		if primitiveNames[name] {
			b.collision(name, "type %s in %s shadows the %s primitive", name, s.label(), name)
		}
	}
	if item.Namespace != nil && !s.modules.claim(item.Namespace.Name) {
		b.collision(item.Decl.DeclName(), "module %s is declared more than once in %s", item.Namespace.Name, s.label())
	}
}

func (s *scope) label() string {
	if s.name == "" {
		return "the top level"
	}
	return "module " + s.name
}

// namespace returns the collected namespace, or nil when nothing was added.
func (s *scope) namespace() *ir.Namespace {
	if len(s.items) == 0 {
		return nil
	}
	return &ir.Namespace{Name: s.name, Items: s.items}
}

type nameSet map[string]struct{}

func newNameSet() nameSet { return make(nameSet) }

// claim records name and reports whether it was new.
func (s nameSet) claim(name string) bool {
	if _, ok := s[name]; ok {
		return false
	}
	s[name] = struct{}{}
	return true
}
