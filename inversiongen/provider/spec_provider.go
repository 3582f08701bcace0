// Package provider converts parsed spec documents into the declaration tree
// consumed by generators.
package provider

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/broady/inversion"
	"github.com/broady/inversion/internal/casing"
	"github.com/broady/inversion/inversiongen/ir"
)

// SpecProvider builds declaration trees from spec documents.
type SpecProvider struct{}

// SpecInputOptions configures declaration generation.
type SpecInputOptions struct {
	// Naming selects the naming policy for nested struct field types.
	Naming Naming

	// Serialize marks generated structs for a positional serializer.
	Serialize bool
}

// BuildModule converts doc into a Module. Top-level types keep document order;
// members of every tuple and struct are ordered by index, with ties kept in
// document order.
//
// Unsupported type variants produce no declaration and an unknown_type warning.
// The only error returned is ctx's.
func (p *SpecProvider) BuildModule(ctx context.Context, doc *inversion.Document, opts SpecInputOptions) (*ir.Module, error) {
	var spec inversion.Spec
	if doc != nil {
		spec = doc.InversionAPISpec
	}
	b := &moduleBuilder{
		opts: opts,
		module: &ir.Module{
			ID:       spec.ID,
			Title:    spec.Title,
			Revision: spec.Revision,
		},
	}

	root := newScope("")
	for _, nt := range spec.Types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := casing.Pascal(nt.Name)
		item := b.genOneType(name, nt.Type)
		root.claimItem(b, item)
		b.module.AddItem(item)
	}
	return b.module, nil
}

// moduleBuilder accumulates warnings while the tree is generated.
type moduleBuilder struct {
	opts   SpecInputOptions
	module *ir.Module
}

// genOneType generates the declaration for one named type together with the
// namespace holding declarations for its composite members.
func (b *moduleBuilder) genOneType(name string, t inversion.Type) ir.Item {
	modName := casing.Snake(name)

	switch t := t.(type) {
	case *inversion.Bool:
		return ir.Item{Decl: &ir.AliasDecl{Name: name, Underlying: ir.PrimitiveBool, Documentation: t.Doc}}
	case *inversion.U32:
		return ir.Item{Decl: &ir.AliasDecl{Name: name, Underlying: ir.PrimitiveU32, Documentation: t.Doc}}
	case *inversion.String:
		return ir.Item{Decl: &ir.AliasDecl{Name: name, Underlying: ir.PrimitiveString, Documentation: t.Doc}}

	case *inversion.Tuple:
		ns := newScope(modName)
		decl := &ir.TupleDecl{Name: name, Documentation: t.Doc}
		for _, e := range sortedElements(t.Content) {
			ref := b.member(ns, name+strconv.Itoa(e.Index), e.Content)
			if ref == nil {
				continue
			}
			decl.Elements = append(decl.Elements, ir.TupleElement{
				Index:         e.Index,
				Type:          ref,
				Documentation: docOf(e.Content),
			})
		}
		return ir.Item{Namespace: ns.namespace(), Decl: decl}

	case *inversion.Struct:
		ns := newScope(modName)
		fields := newNameSet()
		decl := &ir.StructDecl{Name: name, Documentation: t.Doc, Serialize: b.opts.Serialize}
		for _, f := range sortedFields(t.Content) {
			ref := b.member(ns, b.opts.Naming.fieldTypeName(name, f.Name), f.Content)
			if ref == nil {
				continue
			}
			fd := ir.FieldDecl{
				Name:          casing.Snake(f.Name),
				SpecName:      f.Name,
				Index:         f.Index,
				Type:          ref,
				Documentation: docOf(f.Content),
			}
			if !fields.claim(fd.Name) {
				b.collision(name, "field %s.%s appears more than once", name, fd.Name)
			}
			decl.Fields = append(decl.Fields, fd)
		}
		return ir.Item{Namespace: ns.namespace(), Decl: decl}

	default:
		kind := "<nil>"
		if u, ok := t.(*inversion.Unknown); ok {
			kind = u.Name
		}
		b.module.AddWarning(ir.Warning{
			Code:     ir.WarnUnknownType,
			Message:  fmt.Sprintf("%s has unsupported type %q and was omitted", name, kind),
			TypeName: name,
		})
		return ir.Item{}
	}
}

// member returns the reference for a tuple slot or struct field. Primitives
// are referenced inline; composites are generated as childName inside ns.
// A member of unsupported type is dropped and nil is returned.
func (b *moduleBuilder) member(ns *scope, childName string, t inversion.Type) ir.TypeRef {
	if inversion.IsPrimitive(t) {
		return primitiveRef(t)
	}
	item := b.genOneType(childName, t)
	if item.IsZero() {
		return nil
	}
	ns.add(b, item)
	return ir.Path(ns.name, childName)
}

func docOf(t inversion.Type) string {
	if t == nil {
		return ""
	}
	return t.Documentation()
}

func (b *moduleBuilder) collision(typeName, format string, args ...any) {
	b.module.AddWarning(ir.Warning{
		Code:     ir.WarnNameCollision,
		Message:  fmt.Sprintf(format, args...),
		TypeName: typeName,
	})
}

// primitiveRef returns the inline reference for a primitive type, or nil.
func primitiveRef(t inversion.Type) *ir.PrimitiveRef {
	switch t.(type) {
	case *inversion.Bool:
		return ir.Bool()
	case *inversion.U32:
		return ir.U32()
	case *inversion.String:
		return ir.String()
	}
	return nil
}

func sortedElements(in []inversion.Element) []inversion.Element {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b inversion.Element) int { return cmp.Compare(a.Index, b.Index) })
	return out
}

func sortedFields(in []inversion.Field) []inversion.Field {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b inversion.Field) int { return cmp.Compare(a.Index, b.Index) })
	return out
}
