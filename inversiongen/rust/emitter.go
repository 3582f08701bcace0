package rust

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/broady/inversion/inversiongen/ir"
)

// Emitter renders declaration trees as Rust source.
type Emitter struct {
	config GeneratorConfig
	indent string
}

// NewEmitter creates an Emitter. Empty config fields take their defaults.
func NewEmitter(config GeneratorConfig) *Emitter {
	config = withDefaults(config)
	return &Emitter{
		config: config,
		indent: strings.Repeat(" ", config.IndentSize),
	}
}

// EmitModule renders every item of m, separated by blank lines. Each item's
// namespace is rendered before its declaration.
func (e *Emitter) EmitModule(buf *bytes.Buffer, m *ir.Module) error {
	return e.emitItems(buf, m.Items, 0)
}

// EmitHeader writes the generated-code banner for m.
func (e *Emitter) EmitHeader(buf *bytes.Buffer, m *ir.Module) {
	buf.WriteString("// Code generated by inversion. DO NOT EDIT.\n")
	title := m.Title
	if title == "" {
		title = "untitled spec"
	}
	fmt.Fprintf(buf, "// Source: %s", strings.Join(strings.Fields(title), " "))
	if m.ID != "" {
		fmt.Fprintf(buf, " (id %s, revision %d)", m.ID, m.Revision)
	}
	buf.WriteString("\n")
}

func (e *Emitter) emitItems(buf *bytes.Buffer, items []ir.Item, depth int) error {
	for i, it := range items {
		if i > 0 {
			buf.WriteString("\n")
		}
		if err := e.EmitItem(buf, it, depth); err != nil {
			return err
		}
	}
	return nil
}

// EmitItem renders one item at the given nesting depth.
func (e *Emitter) EmitItem(buf *bytes.Buffer, it ir.Item, depth int) error {
	if it.Namespace != nil {
		if err := e.emitNamespace(buf, it.Namespace, depth); err != nil {
			return err
		}
		if it.Decl != nil {
			buf.WriteString("\n")
		}
	}
	if it.Decl == nil {
		return nil
	}

	e.emitDoc(buf, it.Decl.Doc(), depth)

	switch d := it.Decl.(type) {
	case *ir.AliasDecl:
		e.emitAlias(buf, d, depth)
	case *ir.TupleDecl:
		e.emitTuple(buf, d, depth)
	case *ir.StructDecl:
		e.emitStruct(buf, d, depth)
	default:
		return fmt.Errorf("unsupported declaration kind: %s", it.Decl.Kind())
	}
	return nil
}

// emitNamespace emits a module holding the child declarations.
func (e *Emitter) emitNamespace(buf *bytes.Buffer, ns *ir.Namespace, depth int) error {
	e.line(buf, depth, e.config.Visibility+" mod "+moduleName(ns.Name)+" {")
	if err := e.emitItems(buf, ns.Items, depth+1); err != nil {
		return err
	}
	e.line(buf, depth, "}")
	return nil
}

// emitAlias emits pub type Name = primitive;
func (e *Emitter) emitAlias(buf *bytes.Buffer, a *ir.AliasDecl, depth int) {
	e.line(buf, depth, fmt.Sprintf("%s type %s = %s;",
		e.config.Visibility, typeName(a.Name), primitiveName(a.Underlying)))
}

// emitTuple emits a tuple alias. Slot docs become inline block comments:
// pub type Name = (/* doc */ bool, ns::Name1,);
func (e *Emitter) emitTuple(buf *bytes.Buffer, t *ir.TupleDecl, depth int) {
	slots := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		slot := e.typeExpr(el.Type) + ","
		if e.config.EmitComments && el.Documentation != "" {
			slot = blockComment(el.Documentation) + " " + slot
		}
		slots[i] = slot
	}
	e.line(buf, depth, fmt.Sprintf("%s type %s = (%s);",
		e.config.Visibility, typeName(t.Name), strings.Join(slots, " ")))
}

// emitStruct emits a struct with named fields and, when requested, its
// positional serializer.
func (e *Emitter) emitStruct(buf *bytes.Buffer, s *ir.StructDecl, depth int) {
	name := typeName(s.Name)

	if len(e.config.Derives) > 0 {
		e.line(buf, depth, "#[derive("+strings.Join(MergeDerives(nil, e.config.Derives...), ", ")+")]")
	}

	if len(s.Fields) == 0 {
		e.line(buf, depth, e.config.Visibility+" struct "+name+" {}")
	} else {
		e.line(buf, depth, e.config.Visibility+" struct "+name+" {")
		for _, f := range s.Fields {
			e.emitDoc(buf, f.Documentation, depth+1)
			e.line(buf, depth+1, fmt.Sprintf("%s %s: %s,",
				e.config.Visibility, fieldName(f.Name), e.typeExpr(f.Type)))
		}
		e.line(buf, depth, "}")
	}

	if s.Serialize {
		buf.WriteString("\n")
		e.emitSerialize(buf, s, depth)
	}
}

// emitSerialize emits an impl that serializes the fields as a tuple of
// references, in the same order as the struct members.
func (e *Emitter) emitSerialize(buf *bytes.Buffer, s *ir.StructDecl, depth int) {
	types := make([]string, len(s.Fields))
	values := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		types[i] = "&" + e.typeExpr(f.Type) + ","
		values[i] = "&self." + fieldName(f.Name) + ","
	}

	e.line(buf, depth, "impl ::serde::Serialize for "+typeName(s.Name)+" {")
	e.line(buf, depth+1, "fn serialize<S>(&self, serializer: S) -> Result<S::Ok, S::Error>")
	e.line(buf, depth+1, "where")
	e.line(buf, depth+2, "S: ::serde::Serializer,")
	e.line(buf, depth+1, "{")
	e.line(buf, depth+2, fmt.Sprintf("let r: (%s) = (%s);", strings.Join(types, " "), strings.Join(values, " ")))
	e.line(buf, depth+2, "::serde::Serialize::serialize(&r, serializer)")
	e.line(buf, depth+1, "}")
	e.line(buf, depth, "}")
}

// emitDoc emits a #[doc] attribute when comments are enabled.
func (e *Emitter) emitDoc(buf *bytes.Buffer, doc string, depth int) {
	if !e.config.EmitComments || doc == "" {
		return
	}
	e.line(buf, depth, "#[doc = "+stringLiteral(doc)+"]")
}

// typeExpr renders a member type.
func (e *Emitter) typeExpr(ref ir.TypeRef) string {
	switch r := ref.(type) {
	case *ir.PrimitiveRef:
		return primitiveName(r.PrimitiveKind)
	case *ir.PathRef:
		return moduleName(r.Namespace) + "::" + typeName(r.Name)
	default:
		return "()"
	}
}

func (e *Emitter) line(buf *bytes.Buffer, depth int, s string) {
	for range depth {
		buf.WriteString(e.indent)
	}
	buf.WriteString(s)
	buf.WriteString("\n")
}

// primitiveName maps a primitive to its Rust type. String is the owned
// std::string::String.
func primitiveName(k ir.PrimitiveKind) string {
	switch k {
	case ir.PrimitiveBool:
		return "bool"
	case ir.PrimitiveU32:
		return "u32"
	case ir.PrimitiveString:
		return "String"
	default:
		return "()"
	}
}

func typeName(name string) string   { return sanitizeIdentifier(name, "Unnamed") }
func fieldName(name string) string  { return sanitizeIdentifier(name, "unnamed") }
func moduleName(name string) string { return sanitizeIdentifier(name, "unnamed") }
