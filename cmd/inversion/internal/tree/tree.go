// Package tree implements "inversion tree", which prints the generated
// declarations of a spec as a tree of Rust modules and items.
package tree

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ddddddO/gtree"

	"github.com/broady/inversion"
	"github.com/broady/inversion/cmd/inversion/internal/cli"
	"github.com/broady/inversion/inversiongen/ir"
	"github.com/broady/inversion/inversiongen/provider"
)

type Cmd struct {
	Spec     string `arg:"" help:"Spec document (.json, .yaml, .yml)." type:"existingfile"`
	Naming   string `help:"Naming policy for nested struct field types (field, qualified)."`
	Warnings bool   `help:"List generation warnings below the tree."`
}

func (c *Cmd) Run(ctx context.Context, env *cli.Env) error {
	naming, err := provider.ParseNaming(c.Naming)
	if err != nil {
		return err
	}
	doc, err := inversion.ReadFile(c.Spec)
	if err != nil {
		return err
	}
	module, err := (&provider.SpecProvider{}).BuildModule(ctx, doc, provider.SpecInputOptions{Naming: naming})
	if err != nil {
		return err
	}

	title := module.Title
	if title == "" {
		title = filepath.Base(c.Spec)
	}
	root := gtree.NewRoot(title)
	addDecls(root, module)
	if err := gtree.OutputFromRoot(env.Stdout, root); err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	if c.Warnings {
		for _, w := range module.Warnings {
			env.Printf("⚠ %s\n", w)
		}
	}
	return nil
}

// addDecls adds every declaration under a "mod" node per enclosing
// namespace. Walk visits namespace contents first, so each module node
// precedes the declaration that owns it, as in the generated source.
func addDecls(root *gtree.Node, module *ir.Module) {
	mods := map[string]*gtree.Node{"": root}
	var nodeFor func(path []string) *gtree.Node
	nodeFor = func(path []string) *gtree.Node {
		key := strings.Join(path, "::")
		if n, ok := mods[key]; ok {
			return n
		}
		n := nodeFor(path[:len(path)-1]).Add("mod " + path[len(path)-1])
		mods[key] = n
		return n
	}
	module.Walk(func(path []string, d ir.Decl) bool {
		nodeFor(path).Add(label(d))
		return true
	})
}

func label(d ir.Decl) string {
	switch d := d.(type) {
	case *ir.AliasDecl:
		return "type " + d.Name + " = " + d.Underlying.String()
	case *ir.TupleDecl:
		parts := make([]string, len(d.Elements))
		for i, e := range d.Elements {
			parts[i] = refString(e.Type)
		}
		return "tuple " + d.Name + " (" + strings.Join(parts, ", ") + ")"
	case *ir.StructDecl:
		parts := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			parts[i] = f.Name + ": " + refString(f.Type)
		}
		return "struct " + d.Name + " {" + strings.Join(parts, ", ") + "}"
	default:
		return d.Kind().String() + " " + d.DeclName()
	}
}

func refString(r ir.TypeRef) string {
	switch r := r.(type) {
	case *ir.PrimitiveRef:
		return r.PrimitiveKind.String()
	case *ir.PathRef:
		return r.Namespace + "::" + r.Name
	default:
		return "?"
	}
}
