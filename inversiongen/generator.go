// Package inversiongen generates Rust type definitions from Inversion API
// spec documents.
package inversiongen

import (
	"context"
	"log/slog"

	"github.com/broady/inversion"
)

// Generator provides a fluent API for code generation.
// Create with FromDocument() or FromFile() and configure with method chaining.
//
// Example:
//
//	inversiongen.FromFile("api.json").
//	    Naming("qualified").
//	    WithFormat().
//	    ToDir("./src/api")
type Generator struct {
	doc  *inversion.Document
	path string
	cfg  Config
}

// FromDocument creates a Generator for an already parsed document.
func FromDocument(doc *inversion.Document) *Generator {
	return &Generator{doc: doc}
}

// FromFile creates a Generator for the spec document at path (.json, .yaml
// or .yml). The file is read by the terminal operation.
func FromFile(path string) *Generator {
	return &Generator{path: path}
}

// WithConfig replaces the whole configuration. Later setters still apply.
func (g *Generator) WithConfig(cfg Config) *Generator {
	g.cfg = cfg
	return g
}

// Naming sets the naming policy for nested struct field types.
// Valid values: "field" (default), "qualified".
func (g *Generator) Naming(policy string) *Generator {
	g.cfg.Naming = policy
	return g
}

// WithoutSerialize disables the positional ::serde::Serialize impls.
func (g *Generator) WithoutSerialize() *Generator {
	serialize := false
	g.cfg.Serialize = &serialize
	return g
}

// PreserveComments controls whether spec docs are preserved.
// Valid values: "default", "none".
func (g *Generator) PreserveComments(mode string) *Generator {
	g.cfg.PreserveComments = mode
	return g
}

// Visibility sets the visibility of generated items.
// Valid values: "pub" (default), "pub(crate)", "pub(super)".
func (g *Generator) Visibility(v string) *Generator {
	g.cfg.Visibility = v
	return g
}

// Derive adds derive macros to generated structs.
func (g *Generator) Derive(names ...string) *Generator {
	g.cfg.Derives = append(g.cfg.Derives, names...)
	return g
}

// Frontmatter adds content to the top of the generated file.
func (g *Generator) Frontmatter(content string) *Generator {
	g.cfg.Frontmatter = content
	return g
}

// WithHeader adds a "Code generated" banner naming the spec.
func (g *Generator) WithHeader() *Generator {
	g.cfg.Header = true
	return g
}

// WithFormat runs the output through rustfmt when it is installed.
func (g *Generator) WithFormat() *Generator {
	g.cfg.Format = true
	return g
}

// Rustfmt sets the formatter command line and enables formatting.
func (g *Generator) Rustfmt(command string) *Generator {
	g.cfg.Rustfmt = command
	return g
}

// WithIR enables <filename>.ir.json output.
// The file contains the declaration tree the Rust source was rendered from.
func (g *Generator) WithIR() *Generator {
	g.cfg.EmitIR = true
	return g
}

// Filename sets the generated file name (default "types.rs").
func (g *Generator) Filename(name string) *Generator {
	g.cfg.Filename = name
	return g
}

// Option adds raw key=value generator options, e.g. "indent=2".
func (g *Generator) Option(pairs ...string) *Generator {
	g.cfg.Options = append(g.cfg.Options, pairs...)
	return g
}

// Logger sets the logger that receives generation warnings.
func (g *Generator) Logger(l *slog.Logger) *Generator {
	g.cfg.Logger = l
	return g
}

// ToDir generates files to the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(dir string) (*GenerateResult, error) {
	g.cfg.OutDir = dir
	return g.run()
}

// Generate returns the generated source in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate() (*GenerateResult, error) {
	g.cfg.OutDir = ""
	return g.run()
}

func (g *Generator) run() (*GenerateResult, error) {
	doc := g.doc
	if doc == nil && g.path != "" {
		var err error
		doc, err = inversion.ReadFile(g.path)
		if err != nil {
			return nil, err
		}
	}
	return Generate(context.Background(), doc, &g.cfg)
}
