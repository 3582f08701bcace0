package rust

import (
	"context"
	"slices"

	"github.com/broady/inversion"
	"github.com/broady/inversion/inversiongen/format"
	"github.com/broady/inversion/inversiongen/ir"
	"github.com/broady/inversion/inversiongen/provider"
	"github.com/broady/inversion/inversiongen/sink"
)

// Generator transforms spec documents into target language source code.
type Generator interface {
	// Name returns the generator's identifier (e.g., "rust").
	Name() string

	// Generate produces source code for the given document.
	Generate(ctx context.Context, doc *inversion.Document, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives generated output files. Nil skips writing; the source is
	// still returned in GenerateResult.Source.
	Sink sink.OutputSink

	// Config contains generator configuration.
	Config GeneratorConfig
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// Source is the generated Rust source.
	Source string

	// TypesGenerated is the count of declarations generated, nested ones included.
	TypesGenerated int

	// Warnings contains non-fatal issues encountered.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Visibility values accepted in GeneratorConfig.
const (
	VisibilityPub      = "pub"
	VisibilityPubCrate = "pub(crate)"
	VisibilityPubSuper = "pub(super)"
)

// DefaultDerives are the derive macros placed on generated structs.
var DefaultDerives = []string{"Debug", "Clone", "PartialEq"}

// MergeDerives appends extra to base, skipping names already present.
// Rust rejects a derive listed twice.
func MergeDerives(base []string, extra ...string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, cap(out))
	for _, d := range slices.Concat(base, extra) {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// GeneratorConfig provides configuration options.
type GeneratorConfig struct {
	// Naming
	Naming provider.Naming // Naming policy for nested struct field types

	// Declarations
	Serialize  bool     // Emit a positional ::serde::Serialize impl per struct
	Visibility string   // "pub" (default), "pub(crate)" or "pub(super)"
	Derives    []string // Struct derives; nil means DefaultDerives, empty means none

	// Formatting
	IndentSize      int               // Spaces per indent level (default 4)
	TrailingNewline bool              // End the file with a newline
	Format          *format.Formatter // Run output through this formatter; nil leaves it as rendered

	// Features
	EmitComments bool   // Include #[doc] attributes and inline slot annotations
	EmitHeader   bool   // Prepend a "Code generated" header naming the spec
	Frontmatter  string // Raw text placed after the header (e.g. use statements)

	// Output
	Filename string // Output file name (default "types.rs")
	EmitIR   bool   // Also write the declaration tree as <Filename>.ir.json
}

// DefaultConfig returns the configuration used by GenerateTypes.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Naming:          provider.NamingField,
		Serialize:       true,
		Visibility:      VisibilityPub,
		Derives:         DefaultDerives,
		IndentSize:      4,
		TrailingNewline: true,
		EmitComments:    true,
		Filename:        "types.rs",
	}
}
