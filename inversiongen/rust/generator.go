// Package rust generates Rust type definitions from Inversion API specs.
package rust

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/broady/inversion"
	"github.com/broady/inversion/inversiongen/ir"
	"github.com/broady/inversion/inversiongen/provider"
)

// RustGenerator implements Generator for Rust.
type RustGenerator struct{}

var _ Generator = (*RustGenerator)(nil)

// Name returns "rust".
func (g *RustGenerator) Name() string { return "rust" }

// Generate builds the declaration tree for doc and renders it.
func (g *RustGenerator) Generate(ctx context.Context, doc *inversion.Document, opts GenerateOptions) (*GenerateResult, error) {
	cfg := withDefaults(opts.Config)
	module, err := (&provider.SpecProvider{}).BuildModule(ctx, doc, provider.SpecInputOptions{
		Naming:    cfg.Naming,
		Serialize: cfg.Serialize,
	})
	if err != nil {
		return nil, err
	}
	return g.GenerateModule(ctx, module, opts)
}

// GenerateModule renders an already built declaration tree.
func (g *RustGenerator) GenerateModule(ctx context.Context, module *ir.Module, opts GenerateOptions) (*GenerateResult, error) {
	cfg := withDefaults(opts.Config)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	e := NewEmitter(cfg)
	var buf bytes.Buffer
	if cfg.EmitHeader {
		e.EmitHeader(&buf, module)
		buf.WriteString("\n")
	}
	if cfg.Frontmatter != "" {
		buf.WriteString(cfg.Frontmatter)
		if !strings.HasSuffix(cfg.Frontmatter, "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
	}
	if err := e.EmitModule(&buf, module); err != nil {
		return nil, err
	}

	source := buf.String()
	if cfg.Format != nil {
		source = cfg.Format.FormatContext(ctx, source)
	}
	if cfg.TrailingNewline {
		if !strings.HasSuffix(source, "\n") {
			source += "\n"
		}
	} else {
		source = strings.TrimRight(source, "\n")
	}

	result := &GenerateResult{
		Source:         source,
		TypesGenerated: module.Stats().Decls(),
		Warnings:       module.Warnings,
	}

	if opts.Sink == nil {
		return result, nil
	}

	if err := opts.Sink.WriteFile(ctx, cfg.Filename, []byte(source)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.Filename, err)
	}
	result.Files = append(result.Files, OutputFile{Path: cfg.Filename, Size: int64(len(source))})

	if cfg.EmitIR {
		data, err := json.MarshalIndent(module, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal declaration tree: %w", err)
		}
		data = append(data, '\n')
		irPath := cfg.Filename + ".ir.json"
		if err := opts.Sink.WriteFile(ctx, irPath, data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", irPath, err)
		}
		result.Files = append(result.Files, OutputFile{Path: irPath, Size: int64(len(data))})
	}

	return result, nil
}

// GenerateTypes renders doc as Rust source with DefaultConfig. It does not
// format; pass the result to format.MaybeFormat for rustfmt output.
//
// Types of unsupported kinds are omitted; use RustGenerator to see warnings.
func GenerateTypes(doc *inversion.Document) string {
	res, err := (&RustGenerator{}).Generate(context.Background(), doc, GenerateOptions{Config: DefaultConfig()})
	if err != nil {
		// Unreachable: the context is never canceled and DefaultConfig is valid.
		return ""
	}
	return res.Source
}

// withDefaults returns a copy of cfg with empty fields set to their defaults.
func withDefaults(cfg GeneratorConfig) GeneratorConfig {
	if cfg.Visibility == "" {
		cfg.Visibility = VisibilityPub
	}
	if cfg.Derives == nil {
		cfg.Derives = DefaultDerives
	}
	if cfg.IndentSize <= 0 {
		cfg.IndentSize = 4
	}
	if cfg.Filename == "" {
		cfg.Filename = "types.rs"
	}
	return cfg
}

func validateConfig(cfg GeneratorConfig) error {
	switch cfg.Visibility {
	case VisibilityPub, VisibilityPubCrate, VisibilityPubSuper:
	default:
		return fmt.Errorf("invalid visibility %q: must be %q, %q or %q",
			cfg.Visibility, VisibilityPub, VisibilityPubCrate, VisibilityPubSuper)
	}
	for _, d := range cfg.Derives {
		if d == "" || strings.ContainsAny(d, "(),; \t\n") {
			return fmt.Errorf("invalid derive %q", d)
		}
	}
	return nil
}
