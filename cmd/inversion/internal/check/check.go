// Package check implements "inversion check".
package check

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/broady/inversion"
	"github.com/broady/inversion/cmd/inversion/internal/cli"
	"github.com/broady/inversion/inversiongen/provider"
	"github.com/broady/inversion/inversiongen/rust"
	"github.com/broady/inversion/inversiongen/sink"
)

// Cmd parses, validates and generates each spec without writing anything.
type Cmd struct {
	Specs  []string `arg:"" help:"Spec documents (.json, .yaml, .yml)." type:"existingfile"`
	Naming string   `help:"Naming policy for nested struct field types (field, qualified)."`
	Strict bool     `help:"Treat generation warnings as failures."`
}

func (c *Cmd) Run(ctx context.Context, env *cli.Env) error {
	naming, err := provider.ParseNaming(c.Naming)
	if err != nil {
		return err
	}

	failed := 0
	for _, spec := range c.Specs {
		if err := c.checkOne(ctx, env, spec, naming); err != nil {
			failed++
			env.Printf("✗ %s: %v\n", spec, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d spec documents failed", failed, len(c.Specs))
	}
	return nil
}

func (c *Cmd) checkOne(ctx context.Context, env *cli.Env, spec string, naming provider.Naming) error {
	doc, err := inversion.ReadFile(spec)
	if err != nil {
		return err
	}
	if err := inversion.Validate(doc); err != nil {
		return err
	}

	module, err := (&provider.SpecProvider{}).BuildModule(ctx, doc, provider.SpecInputOptions{
		Naming:    naming,
		Serialize: true,
	})
	if err != nil {
		return err
	}
	if errs := module.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}

	cfg := rust.DefaultConfig()
	cfg.Naming = naming
	discard := &sink.DiscardSink{}
	result, err := (&rust.RustGenerator{}).GenerateModule(ctx, module, rust.GenerateOptions{
		Sink:   discard,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	stats := module.Stats()
	files, size := discard.Totals()
	names := doc.InversionAPISpec.Names()
	env.Printf("✓ %s: %d top-level types (%s)\n", spec, len(names), strings.Join(names, ", "))
	env.Printf("✓ %d declarations: %d structs, %d tuples, %d aliases in %d modules\n",
		stats.Decls(), stats.Structs, stats.Tuples, stats.Aliases, stats.Namespaces)
	env.Printf("✓ %d file(s), %d bytes of Rust\n", files, size)
	for _, w := range result.Warnings {
		env.Printf("⚠ %s\n", w)
	}

	if c.Strict && len(result.Warnings) > 0 {
		return fmt.Errorf("%d warnings", len(result.Warnings))
	}
	return nil
}
