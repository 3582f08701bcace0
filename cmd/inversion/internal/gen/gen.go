// Package gen implements "inversion gen".
package gen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"github.com/broady/inversion"
	"github.com/broady/inversion/cmd/inversion/internal/cli"
	"github.com/broady/inversion/internal/casing"
	"github.com/broady/inversion/internal/options"
	"github.com/broady/inversion/internal/watch"
	"github.com/broady/inversion/inversiongen"
)

// Cmd generates one Rust file per spec document.
//
// Settings are layered: the --config file first, then flags, then --opt
// pairs. With a single spec the configured filename is used; otherwise each
// output is named after its spec (api.yaml -> api.rs).
type Cmd struct {
	Specs       []string `arg:"" help:"Spec documents (.json, .yaml, .yml)." type:"existingfile"`
	Out         string   `help:"Output directory for generated files. Default: config out_dir, then the current directory." short:"o" type:"path"`
	Config      string   `help:"Path to an inversion.toml configuration file." short:"c" type:"existingfile"`
	Naming      string   `help:"Naming policy for nested struct field types (field, qualified)."`
	NoSerialize bool     `help:"Omit the positional ::serde::Serialize impls." name:"no-serialize"`
	Fmt         bool     `help:"Run output through rustfmt when it is installed."`
	Header      bool     `help:"Add a generated-code banner naming the spec."`
	EmitIR      bool     `help:"Also write <file>.ir.json with the declaration tree." name:"emit-ir"`
	Opt         []string `help:"Generator option as key=value. Repeatable." short:"O" placeholder:"KEY=VALUE" sep:"none"`
	Watch       bool     `help:"Watch the spec documents and regenerate on change." short:"w"`
}

// output is the result of generating one spec.
type output struct {
	spec   string
	dir    string
	result *inversiongen.GenerateResult
}

func (c *Cmd) Run(ctx context.Context, env *cli.Env) error {
	base, err := c.config()
	if err != nil {
		return err
	}
	base.Logger = env.Logger

	outs, err := c.generate(ctx, base, c.Specs)
	if err != nil {
		return err
	}
	report(env, outs)

	if !c.Watch {
		return nil
	}
	env.Logger.Info("watching for changes", "specs", len(c.Specs))
	return watch.Watch(ctx, c.Specs, watch.Options{Logger: env.Logger}, func(ctx context.Context, changed []string) {
		outs, err := c.generate(ctx, base, changed)
		if err != nil {
			env.Logger.Error("regenerate failed", "err", err)
			return
		}
		report(env, outs)
	})
}

// config loads the --config file and layers the flags over it.
func (c *Cmd) config() (inversiongen.Config, error) {
	var cfg inversiongen.Config
	if c.Config != "" {
		md, err := toml.DecodeFile(c.Config, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config %s: %w", c.Config, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("%s: unknown keys: %s", c.Config, strings.Join(keys, ", "))
		}
		if cfg.OutDir != "" && !filepath.IsAbs(cfg.OutDir) {
			cfg.OutDir = filepath.Join(filepath.Dir(c.Config), cfg.OutDir)
		}
	}

	switch {
	case c.Out != "":
		cfg.OutDir = c.Out
	case cfg.OutDir == "":
		cfg.OutDir = "."
	}
	if c.Naming != "" {
		cfg.Naming = c.Naming
	}
	if c.NoSerialize {
		serialize := false
		cfg.Serialize = &serialize
	}
	if c.Fmt {
		cfg.Format = true
	}
	if c.Header {
		cfg.Header = true
	}
	if c.EmitIR {
		cfg.EmitIR = true
	}
	cfg.Options = append(cfg.Options, c.Opt...)

	if len(c.Specs) > 1 && len(cfg.Options) > 0 {
		opts, err := options.Parse(cfg.Options)
		if err != nil {
			return cfg, err
		}
		if opts.Filename != "" {
			return cfg, fmt.Errorf("filename=%s would be shared by %d specs; it applies to a single spec only", opts.Filename, len(c.Specs))
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// generate runs every spec concurrently. Results keep the order of specs.
func (c *Cmd) generate(ctx context.Context, base inversiongen.Config, specs []string) ([]output, error) {
	names := make([]string, len(specs))
	seen := make(map[string]string, len(specs))
	for i, spec := range specs {
		names[i] = c.filename(base, spec)
		if prev, ok := seen[names[i]]; ok {
			return nil, fmt.Errorf("%s and %s both generate %s", prev, spec, names[i])
		}
		seen[names[i]] = spec
	}

	outs := make([]output, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			doc, err := inversion.ReadFile(spec)
			if err != nil {
				return err
			}
			cfg := base
			cfg.Filename = names[i]
			res, err := inversiongen.Generate(ctx, doc, &cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", spec, err)
			}
			outs[i] = output{spec: spec, dir: cfg.OutDir, result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}

func (c *Cmd) filename(base inversiongen.Config, spec string) string {
	if len(c.Specs) == 1 && base.Filename != "" {
		return base.Filename
	}
	stem := casing.Snake(strings.TrimSuffix(filepath.Base(spec), filepath.Ext(spec)))
	if stem == "" {
		return "types.rs"
	}
	return stem + ".rs"
}

func report(env *cli.Env, outs []output) {
	for _, o := range outs {
		for _, f := range o.result.Files {
			env.Printf("✓ %s → %s (%d bytes)\n", o.spec, filepath.Join(o.dir, f.Path), f.Size)
		}
		env.Printf("  %d types", o.result.TypesGenerated)
		if n := len(o.result.Warnings); n > 0 {
			env.Printf(", %d warnings", n)
		}
		env.Printf("\n")
	}
}
