package inversiongen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/broady/inversion"
	"github.com/broady/inversion/internal/options"
	"github.com/broady/inversion/inversiongen/format"
	"github.com/broady/inversion/inversiongen/provider"
	"github.com/broady/inversion/inversiongen/rust"
	"github.com/broady/inversion/inversiongen/sink"
)

var validate = validator.New()

// GenerateResult contains generation output metadata.
type GenerateResult = rust.GenerateResult

// Config holds the configuration for code generation. It can be loaded from
// an inversion.toml file.
type Config struct {
	// OutDir is the directory where generated files will be written.
	// Empty keeps output in memory (GenerateResult.Source).
	OutDir string `toml:"out_dir"`

	// Filename is the generated file name within OutDir.
	// Default: "types.rs"
	Filename string `toml:"filename" validate:"omitempty,endswith=.rs,excludesall=/\\"`

	// Naming selects how nested struct field types are named.
	// Supported values: "field" (call_two::Sub), "qualified" (call_two::CallTwo_Sub).
	// Default: "field"
	Naming string `toml:"naming" validate:"omitempty,oneof=field qualified"`

	// Serialize controls the positional ::serde::Serialize impl on structs.
	// Default: true
	Serialize *bool `toml:"serialize"`

	// PreserveComments controls whether spec docs become #[doc] attributes and
	// inline slot annotations.
	// Supported values: "default", "none".
	// Default: "default"
	PreserveComments string `toml:"preserve_comments" validate:"omitempty,oneof=default none"`

	// Visibility is placed on every generated item and field.
	// Supported values: "pub", "pub(crate)", "pub(super)".
	// Default: "pub"
	Visibility string `toml:"visibility" validate:"omitempty,oneof=pub pub(crate) pub(super)"`

	// Derives are added to the default struct derives (Debug, Clone, PartialEq).
	// e.g. []string{"Eq", "Hash"}
	Derives []string `toml:"derives" validate:"dive,required,excludesall=();"`

	// Frontmatter is content added to the top of the generated file.
	// e.g. "#![allow(dead_code)]"
	Frontmatter string `toml:"frontmatter"`

	// Header adds a "Code generated ... DO NOT EDIT." banner naming the spec.
	Header bool `toml:"header"`

	// Format runs the output through rustfmt when it is installed.
	Format bool `toml:"format"`

	// Rustfmt overrides the formatter command line, e.g. "rustfmt --edition 2018".
	// Implies Format.
	Rustfmt string `toml:"rustfmt"`

	// EmitIR also writes the declaration tree as <Filename>.ir.json.
	EmitIR bool `toml:"emit_ir"`

	// Options are raw generator options in key=value form, applied after
	// every other setting. See internal/options for the accepted keys.
	// e.g. []string{"indent=2", "derive=Eq"}
	Options []string `toml:"options"`

	// Logger receives warnings and formatter diagnostics.
	// Default: slog.Default()
	Logger *slog.Logger `toml:"-"`
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GeneratorConfig converts c into a Rust generator configuration.
// c should already have defaults applied.
func (c *Config) GeneratorConfig() (rust.GeneratorConfig, error) {
	naming, err := provider.ParseNaming(c.Naming)
	if err != nil {
		return rust.GeneratorConfig{}, err
	}

	gc := rust.DefaultConfig()
	gc.Naming = naming
	gc.Serialize = *c.Serialize
	gc.EmitComments = c.PreserveComments != "none"
	gc.Visibility = c.Visibility
	gc.Derives = rust.MergeDerives(rust.DefaultDerives, c.Derives...)
	gc.Frontmatter = c.Frontmatter
	gc.EmitHeader = c.Header
	gc.Filename = c.Filename
	gc.EmitIR = c.EmitIR

	if c.Format || c.Rustfmt != "" {
		f := &format.Formatter{Logger: c.Logger}
		if fields := strings.Fields(c.Rustfmt); len(fields) > 0 {
			f.Command, f.Args = fields[0], fields[1:]
		}
		gc.Format = f
	}

	if len(c.Options) > 0 {
		opts, err := options.Parse(c.Options)
		if err != nil {
			return rust.GeneratorConfig{}, err
		}
		if err := opts.Apply(&gc); err != nil {
			return rust.GeneratorConfig{}, err
		}
	}
	return gc, nil
}

// Generate validates doc and generates Rust types for it. Output goes to
// cfg.OutDir when set; the generated source is always in the result.
// Warnings are logged and returned.
func Generate(ctx context.Context, doc *inversion.Document, cfg *Config) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := inversion.Validate(doc); err != nil {
		return nil, err
	}

	gc, err := cfg.GeneratorConfig()
	if err != nil {
		return nil, err
	}

	var out sink.OutputSink = sink.NewMemorySink()
	if cfg.OutDir != "" {
		fs := sink.NewFilesystemSink(cfg.OutDir)
		fs.SkipUnchanged = true
		out = fs
	}

	gen := &rust.RustGenerator{}
	result, err := gen.Generate(ctx, doc, rust.GenerateOptions{
		Sink:   out,
		Config: gc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate Rust: %w", err)
	}

	for _, w := range result.Warnings {
		cfg.Logger.Warn(w.Message, "code", w.Code, "type", w.TypeName)
	}
	return result, nil
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	// Make a copy to avoid mutating the input
	result := *cfg

	if result.Filename == "" {
		result.Filename = "types.rs"
	}
	if result.Naming == "" {
		result.Naming = provider.NamingField.String()
	}
	if result.Serialize == nil {
		serialize := true
		result.Serialize = &serialize
	}
	if result.PreserveComments == "" {
		result.PreserveComments = "default"
	}
	if result.Visibility == "" {
		result.Visibility = rust.VisibilityPub
	}
	if result.Logger == nil {
		result.Logger = slog.Default()
	}

	return &result
}
