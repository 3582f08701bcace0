// Package options decodes key=value generator options, as given to
// "inversion gen --opt", into a Rust generator configuration.
package options

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/broady/inversion/inversiongen/format"
	"github.com/broady/inversion/inversiongen/provider"
	"github.com/broady/inversion/inversiongen/rust"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

// Options holds generator settings. Nil pointers and empty values leave the
// corresponding configuration untouched.
type Options struct {
	Naming     string   `schema:"naming" validate:"omitempty,oneof=field qualified"`
	Serialize  *bool    `schema:"serialize"`
	Comments   *bool    `schema:"comments"`
	Header     *bool    `schema:"header"`
	Visibility string   `schema:"visibility" validate:"omitempty,oneof=pub pub(crate) pub(super)"`
	Derive     []string `schema:"derive" validate:"dive,required,excludesall=();"`
	NoDerive   bool     `schema:"no_derive"`
	Indent     int      `schema:"indent" validate:"gte=0,lte=16"`
	Filename   string   `schema:"filename" validate:"omitempty,endswith=.rs"`
	IR         *bool    `schema:"ir"`
	Rustfmt    string   `schema:"rustfmt"`
}

// Parse decodes "key=value" pairs. A key may repeat for list options
// (derive=Eq derive=Hash). Unknown keys are an error.
func Parse(pairs []string) (*Options, error) {
	values := url.Values{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.WithHint(errors.Newf("malformed option %q", p),
				"options are written key=value, e.g. naming=qualified")
		}
		values.Add(key, strings.TrimSpace(value))
	}

	var opts Options
	if err := schemaDecoder.Decode(&opts, values); err != nil {
		return nil, errors.Wrap(err, "decode options")
	}
	if err := validate.Struct(&opts); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return &opts, nil
}

// Apply copies the set options onto cfg.
func (o *Options) Apply(cfg *rust.GeneratorConfig) error {
	if o.Naming != "" {
		n, err := provider.ParseNaming(o.Naming)
		if err != nil {
			return err
		}
		cfg.Naming = n
	}
	if o.Serialize != nil {
		cfg.Serialize = *o.Serialize
	}
	if o.Comments != nil {
		cfg.EmitComments = *o.Comments
	}
	if o.Header != nil {
		cfg.EmitHeader = *o.Header
	}
	if o.Visibility != "" {
		cfg.Visibility = o.Visibility
	}
	switch {
	case o.NoDerive:
		cfg.Derives = []string{}
	case len(o.Derive) > 0:
		cfg.Derives = rust.MergeDerives(rust.DefaultDerives, o.Derive...)
	}
	if o.Indent > 0 {
		cfg.IndentSize = o.Indent
	}
	if o.Filename != "" {
		cfg.Filename = o.Filename
	}
	if o.IR != nil {
		cfg.EmitIR = *o.IR
	}
	if fields := strings.Fields(o.Rustfmt); len(fields) > 0 {
		cfg.Format = &format.Formatter{Command: fields[0], Args: fields[1:]}
	}
	return nil
}
