package rust

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/inversion"
	"github.com/broady/inversion/internal/testfixtures"
	"github.com/broady/inversion/inversiongen/format"
	"github.com/broady/inversion/inversiongen/ir"
	"github.com/broady/inversion/inversiongen/sink"
)

// rs strips the common indentation and the leading newline of an expected
// Rust snippet.
func rs(s string) string {
	return strings.TrimPrefix(dedent.Dedent(s), "\n")
}

func parse(t *testing.T, src string) *inversion.Document {
	t.Helper()
	doc, err := inversion.ParseJSON([]byte(src))
	require.NoError(t, err)
	return doc
}

func generate(t *testing.T, doc *inversion.Document, cfg GeneratorConfig) *GenerateResult {
	t.Helper()
	res, err := (&RustGenerator{}).Generate(context.Background(), doc, GenerateOptions{Config: cfg})
	require.NoError(t, err)
	return res
}

func TestRustGenerator_Name(t *testing.T) {
	gen := &RustGenerator{}
	if got := gen.Name(); got != "rust" {
		t.Errorf("Name() = %q, want %q", got, "rust")
	}
}

func TestGenerateTypes_Scenario(t *testing.T) {
	out := GenerateTypes(parse(t, testfixtures.TestAPI))

	// CallOne is a plain tuple alias with no namespace.
	assert.Contains(t, out, "pub type CallOne = (/* first tuple item */ bool, /* second */ u32,);\n")
	assert.NotContains(t, out, "mod call_one")

	// CallTwo references its nested struct through the call_two namespace.
	assert.Equal(t, 1, strings.Count(out, "pub mod call_two {"))
	assert.Equal(t, 1, strings.Count(out, "pub struct Sub {"))
	assert.Contains(t, out, rs(`
		pub struct CallTwo {
		    #[doc = "yay"]
		    pub yay: bool,
		    #[doc = "age"]
		    pub age: u32,
		    #[doc = "a sub struct"]
		    pub sub: call_two::Sub,
		}
	`))

	// The namespace precedes the declaration that uses it.
	assert.Less(t, strings.Index(out, "pub mod call_two"), strings.Index(out, "pub struct CallTwo"))
}

func TestGenerateTypes_PrimitiveMapping(t *testing.T) {
	doc := &inversion.Document{InversionAPISpec: inversion.Spec{Types: []inversion.NamedType{
		{Name: "flag", Type: &inversion.Bool{}},
		{Name: "count", Type: &inversion.U32{}},
		{Name: "label", Type: &inversion.String{}},
	}}}

	assert.Equal(t, rs(`
		pub type Flag = bool;

		pub type Count = u32;

		pub type Label = String;
	`), GenerateTypes(doc))
}

func TestGenerateTypes_OrderPreservation(t *testing.T) {
	out := GenerateTypes(parse(t, testfixtures.Reordered))

	assert.Contains(t, out, rs(`
		pub struct Pair {
		    pub b: u32,
		    pub a: bool,
		}
	`))
	assert.Contains(t, out, "let r: (&u32, &bool,) = (&self.b, &self.a,);")
	assert.Contains(t, out, "pub type Triple = (bool, u32, String,);")
	assert.Contains(t, out, "(&self.first_a, &self.first_b, &self.second,)")
}

func TestGenerateTypes_Deterministic(t *testing.T) {
	for _, src := range []string{testfixtures.TestAPI, testfixtures.Reordered, testfixtures.Nested} {
		doc := parse(t, src)
		assert.Equal(t, GenerateTypes(doc), GenerateTypes(doc))
	}
}

func TestGenerateTypes_Empty(t *testing.T) {
	assert.Equal(t, "\n", GenerateTypes(&inversion.Document{}))
	assert.Equal(t, "\n", GenerateTypes(nil))
}

func TestGenerate_UnknownType(t *testing.T) {
	res := generate(t, parse(t, testfixtures.Nested), DefaultConfig())

	assert.NotContains(t, res.Source, "Mystery")
	assert.NotContains(t, res.Source, "mystery")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, ir.WarnUnknownType, res.Warnings[0].Code)
	assert.Equal(t, 3, res.TypesGenerated)
}

func TestGenerate_ReservedWords(t *testing.T) {
	doc := &inversion.Document{InversionAPISpec: inversion.Spec{Types: []inversion.NamedType{
		{Name: "self", Type: &inversion.Struct{Content: []inversion.Field{
			{Name: "type", Index: 0, Content: &inversion.Bool{}},
			{Name: "crate", Index: 1, Content: &inversion.Tuple{Content: []inversion.Element{
				{Index: 0, Content: &inversion.U32{}},
			}}},
		}}},
	}}}

	cfg := DefaultConfig()
	cfg.EmitComments = false
	res := generate(t, doc, cfg)

	assert.Equal(t, rs(`
		pub mod self_ {
		    pub type Crate = (u32,);
		}

		#[derive(Debug, Clone, PartialEq)]
		pub struct Self_ {
		    pub r#type: bool,
		    pub crate_: self_::Crate,
		}

		impl ::serde::Serialize for Self_ {
		    fn serialize<S>(&self, serializer: S) -> Result<S::Ok, S::Error>
		    where
		        S: ::serde::Serializer,
		    {
		        let r: (&bool, &self_::Crate,) = (&self.r#type, &self.crate_,);
		        ::serde::Serialize::serialize(&r, serializer)
		    }
		}
	`), res.Source)
}

func TestGenerate_DocEscaping(t *testing.T) {
	doc := &inversion.Document{InversionAPISpec: inversion.Spec{Types: []inversion.NamedType{
		{Name: "quoted", Type: &inversion.Tuple{Doc: "say \"hi\"\nthen leave", Content: []inversion.Element{
			{Index: 0, Content: &inversion.Bool{Doc: "closes */ early"}},
		}}},
	}}}

	assert.Equal(t, rs(`
		#[doc = "say \"hi\"\nthen leave"]
		pub type Quoted = (/* closes * / early */ bool,);
	`), GenerateTypes(doc))
}

func TestGenerate_ConfigVariants(t *testing.T) {
	doc := &inversion.Document{InversionAPISpec: inversion.Spec{Types: []inversion.NamedType{
		{Name: "pair", Type: &inversion.Struct{Doc: "a pair", Content: []inversion.Field{
			{Name: "left", Index: 0, Content: &inversion.Bool{Doc: "left side"}},
		}}},
	}}}

	tests := []struct {
		name   string
		modify func(*GeneratorConfig)
		want   string
	}{
		{
			name:   "no serialize no comments",
			modify: func(c *GeneratorConfig) { c.Serialize = false; c.EmitComments = false },
			want: rs(`
				#[derive(Debug, Clone, PartialEq)]
				pub struct Pair {
				    pub left: bool,
				}
			`),
		},
		{
			name: "crate visibility without derives",
			modify: func(c *GeneratorConfig) {
				c.Serialize = false
				c.Visibility = VisibilityPubCrate
				c.Derives = []string{}
			},
			want: rs(`
				#[doc = "a pair"]
				pub(crate) struct Pair {
				    #[doc = "left side"]
				    pub(crate) left: bool,
				}
			`),
		},
		{
			name: "two space indent with extra derive",
			modify: func(c *GeneratorConfig) {
				c.Serialize = false
				c.EmitComments = false
				c.IndentSize = 2
				c.Derives = []string{"Debug", "serde::Deserialize"}
			},
			want: rs(`
				#[derive(Debug, serde::Deserialize)]
				pub struct Pair {
				  pub left: bool,
				}
			`),
		},
		{
			name: "header and frontmatter",
			modify: func(c *GeneratorConfig) {
				c.Serialize = false
				c.EmitComments = false
				c.EmitHeader = true
				c.Frontmatter = "#![allow(dead_code)]"
			},
			want: rs(`
				// Code generated by inversion. DO NOT EDIT.
				// Source: untitled spec

				#![allow(dead_code)]

				#[derive(Debug, Clone, PartialEq)]
				pub struct Pair {
				    pub left: bool,
				}
			`),
		},
		{
			name: "no trailing newline",
			modify: func(c *GeneratorConfig) {
				c.Serialize = false
				c.EmitComments = false
				c.Derives = []string{}
				c.TrailingNewline = false
			},
			want: "pub struct Pair {\n    pub left: bool,\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Equal(t, tt.want, generate(t, doc, cfg).Source)
		})
	}
}

func TestGenerate_EmptyStruct(t *testing.T) {
	doc := &inversion.Document{InversionAPISpec: inversion.Spec{Types: []inversion.NamedType{
		{Name: "unit", Type: &inversion.Struct{}},
		{Name: "nothing", Type: &inversion.Tuple{}},
	}}}

	assert.Equal(t, rs(`
		#[derive(Debug, Clone, PartialEq)]
		pub struct Unit {}

		impl ::serde::Serialize for Unit {
		    fn serialize<S>(&self, serializer: S) -> Result<S::Ok, S::Error>
		    where
		        S: ::serde::Serializer,
		    {
		        let r: () = ();
		        ::serde::Serialize::serialize(&r, serializer)
		    }
		}

		pub type Nothing = ();
	`), GenerateTypes(doc))
}

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GeneratorConfig)
		errMsg string
	}{
		{"visibility", func(c *GeneratorConfig) { c.Visibility = "private" }, "invalid visibility"},
		{"derive", func(c *GeneratorConfig) { c.Derives = []string{"Debug, Clone"} }, "invalid derive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := (&RustGenerator{}).Generate(context.Background(), parse(t, testfixtures.TestAPI), GenerateOptions{Config: cfg})
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestGenerate_Sink(t *testing.T) {
	memSink := sink.NewMemorySink()
	cfg := DefaultConfig()
	cfg.Filename = "api.rs"
	cfg.EmitIR = true

	res, err := (&RustGenerator{}).Generate(context.Background(), parse(t, testfixtures.TestAPI), GenerateOptions{
		Sink:   memSink,
		Config: cfg,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"api.rs", "api.rs.ir.json"}, memSink.Paths())
	require.Len(t, res.Files, 2)
	assert.Equal(t, OutputFile{Path: "api.rs", Size: int64(len(res.Source))}, res.Files[0])
	assert.Equal(t, res.Source, string(memSink.Get("api.rs")))
	assert.Equal(t, 4, res.TypesGenerated)

	var dump struct {
		Title string
		Items []json.RawMessage
	}
	require.NoError(t, json.Unmarshal(memSink.Get("api.rs.ir.json"), &dump))
	assert.Equal(t, "Test Api", dump.Title)
	assert.Len(t, dump.Items, 3)
}

func TestGenerate_SinkError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filename = "../escape.rs"

	_, err := (&RustGenerator{}).Generate(context.Background(), parse(t, testfixtures.TestAPI), GenerateOptions{
		Sink:   sink.NewMemorySink(),
		Config: cfg,
	})
	assert.ErrorContains(t, err, "failed to write ../escape.rs")
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&RustGenerator{}).Generate(ctx, parse(t, testfixtures.TestAPI), GenerateOptions{Config: DefaultConfig()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_Formatter(t *testing.T) {
	if _, err := exec.LookPath("tr"); err != nil {
		t.Skip("tr not found on PATH")
	}

	cfg := DefaultConfig()
	cfg.Format = &format.Formatter{Command: "tr", Args: []string{"a-z", "A-Z"}}
	res := generate(t, parse(t, testfixtures.TestAPI), cfg)
	assert.Contains(t, res.Source, "PUB TYPE ERROR = STRING;")
}

func TestGenerate_FormatterFallback(t *testing.T) {
	doc := parse(t, testfixtures.TestAPI)

	cfg := DefaultConfig()
	cfg.Format = &format.Formatter{Command: "inversion-test-no-such-formatter"}
	assert.Equal(t, GenerateTypes(doc), generate(t, doc, cfg).Source)
}

func TestWithDefaults(t *testing.T) {
	got := withDefaults(GeneratorConfig{})
	assert.Equal(t, VisibilityPub, got.Visibility)
	assert.Equal(t, DefaultDerives, got.Derives)
	assert.Equal(t, 4, got.IndentSize)
	assert.Equal(t, "types.rs", got.Filename)
	assert.False(t, got.Serialize)

	got = withDefaults(GeneratorConfig{Derives: []string{}, IndentSize: 2})
	assert.Empty(t, got.Derives)
	assert.Equal(t, 2, got.IndentSize)
}

func TestMergeDerives(t *testing.T) {
	assert.Equal(t, []string{"Debug", "Clone", "PartialEq", "Eq"},
		MergeDerives(DefaultDerives, "Debug", "Eq", "Eq"))
	assert.Equal(t, []string{"Debug", "Clone", "PartialEq"}, DefaultDerives)
	assert.Empty(t, MergeDerives(nil))
}

func TestGenerate_DuplicateDerivesEmittedOnce(t *testing.T) {
	doc := parse(t, testfixtures.TestAPI)

	cfg := DefaultConfig()
	cfg.Derives = []string{"Debug", "Clone", "Debug"}
	src := generate(t, doc, cfg).Source
	assert.Contains(t, src, "#[derive(Debug, Clone)]\n")
	assert.NotContains(t, src, "Debug, Clone, Debug")
}
