package rust

import (
	"fmt"
	"strings"
	"unicode"
)

// Rust keywords (2021 edition), strict and reserved. These become raw
// identifiers (r#type).
var reservedWords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true,
	"in": true, "let": true, "loop": true, "match": true, "mod": true,
	"move": true, "mut": true, "pub": true, "ref": true, "return": true,
	"static": true, "struct": true, "trait": true, "true": true, "type": true,
	"unsafe": true, "use": true, "where": true, "while": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true, "typeof": true,
	"unsized": true, "virtual": true, "yield": true,
}

// Path keywords cannot be raw identifiers; they get a trailing underscore.
var pathKeywords = map[string]bool{
	"self":  true,
	"Self":  true,
	"super": true,
	"crate": true,
}

// escapeReservedWord makes a keyword usable as an identifier.
func escapeReservedWord(name string) string {
	switch {
	case pathKeywords[name]:
		return name + "_"
	case reservedWords[name]:
		return "r#" + name
	}
	return name
}

// sanitizeIdentifier makes name a valid Rust identifier. Invalid characters
// become underscores, a leading digit gets an underscore prefix and keywords
// are escaped. An empty name becomes fallback.
func sanitizeIdentifier(name, fallback string) string {
	if name == "" || name == "_" {
		return fallback
	}

	var b strings.Builder
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			b.WriteRune('_')
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return escapeReservedWord(b.String())
}

// stringLiteral quotes s as a Rust string literal.
func stringLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\u{%x}`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// blockComment renders s as an inline /* */ annotation. Rust block comments
// nest, so both delimiters are broken up.
func blockComment(s string) string {
	s = strings.ReplaceAll(s, "*/", "* /")
	s = strings.ReplaceAll(s, "/*", "/ *")
	s = strings.Join(strings.Fields(s), " ")
	return "/* " + s + " */"
}
