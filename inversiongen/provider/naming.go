package provider

import (
	"github.com/cockroachdb/errors"

	"github.com/broady/inversion/internal/casing"
)

// Naming selects how child declarations generated for struct fields are named.
// Tuple slots are always named {Parent}{index}.
type Naming int

const (
	// NamingField names a nested struct field type after the field alone:
	// field "sub" of CallTwo becomes call_two::Sub.
	NamingField Naming = iota

	// NamingQualified prefixes the parent name: field "sub" of CallTwo
	// becomes call_two::CallTwo_Sub.
	NamingQualified
)

// String returns the name used in configuration ("field" or "qualified").
func (n Naming) String() string {
	switch n {
	case NamingField:
		return "field"
	case NamingQualified:
		return "qualified"
	default:
		return "unknown"
	}
}

// ParseNaming parses a naming policy name. The empty string selects NamingField.
func ParseNaming(s string) (Naming, error) {
	switch s {
	case "", "field":
		return NamingField, nil
	case "qualified":
		return NamingQualified, nil
	default:
		return 0, errors.WithHint(errors.Newf("unknown naming policy %q", s),
			`use "field" or "qualified"`)
	}
}

// fieldTypeName returns the declaration name for a composite struct field.
func (n Naming) fieldTypeName(parent, field string) string {
	if n == NamingQualified {
		return parent + "_" + casing.Pascal(field)
	}
	return casing.Pascal(field)
}
