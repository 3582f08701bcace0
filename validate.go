package inversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError lists the structural problems found in a document.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid spec document: " + strings.Join(e.Violations, "; ")
}

// Validate checks a parsed document for structural problems: empty names,
// negative indices and missing types. Duplicate indices are allowed; the
// generators keep document order among equal indices.
//
// Validate returns nil or a *ValidationError.
func Validate(doc *Document) error {
	if doc == nil {
		return &ValidationError{Violations: []string{"document is nil"}}
	}

	var violations []string
	check := func(path string, v any) {
		err := validate.Struct(v)
		if err == nil {
			return
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			violations = append(violations, path+": "+err.Error())
			return
		}
		for _, fe := range verrs {
			violations = append(violations, path+": "+describe(fe))
		}
	}

	var walk func(path string, t Type)
	walk = func(path string, t Type) {
		switch t := t.(type) {
		case *Tuple:
			for i, e := range t.Content {
				p := path + "[" + strconv.Itoa(i) + "]"
				check(p, e)
				walk(p, e.Content)
			}
		case *Struct:
			for _, f := range t.Content {
				p := path + "." + f.Name
				check(p, f)
				walk(p, f.Content)
			}
		}
	}

	for i, nt := range doc.InversionAPISpec.Types {
		path := nt.Name
		if path == "" {
			path = "types[" + strconv.Itoa(i) + "]"
		}
		check(path, nt)
		walk(path, nt.Type)
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s (got %v)", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}
