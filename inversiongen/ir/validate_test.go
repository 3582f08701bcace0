package ir

import (
	"strings"
	"testing"
)

func TestModule_ValidateValid(t *testing.T) {
	if errs := sampleModule().Validate(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestModule_ValidateUnresolvedPath(t *testing.T) {
	m := &Module{}
	m.AddItem(Item{Decl: &TupleDecl{
		Name:     "CallOne",
		Elements: []TupleElement{{Index: 0, Type: Path("call_one", "CallOne0")}},
	}})

	errs := m.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	ve, ok := errs[0].(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", errs[0])
	}
	if ve.Code != "unresolved_path" {
		t.Errorf("Code = %q, want unresolved_path", ve.Code)
	}
	if !strings.Contains(ve.Error(), "call_one::CallOne0") {
		t.Errorf("Error() = %q", ve.Error())
	}
}

func TestModule_ValidateEmptyName(t *testing.T) {
	m := &Module{}
	m.AddItem(Item{Namespace: &Namespace{
		Name:  "outer",
		Items: []Item{{Decl: &AliasDecl{}}},
	}})

	errs := m.Validate()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if ve := errs[0].(*ValidationError); ve.Code != "empty_name" {
		t.Errorf("Code = %q, want empty_name", ve.Code)
	}
}
