package ir

import "encoding/json"

// JSON serialization support for IR types.
// Declarations and references include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for AliasDecl.
func (d *AliasDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		Name          string
		Underlying    string
		Documentation string
	}{
		Kind:          "alias",
		Name:          d.Name,
		Underlying:    d.Underlying.String(),
		Documentation: d.Documentation,
	})
}

// MarshalJSON implements json.Marshaler for TupleDecl.
func (d *TupleDecl) MarshalJSON() ([]byte, error) {
	type Alias TupleDecl
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*Alias
	}{
		Kind:  "tuple",
		Alias: (*Alias)(d),
	})
}

// MarshalJSON implements json.Marshaler for StructDecl.
func (d *StructDecl) MarshalJSON() ([]byte, error) {
	type Alias StructDecl
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		*Alias
	}{
		Kind:  "struct",
		Alias: (*Alias)(d),
	})
}

// MarshalJSON implements json.Marshaler for PrimitiveRef.
func (r *PrimitiveRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		PrimitiveKind string `json:"primitiveKind"`
	}{
		Kind:          "primitive",
		PrimitiveKind: r.PrimitiveKind.String(),
	})
}

// MarshalJSON implements json.Marshaler for PathRef.
func (r *PathRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind      string `json:"kind"`
		Namespace string `json:"namespace"`
		Name      string `json:"name"`
	}{
		Kind:      "path",
		Namespace: r.Namespace,
		Name:      r.Name,
	})
}
