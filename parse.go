package inversion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Type discriminators as written in spec documents.
const (
	typeBool   = "bool"
	typeU32    = "u32"
	typeString = "string"
	typeTuple  = "tuple"
	typeStruct = "struct"
)

// ParseJSON parses a JSON spec document.
//
// Object key order is preserved: Spec.Types and Struct.Content keep the order in
// which entries appear in the document.
func ParseJSON(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, errors.WithHint(errors.New("document is not valid JSON"),
			"use ParseYAML for YAML documents")
	}
	// JSON is decoded through the YAML node tree, which keeps mapping order.
	return decode(data)
}

// ParseYAML parses a YAML spec document with the same shape as the JSON form.
func ParseYAML(data []byte) (*Document, error) {
	return decode(data)
}

// Parse parses data according to a file extension (".json", ".yaml" or ".yml").
func Parse(data []byte, ext string) (*Document, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, errors.WithHint(errors.Newf("unsupported spec extension %q", ext),
			"spec documents must end in .json, .yaml or .yml")
	}
}

// ReadFile reads and parses the spec document at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read spec %s", path)
	}
	doc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "parse spec %s", path)
	}
	return doc, nil
}

func decode(data []byte) (*Document, error) {
	var root struct {
		Spec yaml.Node `yaml:"inversionApiSpec"`
	}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	if root.Spec.Kind == 0 {
		return nil, errors.WithHint(errors.New("missing inversionApiSpec"),
			`the document root must be an object with an "inversionApiSpec" key`)
	}

	spec, err := decodeSpec(&root.Spec)
	if err != nil {
		return nil, err
	}
	return &Document{InversionAPISpec: *spec}, nil
}

func decodeSpec(node *yaml.Node) (*Spec, error) {
	var hdr struct {
		ID        string    `yaml:"id"`
		Title     string    `yaml:"title"`
		Revision  int       `yaml:"revision"`
		ErrorType string    `yaml:"errorType"`
		Types     yaml.Node `yaml:"types"`
	}
	if err := node.Decode(&hdr); err != nil {
		return nil, errors.Wrap(err, "decode inversionApiSpec")
	}

	spec := &Spec{
		ID:        hdr.ID,
		Title:     hdr.Title,
		Revision:  hdr.Revision,
		ErrorType: hdr.ErrorType,
	}

	types := resolve(&hdr.Types)
	if types.Kind == 0 {
		return spec, nil
	}
	if types.Kind != yaml.MappingNode {
		return nil, nodeError(types, "types", "must be an object")
	}
	for i := 0; i+1 < len(types.Content); i += 2 {
		name := types.Content[i].Value
		t, err := decodeType(name, types.Content[i+1])
		if err != nil {
			return nil, err
		}
		spec.Types = append(spec.Types, NamedType{Name: name, Type: t})
	}
	return spec, nil
}

// decodeType decodes one type object. path names the node in error messages,
// e.g. "callTwo.sub" or "callOne[1]".
func decodeType(path string, node *yaml.Node) (Type, error) {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, path, "type must be an object")
	}

	var hdr struct {
		Doc     string    `yaml:"doc"`
		Type    string    `yaml:"type"`
		Content yaml.Node `yaml:"content"`
	}
	if err := node.Decode(&hdr); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	switch hdr.Type {
	case typeBool:
		return &Bool{Doc: hdr.Doc}, nil
	case typeU32:
		return &U32{Doc: hdr.Doc}, nil
	case typeString:
		return &String{Doc: hdr.Doc}, nil
	case typeTuple:
		elems, err := decodeElements(path, resolve(&hdr.Content))
		if err != nil {
			return nil, err
		}
		return &Tuple{Doc: hdr.Doc, Content: elems}, nil
	case typeStruct:
		fields, err := decodeFields(path, resolve(&hdr.Content))
		if err != nil {
			return nil, err
		}
		return &Struct{Doc: hdr.Doc, Content: fields}, nil
	default:
		return &Unknown{Name: hdr.Type, Doc: hdr.Doc}, nil
	}
}

func decodeElements(path string, node *yaml.Node) ([]Element, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, nodeError(node, path, "tuple content must be an array")
	}
	elems := make([]Element, 0, len(node.Content))
	for i, item := range node.Content {
		index, t, err := decodeEntry(path+"["+strconv.Itoa(i)+"]", item)
		if err != nil {
			return nil, err
		}
		elems = append(elems, Element{Index: index, Content: t})
	}
	return elems, nil
}

func decodeFields(path string, node *yaml.Node) ([]Field, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, path, "struct content must be an object")
	}
	fields := make([]Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		index, t, err := decodeEntry(path+"."+name, node.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Index: index, Content: t})
	}
	return fields, nil
}

// decodeEntry decodes an {"index": n, "content": type} wrapper.
func decodeEntry(path string, node *yaml.Node) (int, Type, error) {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return 0, nil, nodeError(node, path, "entry must be an object with index and content")
	}

	var entry struct {
		Index   *int      `yaml:"index"`
		Content yaml.Node `yaml:"content"`
	}
	if err := node.Decode(&entry); err != nil {
		return 0, nil, errors.Wrapf(err, "decode %s", path)
	}
	if entry.Index == nil {
		return 0, nil, errors.WithHint(nodeError(node, path, "missing index"),
			"every tuple element and struct field needs an integer index")
	}
	if entry.Content.Kind == 0 {
		return 0, nil, nodeError(node, path, "missing content")
	}

	t, err := decodeType(path, &entry.Content)
	if err != nil {
		return 0, nil, err
	}
	return *entry.Index, t, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func nodeError(node *yaml.Node, path, msg string) error {
	return errors.Newf("%s (line %d, column %d): %s", path, node.Line, node.Column, msg)
}
