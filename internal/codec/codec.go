// Package codec reads and writes documents at the tool boundary: subjects
// to evaluate, interchange records, and results.
package codec

import (
	"errors"
	"fmt"
	"io"

	yaml "github.com/goccy/go-yaml"

	"github.com/dsillman2000/jsque/internal/ast"
)

// DecodeSubject decodes one YAML or JSON document into evaluable values.
// Mappings decode ordered, so evaluation and re-encoding follow the
// document's own key order, and scalars keep their identity: 1 and "1"
// stay distinct.
func DecodeSubject(r io.Reader) (any, error) {
	decoder := yaml.NewDecoder(r, yaml.UseOrderedMap())

	var subject any
	if err := decoder.Decode(&subject); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode subject: empty document")
		}
		return nil, fmt.Errorf("decode subject: %w", err)
	}
	return subject, nil
}

// DecodeTree decodes an interchange record from YAML or JSON bytes.
func DecodeTree(data []byte) (*ast.Tree, error) {
	var tree ast.Tree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &tree, nil
}

// EncodeYAML renders a value as a YAML document.
func EncodeYAML(v any) ([]byte, error) {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return payload, nil
}

// EncodeJSON renders a value as a JSON document. Encoding goes through the
// YAML form so ordered mappings keep their key order.
func EncodeJSON(v any) ([]byte, error) {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	out, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("encode JSON: %w", err)
	}
	return out, nil
}
