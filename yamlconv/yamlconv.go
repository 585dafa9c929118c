// Package yamlconv bridges YAML documents and value trees, giving configs
// a third ingestion format next to the json and ini codecs.
package yamlconv

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/c2p-dev/go-c2p/vtree"
)

// Parse reads one YAML document into a tree. All numbers collapse to
// float64.
func Parse(input string) (*vtree.Tree, error) {
	if input == "" {
		return nil, errors.New("cannot parse an empty document")
	}
	var v any
	if err := yaml.Unmarshal([]byte(input), &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	tree, err := vtree.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return tree, nil
}

// Dump serializes a tree as YAML, "" for an Empty tree.
func Dump(t *vtree.Tree) (string, error) {
	if t == nil || t.IsEmpty() {
		return "", nil
	}
	out, err := yaml.Marshal(vtree.ToAny(t))
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(out), nil
}
