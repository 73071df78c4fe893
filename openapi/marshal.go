package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// JSON returns the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode json: %w", err)
	}
	return data, nil
}

// YAML returns the document as block-style YAML with the same key order
// as the JSON form.
func (d *Document) YAML() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode yaml: %w", err)
	}
	return data, nil
}

// MarshalYAML implements yaml.Marshaler.
//
// The ordered maps of the document only know how to encode themselves as
// JSON, so the document is encoded to JSON first and decoded into a node
// tree, which keeps every mapping in insertion order.
func (d Document) MarshalYAML() (any, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)

	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return node.Content[0], nil
	}
	return &node, nil
}

// clearStyle drops the flow and quoting styles picked up from the JSON
// source so the encoder emits block style.
func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}

// put sets key to value. An existing key keeps its position and takes the
// new value; a new key is appended.
func put[V any](m *sequencedmap.Map[string, V], key string, value V) *sequencedmap.Map[string, V] {
	if m == nil {
		m = sequencedmap.New[string, V]()
	}
	if !m.Has(key) {
		m.Set(key, value)
		return m
	}

	elems := make([]*sequencedmap.Element[string, V], 0, m.Len())
	for k, v := range m.All() {
		if k == key {
			v = value
		}
		elems = append(elems, sequencedmap.NewElem(k, v))
	}
	return sequencedmap.New(elems...)
}
