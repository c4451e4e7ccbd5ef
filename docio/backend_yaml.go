// SPDX-License-Identifier: MIT
// Package docio: the built-in YAML backend, mapping yaml.v3's node tree
// onto the generic one. Mapping keys become child names, sequence elements
// become children named "item", scalars become node text.

package docio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlRootName is the synthetic name of a YAML document's root node (YAML
// has no root tag of its own).
const yamlRootName = "document"

// yamlItemName is the synthetic name given to sequence elements.
const yamlItemName = "item"

type yamlBackend struct{}

// Doc implements Backend.
func (yamlBackend) Doc() string {
	return "YAML documents: mapping keys become nodes, sequence entries become items"
}

// Parse implements Backend.
func (yamlBackend) Parse(r io.Reader) (*Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("yaml: empty document")
	}

	return convertYAML(yamlRootName, doc.Content[0])
}

// convertYAML recursively maps one yaml node, named by its mapping key (or
// a synthetic name), onto the generic tree.
func convertYAML(name string, n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return &Node{Name: name, Text: n.Value}, nil

	case yaml.MappingNode:
		out := &Node{Name: name}
		// Content holds alternating key/value nodes.
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := convertYAML(n.Content[i].Value, n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		}

		return out, nil

	case yaml.SequenceNode:
		out := &Node{Name: name}
		for _, el := range n.Content {
			child, err := convertYAML(yamlItemName, el)
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, child)
		}

		return out, nil

	case yaml.AliasNode:
		return convertYAML(name, n.Alias)

	default:
		return nil, fmt.Errorf("yaml: unsupported node kind %d", n.Kind)
	}
}
