// SPDX-License-Identifier: MIT

package docio

// Node is one element of the generic document tree every backend parses
// into. Backends map their native structure onto it: XML elements carry
// attributes, YAML mappings become named children, and so on. Trees are
// plain values; nothing here holds external resources.
type Node struct {
	// Name is the element tag (XML) or mapping key (YAML).
	Name string

	// Text is the node's scalar character data, trimmed of surrounding
	// whitespace; empty for pure container nodes.
	Text string

	// Attr holds XML attributes; backends without a native attribute
	// concept leave it nil.
	Attr map[string]string

	// Children are the nested nodes in document order.
	Children []*Node
}

// Attribute returns the attribute value and whether it was present.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.Attr[key]

	return v, ok
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// ChildrenNamed returns all children with the given name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}

	return out
}

// Field resolves a logical field uniformly across backends: an attribute
// when present, otherwise the text of the first child with that name.
func (n *Node) Field(key string) (string, bool) {
	if v, ok := n.Attr[key]; ok {
		return v, true
	}
	if c := n.Child(key); c != nil {
		return c.Text, true
	}

	return "", false
}
