// SPDX-License-Identifier: MIT
// Package docio: the built-in XML backend. A thin token walk over
// encoding/xml's decoder; the decoder itself enforces well-formedness
// (balanced tags, single root).

package docio

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

type xmlBackend struct{}

// Doc implements Backend.
func (xmlBackend) Doc() string {
	return "XML documents: elements become nodes, attributes become node attributes"
}

// Parse implements Backend: builds the Node tree from the token stream.
func (xmlBackend) Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Node
		stack []*Node // open-element path; top is the current node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attr = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attr[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("xml: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.CharData:
			if len(stack) == 0 {
				continue // whitespace outside the root
			}
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			cur := stack[len(stack)-1]
			if cur.Text != "" {
				cur.Text += " "
			}
			cur.Text += text

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, errors.New("xml: empty document")
	}

	return root, nil
}
