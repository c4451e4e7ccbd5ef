package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matstack/matstack/docio"
	"github.com/matstack/matstack/numeric"
)

// namedMatrix pairs a decoded matrix with its document name.
type namedMatrix struct {
	name string
	m    *numeric.Matrix
}

// loadMatrices parses the document at path and decodes every matrix node.
// A matrix node is any node carrying "rows" and "cols" fields (attributes
// or children, so both XML and YAML documents qualify) with row-major
// values in a "data" field or the node text.
func loadMatrices(path string) ([]namedMatrix, error) {
	name, err := backendFor(path)
	if err != nil {
		return nil, err
	}
	log.WithField("backend", name).Debug("loading document")

	f, err := docio.New(name)
	if err != nil {
		return nil, err
	}
	root, err := f.Parse(path)
	if err != nil {
		return nil, err
	}

	var out []namedMatrix
	if err = collectMatrices(root, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no matrix nodes found", path)
	}
	log.WithField("count", len(out)).Debug("decoded matrices")

	return out, nil
}

// collectMatrices walks the tree depth-first, decoding every node that
// looks like a matrix and recursing into everything else.
func collectMatrices(n *docio.Node, out *[]namedMatrix) error {
	if _, ok := n.Field("rows"); ok {
		if _, ok = n.Field("cols"); ok {
			nm, err := decodeMatrix(n)
			if err != nil {
				return err
			}
			*out = append(*out, nm)

			return nil
		}
	}
	for _, c := range n.Children {
		if err := collectMatrices(c, out); err != nil {
			return err
		}
	}

	return nil
}

// decodeMatrix builds a numeric matrix from one matrix node.
func decodeMatrix(n *docio.Node) (namedMatrix, error) {
	name, _ := n.Field("name")
	if name == "" {
		name = n.Name
	}

	rows, err := intField(n, name, "rows")
	if err != nil {
		return namedMatrix{}, err
	}
	cols, err := intField(n, name, "cols")
	if err != nil {
		return namedMatrix{}, err
	}

	raw, ok := n.Field("data")
	if !ok {
		raw = n.Text
	}
	fields := strings.Fields(raw)
	data := make([]float64, 0, len(fields))
	for _, fv := range fields {
		v, err := strconv.ParseFloat(fv, 64)
		if err != nil {
			return namedMatrix{}, fmt.Errorf("matrix %q: value %q: %w", name, fv, err)
		}
		data = append(data, v)
	}

	m, err := numeric.New(rows, cols, data)
	if err != nil {
		return namedMatrix{}, fmt.Errorf("matrix %q: %w", name, err)
	}

	return namedMatrix{name: name, m: m}, nil
}

// intField reads a non-negative integer field of a matrix node.
func intField(n *docio.Node, name, key string) (int, error) {
	raw, _ := n.Field(key)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("matrix %q: %s %q: %w", name, key, raw, err)
	}

	return v, nil
}
