// Package numeric_test: shared fixture helpers.
package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matstack/matstack/numeric"
)

// MustNew builds a matrix or fails the test immediately.
func MustNew(t *testing.T, rows, cols int, data []float64) *numeric.Matrix {
	t.Helper()
	m, err := numeric.New(rows, cols, data)
	require.NoError(t, err)

	return m
}

// MustAt reads an entry or fails the test immediately.
func MustAt(t *testing.T, m *numeric.Matrix, row, col int) float64 {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}
