// SPDX-License-Identifier: MIT
// Package numeric: the Matrix value type, constructors and accessors.
// Kernel implementations live in kernels.go.

package numeric

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/matstack/matstack/sparsity"
)

// Matrix is an immutable rows×cols matrix of float64 entries with an exact
// structural sparsity pattern. data is nil iff rows*cols == 0 (gonum
// forbids zero-extent allocation). Never mutated after construction.
type Matrix struct {
	rows, cols int
	data       *mat.Dense        // row-major backing storage, nil when empty
	pat        *sparsity.Pattern // exact non-zero coordinates
}

// New creates a rows×cols Matrix from row-major data.
// Stage 1 (Validate): extents non-negative, length matches, entries finite.
// Stage 2 (Prepare): copy the data so the caller keeps ownership.
// Stage 3 (Finalize): compute the exact pattern and return the value.
//
// Errors: ErrBadShape, ErrBadData, ErrNaNInf.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("New(%d,%d): got %d values: %w", rows, cols, len(data), ErrBadData)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New(%d,%d): value %d: %w", rows, cols, i, ErrNaNInf)
		}
	}

	cp := make([]float64, len(data))
	copy(cp, data)

	return fromData(rows, cols, cp), nil
}

// Zeros returns the rows×cols all-zero matrix (empty pattern).
// Errors: ErrBadShape.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return fromData(rows, cols, make([]float64, rows*cols)), nil
}

// Identity returns the n×n identity matrix (diagonal pattern).
// Errors: ErrBadShape for n < 0.
func Identity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1.0
	}

	return fromData(n, n, data), nil
}

// fromData wraps validated row-major data, taking ownership of the slice,
// and computes the exact pattern. Internal: callers guarantee
// len(data) == rows*cols and rows, cols >= 0.
func fromData(rows, cols int, data []float64) *Matrix {
	var d *mat.Dense
	if rows > 0 && cols > 0 {
		d = mat.NewDense(rows, cols, data)
	}

	var cc []sparsity.Coord
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if data[i*cols+j] != 0 {
				cc = append(cc, sparsity.Coord{Row: i, Col: j})
			}
		}
	}
	// Row-major construction keeps cc sorted; New only re-checks ranges.
	pat, err := sparsity.New(rows, cols, cc)
	if err != nil {
		panic(fmt.Sprintf("numeric: internal pattern construction: %v", err))
	}

	return &Matrix{rows: rows, cols: cols, data: d, pat: pat}
}

// Rows returns the row extent. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column extent. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Pattern returns the exact structural pattern. The pattern is immutable
// and may be shared freely. Complexity: O(1).
func (m *Matrix) Pattern() *sparsity.Pattern { return m.pat }

// At retrieves the entry at (row, col).
// Errors: ErrOutOfRange on invalid indices; never panics.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("At(%d,%d) of %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}

	return m.data.At(row, col), nil
}

// at reads without bounds checks; callers guarantee valid indices on a
// non-empty matrix.
func (m *Matrix) at(row, col int) float64 { return m.data.At(row, col) }

// raw returns a fresh row-major copy of the entries (empty slice for
// zero-extent shapes).
func (m *Matrix) raw() []float64 {
	out := make([]float64, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[i*m.cols+j] = m.at(i, j)
		}
	}

	return out
}

// Equal reports exact equality: same extents and bit-equal entries.
// Complexity: O(rows*cols).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.at(i, j) != o.at(i, j) {
				return false
			}
		}
	}

	return true
}

// ColRange returns the sub-matrix of columns [lo, hi), re-indexed from
// zero, with the full row extent.
// Errors: ErrOutOfRange (lo < 0, hi > Cols(), or lo > hi).
func (m *Matrix) ColRange(lo, hi int) (*Matrix, error) {
	if lo < 0 || hi > m.cols || lo > hi {
		return nil, fmt.Errorf("ColRange(%d,%d) of %dx%d: %w", lo, hi, m.rows, m.cols, ErrOutOfRange)
	}
	w := hi - lo
	data := make([]float64, m.rows*w)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < w; j++ {
			data[i*w+j] = m.at(i, lo+j)
		}
	}

	return fromData(m.rows, w, data), nil
}

// RowRange returns the sub-matrix of rows [lo, hi), re-indexed from zero,
// with the full column extent.
// Errors: ErrOutOfRange (lo < 0, hi > Rows(), or lo > hi).
func (m *Matrix) RowRange(lo, hi int) (*Matrix, error) {
	if lo < 0 || hi > m.rows || lo > hi {
		return nil, fmt.Errorf("RowRange(%d,%d) of %dx%d: %w", lo, hi, m.rows, m.cols, ErrOutOfRange)
	}
	h := hi - lo
	data := make([]float64, h*m.cols)
	for i := 0; i < h; i++ {
		for j := 0; j < m.cols; j++ {
			data[i*m.cols+j] = m.at(lo+i, j)
		}
	}

	return fromData(h, m.cols, data), nil
}

// String implements fmt.Stringer for easy debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.at(i, j))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
