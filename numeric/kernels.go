// SPDX-License-Identifier: MIT
// Package numeric: kernel implementations of the algebra.Value contract.
// The algebra validates extents and offsets before delegating here; kernels
// revalidate cheaply with the same algebra sentinels so direct callers get
// identical errors, and never coerce mismatched shapes.

package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/matstack/matstack/algebra"
)

// Compile-time check: *Matrix satisfies the representation contract.
var _ algebra.Value[*Matrix] = (*Matrix)(nil)

// ConcatCols joins m and tail side by side, left to right.
// Result: shared row extent, summed column extents, blocks in input order;
// the pattern is the union of the inputs' with shifted column indices.
//
// Errors: algebra.ErrDimensionMismatch when row extents differ.
// Complexity: O(rows * total cols).
func (m *Matrix) ConcatCols(tail []*Matrix) (*Matrix, error) {
	parts := append([]*Matrix{m}, tail...)
	cols := 0
	for i, p := range parts {
		if p.rows != m.rows {
			return nil, fmt.Errorf("ConcatCols: arg %d has %d rows, want %d: %w",
				i, p.rows, m.rows, algebra.ErrDimensionMismatch)
		}
		cols += p.cols
	}

	data := make([]float64, m.rows*cols)
	offset := 0 // cumulative column offset of the current block
	for _, p := range parts {
		for i := 0; i < p.rows; i++ {
			for j := 0; j < p.cols; j++ {
				data[i*cols+offset+j] = p.at(i, j)
			}
		}
		offset += p.cols
	}

	return fromData(m.rows, cols, data), nil
}

// ConcatRows stacks m and tail top to bottom; the row-axis analogue of
// ConcatCols.
//
// Errors: algebra.ErrDimensionMismatch when column extents differ.
// Complexity: O(total rows * cols).
func (m *Matrix) ConcatRows(tail []*Matrix) (*Matrix, error) {
	parts := append([]*Matrix{m}, tail...)
	rows := 0
	for i, p := range parts {
		if p.cols != m.cols {
			return nil, fmt.Errorf("ConcatRows: arg %d has %d cols, want %d: %w",
				i, p.cols, m.cols, algebra.ErrDimensionMismatch)
		}
		rows += p.rows
	}

	data := make([]float64, rows*m.cols)
	offset := 0 // cumulative row offset of the current block
	for _, p := range parts {
		for i := 0; i < p.rows; i++ {
			for j := 0; j < p.cols; j++ {
				data[(offset+i)*m.cols+j] = p.at(i, j)
			}
		}
		offset += p.rows
	}

	return fromData(rows, m.cols, data), nil
}

// SplitCols partitions the columns into the consecutive groups
// [offsets[i], offsets[i+1]); every piece keeps the full row extent.
// Consecutive equal offsets yield empty (rows×0) pieces.
//
// Errors: algebra.ErrInvalidOffsets for a malformed partition.
// Complexity: O(rows * cols) over all pieces.
func (m *Matrix) SplitCols(offsets []int) ([]*Matrix, error) {
	if err := checkPartition("SplitCols", offsets, m.cols); err != nil {
		return nil, err
	}

	out := make([]*Matrix, 0, len(offsets)-1)
	for g := 0; g+1 < len(offsets); g++ {
		piece, err := m.ColRange(offsets[g], offsets[g+1])
		if err != nil {
			return nil, fmt.Errorf("SplitCols: group %d: %w", g, err)
		}
		out = append(out, piece)
	}

	return out, nil
}

// SplitRows partitions the rows; the row-axis analogue of SplitCols.
//
// Errors: algebra.ErrInvalidOffsets for a malformed partition.
func (m *Matrix) SplitRows(offsets []int) ([]*Matrix, error) {
	if err := checkPartition("SplitRows", offsets, m.rows); err != nil {
		return nil, err
	}

	out := make([]*Matrix, 0, len(offsets)-1)
	for g := 0; g+1 < len(offsets); g++ {
		piece, err := m.RowRange(offsets[g], offsets[g+1])
		if err != nil {
			return nil, fmt.Errorf("SplitRows: group %d: %w", g, err)
		}
		out = append(out, piece)
	}

	return out, nil
}

// DiagJoin assembles m and tail along the diagonal: rows and columns are
// the respective sums, each input occupies the block at its cumulative
// offsets, all other entries are zero and structurally absent.
//
// Complexity: O(result rows * result cols).
func (m *Matrix) DiagJoin(tail []*Matrix) (*Matrix, error) {
	parts := append([]*Matrix{m}, tail...)
	var rows, cols int
	for _, p := range parts {
		rows += p.rows
		cols += p.cols
	}

	data := make([]float64, rows*cols)
	var rOff, cOff int // cumulative block offsets
	for _, p := range parts {
		for i := 0; i < p.rows; i++ {
			for j := 0; j < p.cols; j++ {
				data[(rOff+i)*cols+cOff+j] = p.at(i, j)
			}
		}
		rOff += p.rows
		cOff += p.cols
	}

	return fromData(rows, cols, data), nil
}

// MatMul returns the standard product m*y with an exact result pattern.
// Delegates the non-degenerate case to gonum's dense multiply.
//
// Errors: algebra.ErrDimensionMismatch when m.Cols() != y.Rows().
// Complexity: O(rows * inner * cols).
func (m *Matrix) MatMul(y *Matrix) (*Matrix, error) {
	if m.cols != y.rows {
		return nil, fmt.Errorf("MatMul: %dx%d * %dx%d: %w",
			m.rows, m.cols, y.rows, y.cols, algebra.ErrDimensionMismatch)
	}

	return m.mulUnchecked(y), nil
}

// mulUnchecked multiplies with dimensions already validated. A zero inner
// extent yields the explicit zero matrix of the outer shape.
func (m *Matrix) mulUnchecked(y *Matrix) *Matrix {
	if m.rows == 0 || y.cols == 0 || m.cols == 0 {
		return fromData(m.rows, y.cols, make([]float64, m.rows*y.cols))
	}

	var prod mat.Dense
	prod.Mul(m.data, y.data)

	data := make([]float64, m.rows*y.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < y.cols; j++ {
			data[i*y.cols+j] = prod.At(i, j)
		}
	}

	return fromData(m.rows, y.cols, data)
}

// MatMulAcc computes m*y, discards every product entry outside z's pattern
// and adds the rest element-wise into z: z + sparsify(m*y, pattern(z)).
// The result's pattern is a subset of z's (exact cancellation may shrink it).
//
// Errors: algebra.ErrDimensionMismatch on inner or target shape mismatch.
// Complexity: O(rows * inner * cols) for the product plus O(nnz(z)).
func (m *Matrix) MatMulAcc(y, z *Matrix) (*Matrix, error) {
	if m.cols != y.rows {
		return nil, fmt.Errorf("MatMulAcc: %dx%d * %dx%d: %w",
			m.rows, m.cols, y.rows, y.cols, algebra.ErrDimensionMismatch)
	}
	if z.rows != m.rows || z.cols != y.cols {
		return nil, fmt.Errorf("MatMulAcc: target %dx%d, product %dx%d: %w",
			z.rows, z.cols, m.rows, y.cols, algebra.ErrDimensionMismatch)
	}

	prod := m.mulUnchecked(y)
	data := z.raw()
	for _, c := range z.pat.Coords() {
		data[c.Row*z.cols+c.Col] += prod.at(c.Row, c.Col)
	}

	return fromData(z.rows, z.cols, data), nil
}

// Transpose returns the matrix with extents swapped and every entry moved
// from (r,c) to (c,r). Complexity: O(rows*cols).
func (m *Matrix) Transpose() *Matrix {
	data := make([]float64, m.cols*m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			data[j*m.rows+i] = m.at(i, j)
		}
	}

	return fromData(m.cols, m.rows, data)
}

// checkPartition mirrors the algebra's full-partition offset contract so
// kernels called directly report the same sentinel.
func checkPartition(op string, offsets []int, extent int) error {
	if len(offsets) < 1 || offsets[0] != 0 || offsets[len(offsets)-1] != extent {
		return fmt.Errorf("%s: offsets %v over extent %d: %w", op, offsets, extent, algebra.ErrInvalidOffsets)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%s: offsets %v decrease at %d: %w", op, offsets, i, algebra.ErrInvalidOffsets)
		}
	}

	return nil
}
