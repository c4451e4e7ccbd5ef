// SPDX-License-Identifier: MIT
// Package symbolic: kernel implementations of the algebra.Value contract.
// Kernels build graph nodes, propagate conservative patterns through the
// sparsity combinators, and apply the structural simplifications documented
// in doc.go. Shape violations reuse the algebra package's sentinels.

package symbolic

import (
	"fmt"

	"github.com/matstack/matstack/algebra"
	"github.com/matstack/matstack/sparsity"
)

// Compile-time check: *Expr satisfies the representation contract.
var _ algebra.Value[*Expr] = (*Expr)(nil)

// ConcatCols joins e and tail side by side as an hcat node. Zero-column
// operands contribute nothing along the axis and are dropped up front; if
// every remaining part is a contiguous column slice of one parent spanning
// its full width, the parent itself is returned, so
// HorzCat(HorzSplit(x)...) == x structurally for every valid partition,
// empty edge groups included.
//
// Errors: algebra.ErrDimensionMismatch when row extents differ.
func (e *Expr) ConcatCols(tail []*Expr) (*Expr, error) {
	all := append([]*Expr{e}, tail...)
	parts := make([]*Expr, 0, len(all))
	for i, p := range all {
		if p.rows != e.rows {
			return nil, fmt.Errorf("ConcatCols: arg %d has %d rows, want %d: %w",
				i, p.rows, e.rows, algebra.ErrDimensionMismatch)
		}
		if p.cols > 0 {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		// Every operand is rows×0; so is the concatenation.
		return e, nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	if parent := sliceSpanParent(parts, opColSlice); parent != nil {
		return parent, nil
	}

	pats := make([]*sparsity.Pattern, len(parts))
	cols := 0
	for i, p := range parts {
		pats[i] = p.pat
		cols += p.cols
	}
	pat, err := sparsity.ConcatCols(pats...)
	if err != nil {
		return nil, fmt.Errorf("ConcatCols: %w", err)
	}

	return &Expr{op: opHCat, args: parts, rows: e.rows, cols: cols, pat: pat}, nil
}

// ConcatRows stacks e and tail top to bottom as a vcat node; the row-axis
// analogue of ConcatCols, with the matching zero-row drop and slice-span
// simplification.
//
// Errors: algebra.ErrDimensionMismatch when column extents differ.
func (e *Expr) ConcatRows(tail []*Expr) (*Expr, error) {
	all := append([]*Expr{e}, tail...)
	parts := make([]*Expr, 0, len(all))
	for i, p := range all {
		if p.cols != e.cols {
			return nil, fmt.Errorf("ConcatRows: arg %d has %d cols, want %d: %w",
				i, p.cols, e.cols, algebra.ErrDimensionMismatch)
		}
		if p.rows > 0 {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		// Every operand is 0×cols; so is the concatenation.
		return e, nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	if parent := sliceSpanParent(parts, opRowSlice); parent != nil {
		return parent, nil
	}

	pats := make([]*sparsity.Pattern, len(parts))
	rows := 0
	for i, p := range parts {
		pats[i] = p.pat
		rows += p.rows
	}
	pat, err := sparsity.ConcatRows(pats...)
	if err != nil {
		return nil, fmt.Errorf("ConcatRows: %w", err)
	}

	return &Expr{op: opVCat, args: parts, rows: rows, cols: e.cols, pat: pat}, nil
}

// sliceSpanParent detects the concat-of-split shape: every part is a slice
// node of the given kind over one shared parent, the ranges are contiguous
// from 0 and the last range ends at the parent's full extent along the
// sliced axis. Returns the parent, or nil when the shape does not match.
func sliceSpanParent(parts []*Expr, kind opKind) *Expr {
	first := parts[0]
	if first.op != kind || len(first.args) != 1 || first.lo != 0 {
		return nil
	}
	parent := first.args[0]
	next := first.hi
	for _, p := range parts[1:] {
		if p.op != kind || len(p.args) != 1 || p.args[0] != parent || p.lo != next {
			return nil
		}
		next = p.hi
	}

	extent := parent.cols
	if kind == opRowSlice {
		extent = parent.rows
	}
	if next != extent {
		return nil
	}

	return parent
}

// SplitCols partitions the columns into slice nodes over the consecutive
// groups [offsets[i], offsets[i+1]). A group spanning the full width is the
// node itself; a slice of a slice collapses into a single slice of the
// grandparent.
//
// Errors: algebra.ErrInvalidOffsets for a malformed partition.
func (e *Expr) SplitCols(offsets []int) ([]*Expr, error) {
	if err := checkPartition("SplitCols", offsets, e.cols); err != nil {
		return nil, err
	}

	out := make([]*Expr, 0, len(offsets)-1)
	for g := 0; g+1 < len(offsets); g++ {
		piece, err := e.colSlice(offsets[g], offsets[g+1])
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
func (e *Expr) SplitRows(offsets []int) ([]*Expr, error) {
	if err := checkPartition("SplitRows", offsets, e.rows); err != nil {
		return nil, err
	}

	out := make([]*Expr, 0, len(offsets)-1)
	for g := 0; g+1 < len(offsets); g++ {
		piece, err := e.rowSlice(offsets[g], offsets[g+1])
		if err != nil {
			return nil, fmt.Errorf("SplitRows: group %d: %w", g, err)
		}
		out = append(out, piece)
	}

	return out, nil
}

// colSlice builds a column-range node over [lo, hi) with the documented
// collapses. Callers guarantee 0 <= lo <= hi <= e.cols.
func (e *Expr) colSlice(lo, hi int) (*Expr, error) {
	if lo == 0 && hi == e.cols {
		return e, nil
	}
	if e.op == opColSlice {
		// Slice of a slice: re-target the parent directly.
		return e.args[0].colSlice(e.lo+lo, e.lo+hi)
	}
	pat, err := e.pat.ColRange(lo, hi)
	if err != nil {
		return nil, err
	}

	return &Expr{op: opColSlice, args: []*Expr{e}, rows: e.rows, cols: hi - lo, pat: pat, lo: lo, hi: hi}, nil
}

// rowSlice builds a row-range node over [lo, hi); the row-axis analogue of
// colSlice.
func (e *Expr) rowSlice(lo, hi int) (*Expr, error) {
	if lo == 0 && hi == e.rows {
		return e, nil
	}
	if e.op == opRowSlice {
		return e.args[0].rowSlice(e.lo+lo, e.lo+hi)
	}
	pat, err := e.pat.RowRange(lo, hi)
	if err != nil {
		return nil, err
	}

	return &Expr{op: opRowSlice, args: []*Expr{e}, rows: hi - lo, cols: e.cols, pat: pat, lo: lo, hi: hi}, nil
}

// DiagJoin assembles e and tail along the diagonal as a diagcat node; every
// off-block coordinate is structurally absent from the result's pattern.
func (e *Expr) DiagJoin(tail []*Expr) (*Expr, error) {
	parts := append([]*Expr{e}, tail...)
	if len(parts) == 1 {
		return e, nil
	}

	pats := make([]*sparsity.Pattern, len(parts))
	var rows, cols int
	for i, p := range parts {
		pats[i] = p.pat
		rows += p.rows
		cols += p.cols
	}
	pat, err := sparsity.BlockDiag(pats...)
	if err != nil {
		return nil, fmt.Errorf("DiagJoin: %w", err)
	}

	return &Expr{op: opDiagCat, args: parts, rows: rows, cols: cols, pat: pat}, nil
}

// MatMul builds the product node e*y; its pattern is the boolean product of
// the operand patterns — a conservative superset of any evaluation.
//
// Errors: algebra.ErrDimensionMismatch when e.Cols() != y.Rows().
func (e *Expr) MatMul(y *Expr) (*Expr, error) {
	if e.cols != y.rows {
		return nil, fmt.Errorf("MatMul: %dx%d * %dx%d: %w",
			e.rows, e.cols, y.rows, y.cols, algebra.ErrDimensionMismatch)
	}
	pat, err := sparsity.MulPattern(e.pat, y.pat)
	if err != nil {
		return nil, fmt.Errorf("MatMul: %w", err)
	}

	return &Expr{op: opMul, args: []*Expr{e, y}, rows: e.rows, cols: y.cols, pat: pat}, nil
}

// MatMulAcc builds the restricted-product node z + sparsify(e*y, pattern(z));
// the result's pattern equals z's, since restriction then addition cannot
// introduce coordinates outside it.
//
// Errors: algebra.ErrDimensionMismatch on inner or target shape mismatch.
func (e *Expr) MatMulAcc(y, z *Expr) (*Expr, error) {
	if e.cols != y.rows {
		return nil, fmt.Errorf("MatMulAcc: %dx%d * %dx%d: %w",
			e.rows, e.cols, y.rows, y.cols, algebra.ErrDimensionMismatch)
	}
	if z.rows != e.rows || z.cols != y.cols {
		return nil, fmt.Errorf("MatMulAcc: target %dx%d, product %dx%d: %w",
			z.rows, z.cols, e.rows, y.cols, algebra.ErrDimensionMismatch)
	}

	return &Expr{op: opMulAcc, args: []*Expr{e, y, z}, rows: z.rows, cols: z.cols, pat: z.pat}, nil
}

// Transpose returns the transpose node; transposing a transpose returns the
// underlying node, so Transpose(Transpose(x)) == x structurally.
func (e *Expr) Transpose() *Expr {
	if e.op == opTrans {
		return e.args[0]
	}

	return &Expr{op: opTrans, args: []*Expr{e}, rows: e.cols, cols: e.rows, pat: e.pat.Transpose()}
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
