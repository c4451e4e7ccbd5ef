// SPDX-License-Identifier: MIT
// Package algebra: the capability contract concrete representations
// implement. The generic operations in algebra.go are written purely in
// terms of this interface; they never inspect representation-internal
// storage, only extents and kernels.

package algebra

// Value is the capability set a concrete matrix representation must expose
// for the generic algebra to operate over it. The constraint is
// self-referential (T Value[T]) so kernels consume and produce values of
// their own concrete type with no boxing.
//
// Kernel conventions:
//   - Values are immutable: every kernel returns a freshly owned value and
//     retains no reference to its inputs beyond the call.
//   - List-form kernels take the receiver as the first element followed by
//     tail, i.e. ConcatCols joins x, tail[0], tail[1], ... in that order.
//   - The algebra validates extents and offsets before delegating; kernels
//     may revalidate but must never coerce mismatched shapes.
type Value[T any] interface {
	// Rows returns the non-negative row extent.
	Rows() int

	// Cols returns the non-negative column extent.
	Cols() int

	// ConcatCols joins the receiver and tail side by side, left to right.
	// All values share the row extent; the result's column extent is the
	// sum of the inputs' and each input's pattern shifts by its cumulative
	// column offset.
	ConcatCols(tail []T) (T, error)

	// ConcatRows stacks the receiver and tail top to bottom; the row-axis
	// analogue of ConcatCols.
	ConcatRows(tail []T) (T, error)

	// SplitCols partitions the columns into the consecutive groups
	// [offsets[i], offsets[i+1]); each piece keeps the full row extent and
	// the sub-pattern of its column range, re-indexed from zero.
	SplitCols(offsets []int) ([]T, error)

	// SplitRows partitions the rows; the row-axis analogue of SplitCols.
	SplitRows(offsets []int) ([]T, error)

	// DiagJoin assembles the receiver and tail along the diagonal of a
	// larger value; every off-block coordinate is structurally absent.
	DiagJoin(tail []T) (T, error)

	// MatMul returns the standard matrix product receiver*y. The result's
	// sparsity is representation-determined: exact for numeric values, a
	// conservative structural superset for symbolic ones.
	MatMul(y T) (T, error)

	// MatMulAcc computes receiver*y, discards every product entry outside
	// z's sparsity pattern and adds the rest element-wise into z:
	// z + sparsify(receiver*y, pattern(z)).
	MatMulAcc(y, z T) (T, error)

	// Transpose returns the value with extents swapped and every pattern
	// coordinate (r,c) flipped to (c,r).
	Transpose() T
}
