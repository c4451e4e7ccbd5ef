// SPDX-License-Identifier: MIT
// Package algebra: the generic operations.
//
// Every function here follows the same shape:
//   - Stage 1 (Validate): extents, offsets and list lengths via validators.go;
//     violations surface as errors.go sentinels before any kernel runs.
//   - Stage 2 (Normalize): expand increments into full partitions, wrap
//     variadic arguments into the list forms kernels expect.
//   - Stage 3 (Delegate): hand the representation-specific work to the
//     Value[T] kernels and, for Prod, fold the pairwise results.
//
// No operation holds state; all are pure functions of their arguments.

package algebra

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opHorzCat   = "HorzCat"
	opVertCat   = "VertCat"
	opHorzSplit = "HorzSplit"
	opVertSplit = "VertSplit"
	opBlkDiag   = "BlkDiag"
	opMul       = "Mul"
	opMulAcc    = "MulAcc"
	opProd      = "Prod"
)

// HorzCat concatenates the values horizontally, left to right. The variadic
// form subsumes the pairwise sugar: HorzCat(x, y) and HorzCat(vs...) are the
// same call.
//
// Contract: len(vs) >= 1 (ErrEmptyList); all row extents equal
// (ErrDimensionMismatch). The result has the shared row extent and the sum
// of the column extents, blocks in argument order.
//
// Guarantee: HorzCat(HorzSplit(x, offs)...) == x for every valid partition.
func HorzCat[T Value[T]](vs ...T) (T, error) {
	var zero T
	if err := validateNonEmpty(opHorzCat, vs); err != nil {
		return zero, err
	}
	if err := validateSameRows(opHorzCat, vs); err != nil {
		return zero, err
	}

	return vs[0].ConcatCols(vs[1:])
}

// VertCat concatenates the values vertically, top to bottom; the row-axis
// analogue of HorzCat.
//
// Contract: len(vs) >= 1 (ErrEmptyList); all column extents equal
// (ErrDimensionMismatch).
func VertCat[T Value[T]](vs ...T) (T, error) {
	var zero T
	if err := validateNonEmpty(opVertCat, vs); err != nil {
		return zero, err
	}
	if err := validateSameCols(opVertCat, vs); err != nil {
		return zero, err
	}

	return vs[0].ConcatRows(vs[1:])
}

// HorzSplit partitions x's columns into the len(offsets)-1 consecutive
// groups [offsets[i], offsets[i+1]). The offset list must be a full
// partition of [0, x.Cols()]: first element 0, last element x.Cols(),
// non-decreasing (ErrInvalidOffsets otherwise). Consecutive equal offsets
// produce empty (zero-column) groups.
func HorzSplit[T Value[T]](x T, offsets []int) ([]T, error) {
	if err := validateOffsets(opHorzSplit, offsets, x.Cols()); err != nil {
		return nil, err
	}

	return x.SplitCols(offsets)
}

// HorzSplitEvery partitions x's columns into fixed-size groups of incr
// columns each; only the final group may deviate from incr, absorbing
// whatever remains. A 7-column value split every 3 yields widths 3, 3, 1.
//
// Contract: incr >= 1 (ErrInvalidIncrement).
func HorzSplitEvery[T Value[T]](x T, incr int) ([]T, error) {
	if incr < 1 {
		return nil, fmt.Errorf("%s: incr %d: %w", opHorzSplit, incr, ErrInvalidIncrement)
	}

	return x.SplitCols(everyOffsets(x.Cols(), incr))
}

// VertSplit partitions x's rows; the row-axis analogue of HorzSplit with
// the identical full-partition offset contract.
func VertSplit[T Value[T]](x T, offsets []int) ([]T, error) {
	if err := validateOffsets(opVertSplit, offsets, x.Rows()); err != nil {
		return nil, err
	}

	return x.SplitRows(offsets)
}

// VertSplitEvery partitions x's rows into fixed-size groups of incr rows;
// the row-axis analogue of HorzSplitEvery with the identical remainder rule.
//
// Contract: incr >= 1 (ErrInvalidIncrement).
func VertSplitEvery[T Value[T]](x T, incr int) ([]T, error) {
	if incr < 1 {
		return nil, fmt.Errorf("%s: incr %d: %w", opVertSplit, incr, ErrInvalidIncrement)
	}

	return x.SplitRows(everyOffsets(x.Rows(), incr))
}

// BlkDiag assembles the values along the diagonal of a larger one: rows and
// columns are the respective sums, each input occupies the block at its
// cumulative offsets and everything off-block is structurally absent.
//
// Contract: len(vs) >= 1 (ErrEmptyList).
func BlkDiag[T Value[T]](vs ...T) (T, error) {
	var zero T
	if err := validateNonEmpty(opBlkDiag, vs); err != nil {
		return zero, err
	}

	return vs[0].DiagJoin(vs[1:])
}

// Mul returns the standard matrix product x*y.
//
// Contract: x.Cols() == y.Rows() (ErrDimensionMismatch).
func Mul[T Value[T]](x, y T) (T, error) {
	var zero T
	if err := validateInner(opMul, x, y); err != nil {
		return zero, err
	}

	return x.MatMul(y)
}

// MulAcc computes x*y restricted to z's sparsity pattern and adds it into z:
// z + sparsify(x*y, pattern(z)). Product entries outside z's pattern are
// discarded, never accumulated elsewhere; the result's pattern equals z's.
//
// Contract: x.Cols() == y.Rows() and z shaped x.Rows()×y.Cols()
// (ErrDimensionMismatch).
func MulAcc[T Value[T]](x, y, z T) (T, error) {
	var zero T
	if err := validateInner(opMulAcc, x, y); err != nil {
		return zero, err
	}
	if z.Rows() != x.Rows() || z.Cols() != y.Cols() {
		return zero, fmt.Errorf("%s: target %dx%d, product %dx%d: %w",
			opMulAcc, z.Rows(), z.Cols(), x.Rows(), y.Cols(), ErrDimensionMismatch)
	}

	return x.MatMulAcc(y, z)
}

// Prod left-folds pairwise multiplication over the values in argument
// order: ((vs[0]*vs[1])*vs[2])*... A single value is returned unchanged.
//
// Contract: len(vs) >= 1 (ErrEmptyList); every adjacent pair must be
// inner-compatible (ErrDimensionMismatch from the failing Mul).
func Prod[T Value[T]](vs ...T) (T, error) {
	var zero T
	if err := validateNonEmpty(opProd, vs); err != nil {
		return zero, err
	}

	acc := vs[0]
	var err error
	for i := 1; i < len(vs); i++ {
		if acc, err = Mul(acc, vs[i]); err != nil {
			return zero, fmt.Errorf("%s: step %d: %w", opProd, i, err)
		}
	}

	return acc, nil
}

// Transpose returns x with extents swapped and every pattern coordinate
// flipped. Involution: Transpose(Transpose(x)) == x.
func Transpose[T Value[T]](x T) T {
	return x.Transpose()
}
