// SPDX-License-Identifier: MIT
// Package algebra: central argument validators.
// Operations in algebra.go MUST validate through these helpers before
// delegating to kernels, so every entry point reports the same sentinel for
// the same violation.

package algebra

import "fmt"

// validateNonEmpty rejects empty value lists for list-form operations.
func validateNonEmpty[T any](op string, vs []T) error {
	if len(vs) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyList)
	}

	return nil
}

// validateSameRows checks that every value shares vs[0]'s row extent.
func validateSameRows[T Value[T]](op string, vs []T) error {
	for i, v := range vs {
		if v.Rows() != vs[0].Rows() {
			return fmt.Errorf("%s: arg %d has %d rows, want %d: %w",
				op, i, v.Rows(), vs[0].Rows(), ErrDimensionMismatch)
		}
	}

	return nil
}

// validateSameCols checks that every value shares vs[0]'s column extent.
func validateSameCols[T Value[T]](op string, vs []T) error {
	for i, v := range vs {
		if v.Cols() != vs[0].Cols() {
			return fmt.Errorf("%s: arg %d has %d cols, want %d: %w",
				op, i, v.Cols(), vs[0].Cols(), ErrDimensionMismatch)
		}
	}

	return nil
}

// validateInner checks the inner-dimension compatibility of a product x*y.
func validateInner[T Value[T]](op string, x, y T) error {
	if x.Cols() != y.Rows() {
		return fmt.Errorf("%s: %dx%d * %dx%d: %w",
			op, x.Rows(), x.Cols(), y.Rows(), y.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// validateOffsets checks that offsets form a full partition of [0, extent]:
// first element 0, last element extent, non-decreasing throughout. This is
// the single boundary convention for both axes; the increment-based forms
// construct lists that satisfy it, and caller-supplied lists must too —
// nothing is auto-extended.
func validateOffsets(op string, offsets []int, extent int) error {
	if len(offsets) < 1 || offsets[0] != 0 || offsets[len(offsets)-1] != extent {
		return fmt.Errorf("%s: offsets %v over extent %d: %w", op, offsets, extent, ErrInvalidOffsets)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return fmt.Errorf("%s: offsets %v decrease at %d: %w", op, offsets, i, ErrInvalidOffsets)
		}
	}

	return nil
}

// everyOffsets expands a uniform group increment into a full partition of
// [0, extent]: 0, incr, 2*incr, ... stopping before extent, then extent
// itself. Only the final group may deviate from incr, absorbing the
// remainder. Callers have already validated incr >= 1.
func everyOffsets(extent, incr int) []int {
	offsets := make([]int, 0, extent/incr+2)
	for b := 0; b < extent; b += incr {
		offsets = append(offsets, b)
	}

	return append(offsets, extent)
}
