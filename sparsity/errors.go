// SPDX-License-Identifier: MIT
// Package sparsity: sentinel error set.
// All constructors and combinators return these sentinels (optionally wrapped
// with fmt.Errorf("ctx: %w", ...)); callers match them via errors.Is.

package sparsity

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative extent.
	ErrBadShape = errors.New("sparsity: invalid shape")

	// ErrCoordOutOfRange indicates a coordinate outside the pattern's shape.
	ErrCoordOutOfRange = errors.New("sparsity: coordinate out of range")

	// ErrShapeMismatch indicates incompatible shapes between combined patterns,
	// e.g. ConcatCols over patterns with differing row counts.
	ErrShapeMismatch = errors.New("sparsity: shape mismatch")

	// ErrRangeInvalid indicates a malformed half-open range passed to
	// ColRange/RowRange (lo < 0, hi > extent, or lo > hi).
	ErrRangeInvalid = errors.New("sparsity: invalid range")

	// ErrNilPattern indicates that a nil *Pattern was passed where a value
	// was required.
	ErrNilPattern = errors.New("sparsity: nil pattern")
)
