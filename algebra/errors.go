// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// Operations return these sentinels and tests check them via errors.Is.
// The set forms two kinds: dimension mismatches (ErrDimensionMismatch) and
// invalid arguments (ErrInvalidArgument, which the more precise sentinels
// below wrap, so errors.Is(err, ErrInvalidArgument) matches all of them).
// No operation panics on user-triggered conditions; panics are reserved for
// programmer errors such as nil concrete values.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible extents between operands:
	// differing row counts under HorzCat, differing column counts under
	// VertCat, or inner-dimension mismatch under Mul/MulAcc.
	ErrDimensionMismatch = errors.New("algebra: dimension mismatch")

	// ErrInvalidArgument is the kind shared by every malformed-argument
	// sentinel in this package. Match it to catch any of them.
	ErrInvalidArgument = errors.New("algebra: invalid argument")

	// ErrEmptyList is returned when an operation that needs at least one
	// value receives none (Prod, HorzCat, VertCat, BlkDiag).
	ErrEmptyList = fmt.Errorf("%w: supplied list must not be empty", ErrInvalidArgument)

	// ErrInvalidIncrement is returned by HorzSplitEvery/VertSplitEvery when
	// the group increment is below one.
	ErrInvalidIncrement = fmt.Errorf("%w: split increment must be >= 1", ErrInvalidArgument)

	// ErrInvalidOffsets is returned when a split offset list is not a full
	// partition of the axis: it must start at 0, end at the axis extent and
	// be non-decreasing throughout.
	ErrInvalidOffsets = fmt.Errorf("%w: split offsets must be a full non-decreasing partition", ErrInvalidArgument)
)
