// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set. Constructors and accessors return
// these sentinels; kernels reuse the algebra package's sentinels so both
// validation paths report one vocabulary. Tests match via errors.Is.

package numeric

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative extent.
	ErrBadShape = errors.New("numeric: invalid shape")

	// ErrBadData indicates that the data slice length does not equal
	// rows*cols.
	ErrBadData = errors.New("numeric: data length does not match shape")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are
	// required (construction).
	ErrNaNInf = errors.New("numeric: NaN or Inf encountered")

	// ErrOutOfRange indicates that an index or range is outside valid
	// bounds. At/ColRange/RowRange return this, never panic.
	ErrOutOfRange = errors.New("numeric: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value
	// was required.
	ErrNilMatrix = errors.New("numeric: nil matrix")
)
