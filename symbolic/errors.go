// SPDX-License-Identifier: MIT
// Package symbolic: sentinel error set, matched via errors.Is. Kernels reuse
// the algebra package's sentinels for shape violations; the sentinels here
// cover construction and evaluation.

package symbolic

import "errors"

var (
	// ErrBadSymbol is returned when a symbol is declared with an empty name.
	ErrBadSymbol = errors.New("symbolic: symbol name must not be empty")

	// ErrBadShape is returned when a declared shape has a negative extent.
	ErrBadShape = errors.New("symbolic: invalid shape")

	// ErrNilValue indicates a nil constant or pattern where a value was
	// required.
	ErrNilValue = errors.New("symbolic: nil value")

	// ErrUnboundSymbol is returned by Eval when the environment has no
	// binding for a symbol in the graph.
	ErrUnboundSymbol = errors.New("symbolic: unbound symbol")

	// ErrBindingShape is returned by Eval when a binding's extents differ
	// from the symbol's declared shape.
	ErrBindingShape = errors.New("symbolic: binding shape mismatch")

	// ErrBindingPattern is returned by Eval when a binding has a non-zero
	// outside the symbol's declared pattern (the pattern must stay a
	// conservative superset of every evaluation).
	ErrBindingPattern = errors.New("symbolic: binding exceeds declared pattern")
)
