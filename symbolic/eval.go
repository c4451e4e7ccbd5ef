// SPDX-License-Identifier: MIT
// Package symbolic: graph evaluation against numeric bindings.
// Eval drives the same generic algebra the graph was built with, but over
// numeric values, so evaluation and graph construction cannot drift apart.

package symbolic

import (
	"fmt"

	"github.com/matstack/matstack/algebra"
	"github.com/matstack/matstack/numeric"
)

// Eval materializes the graph as a numeric matrix, binding every symbol
// leaf through env. Shared sub-expressions are evaluated once (memoized on
// node identity). The receiver and env are never mutated.
//
// Bindings are checked against the symbol's declaration: extents must match
// (ErrBindingShape) and every non-zero of the binding must lie inside the
// declared pattern (ErrBindingPattern) — the pattern is a promise Eval
// refuses to break.
//
// Errors: ErrUnboundSymbol, ErrBindingShape, ErrBindingPattern, plus any
// algebra sentinel surfaced by the numeric kernels.
func (e *Expr) Eval(env map[string]*numeric.Matrix) (*numeric.Matrix, error) {
	return e.eval(env, make(map[*Expr]*numeric.Matrix))
}

func (e *Expr) eval(env map[string]*numeric.Matrix, memo map[*Expr]*numeric.Matrix) (*numeric.Matrix, error) {
	if m, ok := memo[e]; ok {
		return m, nil
	}

	// Evaluate children first, in argument order.
	args := make([]*numeric.Matrix, len(e.args))
	for i, a := range e.args {
		m, err := a.eval(env, memo)
		if err != nil {
			return nil, err
		}
		args[i] = m
	}

	var (
		out *numeric.Matrix
		err error
	)
	switch e.op {
	case opSymbol:
		out, err = e.bind(env)
	case opConst:
		out = e.value
	case opHCat:
		out, err = algebra.HorzCat(args...)
	case opVCat:
		out, err = algebra.VertCat(args...)
	case opDiagCat:
		out, err = algebra.BlkDiag(args...)
	case opColSlice:
		out, err = args[0].ColRange(e.lo, e.hi)
	case opRowSlice:
		out, err = args[0].RowRange(e.lo, e.hi)
	case opMul:
		out, err = algebra.Mul(args[0], args[1])
	case opMulAcc:
		out, err = algebra.MulAcc(args[0], args[1], args[2])
	case opTrans:
		out = algebra.Transpose(args[0])
	default:
		err = fmt.Errorf("symbolic: unknown op %d", e.op)
	}
	if err != nil {
		return nil, fmt.Errorf("Eval %s: %w", opNames[e.op], err)
	}

	memo[e] = out

	return out, nil
}

// bind resolves a symbol leaf against the environment and enforces the
// declaration: matching extents and non-zeros confined to the declared
// pattern.
func (e *Expr) bind(env map[string]*numeric.Matrix) (*numeric.Matrix, error) {
	m, ok := env[e.name]
	if !ok || m == nil {
		return nil, fmt.Errorf("%q: %w", e.name, ErrUnboundSymbol)
	}
	if m.Rows() != e.rows || m.Cols() != e.cols {
		return nil, fmt.Errorf("%q: bound %dx%d, declared %dx%d: %w",
			e.name, m.Rows(), m.Cols(), e.rows, e.cols, ErrBindingShape)
	}
	for _, c := range m.Pattern().Coords() {
		if !e.pat.Has(c.Row, c.Col) {
			return nil, fmt.Errorf("%q: non-zero at (%d,%d): %w", e.name, c.Row, c.Col, ErrBindingPattern)
		}
	}

	return m, nil
}
