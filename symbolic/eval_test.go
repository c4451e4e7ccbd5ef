// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matstack/matstack/algebra"
	"github.com/matstack/matstack/numeric"
	"github.com/matstack/matstack/sparsity"
	"github.com/matstack/matstack/symbolic"
)

// mustNum builds a numeric matrix or fails the test.
func mustNum(t *testing.T, rows, cols int, data []float64) *numeric.Matrix {
	t.Helper()
	m, err := numeric.New(rows, cols, data)
	require.NoError(t, err)

	return m
}

func TestEval_MatchesDirectComputation(t *testing.T) {
	x := mustSymbol(t, "x", 2, 3)
	y := mustSymbol(t, "y", 3, 2)

	graph, err := algebra.Mul(x, y)
	require.NoError(t, err)
	graph = algebra.Transpose(graph)

	xv := mustNum(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	yv := mustNum(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := graph.Eval(map[string]*numeric.Matrix{"x": xv, "y": yv})
	require.NoError(t, err)

	prod, err := algebra.Mul(xv, yv)
	require.NoError(t, err)
	require.True(t, got.Equal(algebra.Transpose(prod)))
}

func TestEval_SplitConcatAndBlkDiag(t *testing.T) {
	x := mustSymbol(t, "x", 2, 4)

	pieces, err := algebra.HorzSplit(x, []int{0, 1, 4})
	require.NoError(t, err)
	graph, err := algebra.BlkDiag(pieces...)
	require.NoError(t, err)
	require.Equal(t, 4, graph.Rows())
	require.Equal(t, 5, graph.Cols())

	xv := mustNum(t, 2, 4, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	got, err := graph.Eval(map[string]*numeric.Matrix{"x": xv})
	require.NoError(t, err)

	left, err := xv.ColRange(0, 1)
	require.NoError(t, err)
	right, err := xv.ColRange(1, 4)
	require.NoError(t, err)
	want, err := algebra.BlkDiag(left, right)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestEval_MulAcc(t *testing.T) {
	x := mustSymbol(t, "x", 2, 2)
	y := mustSymbol(t, "y", 2, 2)
	zp, err := sparsity.New(2, 2, []sparsity.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)
	z, err := symbolic.SymbolPattern("z", zp)
	require.NoError(t, err)

	graph, err := algebra.MulAcc(x, y, z)
	require.NoError(t, err)

	env := map[string]*numeric.Matrix{
		"x": mustNum(t, 2, 2, []float64{1, 2, 3, 4}),
		"y": mustNum(t, 2, 2, []float64{1, 0, 0, 1}),
		"z": mustNum(t, 2, 2, []float64{5, 0, 0, 6}),
	}
	got, err := graph.Eval(env)
	require.NoError(t, err)
	require.True(t, got.Equal(mustNum(t, 2, 2, []float64{6, 0, 0, 10})))
}

func TestEval_SharedSubexpressionOnce(t *testing.T) {
	// x appears twice; memoization must keep the two occurrences consistent.
	x := mustSymbol(t, "x", 2, 2)

	xt := algebra.Transpose(x)
	graph, err := algebra.Mul(x, xt)
	require.NoError(t, err)

	xv := mustNum(t, 2, 2, []float64{1, 2, 3, 4})
	got, err := graph.Eval(map[string]*numeric.Matrix{"x": xv})
	require.NoError(t, err)

	want, err := algebra.Mul(xv, algebra.Transpose(xv))
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

func TestEval_ConstNeedsNoBinding(t *testing.T) {
	c, err := symbolic.Const(mustNum(t, 2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)
	x := mustSymbol(t, "x", 2, 2)

	graph, err := algebra.Mul(c, x)
	require.NoError(t, err)

	xv := mustNum(t, 2, 2, []float64{5, 6, 7, 8})
	got, err := graph.Eval(map[string]*numeric.Matrix{"x": xv})
	require.NoError(t, err)
	require.True(t, got.Equal(xv))
}

func TestEval_BindingErrors(t *testing.T) {
	x := mustSymbol(t, "x", 2, 2)

	t.Run("unbound", func(t *testing.T) {
		_, err := x.Eval(map[string]*numeric.Matrix{})
		require.ErrorIs(t, err, symbolic.ErrUnboundSymbol)
	})

	t.Run("nil_binding", func(t *testing.T) {
		_, err := x.Eval(map[string]*numeric.Matrix{"x": nil})
		require.ErrorIs(t, err, symbolic.ErrUnboundSymbol)
	})

	t.Run("shape_mismatch", func(t *testing.T) {
		_, err := x.Eval(map[string]*numeric.Matrix{"x": mustNum(t, 2, 3, make([]float64, 6))})
		require.ErrorIs(t, err, symbolic.ErrBindingShape)
	})

	t.Run("pattern_violation", func(t *testing.T) {
		zp, err := sparsity.New(2, 2, []sparsity.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
		require.NoError(t, err)
		d, err := symbolic.SymbolPattern("d", zp)
		require.NoError(t, err)

		// Off-diagonal non-zero breaks the declared structure.
		_, err = d.Eval(map[string]*numeric.Matrix{"d": mustNum(t, 2, 2, []float64{1, 2, 0, 3})})
		require.ErrorIs(t, err, symbolic.ErrBindingPattern)

		// A binding sparser than the declaration is fine.
		got, err := d.Eval(map[string]*numeric.Matrix{"d": mustNum(t, 2, 2, []float64{1, 0, 0, 0})})
		require.NoError(t, err)
		require.Equal(t, 1, got.Pattern().NNZ())
	})
}
