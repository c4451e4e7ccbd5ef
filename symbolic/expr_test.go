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

// mustSymbol declares a dense symbol or fails the test.
func mustSymbol(t *testing.T, name string, rows, cols int) *symbolic.Expr {
	t.Helper()
	s, err := symbolic.Symbol(name, rows, cols)
	require.NoError(t, err)

	return s
}

func TestSymbol_Constructors(t *testing.T) {
	x := mustSymbol(t, "x", 2, 3)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 3, x.Cols())
	require.Equal(t, "x", x.Name())
	require.Equal(t, 6, x.Pattern().NNZ()) // dense declaration

	_, err := symbolic.Symbol("", 2, 2)
	require.ErrorIs(t, err, symbolic.ErrBadSymbol)

	_, err = symbolic.Symbol("bad", -1, 2)
	require.ErrorIs(t, err, symbolic.ErrBadShape)
}

func TestSymbolPattern_DeclaredStructure(t *testing.T) {
	diag, err := sparsity.New(3, 3, []sparsity.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}})
	require.NoError(t, err)

	d, err := symbolic.SymbolPattern("d", diag)
	require.NoError(t, err)
	require.True(t, d.Pattern().Equal(diag))

	_, err = symbolic.SymbolPattern("", diag)
	require.ErrorIs(t, err, symbolic.ErrBadSymbol)
	_, err = symbolic.SymbolPattern("d", nil)
	require.ErrorIs(t, err, symbolic.ErrNilValue)
}

func TestConst_Leaf(t *testing.T) {
	m, err := numeric.New(2, 2, []float64{1, 0, 0, 2})
	require.NoError(t, err)

	c, err := symbolic.Const(m)
	require.NoError(t, err)
	require.Equal(t, 2, c.Pattern().NNZ()) // exact numeric pattern carries over

	_, err = symbolic.Const(nil)
	require.ErrorIs(t, err, symbolic.ErrNilValue)
}

func TestConcat_ShapeChecks(t *testing.T) {
	x := mustSymbol(t, "x", 2, 3)
	y := mustSymbol(t, "y", 3, 3)

	_, err := algebra.HorzCat(x, y)
	require.ErrorIs(t, err, algebra.ErrDimensionMismatch)

	_, err = algebra.VertCat(x, mustSymbol(t, "z", 2, 4))
	require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
}

func TestConcat_PatternPropagation(t *testing.T) {
	diag, err := sparsity.New(2, 2, []sparsity.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)
	d, err := symbolic.SymbolPattern("d", diag)
	require.NoError(t, err)
	x := mustSymbol(t, "x", 2, 2)

	cat, err := algebra.HorzCat(d, x)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Rows())
	require.Equal(t, 4, cat.Cols())
	require.Equal(t, 6, cat.Pattern().NNZ())
	require.True(t, cat.Pattern().Has(0, 0))
	require.False(t, cat.Pattern().Has(0, 1)) // off-diagonal of d stays absent

	blk, err := algebra.BlkDiag(d, x)
	require.NoError(t, err)
	require.Equal(t, 4, blk.Rows())
	require.Equal(t, 4, blk.Cols())
	require.False(t, blk.Pattern().Has(0, 2)) // off-block coordinate
	require.True(t, blk.Pattern().Has(2, 2))
}

func TestSplitConcat_RoundTripIsIdentity(t *testing.T) {
	x := mustSymbol(t, "x", 3, 7)

	// The concat of a full partition collapses to the original node, empty
	// groups anywhere in the partition included.
	for _, tc := range []struct {
		name    string
		offsets []int
	}{
		{"uneven", []int{0, 2, 5, 7}},
		{"empty_trailing_group", []int{0, 7, 7}},
		{"empty_leading_group", []int{0, 0, 7}},
		{"empty_inner_groups", []int{0, 0, 3, 3, 7, 7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pieces, err := algebra.HorzSplit(x, tc.offsets)
			require.NoError(t, err)
			require.Len(t, pieces, len(tc.offsets)-1)

			back, err := algebra.HorzCat(pieces...)
			require.NoError(t, err)
			require.Same(t, x, back)
		})
	}

	rows, err := algebra.VertSplit(x, []int{0, 1, 3})
	require.NoError(t, err)
	vback, err := algebra.VertCat(rows...)
	require.NoError(t, err)
	require.Same(t, x, vback)

	vrows, err := algebra.VertSplit(x, []int{0, 0, 3, 3})
	require.NoError(t, err)
	vback, err = algebra.VertCat(vrows...)
	require.NoError(t, err)
	require.Same(t, x, vback)
}

func TestSplit_FullSpanGroupIsParent(t *testing.T) {
	x := mustSymbol(t, "x", 2, 4)

	pieces, err := algebra.HorzSplit(x, []int{0, 4})
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	require.Same(t, x, pieces[0])
}

func TestSplit_SliceOfSliceCollapses(t *testing.T) {
	x := mustSymbol(t, "x", 2, 8)

	outer, err := algebra.HorzSplit(x, []int{0, 6, 8})
	require.NoError(t, err)
	inner, err := algebra.HorzSplit(outer[0], []int{0, 2, 6})
	require.NoError(t, err)

	// inner[1] targets x directly: re-splitting then concatenating with the
	// sibling still recovers x.
	back, err := algebra.HorzCat(inner[0], inner[1], outer[1])
	require.NoError(t, err)
	require.Same(t, x, back)
}

func TestSplit_BadOffsets(t *testing.T) {
	x := mustSymbol(t, "x", 2, 4)

	for _, offs := range [][]int{{1, 4}, {0, 2}, {0, 3, 2, 4}} {
		_, err := algebra.HorzSplit(x, offs)
		require.ErrorIs(t, err, algebra.ErrInvalidOffsets, "offsets %v", offs)
	}
}

func TestMul_PatternIsBooleanProduct(t *testing.T) {
	// x: non-zeros only in column 0; y: non-zeros only in row 1.
	xp, err := sparsity.New(2, 2, []sparsity.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}})
	require.NoError(t, err)
	yp, err := sparsity.New(2, 2, []sparsity.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)

	x, err := symbolic.SymbolPattern("x", xp)
	require.NoError(t, err)
	y, err := symbolic.SymbolPattern("y", yp)
	require.NoError(t, err)

	// Column 0 of x never meets row 1 of y: structurally zero product.
	p, err := algebra.Mul(x, y)
	require.NoError(t, err)
	require.Equal(t, 0, p.Pattern().NNZ())

	_, err = algebra.Mul(x, mustSymbol(t, "w", 3, 2))
	require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
}

func TestMulAcc_PatternIsTargets(t *testing.T) {
	x := mustSymbol(t, "x", 2, 2)
	y := mustSymbol(t, "y", 2, 2)
	zp, err := sparsity.New(2, 2, []sparsity.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)
	z, err := symbolic.SymbolPattern("z", zp)
	require.NoError(t, err)

	acc, err := algebra.MulAcc(x, y, z)
	require.NoError(t, err)
	require.True(t, acc.Pattern().Equal(zp))

	_, err = algebra.MulAcc(x, y, mustSymbol(t, "bad", 3, 2))
	require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
}

func TestTranspose_Collapse(t *testing.T) {
	x := mustSymbol(t, "x", 2, 3)

	xt := algebra.Transpose(x)
	require.Equal(t, 3, xt.Rows())
	require.Equal(t, 2, xt.Cols())
	require.Same(t, x, algebra.Transpose(xt))
}

func TestEqual_Structural(t *testing.T) {
	x := mustSymbol(t, "x", 2, 2)
	y := mustSymbol(t, "y", 2, 2)

	a, err := algebra.HorzCat(x, y)
	require.NoError(t, err)
	b, err := algebra.HorzCat(x, y)
	require.NoError(t, err)
	require.True(t, a.Equal(b)) // distinct nodes, same structure

	c, err := algebra.HorzCat(y, x)
	require.NoError(t, err)
	require.False(t, a.Equal(c))

	require.False(t, x.Equal(mustSymbol(t, "x2", 2, 2)))
	require.True(t, x.Equal(x))
}

func TestString_Rendering(t *testing.T) {
	x := mustSymbol(t, "x", 2, 2)
	y := mustSymbol(t, "y", 2, 2)

	p, err := algebra.Mul(x, algebra.Transpose(y))
	require.NoError(t, err)
	require.Equal(t, "mul(x(2x2), transpose(y(2x2)))", p.String())
}
