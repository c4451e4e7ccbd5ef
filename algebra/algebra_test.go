// Package algebra_test verifies the generic operations and their algebraic
// guarantees over the numeric representation (the symbolic representation
// is exercised in its own package).
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matstack/matstack/algebra"
	"github.com/matstack/matstack/numeric"
)

// mustNew builds a numeric matrix or fails the test.
func mustNew(t *testing.T, rows, cols int, data []float64) *numeric.Matrix {
	t.Helper()
	m, err := numeric.New(rows, cols, data)
	require.NoError(t, err)

	return m
}

// seq fills a rows×cols matrix with 1, 2, 3, ... row-major.
func seq(t *testing.T, rows, cols int) *numeric.Matrix {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i + 1)
	}

	return mustNew(t, rows, cols, data)
}

func TestHorzSplitHorzCat_RoundTrip(t *testing.T) {
	x := seq(t, 3, 7)

	for _, tc := range []struct {
		name    string
		offsets []int
	}{
		{"uneven", []int{0, 2, 5, 7}},
		{"single", []int{0, 7}},
		{"empty_groups", []int{0, 0, 3, 3, 7}},
		{"columns", []int{0, 1, 2, 3, 4, 5, 6, 7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pieces, err := algebra.HorzSplit(x, tc.offsets)
			require.NoError(t, err)
			require.Len(t, pieces, len(tc.offsets)-1)

			back, err := algebra.HorzCat(pieces...)
			require.NoError(t, err)
			require.True(t, back.Equal(x))
		})
	}
}

func TestVertSplitVertCat_RoundTrip(t *testing.T) {
	x := seq(t, 7, 2)

	pieces, err := algebra.VertSplit(x, []int{0, 3, 3, 7})
	require.NoError(t, err)

	back, err := algebra.VertCat(pieces...)
	require.NoError(t, err)
	require.True(t, back.Equal(x))
}

func TestHorzSplitEvery_RemainderRule(t *testing.T) {
	x := seq(t, 2, 7)

	pieces, err := algebra.HorzSplitEvery(x, 3)
	require.NoError(t, err)
	require.Len(t, pieces, 3)
	// Only the final group may deviate from the increment.
	require.Equal(t, 3, pieces[0].Cols())
	require.Equal(t, 3, pieces[1].Cols())
	require.Equal(t, 1, pieces[2].Cols())

	back, err := algebra.HorzCat(pieces...)
	require.NoError(t, err)
	require.True(t, back.Equal(x))
}

func TestVertSplitEvery_RemainderRule(t *testing.T) {
	x := seq(t, 7, 2)

	pieces, err := algebra.VertSplitEvery(x, 3)
	require.NoError(t, err)
	require.Len(t, pieces, 3)
	require.Equal(t, 3, pieces[0].Rows())
	require.Equal(t, 3, pieces[1].Rows())
	require.Equal(t, 1, pieces[2].Rows())
}

func TestSplitEvery_ExactMultiple(t *testing.T) {
	x := seq(t, 2, 6)

	pieces, err := algebra.HorzSplitEvery(x, 3)
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	require.Equal(t, 3, pieces[0].Cols())
	require.Equal(t, 3, pieces[1].Cols())
}

func TestPairwiseAndListFormsAgree(t *testing.T) {
	x := seq(t, 2, 2)
	y := seq(t, 2, 3)

	pair, err := algebra.HorzCat(x, y)
	require.NoError(t, err)
	list, err := algebra.HorzCat([]*numeric.Matrix{x, y}...)
	require.NoError(t, err)
	require.True(t, pair.Equal(list))

	w := seq(t, 3, 2)
	vPair, err := algebra.VertCat(x, w)
	require.NoError(t, err)
	vList, err := algebra.VertCat([]*numeric.Matrix{x, w}...)
	require.NoError(t, err)
	require.True(t, vPair.Equal(vList))

	dPair, err := algebra.BlkDiag(x, y)
	require.NoError(t, err)
	dList, err := algebra.BlkDiag([]*numeric.Matrix{x, y}...)
	require.NoError(t, err)
	require.True(t, dPair.Equal(dList))
}

func TestBlkDiag_Assembly(t *testing.T) {
	a := mustNew(t, 1, 2, []float64{1, 2})
	b := mustNew(t, 2, 1, []float64{3, 4})

	d, err := algebra.BlkDiag(a, b)
	require.NoError(t, err)
	require.True(t, d.Equal(mustNew(t, 3, 3, []float64{
		1, 2, 0,
		0, 0, 3,
		0, 0, 4,
	})))
	require.Equal(t, 4, d.Pattern().NNZ())
}

func TestProd_FoldsLeft(t *testing.T) {
	a := seq(t, 2, 3)
	b := seq(t, 3, 2)
	c := seq(t, 2, 2)

	ab, err := algebra.Mul(a, b)
	require.NoError(t, err)
	want, err := algebra.Mul(ab, c)
	require.NoError(t, err)

	got, err := algebra.Prod(a, b, c)
	require.NoError(t, err)
	require.True(t, got.Equal(want))

	// A single value folds to itself.
	one, err := algebra.Prod(a)
	require.NoError(t, err)
	require.True(t, one.Equal(a))
}

func TestMulAcc_RestrictedProduct(t *testing.T) {
	x := mustNew(t, 2, 2, []float64{1, 2, 3, 4})
	y, err := numeric.Identity(2)
	require.NoError(t, err)
	z := mustNew(t, 2, 2, []float64{5, 0, 0, 6}) // diagonal pattern

	got, err := algebra.MulAcc(x, y, z)
	require.NoError(t, err)
	// z plus the product's diagonal; off-pattern entries never appear.
	require.True(t, got.Equal(mustNew(t, 2, 2, []float64{
		6, 0,
		0, 10,
	})))
}

func TestTranspose_Involution(t *testing.T) {
	x := seq(t, 3, 4)
	require.True(t, algebra.Transpose(algebra.Transpose(x)).Equal(x))
}

func TestErrorScenarios(t *testing.T) {
	x := seq(t, 2, 3)

	t.Run("split_increment_zero", func(t *testing.T) {
		_, err := algebra.HorzSplitEvery(x, 0)
		require.ErrorIs(t, err, algebra.ErrInvalidIncrement)
		require.ErrorIs(t, err, algebra.ErrInvalidArgument) // kind match
	})

	t.Run("vert_split_increment_negative", func(t *testing.T) {
		_, err := algebra.VertSplitEvery(x, -2)
		require.ErrorIs(t, err, algebra.ErrInvalidIncrement)
	})

	t.Run("prod_empty_list", func(t *testing.T) {
		_, err := algebra.Prod[*numeric.Matrix]()
		require.ErrorIs(t, err, algebra.ErrEmptyList)
		require.ErrorIs(t, err, algebra.ErrInvalidArgument)
	})

	t.Run("concat_empty_list", func(t *testing.T) {
		_, err := algebra.HorzCat[*numeric.Matrix]()
		require.ErrorIs(t, err, algebra.ErrEmptyList)
		_, err = algebra.BlkDiag[*numeric.Matrix]()
		require.ErrorIs(t, err, algebra.ErrEmptyList)
	})

	t.Run("horzcat_row_mismatch", func(t *testing.T) {
		_, err := algebra.HorzCat(x, seq(t, 3, 3))
		require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
	})

	t.Run("vertcat_col_mismatch", func(t *testing.T) {
		_, err := algebra.VertCat(x, seq(t, 2, 4))
		require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
	})

	t.Run("mul_inner_mismatch", func(t *testing.T) {
		_, err := algebra.Mul(x, seq(t, 2, 2))
		require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
	})

	t.Run("mulacc_target_mismatch", func(t *testing.T) {
		_, err := algebra.MulAcc(x, seq(t, 3, 2), seq(t, 3, 3))
		require.ErrorIs(t, err, algebra.ErrDimensionMismatch)
	})

	t.Run("offsets_not_full_partition", func(t *testing.T) {
		_, err := algebra.HorzSplit(x, []int{1, 3})
		require.ErrorIs(t, err, algebra.ErrInvalidOffsets)
		_, err = algebra.HorzSplit(x, []int{0, 2})
		require.ErrorIs(t, err, algebra.ErrInvalidOffsets)
		_, err = algebra.VertSplit(x, []int{0, 2, 1, 2})
		require.ErrorIs(t, err, algebra.ErrInvalidOffsets)
	})
}
