// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/view"
	"github.com/stretchr/testify/require"
)

// naiveMxM is the triple loop with explicit presence tracking.
func naiveMxM(a, b *matrix.CSR[int]) map[core.Index]int {
	out := map[core.Index]int{}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			for k := 0; k < a.Cols(); k++ {
				av, ok1 := a.Get(i, k)
				bv, ok2 := b.Get(k, j)
				if ok1 && ok2 {
					out[core.Index{Row: i, Col: j}] += av * bv
				}
			}
		}
	}
	return out
}

func TestMxM_AgainstNaive(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 20; iter++ {
		m, k, n := 1+rng.Intn(9), 1+rng.Intn(9), 1+rng.Intn(9)
		a := randomCSR(t, rng, m, k, 0.3)
		b := randomCSR(t, rng, k, n, 0.3)
		c, err := algebra.MxM[int, int, int](a, b, op.PlusTimes[int]())
		require.NoError(t, err)
		require.Equal(t, core.Shape{Rows: m, Cols: n}, c.Shape())
		require.Equal(t, naiveMxM(a, b), asMap[core.Index, int](c))
		require.LessOrEqual(t, c.Size(), m*n)
	}
}

func TestMxM_TransposedOperand(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	a := randomCSR(t, rng, 6, 4, 0.4)
	at, err := matrix.NewCSRFrom[int](view.Transpose[int](a))
	require.NoError(t, err)

	viaView, err := algebra.MxM[int, int, int](view.Transpose[int](a), a, op.PlusTimes[int]())
	require.NoError(t, err)
	viaCopy, err := algebra.MxM[int, int, int](at, a, op.PlusTimes[int]())
	require.NoError(t, err)
	require.Equal(t, asMap[core.Index, int](viaCopy), asMap[core.Index, int](viaView))
}

// Two MinPlus squarings of a weighted path give shortest paths of up to four hops.
func TestMxM_MinPlusPaths(t *testing.T) {
	t.Parallel()

	a := csr(t, 4, 4, map[core.Index]int{
		{Row: 0, Col: 0}: 0, {Row: 1, Col: 1}: 0, {Row: 2, Col: 2}: 0, {Row: 3, Col: 3}: 0,
		{Row: 0, Col: 1}: 1, {Row: 1, Col: 2}: 2, {Row: 2, Col: 3}: 3, {Row: 0, Col: 3}: 10,
	})
	a2, err := algebra.MxM[int, int, int](a, a, op.MinPlus[int]())
	require.NoError(t, err)
	a4, err := algebra.MxM[int, int, int](a2, a2, op.MinPlus[int]())
	require.NoError(t, err)

	d, ok := a4.Get(0, 3)
	require.True(t, ok)
	require.Equal(t, 6, d)
	_, ok = a4.Get(3, 0)
	require.False(t, ok, "unreachable pair stays absent")
}

func TestMxM_Masks(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(21))
	a := randomCSR(t, rng, 5, 5, 0.4)
	b := randomCSR(t, rng, 5, 5, 0.4)

	full, err := matrix.NewDense[bool](5, 5)
	require.NoError(t, err)
	full.Fill(true)

	plain, err := algebra.MxM[int, int, int](a, b, op.PlusTimes[int]())
	require.NoError(t, err)
	masked, err := algebra.MxM[int, int, int](a, b, op.PlusTimes[int](), algebra.WithMask[core.Index, bool](full))
	require.NoError(t, err)
	require.Equal(t, asMap[core.Index, int](plain), asMap[core.Index, int](masked))

	// Mask and its complement partition the product.
	diag := csr(t, 5, 5, map[core.Index]int{{Row: 0, Col: 0}: 1, {Row: 1, Col: 1}: 1, {Row: 2, Col: 2}: 1, {Row: 3, Col: 3}: 1, {Row: 4, Col: 4}: 1})
	in, err := algebra.MxM[int, int, int](a, b, op.PlusTimes[int](), algebra.WithStructuralMask[core.Index, int](diag))
	require.NoError(t, err)
	out, err := algebra.MxM[int, int, int](a, b, op.PlusTimes[int](),
		algebra.WithStructuralMask[core.Index, int](diag), algebra.WithComplementMask[core.Index]())
	require.NoError(t, err)
	require.Equal(t, plain.Size(), in.Size()+out.Size())
	for ix := range core.All[core.Index, int](in) {
		require.Equal(t, ix.Row, ix.Col)
	}
	for ix := range core.All[core.Index, int](out) {
		require.NotEqual(t, ix.Row, ix.Col)
	}
}

func TestMxM_ShapeErrors(t *testing.T) {
	t.Parallel()

	_, err := algebra.MxM[int, int, int](csr(t, 2, 3, nil), csr(t, 2, 3, nil), op.PlusTimes[int]())
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = algebra.MxM[int, int, int](csr(t, 2, 3, nil), csr(t, 3, 2, nil), op.PlusTimes[int](),
		algebra.WithMask[core.Index, int](csr(t, 3, 3, nil)))
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}
