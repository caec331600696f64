// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
	"github.com/stretchr/testify/require"
)

func TestReduceRows_Identity(t *testing.T) {
	t.Parallel()

	id := csr(t, 3, 3, map[core.Index]int{{Row: 0, Col: 0}: 1, {Row: 1, Col: 1}: 1, {Row: 2, Col: 2}: 1})
	y, err := algebra.ReduceRows[int](id, op.PlusMonoid[int]())
	require.NoError(t, err)
	require.Equal(t, 3, y.Len())
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, asMap[int, int](y))
}

func TestReduce_EmptyRowsStayAbsent(t *testing.T) {
	t.Parallel()

	a := csr(t, 4, 3, map[core.Index]int{{Row: 0, Col: 0}: 5, {Row: 0, Col: 2}: 7, {Row: 2, Col: 1}: -3})

	rows, err := algebra.ReduceRows[int](a, op.MinMonoid[int]())
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 5, 2: -3}, asMap[int, int](rows))

	cols, err := algebra.ReduceCols[int](a, op.PlusMonoid[int]())
	require.NoError(t, err)
	require.Equal(t, 3, cols.Len())
	require.Equal(t, map[int]int{0: 5, 1: -3, 2: 7}, asMap[int, int](cols))

	masked, err := algebra.ReduceRows[int](a, op.PlusMonoid[int](),
		algebra.WithStructuralMask[int, int](vec(t, 4, map[int]int{2: 0, 3: 0})))
	require.NoError(t, err)
	require.Equal(t, map[int]int{2: -3}, asMap[int, int](masked))

	_, err = algebra.ReduceRows[int](a, op.PlusMonoid[int](), algebra.WithMask[int, int](vec(t, 3, nil)))
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestReduceScalar(t *testing.T) {
	t.Parallel()

	a := csr(t, 2, 2, map[core.Index]int{{Row: 0, Col: 1}: 4, {Row: 1, Col: 0}: 6})
	s, ok := algebra.ReduceScalar[core.Index, int](a, op.PlusMonoid[int]())
	require.True(t, ok)
	require.Equal(t, 10, s)

	_, ok = algebra.ReduceScalar[core.Index, int](csr(t, 2, 2, nil), op.MaxMonoid[int]())
	require.False(t, ok)
}

func TestApply(t *testing.T) {
	t.Parallel()

	a := csr(t, 2, 3, map[core.Index]int{{Row: 0, Col: 0}: 1, {Row: 0, Col: 2}: 2, {Row: 1, Col: 1}: 3})
	sq, err := algebra.Apply[int, float64](a, func(v int) float64 { return float64(v * v) })
	require.NoError(t, err)
	require.Equal(t, map[core.Index]float64{{Row: 0, Col: 0}: 1, {Row: 0, Col: 2}: 4, {Row: 1, Col: 1}: 9}, asMap[core.Index, float64](sq))

	mask := csr(t, 2, 3, map[core.Index]int{{Row: 0, Col: 2}: 1})
	m, err := algebra.Apply[int, int](a, func(v int) int { return -v }, algebra.WithStructuralMask[core.Index, int](mask))
	require.NoError(t, err)
	require.Equal(t, map[core.Index]int{{Row: 0, Col: 2}: -2}, asMap[core.Index, int](m))

	x := vec(t, 4, map[int]int{1: 2, 3: 0})
	b, err := algebra.ApplyVec[int, bool](x, op.Truthy[int])
	require.NoError(t, err)
	require.Equal(t, map[int]bool{1: true, 3: false}, asMap[int, bool](b))
}
