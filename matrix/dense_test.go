// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/stretchr/testify/require"
)

func TestDense_PresenceIsTheBitmap(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense[int](3, 3)
	require.NoError(t, err)
	require.Equal(t, 0, d.Size())

	// A stored zero is present; an untouched cell is absent.
	require.NoError(t, d.Insert(core.Index{Row: 1, Col: 2}, 0))
	require.Equal(t, 1, d.Size())
	_, ok := d.Get(1, 2)
	require.True(t, ok)
	_, err = d.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, 1, d.Size(), "At never marks a cell")

	p, err := d.Ref(2, 2)
	require.NoError(t, err)
	*p = 7
	v, err := d.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 7, v)
	require.Equal(t, 2, d.Size())

	ok, err = d.Delete(2, 2)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = d.Delete(3, 0)
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestDense_CursorVisitsSetFlagsOnly(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense[string](4, 4)
	require.NoError(t, err)
	for _, ix := range []core.Index{{Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 2}} {
		require.NoError(t, d.Insert(ix, ix.String()))
	}

	var keys []core.Index
	for ix, v := range core.All[core.Index, string](d) {
		require.Equal(t, ix.String(), v)
		keys = append(keys, ix)
	}
	require.Equal(t, []core.Index{{Row: 0, Col: 3}, {Row: 2, Col: 2}, {Row: 3, Col: 0}}, keys)

	c := d.Find(core.Index{Row: 2, Col: 2})
	require.True(t, c.Valid())
	require.True(t, c.RandomAccess())
	require.Equal(t, 1, c.Pos())
	require.True(t, c.Next())
	require.Equal(t, core.Index{Row: 3, Col: 0}, c.Index())
}

func TestDense_FillClearApply(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)
	d.Fill(1)
	require.Equal(t, 6, d.Size())

	d.Apply(func(ix core.Index, v int) int { return v + ix.Row*10 + ix.Col })
	v, _ := d.Get(1, 2)
	require.Equal(t, 13, v)

	cp := d.Clone()
	d.Clear()
	require.Equal(t, 0, d.Size())
	require.Equal(t, 6, cp.Size())

	n := 0
	cp.Do(func(core.Index, int) bool { n++; return n < 2 })
	require.Equal(t, 2, n)
}

func TestDense_ShapeLimits(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense[int](-1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.NewDense[byte](1<<17, 1<<16)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	z, err := matrix.NewDense[int](0, 0)
	require.NoError(t, err)
	require.False(t, z.Begin().Valid())
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[float64](3, 2, 2)
	l.Append(0, 1, 1.5)
	l.Append(2, 0, -2)
	m, err := matrix.NewCSRFromTriplets[float64](l)
	require.NoError(t, err)

	d, err := matrix.NewDenseFrom[float64](m)
	require.NoError(t, err)
	require.True(t, core.Equal[core.Index, float64](m, d, func(a, b float64) bool { return a == b }))
	require.Equal(t, "Dense[3×2, nnz=2]{(0,1):1.5, (2,0):-2}", d.String())

	_, err = matrix.NewDenseFrom[float64](nil)
	require.ErrorIs(t, err, core.ErrNilRange)
}
