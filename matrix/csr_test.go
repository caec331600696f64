// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioTriplets builds a 39×39 sorted stream with exactly 340 unit entries.
func scenarioTriplets(t *testing.T) *core.TripletList[float64] {
	t.Helper()
	const n, nnz = 39, 340
	l := core.NewTripletList[float64](n, n, nnz)
	// Every 4th-and-a-bit cell, row-major, deterministic.
	for off := 0; l.Len() < nnz; off += 4 {
		l.Append(off/n, off%n, 1)
	}
	require.Equal(t, nnz, l.Len())
	return l
}

func TestCSR_ScenarioTraverseAndUpdate(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSRFromTriplets[float64](scenarioTriplets(t))
	require.NoError(t, err)

	for c := m.BeginMut(); c.Valid(); c.Next() {
		require.NoError(t, c.Set(c.Value()+2))
	}

	require.Equal(t, core.Shape{Rows: 39, Cols: 39}, m.Shape())
	require.Equal(t, 340, m.Size())
	sum := 0.0
	for _, v := range core.All[core.Index, float64](m) {
		require.Equal(t, 3.0, v)
		sum += v
	}
	require.Equal(t, 1020.0, sum)
}

func TestNewCSRFromTriplets_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []core.Triplet[int]
	}{
		{"unsorted", []core.Triplet[int]{{Row: 1, Col: 0, Value: 1}, {Row: 0, Col: 0, Value: 1}}},
		{"duplicate", []core.Triplet[int]{{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 0, Value: 2}}},
		{"outside", []core.Triplet[int]{{Row: 0, Col: 5, Value: 1}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := core.NewTripletList[int](2, 2, len(tc.items))
			l.Items = append(l.Items, tc.items...)
			_, err := matrix.NewCSRFromTriplets[int](l)
			require.ErrorIs(t, err, matrix.ErrMalformedInput)
		})
	}

	l := core.NewTripletList[int](2, 2, 1)
	l.Append(0, 0, 1)
	l.Declared = 3
	_, err := matrix.NewCSRFromTriplets[int](l)
	require.ErrorIs(t, err, core.ErrMalformedInput)
}

func TestNewCSRFromUnsorted_MergesDuplicates(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[int](3, 3, 4)
	l.Append(2, 2, 5)
	l.Append(0, 1, 1)
	l.Append(2, 2, 6)
	l.Append(1, 0, 2)

	m, err := matrix.NewCSRFromUnsorted[int](l, func(a, b int) int { return a + b })
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 11, v)

	last, err := matrix.NewCSRFromUnsorted[int](l, nil)
	require.NoError(t, err)
	v, _ = last.Get(2, 2)
	require.Equal(t, 6, v)
}

func TestCSR_ShiftedInsertKeepsOrder(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR[int](4, 4)
	require.NoError(t, err)

	// Insert in scrambled order across rows, including rows after the target.
	pts := []core.Index{{Row: 3, Col: 3}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 0, Col: 0}, {Row: 3, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 3}}
	for i, ix := range pts {
		require.NoError(t, m.Insert(ix, i))
	}
	require.Equal(t, len(pts), m.Size())

	var got []core.Index
	for ix := range core.All[core.Index, int](m) {
		got = append(got, ix)
	}
	require.Equal(t, []core.Index{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 3}}, got)

	// Every inserted key is findable with its value.
	for i, ix := range pts {
		v, err := m.At(ix.Row, ix.Col)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	// Overwrite keeps nnz.
	require.NoError(t, m.Insert(core.Index{Row: 2, Col: 0}, 99))
	require.Equal(t, len(pts), m.Size())
	require.Equal(t, 2, m.RowNNZ(3))
	require.ErrorIs(t, m.Insert(core.Index{Row: 4, Col: 0}, 1), matrix.ErrOutOfRange)
}

func TestCSR_AccessorSemantics(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR[float64](2, 3)
	require.NoError(t, err)

	// At never inserts.
	_, err = m.At(1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(5, 1)
	require.ErrorIs(t, err, core.ErrOutOfRange)
	require.Equal(t, 0, m.Size())

	// Ref auto-vivifies.
	p, err := m.Ref(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, m.Size())
	*p = 4.5
	v, ok := m.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, 4.5, v)

	_, err = m.Ref(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	ok, err = m.Delete(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = m.Delete(1, 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, m.Size())
}

func TestCSR_CursorSkipsEmptyRows(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[int](6, 2, 3)
	l.Append(1, 1, 11)
	l.Append(4, 0, 40)
	l.Append(4, 1, 41)
	m, err := matrix.NewCSRFromTriplets[int](l)
	require.NoError(t, err)

	c := m.Begin()
	require.Equal(t, core.Index{Row: 1, Col: 1}, c.Index())
	require.True(t, c.Next())
	require.Equal(t, core.Index{Row: 4, Col: 0}, c.Index())

	// Random access from the start.
	r := m.Begin()
	require.True(t, r.RandomAccess())
	require.True(t, r.Advance(2))
	require.Equal(t, 41, r.Value())
	require.True(t, r.Advance(-2))
	require.Equal(t, core.Index{Row: 1, Col: 1}, r.Index())

	// Prev from the end reaches the last entry.
	e := m.Begin()
	e.Advance(3)
	require.False(t, e.Valid())
	require.True(t, e.Prev())
	require.Equal(t, core.Index{Row: 4, Col: 1}, e.Index())

	d, ok := m.Begin().Distance(m.Find(core.Index{Row: 4, Col: 1}))
	require.True(t, ok)
	require.Equal(t, 2, d)

	require.False(t, m.Find(core.Index{Row: 2, Col: 0}).Valid())
	require.False(t, m.Find(core.Index{Row: 9, Col: 0}).Valid())
}

func TestCSR_CloneApplyTriplets(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[int](2, 2, 2)
	l.Append(0, 1, 1)
	l.Append(1, 0, 2)
	m, err := matrix.NewCSRFromTriplets[int](l)
	require.NoError(t, err)

	cp := m.Clone()
	m.Apply(func(_ core.Index, v int) int { return v * 10 })
	v, _ := cp.Get(0, 1)
	require.Equal(t, 1, v, "clone is independent")

	require.Equal(t, []core.Triplet[int]{{Row: 0, Col: 1, Value: 10}, {Row: 1, Col: 0, Value: 20}}, m.Triplets().Items)
	require.Equal(t, "CSR[2×2, nnz=2]{(0,1):10, (1,0):20}", m.String())

	var cols []int
	for c := range m.Row(1) {
		cols = append(cols, c)
	}
	require.Equal(t, []int{0}, cols)
}

func TestCSR_ZeroShapes(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR[int](0, 5)
	require.NoError(t, err)
	require.False(t, m.Begin().Valid())
	require.Equal(t, 0, core.Size[core.Index, int](m))

	_, err = matrix.NewCSR[int](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestCSR_NumericPolicy(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR[float64](1, 1, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Insert(core.Index{}, posInf()), matrix.ErrNaNInf)

	// Default policy accepts +Inf (min-plus "no path").
	free, err := matrix.NewCSR[float64](1, 1)
	require.NoError(t, err)
	require.NoError(t, free.Insert(core.Index{}, posInf()))
}

func TestNewCSRFrom_SortsForeignOrder(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Insert(core.Index{Row: 1, Col: 0}, 3))
	require.NoError(t, d.Insert(core.Index{Row: 0, Col: 1}, 2))

	m, err := matrix.NewCSRFrom[int](d)
	require.NoError(t, err)
	require.True(t, core.Equal[core.Index, int](m, d, func(a, b int) bool { return a == b }))
}
