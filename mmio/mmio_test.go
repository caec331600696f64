// SPDX-License-Identifier: MIT

package mmio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grb/builder"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/mmio"
)

func triplets[T any](l *core.TripletList[T]) map[core.Index]T {
	out := make(map[core.Index]T, l.Len())
	for _, t := range l.Items {
		out[t.Index()] = t.Value
	}
	return out
}

func TestRead_General(t *testing.T) {
	t.Parallel()

	src := `%%MatrixMarket matrix coordinate real general
% a comment

3 4 3
1 1 1.5
2 3 -2
3 4 1e3
`
	l, err := mmio.Read[float64](strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, l.Rows)
	assert.Equal(t, 4, l.Cols)
	assert.Equal(t, map[core.Index]float64{
		{Row: 0, Col: 0}: 1.5,
		{Row: 1, Col: 2}: -2,
		{Row: 2, Col: 3}: 1000,
	}, triplets(l))
	require.NoError(t, core.ValidateTriplets[float64](l))
}

func TestRead_FieldsAndSymmetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want map[core.Index]int
	}{
		{
			name: "pattern",
			src:  "%%MatrixMarket matrix coordinate pattern general\n2 2 2\n1 2\n2 1\n",
			want: map[core.Index]int{{Row: 0, Col: 1}: 1, {Row: 1, Col: 0}: 1},
		},
		{
			name: "integer symmetric",
			src:  "%%MatrixMarket matrix coordinate integer symmetric\n3 3 3\n1 1 5\n3 1 7\n3 2 9\n",
			want: map[core.Index]int{
				{Row: 0, Col: 0}: 5,
				{Row: 0, Col: 2}: 7, {Row: 2, Col: 0}: 7,
				{Row: 1, Col: 2}: 9, {Row: 2, Col: 1}: 9,
			},
		},
		{
			name: "skew-symmetric",
			src:  "%%MatrixMarket matrix coordinate integer skew-symmetric\n2 2 1\n2 1 4\n",
			want: map[core.Index]int{{Row: 1, Col: 0}: 4, {Row: 0, Col: 1}: -4},
		},
		{
			name: "no banner",
			src:  "2 2 1\n2 2 3\n",
			want: map[core.Index]int{{Row: 1, Col: 1}: 3},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, err := mmio.Read[int](strings.NewReader(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.want, triplets(l))
			require.NoError(t, core.ValidateTriplets[int](l), "output must be sorted and unique")
		})
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		opts []mmio.Option
	}{
		{"empty", "", nil},
		{"bad banner", "%%MatrixMarket matrix\n1 1 0\n", nil},
		{"short size line", "2 2\n", nil},
		{"negative size", "2 -2 0\n", nil},
		{"too few entries", "2 2 2\n1 1 1\n", nil},
		{"too many entries", "2 2 1\n1 1 1\n2 2 2\n", nil},
		{"out of range", "2 2 1\n3 1 1\n", nil},
		{"zero index in 1-based", "2 2 1\n0 1 1\n", nil},
		{"bad value", "2 2 1\n1 1 x\n", nil},
		{"missing value", "2 2 1\n1 1\n", nil},
		{"unsorted", "2 2 2\n2 1 1\n1 1 1\n", nil},
		{"duplicate", "2 2 2\n1 1 1\n1 1 2\n", nil},
		{"symmetric not square", "%%MatrixMarket matrix coordinate real symmetric\n2 3 0\n", nil},
		{"zero-based out of range", "2 2 1\n2 2 1\n", []mmio.Option{mmio.WithZeroBased()}},
		{"symmetric unsorted", "%%MatrixMarket matrix coordinate real symmetric\n3 3 2\n3 1 1\n2 1 1\n", nil},
		{"skew-symmetric duplicate", "%%MatrixMarket matrix coordinate real skew-symmetric\n3 3 2\n2 1 1\n2 1 1\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := mmio.Read[float64](strings.NewReader(tc.src), tc.opts...)
			require.ErrorIs(t, err, core.ErrMalformedInput)
		})
	}
}

func TestRead_Unsupported(t *testing.T) {
	t.Parallel()

	for _, banner := range []string{
		"%%MatrixMarket matrix array real general",
		"%%MatrixMarket matrix coordinate complex general",
		"%%MatrixMarket matrix coordinate real hermitian",
	} {
		_, err := mmio.Read[float64](strings.NewReader(banner + "\n1 1 0\n"))
		require.ErrorIs(t, err, mmio.ErrUnsupported, banner)
		require.ErrorIs(t, err, core.ErrMalformedInput)
	}
}

func TestRead_WithSort(t *testing.T) {
	t.Parallel()

	src := "3 3 4\n3 3 1\n1 2 2\n1 2 5\n2 1 3\n"
	l, err := mmio.Read[int](strings.NewReader(src), mmio.WithSort())
	require.NoError(t, err)
	require.NoError(t, core.ValidateTriplets[int](l))
	assert.Equal(t, map[core.Index]int{
		{Row: 0, Col: 1}: 5, // last occurrence wins
		{Row: 1, Col: 0}: 3,
		{Row: 2, Col: 2}: 1,
	}, triplets(l))
}

func TestRead_SymmetricColumnMajorWithSort(t *testing.T) {
	t.Parallel()

	const banner = "%%MatrixMarket matrix coordinate integer symmetric\n4 4 4\n"
	rowMajor := banner + "2 1 1\n3 1 2\n3 2 4\n4 1 3\n"
	colMajor := banner + "2 1 1\n3 1 2\n4 1 3\n3 2 4\n"

	want, err := mmio.Read[int](strings.NewReader(rowMajor))
	require.NoError(t, err)

	_, err = mmio.Read[int](strings.NewReader(colMajor))
	require.ErrorIs(t, err, core.ErrMalformedInput)

	got, err := mmio.Read[int](strings.NewReader(colMajor), mmio.WithSort())
	require.NoError(t, err)
	require.NoError(t, core.ValidateTriplets[int](got))
	assert.Equal(t, want.Items, got.Items)
	assert.Len(t, got.Items, 8)
}

func TestRead_ZeroBased(t *testing.T) {
	t.Parallel()

	l, err := mmio.Read[int](strings.NewReader("2 2 1\n0 1 7\n"), mmio.WithZeroBased())
	require.NoError(t, err)
	assert.Equal(t, map[core.Index]int{{Row: 0, Col: 1}: 7}, triplets(l))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildCSR[float64](6, 6,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithValueFn(builder.UniformValueFn(-10, 10))},
		builder.RandomSparse(0.4))
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		opts []mmio.Option
	}{
		{"plain", nil},
		{"gzip", []mmio.Option{mmio.WithGzip()}},
		{"zero-based", []mmio.Option{mmio.WithZeroBased()}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, mmio.Write[float64](&buf, g, tc.opts...))
			back, err := mmio.ReadCSR[float64](&buf, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, g.Shape(), back.Shape())
			assert.True(t, core.Equal[core.Index, float64](g, back, func(a, b float64) bool { return a == b }))
		})
	}
}

func TestWrite_IntegerField(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR[uint8](2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Insert(core.Index{Row: 0, Col: 2}, 200))
	require.NoError(t, m.Insert(core.Index{Row: 1, Col: 0}, 3))

	var buf bytes.Buffer
	require.NoError(t, mmio.Write[uint8](&buf, m))
	assert.Equal(t,
		"%%MatrixMarket matrix coordinate integer general\n2 3 2\n1 3 200\n2 1 3\n",
		buf.String())

	require.ErrorIs(t, mmio.Write[int](&buf, nil), core.ErrNilRange)
}

func TestRead_GzipDetected(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCSR[int](1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Insert(core.Index{}, 4))

	var buf bytes.Buffer
	require.NoError(t, mmio.Write[int](&buf, m, mmio.WithGzip()))
	require.Equal(t, []byte{0x1f, 0x8b}, buf.Bytes()[:2])

	l, err := mmio.Read[int](&buf)
	require.NoError(t, err)
	assert.Equal(t, map[core.Index]int{{}: 4}, triplets(l))
}
