// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/builder"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/view"
	"github.com/stretchr/testify/require"
)

// keys lists the stored coordinates of l in order.
func keys[T any](l *core.TripletList[T]) []core.Index {
	out := make([]core.Index, 0, l.Len())
	for _, tr := range l.Items {
		out = append(out, tr.Index())
	}
	return out
}

func ix(r, c int) core.Index { return core.Index{Row: r, Col: c} }

func TestConstructors_Patterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		ctor builder.Constructor
		want []core.Index
	}{
		{"Identity(3)", 3, builder.Identity(3), []core.Index{ix(0, 0), ix(1, 1), ix(2, 2)}},
		{"Path(4)", 4, builder.Path(4), []core.Index{ix(0, 1), ix(1, 2), ix(2, 3)}},
		{"Cycle(3)", 3, builder.Cycle(3), []core.Index{ix(0, 1), ix(1, 2), ix(2, 0)}},
		{"Star(4)", 4, builder.Star(4), []core.Index{ix(0, 1), ix(0, 2), ix(0, 3)}},
		{"Wheel(4)", 4, builder.Wheel(4), []core.Index{
			ix(0, 1), ix(0, 2), ix(0, 3), ix(1, 2), ix(2, 3), ix(3, 1)}},
		{"Complete(3)", 3, builder.Complete(3), []core.Index{
			ix(0, 1), ix(0, 2), ix(1, 0), ix(1, 2), ix(2, 0), ix(2, 1)}},
		{"CompleteBipartite(1,2)", 3, builder.CompleteBipartite(1, 2), []core.Index{ix(0, 1), ix(0, 2)}},
		{"Grid(2,2)", 4, builder.Grid(2, 2), []core.Index{ix(0, 1), ix(0, 2), ix(1, 3), ix(2, 3)}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, err := builder.Build[int](tc.n, tc.n, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.want, keys(l))
			for _, tr := range l.Items {
				require.Equal(t, int(builder.DefaultValue), tr.Value)
			}
			require.NoError(t, core.ValidateTriplets[int](l))
		})
	}
}

func TestConstructors_ParameterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Identity(0)", builder.Identity(0), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Path(9) in 4x4", builder.Path(9), builder.ErrShapeTooSmall},
		{"Grid(3,3) in 4x4", builder.Grid(3, 3), builder.ErrShapeTooSmall},
		{"RandomSparse(-0.1)", builder.RandomSparse(-0.1), builder.ErrInvalidProbability},
		{"RandomSparse(1.5)", builder.RandomSparse(1.5), builder.ErrInvalidProbability},
		{"RandomSparse(0.5) no rng", builder.RandomSparse(0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.Build[float64](4, 4, nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
		require.ErrorIs(t, err, core.ErrInvalidArgument, tc.name)
	}

	_, err := builder.Build[float64](-1, 4, nil)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestBuild_SymmetricEqualsTranspose(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSymmetric(), builder.WithSeed(17), builder.WithValueFn(builder.IntValueFn(1, 9))}
	for name, ctor := range map[string]builder.Constructor{
		"grid":   builder.Grid(3, 4),
		"random": builder.RandomSparse(0.3),
		"cycle":  builder.Cycle(12),
		"wheel":  builder.Wheel(12),
	} {
		m, err := builder.BuildCSR[int](12, 12, opts, ctor)
		require.NoError(t, err, name)
		require.True(t, core.Equal[core.Index, int](m, view.Transpose[int](m), func(a, b int) bool { return a == b }), name)
	}

	_, err := builder.Build[int](3, 4, []builder.BuilderOption{builder.WithSymmetric(), builder.WithSeed(1)},
		builder.RandomSparse(0.5))
	require.ErrorIs(t, err, builder.ErrShapeTooSmall)
}

func TestRandomSparse_DensityAndDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed int64, d float64) *core.TripletList[float64] {
		l, err := builder.Build[float64](40, 50, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(d))
		require.NoError(t, err)
		return l
	}
	a, b := build(7, 0.1), build(7, 0.1)
	require.Equal(t, a.Items, b.Items)
	require.InDelta(t, 200, a.Len(), 60, "about a tenth of 2000 cells")

	require.Equal(t, 0, build(1, 0).Len())
	require.Equal(t, 2000, build(1, 1).Len())

	// Extreme densities need no RNG.
	full, err := builder.Build[float64](3, 3, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	require.Equal(t, 9, full.Len())
}

// Later constructors overwrite coinciding entries.
func TestBuild_ComposeLaterWins(t *testing.T) {
	t.Parallel()

	l, err := builder.Build[int](3, 3,
		[]builder.BuilderOption{builder.WithValueFn(builder.ConstantValueFn(2))},
		builder.Complete(3), builder.Identity(3))
	require.NoError(t, err)
	require.Equal(t, 9, l.Len())

	m, err := builder.BuildCSR[int](3, 3, nil, builder.Cycle(3), builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
}

// A grid's row sums are vertex degrees when built undirected.
func TestGrid_Degrees(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildCSR[int](9, 9, []builder.BuilderOption{builder.WithSymmetric()}, builder.Grid(3, 3))
	require.NoError(t, err)
	deg, err := algebra.ReduceRows[int](m, op.PlusMonoid[int]())
	require.NoError(t, err)
	want := []int{2, 3, 2, 3, 4, 3, 2, 3, 2}
	for v, d := range want {
		got, ok := deg.Get(v)
		require.True(t, ok)
		require.Equal(t, d, got, "vertex %d", v)
	}
}
