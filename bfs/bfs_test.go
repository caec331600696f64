// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/grb/bfs"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacency builds an n×n boolean adjacency from directed edges; undirected
// adds both directions.
func adjacency(t testing.TB, n int, undirected bool, edges ...[2]int) *matrix.CSR[bool] {
	t.Helper()
	l := core.NewTripletList[bool](n, n, 2*len(edges))
	for _, e := range edges {
		l.Append(e[0], e[1], true)
		if undirected {
			l.Append(e[1], e[0], true)
		}
	}
	m, err := matrix.NewCSRFromUnsorted[bool](l, func(a, _ bool) bool { return a })
	require.NoError(t, err)
	return m
}

func levels(t *testing.T, r *bfs.Result) map[int]int {
	t.Helper()
	out := map[int]int{}
	for v, d := range core.All[int, int](r.Level) {
		out[v] = d
	}
	return out
}

func TestLevels_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.Levels[bool](nil, 0)
	require.ErrorIs(t, err, core.ErrNilRange)

	rect, err := matrix.NewCSR[bool](2, 3)
	require.NoError(t, err)
	_, err = bfs.Levels[bool](rect, 0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	sq := adjacency(t, 3, false)
	_, err = bfs.Levels[bool](sq, 3)
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.Levels[bool](sq, -1)
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)

	_, err = bfs.Levels[bool](sq, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestLevels_SingleVertex(t *testing.T) {
	t.Parallel()

	res, err := bfs.Levels[bool](adjacency(t, 1, false), 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Order)
	require.Equal(t, map[int]int{0: 0}, levels(t, res))
	p, ok := res.Parent.Get(0)
	require.True(t, ok)
	require.Equal(t, 0, p)
}

func TestLevels_CycleAndUnreached(t *testing.T) {
	t.Parallel()

	// 0–1–2–3–0 cycle plus an isolated vertex 4.
	adj := adjacency(t, 5, true, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	res, err := bfs.Levels[bool](adj, 0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, levels(t, res))
	_, ok := res.Depth(4)
	assert.False(t, ok, "isolated vertex stays absent")
	_, ok = res.Parent.Get(4)
	assert.False(t, ok)

	// 2 is reachable from both 1 and 3; the smaller index wins.
	p, _ := res.Parent.Get(2)
	require.Equal(t, 1, p)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
	_, err = res.PathTo(4)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestLevels_DirectedEdges(t *testing.T) {
	t.Parallel()

	// 0 → 1 → 2, 3 → 0: 3 is not reachable from 0.
	adj := adjacency(t, 4, false, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 0})
	res, err := bfs.Levels[bool](adj, 0)
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, levels(t, res))

	back, err := bfs.Levels[bool](adj, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, back.Order)
}

// Edge values are ignored: a stored false or zero is still an edge.
func TestLevels_StructuralEdges(t *testing.T) {
	t.Parallel()

	l := core.NewTripletList[float64](3, 3, 2)
	l.Append(0, 1, 0)
	l.Append(1, 2, -4.5)
	adj, err := matrix.NewCSRFromTriplets[float64](l)
	require.NoError(t, err)

	res, err := bfs.Levels[float64](adj, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestLevels_MaxDepthAndHooks(t *testing.T) {
	t.Parallel()

	path := adjacency(t, 6, true, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5})

	var seen [][]int
	res, err := bfs.Levels[bool](path, 0, bfs.WithMaxDepth(2),
		bfs.WithOnLevel(func(depth int, frontier []int) error {
			require.Len(t, seen, depth)
			seen = append(seen, frontier)
			return nil
		}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
	require.Equal(t, [][]int{{0}, {1}, {2}}, seen)

	stop := errors.New("stop")
	_, err = bfs.Levels[bool](path, 0, bfs.WithOnLevel(func(depth int, _ []int) error {
		if depth == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestLevels_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	adj := adjacency(t, 3, true, [2]int{0, 1}, [2]int{1, 2})
	_, err := bfs.Levels[bool](adj, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
