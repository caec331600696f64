// SPDX-License-Identifier: MIT
// Package sssp - Bellman-Ford as iterated min-plus matrix-vector products.

package sssp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
	"github.com/katalvlaran/grb/view"
)

// BellmanFord computes shortest distances from source over the weighted
// adjacency adj (entry (i,j) = weight of edge i → j). Negative weights are
// allowed.
//
// Each round relaxes every edge at once:
//
//	d' = d min (Aᵀ min.+ d)
//
// and stops at the first round that leaves d unchanged. A change in round n
// means a negative cycle is reachable from the source.
//
// Errors: core.ErrNilRange, core.ErrInvalidArgument (non-square),
// ErrSourceOutOfRange, ErrNegativeCycle, ctx.Err().
// Complexity: O(rounds · nnz · log nnz), rounds ≤ n.
func BellmanFord[T op.Number](adj core.MatrixRange[T], source int, opts ...Option) (*Result[T], error) {
	cfg, n, err := prepare(adj, source, opts)
	if err != nil {
		return nil, err
	}

	var edges core.MatrixRange[T] = adj
	if !math.IsInf(cfg.InfEdgeThreshold, 1) {
		edges = view.Filter(adj, func(_ core.Index, w T) bool { return float64(w) < cfg.InfEdgeThreshold })
	}
	at := view.Transpose(edges)

	d, _ := vector.NewSparse[T](n)
	_ = d.Insert(source, 0)
	var parent []int
	if cfg.ReturnPath {
		parent = make([]int, n)
		parent[source] = source
	}

	sr := op.MinPlus[T]()
	res := &Result[T]{Source: source}
	for round := 1; ; round++ {
		select {
		case <-cfg.Ctx.Done():
			return nil, cfg.Ctx.Err()
		default:
		}

		relaxed, err := algebra.MxV[T, T, T](at, d, sr)
		if err != nil {
			return nil, fmt.Errorf("sssp: round %d: %w", round, err)
		}
		next, err := algebra.EwiseUnionTotalVec[T](d, relaxed, op.Min[T])
		if err != nil {
			return nil, fmt.Errorf("sssp: round %d: %w", round, err)
		}
		if core.Equal[int, T](d, next, func(x, y T) bool { return x == y }) {
			res.Rounds = round
			break
		}
		if round >= n {
			return nil, fmt.Errorf("%w (still relaxing after %d rounds)", ErrNegativeCycle, round)
		}
		if parent != nil {
			updateParents(at, d, next, parent)
		}
		cfg.Logger.Debug("sssp round", slog.Int("round", round), slog.Int("reached", next.Size()))
		d = next
	}
	return finish(res, n, cfg, d, parent, func(v T) float64 { return float64(v) })
}

// updateParents records, for every vertex whose distance improved this
// round, the smallest-index predecessor k with d_k + w_kj equal to the new
// distance.
func updateParents[T op.Number](at core.MatrixRange[T], d, next *vector.Sparse[T], parent []int) {
	fixed := -1
	for ix, w := range core.All(at) {
		j, k := ix.Row, ix.Col
		if j == fixed {
			continue
		}
		nv, _ := next.Get(j)
		if old, ok := d.Get(j); ok && nv >= old {
			continue
		}
		if dk, ok := d.Get(k); ok && w+dk == nv {
			parent[j], fixed = k, j
		}
	}
}
