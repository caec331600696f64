// SPDX-License-Identifier: MIT
// Package sssp - Dijkstra over the rows of a non-negative adjacency matrix.

package sssp

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
)

// arc is one stored entry of an adjacency row.
type arc[T any] struct {
	to int
	w  T
}

// Dijkstra computes shortest distances from source over adj, whose weights
// must be non-negative. The adjacency rows are bucketed once, then vertices
// are settled in increasing distance with a lazy-decrease-key heap.
//
// Errors: core.ErrNilRange, core.ErrInvalidArgument (non-square),
// ErrSourceOutOfRange, ErrNegativeWeight, ctx.Err().
// Complexity: O((n + nnz) log n) time, O(n + nnz) space.
func Dijkstra[T op.Number](adj core.MatrixRange[T], source int, opts ...Option) (*Result[T], error) {
	cfg, n, err := prepare(adj, source, opts)
	if err != nil {
		return nil, err
	}

	rows := make([][]arc[T], n)
	for ix, w := range core.All(adj) {
		if float64(w) >= cfg.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, ix.Row, ix.Col, w)
		}
		rows[ix.Row] = append(rows[ix.Row], arc[T]{to: ix.Col, w: w})
	}

	r := &runner[T]{
		cfg:     cfg,
		rows:    rows,
		dist:    make([]T, n),
		reached: make([]bool, n),
		settled: make([]bool, n),
		prev:    make([]int, n),
	}
	r.reached[source] = true
	r.prev[source] = source
	heap.Push(&r.pq, &nodeItem[T]{id: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, err
	}

	dist, _ := vector.NewSparse[T](n)
	for v, ok := range r.reached {
		if ok {
			_ = dist.Insert(v, r.dist[v])
		}
	}
	var parent []int
	if cfg.ReturnPath {
		parent = r.prev
	}
	return finish(&Result[T]{Source: source, Rounds: r.rounds}, n, cfg, dist, parent,
		func(v T) float64 { return float64(v) })
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T op.Number] struct {
	cfg     Options
	rows    [][]arc[T]
	dist    []T
	reached []bool // dist is meaningful
	settled []bool // dist is final
	prev    []int
	pq      nodePQ[T]
	rounds  int
}

// process pops vertices in distance order until the heap drains or the
// next distance exceeds MaxDistance.
func (r *runner[T]) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.cfg.Ctx.Done():
			return r.cfg.Ctx.Err()
		default:
		}
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u := item.id
		if r.settled[u] {
			continue
		}
		if float64(item.dist) > r.cfg.MaxDistance {
			break
		}
		r.settled[u] = true
		r.rounds++
		r.relax(u)
	}
	return nil
}

// relax improves the neighbours of the settled vertex u.
func (r *runner[T]) relax(u int) {
	for _, a := range r.rows[u] {
		nd := r.dist[u] + a.w
		if r.settled[a.to] || float64(nd) > r.cfg.MaxDistance {
			continue
		}
		if r.reached[a.to] && nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to], r.reached[a.to], r.prev[a.to] = nd, true, u
		heap.Push(&r.pq, &nodeItem[T]{id: a.to, dist: nd})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[T any] struct {
	id   int
	dist T
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ[T op.Number] []*nodeItem[T]

func (pq nodePQ[T]) Len() int { return len(pq) }

func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

var _ heap.Interface = (*nodePQ[float64])(nil)
