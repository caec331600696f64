// SPDX-License-Identifier: MIT
// Package bfs - level-synchronous traversal as repeated masked MxV.

package bfs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
	"github.com/katalvlaran/grb/view"
)

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	at     core.MatrixRange[T] // transpose of the adjacency, built once
	opts   Options
	ctx    context.Context
	log    *slog.Logger
	sr     op.Semiring[T, int, int]
	level  *vector.Dense[int]
	parent *vector.Dense[int]
	res    *Result
}

// Levels runs breadth-first search over the adjacency matrix adj, where a
// stored entry at (i, j) is an edge i → j whatever its value, starting from
// source.
//
// Each step computes next = Aᵀ min.second frontier under the complement of
// the visited set. The frontier carries each vertex's own index as its value,
// so the product yields the smallest-index parent of every newly reached vertex.
//
// Errors: core.ErrNilRange, core.ErrInvalidArgument for a non-square matrix,
// ErrSourceOutOfRange, ErrOptionViolation, ctx.Err() on cancellation, or a
// wrapped OnLevel error.
// Complexity: O(depth · nnz · log) time, O(n) extra memory.
func Levels[T any](adj core.MatrixRange[T], source int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, fmt.Errorf("bfs: %w", core.ErrNilRange)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := core.ShapeOf(adj).Rows
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	level, err := vector.NewDense[int](n)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	parent, _ := vector.NewDense[int](n)
	w := &walker[T]{
		at:     view.Transpose(adj),
		opts:   o,
		ctx:    o.Ctx,
		log:    o.Logger,
		sr:     op.MinSecond[T, int](),
		level:  level,
		parent: parent,
		res:    &Result{Source: source, Order: make([]int, 0, n)},
	}
	if err := w.loop(source); err != nil {
		return nil, err
	}
	if w.res.Level, err = vector.NewSparseFrom[int](level); err != nil {
		return nil, err
	}
	if w.res.Parent, err = vector.NewSparseFrom[int](parent); err != nil {
		return nil, err
	}
	return w.res, nil
}

// visit records a vertex at depth d with parent p.
func (w *walker[T]) visit(v, d, p int) {
	_ = w.level.Insert(v, d)
	_ = w.parent.Insert(v, p)
	w.res.Order = append(w.res.Order, v)
}

// loop expands the frontier level by level until it is empty, the depth
// limit is hit, or the context is cancelled.
func (w *walker[T]) loop(source int) error {
	n := w.level.Len()
	frontier, _ := vector.NewSparse[int](n)
	_ = frontier.Insert(source, source)
	w.visit(source, 0, source)
	if err := w.opts.OnLevel(0, []int{source}); err != nil {
		return fmt.Errorf("bfs: OnLevel error at depth 0: %w", err)
	}

	for depth := 1; ; depth++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
			return nil
		}

		next, err := algebra.MxV[T, int, int](w.at, frontier, w.sr,
			algebra.WithStructuralMask[int, int](w.level), algebra.WithComplementMask[int]())
		if err != nil {
			return fmt.Errorf("bfs: level %d: %w", depth, err)
		}
		if next.Size() == 0 {
			return nil
		}
		next.Do(func(v, p int) bool {
			w.visit(v, depth, p)
			return true
		})
		w.log.Debug("bfs level", slog.Int("depth", depth), slog.Int("size", next.Size()))
		if err := w.opts.OnLevel(depth, next.Indices()); err != nil {
			return fmt.Errorf("bfs: OnLevel error at depth %d: %w", depth, err)
		}

		next.Apply(func(v, _ int) int { return v })
		frontier = next
	}
}
