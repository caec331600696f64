// SPDX-License-Identifier: MIT
// Package bfs - options, sentinel errors and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/grb/vector"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceOutOfRange is returned when the source vertex is not a row of the adjacency matrix.
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Levels is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation between levels.
	Ctx context.Context

	// OnLevel is called once per discovered level with the level depth and
	// the vertices first reached at that depth, ascending. A non-nil error
	// aborts the traversal.
	OnLevel func(depth int, frontier []int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Logger receives one Debug record per level.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth limit
//   - a no-op OnLevel hook
//   - a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnLevel:  func(int, []int) error { return nil },
		MaxDepth: 0,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLevel registers a per-level callback; returning an error stops the search.
func WithOnLevel(fn func(depth int, frontier []int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger routes per-level Debug records to l. Nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a traversal:
//   - Level: vertex → distance in edges from the source; unreached vertices are absent.
//   - Parent: vertex → predecessor in the BFS tree; the source is its own parent.
//   - Order: vertices in visit sequence (by level, ascending index within a level).
type Result struct {
	Source int
	Level  *vector.Sparse[int]
	Parent *vector.Sparse[int]
	Order  []int
}

// Depth returns the level of v and whether v was reached.
func (r *Result) Depth(v int) (int, bool) { return r.Level.Get(v) }

// PathTo reconstructs the path from the source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	d, ok := r.Level.Get(dest)
	if !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur, _ = r.Parent.Get(cur)
	}
	return path, nil
}
