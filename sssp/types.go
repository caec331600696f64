// SPDX-License-Identifier: MIT
// Package sssp - options, sentinel errors and the shortest-path result.

package sssp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/vector"
)

// Sentinel errors returned by the shortest-path solvers.
var (
	// ErrSourceOutOfRange indicates that the source is not a row of the adjacency matrix.
	ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")

	// ErrNegativeWeight indicates that Dijkstra met a negative edge weight.
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrNegativeCycle indicates that Bellman-Ford still relaxed an edge after n rounds.
	ErrNegativeCycle = errors.New("sssp: negative cycle reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("sssp: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value.
	ErrBadInfThreshold = errors.New("sssp: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by PathTo for an unreached vertex or when parents were not recorded.
	ErrNoPath = errors.New("sssp: no path")
)

// Options configures both solvers.
//
// ReturnPath       – if true, Result.Parent is populated.
// MaxDistance      – vertices farther than this are left out of the result.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *slog.Logger
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// DefaultOptions returns Options initialized with:
//   - Ctx:              context.Background()
//   - ReturnPath:       false
//   - MaxDistance:      +Inf
//   - InfEdgeThreshold: +Inf
//   - Logger:           discarding.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           slog.New(slog.DiscardHandler),
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

// WithReturnPath enables the predecessor vector in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance drops vertices whose shortest distance exceeds d.
// Panics with ErrBadMaxDistance when d < 0.
func WithMaxDistance(d float64) Option {
	if d < 0 || math.IsNaN(d) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = d }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as absent.
// Panics with ErrBadInfThreshold when threshold <= 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithLogger routes per-round Debug records to l. Nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a single-source shortest-path run.
//   - Dist: vertex → shortest distance; unreachable vertices are absent.
//   - Parent: vertex → predecessor on a shortest path, the source maps to
//     itself. Nil unless WithReturnPath was given.
//   - Rounds: relaxation rounds used (Bellman-Ford) or vertices settled (Dijkstra).
type Result[T any] struct {
	Source int
	Dist   *vector.Sparse[T]
	Parent *vector.Sparse[int]
	Rounds int
}

// PathTo reconstructs the path from the source to dest.
func (r *Result[T]) PathTo(dest int) ([]int, error) {
	if r.Parent == nil {
		return nil, fmt.Errorf("%w: parents not recorded", ErrNoPath)
	}
	if _, ok := r.Dist.Get(dest); !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	var rev []int
	for cur := dest; len(rev) <= r.Dist.Len(); {
		rev = append(rev, cur)
		if cur == r.Source {
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev, nil
		}
		cur, _ = r.Parent.Get(cur)
	}
	return nil, fmt.Errorf("%w to %d: parent chain does not reach the source", ErrNoPath, dest)
}

// prepare resolves options and validates the adjacency and source.
func prepare[T any](adj core.MatrixRange[T], source int, opts []Option) (Options, int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if adj == nil {
		return cfg, 0, fmt.Errorf("sssp: %w", core.ErrNilRange)
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return cfg, 0, fmt.Errorf("sssp: %w", err)
	}
	n := core.ShapeOf(adj).Rows
	if source < 0 || source >= n {
		return cfg, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	return cfg, n, nil
}

// finish caps distances at MaxDistance and assembles the result vectors.
func finish[T any](res *Result[T], n int, cfg Options, dist core.VectorRange[T], parent []int,
	toFloat func(T) float64) (*Result[T], error) {
	var ds []core.VectorEntry[T]
	var ps []core.VectorEntry[int]
	for v, d := range core.All(dist) {
		if toFloat(d) > cfg.MaxDistance {
			continue
		}
		ds = append(ds, core.VectorEntry[T]{Index: v, Value: d})
		if parent != nil {
			ps = append(ps, core.VectorEntry[int]{Index: v, Value: parent[v]})
		}
	}
	var err error
	if res.Dist, err = vector.NewSparseFromEntries(n, ds); err != nil {
		return nil, err
	}
	if cfg.ReturnPath {
		if res.Parent, err = vector.NewSparseFromEntries(n, ps); err != nil {
			return nil, err
		}
	}
	return res, nil
}
