// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(rows, cols, bopts, cons...). Resolves cfg, runs cons in order,
//     then sorts the stream and collapses duplicates (later emission wins).
//   - All public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical triplets.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints:
//   - Compose constructors to assemble fixtures, e.g. Build(n, n, nil, Cycle(n), Identity(n))
//     for a cycle with self-loops.
//   - Use WithSeed(...) to freeze RandomSparse.
//   - BuildCSR is Build followed by matrix.NewCSRFromTriplets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
)

// Constructor emits a deterministic set of entries through the emitter using
// the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit entries in a stable, documented order.
type Constructor func(e *emitter) error

// Build resolves the builder configuration from bopts, applies all
// constructors in order into a rows×cols triplet list, and returns it sorted
// row-major with duplicates collapsed (the later emission wins).
//
// Errors: wraps constructor errors via %w; every validation failure also
// satisfies errors.Is(err, core.ErrInvalidArgument).
// Complexity: Σ cost of constructors + O(k log k) for k emitted entries.
func Build[T op.Number](rows, cols int, bopts []BuilderOption, cons ...Constructor) (*core.TripletList[T], error) {
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	l := core.NewTripletList[T](rows, cols, 0)
	e := &emitter{
		rows: rows,
		cols: cols,
		cfg:  newBuilderConfig(bopts...),
		add:  func(i, j int, v float64) { l.Append(i, j, T(v)) },
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(e); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	l.Sort()
	l.Dedup(nil)
	return l, nil
}

// BuildCSR is Build materialised as a CSR matrix.
func BuildCSR[T op.Number](rows, cols int, bopts []BuilderOption, cons ...Constructor) (*matrix.CSR[T], error) {
	l, err := Build[T](rows, cols, bopts, cons...)
	if err != nil {
		return nil, err
	}
	return matrix.NewCSRFromTriplets[T](l)
}
