// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_random_sparse.go - implementation of RandomSparse(density).
//
// Canonical model:
//   - Each cell of the target shape is stored independently with probability
//     density (Bernoulli trial per cell, row-major order).
//   - WithSymmetric: only cells with i ≤ j are tried and mirrored, so the
//     result equals its transpose. Requires a square shape.
//
// Contract:
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < density < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(rows·cols) trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed trial order; per trial exactly one Float64 draw, then one value
//     draw for an accepted cell.

package builder

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that samples every cell of the target
// shape with probability density.
func RandomSparse(density float64) Constructor {
	return func(e *emitter) error {
		if err := validateProbability(methodRandomSparse, density); err != nil {
			return err
		}
		rng := e.cfg.rng
		if rng == nil && density > MinProbability && density < MaxProbability {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "density=%g", density)
		}
		if e.cfg.symmetric && e.rows != e.cols {
			return builderErrorf(methodRandomSparse, ErrShapeTooSmall, "symmetric sampling of %d×%d", e.rows, e.cols)
		}
		for i := 0; i < e.rows; i++ {
			j0 := 0
			if e.cfg.symmetric {
				j0 = i
			}
			for j := j0; j < e.cols; j++ {
				var keep bool
				switch {
				case density == MinProbability:
					keep = false
				case density == MaxProbability:
					keep = true
				default:
					keep = rng.Float64() < density
				}
				if !keep {
					continue
				}
				if err := e.edge(methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
