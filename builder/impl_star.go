// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_star.go - implementation of Star(n): hub 0 with spokes 0 → i, i = 1..n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//
// Complexity: O(n-1) entries.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with centre vertex 0.
func Star(n int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := e.square(methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := e.edge(methodStar, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
