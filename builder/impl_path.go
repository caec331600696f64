// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//   - WithSymmetric also stores i → (i-1).
//
// Complexity:
//   - Time: O(n-1) entries.
//   - Space: O(1) extra.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := e.square(methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := e.edge(methodPath, i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}
