// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_complete.go - implementation of Complete(n): every off-diagonal pair.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Without WithSymmetric every ordered pair (i,j), i ≠ j, draws its own
//     value; with it only i < j draws and the mirror copies.
//
// Complexity: O(n²) entries.

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := e.square(methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (e.cfg.symmetric && j < i) {
					continue
				}
				if err := e.edge(methodComplete, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
