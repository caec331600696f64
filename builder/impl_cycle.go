// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i = 0..n-1.
//
// Complexity: O(n) entries.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := e.square(methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := e.edge(methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
