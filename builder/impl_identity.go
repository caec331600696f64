// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_identity.go - Identity(n): the diagonal entries (i,i), i = 0..n-1.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); n ≤ min(rows, cols).
//   - Values come from cfg.valueFn, so the default is the identity matrix.
//
// Complexity: O(n).

package builder

const (
	methodIdentity = "Identity"
	minIdentity    = 1
)

// Identity returns a Constructor emitting the n diagonal entries.
func Identity(n int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodIdentity, n, minIdentity); err != nil {
			return err
		}
		if err := e.square(methodIdentity, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := e.edge(methodIdentity, i, i); err != nil {
				return err
			}
		}
		return nil
	}
}
