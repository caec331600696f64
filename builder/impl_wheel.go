// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: ring vertices 1..n-1 form a cycle, vertex 0 is the hub.
//   • Therefore, n ≥ 4 (the ring must be a valid cycle: n-1 ≥ 3).
//
// Emission order: ring edges i → i+1 (wrapping n-1 → 1), then spokes 0 → i.
//
// Complexity: O(n) entries.

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := e.square(methodWheel, n); err != nil {
			return err
		}
		ring := n - 1
		for k := 0; k < ring; k++ {
			if err := e.edge(methodWheel, 1+k, 1+(k+1)%ring); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := e.edge(methodWheel, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
