// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// validators.go - parameter contracts shared by constructors.

package builder

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "density must be in [%.1f,%.1f], got %g",
			MinProbability, MaxProbability, p)
	}
	return nil
}
