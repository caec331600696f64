// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// value_fn.go - entry value distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultValue is stored for every entry when no custom ValueFn is set.
const DefaultValue float64 = 1

// ValueFn produces an entry value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns DefaultValue.
func DefaultValueFn(_ *rand.Rand) float64 {
	return DefaultValue
}

// ConstantValueFn returns a ValueFn that always yields v.
func ConstantValueFn(v float64) ValueFn {
	return func(_ *rand.Rand) float64 {
		return v
	}
}

// UniformValueFn returns a ValueFn sampling uniformly in [min, max).
// Panics if max < min. With a nil rng it yields min.
func UniformValueFn(min, max float64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// IntValueFn returns a ValueFn sampling integers uniformly in [min, max].
// Panics if max < min. With a nil rng it yields min.
func IntValueFn(min, max int) ValueFn {
	if max < min {
		panic(fmt.Sprintf("IntValueFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalValueFn returns a ValueFn sampling from N(mean, stddev).
// Panics if stddev < 0. With a nil rng it yields mean.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %f", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}
		return rng.NormFloat64()*stddev + mean
	}
}
