// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics; every
//     validation sentinel also satisfies errors.Is(err, core.ErrInvalidArgument).
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested topology.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidArgument)

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = fmt.Errorf("builder: density out of range: %w", core.ErrInvalidArgument)

// ErrNeedRandSource indicates that a stochastic constructor with 0 < density < 1
// ran without WithSeed or WithRand.
var ErrNeedRandSource = fmt.Errorf("builder: rng is required: %w", core.ErrInvalidArgument)

// ErrShapeTooSmall indicates that a constructor emitted an entry outside the
// target shape, or asked for a symmetric entry in a non-square shape.
var ErrShapeTooSmall = fmt.Errorf("builder: topology does not fit the shape: %w", core.ErrInvalidArgument)

// ErrConstructFailed indicates a nil constructor or another composition failure.
var ErrConstructFailed = fmt.Errorf("builder: construction failed: %w", core.ErrInvalidArgument)

// builderErrorf wraps err with the constructor name: "<Method>: <msg>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
