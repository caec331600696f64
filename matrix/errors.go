// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Backends report the shared core sentinels; the two matrix-specific ones below
// wrap core.ErrInvalidArgument so a single errors.Is check covers both.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
)

var (
	// ErrInvalidShape is returned for negative dimensions, or for Dense shapes
	// whose cell count does not fit the 32-bit presence bitmap.
	ErrInvalidShape = fmt.Errorf("matrix: invalid shape: %w", core.ErrInvalidArgument)

	// ErrNaNInf is returned on ingestion/Insert of NaN or ±Inf when the
	// numeric policy (WithValidateNaNInf) is enabled.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", core.ErrInvalidArgument)
)

// Aliases of the shared sentinels, so callers of this package alone can match
// errors without importing core.
var (
	ErrOutOfRange     = core.ErrOutOfRange
	ErrMalformedInput = core.ErrMalformedInput
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxRef     = "Ref"
	ctxInsert  = "Insert"
	ctxDelete  = "Delete"
	ctxNew     = "New"
	ctxIngest  = "FromTriplets"
	ctxUnsort  = "FromUnsorted"
	kindCSR    = "CSR"
	kindDense  = "Dense"
	panicCapNg = "matrix: WithCapacity: capacity must be >= 0"
)

// matrixErrorf wraps err with the backend kind, method and coordinates:
// "CSR.At(1,2): <err>".
// Complexity: O(1).
func matrixErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}
