// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
)

// ErrInvalidLength is returned for negative lengths, or Dense lengths beyond
// the 32-bit offset space.
var ErrInvalidLength = fmt.Errorf("vector: invalid length: %w", core.ErrInvalidArgument)

// ErrOutOfRange aliases the shared sentinel.
var ErrOutOfRange = core.ErrOutOfRange

const (
	kindSparse = "Sparse"
	kindDense  = "Dense"
)

// vectorErrorf wraps err as "<kind>.<method>(i): <err>".
func vectorErrorf(kind, method string, i int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", kind, method, i, err)
}

// formatRange renders "<kind>[n, nnz=k]{i:v, ...}" for diagnostics.
func formatRange[T any](kind string, r core.VectorRange[T]) string {
	s := fmt.Sprintf("%s[%d, nnz=%d]{", kind, core.DimOf(r), core.Size(r))
	first := true
	for i, v := range core.All(r) {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%d:%v", i, v)
	}
	return s + "}"
}
