// SPDX-License-Identifier: MIT

package mmio

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
)

// ErrUnsupported reports a valid banner naming a format this package does not
// read (array storage, complex or hermitian fields).
var ErrUnsupported = fmt.Errorf("mmio: unsupported format: %w", core.ErrMalformedInput)

// lineErrorf tags err with the 1-based input line.
func lineErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("mmio: line %d: %s: %w", line, fmt.Sprintf(format, args...), core.ErrMalformedInput)
}
