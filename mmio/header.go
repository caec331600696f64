// SPDX-License-Identifier: MIT

package mmio

import (
	"fmt"
	"strings"
)

// Banner fields understood by this package.
const (
	bannerPrefix = "%%MatrixMarket"

	FieldReal    = "real"
	FieldInteger = "integer"
	FieldPattern = "pattern"

	SymmetryGeneral   = "general"
	SymmetrySymmetric = "symmetric"
	SymmetrySkew      = "skew-symmetric"
)

// Header describes a coordinate file.
type Header struct {
	Field    string
	Symmetry string
	Rows     int
	Cols     int
	NNZ      int // stored data lines, before symmetric expansion
}

// defaultHeader applies when the banner is missing.
func defaultHeader() Header {
	return Header{Field: FieldReal, Symmetry: SymmetryGeneral}
}

// parseBanner reads "%%MatrixMarket matrix coordinate <field> <symmetry>".
func parseBanner(line string, h *Header) error {
	f := strings.Fields(strings.ToLower(line))
	if len(f) != 5 || f[0] != strings.ToLower(bannerPrefix) {
		return lineErrorf(1, "malformed banner %q", line)
	}
	if f[1] != "matrix" || f[2] != "coordinate" {
		return fmt.Errorf("%s %s: %w", f[1], f[2], ErrUnsupported)
	}
	switch f[3] {
	case FieldReal, FieldInteger, FieldPattern:
		h.Field = f[3]
	default:
		return fmt.Errorf("field %s: %w", f[3], ErrUnsupported)
	}
	switch f[4] {
	case SymmetryGeneral, SymmetrySymmetric, SymmetrySkew:
		h.Symmetry = f[4]
	default:
		return fmt.Errorf("symmetry %s: %w", f[4], ErrUnsupported)
	}
	return nil
}
