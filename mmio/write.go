// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
)

// Write emits m as a "coordinate general" Matrix Market stream in row-major
// order. The field is integer for integer T and real otherwise. WithGzip
// compresses the output; WithZeroBased writes 0-based indices.
func Write[T op.Number](w io.Writer, m core.MatrixRange[T], opts ...Option) error {
	if m == nil {
		return core.Errorf("mmio.Write", core.ErrNilRange)
	}
	o := gatherOptions(opts)

	var zw *gzip.Writer
	if o.gzip {
		zw = gzip.NewWriter(w)
		w = zw
	}
	bw := bufio.NewWriter(w)

	field := FieldReal
	if isInteger[T]() {
		field = FieldInteger
	}
	sh := core.ShapeOf(m)
	nnz := core.Size(m)
	base := 1
	if o.zeroBased {
		base = 0
	}

	fmt.Fprintf(bw, "%s matrix coordinate %s %s\n", bannerPrefix, field, SymmetryGeneral)
	fmt.Fprintf(bw, "%d %d %d\n", sh.Rows, sh.Cols, nnz)
	buf := make([]byte, 0, 64)
	for ix, v := range core.All(m) {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(ix.Row+base), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(ix.Col+base), 10)
		buf = append(buf, ' ')
		buf = appendValue(buf, v, field)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("mmio: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mmio: write: %w", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("mmio: gzip: %w", err)
		}
	}
	o.logger.Debug("mmio write",
		slog.String("field", field), slog.Int("rows", sh.Rows), slog.Int("cols", sh.Cols),
		slog.Int("nnz", nnz), slog.Bool("gzip", o.gzip))
	return nil
}

// isInteger reports whether T truncates division.
func isInteger[T op.Number]() bool {
	one, two := T(1), T(2)
	return one/two == 0
}

func appendValue[T op.Number](buf []byte, v T, field string) []byte {
	if field == FieldInteger {
		if T(0)-T(1) > 0 { // unsigned
			return strconv.AppendUint(buf, uint64(v), 10)
		}
		return strconv.AppendInt(buf, int64(v), 10)
	}
	return strconv.AppendFloat(buf, float64(v), 'g', -1, 64)
}
