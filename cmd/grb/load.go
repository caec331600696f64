// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/grb/codec"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/mmio"
)

// loadMatrix reads a snapshot or a Matrix Market file, telling them apart by
// the snapshot magic.
func (e *cmdEnv) loadMatrix(path string) (*matrix.CSR[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var l *core.TripletList[float64]
	if magic, err := br.Peek(len(codec.Magic)); err == nil && string(magic) == codec.Magic {
		l, err = codec.Decode[float64](br, codec.WithLogger(e.log.Logger))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		opts := []mmio.Option{mmio.WithLogger(e.log.Logger)}
		if e.cfg.Input.ZeroBased {
			opts = append(opts, mmio.WithZeroBased())
		}
		if e.cfg.Input.Sort {
			opts = append(opts, mmio.WithSort())
		}
		l, err = mmio.Read[float64](br, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	m, err := matrix.NewCSRFromTriplets[float64](l, matrix.WithLogger(e.log.Logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	e.log.Debug("loaded", slog.String("path", path), slog.String("matrix", m.Shape().String()), slog.Int("nnz", m.Size()))
	return m, nil
}

// saveMatrix writes m in the format named by the extension of path:
// .grb for a snapshot, .gz for gzipped Matrix Market, anything else plain.
func (e *cmdEnv) saveMatrix(path string, m core.MatrixRange[float64], compression codec.Compression) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	switch {
	case strings.HasSuffix(path, ".grb"):
		err = codec.Encode[float64](w, m, codec.WithCompression(compression), codec.WithLogger(e.log.Logger))
	case strings.HasSuffix(path, ".gz"):
		err = mmio.Write[float64](w, m, mmio.WithGzip(), mmio.WithLogger(e.log.Logger))
	default:
		err = mmio.Write[float64](w, m, mmio.WithLogger(e.log.Logger))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return w.Flush()
}
