// SPDX-License-Identifier: MIT
// Package mmio - Matrix Market coordinate reader.
//
// Input grammar (one record per line):
//
//	%%MatrixMarket matrix coordinate <real|integer|pattern> <general|symmetric|skew-symmetric>
//	% any number of comment lines
//	<rows> <cols> <nnz>
//	<i> <j> [value]      (nnz times, 1-based unless WithZeroBased)
//
// The banner is optional and defaults to "real general". Blank lines are
// skipped. Data lines must be in strictly ascending row-major order unless
// WithSort is given; for symmetric and skew-symmetric files the order applies
// to the stored triangle as written, so column-major files need WithSort.
// Read mirrors every off-diagonal entry and sorts the result.

package mmio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
)

// gzipMagic is the two-byte gzip member header.
var gzipMagic = []byte{0x1f, 0x8b}

// maxLine bounds a single input line.
const maxLine = 1 << 20

// Read parses a Matrix Market coordinate stream into a triplet list sorted
// row-major. A gzip stream is detected by its magic bytes and decompressed.
//
// Errors: core.ErrMalformedInput (wrapped with the line number) for syntax,
// range, count or ordering violations; ErrUnsupported for other formats;
// I/O errors unchanged.
func Read[T op.Number](r io.Reader, opts ...Option) (*core.TripletList[T], error) {
	o := gatherOptions(opts)
	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("mmio: gzip: %w", err)
		}
		defer zr.Close()
		br = bufio.NewReader(zr)
	}

	p := &parser[T]{opts: o, sc: bufio.NewScanner(br), h: defaultHeader()}
	p.sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	l, err := p.run()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("mmio read",
		slog.String("field", p.h.Field), slog.String("symmetry", p.h.Symmetry),
		slog.Int("rows", l.Rows), slog.Int("cols", l.Cols), slog.Int("nnz", l.Len()))
	return l, nil
}

// ReadCSR is Read followed by matrix.NewCSRFromTriplets.
func ReadCSR[T op.Number](r io.Reader, opts ...Option) (*matrix.CSR[T], error) {
	l, err := Read[T](r, opts...)
	if err != nil {
		return nil, err
	}
	return matrix.NewCSRFromTriplets[T](l, matrix.WithLogger(gatherOptions(opts).logger))
}

// parser holds the line cursor and the header read so far.
type parser[T op.Number] struct {
	opts Options
	sc   *bufio.Scanner
	line int
	h    Header
}

// next returns the next non-blank line; comment lines are returned too so
// the caller can spot the banner.
func (p *parser[T]) next() (string, bool) {
	for p.sc.Scan() {
		p.line++
		s := strings.TrimSpace(p.sc.Text())
		if s != "" {
			return s, true
		}
	}
	return "", false
}

func (p *parser[T]) run() (*core.TripletList[T], error) {
	var sizeLine string
	for {
		s, ok := p.next()
		if !ok {
			if err := p.sc.Err(); err != nil {
				return nil, fmt.Errorf("mmio: %w", err)
			}
			return nil, lineErrorf(p.line, "missing size line")
		}
		if p.line == 1 && strings.HasPrefix(s, bannerPrefix) {
			if err := parseBanner(s, &p.h); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(s, "%") {
			continue
		}
		sizeLine = s
		break
	}
	if err := p.parseSize(sizeLine); err != nil {
		return nil, err
	}

	mirror := p.h.Symmetry != SymmetryGeneral
	if mirror && p.h.Rows != p.h.Cols {
		return nil, lineErrorf(p.line, "%s matrix must be square, got %dx%d", p.h.Symmetry, p.h.Rows, p.h.Cols)
	}
	capHint := p.h.NNZ
	if mirror {
		capHint *= 2
	}
	l := core.NewTripletList[T](p.h.Rows, p.h.Cols, capHint)

	read := 0
	var prev core.Index // last stored data line, before mirroring
	for {
		s, ok := p.next()
		if !ok {
			break
		}
		if strings.HasPrefix(s, "%") {
			continue
		}
		if read == p.h.NNZ {
			return nil, lineErrorf(p.line, "more than %d data lines", p.h.NNZ)
		}
		i, j, v, err := p.parseEntry(s)
		if err != nil {
			return nil, err
		}
		cur := core.Index{Row: i, Col: j}
		if !p.opts.sort && read > 0 && core.Compare(prev, cur) >= 0 {
			return nil, lineErrorf(p.line, "entry %v not after %v; use WithSort", cur, prev)
		}
		prev = cur
		l.Append(i, j, v)
		if mirror && i != j {
			if p.h.Symmetry == SymmetrySkew {
				v = -v
			}
			l.Append(j, i, v)
		}
		read++
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("mmio: %w", err)
	}
	if read != p.h.NNZ {
		return nil, lineErrorf(p.line, "declared %d entries, found %d", p.h.NNZ, read)
	}
	if p.opts.sort || mirror {
		l.Sort()
		l.Dedup(nil)
	}
	return l, nil
}

func (p *parser[T]) parseSize(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return lineErrorf(p.line, "size line wants 3 fields, got %d", len(f))
	}
	var dims [3]int
	for k, tok := range f {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return lineErrorf(p.line, "bad size field %q", tok)
		}
		dims[k] = n
	}
	p.h.Rows, p.h.Cols, p.h.NNZ = dims[0], dims[1], dims[2]
	return nil
}

func (p *parser[T]) parseEntry(s string) (int, int, T, error) {
	var zero T
	f := strings.Fields(s)
	want := 3
	if p.h.Field == FieldPattern {
		want = 2
	}
	if len(f) != want {
		return 0, 0, zero, lineErrorf(p.line, "want %d fields, got %d", want, len(f))
	}
	base := 1
	if p.opts.zeroBased {
		base = 0
	}
	i, err1 := strconv.Atoi(f[0])
	j, err2 := strconv.Atoi(f[1])
	if err1 != nil || err2 != nil {
		return 0, 0, zero, lineErrorf(p.line, "bad index in %q", s)
	}
	i, j = i-base, j-base
	if i < 0 || i >= p.h.Rows || j < 0 || j >= p.h.Cols {
		return 0, 0, zero, lineErrorf(p.line, "entry (%d,%d) outside %dx%d", i+base, j+base, p.h.Rows, p.h.Cols)
	}
	switch p.h.Field {
	case FieldPattern:
		return i, j, T(1), nil
	case FieldInteger:
		n, err := strconv.ParseInt(f[2], 10, 64)
		if err != nil {
			return 0, 0, zero, lineErrorf(p.line, "bad integer %q", f[2])
		}
		return i, j, T(n), nil
	default:
		x, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return 0, 0, zero, lineErrorf(p.line, "bad real %q", f[2])
		}
		return i, j, T(x), nil
	}
}
