// SPDX-License-Identifier: MIT
// Package codec - binary snapshot layout.
//
//	offset  size     field
//	0       4        magic "GRB1"
//	4       1        compression (0 none, 1 lz4, 2 zstd)
//	5       varint   rows
//	.       varint   cols
//	.       varint   nnz
//	.       4        raw block size (little endian)
//	.       4        packed block size, 0 when the block is stored raw
//	.       ...      block
//
// The block holds nnz entries in row-major order. Each entry is
// uvarint(row - previous row), then uvarint(col) on a new row or
// uvarint(col - previous col - 1) within a row, then the value as
// 8 little-endian bytes of its float64 bit pattern.

package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
)

// Magic opens every snapshot.
const Magic = "GRB1"

// ErrBadMagic reports a stream that is not a snapshot.
var ErrBadMagic = fmt.Errorf("codec: bad magic: %w", core.ErrMalformedInput)

// Bounds of one encoded entry: two uvarints and a value.
const (
	minEntryBytes = 2 + 8
	maxEntryBytes = 2*binary.MaxVarintLen64 + 8
)

// Option configures Encode and Decode.
type Option func(*options)

type options struct {
	compression Compression
	logger      *slog.Logger
}

// WithCompression selects the block compressor. Default None.
func WithCompression(c Compression) Option { return func(o *options) { o.compression = c } }

// WithLogger routes Debug records to l. Nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Encode writes m as a snapshot. Values are stored as float64, so integer
// types beyond 2^53 lose precision.
func Encode[T op.Number](w io.Writer, m core.MatrixRange[T], opts ...Option) error {
	if m == nil {
		return core.Errorf("codec.Encode", core.ErrNilRange)
	}
	o := gatherOptions(opts)
	sh := core.ShapeOf(m)
	nnz := core.Size(m)

	block := make([]byte, 0, nnz*10)
	prevRow, prevCol := 0, -1
	for ix, v := range core.All(m) {
		if ix.Row < prevRow || (ix.Row == prevRow && ix.Col <= prevCol) {
			return fmt.Errorf("codec.Encode: key %v out of row-major order: %w", ix, core.ErrMalformedInput)
		}
		block = binary.AppendUvarint(block, uint64(ix.Row-prevRow))
		if ix.Row != prevRow {
			prevCol = -1
		}
		block = binary.AppendUvarint(block, uint64(ix.Col-prevCol-1))
		block = binary.LittleEndian.AppendUint64(block, math.Float64bits(float64(v)))
		prevRow, prevCol = ix.Row, ix.Col
	}
	packed, err := packBlock(block, o.compression)
	if err != nil {
		return err
	}

	head := make([]byte, 0, len(Magic)+1+3*binary.MaxVarintLen64)
	head = append(head, Magic...)
	head = append(head, byte(o.compression))
	head = binary.AppendUvarint(head, uint64(sh.Rows))
	head = binary.AppendUvarint(head, uint64(sh.Cols))
	head = binary.AppendUvarint(head, uint64(nnz))
	if _, err := w.Write(head); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	if _, err := w.Write(packed); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	o.logger.Debug("codec encode",
		slog.Int("rows", sh.Rows), slog.Int("cols", sh.Cols), slog.Int("nnz", nnz),
		slog.String("compression", o.compression.String()),
		slog.Int("raw", len(block)), slog.Int("stored", len(packed)-blockHeaderSize))
	return nil
}

// Decode reads one snapshot into a triplet list sorted row-major. The
// compression is taken from the stream; WithCompression is ignored.
//
// Errors: ErrBadMagic, core.ErrMalformedInput for truncated or inconsistent
// data, I/O errors unchanged.
func Decode[T op.Number](r io.Reader, opts ...Option) (*core.TripletList[T], error) {
	o := gatherOptions(opts)
	br := bufio.NewReader(r)

	var magic [len(Magic)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, truncated(err)
	}
	if string(magic[:]) != Magic {
		return nil, ErrBadMagic
	}
	cb, err := br.ReadByte()
	if err != nil {
		return nil, truncated(err)
	}
	c := Compression(cb)
	if c > Zstd {
		return nil, fmt.Errorf("codec: compression byte %d: %w", cb, core.ErrMalformedInput)
	}
	var dims [3]int
	for k := range dims {
		u, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, truncated(err)
		}
		if u > math.MaxInt32 {
			return nil, fmt.Errorf("codec: header field %d too large: %w", u, core.ErrMalformedInput)
		}
		dims[k] = int(u)
	}
	rows, cols, nnz := dims[0], dims[1], dims[2]

	var hdr [blockHeaderSize]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, truncated(err)
	}
	raw := int(binary.LittleEndian.Uint32(hdr[0:]))
	stored := int(binary.LittleEndian.Uint32(hdr[4:]))
	if nnz > rows*cols {
		return nil, fmt.Errorf("codec: %d entries in %dx%d: %w", nnz, rows, cols, core.ErrMalformedInput)
	}
	if raw > nnz*maxEntryBytes || raw < nnz*minEntryBytes {
		return nil, fmt.Errorf("codec: block of %d bytes cannot hold %d entries: %w", raw, nnz, core.ErrMalformedInput)
	}
	size := raw
	if stored != 0 {
		size = stored
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, truncated(err)
	}
	block, err := unpackBlock(body, raw, stored != 0, c)
	if err != nil {
		return nil, err
	}

	l := core.NewTripletList[T](rows, cols, nnz)
	row, col := 0, -1
	for k := 0; k < nnz; k++ {
		dr, n := binary.Uvarint(block)
		if n <= 0 {
			return nil, entryError(k)
		}
		block = block[n:]
		dc, n := binary.Uvarint(block)
		if n <= 0 || len(block) < n+8 {
			return nil, entryError(k)
		}
		if dr >= uint64(rows) || dc >= uint64(cols) {
			return nil, fmt.Errorf("codec: entry %d delta (%d,%d) exceeds %dx%d: %w", k, dr, dc, rows, cols, core.ErrMalformedInput)
		}
		if dr > 0 {
			col = -1
		}
		row += int(dr)
		col += int(dc) + 1
		if row < 0 || col < 0 || row >= rows || col >= cols {
			return nil, fmt.Errorf("codec: entry %d at (%d,%d) outside %dx%d: %w", k, row, col, rows, cols, core.ErrMalformedInput)
		}
		v := math.Float64frombits(binary.LittleEndian.Uint64(block[n:]))
		block = block[n+8:]
		l.Append(row, col, T(v))
	}
	if len(block) != 0 {
		return nil, fmt.Errorf("codec: %d trailing bytes: %w", len(block), core.ErrMalformedInput)
	}
	o.logger.Debug("codec decode",
		slog.Int("rows", rows), slog.Int("cols", cols), slog.Int("nnz", nnz),
		slog.String("compression", c.String()))
	return l, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("codec: truncated stream: %w", core.ErrMalformedInput)
	}
	return fmt.Errorf("codec: read: %w", err)
}

func entryError(k int) error {
	return fmt.Errorf("codec: entry %d truncated: %w", k, core.ErrMalformedInput)
}
