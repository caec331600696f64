// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/grb/core"
)

// Compression selects the block compressor of a snapshot.
type Compression uint8

const (
	// None stores the entry block as is.
	None Compression = 0
	// LZ4 favours encode and decode speed.
	LZ4 Compression = 1
	// Zstd favours ratio.
	Zstd Compression = 2
)

// String returns the lowercase name accepted by ParseCompression.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "lz4" or "zstd" (any case) to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	}
	return None, fmt.Errorf("codec: unknown compression %q: %w", s, core.ErrInvalidArgument)
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Block layout: [raw uint32][packed uint32][data]. packed == 0 means data is raw.
const blockHeaderSize = 8

// packBlock compresses data with c. Blocks that do not shrink below 90% are
// stored raw.
func packBlock(data []byte, c Compression) ([]byte, error) {
	var packed []byte
	switch c {
	case None:
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("codec: lz4: %w", err)
		}
		packed = buf[:n]
	case Zstd:
		enc := getZstdEncoder()
		packed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("codec: %v: %w", c, core.ErrInvalidArgument)
	}

	if len(packed) == 0 || float64(len(packed)) > float64(len(data))*0.9 {
		packed = nil
	}
	body := data
	if packed != nil {
		body = packed
	}
	out := make([]byte, blockHeaderSize+len(body))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(packed)))
	copy(out[blockHeaderSize:], body)
	return out, nil
}

// unpackBlock reverses packBlock; body excludes the header.
func unpackBlock(body []byte, raw int, packed bool, c Compression) ([]byte, error) {
	if !packed {
		return body, nil
	}
	switch c {
	case LZ4:
		out := make([]byte, raw)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("codec: lz4: %v: %w", err, core.ErrMalformedInput)
		}
		if n != raw {
			return nil, fmt.Errorf("codec: lz4 block is %d bytes, want %d: %w", n, raw, core.ErrMalformedInput)
		}
		return out, nil
	case Zstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		out, err := dec.DecodeAll(body, make([]byte, 0, raw))
		if err != nil {
			return nil, fmt.Errorf("codec: zstd: %v: %w", err, core.ErrMalformedInput)
		}
		if len(out) != raw {
			return nil, fmt.Errorf("codec: zstd block is %d bytes, want %d: %w", len(out), raw, core.ErrMalformedInput)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: packed block with %v: %w", c, core.ErrMalformedInput)
	}
}
