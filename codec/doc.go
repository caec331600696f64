// SPDX-License-Identifier: MIT

// Package codec stores sparse matrices as compact binary snapshots.
//
// A snapshot is a small header (magic, compression, shape, nnz) followed by
// one delta-encoded entry block, optionally compressed with LZ4 or Zstandard.
// Encode accepts any core.MatrixRange, including views; Decode yields a
// sorted core.TripletList ready for matrix.NewCSRFromTriplets.
//
//	err := codec.Encode(w, m, codec.WithCompression(codec.Zstd))
//	l, err := codec.Decode[float64](r)
package codec
