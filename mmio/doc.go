// SPDX-License-Identifier: MIT

// Package mmio reads and writes sparse matrices in the Matrix Market
// coordinate exchange format.
//
// Read accepts real, integer and pattern fields with general, symmetric or
// skew-symmetric storage, plain or gzip-compressed, and produces a
// row-major core.TripletList ready for matrix.NewCSRFromTriplets. Write
// emits any core.MatrixRange as "coordinate general".
//
//	m, err := mmio.ReadCSR[float64](f)
//	if err != nil { ... }
//	err = mmio.Write(out, view.Transpose(m), mmio.WithGzip())
package mmio
