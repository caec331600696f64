// SPDX-License-Identifier: MIT
// Package core - coordinate and entry model.
//
// Purpose:
//   - Define the keys every container is addressed by: Index (row, col) for
//     matrices and a plain int for vectors.
//   - Define Entry, the (key, value) pair every cursor dereferences to.
//   - Define the extents (Shape, Dim) that describe a container's key space and
//     linearise it in row-major order.
//
// Determinism:
//   - Ordering compares keys only (row-major, then column). Values never take
//     part in equality or ordering of entries.
//
// AI-Hints:
//   - Use Shape{Rows, Cols} for matrix extents and Dim(n) for vector extents;
//     both satisfy Extent[K] so generic views work over either.
//   - Offset/KeyAt are the single source of truth for flat addressing; dense
//     backends and the complement view both rely on them.

package core

import "fmt"

// Index is a matrix coordinate. Both components are zero-based and must be
// non-negative; containers validate them against their Shape on insertion.
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Transposed returns (Col, Row).
func (ix Index) Transposed() Index { return Index{Row: ix.Col, Col: ix.Row} }

// String renders the coordinate as "(r,c)".
func (ix Index) String() string { return fmt.Sprintf("(%d,%d)", ix.Row, ix.Col) }

// Entry is a stored (key, value) pair.
type Entry[K comparable, T any] struct {
	Index K
	Value T
}

// MatrixEntry and VectorEntry name the two entry flavours used across the module.
type (
	MatrixEntry[T any] = Entry[Index, T]
	VectorEntry[T any] = Entry[int, T]
)

// Extent describes the key space of a range.
//
// Contract:
//   - Cells() is the number of addressable keys (rows*cols, or n).
//   - Offset(k) is the row-major rank of k in [0, Cells()) and KeyAt is its inverse.
//   - Contains(k) reports whether k lies inside the extent.
//   - Less(a, b) is the contractual iteration order.
//   - Dims() reports (rows, cols); vectors report (n, 1).
type Extent[K comparable] interface {
	Dims() (rows, cols int)
	Cells() int
	Contains(k K) bool
	Offset(k K) int
	KeyAt(off int) K
	Less(a, b K) bool
}

// Shape is the immutable (rows, cols) extent of a matrix.
type Shape struct {
	Rows int
	Cols int
}

// Compile-time assertions: both extents implement Extent.
var (
	_ Extent[Index] = Shape{}
	_ Extent[int]   = Dim(0)
)

// Dims returns (Rows, Cols).
func (s Shape) Dims() (rows, cols int) { return s.Rows, s.Cols }

// Cells returns Rows*Cols.
// Complexity: O(1).
func (s Shape) Cells() int { return s.Rows * s.Cols }

// Contains reports 0 ≤ Row < Rows and 0 ≤ Col < Cols.
func (s Shape) Contains(ix Index) bool {
	return ix.Row >= 0 && ix.Row < s.Rows && ix.Col >= 0 && ix.Col < s.Cols
}

// Offset returns Row*Cols + Col. The caller guarantees Contains(ix).
func (s Shape) Offset(ix Index) int { return ix.Row*s.Cols + ix.Col }

// KeyAt is the inverse of Offset.
func (s Shape) KeyAt(off int) Index {
	if s.Cols == 0 {
		return Index{}
	}
	return Index{Row: off / s.Cols, Col: off % s.Cols}
}

// Less orders coordinates row-major, then by column.
func (Shape) Less(a, b Index) bool { return Less(a, b) }

// T returns the reversed shape (Cols, Rows).
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// String renders "r×c".
func (s Shape) String() string { return fmt.Sprintf("%d×%d", s.Rows, s.Cols) }

// Dim is the length of a vector.
type Dim int

// Dims reports (n, 1).
func (d Dim) Dims() (rows, cols int) { return int(d), 1 }

// Cells returns n.
func (d Dim) Cells() int { return int(d) }

// Contains reports 0 ≤ i < n.
func (d Dim) Contains(i int) bool { return i >= 0 && i < int(d) }

// Offset is the identity on vector keys.
func (Dim) Offset(i int) int { return i }

// KeyAt is the identity on vector keys.
func (Dim) KeyAt(off int) int { return off }

// Less orders vector keys ascending.
func (Dim) Less(a, b int) bool { return a < b }

// Less orders matrix coordinates row-major, then by column.
func Less(a, b Index) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// Compare is the three-way form of Less, usable with slices.SortFunc.
func Compare(a, b Index) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
