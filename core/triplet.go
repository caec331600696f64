// SPDX-License-Identifier: MIT
// Package core - triplet import/export contract.
//
// Purpose:
//   - TripletSource is the boundary with file readers (Matrix Market, binary
//     snapshots, generators): a declared shape, a declared nnz, and a sequence
//     of (row, col, value) triplets sorted row-major.
//   - ValidateTriplets is the single validator every ingestion path uses.
//
// Contract (MalformedInput on violation, fatal to the load):
//   - 0 ≤ row < rows, 0 ≤ col < cols for every triplet.
//   - strictly ascending (row, col): sorted and duplicate-free.
//   - Len() == NNZ().

package core

import (
	"fmt"
	"slices"
)

// Triplet is one (row, col, value) record of an import stream.
type Triplet[T any] struct {
	Row   int
	Col   int
	Value T
}

// Index returns the triplet coordinate.
func (t Triplet[T]) Index() Index { return Index{Row: t.Row, Col: t.Col} }

// TripletSource is the import contract satisfied by file readers and generators.
type TripletSource[T any] interface {
	// Shape is the declared matrix shape.
	Shape() Shape
	// NNZ is the declared number of stored entries.
	NNZ() int
	// Len is the number of triplets actually available.
	Len() int
	// At returns the i-th triplet, 0 ≤ i < Len().
	At(i int) Triplet[T]
}

// TripletList is the in-memory TripletSource.
type TripletList[T any] struct {
	Rows     int
	Cols     int
	Declared int // declared nnz; negative means "len(Items)"
	Items    []Triplet[T]
}

var _ TripletSource[float64] = (*TripletList[float64])(nil)

// NewTripletList returns an empty list with the given shape and capacity hint.
func NewTripletList[T any](rows, cols, capHint int) *TripletList[T] {
	if capHint < 0 {
		capHint = 0
	}
	return &TripletList[T]{Rows: rows, Cols: cols, Declared: -1, Items: make([]Triplet[T], 0, capHint)}
}

// Shape returns the declared shape.
func (l *TripletList[T]) Shape() Shape { return Shape{Rows: l.Rows, Cols: l.Cols} }

// NNZ returns the declared nnz, or Len() when nothing was declared.
func (l *TripletList[T]) NNZ() int {
	if l.Declared < 0 {
		return len(l.Items)
	}
	return l.Declared
}

// Len returns the number of triplets held.
func (l *TripletList[T]) Len() int { return len(l.Items) }

// At returns the i-th triplet.
func (l *TripletList[T]) At(i int) Triplet[T] { return l.Items[i] }

// Append adds a triplet without validation; ordering is checked at ingestion.
func (l *TripletList[T]) Append(row, col int, v T) {
	l.Items = append(l.Items, Triplet[T]{Row: row, Col: col, Value: v})
}

// Sort orders the triplets row-major (stable, so duplicates keep input order).
// Complexity: O(n log n).
func (l *TripletList[T]) Sort() {
	slices.SortStableFunc(l.Items, func(a, b Triplet[T]) int {
		return Compare(a.Index(), b.Index())
	})
}

// Dedup collapses runs of equal coordinates in a sorted list. merge(old, new)
// decides the surviving value; nil merge keeps the last one. The declared nnz
// follows the new length.
// Complexity: O(n).
func (l *TripletList[T]) Dedup(merge func(a, b T) T) {
	if len(l.Items) == 0 {
		return
	}
	w := 0
	for r := 1; r < len(l.Items); r++ {
		cur := l.Items[r]
		if cur.Row == l.Items[w].Row && cur.Col == l.Items[w].Col {
			if merge != nil {
				l.Items[w].Value = merge(l.Items[w].Value, cur.Value)
			} else {
				l.Items[w].Value = cur.Value
			}
			continue
		}
		w++
		l.Items[w] = cur
	}
	l.Items = l.Items[:w+1]
	l.Declared = -1
}

// ValidateTriplets checks src against the import contract.
//
// Errors:
//   - ErrMalformedInput wrapped with the offending position; negative shape
//     dimensions are reported the same way.
//
// Complexity: O(Len()).
func ValidateTriplets[T any](src TripletSource[T]) error {
	if src == nil {
		return Errorf("ValidateTriplets", ErrNilRange)
	}
	shape := src.Shape()
	if shape.Rows < 0 || shape.Cols < 0 {
		return fmt.Errorf("ValidateTriplets: shape %v: %w", shape, ErrMalformedInput)
	}
	n := src.Len()
	if n != src.NNZ() {
		return fmt.Errorf("ValidateTriplets: declared nnz=%d, got %d: %w", src.NNZ(), n, ErrMalformedInput)
	}
	var prev Index
	for i := 0; i < n; i++ {
		ix := src.At(i).Index()
		if !shape.Contains(ix) {
			return fmt.Errorf("ValidateTriplets: triplet %d at %v outside %v: %w", i, ix, shape, ErrMalformedInput)
		}
		if i > 0 && !Less(prev, ix) {
			return fmt.Errorf("ValidateTriplets: triplet %d at %v not after %v: %w", i, ix, prev, ErrMalformedInput)
		}
		prev = ix
	}
	return nil
}

// TripletsOf exports any matrix range as a triplet list in its iteration order.
func TripletsOf[T any](r Range[Index, T]) *TripletList[T] {
	s := ShapeOf(r)
	out := NewTripletList[T](s.Rows, s.Cols, Size(r))
	for k, v := range All(r) {
		out.Append(k.Row, k.Col, v)
	}
	return out
}
