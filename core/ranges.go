// SPDX-License-Identifier: MIT
// Package core - range contract and default trait functions.
//
// Purpose:
//   - Range is the single contract every backend and view satisfies: an extent
//     and a begin cursor.
//   - Finder / Sizer / Inserter are small optional traits. The package-level
//     functions Find, Size, Insert and Lookup use them when present and fall
//     back to a generic implementation otherwise, so foreign containers only
//     implement what they can do faster.
//
// Determinism:
//   - Fallbacks scan in the range's own iteration order.
//
// AI-Hints:
//   - Algorithms should call core.Find(r, k), never a type switch on backends.
//   - Implement Finder on any custom range with sub-linear lookup.

package core

import "iter"

// Range is the entry-iteration contract.
type Range[K comparable, T any] interface {
	// Extent describes the key space.
	Extent() Extent[K]
	// Begin returns a cursor at the first entry (end cursor when empty).
	Begin() Cursor[K, T]
}

// Finder is implemented by ranges with their own lookup.
type Finder[K comparable, T any] interface {
	// Find returns a cursor at key k, or an end cursor when k is absent.
	Find(k K) Cursor[K, T]
}

// Sizer is implemented by ranges that know their stored-entry count.
type Sizer interface {
	Size() int
}

// Inserter is implemented by ranges accepting point insertion (insert or overwrite).
type Inserter[K comparable, T any] interface {
	Insert(k K, v T) error
}

// MutableRange is a Range whose cursors may write values back.
type MutableRange[K comparable, T any] interface {
	Range[K, T]
	BeginMut() MutCursor[K, T]
}

// MatrixRange and VectorRange are the two range flavours.
type (
	MatrixRange[T any] = Range[Index, T]
	VectorRange[T any] = Range[int, T]
)

// Find looks k up in r.
//
// Implementation:
//   - Stage 1: keys outside the extent are absent (end cursor).
//   - Stage 2: delegate to r.Find when r implements Finder.
//   - Stage 3: otherwise scan from Begin.
//
// Complexity: backend-defined, O(Size(r)) for the fallback.
func Find[K comparable, T any](r Range[K, T], k K) Cursor[K, T] {
	if r == nil || !r.Extent().Contains(k) {
		return End[K, T]()
	}
	if f, ok := r.(Finder[K, T]); ok {
		return f.Find(k)
	}
	for c := r.Begin(); c.Valid(); c.Next() {
		if c.Index() == k {
			return c.Clone()
		}
	}
	return End[K, T]()
}

// Lookup returns the value stored at k and whether it is present.
func Lookup[K comparable, T any](r Range[K, T], k K) (T, bool) {
	c := Find(r, k)
	if !c.Valid() {
		var zero T
		return zero, false
	}
	return c.Value(), true
}

// Contains reports whether k is stored in r.
func Contains[K comparable, T any](r Range[K, T], k K) bool {
	return Find(r, k).Valid()
}

// Size returns the number of stored entries, counting when r has no Sizer.
// Complexity: O(1) with Sizer, O(n) otherwise.
func Size[K comparable, T any](r Range[K, T]) int {
	if r == nil {
		return 0
	}
	if s, ok := r.(Sizer); ok {
		return s.Size()
	}
	n := 0
	for c := r.Begin(); c.Valid(); c.Next() {
		n++
	}
	return n
}

// Insert stores v at k through the Inserter trait.
// Errors: ErrNilRange, ErrOutOfRange (key outside extent), ErrNotWritable.
func Insert[K comparable, T any](r Range[K, T], k K, v T) error {
	if r == nil {
		return Errorf("Insert", ErrNilRange)
	}
	if !r.Extent().Contains(k) {
		return Errorf("Insert", ErrOutOfRange)
	}
	ins, ok := r.(Inserter[K, T])
	if !ok {
		return Errorf("Insert", ErrNotWritable)
	}
	return ins.Insert(k, v)
}

// All yields every entry of r in iteration order.
func All[K comparable, T any](r Range[K, T]) iter.Seq2[K, T] {
	if r == nil {
		return func(func(K, T) bool) {}
	}
	return r.Begin().All()
}

// Entries collects the entries of r into a slice.
func Entries[K comparable, T any](r Range[K, T]) []Entry[K, T] {
	out := make([]Entry[K, T], 0, Size(r))
	for k, v := range All(r) {
		out = append(out, Entry[K, T]{Index: k, Value: v})
	}
	return out
}

// Fold reduces every stored value of r with op, starting from init.
func Fold[K comparable, T, A any](r Range[K, T], init A, op func(A, T) A) A {
	acc := init
	for _, v := range All(r) {
		acc = op(acc, v)
	}
	return acc
}

// Equal reports whether a and b have identical dimensions and identical
// entry sets (key and value under eq). Iteration order is not compared.
// Complexity: O(|a| · find(b)).
func Equal[K comparable, T any](a, b Range[K, T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ac := a.Extent().Dims()
	br, bc := b.Extent().Dims()
	if ar != br || ac != bc {
		return false
	}
	if Size(a) != Size(b) {
		return false
	}
	for k, v := range All(a) {
		w, ok := Lookup(b, k)
		if !ok || !eq(v, w) {
			return false
		}
	}
	return true
}

// ShapeOf returns the (rows, cols) shape of a matrix range.
func ShapeOf[T any](r Range[Index, T]) Shape {
	rows, cols := r.Extent().Dims()
	return Shape{Rows: rows, Cols: cols}
}

// DimOf returns the length of a vector range.
func DimOf[T any](r Range[int, T]) int {
	return r.Extent().Cells()
}
