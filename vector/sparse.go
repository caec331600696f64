// SPDX-License-Identifier: MIT

// Package vector - sorted sparse vector.
//
// Purpose:
//   - indices strictly ascending, values parallel; Size is len(indices).
//   - Insert shifts the entry into its sorted slot.
//
// Complexity: Find O(log nnz), Insert O(nnz), cursor Seek O(1).

package vector

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/grb/core"
)

// Sparse is a sorted sparse vector.
type Sparse[T any] struct {
	n       int
	indices []int
	values  []T
}

var (
	_ core.MutableRange[int, float64] = (*Sparse[float64])(nil)
	_ core.Finder[int, float64]       = (*Sparse[float64])(nil)
	_ core.Inserter[int, float64]     = (*Sparse[float64])(nil)
	_ core.Sizer                      = (*Sparse[float64])(nil)
)

// NewSparse returns an empty vector of length n.
// Errors: ErrInvalidLength when n < 0.
func NewSparse[T any](n int) (*Sparse[T], error) {
	if n < 0 {
		return nil, vectorErrorf(kindSparse, "New", n, ErrInvalidLength)
	}
	return &Sparse[T]{n: n}, nil
}

// NewSparseFromEntries builds a vector from entries sorted by strictly
// ascending index.
// Errors: core.ErrMalformedInput on unsorted, duplicated or out-of-range indices.
func NewSparseFromEntries[T any](n int, entries []core.VectorEntry[T]) (*Sparse[T], error) {
	v, err := NewSparse[T](n)
	if err != nil {
		return nil, err
	}
	v.indices = make([]int, len(entries))
	v.values = make([]T, len(entries))
	for k, e := range entries {
		if e.Index < 0 || e.Index >= n || (k > 0 && e.Index <= entries[k-1].Index) {
			return nil, fmt.Errorf("%s.FromEntries: entry %d at %d: %w", kindSparse, k, e.Index, core.ErrMalformedInput)
		}
		v.indices[k] = e.Index
		v.values[k] = e.Value
	}
	return v, nil
}

// NewSparseFrom copies any vector range.
func NewSparseFrom[T any](src core.VectorRange[T]) (*Sparse[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%s.From: %w", kindSparse, core.ErrNilRange)
	}
	v, err := NewSparse[T](core.DimOf(src))
	if err != nil {
		return nil, err
	}
	for i, x := range core.All(src) {
		if err = v.Insert(i, x); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Len returns the vector length n.
func (v *Sparse[T]) Len() int { return v.n }

// Extent implements core.Range.
func (v *Sparse[T]) Extent() core.Extent[int] { return core.Dim(v.n) }

// Size returns the number of stored entries.
func (v *Sparse[T]) Size() int { return len(v.indices) }

// Begin returns a random-access cursor at the first stored entry.
func (v *Sparse[T]) Begin() core.Cursor[int, T] { return v.BeginMut().Const() }

// BeginMut returns a writable cursor at the first stored entry.
func (v *Sparse[T]) BeginMut() core.MutCursor[int, T] {
	return core.NewMutCursor[int, T](&sparseAcc[T]{v: v})
}

func (v *Sparse[T]) locate(i int) (int, bool) { return slices.BinarySearch(v.indices, i) }

// Find returns a cursor at i, or end when i is absent.
func (v *Sparse[T]) Find(i int) core.Cursor[int, T] {
	if i < 0 || i >= v.n {
		return core.End[int, T]()
	}
	p, ok := v.locate(i)
	if !ok {
		return core.End[int, T]()
	}
	return core.NewCursor[int, T](&sparseAcc[T]{v: v, p: p})
}

// Insert stores x at i, overwriting an existing value.
// Errors: ErrOutOfRange.
func (v *Sparse[T]) Insert(i int, x T) error {
	if i < 0 || i >= v.n {
		return vectorErrorf(kindSparse, "Insert", i, ErrOutOfRange)
	}
	v.insertAt(i, x)
	return nil
}

func (v *Sparse[T]) insertAt(i int, x T) int {
	p, ok := v.locate(i)
	if ok {
		v.values[p] = x
		return p
	}
	v.indices = slices.Insert(v.indices, p, i)
	v.values = slices.Insert(v.values, p, x)
	return p
}

// At returns the value at i.
// Errors: ErrOutOfRange when absent or outside [0, n). Never inserts.
func (v *Sparse[T]) At(i int) (T, error) {
	x, ok := v.Get(i)
	if !ok {
		return x, vectorErrorf(kindSparse, "At", i, ErrOutOfRange)
	}
	return x, nil
}

// Get returns the value at i and whether it is stored.
func (v *Sparse[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, false
	}
	p, ok := v.locate(i)
	if !ok {
		return zero, false
	}
	return v.values[p], true
}

// Ref returns a pointer to the value at i, inserting the zero value when
// absent. The pointer is valid until the next structural change.
func (v *Sparse[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.n {
		return nil, vectorErrorf(kindSparse, "Ref", i, ErrOutOfRange)
	}
	var zero T
	p, ok := v.locate(i)
	if !ok {
		p = v.insertAt(i, zero)
	}
	return &v.values[p], nil
}

// Delete removes i and reports whether it was stored.
func (v *Sparse[T]) Delete(i int) bool {
	p, ok := v.locate(i)
	if !ok {
		return false
	}
	v.indices = slices.Delete(v.indices, p, p+1)
	v.values = slices.Delete(v.values, p, p+1)
	return true
}

// Indices returns a copy of the stored indices in ascending order.
func (v *Sparse[T]) Indices() []int { return slices.Clone(v.indices) }

// Do calls fn for every entry in ascending order until fn returns false.
func (v *Sparse[T]) Do(fn func(i int, x T) bool) {
	for p, i := range v.indices {
		if !fn(i, v.values[p]) {
			return
		}
	}
}

// Apply replaces every stored value in place with fn(i, x).
func (v *Sparse[T]) Apply(fn func(i int, x T) T) {
	for p, i := range v.indices {
		v.values[p] = fn(i, v.values[p])
	}
}

// Clone returns a deep copy.
func (v *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{n: v.n, indices: slices.Clone(v.indices), values: slices.Clone(v.values)}
}

// String renders a diagnostic listing.
func (v *Sparse[T]) String() string { return formatRange[T](kindSparse, v) }

type sparseAcc[T any] struct {
	v *Sparse[T]
	p int
}

func (a *sparseAcc[T]) Valid() bool { return a.p < len(a.v.indices) }
func (a *sparseAcc[T]) Entry() core.Entry[int, T] {
	return core.Entry[int, T]{Index: a.v.indices[a.p], Value: a.v.values[a.p]}
}
func (a *sparseAcc[T]) Next() {
	if a.Valid() {
		a.p++
	}
}
func (a *sparseAcc[T]) Prev() bool {
	if a.p == 0 {
		return false
	}
	a.p--
	return true
}
func (a *sparseAcc[T]) Seek(d int)                   { a.p = min(max(a.p+d, 0), len(a.v.indices)) }
func (a *sparseAcc[T]) Pos() int                     { return a.p }
func (a *sparseAcc[T]) Clone() core.Accessor[int, T] { c := *a; return &c }
func (a *sparseAcc[T]) SetValue(x T)                 { a.v.values[a.p] = x }
