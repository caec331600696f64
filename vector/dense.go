// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/internal/flagged"
)

// Dense is a flagged dense vector: flat values plus a roaring presence bitmap.
type Dense[T any] struct {
	st *flagged.Store[int, T]
}

var (
	_ core.MutableRange[int, float64] = (*Dense[float64])(nil)
	_ core.Finder[int, float64]       = (*Dense[float64])(nil)
	_ core.Inserter[int, float64]     = (*Dense[float64])(nil)
	_ core.Sizer                      = (*Dense[float64])(nil)
)

// NewDense allocates an empty vector of length n.
// Errors: ErrInvalidLength when n < 0 or n exceeds the 32-bit offset space.
func NewDense[T any](n int) (*Dense[T], error) {
	if n < 0 {
		return nil, vectorErrorf(kindDense, "New", n, ErrInvalidLength)
	}
	st, err := flagged.NewStore[int, T](core.Dim(n))
	if err != nil {
		return nil, vectorErrorf(kindDense, "New", n, err)
	}
	return &Dense[T]{st: st}, nil
}

// NewDenseFilled returns a vector of length n with every index present and set to x.
func NewDenseFilled[T any](n int, x T) (*Dense[T], error) {
	d, err := NewDense[T](n)
	if err != nil {
		return nil, err
	}
	d.st.Fill(x)
	return d, nil
}

// Len returns n.
func (d *Dense[T]) Len() int { return d.st.Extent().Cells() }

// Extent implements core.Range.
func (d *Dense[T]) Extent() core.Extent[int] { return d.st.Extent() }

// Size returns the number of present indices.
func (d *Dense[T]) Size() int { return d.st.Size() }

// Begin returns a random-access cursor over present indices.
func (d *Dense[T]) Begin() core.Cursor[int, T] { return d.st.Begin() }

// BeginMut returns a writable cursor over present indices.
func (d *Dense[T]) BeginMut() core.MutCursor[int, T] { return d.st.BeginMut() }

// Find returns a cursor at i, or end when absent.
func (d *Dense[T]) Find(i int) core.Cursor[int, T] { return d.st.Find(i) }

// Insert stores x at i.
func (d *Dense[T]) Insert(i int, x T) error {
	if err := d.st.Insert(i, x); err != nil {
		return vectorErrorf(kindDense, "Insert", i, err)
	}
	return nil
}

// At returns the value at i. Errors: ErrOutOfRange when absent. Never marks.
func (d *Dense[T]) At(i int) (T, error) {
	x, ok := d.st.Get(i)
	if !ok {
		return x, vectorErrorf(kindDense, "At", i, ErrOutOfRange)
	}
	return x, nil
}

// Get returns the value at i and whether it is present.
func (d *Dense[T]) Get(i int) (T, bool) { return d.st.Get(i) }

// Ref marks i present (zero value when absent) and returns a pointer to it.
func (d *Dense[T]) Ref(i int) (*T, error) {
	p, err := d.st.Ref(i)
	if err != nil {
		return nil, vectorErrorf(kindDense, "Ref", i, err)
	}
	return p, nil
}

// Delete clears i and reports whether it was present.
func (d *Dense[T]) Delete(i int) bool { return d.st.Delete(i) }

// Fill makes every index present with value x.
func (d *Dense[T]) Fill(x T) { d.st.Fill(x) }

// Clear removes every entry.
func (d *Dense[T]) Clear() { d.st.Clear() }

// Clone returns a deep copy.
func (d *Dense[T]) Clone() *Dense[T] { return &Dense[T]{st: d.st.Clone()} }

// String renders a diagnostic listing.
func (d *Dense[T]) String() string { return formatRange[T](kindDense, d) }
