// SPDX-License-Identifier: MIT
// Package view - transpose.
//
// Purpose:
//   - Present base(i,j) as (j,i) with the reversed shape.
//   - Iterate column-major relative to the base, which is row-major for the
//     transposed shape, so downstream merge kernels see the contractual order.
//
// Implementation:
//   - On first Begin/Find, the base keys are collected once and sorted by
//     (col, row): an O(nnz) key index. Values are always read through the base.
//
// Complexity: index build O(nnz log nnz) once; Find O(log nnz) + base Find.

package view

import (
	"slices"

	"github.com/katalvlaran/grb/core"
)

// Transposed is the transpose view of a matrix range.
//
// Values are always read through the base, so value updates show at once. The
// key set is cached on first Begin or Find: inserting into or deleting from
// the base afterwards leaves the view stale until Refresh is called.
type Transposed[T any] struct {
	base  core.MatrixRange[T]
	shape core.Shape
	keys  []core.Index // base keys in (col, row) order; nil until first use
}

var (
	_ core.Range[core.Index, int]  = (*Transposed[int])(nil)
	_ core.Finder[core.Index, int] = (*Transposed[int])(nil)
	_ core.Sizer                   = (*Transposed[int])(nil)
)

// Transpose returns the lazy transpose of base.
func Transpose[T any](base core.MatrixRange[T]) *Transposed[T] {
	return &Transposed[T]{base: base, shape: core.ShapeOf(base).T()}
}

// Base returns the range being transposed.
func (t *Transposed[T]) Base() core.MatrixRange[T] { return t.base }

// Refresh drops the cached key index; the next Begin or Find rebuilds it
// from the base.
func (t *Transposed[T]) Refresh() { t.keys = nil }

// Extent returns the reversed shape.
func (t *Transposed[T]) Extent() core.Extent[core.Index] { return t.shape }

// Size delegates to the base.
func (t *Transposed[T]) Size() int { return core.Size(t.base) }

// index builds the column-major key index once.
func (t *Transposed[T]) index() []core.Index {
	if t.keys == nil {
		keys := make([]core.Index, 0, core.Size(t.base))
		for ix := range core.All(t.base) {
			keys = append(keys, ix.Transposed())
		}
		slices.SortFunc(keys, core.Compare)
		t.keys = keys
	}
	return t.keys
}

// Begin returns a random-access cursor in transposed row-major order.
func (t *Transposed[T]) Begin() core.Cursor[core.Index, T] {
	return core.NewCursor[core.Index, T](&transAcc[T]{t: t, keys: t.index()})
}

// Find swaps ix and forwards to the base lookup.
func (t *Transposed[T]) Find(ix core.Index) core.Cursor[core.Index, T] {
	if !t.shape.Contains(ix) || !core.Contains(t.base, ix.Transposed()) {
		return core.End[core.Index, T]()
	}
	keys := t.index()
	p, ok := slices.BinarySearchFunc(keys, ix, core.Compare)
	if !ok {
		return core.End[core.Index, T]()
	}
	return core.NewCursor[core.Index, T](&transAcc[T]{t: t, keys: keys, p: p})
}

// transAcc walks the transposed key index; keys are stored already swapped.
type transAcc[T any] struct {
	t    *Transposed[T]
	keys []core.Index
	p    int
}

func (a *transAcc[T]) Valid() bool { return a.p < len(a.keys) }

func (a *transAcc[T]) Entry() core.Entry[core.Index, T] {
	ix := a.keys[a.p]
	v, _ := core.Lookup(a.t.base, ix.Transposed())
	return core.Entry[core.Index, T]{Index: ix, Value: v}
}

func (a *transAcc[T]) Next() {
	if a.Valid() {
		a.p++
	}
}

func (a *transAcc[T]) Prev() bool {
	if a.p == 0 {
		return false
	}
	a.p--
	return true
}

func (a *transAcc[T]) Seek(d int) { a.p = min(max(a.p+d, 0), len(a.keys)) }

func (a *transAcc[T]) Pos() int { return a.p }

func (a *transAcc[T]) Clone() core.Accessor[core.Index, T] { c := *a; return &c }
