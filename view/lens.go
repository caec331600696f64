// SPDX-License-Identifier: MIT
// Package view - the generic lens every filtering/mapping view is built on.
//
// Purpose:
//   - Lens[K,T,J,U] presents a base Range[K,T] as a Range[J,U] through three
//     optional functions: keep (visibility), key (K→J) and val (T→U).
//   - back (J→K) lets Find delegate to the base's own lookup; without it Find
//     scans.
//
// AI-Hints:
//   - When nothing is skipped and the base cursor is random access, the lens
//     cursor is random access too.

package view

import "github.com/katalvlaran/grb/core"

type lensFuncs[K comparable, T any, J comparable, U any] struct {
	keep func(K, T) bool
	key  func(K) J
	val  func(T) U
}

// Lens is a lazy key/value/visibility adapter over a base range.
type Lens[K comparable, T any, J comparable, U any] struct {
	base core.Range[K, T]
	ext  core.Extent[J]
	fn   *lensFuncs[K, T, J, U]
	back func(J) (K, bool)
}

var (
	_ core.Range[core.Index, int]  = (*Lens[core.Index, int, core.Index, int])(nil)
	_ core.Finder[core.Index, int] = (*Lens[core.Index, int, core.Index, int])(nil)
	_ core.Sizer                   = (*Lens[core.Index, int, core.Index, int])(nil)
)

// Extent returns the lens extent.
func (l *Lens[K, T, J, U]) Extent() core.Extent[J] { return l.ext }

// Begin returns a cursor at the first visible entry.
func (l *Lens[K, T, J, U]) Begin() core.Cursor[J, U] {
	return core.NewCursor[J, U](wrap(l.base.Begin(), l.fn))
}

// Find looks j up through back and the base's lookup, or scans.
func (l *Lens[K, T, J, U]) Find(j J) core.Cursor[J, U] {
	if !l.ext.Contains(j) {
		return core.End[J, U]()
	}
	if l.back == nil {
		for c := l.Begin(); c.Valid(); c.Next() {
			if c.Index() == j {
				return c.Clone()
			}
		}
		return core.End[J, U]()
	}
	k, ok := l.back(j)
	if !ok {
		return core.End[J, U]()
	}
	c := core.Find(l.base, k)
	if !c.Valid() {
		return core.End[J, U]()
	}
	if l.fn.keep != nil {
		e := c.Entry()
		if !l.fn.keep(e.Index, e.Value) {
			return core.End[J, U]()
		}
	}
	return core.NewCursor[J, U](wrap(c, l.fn))
}

// Size delegates to the base when nothing is hidden, and counts otherwise.
func (l *Lens[K, T, J, U]) Size() int {
	if l.fn.keep == nil {
		return core.Size(l.base)
	}
	n := 0
	for c := l.Begin(); c.Valid(); c.Next() {
		n++
	}
	return n
}

// wrap picks the cheapest accessor able to present c through fn.
func wrap[K comparable, T any, J comparable, U any](c core.Cursor[K, T], fn *lensFuncs[K, T, J, U]) core.Accessor[J, U] {
	a := lensAcc[K, T, J, U]{c: c, fn: fn}
	if fn.keep == nil && c.RandomAccess() {
		return &lensSeekAcc[K, T, J, U]{lensAcc: a}
	}
	a.skip()
	return &a
}

// lensAcc forwards to a base cursor, skipping hidden entries.
type lensAcc[K comparable, T any, J comparable, U any] struct {
	c  core.Cursor[K, T]
	fn *lensFuncs[K, T, J, U]
}

func (a *lensAcc[K, T, J, U]) skip() {
	if a.fn.keep == nil {
		return
	}
	for a.c.Valid() {
		e := a.c.Entry()
		if a.fn.keep(e.Index, e.Value) {
			return
		}
		a.c.Next()
	}
}

func (a *lensAcc[K, T, J, U]) Valid() bool { return a.c.Valid() }

func (a *lensAcc[K, T, J, U]) Entry() core.Entry[J, U] {
	e := a.c.Entry()
	return core.Entry[J, U]{Index: a.fn.key(e.Index), Value: a.fn.val(e.Value)}
}

func (a *lensAcc[K, T, J, U]) Next() {
	a.c.Next()
	a.skip()
}

func (a *lensAcc[K, T, J, U]) Pos() int { return a.c.Pos() }

func (a *lensAcc[K, T, J, U]) Clone() core.Accessor[J, U] {
	return &lensAcc[K, T, J, U]{c: a.c.Clone(), fn: a.fn}
}

// lensSeekAcc adds Prev/Seek when the base is random access and nothing is hidden.
type lensSeekAcc[K comparable, T any, J comparable, U any] struct {
	lensAcc[K, T, J, U]
}

func (a *lensSeekAcc[K, T, J, U]) Prev() bool { return a.c.Prev() }

func (a *lensSeekAcc[K, T, J, U]) Seek(d int) { a.c.Advance(d) }

func (a *lensSeekAcc[K, T, J, U]) Clone() core.Accessor[J, U] {
	return &lensSeekAcc[K, T, J, U]{lensAcc: lensAcc[K, T, J, U]{c: a.c.Clone(), fn: a.fn}}
}

// lensMutAcc writes values back through the inverse value map.
type lensMutAcc[K comparable, T any, J comparable, U any] struct {
	lensAcc[K, T, J, U]
	mc  core.MutCursor[K, T]
	inv func(U) T
}

func (a *lensMutAcc[K, T, J, U]) SetValue(u U) { _ = a.mc.Set(a.inv(u)) }

func (a *lensMutAcc[K, T, J, U]) Clone() core.Accessor[J, U] {
	mc := a.mc.Clone()
	return &lensMutAcc[K, T, J, U]{lensAcc: lensAcc[K, T, J, U]{c: mc.Const(), fn: a.fn}, mc: mc, inv: a.inv}
}

func identity[X any](x X) X { return x }

func present[K comparable](k K) (K, bool) { return k, true }
