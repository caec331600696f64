// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
)

// viewErrorf tags err with the view constructor name.
func viewErrorf(tag string, err error) error { return fmt.Errorf("view.%s: %w", tag, err) }

// Filter shows the entries of base satisfying pred.
// Find re-checks pred on the base's hit.
func Filter[K comparable, T any](base core.Range[K, T], pred func(k K, v T) bool) *Lens[K, T, K, T] {
	return &Lens[K, T, K, T]{
		base: base,
		ext:  base.Extent(),
		fn:   &lensFuncs[K, T, K, T]{keep: pred, key: identity[K], val: identity[T]},
		back: present[K],
	}
}

// Transform presents every value of base through fn. The key set is unchanged.
func Transform[K comparable, T, U any](base core.Range[K, T], fn func(T) U) *Lens[K, T, K, U] {
	return &Lens[K, T, K, U]{
		base: base,
		ext:  base.Extent(),
		fn:   &lensFuncs[K, T, K, U]{key: identity[K], val: fn},
		back: present[K],
	}
}

// MutLens is a Transform that also writes back through an inverse map.
type MutLens[K comparable, T, U any] struct {
	*Lens[K, T, K, U]
	mbase core.MutableRange[K, T]
	inv   func(U) T
}

var _ core.MutableRange[int, string] = (*MutLens[int, int, string])(nil)

// TransformInv is Transform with write-back: a value u stored through the
// view's MutCursor lands in the base as inv(u).
func TransformInv[K comparable, T, U any](base core.MutableRange[K, T], fn func(T) U, inv func(U) T) *MutLens[K, T, U] {
	return &MutLens[K, T, U]{Lens: Transform[K, T, U](base, fn), mbase: base, inv: inv}
}

// BeginMut returns a writable cursor at the first entry.
func (m *MutLens[K, T, U]) BeginMut() core.MutCursor[K, U] {
	mc := m.mbase.BeginMut()
	return core.NewMutCursor[K, U](&lensMutAcc[K, T, K, U]{
		lensAcc: lensAcc[K, T, K, U]{c: mc.Const(), fn: m.fn},
		mc:      mc,
		inv:     m.inv,
	})
}

// Relabel maps every key through mapKey and every value through fn into the
// extent ext. Keys mapped outside ext are hidden. Iteration follows the base
// order, so mapKey must be monotone in that order for the result to iterate in
// ext's order; otherwise materialise and sort (matrix.NewCSRFrom).
// Find scans.
func Relabel[K comparable, T any, J comparable, U any](base core.Range[K, T], ext core.Extent[J], mapKey func(K) J, fn func(T) U) *Lens[K, T, J, U] {
	return &Lens[K, T, J, U]{
		base: base,
		ext:  ext,
		fn: &lensFuncs[K, T, J, U]{
			keep: func(k K, _ T) bool { return ext.Contains(mapKey(k)) },
			key:  mapKey,
			val:  fn,
		},
	}
}

// Mask shows the entries of base whose key is present in mask with a truthy
// value. A nil truthy uses op.Truthy.
// Complexity: one mask lookup per visited base entry.
func Mask[K comparable, T, M any](base core.Range[K, T], mask core.Range[K, M], truthy func(M) bool) *Lens[K, T, K, T] {
	if truthy == nil {
		truthy = op.Truthy[M]
	}
	return Filter(base, func(k K, _ T) bool {
		m, ok := core.Lookup(mask, k)
		return ok && truthy(m)
	})
}

// StructuralMask shows the entries of base whose key is present in mask,
// whatever the mask value.
func StructuralMask[K comparable, T, M any](base core.Range[K, T], mask core.Range[K, M]) *Lens[K, T, K, T] {
	return Filter(base, func(k K, _ T) bool { return core.Contains(mask, k) })
}

// Submatrix exposes the half-open window [rowLo,rowHi)×[colLo,colHi) of base
// with keys re-based to the window origin.
// Errors: core.ErrInvalidArgument when the bounds are reversed or leave the base shape.
func Submatrix[T any](base core.MatrixRange[T], rowLo, rowHi, colLo, colHi int) (*Lens[core.Index, T, core.Index, T], error) {
	s := core.ShapeOf(base)
	if rowLo < 0 || colLo < 0 || rowLo > rowHi || colLo > colHi || rowHi > s.Rows || colHi > s.Cols {
		return nil, viewErrorf("Submatrix", fmt.Errorf("window [%d,%d)×[%d,%d) of %v: %w",
			rowLo, rowHi, colLo, colHi, s, core.ErrInvalidArgument))
	}
	win := core.Shape{Rows: rowHi - rowLo, Cols: colHi - colLo}
	return &Lens[core.Index, T, core.Index, T]{
		base: base,
		ext:  win,
		fn: &lensFuncs[core.Index, T, core.Index, T]{
			keep: func(ix core.Index, _ T) bool {
				return ix.Row >= rowLo && ix.Row < rowHi && ix.Col >= colLo && ix.Col < colHi
			},
			key: func(ix core.Index) core.Index { return core.Index{Row: ix.Row - rowLo, Col: ix.Col - colLo} },
			val: identity[T],
		},
		back: func(ix core.Index) (core.Index, bool) {
			return core.Index{Row: ix.Row + rowLo, Col: ix.Col + colLo}, true
		},
	}, nil
}

// Diag relabels a vector as the diagonal of an n×n matrix.
func Diag[T any](v core.VectorRange[T]) *Lens[int, T, core.Index, T] {
	n := core.DimOf(v)
	l := Relabel(v, core.Extent[core.Index](core.Shape{Rows: n, Cols: n}),
		func(i int) core.Index { return core.Index{Row: i, Col: i} }, identity[T])
	l.back = func(ix core.Index) (int, bool) { return ix.Row, ix.Row == ix.Col }
	return l
}
