// SPDX-License-Identifier: MIT

// Package matrix - flagged dense storage.
//
// Purpose:
//   - Keep a flat row-major buffer of m*n values (offset = i*n + j) and a
//     roaring presence bitmap of the same offsets.
//   - An entry exists iff its flag is set; Size is the bitmap cardinality.
//   - Cursors step over set flags only, by rank, so they are random access.
//
// AI-Hints:
//   - Use Dense when the matrix is small or mostly full; Find is a flag test.
//   - m*n must fit the 32-bit offset space (ErrInvalidShape otherwise).
//   - Fill makes every cell present; Clear empties the matrix without
//     releasing the buffer.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/internal/flagged"
)

// Dense is a flagged dense matrix.
type Dense[T any] struct {
	shape core.Shape
	st    *flagged.Store[core.Index, T]
	opts  Options
}

// Compile-time assertions for the range traits.
var (
	_ core.MutableRange[core.Index, float64] = (*Dense[float64])(nil)
	_ core.Finder[core.Index, float64]       = (*Dense[float64])(nil)
	_ core.Inserter[core.Index, float64]     = (*Dense[float64])(nil)
	_ core.Sizer                             = (*Dense[float64])(nil)
	_ fmt.Stringer                           = (*Dense[float64])(nil)
)

// NewDense allocates an empty rows×cols matrix (no cell present).
// Errors: ErrInvalidShape on negative dimensions or when rows*cols exceeds
// the 32-bit offset space.
// Complexity: O(rows*cols) allocation.
func NewDense[T any](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(kindDense, ctxNew, rows, cols, err)
	}
	if err := flagged.CheckCells(rows * cols); err != nil {
		return nil, matrixErrorf(kindDense, ctxNew, rows, cols, fmt.Errorf("%w: %w", ErrInvalidShape, err))
	}
	shape := core.Shape{Rows: rows, Cols: cols}
	st, err := flagged.NewStore[core.Index, T](shape)
	if err != nil {
		return nil, matrixErrorf(kindDense, ctxNew, rows, cols, err)
	}
	return &Dense[T]{shape: shape, st: st, opts: gatherOptions(opts...)}, nil
}

// NewDenseFrom copies every entry of src into a new Dense of the same shape.
func NewDenseFrom[T any](src core.MatrixRange[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	s := core.ShapeOf(src)
	d, err := NewDense[T](s.Rows, s.Cols, opts...)
	if err != nil {
		return nil, err
	}
	for ix, v := range core.All(src) {
		if err = d.Insert(ix, v); err != nil {
			return nil, err
		}
	}
	d.opts.logger.Debug("dense built", "rows", s.Rows, "cols", s.Cols, "nnz", d.Size())
	return d, nil
}

// Shape returns the immutable (rows, cols) extent.
func (d *Dense[T]) Shape() core.Shape { return d.shape }

// Extent implements core.Range.
func (d *Dense[T]) Extent() core.Extent[core.Index] { return d.shape }

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.shape.Rows }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.shape.Cols }

// Size returns the number of present cells.
func (d *Dense[T]) Size() int { return d.st.Size() }

// Begin returns a random-access cursor over present cells.
func (d *Dense[T]) Begin() core.Cursor[core.Index, T] { return d.st.Begin() }

// BeginMut returns a writable cursor over present cells.
func (d *Dense[T]) BeginMut() core.MutCursor[core.Index, T] { return d.st.BeginMut() }

// Find returns a cursor at ix, or end when the cell is absent.
func (d *Dense[T]) Find(ix core.Index) core.Cursor[core.Index, T] { return d.st.Find(ix) }

// Insert stores v at ix and marks the cell present.
// Errors: ErrOutOfRange, ErrNaNInf.
func (d *Dense[T]) Insert(ix core.Index, v T) error {
	if !d.opts.checkValue(v) {
		return matrixErrorf(kindDense, ctxInsert, ix.Row, ix.Col, ErrNaNInf)
	}
	if err := d.st.Insert(ix, v); err != nil {
		return matrixErrorf(kindDense, ctxInsert, ix.Row, ix.Col, err)
	}
	return nil
}

// At returns the value at (i, j).
// Errors: ErrOutOfRange when outside the shape or absent. Never marks a cell.
func (d *Dense[T]) At(i, j int) (T, error) {
	v, ok := d.st.Get(core.Index{Row: i, Col: j})
	if !ok {
		return v, matrixErrorf(kindDense, ctxAt, i, j, ErrOutOfRange)
	}
	return v, nil
}

// Get returns the value at (i, j) and whether it is present.
func (d *Dense[T]) Get(i, j int) (T, bool) { return d.st.Get(core.Index{Row: i, Col: j}) }

// Ref marks (i, j) present (zero value when it was absent) and returns a
// pointer to its cell. Pointers stay valid for the lifetime of d.
// Errors: ErrOutOfRange when outside the shape.
func (d *Dense[T]) Ref(i, j int) (*T, error) {
	p, err := d.st.Ref(core.Index{Row: i, Col: j})
	if err != nil {
		return nil, matrixErrorf(kindDense, ctxRef, i, j, err)
	}
	return p, nil
}

// Delete clears (i, j) and reports whether it was present.
// Errors: ErrOutOfRange when outside the shape.
func (d *Dense[T]) Delete(i, j int) (bool, error) {
	ix := core.Index{Row: i, Col: j}
	if !d.shape.Contains(ix) {
		return false, matrixErrorf(kindDense, ctxDelete, i, j, ErrOutOfRange)
	}
	return d.st.Delete(ix), nil
}

// Fill stores v in every cell.
// Complexity: O(rows*cols).
func (d *Dense[T]) Fill(v T) { d.st.Fill(v) }

// Clear removes every entry.
func (d *Dense[T]) Clear() { d.st.Clear() }

// Do calls fn for every present cell in row-major order until fn returns false.
func (d *Dense[T]) Do(fn func(ix core.Index, v T) bool) {
	for ix, v := range d.st.Begin().All() {
		if !fn(ix, v) {
			return
		}
	}
}

// Apply replaces every present value in place with fn(ix, v).
func (d *Dense[T]) Apply(fn func(ix core.Index, v T) T) {
	for c := d.st.BeginMut(); c.Valid(); c.Next() {
		_ = c.Set(fn(c.Index(), c.Value()))
	}
}

// Clone returns a deep copy.
func (d *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{shape: d.shape, st: d.st.Clone(), opts: d.opts}
}

// Triplets exports the present cells as a sorted triplet list.
func (d *Dense[T]) Triplets() *core.TripletList[T] { return core.TripletsOf[T](d) }

// String renders a diagnostic listing of the present cells.
func (d *Dense[T]) String() string { return formatRange[T](kindDense, d) }
