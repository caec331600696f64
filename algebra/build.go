// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/vector"
	"github.com/katalvlaran/grb/view"
)

// algebraErrorf tags err with the kernel name.
func algebraErrorf(tag string, err error) error { return fmt.Errorf("algebra.%s: %w", tag, err) }

// sameDims requires identical extents.
func sameDims[K comparable, A, B any](tag string, a core.Range[K, A], b core.Range[K, B]) error {
	if a == nil || b == nil {
		return algebraErrorf(tag, core.ErrNilRange)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return algebraErrorf(tag, err)
	}
	return nil
}

// toCSR ingests entries produced in row-major order.
func toCSR[T any](tag string, s core.Shape, es []core.Entry[core.Index, T]) (*matrix.CSR[T], error) {
	l := core.NewTripletList[T](s.Rows, s.Cols, len(es))
	for _, e := range es {
		l.Append(e.Index.Row, e.Index.Col, e.Value)
	}
	m, err := matrix.NewCSRFromTriplets[T](l)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	return m, nil
}

// toSparse ingests entries produced in ascending order.
func toSparse[T any](tag string, n int, es []core.Entry[int, T]) (*vector.Sparse[T], error) {
	v, err := vector.NewSparseFromEntries(n, es)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	return v, nil
}

// transposeOf returns the transpose of a, unwrapping a transpose view instead
// of stacking a second one.
func transposeOf[T any](a core.MatrixRange[T]) core.MatrixRange[T] {
	if t, ok := a.(*view.Transposed[T]); ok {
		return t.Base()
	}
	return view.Transpose(a)
}
