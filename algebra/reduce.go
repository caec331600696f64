// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
)

// ReduceRows folds every row of a into one entry with m.Op. Rows without
// entries (or masked out) are absent from the result, never zero.
// Errors: core.ErrInvalidArgument when the mask length differs from rows(a).
// Complexity: O(nnz + rows).
func ReduceRows[T any](a core.MatrixRange[T], m op.Monoid[T], opts ...Option[int]) (*vector.Sparse[T], error) {
	const tag = "ReduceRows"
	if a == nil {
		return nil, algebraErrorf(tag, core.ErrNilRange)
	}
	rows := core.ShapeOf(a).Rows
	o, err := gatherOptions[int](core.Dim(rows), opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	acc := make([]T, rows)
	state := make([]rowState, rows)
	for ix, v := range core.All(a) {
		i := ix.Row
		switch state[i] {
		case rowUnseen:
			if !o.selects(i) {
				state[i] = rowSkipped
				continue
			}
			acc[i], state[i] = v, rowHit
		case rowHit:
			acc[i] = m.Op(acc[i], v)
		}
	}
	var es []core.Entry[int, T]
	for i, s := range state {
		if s == rowHit {
			es = append(es, core.Entry[int, T]{Index: i, Value: acc[i]})
		}
	}
	return toSparse(tag, rows, es)
}

// ReduceCols folds every column of a into one entry (ReduceRows of the transpose).
func ReduceCols[T any](a core.MatrixRange[T], m op.Monoid[T], opts ...Option[int]) (*vector.Sparse[T], error) {
	if a == nil {
		return nil, algebraErrorf("ReduceCols", core.ErrNilRange)
	}
	return ReduceRows(transposeOf(a), m, opts...)
}

// ReduceScalar folds every entry of r with m.Op. ok=false when r is empty.
func ReduceScalar[K comparable, T any](r core.Range[K, T], m op.Monoid[T]) (T, bool) {
	var acc T
	if r == nil {
		return acc, false
	}
	found := false
	for _, v := range core.All(r) {
		if found {
			acc = m.Op(acc, v)
		} else {
			acc, found = v, true
		}
	}
	return acc, found
}
