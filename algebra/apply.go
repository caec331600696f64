// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/vector"
	"github.com/katalvlaran/grb/view"
)

// Apply materialises fn over every entry of a into a new CSR with the same
// structure.
func Apply[A, U any](a core.MatrixRange[A], fn func(A) U, opts ...Option[core.Index]) (*matrix.CSR[U], error) {
	const tag = "Apply"
	if a == nil {
		return nil, algebraErrorf(tag, core.ErrNilRange)
	}
	s := core.ShapeOf(a)
	o, err := gatherOptions[core.Index](s, opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	var src core.MatrixRange[U] = view.Transform(a, fn)
	if o.lookup != nil {
		src = view.Filter(src, func(ix core.Index, _ U) bool { return o.selects(ix) })
	}
	m, err := matrix.NewCSRFrom(src)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	return m, nil
}

// ApplyVec materialises fn over every entry of x into a new sparse vector.
func ApplyVec[A, U any](x core.VectorRange[A], fn func(A) U, opts ...Option[int]) (*vector.Sparse[U], error) {
	const tag = "ApplyVec"
	if x == nil {
		return nil, algebraErrorf(tag, core.ErrNilRange)
	}
	n := core.DimOf(x)
	o, err := gatherOptions[int](core.Dim(n), opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	var es []core.Entry[int, U]
	for i, v := range core.All(x) {
		if o.selects(i) {
			es = append(es, core.Entry[int, U]{Index: i, Value: fn(v)})
		}
	}
	return toSparse(tag, n, es)
}
