// SPDX-License-Identifier: MIT
// Package algebra - dot, matrix·vector and vector·matrix.
//
// Absence propagation:
//   - An output index is written only when at least one (i,k) pair matched a
//     stored x_k. Untouched rows stay absent; this is what lets BFS use
//     absence as "not reached".
//   - The first matched product initialises the accumulator directly, so the
//     reduce monoid's identity never leaks into the result.

package algebra

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
)

// Dot folds combine(a_k, b_k) over the keys stored in both a and b (and
// selected by the mask) with the semiring's reduce operator. ok=false reports
// an empty intersection: "no value" is a result, not an error.
//
// Implementation: scan a, look up b through its Find.
// Complexity: O(|a| · find(b)).
func Dot[K comparable, A, B, C any](a core.Range[K, A], b core.Range[K, B], sr op.Semiring[A, B, C],
	opts ...Option[K]) (C, bool, error) {
	const tag = "Dot"
	var acc C
	if err := sameDims(tag, a, b); err != nil {
		return acc, false, err
	}
	o, err := gatherOptions(a.Extent(), opts)
	if err != nil {
		return acc, false, algebraErrorf(tag, err)
	}
	found := false
	for k, av := range core.All(a) {
		if !o.selects(k) {
			continue
		}
		bv, ok := core.Lookup(b, k)
		if !ok {
			continue
		}
		v := sr.Combine(av, bv)
		if found {
			acc = sr.Reduce.Op(acc, v)
		} else {
			acc, found = v, true
		}
	}
	return acc, found, nil
}

// MxV computes y = A ⊕.⊗ x: for every stored a_ik with x_k stored,
// y_i ⊕= a_ik ⊗ x_k. Rows with no match are absent in y.
//
// Errors: core.ErrInvalidArgument when cols(A) != len(x) or the mask length
// differs from rows(A).
// Complexity: O(nnz(A) · find(x) + rows(A)).
func MxV[A, X, C any](a core.MatrixRange[A], x core.VectorRange[X], sr op.Semiring[A, X, C],
	opts ...Option[int]) (*vector.Sparse[C], error) {
	const tag = "MxV"
	if a == nil || x == nil {
		return nil, algebraErrorf(tag, core.ErrNilRange)
	}
	if err := matrix.ValidateVecLen(a, x); err != nil {
		return nil, algebraErrorf(tag, err)
	}
	rows := core.ShapeOf(a).Rows
	o, err := gatherOptions[int](core.Dim(rows), opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}

	acc := make([]C, rows)
	state := make([]rowState, rows)
	for ix, av := range core.All(a) {
		i := ix.Row
		if state[i] == rowUnseen {
			state[i] = rowSkipped
			if o.selects(i) {
				state[i] = rowOpen
			}
		}
		if state[i] == rowSkipped {
			continue
		}
		xv, ok := core.Lookup(x, ix.Col)
		if !ok {
			continue
		}
		v := sr.Combine(av, xv)
		if state[i] == rowHit {
			acc[i] = sr.Reduce.Op(acc[i], v)
		} else {
			acc[i], state[i] = v, rowHit
		}
	}

	var es []core.Entry[int, C]
	for i, s := range state {
		if s == rowHit {
			es = append(es, core.Entry[int, C]{Index: i, Value: acc[i]})
		}
	}
	return toSparse(tag, rows, es)
}

// rowState tracks an output index through a kernel.
type rowState uint8

const (
	rowUnseen  rowState = iota
	rowSkipped          // masked out
	rowOpen             // selected, no product yet
	rowHit              // accumulator holds a value
)

// VxM computes y = x ⊕.⊗ A: y_j ⊕= x_k ⊗ a_kj. It runs MxV over the
// transpose view with the combine operands swapped back.
// Errors: core.ErrInvalidArgument when len(x) != rows(A).
func VxM[X, A, C any](x core.VectorRange[X], a core.MatrixRange[A], sr op.Semiring[X, A, C],
	opts ...Option[int]) (*vector.Sparse[C], error) {
	if a == nil || x == nil {
		return nil, algebraErrorf("VxM", core.ErrNilRange)
	}
	if rows, n := core.ShapeOf(a).Rows, core.DimOf(x); rows != n {
		return nil, algebraErrorf("VxM", fmt.Errorf("length %d vs %v matrix: %w", n, core.ShapeOf(a), core.ErrInvalidArgument))
	}
	swapped := op.NewSemiring[A, X, C](func(av A, xv X) C { return sr.Combine(xv, av) }, sr.Reduce)
	return MxV(transposeOf(a), x, swapped, opts...)
}
