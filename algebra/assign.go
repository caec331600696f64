// SPDX-License-Identifier: MIT
// Package algebra - masked accumulation into an existing output.
//
// Semantics (C is the prior output, T the freshly computed result):
//
//	Z = accum ? C ⊙ scale(T) : scale(T)        (⊙ applied where both are stored,
//	                                            the stored side copied otherwise)
//	C' = mask ∘ Z  ∪  (merge ? ~mask ∘ C : ∅)
//
//   - Keys selected by the mask take Z.
//   - Keys not selected keep their old C value when Merge is set and are
//     dropped otherwise (GraphBLAS "replace").
//   - Without a mask every key is selected, so Merge is irrelevant.

package algebra

import (
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
)

// Accumulator describes how a fresh result lands in a prior output.
type Accumulator[T any] struct {
	// Op combines old and new values where both exist. Nil replaces.
	Op op.Binary[T, T, T]
	// Scale is applied to every fresh value before accumulation. Nil is identity.
	Scale func(T) T
	// Merge keeps unselected prior entries; false drops them.
	Merge bool
}

func accumulateEntries[K comparable, T any](tag string, c, t core.Range[K, T], acc Accumulator[T],
	opts []Option[K]) ([]core.Entry[K, T], error) {
	if err := sameDims(tag, c, t); err != nil {
		return nil, err
	}
	ext := c.Extent()
	o, err := gatherOptions(ext, opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	scale := acc.Scale
	if scale == nil {
		scale = identity[T]
	}
	out := make([]core.Entry[K, T], 0, max(core.Size(c), core.Size(t)))
	merge(ext, c, t, func(k K, s side, cv, tv T) {
		if !o.selects(k) {
			if acc.Merge && s != onlyB {
				out = append(out, core.Entry[K, T]{Index: k, Value: cv})
			}
			return
		}
		var z T
		switch {
		case s == onlyB:
			z = scale(tv)
		case acc.Op == nil && s == onlyA:
			return
		case acc.Op == nil:
			z = scale(tv)
		case s == onlyA:
			z = cv
		default:
			z = acc.Op(cv, scale(tv))
		}
		out = append(out, core.Entry[K, T]{Index: k, Value: z})
	})
	return out, nil
}

// Accumulate returns a new matrix C' from the prior output c and fresh result t.
// Errors: core.ErrInvalidArgument on shape mismatch (operands or mask).
func Accumulate[T any](c, t core.MatrixRange[T], acc Accumulator[T], opts ...Option[core.Index]) (*matrix.CSR[T], error) {
	const tag = "Accumulate"
	es, err := accumulateEntries(tag, c, t, acc, opts)
	if err != nil {
		return nil, err
	}
	return toCSR(tag, core.ShapeOf(c), es)
}

// AccumulateVec is Accumulate for vectors.
func AccumulateVec[T any](c, t core.VectorRange[T], acc Accumulator[T], opts ...Option[int]) (*vector.Sparse[T], error) {
	const tag = "AccumulateVec"
	es, err := accumulateEntries(tag, c, t, acc, opts)
	if err != nil {
		return nil, err
	}
	return toSparse(tag, core.DimOf(c), es)
}

// MxVInto computes MxV(a, x, sr) and accumulates it into c under the mask:
// c' = mask ∘ accum(c, scale·(A ⊕.⊗ x)) ∪ (merge ? ~mask ∘ c : ∅).
// The mask applies to the accumulation, not to the product.
func MxVInto[A, X, T any](c core.VectorRange[T], a core.MatrixRange[A], x core.VectorRange[X],
	sr op.Semiring[A, X, T], acc Accumulator[T], opts ...Option[int]) (*vector.Sparse[T], error) {
	prod, err := MxV(a, x, sr)
	if err != nil {
		return nil, err
	}
	return AccumulateVec[T](c, prod, acc, opts...)
}

// MxMInto is MxVInto for a matrix product.
func MxMInto[A, B, T any](c core.MatrixRange[T], a core.MatrixRange[A], b core.MatrixRange[B],
	sr op.Semiring[A, B, T], acc Accumulator[T], opts ...Option[core.Index]) (*matrix.CSR[T], error) {
	prod, err := MxM(a, b, sr)
	if err != nil {
		return nil, err
	}
	return Accumulate[T](c, prod, acc, opts...)
}
