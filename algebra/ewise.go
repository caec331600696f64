// SPDX-License-Identifier: MIT
// Package algebra - elementwise kernels.
//
// Implementation:
//   - A single two-cursor merge walks a and b in extent order; keys are
//     compared with the extent's Less. Each kernel decides what to emit for
//     "both", "only a" and "only b".
//
// Complexity: O(|a| + |b|) plus one mask lookup per candidate output key.

package algebra

import (
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
)

// side tells the merge which operands hold the current key.
type side uint8

const (
	onlyA side = iota
	onlyB
	both
)

// merge walks a and b in lockstep and calls visit for every key of keys(a) ∪ keys(b).
func merge[K comparable, A, B any](ext core.Extent[K], a core.Range[K, A], b core.Range[K, B],
	visit func(k K, s side, av A, bv B)) {
	ca, cb := a.Begin(), b.Begin()
	var za A
	var zb B
	for ca.Valid() || cb.Valid() {
		switch {
		case !cb.Valid() || (ca.Valid() && ext.Less(ca.Index(), cb.Index())):
			visit(ca.Index(), onlyA, ca.Value(), zb)
			ca.Next()
		case !ca.Valid() || ext.Less(cb.Index(), ca.Index()):
			visit(cb.Index(), onlyB, za, cb.Value())
			cb.Next()
		default:
			visit(ca.Index(), both, ca.Value(), cb.Value())
			ca.Next()
			cb.Next()
		}
	}
}

// unionEntries is the shared union kernel. oneA/oneB produce the value for a
// key present in only one operand.
func unionEntries[K comparable, A, B, C any](tag string, a core.Range[K, A], b core.Range[K, B],
	combine op.Binary[A, B, C], oneA func(A) C, oneB func(B) C, opts []Option[K]) ([]core.Entry[K, C], error) {
	if err := sameDims(tag, a, b); err != nil {
		return nil, err
	}
	ext := a.Extent()
	o, err := gatherOptions(ext, opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	out := make([]core.Entry[K, C], 0, max(core.Size(a), core.Size(b)))
	merge(ext, a, b, func(k K, s side, av A, bv B) {
		if !o.selects(k) {
			return
		}
		var v C
		switch s {
		case both:
			v = combine(av, bv)
		case onlyA:
			v = oneA(av)
		default:
			v = oneB(bv)
		}
		out = append(out, core.Entry[K, C]{Index: k, Value: v})
	})
	return out, nil
}

func intersectEntries[K comparable, A, B, C any](tag string, a core.Range[K, A], b core.Range[K, B],
	combine op.Binary[A, B, C], opts []Option[K]) ([]core.Entry[K, C], error) {
	if err := sameDims(tag, a, b); err != nil {
		return nil, err
	}
	ext := a.Extent()
	o, err := gatherOptions(ext, opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}
	var out []core.Entry[K, C]
	merge(ext, a, b, func(k K, s side, av A, bv B) {
		if s == both && o.selects(k) {
			out = append(out, core.Entry[K, C]{Index: k, Value: combine(av, bv)})
		}
	})
	return out, nil
}

// EwiseUnion combines two equally shaped matrices over keys(a) ∪ keys(b):
// combine(a,b) where both are stored, combine(a, defaultB) where only a is,
// combine(defaultA, b) where only b is. Keys stored in neither stay absent.
//
// Errors: core.ErrInvalidArgument on shape mismatch (operands or mask).
func EwiseUnion[A, B, C any](a core.MatrixRange[A], b core.MatrixRange[B], combine op.Binary[A, B, C],
	defaultA A, defaultB B, opts ...Option[core.Index]) (*matrix.CSR[C], error) {
	const tag = "EwiseUnion"
	es, err := unionEntries(tag, a, b, combine,
		func(av A) C { return combine(av, defaultB) },
		func(bv B) C { return combine(defaultA, bv) }, opts)
	if err != nil {
		return nil, err
	}
	return toCSR(tag, core.ShapeOf(a), es)
}

// EwiseUnionVec is EwiseUnion for vectors.
func EwiseUnionVec[A, B, C any](a core.VectorRange[A], b core.VectorRange[B], combine op.Binary[A, B, C],
	defaultA A, defaultB B, opts ...Option[int]) (*vector.Sparse[C], error) {
	const tag = "EwiseUnionVec"
	es, err := unionEntries(tag, a, b, combine,
		func(av A) C { return combine(av, defaultB) },
		func(bv B) C { return combine(defaultA, bv) }, opts)
	if err != nil {
		return nil, err
	}
	return toSparse(tag, core.DimOf(a), es)
}

// EwiseUnionTotal is the default-free union: combine is treated as total, so
// a key stored in only one operand copies that operand's value unchanged.
func EwiseUnionTotal[T any](a, b core.MatrixRange[T], combine op.Binary[T, T, T],
	opts ...Option[core.Index]) (*matrix.CSR[T], error) {
	const tag = "EwiseUnionTotal"
	es, err := unionEntries(tag, a, b, combine, identity[T], identity[T], opts)
	if err != nil {
		return nil, err
	}
	return toCSR(tag, core.ShapeOf(a), es)
}

// EwiseUnionTotalVec is EwiseUnionTotal for vectors.
func EwiseUnionTotalVec[T any](a, b core.VectorRange[T], combine op.Binary[T, T, T],
	opts ...Option[int]) (*vector.Sparse[T], error) {
	const tag = "EwiseUnionTotalVec"
	es, err := unionEntries(tag, a, b, combine, identity[T], identity[T], opts)
	if err != nil {
		return nil, err
	}
	return toSparse(tag, core.DimOf(a), es)
}

// EwiseIntersection combines two equally shaped matrices over keys(a) ∩ keys(b).
func EwiseIntersection[A, B, C any](a core.MatrixRange[A], b core.MatrixRange[B], combine op.Binary[A, B, C],
	opts ...Option[core.Index]) (*matrix.CSR[C], error) {
	const tag = "EwiseIntersection"
	es, err := intersectEntries(tag, a, b, combine, opts)
	if err != nil {
		return nil, err
	}
	return toCSR(tag, core.ShapeOf(a), es)
}

// EwiseIntersectionVec is EwiseIntersection for vectors.
func EwiseIntersectionVec[A, B, C any](a core.VectorRange[A], b core.VectorRange[B], combine op.Binary[A, B, C],
	opts ...Option[int]) (*vector.Sparse[C], error) {
	const tag = "EwiseIntersectionVec"
	es, err := intersectEntries(tag, a, b, combine, opts)
	if err != nil {
		return nil, err
	}
	return toSparse(tag, core.DimOf(a), es)
}

func identity[T any](v T) T { return v }
