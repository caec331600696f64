// SPDX-License-Identifier: MIT
// Package algebra - matrix·matrix.
//
// Implementation (row-wise Gustavson join on the shared dimension):
//   - Stage 1: bucket B's entries by row k (one pass, O(nnz(B))).
//   - Stage 2: bucket A's entries by row i.
//   - Stage 3: for each row i, for each a_ik, walk bucket k of B and fold
//     a_ik ⊗ b_kj into a column accumulator; the mask is looked up once per
//     (i,j) when it is first touched.
//   - Stage 4: emit touched, selected columns in ascending order.
//
// Complexity: O(nnz(A) + nnz(B) + flops + Σ_i t_i log t_i) where flops is the
// number of matched (a_ik, b_kj) pairs and t_i the columns touched in row i.
// Memory: O(nnz(A) + nnz(B) + cols(B)).

package algebra

import (
	"slices"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
)

type colVal[T any] struct {
	col int
	val T
}

// bucketRows groups the entries of r by row, each bucket sorted by column.
func bucketRows[T any](r core.MatrixRange[T], rows int) [][]colVal[T] {
	b := make([][]colVal[T], rows)
	for ix, v := range core.All(r) {
		b[ix.Row] = append(b[ix.Row], colVal[T]{col: ix.Col, val: v})
	}
	for _, row := range b {
		if !slices.IsSortedFunc(row, cmpCol[T]) {
			slices.SortStableFunc(row, cmpCol[T])
		}
	}
	return b
}

func cmpCol[T any](x, y colVal[T]) int { return x.col - y.col }

// MxM computes C = A ⊕.⊗ B under sr: c_ij = ⊕_k a_ik ⊗ b_kj over the k with
// both a_ik and b_kj stored. Pairs with no match leave c_ij absent.
//
// Errors: core.ErrInvalidArgument when cols(A) != rows(B), or the mask shape
// differs from rows(A)×cols(B).
func MxM[A, B, C any](a core.MatrixRange[A], b core.MatrixRange[B], sr op.Semiring[A, B, C],
	opts ...Option[core.Index]) (*matrix.CSR[C], error) {
	const tag = "MxM"
	if a == nil || b == nil {
		return nil, algebraErrorf(tag, core.ErrNilRange)
	}
	if err := matrix.ValidateMulShape(a, b); err != nil {
		return nil, algebraErrorf(tag, err)
	}
	as, bs := core.ShapeOf(a), core.ShapeOf(b)
	out := core.Shape{Rows: as.Rows, Cols: bs.Cols}
	o, err := gatherOptions[core.Index](out, opts)
	if err != nil {
		return nil, algebraErrorf(tag, err)
	}

	bRows := bucketRows(b, bs.Rows)
	aRows := bucketRows(a, as.Rows)

	acc := make([]C, out.Cols)
	state := make([]rowState, out.Cols)
	var touched []int
	var es []core.Entry[core.Index, C]

	for i, arow := range aRows {
		touched = touched[:0]
		for _, ak := range arow {
			for _, bj := range bRows[ak.col] {
				j := bj.col
				switch state[j] {
				case rowUnseen:
					touched = append(touched, j)
					if !o.selects(core.Index{Row: i, Col: j}) {
						state[j] = rowSkipped
						continue
					}
					acc[j], state[j] = sr.Combine(ak.val, bj.val), rowHit
				case rowHit:
					acc[j] = sr.Reduce.Op(acc[j], sr.Combine(ak.val, bj.val))
				}
			}
		}
		slices.Sort(touched)
		var zero C
		for _, j := range touched {
			if state[j] == rowHit {
				es = append(es, core.Entry[core.Index, C]{Index: core.Index{Row: i, Col: j}, Value: acc[j]})
			}
			acc[j], state[j] = zero, rowUnseen
		}
	}
	return toCSR(tag, out, es)
}
