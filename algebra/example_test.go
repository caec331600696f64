// SPDX-License-Identifier: MIT

package algebra_test

import (
	"fmt"

	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/matrix"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/vector"
)

// ExampleMxV expands a frontier one hop along directed edges, skipping
// vertices already visited.
func ExampleMxV() {
	// Edge j -> i is stored at (i, j) so that A·x pulls from predecessors.
	l := core.NewTripletList[bool](4, 4, 3)
	l.Append(1, 0, true)
	l.Append(2, 0, true)
	l.Append(2, 1, true)
	l.Sort()
	adj, _ := matrix.NewCSRFromTriplets[bool](l)

	frontier, _ := vector.NewSparse[bool](4)
	_ = frontier.Insert(0, true)
	visited := frontier.Clone()

	next, err := algebra.MxV[bool, bool, bool](adj, frontier, op.LOrLAnd(),
		algebra.WithStructuralMask[int, bool](visited), algebra.WithComplementMask[int]())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(next.Indices())
	// Output:
	// [1 2]
}

// ExampleAccumulateVec keeps unselected prior values when Merge is set.
func ExampleAccumulateVec() {
	c, _ := vector.NewSparse[int](3)
	_ = c.Insert(0, 1)
	_ = c.Insert(2, 5)
	fresh, _ := vector.NewSparse[int](3)
	_ = fresh.Insert(2, 10)
	mask, _ := vector.NewSparse[bool](3)
	_ = mask.Insert(2, true)

	out, _ := algebra.AccumulateVec[int](c, fresh,
		algebra.Accumulator[int]{Op: op.Plus[int], Merge: true},
		algebra.WithMask[int, bool](mask))
	for i, v := range core.All[int, int](out) {
		fmt.Println(i, v)
	}
	// Output:
	// 0 1
	// 2 15
}
