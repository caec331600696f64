// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/grb/builder"
)

// ExampleBuildCSR builds the undirected adjacency of a 4-cycle.
func ExampleBuildCSR() {
	m, err := builder.BuildCSR[int](4, 4,
		[]builder.BuilderOption{builder.WithSymmetric()},
		builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// CSR[4×4, nnz=8]{(0,1):1, (0,3):1, (1,0):1, (1,2):1, (2,1):1, (2,3):1, (3,0):1, (3,2):1}
}
