// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_grid.go - Grid(rows, cols): a 4-neighbourhood lattice.
//
// Vertex (r,c) has index r*cols + c. For each vertex in row-major order the
// constructor emits the edge to its right neighbour, then to its lower
// neighbour. WithSymmetric makes the lattice undirected.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - rows*cols ≤ min(shape rows, shape cols).
//
// Complexity: O(rows·cols) entries.

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodGrid, min(rows, cols), minGridDim); err != nil {
			return err
		}
		if err := e.square(methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := e.edge(methodGrid, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := e.edge(methodGrid, v, v+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
