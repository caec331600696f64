// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2).
//
// Vertices 0..n1-1 form the left part, n1..n1+n2-1 the right part. Every
// left vertex i gets an edge to every right vertex n1+j.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(n1·n2) entries.

package builder

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(e *emitter) error {
		if err := validateMin(methodCompleteBipartite, min(n1, n2), minPartition); err != nil {
			return err
		}
		if err := e.square(methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := e.edge(methodCompleteBipartite, i, n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
