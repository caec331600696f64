// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a sparse adjacency matrix,
// expressed as repeated masked matrix-vector products.
//
// What
//
//   - Levels explores vertices in non-decreasing distance (edge count) from
//     a source vertex and returns a Result containing:
//   - Level: sparse vector vertex → distance; unreached vertices are absent
//   - Parent: sparse vector vertex → BFS-tree predecessor
//   - Order: visit sequence
//   - One product per level: next = Aᵀ ⊕.⊗ frontier with the min.second
//     semiring, masked by the complement of the visited set. Absence in the
//     product is what "not reached" means; no sentinel distances are stored.
//   - Hooks: OnLevel receives each level as it is discovered and may abort.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0) and context
//     cancellation between levels.
//
// Determinism
//
//	The product walks the adjacency in row-major order and reduces parents
//	with min, so parents, levels and visit order are fully reproducible.
//
// Complexity (n = rows, nnz = stored edges, L = levels)
//
//   - Time:   O(L · nnz · log nnz)
//   - Memory: O(n + nnz) (visited flags, transpose key index)
//
// Usage
//
//	res, err := bfs.Levels(adj, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnLevel(func(depth int, frontier []int) error { return nil }),
//	)
//	path, err := res.PathTo(7)
package bfs
