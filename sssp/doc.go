// SPDX-License-Identifier: MIT

// Package sssp computes single-source shortest paths over a weighted
// adjacency matrix, where entry (i,j) is the weight of edge i → j.
//
// Two solvers share Options and Result:
//
//   - BellmanFord: the algebraic form. Each round is one min-plus product
//     d' = d min (Aᵀ min.+ d); it stops at a fixpoint, accepts negative
//     weights, and reports ErrNegativeCycle when round n still relaxes.
//   - Dijkstra: rows are bucketed once and vertices are settled from a
//     lazy-decrease-key heap; negative weights are rejected with
//     ErrNegativeWeight.
//
// Unreachable vertices are absent from Result.Dist; no sentinel infinity is
// stored. With WithReturnPath the predecessor vector lets PathTo rebuild a
// shortest path; the source is its own parent.
//
// Options:
//
//	– WithReturnPath():          populate Result.Parent.
//	– WithMaxDistance(d):        leave out vertices farther than d (d ≥ 0, panics otherwise).
//	– WithInfEdgeThreshold(t):   edges with weight ≥ t are impassable (t > 0, panics otherwise).
//	– WithContext / WithLogger:  cancellation between rounds, per-round Debug records.
//
// Complexity:
//
//   - BellmanFord: O(rounds · nnz · log nnz), rounds ≤ n.
//   - Dijkstra:    O((n + nnz) log n).
package sssp
