// SPDX-License-Identifier: MIT

// Package grb is an in-memory engine for sparse and dense linear algebra
// over user-chosen semirings, in the spirit of GraphBLAS: graphs are
// matrices, traversals are matrix-vector products.
//
// What is inside?
//
//	core/    - index and shape types, cursors, the Range contract, triplets
//	op/      - binary operators, monoids and semirings (PlusTimes, MinPlus, LOrLAnd, ...)
//	matrix/  - CSR and Dense storage
//	vector/  - Sparse and Dense vectors
//	view/    - lazy lenses: Transpose, Filter, Transform, Submatrix, Diag, Mask, Complement
//	algebra/ - EwiseUnion, EwiseIntersection, MxV, VxM, MxM, Reduce, Apply, accumulate
//	bfs/     - level-synchronous breadth-first search as masked MxV
//	sssp/    - single-source shortest paths (Bellman-Ford over MinPlus, Dijkstra)
//	builder/ - deterministic matrix generators (path, cycle, grid, random, ...)
//	mmio/    - Matrix Market reader and writer, gzip aware
//	codec/   - compact binary snapshots with LZ4 or Zstandard blocks
//	cmd/grb  - command line front end
//
// Absence is not zero: an operation never materializes a key that none of
// its inputs stores, and a semiring identity never leaks into a result.
//
// Quick example, one BFS step on a 3-vertex path 0 → 1 → 2:
//
//	A = | . 1 . |     f = {0: 0}
//	    | . . 1 |     next = Aᵀ f over MinSecond = {1: 0}
//	    | . . . |
//
// Loggers: every package logs at Debug through an optional *slog.Logger;
// Logger bundles the handlers used by the command.
package grb
