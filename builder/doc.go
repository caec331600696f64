// SPDX-License-Identifier: MIT

// Package builder provides deterministic generators of sparse test matrices
// in the functional-options style: adjacency patterns of common graph
// topologies and random sparse matrices of a given density.
//
// The package offers the following components:
//
//   - Orchestration:
//     – Build[T]:     run constructors into a rows×cols core.TripletList[T]
//     (sorted row-major, duplicates collapsed, later emission wins).
//     – BuildCSR[T]:  the same, materialised as *matrix.CSR[T].
//   - Constructors (vertex i ↔ row/column i):
//     – Identity(n), Path(n), Cycle(n), Star(n), Wheel(n), Complete(n),
//     CompleteBipartite(n1, n2), Grid(rows, cols), RandomSparse(density).
//   - Options:
//     – WithSeed / WithRand:  RNG for RandomSparse and value draws.
//     – WithValueFn:          per-entry value distribution (DefaultValueFn,
//     ConstantValueFn, UniformValueFn, IntValueFn, NormalValueFn).
//     – WithSymmetric:        mirror off-diagonal entries (undirected adjacency).
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical output.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors that also satisfy errors.Is(err, core.ErrInvalidArgument).
//   - Documented complexity per constructor.
//
// Example:
//
//	adj, err := builder.BuildCSR[float64](9, 9,
//	    []builder.BuilderOption{builder.WithSymmetric()},
//	    builder.Grid(3, 3))
package builder
