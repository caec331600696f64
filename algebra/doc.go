// Package algebra implements the GraphBLAS-style kernels of grb over any
// core.Range: elementwise union and intersection, dot products, matrix·vector,
// vector·matrix, matrix·matrix under a semiring, reductions, apply, and masked
// accumulation into an existing output.
//
// Contract shared by every kernel:
//
//   - Inputs iterate in their extent order (row-major / ascending); merge-style
//     kernels rely on it. Every backend and view in grb honours it.
//   - Shape mismatch is reported immediately as core.ErrInvalidArgument.
//   - Absence is not zero: an output key exists only when some input entry
//     produced it. A stored zero is a real entry.
//   - Each call allocates one fresh output container; inputs are never mutated.
//
// Masks (Option):
//
//	WithMask(m)           – output key k is writable iff m stores k with a truthy value
//	WithStructuralMask(m) – output key k is writable iff m stores k
//	WithComplementMask()  – invert the selection
//
// Matrix kernels return *matrix.CSR; the Vec-suffixed variants return
// *vector.Sparse.
package algebra
