// Package matrix provides the two storage backends of grb.
//
// 🚀 What lives here?
//
//   - CSR[T]   – compressed row storage: rowptr / colind / values, sorted
//     within each row, built from a validated triplet stream.
//   - Dense[T] – flagged dense storage: a flat row-major value buffer plus a
//     roaring presence bitmap. An entry exists iff its flag is set.
//   - Options  – functional options (capacity, numeric policy, logger).
//   - Validators – shared shape checks used by the algebra kernels.
//
// Both backends satisfy core.Range, core.Finder, core.Sizer, core.Inserter and
// core.MutableRange, so every view and algorithm accepts them unchanged.
//
// Accessor semantics:
//
//	At  – throwing: ErrOutOfRange when absent or out of shape. Never inserts.
//	Ref – auto-vivifying: inserts the zero value when absent (map-index semantics).
//	Get – non-throwing (value, present).
//
// Complexity quicksheet (nnz = stored entries, k = entries in the row):
//
//	CSR:   Find O(log k), Insert O(nnz + m) (shifted), cursor Seek O(log m)
//	Dense: Find O(log nnz), Insert O(1), cursor Seek O(log nnz)
//
// Dense point access does no search: Get, At and Ref cost one bitmap flag test
// and a direct read of the flat buffer. Find costs O(log nnz) because the cursor it returns
// carries its rank among the set flags (a roaring Rank query), which is what
// lets Dense cursors seek and measure distance in O(log nnz) instead of
// walking the bitmap.
package matrix
