// Package core defines the coordinate and entry model, the cursor framework
// and the range contract shared by every backend, view and algorithm in grb.
//
// 🚀 What lives here?
//
//   - Index / Entry / Shape / Dim – keys, entries and extents
//   - Accessor → Cursor / MutCursor – one lifting of a tiny accessor into a
//     full iterator (bidirectional, random access, distance, ordering)
//   - Range + Finder / Sizer / Inserter – the entry-iteration contract with
//     default trait functions (Find, Size, Insert, Lookup)
//   - Triplet / TripletList / ValidateTriplets – the import boundary
//   - Sentinel errors (ErrInvalidArgument, ErrOutOfRange, ErrMalformedInput, ...)
//
// Ordering rules:
//
//	matrices iterate row-major (column ascending within a row),
//	vectors iterate by ascending index. Merge-style algorithms rely on it.
//
// Aliasing rules:
//
//	A cursor or view borrows its base. Mutating the base while a cursor or
//	view derived from it is live is undefined; nothing checks it at runtime.
package core
