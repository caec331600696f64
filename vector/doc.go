// Package vector provides the vector counterparts of the matrix backends.
//
//   - Sparse[T] – sorted parallel indices/values slices; shifted insert.
//   - Dense[T]  – flat values plus a roaring presence bitmap.
//
// Both satisfy core.Range[int, T] with the Finder, Sizer, Inserter and
// MutableRange traits, iterate by ascending index and share the accessor
// semantics of package matrix: At throws, Ref auto-vivifies, Get reports presence.
package vector
