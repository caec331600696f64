// Package view provides lazy lenses over any core.Range.
//
// A view owns no entries: it borrows its base and adapts keys, values or the
// visible key set on the fly. Views compose (a mask of a transpose of a
// submatrix is fine) and every algorithm in grb accepts them.
//
// 🚀 Lenses:
//
//	Transpose       – swapped keys, reversed shape, column-major iteration
//	Filter          – entries satisfying a predicate
//	Transform       – values mapped through fn (TransformInv adds write-back)
//	Relabel         – keys and values mapped into a new extent
//	Complement      – (key, true) for every cell the base does NOT store
//	Mask            – entries whose key is present and truthy in a mask
//	StructuralMask  – entries whose key is present in a mask
//	Submatrix       – a half-open window, keys re-based to its origin
//
// Costs:
//
//	All views are O(1) to build except Complement, which materialises the
//	absent-cell set as a bitmap in O(m·n), and Transpose, which builds a
//	column-major key index of O(nnz) on first use.
//
// Aliasing:
//
//	Mutating a base while a view (or a cursor from it) is live is undefined.
package view
