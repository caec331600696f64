// SPDX-License-Identifier: MIT
// Package view - structural complement.
//
// Purpose:
//   - Present (k, true) for every key of the extent the base does NOT store.
//
// Cost:
//   - The absent-key set is materialised at construction: the base's key
//     offsets go into a roaring bitmap which is then flipped over [0, cells).
//     Time and space are O(m·n) in the worst case; this is the price of exact
//     semantics and is not optimised away.
//   - Extents beyond 2^32 cells are rejected.

package view

import (
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/internal/flagged"
)

// Complemented is the complement view of a range.
type Complemented[K comparable] struct {
	ext    core.Extent[K]
	absent *flagged.Set
}

var (
	_ core.Range[core.Index, bool]  = (*Complemented[core.Index])(nil)
	_ core.Finder[core.Index, bool] = (*Complemented[core.Index])(nil)
	_ core.Sizer                    = (*Complemented[core.Index])(nil)
)

// Complement materialises the absent-key set of base.
// Errors: core.ErrInvalidArgument when the extent exceeds the bitmap range.
func Complement[K comparable, T any](base core.Range[K, T]) (*Complemented[K], error) {
	ext := base.Extent()
	if err := flagged.CheckCells(ext.Cells()); err != nil {
		return nil, viewErrorf("Complement", err)
	}
	return &Complemented[K]{ext: ext, absent: flagged.SetOf(base).Complement(ext.Cells())}, nil
}

// Extent returns the base extent.
func (c *Complemented[K]) Extent() core.Extent[K] { return c.ext }

// Size is the number of absent base keys.
func (c *Complemented[K]) Size() int { return c.absent.Len() }

// Begin returns a random-access cursor over the absent keys.
func (c *Complemented[K]) Begin() core.Cursor[K, bool] { return flagged.KeyCursor(c.absent, c.ext, 0) }

// Find returns a cursor at k when the base does not store k.
func (c *Complemented[K]) Find(k K) core.Cursor[K, bool] { return flagged.KeyFind(c.absent, c.ext, k) }
