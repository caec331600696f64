// SPDX-License-Identifier: MIT
// Package flagged - presence sets and flagged dense storage.
//
// Purpose:
//   - Set wraps a 32-bit roaring bitmap of flat (row-major) offsets. It is the
//     presence structure behind dense backends, the complement view and the
//     BFS visited set.
//   - Store[K,T] pairs a flat value buffer with a Set; an entry exists exactly
//     when its flag is set.
//
// AI-Hints:
//   - Select/Rank give O(log n) random access over the set flags, which is what
//     makes dense cursors Seekers.
//   - Offsets must fit in uint32: extents with more than 2^32 cells are rejected
//     by CheckCells.

package flagged

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/grb/core"
)

// MaxCells is the largest extent a Set can address.
const MaxCells = math.MaxUint32 + 1

// CheckCells rejects extents whose flat offsets do not fit in uint32.
func CheckCells(cells int) error {
	if cells < 0 || uint64(cells) > MaxCells {
		return fmt.Errorf("flagged: %d cells exceed the 32-bit offset space: %w", cells, core.ErrInvalidArgument)
	}
	return nil
}

// Set is a presence set over flat offsets.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet returns an empty set.
func NewSet() *Set { return &Set{rb: roaring.New()} }

// Add flags off.
func (s *Set) Add(off int) { s.rb.Add(uint32(off)) }

// Remove clears off.
func (s *Set) Remove(off int) { s.rb.Remove(uint32(off)) }

// Contains reports whether off is flagged.
func (s *Set) Contains(off int) bool { return s.rb.Contains(uint32(off)) }

// Len returns the number of flagged offsets.
func (s *Set) Len() int { return int(s.rb.GetCardinality()) }

// Select returns the k-th smallest flagged offset (0-based).
func (s *Set) Select(k int) (int, bool) {
	if k < 0 {
		return 0, false
	}
	off, err := s.rb.Select(uint32(k))
	if err != nil {
		return 0, false
	}
	return int(off), true
}

// Rank returns the number of flagged offsets ≤ off.
func (s *Set) Rank(off int) int { return int(s.rb.Rank(uint32(off))) }

// AddRange flags every offset in [lo, hi).
func (s *Set) AddRange(lo, hi int) { s.rb.AddRange(uint64(lo), uint64(hi)) }

// Clear removes every flag.
func (s *Set) Clear() { s.rb.Clear() }

// Complement returns a new set holding every offset in [0, cells) not in s.
// Complexity: O(cells / 2^16 + |s|) containers touched, bounded by O(cells).
func (s *Set) Complement(cells int) *Set {
	return &Set{rb: roaring.Flip(s.rb, 0, uint64(cells))}
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set { return &Set{rb: s.rb.Clone()} }

// All yields the flagged offsets in ascending order.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// SetOf collects the key offsets of every entry stored in r.
func SetOf[K comparable, T any](r core.Range[K, T]) *Set {
	s := NewSet()
	ext := r.Extent()
	for k := range core.All(r) {
		s.Add(ext.Offset(k))
	}
	return s
}
