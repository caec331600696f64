// SPDX-License-Identifier: MIT

package flagged

import "github.com/katalvlaran/grb/core"

// Store is a flat value buffer addressed by extent offsets plus a presence set.
// The buffer keeps stale values under cleared flags; they are never observed.
type Store[K comparable, T any] struct {
	ext    core.Extent[K]
	values []T
	flags  *Set
}

// NewStore allocates a store covering every cell of ext.
// Errors: ErrInvalidArgument when the extent exceeds MaxCells.
func NewStore[K comparable, T any](ext core.Extent[K]) (*Store[K, T], error) {
	if err := CheckCells(ext.Cells()); err != nil {
		return nil, err
	}
	return &Store[K, T]{ext: ext, values: make([]T, ext.Cells()), flags: NewSet()}, nil
}

// Extent returns the key space.
func (s *Store[K, T]) Extent() core.Extent[K] { return s.ext }

// Size is the number of set flags.
func (s *Store[K, T]) Size() int { return s.flags.Len() }

// Begin returns a random-access cursor over the stored entries.
func (s *Store[K, T]) Begin() core.Cursor[K, T] { return s.BeginMut().Const() }

// BeginMut returns a writable cursor over the stored entries.
func (s *Store[K, T]) BeginMut() core.MutCursor[K, T] {
	return core.NewMutCursor[K, T](&storeAcc[K, T]{rankPos: newRankPos(s.flags, 0), st: s})
}

// Find is O(log n): a flag test plus a rank query.
func (s *Store[K, T]) Find(k K) core.Cursor[K, T] {
	if !s.ext.Contains(k) {
		return core.End[K, T]()
	}
	off := s.ext.Offset(k)
	if !s.flags.Contains(off) {
		return core.End[K, T]()
	}
	return core.NewCursor[K, T](&storeAcc[K, T]{rankPos: newRankPos(s.flags, s.flags.Rank(off)-1), st: s})
}

// Insert stores v at k, overwriting an existing value.
func (s *Store[K, T]) Insert(k K, v T) error {
	if !s.ext.Contains(k) {
		return core.ErrOutOfRange
	}
	off := s.ext.Offset(k)
	s.values[off] = v
	s.flags.Add(off)
	return nil
}

// Get returns the value at k and whether it is present.
func (s *Store[K, T]) Get(k K) (T, bool) {
	var zero T
	if !s.ext.Contains(k) {
		return zero, false
	}
	off := s.ext.Offset(k)
	if !s.flags.Contains(off) {
		return zero, false
	}
	return s.values[off], true
}

// Ref flags k (zero value when it was absent) and returns a pointer to its cell.
func (s *Store[K, T]) Ref(k K) (*T, error) {
	if !s.ext.Contains(k) {
		return nil, core.ErrOutOfRange
	}
	off := s.ext.Offset(k)
	if !s.flags.Contains(off) {
		var zero T
		s.values[off] = zero
		s.flags.Add(off)
	}
	return &s.values[off], nil
}

// Delete clears k and reports whether it was present.
func (s *Store[K, T]) Delete(k K) bool {
	if !s.ext.Contains(k) {
		return false
	}
	off := s.ext.Offset(k)
	if !s.flags.Contains(off) {
		return false
	}
	s.flags.Remove(off)
	var zero T
	s.values[off] = zero
	return true
}

// Fill stores v in every cell.
func (s *Store[K, T]) Fill(v T) {
	for i := range s.values {
		s.values[i] = v
	}
	s.flags.AddRange(0, len(s.values))
}

// Clear removes every entry.
func (s *Store[K, T]) Clear() {
	clear(s.values)
	s.flags.Clear()
}

// Clone returns a deep copy.
func (s *Store[K, T]) Clone() *Store[K, T] {
	values := make([]T, len(s.values))
	copy(values, s.values)
	return &Store[K, T]{ext: s.ext, values: values, flags: s.flags.Clone()}
}

// Flags exposes the presence set (read-only by convention).
func (s *Store[K, T]) Flags() *Set { return s.flags }
