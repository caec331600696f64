// SPDX-License-Identifier: MIT
// Package core - cursor framework.
//
// Purpose:
//   - Lift a minimal Accessor (validity, dereference, advance-by-one, position
//     token, clone) into a full Cursor with bidirectional stepping, random
//     access, distance, equality and ordering.
//   - Implemented once here; every backend and view supplies only an Accessor.
//
// Capabilities:
//   - Accessor           : mandatory surface.
//   - Retreater          : optional Prev (bidirectional).
//   - Seeker             : optional Seek(delta) (random access). Pos() is then a
//     dense ordinal, so Distance is a subtraction.
//   - Writer[T]          : optional SetValue (write-back; enables MutCursor.Set).
//   Missing capabilities are synthesised (Advance steps, Distance counts) or
//   reported (Prev returns false on forward-only accessors).
//
// Aliasing:
//   - A Cursor value shares its accessor. Copying a Cursor does NOT fork the
//     position; use Clone for an independent cursor (post-increment idiom).
//
// AI-Hints:
//   - The zero Cursor is a valid "end" cursor; Find returns it on a miss.
//   - Comparing cursors obtained from different ranges is meaningless.

package core

import "iter"

// Accessor is the minimal primitive a backend or view must provide.
type Accessor[K comparable, T any] interface {
	// Valid reports whether the accessor points at an entry (false at end).
	Valid() bool
	// Entry dereferences the current entry. Only called when Valid.
	Entry() Entry[K, T]
	// Next advances by one entry. At end it is a no-op.
	Next()
	// Pos is the position token used for equality and ordering. It must be
	// strictly increasing along the iteration order; end has the largest token.
	Pos() int
	// Clone returns an independent accessor at the same position.
	Clone() Accessor[K, T]
}

// Retreater is implemented by bidirectional accessors.
type Retreater interface {
	// Prev moves back by one entry; from end it moves to the last entry.
	// It returns false (and does not move) when already at the first entry.
	Prev() bool
}

// Seeker is implemented by random-access accessors.
type Seeker interface {
	// Seek moves by delta entries, clamping into [begin, end].
	Seek(delta int)
}

// Writer is implemented by accessors that can store a value in place.
type Writer[T any] interface {
	SetValue(v T)
}

// Cursor is the full iterator synthesised from an Accessor.
type Cursor[K comparable, T any] struct {
	acc Accessor[K, T]
}

// NewCursor lifts acc into a Cursor. A nil accessor yields the end cursor.
func NewCursor[K comparable, T any](acc Accessor[K, T]) Cursor[K, T] {
	return Cursor[K, T]{acc: acc}
}

// End returns the canonical end cursor.
func End[K comparable, T any]() Cursor[K, T] { return Cursor[K, T]{} }

// Valid reports whether the cursor can be dereferenced.
func (c Cursor[K, T]) Valid() bool { return c.acc != nil && c.acc.Valid() }

// Entry dereferences the cursor. Calling it on an invalid cursor returns the zero entry.
func (c Cursor[K, T]) Entry() Entry[K, T] {
	if !c.Valid() {
		var zero Entry[K, T]
		return zero
	}
	return c.acc.Entry()
}

// Index is shorthand for Entry().Index.
func (c Cursor[K, T]) Index() K { return c.Entry().Index }

// Value is shorthand for Entry().Value.
func (c Cursor[K, T]) Value() T { return c.Entry().Value }

// Pos returns the position token, or -1 for the zero end cursor.
func (c Cursor[K, T]) Pos() int {
	if c.acc == nil {
		return -1
	}
	return c.acc.Pos()
}

// Next advances by one and reports whether the cursor is still valid.
func (c Cursor[K, T]) Next() bool {
	if !c.Valid() {
		return false
	}
	c.acc.Next()
	return c.acc.Valid()
}

// Prev steps back by one. It returns false when the accessor is forward-only
// or the cursor is already at the first entry.
func (c Cursor[K, T]) Prev() bool {
	if c.acc == nil {
		return false
	}
	r, ok := c.acc.(Retreater)
	if !ok {
		return false
	}
	return r.Prev()
}

// Bidirectional reports whether Prev is supported.
func (c Cursor[K, T]) Bidirectional() bool {
	_, ok := c.acc.(Retreater)
	return ok
}

// RandomAccess reports whether Advance runs in O(1)/O(log n).
func (c Cursor[K, T]) RandomAccess() bool {
	_, ok := c.acc.(Seeker)
	return ok
}

// Advance moves by n entries (negative n requires a bidirectional accessor).
// It returns whether the cursor is valid after the move.
//
// Implementation:
//   - Stage 1: random-access accessors seek directly.
//   - Stage 2: otherwise step with Next/Prev |n| times, stopping at the ends.
func (c Cursor[K, T]) Advance(n int) bool {
	if c.acc == nil {
		return false
	}
	if s, ok := c.acc.(Seeker); ok {
		s.Seek(n)
		return c.acc.Valid()
	}
	for ; n > 0 && c.acc.Valid(); n-- {
		c.acc.Next()
	}
	for ; n < 0; n++ {
		if !c.Prev() {
			break
		}
	}
	return c.acc.Valid()
}

// Distance returns the number of steps from c to to (to - c).
//
// Behavior highlights:
//   - Random-access accessors answer by subtracting dense positions.
//   - Otherwise a clone of c is stepped forward until it equals to; when to is
//     never reached, (0, false) is returned.
//
// Complexity: O(1) for random access, O(distance) otherwise.
func (c Cursor[K, T]) Distance(to Cursor[K, T]) (int, bool) {
	if c.acc == nil || to.acc == nil {
		return 0, c.acc == nil && to.acc == nil
	}
	if _, ok := c.acc.(Seeker); ok {
		return to.acc.Pos() - c.acc.Pos(), true
	}
	walk := c.Clone()
	n := 0
	for !walk.Equal(to) {
		if !walk.Valid() {
			return 0, false
		}
		walk.acc.Next()
		n++
	}
	return n, true
}

// Equal reports whether both cursors point at the same position. Any two
// end cursors compare equal.
func (c Cursor[K, T]) Equal(o Cursor[K, T]) bool {
	cv, ov := c.Valid(), o.Valid()
	if !cv || !ov {
		return cv == ov
	}
	return c.acc.Pos() == o.acc.Pos()
}

// Less orders cursors by position; end is greater than every valid cursor.
func (c Cursor[K, T]) Less(o Cursor[K, T]) bool {
	cv, ov := c.Valid(), o.Valid()
	switch {
	case !cv:
		return false
	case !ov:
		return true
	default:
		return c.acc.Pos() < o.acc.Pos()
	}
}

// Clone returns an independent cursor at the same position.
func (c Cursor[K, T]) Clone() Cursor[K, T] {
	if c.acc == nil {
		return c
	}
	return Cursor[K, T]{acc: c.acc.Clone()}
}

// All yields the entries from the current position to the end. It iterates a
// clone, so c itself does not move.
func (c Cursor[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		it := c.Clone()
		for ; it.Valid(); it.acc.Next() {
			e := it.acc.Entry()
			if !yield(e.Index, e.Value) {
				return
			}
		}
	}
}

// MutCursor is a Cursor that may write values back. It converts to a read-only
// Cursor with Const; there is no conversion the other way.
type MutCursor[K comparable, T any] struct {
	Cursor[K, T]
}

// NewMutCursor lifts acc into a MutCursor.
func NewMutCursor[K comparable, T any](acc Accessor[K, T]) MutCursor[K, T] {
	return MutCursor[K, T]{Cursor: Cursor[K, T]{acc: acc}}
}

// Const drops write access.
func (m MutCursor[K, T]) Const() Cursor[K, T] { return m.Cursor }

// Clone returns an independent mutable cursor at the same position.
func (m MutCursor[K, T]) Clone() MutCursor[K, T] {
	return MutCursor[K, T]{Cursor: m.Cursor.Clone()}
}

// Set stores v at the current entry.
// Errors: ErrOutOfRange at end; ErrNotWritable when the accessor cannot write.
func (m MutCursor[K, T]) Set(v T) error {
	if !m.Valid() {
		return Errorf("MutCursor.Set", ErrOutOfRange)
	}
	w, ok := m.acc.(Writer[T])
	if !ok {
		return Errorf("MutCursor.Set", ErrNotWritable)
	}
	w.SetValue(v)
	return nil
}
