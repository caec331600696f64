// SPDX-License-Identifier: MIT

package flagged

import "github.com/katalvlaran/grb/core"

// rankPos walks the flagged offsets of a set by rank. k is the rank of the
// current offset, n the cardinality captured at creation; k == n is end.
type rankPos struct {
	set *Set
	k   int
	n   int
	off int
}

func newRankPos(s *Set, k int) rankPos {
	p := rankPos{set: s, n: s.Len()}
	p.moveTo(k)
	return p
}

func (p *rankPos) moveTo(k int) {
	if k < 0 {
		k = 0
	}
	if k > p.n {
		k = p.n
	}
	p.k = k
	if k < p.n {
		p.off, _ = p.set.Select(k)
	}
}

func (p *rankPos) Valid() bool { return p.k < p.n }
func (p *rankPos) Pos() int    { return p.k }
func (p *rankPos) Next() {
	if p.k < p.n {
		p.moveTo(p.k + 1)
	}
}

func (p *rankPos) Prev() bool {
	if p.k == 0 {
		return false
	}
	p.moveTo(p.k - 1)
	return true
}

func (p *rankPos) Seek(delta int) { p.moveTo(p.k + delta) }

// keyAcc yields (key, true) for every flagged offset.
type keyAcc[K comparable] struct {
	rankPos
	ext core.Extent[K]
}

func (a *keyAcc[K]) Entry() core.Entry[K, bool] {
	return core.Entry[K, bool]{Index: a.ext.KeyAt(a.off), Value: true}
}

func (a *keyAcc[K]) Clone() core.Accessor[K, bool] { c := *a; return &c }

// KeyCursor returns a random-access cursor over the keys of s, starting at
// rank start. Values are always true.
func KeyCursor[K comparable](s *Set, ext core.Extent[K], start int) core.Cursor[K, bool] {
	return core.NewCursor[K, bool](&keyAcc[K]{rankPos: newRankPos(s, start), ext: ext})
}

// KeyFind returns a cursor at key k when it is flagged, end otherwise.
func KeyFind[K comparable](s *Set, ext core.Extent[K], k K) core.Cursor[K, bool] {
	if !ext.Contains(k) {
		return core.End[K, bool]()
	}
	off := ext.Offset(k)
	if !s.Contains(off) {
		return core.End[K, bool]()
	}
	return KeyCursor(s, ext, s.Rank(off)-1)
}

// storeAcc yields stored entries of a Store and writes values back.
type storeAcc[K comparable, T any] struct {
	rankPos
	st *Store[K, T]
}

func (a *storeAcc[K, T]) Entry() core.Entry[K, T] {
	return core.Entry[K, T]{Index: a.st.ext.KeyAt(a.off), Value: a.st.values[a.off]}
}

func (a *storeAcc[K, T]) Clone() core.Accessor[K, T] { c := *a; return &c }

func (a *storeAcc[K, T]) SetValue(v T) { a.st.values[a.off] = v }
