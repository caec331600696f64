// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed row) storage.
//
// Purpose:
//   - Store a sparse matrix as rowptr[0..m], colind[0..nnz], values[0..nnz] with
//     rowptr[0]=0, rowptr non-decreasing, rowptr[m]=nnz and column indices
//     strictly ascending inside every row segment.
//   - Build primarily from a sorted, duplicate-free triplet stream.
//   - Accept post-construction insertion: the entry is shifted into its sorted
//     slot and every later rowptr is incremented, so the invariants hold after
//     every Insert.
//
// AI-Hints:
//   - Prefer NewCSRFromTriplets for bulk loads: it is O(nnz + m); repeated
//     Insert is O(nnz + m) per call.
//   - Use NewCSRFromUnsorted when the source may be unsorted or carry duplicates.
//   - Ref returns a pointer into the values slice; any later Insert/Delete may
//     invalidate it.
//
// Complexity quicksheet:
//   - Find/Get/At: O(log k) where k is the row length.
//   - Cursor Next: amortised O(1), skipping empty rows; Seek: O(log m).

package matrix

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/op"
)

// CSR is a compressed-row sparse matrix.
type CSR[T any] struct {
	shape  core.Shape
	rowptr []int // len Rows+1
	colind []int // len nnz, ascending within each row
	values []T   // len nnz, parallel to colind
	opts   Options
}

// Compile-time assertions for the range traits.
var (
	_ core.MutableRange[core.Index, float64] = (*CSR[float64])(nil)
	_ core.Finder[core.Index, float64]       = (*CSR[float64])(nil)
	_ core.Inserter[core.Index, float64]     = (*CSR[float64])(nil)
	_ core.Sizer                             = (*CSR[float64])(nil)
	_ fmt.Stringer                           = (*CSR[float64])(nil)
)

// NewCSR returns an empty rows×cols matrix. Zero dimensions are legal.
// Errors: ErrInvalidShape (wraps core.ErrInvalidArgument) on negative dimensions.
func NewCSR[T any](rows, cols int, opts ...Option) (*CSR[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(kindCSR, ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)
	return &CSR[T]{
		shape:  core.Shape{Rows: rows, Cols: cols},
		rowptr: make([]int, rows+1),
		colind: make([]int, 0, o.capacity),
		values: make([]T, 0, o.capacity),
		opts:   o,
	}, nil
}

// NewCSRFromTriplets ingests a sorted triplet stream.
//
// Implementation:
//   - Stage 1: core.ValidateTriplets (shape, order, duplicates, declared nnz).
//   - Stage 2: copy columns/values, count entries per row.
//   - Stage 3: prefix-sum the counts into rowptr.
//
// Errors:
//   - core.ErrMalformedInput with position context on any contract violation.
//   - ErrNaNInf when the numeric policy is on and a value is not finite.
//
// Complexity: O(nnz + m) time and space.
func NewCSRFromTriplets[T any](src core.TripletSource[T], opts ...Option) (*CSR[T], error) {
	if err := core.ValidateTriplets(src); err != nil {
		return nil, fmt.Errorf("%s.%s: %w", kindCSR, ctxIngest, err)
	}
	o := gatherOptions(opts...)
	s, n := src.Shape(), src.Len()
	m := &CSR[T]{
		shape:  s,
		rowptr: make([]int, s.Rows+1),
		colind: make([]int, n),
		values: make([]T, n),
		opts:   o,
	}
	for i := 0; i < n; i++ {
		t := src.At(i)
		if !o.checkValue(t.Value) {
			return nil, matrixErrorf(kindCSR, ctxIngest, t.Row, t.Col, ErrNaNInf)
		}
		m.rowptr[t.Row+1]++
		m.colind[i] = t.Col
		m.values[i] = t.Value
	}
	for r := 0; r < s.Rows; r++ {
		m.rowptr[r+1] += m.rowptr[r]
	}
	o.logger.Debug("csr built", "rows", s.Rows, "cols", s.Cols, "nnz", n)

	return m, nil
}

// NewCSRFromUnsorted ingests triplets in any order. Entries sharing a
// coordinate are merged left-to-right with merge; a nil merge keeps the last.
// The declared nnz must still match the number of triplets supplied.
// Complexity: O(nnz log nnz).
func NewCSRFromUnsorted[T any](src core.TripletSource[T], merge op.Binary[T, T, T], opts ...Option) (*CSR[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%s.%s: %w", kindCSR, ctxUnsort, core.ErrNilRange)
	}
	if src.NNZ() != src.Len() {
		return nil, fmt.Errorf("%s.%s: declared nnz=%d, got %d: %w",
			kindCSR, ctxUnsort, src.NNZ(), src.Len(), core.ErrMalformedInput)
	}
	s := src.Shape()
	list := core.NewTripletList[T](s.Rows, s.Cols, src.Len())
	for i := 0; i < src.Len(); i++ {
		t := src.At(i)
		list.Append(t.Row, t.Col, t.Value)
	}
	list.Sort()
	list.Dedup(merge)

	return NewCSRFromTriplets[T](list, opts...)
}

// Shape returns the immutable (rows, cols) extent.
func (m *CSR[T]) Shape() core.Shape { return m.shape }

// Extent implements core.Range.
func (m *CSR[T]) Extent() core.Extent[core.Index] { return m.shape }

// Rows returns the number of rows.
func (m *CSR[T]) Rows() int { return m.shape.Rows }

// Cols returns the number of columns.
func (m *CSR[T]) Cols() int { return m.shape.Cols }

// Size returns nnz.
func (m *CSR[T]) Size() int { return len(m.colind) }

// Begin returns a random-access cursor at the first stored entry.
func (m *CSR[T]) Begin() core.Cursor[core.Index, T] { return m.BeginMut().Const() }

// BeginMut returns a writable cursor at the first stored entry.
func (m *CSR[T]) BeginMut() core.MutCursor[core.Index, T] {
	a := &csrAcc[T]{m: m}
	a.settle()
	return core.NewMutCursor[core.Index, T](a)
}

// locate binary-searches column col inside row row. It returns the slot where
// col is or would be inserted, and whether it is present.
func (m *CSR[T]) locate(row, col int) (int, bool) {
	lo, hi := m.rowptr[row], m.rowptr[row+1]
	k, found := slices.BinarySearch(m.colind[lo:hi], col)
	return lo + k, found
}

// Find returns a cursor at ix, or the end cursor when ix is absent or outside
// the shape.
func (m *CSR[T]) Find(ix core.Index) core.Cursor[core.Index, T] {
	if !m.shape.Contains(ix) {
		return core.End[core.Index, T]()
	}
	p, ok := m.locate(ix.Row, ix.Col)
	if !ok {
		return core.End[core.Index, T]()
	}
	return core.NewCursor[core.Index, T](&csrAcc[T]{m: m, p: p, row: ix.Row})
}

// Insert stores v at ix, overwriting an existing value.
//
// Implementation:
//   - Stage 1: validate ix and the numeric policy.
//   - Stage 2: binary-search the row segment; overwrite on a hit.
//   - Stage 3: otherwise shift colind/values right by one at the slot and
//     increment rowptr[row+1..m].
//
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(log k) on overwrite, O(nnz + m) on insertion.
func (m *CSR[T]) Insert(ix core.Index, v T) error {
	if !m.shape.Contains(ix) {
		return matrixErrorf(kindCSR, ctxInsert, ix.Row, ix.Col, ErrOutOfRange)
	}
	if !m.opts.checkValue(v) {
		return matrixErrorf(kindCSR, ctxInsert, ix.Row, ix.Col, ErrNaNInf)
	}
	m.insertAt(ix, v)
	return nil
}

// insertAt performs the shifted insert and returns the slot of ix.
func (m *CSR[T]) insertAt(ix core.Index, v T) int {
	p, ok := m.locate(ix.Row, ix.Col)
	if ok {
		m.values[p] = v
		return p
	}
	m.colind = slices.Insert(m.colind, p, ix.Col)
	m.values = slices.Insert(m.values, p, v)
	for r := ix.Row + 1; r <= m.shape.Rows; r++ {
		m.rowptr[r]++
	}
	return p
}

// At returns the value stored at (i, j).
// Errors: ErrOutOfRange when (i, j) is outside the shape or absent. Never inserts.
func (m *CSR[T]) At(i, j int) (T, error) {
	var zero T
	if !m.shape.Contains(core.Index{Row: i, Col: j}) {
		return zero, matrixErrorf(kindCSR, ctxAt, i, j, ErrOutOfRange)
	}
	p, ok := m.locate(i, j)
	if !ok {
		return zero, fmt.Errorf("%s.%s(%d,%d): no entry: %w", kindCSR, ctxAt, i, j, ErrOutOfRange)
	}
	return m.values[p], nil
}

// Get returns the value at (i, j) and whether it is stored.
func (m *CSR[T]) Get(i, j int) (T, bool) {
	var zero T
	if !m.shape.Contains(core.Index{Row: i, Col: j}) {
		return zero, false
	}
	p, ok := m.locate(i, j)
	if !ok {
		return zero, false
	}
	return m.values[p], true
}

// Ref returns a pointer to the value at (i, j), inserting the zero value
// first when absent. The pointer is valid until the next structural change.
// Errors: ErrOutOfRange when (i, j) is outside the shape.
func (m *CSR[T]) Ref(i, j int) (*T, error) {
	ix := core.Index{Row: i, Col: j}
	if !m.shape.Contains(ix) {
		return nil, matrixErrorf(kindCSR, ctxRef, i, j, ErrOutOfRange)
	}
	p, ok := m.locate(i, j)
	if !ok {
		var zero T
		p = m.insertAt(ix, zero)
	}
	return &m.values[p], nil
}

// Delete removes (i, j) and reports whether it was stored.
// Errors: ErrOutOfRange when (i, j) is outside the shape.
func (m *CSR[T]) Delete(i, j int) (bool, error) {
	if !m.shape.Contains(core.Index{Row: i, Col: j}) {
		return false, matrixErrorf(kindCSR, ctxDelete, i, j, ErrOutOfRange)
	}
	p, ok := m.locate(i, j)
	if !ok {
		return false, nil
	}
	m.colind = slices.Delete(m.colind, p, p+1)
	m.values = slices.Delete(m.values, p, p+1)
	for r := i + 1; r <= m.shape.Rows; r++ {
		m.rowptr[r]--
	}
	return true, nil
}

// RowNNZ returns the number of entries stored in row i (0 outside the shape).
func (m *CSR[T]) RowNNZ(i int) int {
	if i < 0 || i >= m.shape.Rows {
		return 0
	}
	return m.rowptr[i+1] - m.rowptr[i]
}

// Row yields (col, value) for the entries of row i in ascending column order.
func (m *CSR[T]) Row(i int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if i < 0 || i >= m.shape.Rows {
			return
		}
		for p := m.rowptr[i]; p < m.rowptr[i+1]; p++ {
			if !yield(m.colind[p], m.values[p]) {
				return
			}
		}
	}
}

// Do calls fn for every entry in row-major order until fn returns false.
func (m *CSR[T]) Do(fn func(ix core.Index, v T) bool) {
	for r := 0; r < m.shape.Rows; r++ {
		for p := m.rowptr[r]; p < m.rowptr[r+1]; p++ {
			if !fn(core.Index{Row: r, Col: m.colind[p]}, m.values[p]) {
				return
			}
		}
	}
}

// Apply replaces every stored value in place with fn(ix, v). The structure
// is unchanged.
func (m *CSR[T]) Apply(fn func(ix core.Index, v T) T) {
	for r := 0; r < m.shape.Rows; r++ {
		for p := m.rowptr[r]; p < m.rowptr[r+1]; p++ {
			m.values[p] = fn(core.Index{Row: r, Col: m.colind[p]}, m.values[p])
		}
	}
}

// Clone returns a deep copy sharing no storage.
// Complexity: O(nnz + m).
func (m *CSR[T]) Clone() *CSR[T] {
	return &CSR[T]{
		shape:  m.shape,
		rowptr: slices.Clone(m.rowptr),
		colind: slices.Clone(m.colind),
		values: slices.Clone(m.values),
		opts:   m.opts,
	}
}

// Triplets exports the entries as a sorted triplet list.
func (m *CSR[T]) Triplets() *core.TripletList[T] {
	out := core.NewTripletList[T](m.shape.Rows, m.shape.Cols, len(m.colind))
	m.Do(func(ix core.Index, v T) bool {
		out.Append(ix.Row, ix.Col, v)
		return true
	})
	return out
}

// String renders a diagnostic listing of the stored entries.
func (m *CSR[T]) String() string { return formatRange[T](kindCSR, m) }

// csrAcc walks the value slots of a CSR. row is the row owning slot p; at end
// (p == nnz) row is Rows.
type csrAcc[T any] struct {
	m   *CSR[T]
	p   int
	row int
}

// settle advances row past empty rows until rowptr[row+1] > p.
func (a *csrAcc[T]) settle() {
	for a.row < a.m.shape.Rows && a.m.rowptr[a.row+1] <= a.p {
		a.row++
	}
}

func (a *csrAcc[T]) Valid() bool { return a.p < len(a.m.colind) }

func (a *csrAcc[T]) Entry() core.Entry[core.Index, T] {
	return core.Entry[core.Index, T]{
		Index: core.Index{Row: a.row, Col: a.m.colind[a.p]},
		Value: a.m.values[a.p],
	}
}

func (a *csrAcc[T]) Next() {
	if !a.Valid() {
		return
	}
	a.p++
	a.settle()
}

func (a *csrAcc[T]) Prev() bool {
	if a.p == 0 {
		return false
	}
	a.p--
	for a.m.rowptr[a.row] > a.p {
		a.row--
	}
	return true
}

func (a *csrAcc[T]) Seek(delta int) {
	a.p = min(max(a.p+delta, 0), len(a.m.colind))
	rows := a.m.shape.Rows
	a.row = sort.Search(rows, func(r int) bool { return a.m.rowptr[r+1] > a.p })
}

func (a *csrAcc[T]) Pos() int { return a.p }

func (a *csrAcc[T]) Clone() core.Accessor[core.Index, T] { c := *a; return &c }

func (a *csrAcc[T]) SetValue(v T) { a.m.values[a.p] = v }

// NewCSRFrom copies any matrix range into a new CSR. Entries may arrive in any
// order (e.g. from a transpose view); they are sorted first.
// Complexity: O(nnz log nnz).
func NewCSRFrom[T any](src core.MatrixRange[T], opts ...Option) (*CSR[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	list := core.TripletsOf(src)
	list.Sort()
	return NewCSRFromTriplets[T](list, opts...)
}
