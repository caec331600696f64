// SPDX-License-Identifier: MIT
// Package: grb/builder
//
// emitter.go - the write side handed to constructors.
//
// Constructors never touch the triplet list directly: they call
// emitter.edge(i, j), which draws the value, checks bounds and applies the
// symmetric policy. This keeps the value draw order (and therefore seeded
// output) identical across element types.

package builder

// emitter appends entries to a shape-bounded sink.
type emitter struct {
	rows, cols int
	cfg        builderConfig
	add        func(i, j int, v float64)
}

// edge emits (i,j) with one drawn value, plus (j,i) with the same value when
// the symmetric policy is on.
func (e *emitter) edge(method string, i, j int) error {
	if i < 0 || i >= e.rows || j < 0 || j >= e.cols {
		return builderErrorf(method, ErrShapeTooSmall, "entry (%d,%d) outside %d×%d", i, j, e.rows, e.cols)
	}
	v := e.cfg.valueFn(e.cfg.rng)
	e.add(i, j, v)
	if e.cfg.symmetric && i != j {
		if j >= e.rows || i >= e.cols {
			return builderErrorf(method, ErrShapeTooSmall, "mirror (%d,%d) outside %d×%d", j, i, e.rows, e.cols)
		}
		e.add(j, i, v)
	}
	return nil
}

// square reports whether an n-vertex topology fits the target shape.
func (e *emitter) square(method string, n int) error {
	if n > e.rows || n > e.cols {
		return builderErrorf(method, ErrShapeTooSmall, "%d vertices in %d×%d", n, e.rows, e.cols)
	}
	return nil
}
