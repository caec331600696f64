// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks shared by constructors and the
//    algebra kernels.
//  - Return wrapped core.ErrInvalidArgument so call sites match one sentinel.
//
// Note:
//  - Validators assume non-nil ranges unless they say otherwise.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/grb/core"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape rejects negative dimensions.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidShape)
	}
	return nil
}

// ValidateNotNil rejects nil ranges with core.ErrNilRange.
func ValidateNotNil[K comparable, T any](r core.Range[K, T]) error {
	if r == nil {
		return validatorErrorf("ValidateNotNil", core.ErrNilRange)
	}
	return nil
}

// ValidateSameShape requires identical extents (elementwise kernels).
// Complexity: O(1).
func ValidateSameShape[K comparable, A, B any](a core.Range[K, A], b core.Range[K, B]) error {
	ar, ac := a.Extent().Dims()
	br, bc := b.Extent().Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", ar, ac, br, bc, core.ErrInvalidArgument)
	}
	return nil
}

// ValidateMulShape requires a.Cols == b.Rows (matrix product).
func ValidateMulShape[A, B any](a core.MatrixRange[A], b core.MatrixRange[B]) error {
	as, bs := core.ShapeOf(a), core.ShapeOf(b)
	if as.Cols != bs.Rows {
		return core.ShapeMismatch("ValidateMulShape", as, bs)
	}
	return nil
}

// ValidateVecLen requires a.Cols == len(x) (matrix·vector).
func ValidateVecLen[A, X any](a core.MatrixRange[A], x core.VectorRange[X]) error {
	s, n := core.ShapeOf(a), core.DimOf(x)
	if s.Cols != n {
		return fmt.Errorf("ValidateVecLen: %v matrix vs length %d: %w", s, n, core.ErrInvalidArgument)
	}
	return nil
}

// ValidateSquare requires Rows == Cols.
func ValidateSquare[T any](a core.MatrixRange[T]) error {
	s := core.ShapeOf(a)
	if s.Rows != s.Cols {
		return fmt.Errorf("ValidateSquare: %v: %w", s, core.ErrInvalidArgument)
	}
	return nil
}
