// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by every package of the module.
//
// Error policy:
//   - Only sentinels are exported; callers branch with errors.Is.
//   - Implementations attach context with fmt.Errorf("<Tag>: ...: %w", ErrX).
//   - No algorithm panics on user-triggered conditions. Option constructors may
//     panic on nonsensical values (programmer error), nothing else.
//
// ERROR CLASSES:
//   ErrInvalidArgument  - shape mismatch between operands, bad parameters.
//   ErrOutOfRange       - throwing accessor on an absent key or outside the shape.
//   ErrMalformedInput   - triplet stream unsorted / duplicated / nnz mismatch / out of shape.
//   ErrNotWritable      - write-back through a cursor or range that cannot store values.
//   ErrNilRange         - nil range passed where a range is required.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for shape mismatches and invalid parameters
	// (e.g. density outside [0,1], window bounds outside the base shape).
	ErrInvalidArgument = errors.New("grb: invalid argument")

	// ErrOutOfRange is returned by throwing accessors (At) when the key is absent
	// or when indices exceed the shape.
	ErrOutOfRange = errors.New("grb: index out of range")

	// ErrMalformedInput is returned when a triplet stream violates the import
	// contract: unsorted, duplicated, out of shape, or nnz count mismatch.
	ErrMalformedInput = errors.New("grb: malformed input")

	// ErrNotWritable is returned when a value is written through a cursor or
	// range whose accessor does not support write-back.
	ErrNotWritable = errors.New("grb: range is not writable")

	// ErrNilRange is returned when a nil range is passed to an operation.
	ErrNilRange = errors.New("grb: nil range")
)

// Errorf tags err with an operation name: "<tag>: <err>".
// Complexity: O(1).
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ShapeMismatch wraps ErrInvalidArgument with both operand dimensions.
func ShapeMismatch(tag string, a, b Shape) error {
	return fmt.Errorf("%s: shapes %v and %v: %w", tag, a, b, ErrInvalidArgument)
}
