// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for backend construction.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that resolves them.
//
// Notes:
//   - Numeric policy is opt-in here: min-plus algebra legitimately stores +Inf,
//     so NaN/Inf rejection must be requested with WithValidateNaNInf.
//   - The logger only receives Debug records (construction summaries).
package matrix

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the initial entry capacity of an empty CSR.
	DefaultCapacity = 0

	// DefaultValidateNaNInf toggles finite-value validation on ingestion and Insert.
	DefaultValidateNaNInf = false
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	capacity       int
	validateNaNInf bool
	logger         *slog.Logger
}

// discardLogger swallows every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithCapacity pre-sizes colind/values of an empty CSR.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapNg)
	}
	return func(o *Options) { o.capacity = n }
}

// WithValidateNaNInf rejects NaN and ±Inf floating-point values with ErrNaNInf.
// Non-float element types are unaffected.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithLogger routes construction diagnostics to l. A nil l restores the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		capacity:       DefaultCapacity,
		validateNaNInf: DefaultValidateNaNInf,
		logger:         discardLogger,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// checkValue enforces the numeric policy on a single value.
func (o Options) checkValue(v any) bool {
	if !o.validateNaNInf {
		return true
	}
	switch x := v.(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}
