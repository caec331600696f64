// SPDX-License-Identifier: MIT

package mmio

import "log/slog"

// Option configures Read and Write.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	zeroBased bool
	sort      bool
	gzip      bool
	logger    *slog.Logger
}

// WithZeroBased reads and writes 0-based indices instead of the standard 1-based.
func WithZeroBased() Option { return func(o *Options) { o.zeroBased = true } }

// WithSort accepts data lines in any order: entries are sorted row-major
// and repeated coordinates keep the last value. Without it, out-of-order or
// repeated coordinates fail with core.ErrMalformedInput.
func WithSort() Option { return func(o *Options) { o.sort = true } }

// WithGzip makes Write emit a gzip stream. Read detects gzip by its magic bytes.
func WithGzip() Option { return func(o *Options) { o.gzip = true } }

// WithLogger routes Debug records to l. Nil keeps the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
