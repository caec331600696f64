// SPDX-License-Identifier: MIT

package grb

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger wraps slog.Logger so the handler choice lives in one place.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger on handler. Nil handler means text on stderr at Info.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Leveler) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewConsoleLogger writes tinted text records to w. color false strips ANSI
// escapes, for pipes and files.
func NewConsoleLogger(w io.Writer, level slog.Leveler, color bool) *Logger {
	return NewLogger(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !color,
	}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// Slog returns the underlying logger, or a discarding one for a nil receiver.
func (l *Logger) Slog() *slog.Logger {
	if l == nil || l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

// WithOp tags every record with the operation name.
func (l *Logger) WithOp(name string) *Logger {
	return &Logger{Logger: l.Slog().With(slog.String("op", name))}
}

// ParseLevel maps debug, info, warn or error (any case) to a level.
// Unknown names yield Info and false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
