// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paintlet

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger shared by paintlet and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Components read the logger when they are constructed, so call SetLogger
// before building an engine or scheduler, or hand them a logger explicitly
// with their WithLogger option.
//
// Log levels used:
//   - [slog.LevelDebug]: flush passes, re-arms, per-element paints
//   - [slog.LevelWarn]: drawing features a surface cannot honor
//   - [slog.LevelError]: failed cooperative ticks
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current shared logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
