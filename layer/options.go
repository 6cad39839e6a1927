// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layer

import "log/slog"

// Option configures an Engine.
type Option func(*Engine)

// WithInvalidator sets who is told when an element needs repainting.
// It can also be set later with Engine.SetInvalidator.
func WithInvalidator(inv Invalidator) Option {
	return func(e *Engine) {
		e.inval = inv
	}
}

// WithLogger sets the engine's logger. By default the package-wide
// paintlet logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
