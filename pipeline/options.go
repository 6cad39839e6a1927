// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pipeline

import "log/slog"

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithStyler sets who performs StyleInvalid work. Without one, style
// invalidations only repaint.
func WithStyler(st Styler) Option {
	return func(s *Scheduler) {
		s.styler = st
	}
}

// WithLogger sets the scheduler's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// QueueOption configures Microtasks.
type QueueOption func(*Microtasks)

// WithQueueLogger sets the logger failed tasks are reported to.
func WithQueueLogger(l *slog.Logger) QueueOption {
	return func(m *Microtasks) {
		if l != nil {
			m.log = l
		}
	}
}
