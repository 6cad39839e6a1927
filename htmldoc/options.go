// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import (
	"log/slog"

	"github.com/gogpu/paintlet/layer"
)

// Invalidator is told when the document changes an element's layout or
// style. *pipeline.Scheduler implements it.
type Invalidator interface {
	InvalidateLayout(el layer.Element)
	InvalidateStyle(el layer.Element)
}

// Option configures a Document.
type Option func(*Document)

// WithInvalidator sets who is told about document changes.
func WithInvalidator(inv Invalidator) Option {
	return func(d *Document) { d.inval = inv }
}

// WithLogger sets the document's logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.log = l
		}
	}
}
