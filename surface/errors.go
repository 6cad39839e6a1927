// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "errors"

var (
	// ErrUnknownBackend is returned for backend names that were never
	// registered.
	ErrUnknownBackend = errors.New("surface: unknown backend")
	// ErrInvalidColor is returned by ParseColor.
	ErrInvalidColor = errors.New("surface: invalid color")
	// ErrInvalidFont is returned by ParseFont.
	ErrInvalidFont = errors.New("surface: invalid font")
)
