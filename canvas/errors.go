// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "errors"

// Errors reported by buffers. They guard programming mistakes in paint
// callbacks and are never retried.
var (
	// ErrInvalidState is returned when recording into a buffer that is not
	// writable, or replaying a buffer that still is.
	ErrInvalidState = errors.New("canvas: invalid buffer state")

	// ErrInvalidArguments is returned when a command's arguments do not
	// match its schema.
	ErrInvalidArguments = errors.New("canvas: invalid arguments")

	// ErrDuplicateSplit is returned when PaintSuper is recorded twice.
	ErrDuplicateSplit = errors.New("canvas: paintSuper called more than once")

	// ErrUnsupportedCommand is returned when a clip region contains a path
	// command with no path-data equivalent, such as arcTo.
	ErrUnsupportedCommand = errors.New("canvas: unsupported command")
)
