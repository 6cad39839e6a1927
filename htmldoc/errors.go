// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package htmldoc

import "errors"

var (
	// ErrNoBody is returned by Parse when the input has no body element.
	ErrNoBody = errors.New("htmldoc: document has no body")
	// ErrForeignElement is returned for elements of another document.
	ErrForeignElement = errors.New("htmldoc: element does not belong to the document")
)
