// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import "errors"

var (
	// ErrNotStyled is returned for elements without a style map.
	ErrNotStyled = errors.New("style: element has no style")
	// ErrNotScroller is returned when scrolling an element that was not
	// marked as a scroller.
	ErrNotScroller = errors.New("style: element is not a scroller")
	// ErrInvalidValue is returned when a property holds a value that cannot
	// be interpreted.
	ErrInvalidValue = errors.New("style: invalid value")
	// ErrInvalidAnimation is returned by Animate for keyframes it cannot
	// interpolate.
	ErrInvalidAnimation = errors.New("style: invalid animation")
)
