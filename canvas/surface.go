// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

// Surface is a real 2-D drawing target that replay writes into.
//
// Property kinds (see [Kind.IsProperty]) arrive through SetProperty with a
// single value; every other kind except the split marker arrives through
// Invoke with its recorded arguments. Surfaces keep their own state stack
// for save and restore.
type Surface interface {
	// SetProperty assigns v to the attribute named by k.Property().
	SetProperty(k Kind, v any) error

	// Invoke applies a method command.
	Invoke(k Kind, args []any) error
}

// ClipPath is a reusable clip-path resource derived from the path commands
// recorded between a beginPath and a clip.
type ClipPath struct {
	// Data is the path description in SVG path-data grammar.
	Data string

	// Segments are the path commands Data was built from.
	Segments []Command
}

// ClipTarget receives the clip derived during replay, typically the
// element whose native rendering sits between the lower and upper surface.
type ClipTarget interface {
	// DefineClipPath stores p as the target's clip-path resource and
	// returns a reference to it, such as "url(#card-clip)".
	DefineClipPath(p ClipPath) string

	// SetClipPath applies ref to the target. An empty ref removes the clip.
	SetClipPath(ref string)
}
