// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/paintlet/internal/lru"
)

// DefaultFont is the canvas default font.
const DefaultFont = "10px sans-serif"

// Font is a parsed CSS font shorthand.
type Font struct {
	Size      float64 // pixels
	Bold      bool
	Italic    bool
	Monospace bool
}

// ParseFont parses the subset of the CSS font shorthand that canvas
// programs use, e.g. "bold 16px sans-serif" or "italic 12pt monospace".
// Families other than monospace map to the Go proportional font.
func ParseFont(s string) (Font, error) {
	var f Font
	fields := strings.Fields(strings.ToLower(s))
	for i, tok := range fields {
		switch tok {
		case "normal", "small-caps":
			continue
		case "italic", "oblique":
			f.Italic = true
			continue
		case "bold", "bolder":
			f.Bold = true
			continue
		case "lighter":
			continue
		}
		if w, err := strconv.Atoi(tok); err == nil && w >= 100 && w <= 900 {
			f.Bold = w >= 600
			continue
		}
		size, err := parseSize(tok)
		if err != nil {
			return Font{}, fmt.Errorf("%w: %q", ErrInvalidFont, s)
		}
		f.Size = size
		f.Monospace = strings.Contains(strings.Join(fields[i+1:], " "), "mono")
		return f, nil
	}
	return Font{}, fmt.Errorf("%w: %q: missing size", ErrInvalidFont, s)
}

// parseSize parses "16px", "12pt" or "16px/1.5".
func parseSize(tok string) (float64, error) {
	tok, _, _ = strings.Cut(tok, "/")
	unit := 1.0
	switch {
	case strings.HasSuffix(tok, "px"):
		tok = strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "pt"):
		tok = strings.TrimSuffix(tok, "pt")
		unit = 4.0 / 3.0
	default:
		return 0, ErrInvalidFont
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidFont
	}
	return v * unit, nil
}

// WithSize returns f at another size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

type variant struct {
	bold, italic, mono bool
}

func (f Font) variant() variant {
	return variant{f.Bold, f.Italic, f.Monospace}
}

// fontData maps {bold, italic, mono} to the Go font files.
var fontData = map[variant][]byte{
	{false, false, false}: goregular.TTF,
	{true, false, false}:  gobold.TTF,
	{false, true, false}:  goitalic.TTF,
	{true, true, false}:   gobolditalic.TTF,
	{false, false, true}:  gomono.TTF,
	{true, false, true}:   gomonobold.TTF,
	{false, true, true}:   gomonoitalic.TTF,
	{true, true, true}:    gomonobolditalic.TTF,
}

var (
	sourcesMu sync.Mutex
	sources   = make(map[variant]*text.FontSource)

	faces = lru.New[Font, text.Face](64)
)

func fontSource(v variant) (*text.FontSource, error) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()

	if src, ok := sources[v]; ok {
		return src, nil
	}
	src, err := text.NewFontSource(fontData[v])
	if err != nil {
		return nil, err
	}
	sources[v] = src
	return src, nil
}

// Face returns a cached font face for f.
func (f Font) Face() (text.Face, error) {
	if face, ok := faces.Get(f); ok {
		return face, nil
	}
	src, err := fontSource(f.variant())
	if err != nil {
		return nil, fmt.Errorf("surface: load font: %w", err)
	}
	face := src.Face(f.Size)
	faces.Set(f, face)
	return face, nil
}
