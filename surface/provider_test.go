// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

// TestProviderSurface tests that each call allocates a fresh surface.
func TestProviderSurface(t *testing.T) {
	p := NewProvider("raster")
	if p.Backend() != "raster" {
		t.Errorf("Backend() = %q, want raster", p.Backend())
	}

	first, err := p.Surface("p0", 10, 10)
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	second, err := p.Surface("p0", 20, 5)
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	if first == second {
		t.Error("Surface returned the same surface twice")
	}

	got, ok := p.Lookup("p0")
	if !ok || got != second {
		t.Error("Lookup(p0) should return the latest surface")
	}
	img, ok := p.Image("p0")
	if !ok {
		t.Fatal("Image(p0) not available")
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 5 {
		t.Errorf("image bounds = %v, want 20x5", b)
	}

	if _, ok := p.Lookup("p1"); ok {
		t.Error("Lookup(p1) found a surface that was never allocated")
	}
}

// TestProviderTraceHasNoImage tests backends without pixels.
func TestProviderTraceHasNoImage(t *testing.T) {
	p := NewProvider("trace")
	if _, err := p.Surface("p0", 1, 1); err != nil {
		t.Fatalf("Surface: %v", err)
	}
	if _, ok := p.Image("p0"); ok {
		t.Error("trace surface should not expose an image")
	}
}

// TestProviderUnknownBackend tests the deferred backend error.
func TestProviderUnknownBackend(t *testing.T) {
	p := NewProvider("missing", WithLogger(nil))
	_, err := p.Surface("p3", 1, 1)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("error = %v, want ErrUnknownBackend", err)
	}
}
