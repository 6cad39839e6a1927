// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/canvas"
)

// Imager is implemented by surfaces that render to pixels.
type Imager interface {
	Image() image.Image
}

// Provider hands out surfaces of one backend by id. It implements
// layer.SurfaceProvider. A Provider is not safe for concurrent use.
type Provider struct {
	backend  string
	surfaces map[string]canvas.Surface
	log      *slog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger sets the provider's logger.
func WithLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// NewProvider returns a provider creating surfaces with the named backend.
// An unknown backend is reported by the first call to Surface.
func NewProvider(backend string, opts ...ProviderOption) *Provider {
	p := &Provider{
		backend:  backend,
		surfaces: make(map[string]canvas.Surface),
		log:      paintlet.Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Backend returns the backend name.
func (p *Provider) Backend() string { return p.backend }

// Surface returns a fresh, cleared surface of w x h for id, replacing the
// surface previously handed out for it.
func (p *Provider) Surface(id string, w, h int) (canvas.Surface, error) {
	s, err := NewBackend(p.backend, w, h)
	if err != nil {
		return nil, fmt.Errorf("surface %s: %w", id, err)
	}
	p.surfaces[id] = s
	p.log.Debug("surface: allocated", "id", id, "backend", p.backend, "width", w, "height", h)
	return s, nil
}

// Lookup returns the current surface for id.
func (p *Provider) Lookup(id string) (canvas.Surface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

// Image returns the pixels of the surface for id, if it has any.
func (p *Provider) Image(id string) (image.Image, bool) {
	s, ok := p.surfaces[id].(Imager)
	if !ok {
		return nil, false
	}
	return s.Image(), true
}
