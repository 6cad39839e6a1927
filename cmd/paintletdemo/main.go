// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command paintletdemo runs a paint pipeline over an HTML page and writes
// one PNG per frame.
//
// Each frame scrolls the element with id "list", grows the element with
// id "card", drains the microtask queue and composites the page.
//
// Usage:
//
//	paintletdemo [-config demo.toml] [-page page.html] [-frames 4] [-output frames]
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/paintlet"
	"github.com/gogpu/paintlet/compose"
	"github.com/gogpu/paintlet/htmldoc"
	"github.com/gogpu/paintlet/layer"
	"github.com/gogpu/paintlet/pipeline"
	"github.com/gogpu/paintlet/style"
	"github.com/gogpu/paintlet/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		width      = flag.Int("width", 0, "frame width")
		height     = flag.Int("height", 0, "frame height")
		frames     = flag.Int("frames", 0, "number of frames")
		output     = flag.String("output", "", "output directory")
		backend    = flag.String("backend", "", "surface backend ("+strings.Join(surface.Backends(), ", ")+")")
		page       = flag.String("page", "", "HTML page (built-in page if empty)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "output":
			cfg.Output = *output
		case "backend":
			cfg.Backend = *backend
		case "page":
			cfg.Page = *page
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Verbose {
		paintlet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	src := defaultPage
	if cfg.Page != "" {
		data, err := os.ReadFile(cfg.Page)
		if err != nil {
			return err
		}
		src = string(data)
	}

	app, err := newApp(cfg.Backend, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return err
	}

	frame := compose.NewFrame(cfg.Width, cfg.Height)
	for i := range cfg.Frames {
		if err := app.step(i, cfg); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := frame.Composite(app.doc, app.surfaces); err != nil {
			return err
		}
		path := filepath.Join(cfg.Output, fmt.Sprintf("frame-%03d.png", i))
		if err := frame.SavePNG(path); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}
		log.Printf("Frame saved to %s (%dx%d)", path, cfg.Width, cfg.Height)
	}
	return nil
}

// app wires a document to a full paint pipeline.
type app struct {
	doc      *htmldoc.Document
	surfaces *surface.Provider
	engine   *layer.Engine
	styles   *style.Registry
	sched    *pipeline.Scheduler
	queue    *pipeline.Microtasks
}

func newApp(backend, page string) (*app, error) {
	doc, err := htmldoc.Parse(strings.NewReader(page))
	if err != nil {
		return nil, err
	}
	a := &app{
		doc:      doc,
		surfaces: surface.NewProvider(backend),
		styles:   style.NewRegistry(),
		queue:    pipeline.NewMicrotasks(),
	}
	a.engine = layer.New(doc, a.surfaces)
	a.sched = pipeline.NewScheduler(a.engine, a.queue, pipeline.WithStyler(a.styles))
	a.engine.SetInvalidator(a.sched)
	a.styles.SetInvalidator(a.sched)
	doc.SetInvalidator(a.sched)

	if err := a.install(); err != nil {
		return nil, err
	}
	return a, a.queue.Drain()
}

// step advances the scene by one frame and runs the pipeline until it
// settles.
func (a *app) step(i int, cfg config) error {
	if i > 0 {
		if err := a.styles.Tick(time.Duration(cfg.FrameMS) * time.Millisecond); err != nil {
			return err
		}
		if list := a.doc.ByID("list"); list != nil {
			if err := a.styles.AddScrollDelta(list, cfg.Scroll); err != nil {
				return err
			}
		}
		if card := a.doc.ByID("card"); card != nil && cfg.Grow != 0 {
			w, h := card.ContentBox()
			p := card.Padding()
			card.Resize(w+p.Left+p.Right+cfg.Grow, h+p.Top+p.Bottom)
		}
	}
	a.sched.Schedule()
	return a.queue.Drain()
}
