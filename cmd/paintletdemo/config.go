// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config holds the demo settings. Values come from the TOML file named by
// -config and are then overridden by flags that were set explicitly.
type config struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Frames  int     `toml:"frames"`
	Output  string  `toml:"output"`
	Backend string  `toml:"backend"`
	Page    string  `toml:"page"`
	Scroll  float64 `toml:"scroll"`
	Grow    float64 `toml:"grow"`
	// FrameMS is the animation time between frames, in milliseconds.
	FrameMS int  `toml:"frame_ms"`
	Verbose bool `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Width:   320,
		Height:  240,
		Frames:  4,
		Output:  "frames",
		Backend: "raster",
		Scroll:  -24,
		Grow:    10,
		FrameMS: 100,
	}
}

// loadConfig reads a TOML file over the defaults. Unknown keys are an
// error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height)
	case c.Frames < 1:
		return fmt.Errorf("config: frames must be at least 1, got %d", c.Frames)
	case c.FrameMS <= 0:
		return fmt.Errorf("config: frame_ms must be positive, got %d", c.FrameMS)
	}
	return nil
}
