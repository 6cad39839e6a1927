// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/paintlet/layer"
)

// Interpolation is how an animated property blends between keyframes.
type Interpolation uint8

const (
	// NotAnimated properties are left out of animations.
	NotAnimated Interpolation = iota
	// Number values are plain numbers.
	Number
	// Length values are numbers with an optional "px" unit and are
	// written back in px.
	Length
)

var interpolationNames = [...]string{
	NotAnimated: "none",
	Number:      "number",
	Length:      "length",
}

func (i Interpolation) String() string {
	if int(i) < len(interpolationNames) {
		return interpolationNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", i)
}

func (i Interpolation) parse(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if i == Length {
		v = strings.TrimSuffix(v, "px")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidValue, i, v)
	}
	return f, nil
}

func (i Interpolation) format(v float64) string {
	if i == Length {
		return formatNumber(v) + "px"
	}
	return formatNumber(v)
}

// Keyframe maps property names to values at one point of an animation.
// Keyframes of an animation are spread evenly over its duration.
type Keyframe map[string]string

type track struct {
	name   string
	kind   Interpolation
	list   bool
	frames [][]float64
}

func (t *track) value(f float64) string {
	pos := f * float64(len(t.frames)-1)
	i := min(int(pos), len(t.frames)-2)
	local := pos - float64(i)
	from, to := t.frames[i], t.frames[i+1]

	items := make([]string, len(from))
	for k := range from {
		items[k] = t.kind.format(from[k] + (to[k]-from[k])*local)
	}
	return strings.Join(items, ", ")
}

type animation struct {
	el       layer.Element
	tracks   []track
	duration time.Duration
	elapsed  time.Duration
}

func (a *animation) progress() float64 {
	return min(float64(a.elapsed)/float64(a.duration), 1)
}

// Animate interpolates el's animatable custom properties through
// keyframes over duration. Properties are taken from the first keyframe;
// unregistered and non-animatable ones are ignored. The values of the
// first keyframe are written at once and the animation advances with
// Tick. A new animation on el replaces the running one.
func (r *Registry) Animate(el layer.Element, keyframes []Keyframe, duration time.Duration) error {
	if _, ok := el.(Styled); !ok {
		return ErrNotStyled
	}
	if len(keyframes) < 2 {
		return fmt.Errorf("%w: need at least two keyframes, got %d", ErrInvalidAnimation, len(keyframes))
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidAnimation, duration)
	}

	var tracks []track
	for _, name := range slices.Sorted(maps.Keys(keyframes[0])) {
		p, ok := r.props[name]
		if !ok || p.AnimateAs == NotAnimated {
			continue
		}
		t, err := r.track(name, p.AnimateAs, keyframes)
		if err != nil {
			return err
		}
		tracks = append(tracks, t)
	}
	if len(tracks) == 0 {
		return fmt.Errorf("%w: no animatable properties", ErrInvalidAnimation)
	}

	a := &animation{el: el, tracks: tracks, duration: duration}
	r.anims = slices.DeleteFunc(r.anims, func(o *animation) bool { return o.el == el })
	r.anims = append(r.anims, a)
	return r.write(a)
}

func (r *Registry) track(name string, kind Interpolation, keyframes []Keyframe) (track, error) {
	t := track{name: name, kind: kind, list: r.lists[name]}
	for i, kf := range keyframes {
		v, ok := kf[name]
		if !ok {
			return track{}, fmt.Errorf("%w: keyframe %d has no %s", ErrInvalidAnimation, i, name)
		}
		items := []string{v}
		if t.list {
			items = strings.Split(v, ",")
		}
		frame := make([]float64, len(items))
		for k, item := range items {
			f, err := kind.parse(item)
			if err != nil {
				return track{}, fmt.Errorf("%w: %s: %w", ErrInvalidAnimation, name, err)
			}
			frame[k] = f
		}
		if i > 0 && len(frame) != len(t.frames[0]) {
			return track{}, fmt.Errorf("%w: %s: keyframe %d has %d items, want %d",
				ErrInvalidAnimation, name, i, len(frame), len(t.frames[0]))
		}
		t.frames = append(t.frames, frame)
	}
	return t, nil
}

// Tick advances every running animation by dt and writes the interpolated
// values, which invalidates the animated elements' style. Animations that
// reach their duration write their last keyframe and stop.
func (r *Registry) Tick(dt time.Duration) error {
	running := r.anims[:0]
	var err error
	for _, a := range r.anims {
		a.elapsed += dt
		if werr := r.write(a); werr != nil && err == nil {
			err = werr
		}
		if a.elapsed < a.duration {
			running = append(running, a)
			continue
		}
		r.log.Debug("style: animation finished", "duration", a.duration)
	}
	clear(r.anims[len(running):])
	r.anims = running
	return err
}

func (r *Registry) write(a *animation) error {
	f := a.progress()
	for i := range a.tracks {
		t := &a.tracks[i]
		if err := r.Set(a.el, t.name, t.value(f)); err != nil {
			return err
		}
	}
	return nil
}

// Animating reports whether el has a running animation.
func (r *Registry) Animating(el layer.Element) bool {
	return slices.ContainsFunc(r.anims, func(a *animation) bool { return a.el == el })
}
