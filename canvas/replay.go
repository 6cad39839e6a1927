// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "fmt"

// clipState is one entry of the clip stack built during replay.
type clipState struct {
	ref string
}

// Replay writes the recorded program onto real surfaces. Commands are
// applied to lower until the split marker, then to upper. At the split the
// clip reference on top of the clip stack is written onto target and every
// state command seen so far (transforms, styles, save/restore) is applied to
// upper again, so drawing state carries across the split.
//
// A clip recorded after a beginPath becomes a clip-path resource on target.
// When the program has no split marker target's clip path is removed.
// target may be nil; upper may be nil when the program has no split.
//
// Replay fails with ErrInvalidState while the buffer is writable. Replaying
// the same buffer twice yields the same sequence of surface operations.
func (b *Buffer) Replay(target ClipTarget, lower, upper Surface) error {
	if b.writable {
		return fmt.Errorf("canvas: replay while writable: %w", ErrInvalidState)
	}

	surface := lower
	split := false
	clips := []clipState{{}}
	beginPath := -1
	var state []Command

	for i, cmd := range b.commands {
		if cmd.Kind.IsState() && !split {
			state = append(state, cmd)
		}

		switch cmd.Kind {
		case CmdBeginPath:
			beginPath = i
		case CmdSave:
			clips = append(clips, clips[len(clips)-1])
		case CmdRestore:
			if len(clips) > 1 {
				clips = clips[:len(clips)-1]
			}
		case CmdClip:
			if beginPath >= 0 {
				ref, err := b.defineClip(target, b.commands[beginPath+1:i])
				if err != nil {
					return err
				}
				clips[len(clips)-1].ref = ref
			}
		case CmdPaintSuper:
			if upper == nil {
				return fmt.Errorf("canvas: split without upper surface: %w", ErrInvalidState)
			}
			if target != nil {
				target.SetClipPath(clips[len(clips)-1].ref)
			}
			surface = upper
			split = true
			for _, s := range state {
				if err := apply(surface, s); err != nil {
					return err
				}
			}
			continue
		}

		if err := apply(surface, cmd); err != nil {
			return err
		}
	}

	if !split && target != nil {
		target.SetClipPath("")
	}
	return nil
}

// defineClip builds the clip-path resource for the path commands in cmds.
// Non-path commands between beginPath and clip do not contribute.
func (b *Buffer) defineClip(target ClipTarget, cmds []Command) (string, error) {
	segs := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if c.Kind.IsPath() {
			segs = append(segs, c)
		}
	}
	data, err := PathData(segs)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", nil
	}
	return target.DefineClipPath(ClipPath{Data: data, Segments: segs}), nil
}

func apply(s Surface, c Command) error {
	var err error
	if c.Kind.IsProperty() {
		err = s.SetProperty(c.Kind, c.Args[0])
	} else {
		err = s.Invoke(c.Kind, c.Args)
	}
	if err != nil {
		return fmt.Errorf("canvas: replay %s: %w", c.Kind, err)
	}
	return nil
}
