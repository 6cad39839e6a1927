// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "strings"

// Op is one operation received by a Trace surface.
type Op struct {
	Command
	Property bool
}

// Trace is a Surface that records what it receives. It is useful for
// tests and for inspecting what a replay does without drawing anything.
type Trace struct {
	ops []Op
}

var _ Surface = (*Trace)(nil)

// SetProperty implements Surface.
func (t *Trace) SetProperty(k Kind, v any) error {
	t.ops = append(t.ops, Op{Command: Command{Kind: k, Args: []any{v}}, Property: true})
	return nil
}

// Invoke implements Surface.
func (t *Trace) Invoke(k Kind, args []any) error {
	t.ops = append(t.ops, Op{Command: Command{Kind: k, Args: args}})
	return nil
}

// Ops returns the received operations in order.
func (t *Trace) Ops() []Op { return t.ops }

// Reset forgets all received operations.
func (t *Trace) Reset() { t.ops = t.ops[:0] }

// String renders one operation per line; property assignments are shown
// as "name = value".
func (t *Trace) String() string {
	var sb strings.Builder
	for _, op := range t.ops {
		if op.Property {
			sb.WriteString(op.Kind.String())
			sb.WriteString(" = ")
			writeArg(&sb, op.Args[0])
		} else {
			sb.WriteString(op.Command.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
