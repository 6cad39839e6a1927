// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"math"
)

// argType is the predicate a single command argument must satisfy.
type argType uint8

const (
	argNumber  argType = iota // finite float64
	argString                 // string
	argBool                   // bool
	argNumbers                // []float64 of finite, non-negative values
)

func (t argType) String() string {
	switch t {
	case argNumber:
		return "number"
	case argString:
		return "string"
	case argBool:
		return "bool"
	case argNumbers:
		return "[]number"
	}
	return "?"
}

// schema describes the argument list of a kind. The last optional
// arguments may be omitted.
type schema struct {
	args     []argType
	optional int
}

var (
	noArgs     = schema{}
	oneNumber  = schema{args: []argType{argNumber}}
	twoNumbers = schema{args: []argType{argNumber, argNumber}}
	fourNumber = schema{args: []argType{argNumber, argNumber, argNumber, argNumber}}
	sixNumbers = schema{args: []argType{argNumber, argNumber, argNumber, argNumber, argNumber, argNumber}}
	oneString  = schema{args: []argType{argString}}
	textArgs   = schema{args: []argType{argString, argNumber, argNumber, argNumber}, optional: 1}
)

var schemas = [kindCount]schema{
	CmdSave:               noArgs,
	CmdRestore:            noArgs,
	CmdScale:              twoNumbers,
	CmdRotate:             oneNumber,
	CmdTranslate:          twoNumbers,
	CmdTransform:          sixNumbers,
	CmdSetTransform:       sixNumbers,
	CmdResetTransform:     noArgs,
	CmdClearRect:          fourNumber,
	CmdFillRect:           fourNumber,
	CmdStrokeRect:         fourNumber,
	CmdBeginPath:          noArgs,
	CmdClosePath:          noArgs,
	CmdMoveTo:             twoNumbers,
	CmdLineTo:             twoNumbers,
	CmdQuadraticCurveTo:   fourNumber,
	CmdBezierCurveTo:      sixNumbers,
	CmdArcTo:              {args: []argType{argNumber, argNumber, argNumber, argNumber, argNumber}},
	CmdRect:               fourNumber,
	CmdArc:                {args: []argType{argNumber, argNumber, argNumber, argNumber, argNumber, argBool}, optional: 1},
	CmdFill:               noArgs,
	CmdStroke:             noArgs,
	CmdClip:               noArgs,
	CmdFillText:           textArgs,
	CmdStrokeText:         textArgs,
	CmdLineDash:           {args: []argType{argNumbers}},
	CmdAlpha:              oneNumber,
	CmdCompositeOperation: oneString,
	CmdShadowOffsetX:      oneNumber,
	CmdShadowOffsetY:      oneNumber,
	CmdShadowBlur:         oneNumber,
	CmdShadowColor:        oneString,
	CmdLineWidth:          oneNumber,
	CmdLineCap:            oneString,
	CmdLineJoin:           oneString,
	CmdMiterLimit:         oneNumber,
	CmdFont:               oneString,
	CmdTextAlign:          oneString,
	CmdTextBaseline:       oneString,
	CmdFillStyle:          oneString,
	CmdStrokeStyle:        oneString,
	CmdPaintSuper:         noArgs,
}

// validate checks args against the schema of k and returns a normalized
// copy: integer and float32 numbers become float64, number lists are copied.
func validate(k Kind, args []any) ([]any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("canvas: kind %d: %w", k, ErrInvalidArguments)
	}
	s := schemas[k]
	if len(args) > len(s.args) || len(args) < len(s.args)-s.optional {
		return nil, fmt.Errorf("canvas: %s: got %d arguments, want %d: %w",
			k, len(args), len(s.args), ErrInvalidArguments)
	}
	if len(args) == 0 {
		return nil, nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		v, ok := coerce(s.args[i], a)
		if !ok {
			return nil, fmt.Errorf("canvas: %s: argument %d is %T, want %s: %w",
				k, i, a, s.args[i], ErrInvalidArguments)
		}
		out[i] = v
	}
	return out, nil
}

func coerce(t argType, a any) (any, bool) {
	switch t {
	case argNumber:
		f, ok := toFloat(a)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return f, true
	case argString:
		s, ok := a.(string)
		return s, ok
	case argBool:
		b, ok := a.(bool)
		return b, ok
	case argNumbers:
		src, ok := a.([]float64)
		if !ok {
			return nil, false
		}
		dst := make([]float64, len(src))
		for i, f := range src {
			if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, false
			}
			dst[i] = f
		}
		return dst, true
	}
	return nil, false
}

func toFloat(a any) (float64, bool) {
	switch v := a.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
