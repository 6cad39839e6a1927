// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

// Kind identifies a drawing command. Each kind corresponds to one operation
// or attribute of a canvas-style 2-D rendering context.
type Kind uint8

const (
	// State commands
	CmdSave           Kind = iota // Push drawing state
	CmdRestore                    // Pop drawing state
	CmdScale                      // Scale the current transform
	CmdRotate                     // Rotate the current transform
	CmdTranslate                  // Translate the current transform
	CmdTransform                  // Multiply the current transform
	CmdSetTransform               // Replace the current transform
	CmdResetTransform             // Reset to the identity transform

	// Rectangle commands
	CmdClearRect  // Clear a rectangle to transparent
	CmdFillRect   // Fill a rectangle
	CmdStrokeRect // Stroke a rectangle

	// Path commands
	CmdBeginPath        // Start a new path
	CmdClosePath        // Close the current subpath
	CmdMoveTo           // Start a subpath
	CmdLineTo           // Straight segment
	CmdQuadraticCurveTo // Quadratic Bezier segment
	CmdBezierCurveTo    // Cubic Bezier segment
	CmdArcTo            // Arc tangent to two lines
	CmdRect             // Closed rectangle subpath
	CmdArc              // Circular arc

	// Path consumers
	CmdFill   // Fill the current path
	CmdStroke // Stroke the current path
	CmdClip   // Clip to the current path

	// Text
	CmdFillText   // Fill text
	CmdStrokeText // Stroke text

	CmdLineDash // Set the dash pattern

	// Properties
	CmdAlpha              // globalAlpha
	CmdCompositeOperation // globalCompositeOperation
	CmdShadowOffsetX      // shadowOffsetX
	CmdShadowOffsetY      // shadowOffsetY
	CmdShadowBlur         // shadowBlur
	CmdShadowColor        // shadowColor
	CmdLineWidth          // lineWidth
	CmdLineCap            // lineCap
	CmdLineJoin           // lineJoin
	CmdMiterLimit         // miterLimit
	CmdFont               // font
	CmdTextAlign          // textAlign
	CmdTextBaseline       // textBaseline
	CmdFillStyle          // fillStyle
	CmdStrokeStyle        // strokeStyle

	// CmdPaintSuper splits the program into the part painted below the
	// element's own rendering and the part painted above it.
	CmdPaintSuper

	kindCount
)

// kindNames maps kinds to the canvas method or attribute they mirror.
var kindNames = [...]string{
	CmdSave:               "save",
	CmdRestore:            "restore",
	CmdScale:              "scale",
	CmdRotate:             "rotate",
	CmdTranslate:          "translate",
	CmdTransform:          "transform",
	CmdSetTransform:       "setTransform",
	CmdResetTransform:     "resetTransform",
	CmdClearRect:          "clearRect",
	CmdFillRect:           "fillRect",
	CmdStrokeRect:         "strokeRect",
	CmdBeginPath:          "beginPath",
	CmdClosePath:          "closePath",
	CmdMoveTo:             "moveTo",
	CmdLineTo:             "lineTo",
	CmdQuadraticCurveTo:   "quadraticCurveTo",
	CmdBezierCurveTo:      "bezierCurveTo",
	CmdArcTo:              "arcTo",
	CmdRect:               "rect",
	CmdArc:                "arc",
	CmdFill:               "fill",
	CmdStroke:             "stroke",
	CmdClip:               "clip",
	CmdFillText:           "fillText",
	CmdStrokeText:         "strokeText",
	CmdLineDash:           "setLineDash",
	CmdAlpha:              "globalAlpha",
	CmdCompositeOperation: "globalCompositeOperation",
	CmdShadowOffsetX:      "shadowOffsetX",
	CmdShadowOffsetY:      "shadowOffsetY",
	CmdShadowBlur:         "shadowBlur",
	CmdShadowColor:        "shadowColor",
	CmdLineWidth:          "lineWidth",
	CmdLineCap:            "lineCap",
	CmdLineJoin:           "lineJoin",
	CmdMiterLimit:         "miterLimit",
	CmdFont:               "font",
	CmdTextAlign:          "textAlign",
	CmdTextBaseline:       "textBaseline",
	CmdFillStyle:          "fillStyle",
	CmdStrokeStyle:        "strokeStyle",
	CmdPaintSuper:         "paintSuper",
}

// String returns the canvas name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsProperty reports whether k assigns a single value to a named surface
// attribute rather than calling a method.
func (k Kind) IsProperty() bool {
	return k >= CmdAlpha && k <= CmdStrokeStyle
}

// Property returns the surface attribute name for property kinds.
func (k Kind) Property() (string, bool) {
	if !k.IsProperty() {
		return "", false
	}
	return kindNames[k], true
}

// IsState reports whether k mutates persistent drawing state. State
// commands are re-applied when replay moves to another surface.
func (k Kind) IsState() bool {
	switch k {
	case CmdSave, CmdRestore, CmdScale, CmdRotate, CmdTranslate,
		CmdTransform, CmdSetTransform, CmdResetTransform, CmdLineDash:
		return true
	}
	return k.IsProperty()
}

// IsPath reports whether k contributes a segment to the current path.
func (k Kind) IsPath() bool {
	return k >= CmdClosePath && k <= CmdArc
}

// IsStructural reports whether k delimits regions of the program:
// beginPath, clip and the split marker.
func (k Kind) IsStructural() bool {
	return k == CmdBeginPath || k == CmdClip || k == CmdPaintSuper
}
