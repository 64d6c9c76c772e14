// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/styles/units"
)

// Pen contains the properties for stroking a line. It is a plain
// configuration struct with typed fields; a zero Pen (nil Color)
// draws nothing.
type Pen struct {
	// Color is the stroke color image; stroking is off if nil.
	Color image.Image

	// Width is the stroke width, resolved to device dots through the
	// scene unit context. Pens are cosmetic: the width is in device
	// pixels regardless of the view scale.
	Width units.Value

	// Dashes are the stroke dashes: pairs of paint / skip lengths in
	// device dots. Empty for a solid line.
	Dashes []float32
}

// NewPen returns a solid pen of the given color with the default width.
func NewPen(c color.Color) Pen {
	p := Pen{}
	p.Defaults()
	p.Color = colors.Uniform(c)
	return p
}

// Defaults sets a 1dp solid white pen.
func (p *Pen) Defaults() {
	p.Color = colors.Uniform(color.RGBA{255, 255, 255, 255})
	p.Width.Dp(1)
	p.Dashes = nil
}

// SetColor sets the stroke color.
func (p *Pen) SetColor(c color.Color) *Pen {
	p.Color = colors.Uniform(c)
	return p
}

// SetWidth sets the stroke width.
func (p *Pen) SetWidth(w units.Value) *Pen {
	p.Width = w
	return p
}

// SetDashes sets the stroke dash pattern.
func (p *Pen) SetDashes(dashes ...float32) *Pen {
	p.Dashes = dashes
	return p
}

// TextStyle contains the properties for rendering a text label.
type TextStyle struct {
	// Color is the fill color for the glyphs.
	Color image.Image

	// Size is the font size, resolved through the scene unit context.
	Size units.Value
}

// Defaults sets a 14dp near-white text style.
func (ts *TextStyle) Defaults() {
	ts.Color = colors.Uniform(color.RGBA{200, 200, 200, 255})
	ts.Size.Dp(14)
}
