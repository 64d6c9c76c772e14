// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotitems

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"github.com/200266785/pyqtgraph/scene"
)

// TextItem displays unscaled text: the glyphs keep a fixed device size
// and orientation no matter how the view is panned, zoomed or rotated.
// This is achieved by re-deriving the item's local transform as the
// inverse of the parent's cumulative device transform (translation
// zeroed) whenever that transform changes; an unchanged parent
// transform short-circuits the update.
type TextItem struct {
	scene.ItemBase

	// Text is the displayed string.
	Text string

	// Style is the color and size of the glyphs.
	Style scene.TextStyle

	// Anchor picks the fraction of the text bounding box that sits at
	// the item position: (0,0) the top-left corner, (1,1) the
	// bottom-right.
	Anchor math32.Vector2

	// Border is the pen for an optional frame around the text; a nil
	// pen color draws no frame.
	Border scene.Pen

	// Fill is an optional brush filling the text bounding box
	// behind the glyphs; nil fills nothing.
	Fill image.Image

	// TextAngle is an intrinsic rotation of the text in degrees,
	// applied on top of the unscaling transform.
	TextAngle float32

	textOffset math32.Vector2
	textSize   math32.Vector2

	lastTransform math32.Matrix2
	lastValid     bool
}

// NewTextItem returns a new empty text item added to the given parent.
func NewTextItem(parent scene.Item) *TextItem {
	ti := &TextItem{}
	scene.InitItem(ti, parent)
	return ti
}

func (ti *TextItem) Init() {
	ti.ItemBase.Init()
	ti.Style.Defaults()
	ti.Border = scene.Pen{} // off
	ti.Border.Width.Dp(1)
}

// SetText sets the displayed text and re-measures.
func (ti *TextItem) SetText(text string) *TextItem {
	ti.Text = text
	ti.UpdateText()
	return ti
}

// SetColor sets the glyph color.
func (ti *TextItem) SetColor(c color.Color) *TextItem {
	ti.Style.Color = colors.Uniform(c)
	return ti
}

// SetAnchor sets the anchor fraction and recomputes the text offset.
func (ti *TextItem) SetAnchor(a math32.Vector2) *TextItem {
	ti.Anchor = a
	ti.UpdateText()
	return ti
}

// SetFill sets the background fill brush.
func (ti *TextItem) SetFill(c color.Color) *TextItem {
	ti.Fill = colors.Uniform(c)
	return ti
}

// SetBorder sets the frame pen.
func (ti *TextItem) SetBorder(p scene.Pen) *TextItem {
	ti.Border = p
	return ti
}

// SetTextAngle sets the intrinsic rotation of the text in degrees.
func (ti *TextItem) SetTextAngle(deg float32) *TextItem {
	ti.TextAngle = deg
	ti.lastValid = false
	ti.UpdateTransform()
	return ti
}

// UpdateText re-measures the text and repositions it so that the
// anchor fraction of its bounding box lands at the item's local
// origin.
func (ti *TextItem) UpdateText() {
	sc := ti.Scene()
	if sc == nil {
		return
	}
	sz, _ := sc.MeasureText(ti.Text, &ti.Style)
	ti.textSize = sz
	ti.textOffset = math32.Vec2(-sz.X*ti.Anchor.X, -sz.Y*ti.Anchor.Y)
}

// UpdateTransform re-derives the local transform so that the item's
// device frame has identity scale and rotation: the inverse of the
// parent's cumulative device transform with its translation zeroed.
// If the parent transform is unchanged since the last update, this
// returns immediately.
func (ti *TextItem) UpdateTransform() {
	pt := math32.Identity2()
	if sc := ti.Scene(); sc != nil {
		pt = sc.ViewTransform().Mul(ti.ParentSceneTransform())
	}
	if ti.lastValid && pt == ti.lastTransform {
		return
	}
	t := pt.Inverse()
	t.X0, t.Y0 = 0, 0
	if ti.TextAngle != 0 {
		t = t.Mul(math32.Rotate2D(math32.DegToRad(ti.TextAngle)))
	}
	ti.Transform = t
	ti.lastTransform = pt
	ti.lastValid = true
}

// BoundingRect returns the text bounding box in local (device-scaled)
// units.
func (ti *TextItem) BoundingRect() math32.Box2 {
	return math32.Box2{Min: ti.textOffset, Max: ti.textOffset.Add(ti.textSize)}
}

// ViewTransformChanged re-derives the unscaling transform.
func (ti *TextItem) ViewTransformChanged() {
	ti.UpdateTransform()
}

// Paint draws the optional frame and fill, then the text. The
// unscaling transform is refreshed first: an item constructed after
// the last view change has never seen a transform notification. The
// memoized short-circuit keeps this O(1) when nothing changed.
func (ti *TextItem) Paint(pt scene.Painter) {
	ti.UpdateTransform()
	br := ti.BoundingRect()
	if ti.Border.Color != nil || ti.Fill != nil {
		pts := []math32.Vector2{
			br.Min,
			math32.Vec2(br.Max.X, br.Min.Y),
			br.Max,
			math32.Vec2(br.Min.X, br.Max.Y),
		}
		pt.Polygon(pts, &ti.Border, ti.Fill)
	}
	pt.Text(ti.Text, ti.textOffset, &ti.Style)
}
