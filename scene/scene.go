// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/units"
)

// Scene is the root of an item tree together with the view state that
// maps data coordinates to device pixels. All mutation and event
// routing is synchronous and single-threaded: notifications are
// delivered before the call that triggered them returns.
type Scene struct {
	// Root is the root group; its children live in data coordinates.
	Root *Group

	// Measurer provides text extents for label items. It defaults to
	// [FixedMetrics] so label geometry works headless; renderers
	// install a real measurer.
	Measurer TextMeasurer

	// UnitContext resolves unit values (pen widths, font sizes) to
	// device dots.
	UnitContext units.Context

	deviceSize   image.Point
	viewRect     math32.Box2
	viewRotation float32

	view      math32.Matrix2
	viewValid bool

	// pointer routing state
	hover   Item
	down    Item
	downBut events.Buttons
	downPt  image.Point
	lastPt  image.Point
	sliding bool
}

// NewScene returns a new scene with the given device size in pixels.
// The initial view rectangle spans the same extent as the device.
func NewScene(width, height int) *Scene {
	sc := &Scene{}
	sc.Root = &Group{}
	InitItem(sc.Root, nil)
	sc.Root.scene = sc
	sc.Measurer = &FixedMetrics{}
	sc.UnitContext.Defaults()
	sc.deviceSize = image.Pt(width, height)
	sc.viewRect = math32.B2(0, 0, float32(width), float32(height))
	return sc
}

// DeviceSize returns the device size in pixels.
func (sc *Scene) DeviceSize() image.Point { return sc.deviceSize }

// SetDeviceSize resizes the device viewport, invalidating the view
// transform and notifying all items.
func (sc *Scene) SetDeviceSize(width, height int) {
	sz := image.Pt(width, height)
	if sz == sc.deviceSize {
		return
	}
	sc.deviceSize = sz
	sc.viewChanged()
}

// ViewRect returns the currently visible rectangle of data space.
func (sc *Scene) ViewRect() math32.Box2 { return sc.viewRect }

// SetViewRect sets the visible data rectangle, invalidating the view
// transform and notifying all items.
func (sc *Scene) SetViewRect(b math32.Box2) {
	if b == sc.viewRect {
		return
	}
	sc.viewRect = b
	sc.viewChanged()
}

// ViewRotation returns the view rotation in degrees.
func (sc *Scene) ViewRotation() float32 { return sc.viewRotation }

// SetViewRotation sets a rotation of the view about the device center,
// in degrees.
func (sc *Scene) SetViewRotation(deg float32) {
	if deg == sc.viewRotation {
		return
	}
	sc.viewRotation = deg
	sc.viewChanged()
}

// Pan shifts the view rectangle by the given data-space offset.
func (sc *Scene) Pan(delta math32.Vector2) {
	sc.SetViewRect(sc.viewRect.Translate(delta))
}

// Zoom scales the view rectangle about its center by the given factor:
// factors > 1 zoom out (more data visible), < 1 zoom in.
func (sc *Scene) Zoom(factor float32) {
	ctr := sc.viewRect.Center()
	half := sc.viewRect.Size().MulScalar(0.5 * factor)
	sc.SetViewRect(math32.Box2{Min: ctr.Sub(half), Max: ctr.Add(half)})
}

// ViewTransform returns the transform mapping data coordinates to
// device pixels: y grows downward on the device, upward in data space.
// It is computed lazily and cached until the view changes.
func (sc *Scene) ViewTransform() math32.Matrix2 {
	if sc.viewValid {
		return sc.view
	}
	vsz := sc.viewRect.Size()
	sx, sy := float32(1), float32(1)
	if vsz.X != 0 {
		sx = float32(sc.deviceSize.X) / vsz.X
	}
	if vsz.Y != 0 {
		sy = float32(sc.deviceSize.Y) / vsz.Y
	}
	xf := math32.Translate2D(0, float32(sc.deviceSize.Y)).
		Mul(math32.Scale2D(sx, -sy)).
		Mul(math32.Translate2D(-sc.viewRect.Min.X, -sc.viewRect.Min.Y))
	if sc.viewRotation != 0 {
		cx := float32(sc.deviceSize.X) / 2
		cy := float32(sc.deviceSize.Y) / 2
		rot := math32.Translate2D(cx, cy).
			Mul(math32.Rotate2D(math32.DegToRad(sc.viewRotation))).
			Mul(math32.Translate2D(-cx, -cy))
		xf = rot.Mul(xf)
	}
	sc.view = xf
	sc.viewValid = true
	return sc.view
}

// viewChanged invalidates the cached view transform and synchronously
// notifies every item in the tree.
func (sc *Scene) viewChanged() {
	sc.viewValid = false
	WalkDown(sc.Root, false, func(it Item) bool {
		it.ViewTransformChanged()
		return true
	})
}

// PixelSize returns the length, in the given item's local units, of
// one device pixel along the local x and y directions.
func (sc *Scene) PixelSize(it Item) math32.Vector2 {
	inv := it.AsItem().DeviceTransform().Inverse()
	return math32.Vec2(
		inv.MulVector2AsVector(math32.Vec2(1, 0)).Length(),
		inv.MulVector2AsVector(math32.Vec2(0, 1)).Length(),
	)
}

// OrthoPixelLength returns the length, in the item's local units, of
// one device pixel orthogonal to the given local direction. Returns 0
// for a degenerate (non-invertible) mapping.
func (sc *Scene) OrthoPixelLength(it Item, dir math32.Vector2) float32 {
	xf := it.AsItem().DeviceTransform()
	dev := xf.MulVector2AsVector(dir)
	if dev.Length() == 0 {
		return 0
	}
	ortho := math32.Vec2(-dev.Y, dev.X).Normal()
	return xf.Inverse().MulVector2AsVector(ortho).Length()
}

// Dots resolves a unit value to device dots in this scene's unit
// context.
func (sc *Scene) Dots(v *units.Value) float32 {
	return v.ToDots(&sc.UnitContext)
}

// MeasureText returns the rendered extent and ascent of the given text
// at the given style, in device pixels.
func (sc *Scene) MeasureText(text string, ts *TextStyle) (size math32.Vector2, ascent float32) {
	fs := sc.Dots(&ts.Size)
	w, h, asc := sc.Measurer.MeasureText(text, fs)
	return math32.Vec2(w, h), asc
}

// textUpdater is implemented by items whose geometry depends on text
// measurement.
type textUpdater interface {
	UpdateText()
}

// SetMeasurer installs a text measurer and re-measures every item in
// the tree that holds text, so geometry computed against the previous
// measurer does not go stale.
func (sc *Scene) SetMeasurer(m TextMeasurer) {
	sc.Measurer = m
	WalkDown(sc.Root, false, func(it Item) bool {
		if tu, ok := it.(textUpdater); ok {
			tu.UpdateText()
		}
		return true
	})
}
