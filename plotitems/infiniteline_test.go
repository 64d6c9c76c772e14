// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotitems

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/units"
	"github.com/stretchr/testify/assert"

	"github.com/200266785/pyqtgraph/scene"
)

// newTestScene returns a 100x100 scene whose view rectangle spans the
// same extent, so data x maps to device x and data y to device 100-y.
func newTestScene() *scene.Scene {
	return scene.NewScene(100, 100)
}

func TestAngleNormalization(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{45, 45},
		{90, 90},
		{134.9, 134.9},
		{135, -45},
		{180, 0},
		{181, 1},
		{-45, -45},
		{-60, 120},
		{-90, 90},
		{360, 0},
		{270, 90},
	}
	for _, test := range tests {
		ln.SetAngle(test.in)
		tolassert.Equal(t, test.want, ln.Angle)
	}
}

func TestBoundsClamp(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	ln.SetBounds(5, 10)

	assert.NoError(t, ln.SetValue(20))
	assert.Equal(t, float32(10), ln.Value())

	assert.NoError(t, ln.SetValue(-3))
	assert.Equal(t, float32(5), ln.Value())

	assert.NoError(t, ln.SetValue(7))
	assert.Equal(t, float32(7), ln.Value())
}

func TestSetBoundsReclamps(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	assert.NoError(t, ln.SetValue(2))
	ln.SetBounds(-1, 1)
	assert.Equal(t, float32(1), ln.Value())
}

func TestSetPosIdempotent(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	n := 0
	ln.OnPositionChanged(func(*InfiniteLine) { n++ })

	assert.NoError(t, ln.SetValue(7))
	assert.Equal(t, 1, n)

	assert.NoError(t, ln.SetValue(7))
	assert.Equal(t, 1, n)

	assert.NoError(t, ln.SetValue(8))
	assert.Equal(t, 2, n)

	// a clamp landing on the current position is a complete no-op
	ln.SetBounds(0, 8)
	assert.Equal(t, 2, n)
	assert.NoError(t, ln.SetValue(20))
	assert.Equal(t, 2, n)
}

func TestSetValueDiagonal(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	ln.SetAngle(45)
	assert.ErrorIs(t, ln.SetValue(1), ErrNeed2D)
	assert.Equal(t, float32(0), ln.Value())
}

func TestFormatValue(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	assert.NoError(t, ln.SetValue(2))
	assert.Equal(t, "x=2.00", ln.FormatValue("x=%0.2f"))

	ln.SetAngle(45)
	ln.SetPos(math32.Vec2(1.5, 2.5))
	assert.Equal(t, "(1.5, 2.5)", ln.FormatValue("%g"))
}

func TestDrag(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).SetMovable(true)
	assert.NoError(t, ln.SetValue(50))

	drags, finished := 0, 0
	ln.OnDragged(func(*InfiniteLine) { drags++ })
	ln.OnChangeFinished(func(*InfiniteLine) { finished++ })

	sc.MouseDown(image.Pt(50, 50), events.Left)
	sc.MouseMove(image.Pt(60, 50))
	tolassert.Equal(t, 60, ln.Value())

	sc.MouseMove(image.Pt(65, 50))
	tolassert.Equal(t, 65, ln.Value())

	sc.MouseUp(image.Pt(65, 50), events.Left)
	tolassert.Equal(t, 65, ln.Value())
	assert.Equal(t, 3, drags)
	assert.Equal(t, 1, finished)
}

func TestDragCancel(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).SetMovable(true)
	assert.NoError(t, ln.SetValue(50))

	finished := 0
	ln.OnChangeFinished(func(*InfiniteLine) { finished++ })

	sc.MouseDown(image.Pt(50, 50), events.Left)
	sc.MouseMove(image.Pt(60, 50))
	tolassert.Equal(t, 60, ln.Value())

	// right press during the drag restores the pre-drag position
	sc.MouseDown(image.Pt(60, 50), events.Right)
	tolassert.Equal(t, 50, ln.Value())
	assert.Equal(t, 1, finished)

	// the remaining motion of the dead drag is inert
	sc.MouseMove(image.Pt(70, 50))
	tolassert.Equal(t, 50, ln.Value())
	sc.MouseUp(image.Pt(70, 50), events.Left)
	tolassert.Equal(t, 50, ln.Value())
	assert.Equal(t, 1, finished)
}

func TestDragClamped(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).SetMovable(true).SetBounds(40, 55)
	assert.NoError(t, ln.SetValue(50))

	sc.MouseDown(image.Pt(50, 50), events.Left)
	sc.MouseMove(image.Pt(80, 50))
	tolassert.Equal(t, 55, ln.Value())
	sc.MouseUp(image.Pt(80, 50), events.Left)
	tolassert.Equal(t, 55, ln.Value())
}

func TestImmovableIgnoresPointer(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	assert.NoError(t, ln.SetValue(50))

	sc.MouseDown(image.Pt(50, 50), events.Left)
	sc.MouseMove(image.Pt(60, 50))
	sc.MouseUp(image.Pt(60, 50), events.Left)
	tolassert.Equal(t, 50, ln.Value())
}

func TestHoverPen(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).SetMovable(true)
	assert.NoError(t, ln.SetValue(50))

	assert.Same(t, &ln.Pen, ln.CurrentPen())
	sc.MouseMove(image.Pt(50, 50))
	assert.Same(t, &ln.HoverPen, ln.CurrentPen())
	sc.MouseMove(image.Pt(5, 50))
	assert.Same(t, &ln.Pen, ln.CurrentPen())
}

func TestValueRoundTrip(t *testing.T) {
	sc := newTestScene()
	v := NewInfiniteLine(sc.Root)
	h := NewInfiniteLine(sc.Root).SetAngle(0)
	for _, val := range []float32{-3, 0, 7.25, 42} {
		assert.NoError(t, v.SetValue(val))
		assert.Equal(t, val, v.Value())
		assert.NoError(t, h.SetValue(val))
		assert.Equal(t, val, h.Value())
	}
	tolassert.Equal(t, 42, v.XPos())
	tolassert.Equal(t, 42, h.YPos())
}

func TestPenIsolation(t *testing.T) {
	sc := newTestScene()
	a := NewInfiniteLine(sc.Root)
	b := NewInfiniteLine(sc.Root)
	before := b.BoundingRect()

	a.Pen.SetColor(color.RGBA{255, 0, 0, 255})
	a.SetPenWidth(units.Dp(20))
	assert.NotEqual(t, a.Pen.Color, b.Pen.Color)
	assert.Equal(t, before, b.BoundingRect())
	assert.NotEqual(t, before, a.BoundingRect())
}

func TestLineSegmentSpansView(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	assert.NoError(t, ln.SetValue(20))

	// a vertical line's local x axis runs along data y
	p1, p2 := ln.LineSegment()
	tolassert.Equal(t, 100, p1.X)
	tolassert.Equal(t, 0, p2.X)
	tolassert.Equal(t, 0, p1.Y)
	tolassert.Equal(t, 0, p2.Y)

	// the cached geometry follows view changes
	sc.SetViewRect(math32.B2(0, 0, 100, 200))
	p1, p2 = ln.LineSegment()
	tolassert.Equal(t, 200, p1.X)
	tolassert.Equal(t, 0, p2.X)
}

func TestBoundingRectMargin(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	assert.NoError(t, ln.SetValue(50))

	// 1:1 view, 1dp pens: the orthogonal margin is max(4, 0.5) + 1
	br := ln.BoundingRect()
	tolassert.Equal(t, -5, br.Min.Y)
	tolassert.Equal(t, 5, br.Max.Y)
	tolassert.Equal(t, 0, br.Min.X)
	tolassert.Equal(t, 100, br.Max.X)
}
