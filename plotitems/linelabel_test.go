// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotitems

import (
	"image"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestLabelPosition(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).ShowLabel(true)
	assert.NoError(t, ln.SetValue(20))
	lbl := ln.Label

	// the default fraction is the middle of the visible span; the
	// span runs along local x, which for a vertical line is data y
	tolassert.Equal(t, 0.5, lbl.OrthoPos)
	tolassert.Equal(t, 50, lbl.Pos.X)
	tolassert.Equal(t, 0, lbl.Pos.Y)

	data := ln.MapToParent(lbl.Pos)
	tolassert.Equal(t, 20, data.X)
	tolassert.Equal(t, 50, data.Y)

	for _, test := range []struct{ frac, want float32 }{
		{0, 0}, {1, 100}, {0.25, 25},
		{1.5, 150}, {-0.5, -50}, // not clamped to the span
	} {
		lbl.OrthoPos = test.frac
		lbl.UpdatePosition()
		tolassert.Equal(t, test.want, lbl.Pos.X)
	}
}

func TestLabelFollowsView(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).ShowLabel(true)
	assert.NoError(t, ln.SetValue(20))

	sc.SetViewRect(math32.B2(0, 0, 100, 200))
	tolassert.Equal(t, 100, ln.Label.Pos.X)
}

func TestLabelText(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).ShowLabel(true)
	assert.NoError(t, ln.SetValue(2))
	assert.Equal(t, "2", ln.Label.Text)

	ln.SetLabelFormat("x=%0.2f")
	assert.Equal(t, "x=2.00", ln.Label.Text)

	assert.NoError(t, ln.SetValue(3))
	assert.Equal(t, "x=3.00", ln.Label.Text)
}

func TestLabelHiddenNotMaintained(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root)
	assert.NoError(t, ln.SetValue(2))
	assert.Equal(t, "", ln.Label.Text)

	// showing refreshes text and position in one step
	ln.ShowLabel(true)
	assert.Equal(t, "2", ln.Label.Text)
	tolassert.Equal(t, 50, ln.Label.Pos.X)
}

func TestLabelZeroSpan(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).ShowLabel(true)
	assert.NoError(t, ln.SetValue(50))
	lbl := ln.Label

	// a zero-height view collapses a vertical line's span to a point
	sc.SetViewRect(math32.B2(0, 50, 100, 50))
	lbl.OrthoPos = 0.75
	lbl.UpdatePosition()
	tolassert.Equal(t, 50, lbl.Pos.X)

	assert.Equal(t, float32(0), lbl.posToSpanFraction(image.Pt(30, 20)))
}

func TestLabelDrag(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).SetDraggableLabel(true).ShowLabel(true)
	assert.NoError(t, ln.SetValue(50))
	lbl := ln.Label

	// the label sits at device (50, 50); dragging down the screen is
	// dragging toward lower data y, so the fraction decreases
	sc.MouseDown(image.Pt(50, 50), events.Left)
	sc.MouseMove(image.Pt(50, 60))
	tolassert.Equal(t, 0.4, lbl.OrthoPos)
	sc.MouseUp(image.Pt(50, 60), events.Left)
	tolassert.Equal(t, 0.4, lbl.OrthoPos)

	// the line itself did not move
	tolassert.Equal(t, 50, ln.Value())
}

func TestLabelDragCancel(t *testing.T) {
	sc := newTestScene()
	ln := NewInfiniteLine(sc.Root).SetDraggableLabel(true).ShowLabel(true)
	assert.NoError(t, ln.SetValue(50))
	lbl := ln.Label

	sc.MouseDown(image.Pt(50, 50), events.Left)
	sc.MouseMove(image.Pt(50, 80))
	tolassert.Equal(t, 0.2, lbl.OrthoPos)

	sc.MouseDown(image.Pt(50, 80), events.Right)
	tolassert.Equal(t, 0.5, lbl.OrthoPos)
}
