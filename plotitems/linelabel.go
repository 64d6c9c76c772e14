// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotitems

import (
	"image"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"

	"github.com/200266785/pyqtgraph/scene"
)

// InfLineLabel is a [TextItem] that attaches itself to an
// [InfiniteLine], displaying the line's current value at a fractional
// position along the visible span of the line. It observes the line's
// position-changed notifications; the subscription is established at
// construction and lives as long as the label, which lives as long as
// the line.
type InfLineLabel struct {
	TextItem

	// Line is the owning line.
	Line *InfiniteLine

	// Format is the fmt format rendering the line value.
	Format string

	// OrthoPos is the fractional position of the label along the
	// visible span of the line: 0 at one end of the view, 1 at the
	// other. It is deliberately not clamped to [0,1]: dragging can
	// park a label outside the visible span, matching long-standing
	// behavior that users position labels against.
	OrthoPos float32

	// Movable sets whether the user can drag the label along the
	// line, independently of the line's own movability.
	Movable bool

	moving        bool
	startFraction float32
	downFraction  float32
}

func newInfLineLabel(ln *InfiniteLine) *InfLineLabel {
	lbl := &InfLineLabel{Line: ln}
	scene.InitItem(lbl, ln)
	return lbl
}

func (lbl *InfLineLabel) Init() {
	lbl.TextItem.Init()
	lbl.Visible = false // shown through [InfiniteLine.ShowLabel]
	lbl.Format = "%.3g"
	lbl.OrthoPos = 0.5
	lbl.Anchor = math32.Vec2(0.5, 0.5)
	lbl.Line.OnPositionChanged(func(ln *InfiniteLine) {
		lbl.valueChanged()
	})
	lbl.valueChanged()

	lbl.On(events.SlideStart, func(e events.Event) {
		if !lbl.Movable || e.MouseButton() != events.Left {
			return
		}
		lbl.moving = true
		lbl.downFraction = lbl.posToSpanFraction(scene.EventStartPos(e))
		lbl.startFraction = lbl.OrthoPos
		e.SetHandled()
		lbl.dragTo(e)
	})
	lbl.On(events.SlideMove, func(e events.Event) {
		if !lbl.moving {
			return
		}
		e.SetHandled()
		lbl.dragTo(e)
	})
	lbl.On(events.SlideStop, func(e events.Event) {
		if !lbl.moving {
			return
		}
		e.SetHandled()
		lbl.dragTo(e)
		lbl.moving = false
	})
	lbl.On(events.MouseDown, func(e events.Event) {
		if !lbl.moving || e.MouseButton() != events.Right {
			return
		}
		e.SetHandled()
		lbl.OrthoPos = lbl.startFraction
		lbl.moving = false
		lbl.UpdatePosition()
	})
}

func (lbl *InfLineLabel) dragTo(e events.Event) {
	rel := lbl.posToSpanFraction(e.Pos())
	lbl.OrthoPos = lbl.startFraction + rel - lbl.downFraction
	lbl.UpdatePosition()
}

// SetMovable sets whether the label can be dragged along its line.
func (lbl *InfLineLabel) SetMovable(m bool) *InfLineLabel {
	lbl.Movable = m
	lbl.Pickable = m
	return lbl
}

// SetVisible shows or hides the label; becoming visible refreshes the
// text and position, which are not maintained while hidden.
func (lbl *InfLineLabel) SetVisible(v bool) {
	lbl.ItemBase.SetVisible(v)
	if v {
		lbl.valueChanged()
	}
}

// valueChanged refreshes the displayed text from the line's current
// value and repositions.
func (lbl *InfLineLabel) valueChanged() {
	if !lbl.Visible {
		return
	}
	lbl.SetText(lbl.Line.FormatValue(lbl.Format))
	lbl.UpdatePosition()
}

// spanExtent returns the horizontal extent of the view rectangle
// mapped into the line's local frame.
func (lbl *InfLineLabel) spanExtent() (lo, hi math32.Vector2, ok bool) {
	sc := lbl.Scene()
	if sc == nil {
		return lo, hi, false
	}
	vr := sc.ViewRect().MulMatrix2(lbl.Line.SceneTransform().Inverse())
	return math32.Vec2(vr.Min.X, 0), math32.Vec2(vr.Max.X, 0), true
}

// UpdatePosition places the label at the OrthoPos fraction between the
// endpoints of the line's visible span. A no-op while invisible or
// detached from a scene; a zero-width span collapses to its single
// point.
func (lbl *InfLineLabel) UpdatePosition() {
	if !lbl.Visible {
		return
	}
	lo, hi, ok := lbl.spanExtent()
	if !ok {
		return
	}
	pt := hi.MulScalar(lbl.OrthoPos).Add(lo.MulScalar(1 - lbl.OrthoPos))
	lbl.ItemBase.SetPos(pt)
	lbl.UpdateTransform()
}

// posToSpanFraction converts a device point to a fraction along the
// line's visible span. A degenerate zero-width span maps everything
// to 0, leaving drags on it inert.
func (lbl *InfLineLabel) posToSpanFraction(p image.Point) float32 {
	lo, hi, ok := lbl.spanExtent()
	if !ok {
		return 0
	}
	w := hi.X - lo.X
	if w == 0 {
		return 0
	}
	lp := lbl.MapDeviceToParent(p)
	return (lp.X - lo.X) / w
}
