// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotitems provides interactive plot items: infinite
// reference lines, screen-size-invariant text labels, and linear
// region selections, living in a [scene.Scene].
package plotitems

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/styles/units"

	"github.com/200266785/pyqtgraph/scene"
)

// ErrNeed2D is returned when a scalar position is applied to a line
// that is not vertical or horizontal.
var ErrNeed2D = errors.New("plotitems: non-orthogonal line requires a 2D coordinate")

// InfiniteLine is a line of unbounded extent at a configurable angle,
// optionally draggable by the user within optional bounds, with
// separate resting and hover pens and an attached [InfLineLabel].
//
// Position changes, drags and drag completion are reported through
// observer callbacks registered with [InfiniteLine.OnPositionChanged],
// [InfiniteLine.OnDragged] and [InfiniteLine.OnChangeFinished]; all
// notifications are delivered synchronously, before the mutating call
// returns.
type InfiniteLine struct {
	scene.ItemBase

	// Angle is the line angle in degrees in the parent frame,
	// normalized to [-45, 135): 0 is horizontal, 90 vertical.
	// Set with [InfiniteLine.SetAngle].
	Angle float32

	// Bounds optionally clamps the scalar position of a vertical or
	// horizontal line: FixMin / FixMax enable each end independently.
	Bounds minmax.Range32

	// Movable gates dragging and hover feedback.
	Movable bool

	// Pen is the resting stroke style.
	Pen scene.Pen

	// HoverPen is the stroke style while the pointer hovers over a
	// movable line.
	HoverPen scene.Pen

	// Label is the floating value label attached to this line. It is
	// created with the line and lives exactly as long as it does.
	Label *InfLineLabel

	hovered       bool
	moving        bool
	cursorOffset  math32.Vector2
	startPosition math32.Vector2

	geom *lineGeom

	positionChanged []func(ln *InfiniteLine)
	dragged         []func(ln *InfiniteLine)
	changeFinished  []func(ln *InfiniteLine)
}

// lineGeom is the cached derived geometry of the line in local
// coordinates: valid as a whole or absent as a whole.
type lineGeom struct {
	bounds math32.Box2
	seg    [2]math32.Vector2
}

// NewInfiniteLine returns a new vertical movable-off line added to
// the given parent.
func NewInfiniteLine(parent scene.Item) *InfiniteLine {
	ln := &InfiniteLine{}
	scene.InitItem(ln, parent)
	return ln
}

func (ln *InfiniteLine) Init() {
	ln.ItemBase.Init()
	ln.Pen = scene.NewPen(color.RGBA{200, 200, 100, 255})
	ln.HoverPen = scene.NewPen(color.RGBA{255, 0, 0, 255})
	ln.HoverPen.Width = ln.Pen.Width
	ln.SetAngle(90)

	ln.Label = newInfLineLabel(ln)

	ln.On(events.SlideStart, func(e events.Event) {
		if !ln.Movable || e.MouseButton() != events.Left {
			return
		}
		ln.moving = true
		down := ln.MapDeviceToParent(scene.EventStartPos(e))
		ln.cursorOffset = ln.Pos.Sub(down)
		ln.startPosition = ln.Pos
		e.SetHandled()
		ln.dragTo(e)
	})
	ln.On(events.SlideMove, func(e events.Event) {
		if !ln.moving {
			return
		}
		e.SetHandled()
		ln.dragTo(e)
	})
	ln.On(events.SlideStop, func(e events.Event) {
		if !ln.moving {
			return
		}
		e.SetHandled()
		ln.dragTo(e)
		ln.moving = false
		ln.sendChangeFinished()
	})
	ln.On(events.MouseDown, func(e events.Event) {
		if !ln.moving || e.MouseButton() != events.Right {
			return
		}
		e.SetHandled()
		ln.SetPos(ln.startPosition)
		ln.moving = false
		ln.sendDragged()
		ln.sendChangeFinished()
	})
	ln.On(events.MouseEnter, func(e events.Event) {
		ln.setMouseHover(ln.Movable)
	})
	ln.On(events.MouseLeave, func(e events.Event) {
		ln.setMouseHover(false)
	})
}

func (ln *InfiniteLine) dragTo(e events.Event) {
	ln.SetPos(ln.cursorOffset.Add(ln.MapDeviceToParent(e.Pos())))
	ln.sendDragged()
}

// OnPositionChanged registers f to be called synchronously whenever
// the line position changes, by drag or programmatically. The line
// never owns its observers.
func (ln *InfiniteLine) OnPositionChanged(f func(ln *InfiniteLine)) {
	ln.positionChanged = append(ln.positionChanged, f)
}

// OnDragged registers f to be called for every pointer-driven position
// update, including the restore of a cancelled drag.
func (ln *InfiniteLine) OnDragged(f func(ln *InfiniteLine)) {
	ln.dragged = append(ln.dragged, f)
}

// OnChangeFinished registers f to be called when a drag completes or
// is cancelled.
func (ln *InfiniteLine) OnChangeFinished(f func(ln *InfiniteLine)) {
	ln.changeFinished = append(ln.changeFinished, f)
}

// call order follows the event listeners convention: last registered,
// first called.
func call(ln *InfiniteLine, fs []func(*InfiniteLine)) {
	for i := len(fs) - 1; i >= 0; i-- {
		fs[i](ln)
	}
}

func (ln *InfiniteLine) sendPositionChanged() { call(ln, ln.positionChanged) }
func (ln *InfiniteLine) sendDragged()         { call(ln, ln.dragged) }
func (ln *InfiniteLine) sendChangeFinished()  { call(ln, ln.changeFinished) }

// SetAngle sets the line angle in degrees (0 horizontal, 90 vertical),
// normalized to [-45, 135), and rebuilds the rotation transform.
// Note that Value / SetValue only apply while the line is vertical or
// horizontal.
func (ln *InfiniteLine) SetAngle(degrees float32) *InfiniteLine {
	m := math32.Mod(degrees+45, 180)
	if m < 0 {
		m += 180
	}
	ln.Angle = m - 45
	ln.Transform = math32.Rotate2D(math32.DegToRad(ln.Angle))
	ln.invalidateGeom()
	return ln
}

func (ln *InfiniteLine) isHorizontal() bool { return ln.Angle == 0 }
func (ln *InfiniteLine) isVertical() bool   { return ln.Angle == 90 }

// clampPos applies the bounds to the scalar coordinate of an
// axis-aligned line. Bounds have no effect on other angles.
func (ln *InfiniteLine) clampPos(p math32.Vector2) math32.Vector2 {
	switch {
	case ln.isVertical():
		p.X = ln.clampScalar(p.X)
	case ln.isHorizontal():
		p.Y = ln.clampScalar(p.Y)
	}
	return p
}

func (ln *InfiniteLine) clampScalar(v float32) float32 {
	if ln.Bounds.FixMin && v < ln.Bounds.Min {
		v = ln.Bounds.Min
	}
	if ln.Bounds.FixMax && v > ln.Bounds.Max {
		v = ln.Bounds.Max
	}
	return v
}

// SetPos sets the line position in parent coordinates, clamped to the
// bounds for axis-aligned lines. If the resulting position equals the
// current one this is a complete no-op: no notification is sent.
func (ln *InfiniteLine) SetPos(p math32.Vector2) {
	p = ln.clampPos(p)
	if p == ln.Pos {
		return
	}
	ln.invalidateGeom()
	ln.Pos = p
	ln.sendPositionChanged()
}

// SetValue sets the scalar position of an axis-aligned line: the x
// coordinate for a vertical line, y for a horizontal one. Any other
// angle returns [ErrNeed2D].
func (ln *InfiniteLine) SetValue(v float32) error {
	switch {
	case ln.isVertical():
		ln.SetPos(math32.Vec2(v, 0))
	case ln.isHorizontal():
		ln.SetPos(math32.Vec2(0, v))
	default:
		return ErrNeed2D
	}
	return nil
}

// Value returns the scalar position of an axis-aligned line: y for a
// horizontal line, x for a vertical one. For any other angle it
// returns 0; use Pos for the full coordinate.
func (ln *InfiniteLine) Value() float32 {
	switch {
	case ln.isHorizontal():
		return ln.Pos.Y
	case ln.isVertical():
		return ln.Pos.X
	}
	return 0
}

// XPos returns the x coordinate of the line position.
func (ln *InfiniteLine) XPos() float32 { return ln.Pos.X }

// YPos returns the y coordinate of the line position.
func (ln *InfiniteLine) YPos() float32 { return ln.Pos.Y }

// FormatValue renders the line's current value through the given fmt
// format: one float verb for axis-aligned lines, both coordinates
// otherwise.
func (ln *InfiniteLine) FormatValue(format string) string {
	if ln.isHorizontal() || ln.isVertical() {
		return fmt.Sprintf(format, ln.Value())
	}
	return fmt.Sprintf("(%s, %s)",
		fmt.Sprintf(format, ln.Pos.X), fmt.Sprintf(format, ln.Pos.Y))
}

// SetBounds sets the (minimum, maximum) allowed scalar position when
// dragging an axis-aligned line, and immediately re-clamps the current
// position.
func (ln *InfiniteLine) SetBounds(min, max float32) *InfiniteLine {
	ln.Bounds.Min, ln.Bounds.Max = min, max
	ln.Bounds.FixMin, ln.Bounds.FixMax = true, true
	ln.SetPos(ln.Pos)
	return ln
}

// SetBoundsRange replaces the bounds with the given range, allowing
// either end to be left open, and re-clamps the current position.
func (ln *InfiniteLine) SetBoundsRange(r minmax.Range32) *InfiniteLine {
	ln.Bounds = r
	ln.SetPos(ln.Pos)
	return ln
}

// ClearBounds removes both bounds.
func (ln *InfiniteLine) ClearBounds() *InfiniteLine {
	ln.Bounds.FixMin, ln.Bounds.FixMax = false, false
	return ln
}

// SetMovable sets whether the line can be dragged by the user, which
// also gates hover feedback and pointer pickability.
func (ln *InfiniteLine) SetMovable(m bool) *InfiniteLine {
	ln.Movable = m
	ln.Pickable = m
	return ln
}

// SetPen sets the resting pen.
func (ln *InfiniteLine) SetPen(p scene.Pen) *InfiniteLine {
	ln.Pen = p
	return ln
}

// SetHoverPen sets the pen used while hovering. If the line is not
// movable, hovering is disabled entirely.
func (ln *InfiniteLine) SetHoverPen(p scene.Pen) *InfiniteLine {
	ln.HoverPen = p
	return ln
}

// CurrentPen returns the pen selected by the current hover state.
func (ln *InfiniteLine) CurrentPen() *scene.Pen {
	if ln.hovered {
		return &ln.HoverPen
	}
	return &ln.Pen
}

func (ln *InfiniteLine) setMouseHover(hover bool) {
	if ln.hovered == hover {
		return
	}
	ln.hovered = hover
}

func (ln *InfiniteLine) invalidateGeom() { ln.geom = nil }

// BoundingRect returns the cached local bounding rectangle: the view
// rectangle mapped into the line frame, expanded orthogonally by a
// pointer-interaction margin of max(4, half either pen width) + 1
// device pixels.
func (ln *InfiniteLine) BoundingRect() math32.Box2 {
	if ln.geom == nil {
		ln.geom = ln.computeGeom()
	}
	return ln.geom.bounds
}

// LineSegment returns the cached visible span of the line in local
// coordinates, from the right edge of the view to the left.
func (ln *InfiniteLine) LineSegment() (p1, p2 math32.Vector2) {
	if ln.geom == nil {
		ln.geom = ln.computeGeom()
	}
	return ln.geom.seg[0], ln.geom.seg[1]
}

func (ln *InfiniteLine) computeGeom() *lineGeom {
	g := &lineGeom{}
	sc := ln.Scene()
	if sc == nil {
		return g
	}
	br := sc.ViewRect().MulMatrix2(ln.SceneTransform().Inverse())
	px := sc.OrthoPixelLength(ln, math32.Vec2(1, 0))
	pw := sc.Dots(&ln.Pen.Width)
	hw := sc.Dots(&ln.HoverPen.Width)
	w := (math32.Max(4, math32.Max(pw/2, hw/2)) + 1) * px
	br.Min.Y = -w
	br.Max.Y = w
	g.bounds = br.Canon()
	g.seg[0] = math32.Vec2(g.bounds.Max.X, 0)
	g.seg[1] = math32.Vec2(g.bounds.Min.X, 0)
	return g
}

// Paint draws the visible span with the current pen.
func (ln *InfiniteLine) Paint(pt scene.Painter) {
	p1, p2 := ln.LineSegment()
	pt.Line(p1, p2, ln.CurrentPen())
}

// DataBounds: the line never influences auto-ranging along its own
// axis, and occupies a zero range orthogonally.
func (ln *InfiniteLine) DataBounds(axis scene.Axis) (minmax.F32, bool) {
	if axis == scene.X {
		return minmax.F32{}, false
	}
	return minmax.F32{}, true
}

// ViewTransformChanged invalidates the cached geometry and repositions
// the label against the new view.
func (ln *InfiniteLine) ViewTransformChanged() {
	ln.invalidateGeom()
	ln.Label.UpdatePosition()
}

// ShowLabel sets whether the value label is displayed next to the line.
func (ln *InfiniteLine) ShowLabel(show bool) *InfiniteLine {
	ln.Label.SetVisible(show)
	return ln
}

// SetLabelFormat sets the fmt format used to render the line value in
// the label.
func (ln *InfiniteLine) SetLabelFormat(format string) *InfiniteLine {
	ln.Label.Format = format
	ln.Label.valueChanged()
	return ln
}

// SetTextLocation sets where the label sits: position is the fraction
// along the visible span of the line, shift the anchor fraction across
// it.
func (ln *InfiniteLine) SetTextLocation(position, shift float32) *InfiniteLine {
	ln.Label.OrthoPos = position
	ln.Label.SetAnchor(math32.Vec2(0.5, shift))
	ln.Label.UpdatePosition()
	return ln
}

// SetDraggableLabel sets whether the user can relocate the label along
// the line while dragging it.
func (ln *InfiniteLine) SetDraggableLabel(m bool) *InfiniteLine {
	ln.Label.SetMovable(m)
	return ln
}

// SetPenWidth is a convenience setting both pen widths.
func (ln *InfiniteLine) SetPenWidth(w units.Value) *InfiniteLine {
	ln.Pen.Width = w
	ln.HoverPen.Width = w
	ln.invalidateGeom()
	return ln
}
