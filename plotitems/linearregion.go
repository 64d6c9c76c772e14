// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotitems

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"

	"github.com/200266785/pyqtgraph/scene"
)

// Orientations are the two axis alignments of a [LinearRegionItem].
type Orientations int32

const (
	// Vertical spans a range of x values: the edges are vertical lines.
	Vertical Orientations = iota

	// Horizontal spans a range of y values.
	Horizontal
)

// LinearRegionItem marks a region of the plot along one axis, bounded
// by two [InfiniteLine] edges. The edges can be dragged individually,
// and a movable region can be dragged as a unit, preserving its width.
type LinearRegionItem struct {
	scene.ItemBase

	// Orientation selects which axis the region spans.
	Orientation Orientations

	// Lines are the two edge lines. Their order is construction
	// order; use [LinearRegionItem.Region] for the sorted range.
	Lines [2]*InfiniteLine

	// Brush fills the region between the edges.
	Brush image.Image

	// HoverBrush fills the region while the pointer hovers over a
	// movable region.
	HoverBrush image.Image

	// Movable sets whether the region can be dragged as a unit.
	Movable bool

	hovered     bool
	moving      bool
	startValues [2]float32
	downCoord   float32
	settingSelf bool

	regionChanged  []func(r *LinearRegionItem)
	changeFinished []func(r *LinearRegionItem)
}

// NewLinearRegionItem returns a new region with the given orientation,
// added to the given parent, spanning [0, 1].
func NewLinearRegionItem(parent scene.Item, orient Orientations) *LinearRegionItem {
	r := &LinearRegionItem{Orientation: orient}
	scene.InitItem(r, parent)
	return r
}

func (r *LinearRegionItem) Init() {
	r.ItemBase.Init()
	r.Brush = colors.Uniform(color.RGBA{0, 0, 255, 50})
	r.HoverBrush = colors.Uniform(color.RGBA{0, 0, 255, 80})

	angle := float32(90)
	if r.Orientation == Horizontal {
		angle = 0
	}
	for i := range r.Lines {
		ln := NewInfiniteLine(r)
		ln.SetAngle(angle)
		ln.SetMovable(true)
		ln.SetValue(float32(i))
		ln.Label.SetVisible(false)
		ln.OnPositionChanged(func(*InfiniteLine) {
			if !r.settingSelf {
				r.sendRegionChanged()
			}
		})
		ln.OnChangeFinished(func(*InfiniteLine) {
			if !r.settingSelf {
				r.sendChangeFinished()
			}
		})
		r.Lines[i] = ln
	}

	r.On(events.SlideStart, func(e events.Event) {
		if !r.Movable || e.MouseButton() != events.Left {
			return
		}
		r.moving = true
		r.startValues[0] = r.Lines[0].Value()
		r.startValues[1] = r.Lines[1].Value()
		r.downCoord = r.axisCoord(r.MapDeviceToParent(scene.EventStartPos(e)))
		e.SetHandled()
		r.dragTo(e)
	})
	r.On(events.SlideMove, func(e events.Event) {
		if !r.moving {
			return
		}
		e.SetHandled()
		r.dragTo(e)
	})
	r.On(events.SlideStop, func(e events.Event) {
		if !r.moving {
			return
		}
		e.SetHandled()
		r.dragTo(e)
		r.moving = false
		r.sendChangeFinished()
	})
	r.On(events.MouseDown, func(e events.Event) {
		if !r.moving || e.MouseButton() != events.Right {
			return
		}
		e.SetHandled()
		r.SetRegion(r.startValues[0], r.startValues[1])
		r.moving = false
		r.sendChangeFinished()
	})
	r.On(events.MouseEnter, func(e events.Event) {
		r.hovered = r.Movable
	})
	r.On(events.MouseLeave, func(e events.Event) {
		r.hovered = false
	})
}

func (r *LinearRegionItem) axisCoord(p math32.Vector2) float32 {
	if r.Orientation == Horizontal {
		return p.Y
	}
	return p.X
}

func (r *LinearRegionItem) dragTo(e events.Event) {
	cur := r.axisCoord(r.MapDeviceToParent(e.Pos()))
	delta := cur - r.downCoord
	r.SetRegion(r.startValues[0]+delta, r.startValues[1]+delta)
}

// OnRegionChanged registers f to be called synchronously whenever
// either edge moves.
func (r *LinearRegionItem) OnRegionChanged(f func(r *LinearRegionItem)) {
	r.regionChanged = append(r.regionChanged, f)
}

// OnChangeFinished registers f to be called when an edge or region
// drag completes or is cancelled.
func (r *LinearRegionItem) OnChangeFinished(f func(r *LinearRegionItem)) {
	r.changeFinished = append(r.changeFinished, f)
}

func (r *LinearRegionItem) sendRegionChanged() {
	for i := len(r.regionChanged) - 1; i >= 0; i-- {
		r.regionChanged[i](r)
	}
}

func (r *LinearRegionItem) sendChangeFinished() {
	for i := len(r.changeFinished) - 1; i >= 0; i-- {
		r.changeFinished[i](r)
	}
}

// Region returns the sorted (low, high) extent of the region.
func (r *LinearRegionItem) Region() (lo, hi float32) {
	a, b := r.Lines[0].Value(), r.Lines[1].Value()
	if a > b {
		a, b = b, a
	}
	return a, b
}

// SetRegion sets both edges, emitting a single region-changed
// notification if anything moved.
func (r *LinearRegionItem) SetRegion(v0, v1 float32) *LinearRegionItem {
	a0, a1 := r.Lines[0].Value(), r.Lines[1].Value()
	r.settingSelf = true
	r.Lines[0].SetValue(v0)
	r.Lines[1].SetValue(v1)
	r.settingSelf = false
	if r.Lines[0].Value() != a0 || r.Lines[1].Value() != a1 {
		r.sendRegionChanged()
	}
	return r
}

// SetBounds limits both edges, and therefore the region, to the given
// scalar range.
func (r *LinearRegionItem) SetBounds(min, max float32) *LinearRegionItem {
	for _, ln := range r.Lines {
		ln.SetBounds(min, max)
	}
	return r
}

// SetMovable sets whether the whole region can be dragged; the edge
// lines remain individually draggable either way.
func (r *LinearRegionItem) SetMovable(m bool) *LinearRegionItem {
	r.Movable = m
	r.Pickable = m
	return r
}

// SetBrush sets the region fill color.
func (r *LinearRegionItem) SetBrush(c color.Color) *LinearRegionItem {
	r.Brush = colors.Uniform(c)
	return r
}

// CurrentBrush returns the brush selected by the current hover state.
func (r *LinearRegionItem) CurrentBrush() image.Image {
	if r.hovered {
		return r.HoverBrush
	}
	return r.Brush
}

// BoundingRect is the view rectangle in local coordinates, restricted
// along the region axis to the current region extent.
func (r *LinearRegionItem) BoundingRect() math32.Box2 {
	sc := r.Scene()
	if sc == nil {
		return math32.B2Empty()
	}
	br := sc.ViewRect().MulMatrix2(r.SceneTransform().Inverse()).Canon()
	lo, hi := r.Region()
	if r.Orientation == Horizontal {
		br.Min.Y, br.Max.Y = lo, hi
	} else {
		br.Min.X, br.Max.X = lo, hi
	}
	return br
}

// Paint fills the region with the current brush.
func (r *LinearRegionItem) Paint(pt scene.Painter) {
	br := r.BoundingRect()
	if br.IsEmpty() {
		return
	}
	pts := []math32.Vector2{
		br.Min,
		math32.Vec2(br.Max.X, br.Min.Y),
		br.Max,
		math32.Vec2(br.Min.X, br.Max.Y),
	}
	pt.Polygon(pts, nil, r.CurrentBrush())
}
