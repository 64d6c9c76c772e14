// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
)

// Pointer routing: the host (or a test) feeds raw pointer state through
// MouseDown / MouseMove / MouseUp in device pixels. The scene performs
// hit testing against item bounding rects, maintains a single hover
// item with MouseEnter / MouseLeave pairs, and captures drags: once a
// press moves, the pressed item receives SlideStart and then owns
// SlideMove / SlideStop until release. While a drag grab is active,
// presses of other buttons are delivered to the grab owner, which is
// how right-click cancel reaches a dragging item.

// ItemAt returns the topmost pickable, visible item whose bounding
// rect contains the given device point, or nil.
func (sc *Scene) ItemAt(pt image.Point) Item {
	var hit Item
	WalkDown(sc.Root, true, func(it Item) bool {
		ib := it.AsItem()
		if !ib.Pickable {
			return true
		}
		local := ib.MapDeviceToLocal(pt)
		if it.BoundingRect().ContainsPoint(local) {
			hit = it // later in paint order wins
		}
		return true
	})
	return hit
}

// MouseDown delivers a button press at the given device point.
func (sc *Scene) MouseDown(pt image.Point, but events.Buttons) {
	if sc.sliding && sc.down != nil && but != sc.downBut {
		// a second button during an active drag goes to the grab owner
		sc.send(sc.down, events.MouseDown, but, pt)
		sc.lastPt = pt
		return
	}
	it := sc.ItemAt(pt)
	sc.down = it
	sc.downBut = but
	sc.downPt = pt
	sc.lastPt = pt
	if it != nil {
		sc.send(it, events.MouseDown, but, pt)
	}
}

// MouseMove delivers pointer motion at the given device point. With a
// left button held on an item it drives the drag sequence; otherwise
// it updates the hover item.
func (sc *Scene) MouseMove(pt image.Point) {
	if sc.down != nil && sc.downBut == events.Left {
		if !sc.sliding {
			sc.sliding = true
			sc.send(sc.down, events.SlideStart, sc.downBut, pt)
		} else {
			sc.send(sc.down, events.SlideMove, sc.downBut, pt)
		}
		sc.lastPt = pt
		return
	}
	sc.updateHover(pt)
	sc.lastPt = pt
}

// MouseUp delivers a button release at the given device point.
func (sc *Scene) MouseUp(pt image.Point, but events.Buttons) {
	if sc.down != nil && but == sc.downBut {
		if sc.sliding {
			sc.send(sc.down, events.SlideStop, but, pt)
		} else {
			sc.send(sc.down, events.MouseUp, but, pt)
		}
		sc.down = nil
		sc.sliding = false
	}
	sc.lastPt = pt
	sc.updateHover(pt)
}

func (sc *Scene) updateHover(pt image.Point) {
	it := sc.ItemAt(pt)
	if it == sc.hover {
		return
	}
	if sc.hover != nil {
		sc.send(sc.hover, events.MouseLeave, events.NoButton, pt)
	}
	sc.hover = it
	if it != nil {
		sc.send(it, events.MouseEnter, events.NoButton, pt)
	}
}

// send constructs a pointer event carrying the press-start point for
// delta computation and dispatches it to the item's listeners.
func (sc *Scene) send(it Item, typ events.Types, but events.Buttons, pt image.Point) {
	ev := events.NewMouseDrag(but, pt, sc.lastPt, sc.downPt, 0)
	ev.Typ = typ
	it.AsItem().HandleEvent(ev)
}

// EventPos returns the device position of a pointer event as a vector.
func EventPos(e events.Event) math32.Vector2 {
	p := e.Pos()
	return math32.Vec2(float32(p.X), float32(p.Y))
}

// EventStartPos returns the device position at which the button
// producing this event sequence was first pressed.
func EventStartPos(e events.Event) image.Point {
	return e.Pos().Sub(e.StartDelta())
}
