// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal retained scene graph for plot items:
// a tree of [Item]s positioned in data coordinates, a [Scene] that maps
// data coordinates to device pixels through a pan / zoom / rotate view
// transform, and synchronous pointer-event routing with hover and drag
// capture. It supplies the surface that plot items such as
// [github.com/200266785/pyqtgraph/plotitems.InfiniteLine] are built on.
package scene

import (
	"image"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Axis identifies a data axis for [Item.DataBounds] queries.
type Axis int32

const (
	X Axis = iota
	Y
)

// Item is the interface for everything living in a [Scene].
// The core functionality is implemented on [ItemBase], which all
// item types must embed.
type Item interface {
	// AsItem returns the [ItemBase] of this Item.
	AsItem() *ItemBase

	// Init is called once, when the item is created and before it is
	// added to its parent. Item types set their defaults and register
	// event handlers here.
	Init()

	// BoundingRect returns the bounding rectangle of the item in its
	// own local coordinates. It is used for pointer hit testing and
	// for paint clipping.
	BoundingRect() math32.Box2

	// Paint draws the item through the given painter, in local
	// coordinates.
	Paint(pt Painter)

	// ViewTransformChanged is called synchronously whenever the scene
	// view transform changes (range change, resize, rotation).
	ViewTransformChanged()

	// DataBounds reports the range this item occupies along the given
	// axis of its local frame, for auto-ranging. ok is false if the
	// item should not influence ranging along that axis.
	DataBounds(axis Axis) (rng minmax.F32, ok bool)
}

// ItemBase implements the core [Item] functionality. An item has a
// position and a local transform in its parent's coordinate frame; the
// full local-to-parent mapping is the position translation followed by
// the transform.
type ItemBase struct {
	// Name is the user-assigned name of this item.
	Name string

	// Parent is the parent item; nil for the scene root.
	Parent Item

	// Children are the child items, in paint order.
	Children []Item

	// Pos is the position of this item in parent coordinates.
	Pos math32.Vector2

	// Transform is the local transform (rotation, scale) applied
	// after the position translation.
	Transform math32.Matrix2

	// Visible determines whether this item and its children are
	// painted and hit-tested.
	Visible bool

	// Pickable determines whether pointer events are routed to this
	// item. Items that interact set this through their movability.
	Pickable bool

	// Listeners holds the registered pointer-event handlers.
	Listeners events.Listeners

	scene *Scene
	self  Item
}

// AsItem returns the [ItemBase] of this item.
func (ib *ItemBase) AsItem() *ItemBase { return ib }

// Init sets the base defaults. Item types embedding ItemBase must call
// this at the start of their own Init.
func (ib *ItemBase) Init() {
	ib.Visible = true
	ib.Transform = math32.Identity2()
}

// Scene returns the scene this item belongs to, or nil if the item has
// not been added to one yet.
func (ib *ItemBase) Scene() *Scene { return ib.scene }

// BoundingRect on the base returns an empty rectangle.
func (ib *ItemBase) BoundingRect() math32.Box2 { return math32.B2Empty() }

// Paint on the base draws nothing.
func (ib *ItemBase) Paint(pt Painter) {}

// ViewTransformChanged on the base does nothing.
func (ib *ItemBase) ViewTransformChanged() {}

// DataBounds on the base reports no ranging influence on any axis.
func (ib *ItemBase) DataBounds(axis Axis) (minmax.F32, bool) {
	return minmax.F32{}, false
}

// SetName sets the name of the item.
func (ib *ItemBase) SetName(name string) { ib.Name = name }

// SetVisible sets the visibility of the item and its children.
func (ib *ItemBase) SetVisible(v bool) { ib.Visible = v }

// SetPos sets the position of the item in parent coordinates.
// Item types with constrained positions shadow this.
func (ib *ItemBase) SetPos(p math32.Vector2) { ib.Pos = p }

// AddChild appends a child item and propagates the scene pointer
// through the added subtree.
func (ib *ItemBase) AddChild(child Item) {
	cb := child.AsItem()
	cb.Parent = ib.this()
	ib.Children = append(ib.Children, child)
	setScene(child, ib.scene)
}

// this returns the concrete Item for back-references from base methods.
func (ib *ItemBase) this() Item {
	if ib.self != nil {
		return ib.self
	}
	return ib
}

// On registers an event handler for the given event type.
func (ib *ItemBase) On(typ events.Types, fun func(e events.Event)) {
	ib.Listeners.Add(typ, fun)
}

// HandleEvent dispatches the given event to this item's listeners.
func (ib *ItemBase) HandleEvent(e events.Event) {
	ib.Listeners.Call(e)
}

// LocalTransform returns the full local-to-parent transform:
// the position translation composed with the local transform.
func (ib *ItemBase) LocalTransform() math32.Matrix2 {
	return math32.Translate2D(ib.Pos.X, ib.Pos.Y).Mul(ib.Transform)
}

// SceneTransform returns the cumulative transform mapping this item's
// local coordinates to the scene (data) frame, composed through all
// ancestors. The view transform is not included; see [ItemBase.DeviceTransform].
func (ib *ItemBase) SceneTransform() math32.Matrix2 {
	xf := ib.LocalTransform()
	for p := ib.Parent; p != nil; p = p.AsItem().Parent {
		xf = p.AsItem().LocalTransform().Mul(xf)
	}
	return xf
}

// ParentSceneTransform returns the scene transform of the parent, or
// identity for the root.
func (ib *ItemBase) ParentSceneTransform() math32.Matrix2 {
	if ib.Parent == nil {
		return math32.Identity2()
	}
	return ib.Parent.AsItem().SceneTransform()
}

// DeviceTransform returns the cumulative transform mapping this item's
// local coordinates all the way to device pixels, including the scene
// view transform.
func (ib *ItemBase) DeviceTransform() math32.Matrix2 {
	st := ib.SceneTransform()
	if ib.scene == nil {
		return st
	}
	return ib.scene.ViewTransform().Mul(st)
}

// MapToParent maps a point in this item's local frame to the parent frame.
func (ib *ItemBase) MapToParent(p math32.Vector2) math32.Vector2 {
	return ib.LocalTransform().MulVector2AsPoint(p)
}

// MapFromParent maps a point in the parent frame to this item's local frame.
func (ib *ItemBase) MapFromParent(p math32.Vector2) math32.Vector2 {
	return ib.LocalTransform().Inverse().MulVector2AsPoint(p)
}

// MapFromScene maps a point in the scene (data) frame to this item's
// local frame.
func (ib *ItemBase) MapFromScene(p math32.Vector2) math32.Vector2 {
	return ib.SceneTransform().Inverse().MulVector2AsPoint(p)
}

// MapDeviceToLocal maps a device pixel point into this item's local
// coordinate frame.
func (ib *ItemBase) MapDeviceToLocal(p image.Point) math32.Vector2 {
	return ib.DeviceTransform().Inverse().MulVector2AsPoint(math32.Vec2(float32(p.X), float32(p.Y)))
}

// MapDeviceToParent maps a device pixel point into this item's parent
// coordinate frame. Pointer events carry device points; drag logic
// works in parent coordinates.
func (ib *ItemBase) MapDeviceToParent(p image.Point) math32.Vector2 {
	return ib.MapToParent(ib.MapDeviceToLocal(p))
}

// WalkDown calls fun on this item and then on all children,
// depth-first in paint order, skipping invisible subtrees if
// visibleOnly is set. fun returning false prunes the walk below
// that item.
func WalkDown(it Item, visibleOnly bool, fun func(it Item) bool) {
	ib := it.AsItem()
	if visibleOnly && !ib.Visible {
		return
	}
	if !fun(it) {
		return
	}
	for _, c := range ib.Children {
		WalkDown(c, visibleOnly, fun)
	}
}

func setScene(it Item, sc *Scene) {
	it.AsItem().scene = sc
	for _, c := range it.AsItem().Children {
		setScene(c, sc)
	}
}

// InitItem wires a freshly constructed item: records its concrete
// type, runs its Init, and adds it to the given parent (which may be
// nil for detached construction).
func InitItem(it Item, parent Item) {
	it.AsItem().self = it
	it.Init()
	if parent != nil {
		parent.AsItem().AddChild(it)
	}
}

// Group is an item with no geometry of its own, used for grouping and
// as the scene root.
type Group struct {
	ItemBase
}

// NewGroup returns a new [Group] added to the given parent.
func NewGroup(parent Item) *Group {
	g := &Group{}
	InitItem(g, parent)
	return g
}
