// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotitems

import (
	"image"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/events"
	"github.com/stretchr/testify/assert"
)

func TestRegionSorted(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Vertical).SetRegion(10, 5)
	lo, hi := r.Region()
	assert.Equal(t, float32(5), lo)
	assert.Equal(t, float32(10), hi)
}

func TestRegionNotify(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Vertical)
	n := 0
	r.OnRegionChanged(func(*LinearRegionItem) { n++ })

	// one notification per SetRegion, not per edge
	r.SetRegion(5, 10)
	assert.Equal(t, 1, n)
	r.SetRegion(5, 10)
	assert.Equal(t, 1, n)

	// moving an edge directly still notifies the region
	assert.NoError(t, r.Lines[0].SetValue(7))
	assert.Equal(t, 2, n)
}

func TestRegionDrag(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Vertical).SetRegion(20, 40).SetMovable(true)

	finished := 0
	r.OnChangeFinished(func(*LinearRegionItem) { finished++ })

	// a drag in the interior moves both edges, preserving the width
	sc.MouseDown(image.Pt(30, 50), events.Left)
	sc.MouseMove(image.Pt(35, 50))
	lo, hi := r.Region()
	tolassert.Equal(t, 25, lo)
	tolassert.Equal(t, 45, hi)

	sc.MouseMove(image.Pt(25, 50))
	lo, hi = r.Region()
	tolassert.Equal(t, 15, lo)
	tolassert.Equal(t, 35, hi)

	sc.MouseUp(image.Pt(25, 50), events.Left)
	assert.Equal(t, 1, finished)
}

func TestRegionDragCancel(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Vertical).SetRegion(20, 40).SetMovable(true)

	sc.MouseDown(image.Pt(30, 50), events.Left)
	sc.MouseMove(image.Pt(40, 50))
	lo, hi := r.Region()
	tolassert.Equal(t, 30, lo)
	tolassert.Equal(t, 50, hi)

	sc.MouseDown(image.Pt(40, 50), events.Right)
	lo, hi = r.Region()
	tolassert.Equal(t, 20, lo)
	tolassert.Equal(t, 40, hi)
}

func TestRegionEdgeDrag(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Vertical).SetRegion(20, 40)
	n := 0
	r.OnRegionChanged(func(*LinearRegionItem) { n++ })

	// a drag on an edge line moves only that edge
	sc.MouseDown(image.Pt(20, 50), events.Left)
	sc.MouseMove(image.Pt(25, 50))
	sc.MouseUp(image.Pt(25, 50), events.Left)

	lo, hi := r.Region()
	tolassert.Equal(t, 25, lo)
	tolassert.Equal(t, 40, hi)
	assert.Equal(t, 1, n)
}

func TestRegionBounds(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Vertical).SetBounds(0, 50)
	r.SetRegion(45, 60)
	lo, hi := r.Region()
	assert.Equal(t, float32(45), lo)
	assert.Equal(t, float32(50), hi)
}

func TestHorizontalRegion(t *testing.T) {
	sc := newTestScene()
	r := NewLinearRegionItem(sc.Root, Horizontal).SetRegion(20, 40).SetMovable(true)

	// device y runs opposite to data y: dragging up the screen moves
	// the region to higher values
	sc.MouseDown(image.Pt(50, 70), events.Left)
	sc.MouseMove(image.Pt(50, 60))
	lo, hi := r.Region()
	tolassert.Equal(t, 30, lo)
	tolassert.Equal(t, 50, hi)
	sc.MouseUp(image.Pt(50, 60), events.Left)
}
