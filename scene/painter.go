// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"cogentcore.org/core/math32"
)

// Painter is the drawing surface handed to [Item.Paint]. All
// coordinates are in the item's local frame; the renderer composes
// the item's device transform before each Paint call, and stroke
// widths stay in device pixels (cosmetic pens).
type Painter interface {
	// Line strokes the segment from p1 to p2 with the given pen.
	Line(p1, p2 math32.Vector2, pen *Pen)

	// Polygon strokes and / or fills the closed polygon through the
	// given points. A nil-color border or nil fill is skipped.
	Polygon(pts []math32.Vector2, border *Pen, fill image.Image)

	// Text draws single-line text with its top-left corner at pos.
	Text(text string, pos math32.Vector2, style *TextStyle)
}
