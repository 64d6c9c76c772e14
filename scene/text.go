// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// TextMeasurer provides text extents for label layout. The scene ships
// with [FixedMetrics] so geometry works without any font stack;
// renderers that shape real text install themselves as the measurer.
type TextMeasurer interface {
	// MeasureText returns the width, height and ascent of the given
	// single-line text at the given font size, all in device pixels.
	MeasureText(text string, size float32) (w, h, ascent float32)
}

// FixedMetrics is a font-free [TextMeasurer] using fixed per-glyph
// proportions of the font size. Good enough for hit rects and anchor
// math in headless use; not for typography.
type FixedMetrics struct {
	// GlyphWidth is the advance per rune as a fraction of font size.
	// 0 means the 0.6 default.
	GlyphWidth float32

	// LineHeight is the line height as a fraction of font size.
	// 0 means the 1.25 default.
	LineHeight float32
}

func (fm *FixedMetrics) MeasureText(text string, size float32) (w, h, ascent float32) {
	gw := fm.GlyphWidth
	if gw == 0 {
		gw = 0.6
	}
	lh := fm.LineHeight
	if lh == 0 {
		lh = 1.25
	}
	n := 0
	for range text {
		n++
	}
	return float32(n) * gw * size, lh * size, 0.8 * size
}
