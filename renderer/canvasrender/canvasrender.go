// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvasrender renders a [scene.Scene] to a raster image
// through github.com/tdewolff/canvas. It also provides real text
// measurement to the scene, replacing the headless fixed metrics.
package canvasrender

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/200266785/pyqtgraph/renderer"
	"github.com/200266785/pyqtgraph/scene"
)

// pixels are canvas units; font faces take points.
const ptPerPx = 72.0 / 96.0

// Renderer draws scenes via tdewolff/canvas and rasterizes to PNG.
type Renderer struct {
	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)
var _ scene.TextMeasurer = (*Renderer)(nil)

// New returns a renderer using the system sans-serif font.
func New() (*Renderer, error) {
	family := canvas.NewFontFamily("sans")
	if err := family.LoadSystemFont("sans-serif", canvas.FontRegular); err != nil {
		return nil, err
	}
	return &Renderer{family: family}, nil
}

// NewWithFont returns a renderer using the given font data.
func NewWithFont(data []byte) (*Renderer, error) {
	family := canvas.NewFontFamily("custom")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	return &Renderer{family: family}, nil
}

// Attach installs this renderer as the scene's text measurer, so
// label geometry uses real font metrics. Text items already in the
// scene are re-measured.
func (r *Renderer) Attach(sc *scene.Scene) {
	sc.SetMeasurer(r)
}

func (r *Renderer) face(size float32, c color.Color) *canvas.FontFace {
	return r.family.Face(float64(size)*ptPerPx, c, canvas.FontRegular, canvas.FontNormal)
}

// MeasureText implements [scene.TextMeasurer] with real font metrics.
func (r *Renderer) MeasureText(text string, size float32) (w, h, ascent float32) {
	face := r.face(size, color.RGBA{A: 255})
	m := face.Metrics()
	return float32(face.TextWidth(text)), float32(m.Ascent + m.Descent), float32(m.Ascent)
}

// draw walks the scene in paint order onto a fresh canvas at the
// scene's device size, one canvas unit per device pixel.
func (r *Renderer) draw(sc *scene.Scene) *canvas.Canvas {
	sz := sc.DeviceSize()
	c := canvas.New(float64(sz.X), float64(sz.Y))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // device convention: origin top-left, y down

	p := &painter{ctx: ctx, sc: sc, rend: r}
	scene.WalkDown(sc.Root, true, func(it scene.Item) bool {
		p.it = it
		p.xfValid = false
		it.Paint(p)
		return true
	})
	return c
}

// Render draws the scene and returns it encoded as PNG.
func (r *Renderer) Render(sc *scene.Scene) ([]byte, error) {
	img := rasterizer.Draw(r.draw(sc), canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile renders the scene to the given path, with the format
// selected by the file extension (png, svg, pdf, ...).
func (r *Renderer) WriteFile(sc *scene.Scene, path string) error {
	return renderers.Write(path, r.draw(sc), canvas.DPMM(1.0))
}

// painter implements [scene.Painter] for one walk of the tree,
// mapping item-local geometry through the current item's device
// transform; stroke widths stay in device pixels. The transform is
// read on first use, after the item's Paint has started, so items
// that adjust their transform at paint time (unscaled text) map
// through the adjusted one.
type painter struct {
	ctx  *canvas.Context
	sc   *scene.Scene
	rend *Renderer
	it   scene.Item

	xf      math32.Matrix2
	xfValid bool
}

func (p *painter) dev(v math32.Vector2) (float64, float64) {
	if !p.xfValid {
		p.xf = p.it.AsItem().DeviceTransform()
		p.xfValid = true
	}
	d := p.xf.MulVector2AsPoint(v)
	return float64(d.X), float64(d.Y)
}

func (p *painter) setStroke(pen *scene.Pen) bool {
	if pen == nil || pen.Color == nil {
		p.ctx.SetStrokeColor(color.RGBA{})
		return false
	}
	p.ctx.SetStrokeColor(colors.ToUniform(pen.Color))
	p.ctx.SetStrokeWidth(float64(p.sc.Dots(&pen.Width)))
	if len(pen.Dashes) > 0 {
		ds := make([]float64, len(pen.Dashes))
		for i, d := range pen.Dashes {
			ds[i] = float64(d)
		}
		p.ctx.SetDashes(0, ds...)
	} else {
		p.ctx.SetDashes(0)
	}
	return true
}

func (p *painter) Line(p1, p2 math32.Vector2, pen *scene.Pen) {
	if !p.setStroke(pen) {
		return
	}
	p.ctx.SetFillColor(color.RGBA{})
	x1, y1 := p.dev(p1)
	x2, y2 := p.dev(p2)
	path := &canvas.Path{}
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	p.ctx.DrawPath(0, 0, path)
}

func (p *painter) Polygon(pts []math32.Vector2, border *scene.Pen, fill image.Image) {
	if len(pts) < 3 {
		return
	}
	stroked := p.setStroke(border)
	if fill != nil {
		p.ctx.SetFillColor(colors.ToUniform(fill))
	} else {
		p.ctx.SetFillColor(color.RGBA{})
	}
	if !stroked && fill == nil {
		return
	}
	path := &canvas.Path{}
	x, y := p.dev(pts[0])
	path.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = p.dev(pt)
		path.LineTo(x, y)
	}
	path.Close()
	p.ctx.DrawPath(0, 0, path)
}

func (p *painter) Text(text string, pos math32.Vector2, style *scene.TextStyle) {
	if text == "" {
		return
	}
	size := p.sc.Dots(&style.Size)
	face := p.rend.face(size, colors.ToUniform(style.Color))
	m := face.Metrics()
	x, y := p.dev(pos)
	p.ctx.DrawText(x, y+m.Ascent, canvas.NewTextLine(face, text, canvas.Left))
}
