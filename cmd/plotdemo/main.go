// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotdemo renders a scene of interactive plot items to a PNG
// file: a draggable vertical line with a value label, a bounded
// horizontal line, a diagonal line, and a linear region selection.
package main

import (
	"image/color"
	"log/slog"
	"os"

	"cogentcore.org/core/math32"
	"github.com/spf13/cobra"

	"github.com/200266785/pyqtgraph/plotitems"
	"github.com/200266785/pyqtgraph/renderer/canvasrender"
	"github.com/200266785/pyqtgraph/scene"
)

func main() {
	var (
		output string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "plotdemo",
		Short: "render a demo scene of draggable plot lines and regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(output, width, height)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "plotdemo.png", "output PNG file")
	cmd.Flags().IntVar(&width, "width", 800, "device width in pixels")
	cmd.Flags().IntVar(&height, "height", 600, "device height in pixels")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(output string, width, height int) error {
	rend, err := canvasrender.New()
	if err != nil {
		return err
	}

	sc := scene.NewScene(width, height)
	sc.SetViewRect(math32.B2(-5, -5, 15, 15))
	rend.Attach(sc)

	vline := plotitems.NewInfiniteLine(sc.Root).SetMovable(true)
	vline.SetValue(2)
	vline.SetLabelFormat("x=%0.2f").SetDraggableLabel(true).ShowLabel(true)
	vline.OnPositionChanged(func(ln *plotitems.InfiniteLine) {
		slog.Info("line moved", "x", ln.Value())
	})

	hline := plotitems.NewInfiniteLine(sc.Root).SetAngle(0).
		SetMovable(true).SetBounds(-2, 2).
		SetPen(scene.NewPen(color.RGBA{80, 200, 80, 255})).
		SetHoverPen(scene.NewPen(color.RGBA{255, 120, 120, 255}))
	hline.SetValue(1)
	hline.SetLabelFormat("y=%0.2f").ShowLabel(true)

	diag := plotitems.NewInfiniteLine(sc.Root).SetAngle(45).
		SetPen(scene.NewPen(color.RGBA{120, 120, 255, 255}))
	diag.SetPos(math32.Vec2(0, 0))

	region := plotitems.NewLinearRegionItem(sc.Root, plotitems.Vertical).
		SetRegion(5, 10).SetMovable(true)
	region.OnRegionChanged(func(r *plotitems.LinearRegionItem) {
		lo, hi := r.Region()
		slog.Info("region moved", "lo", lo, "hi", hi)
	})

	if err := rend.WriteFile(sc, output); err != nil {
		return err
	}
	slog.Info("wrote scene", "file", output, "width", width, "height", height)
	return nil
}
