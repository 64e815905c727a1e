// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-iplot/plotly"
)

// WriteSVG renders fig as a width x height pixel SVG image.
func WriteSVG(w io.Writer, fig *plotly.Figure, width, height int) error {
	ss, info, err := collect(fig)
	if err != nil {
		return err
	}

	plot := gg.NewPlot(seriesTable(ss[0].xs, ss[0].ys, ss[0].color))

	// Colours are already resolved per trace.
	plot.SetScale("stroke", gg.NewIdentityScale())
	plot.SetScale("fill", gg.NewIdentityScale())
	if info.hasBars {
		// Bars grow from Y=0.
		plot.SetScale("y", gg.NewLinearScaler().Include(0))
	}

	for _, s := range ss {
		switch s.kind {
		case seriesPoints:
			plot.SetData(seriesTable(s.xs, s.ys, s.color))
			plot.Add(gg.LayerPoints{X: "x", Y: "y", Color: "color"})

		case seriesLines:
			plot.SetData(seriesTable(s.xs, s.ys, s.color))
			plot.Add(gg.LayerLines{X: "x", Y: "y", Color: "color"})

		case seriesBars:
			// Each bar is a closed path around its
			// rectangle.
			for i, x := range s.xs {
				lo, hi := x-s.barWidth/2, x+s.barWidth/2
				plot.SetData(seriesTable([]float64{lo, lo, hi, hi}, []float64{0, s.ys[i], s.ys[i], 0}, s.color))
				plot.Add(gg.LayerPaths{X: "x", Y: "y", Color: "color", Fill: "color"})
			}
		}
	}

	if info.title != "" {
		plot.Add(gg.Title(info.title))
	}
	if info.xTitle != "" {
		plot.Add(gg.AxisLabel("x", info.xTitle))
	}
	if info.yTitle != "" {
		plot.Add(gg.AxisLabel("y", info.yTitle))
	}
	return plot.WriteSVG(w, width, height)
}

func seriesTable(xs, ys []float64, c color.Color) *table.Table {
	return table.NewBuilder(nil).Add("x", xs).Add("y", ys).AddConst("color", c).Done()
}
