// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-iplot/plotly"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Dash patterns for plotly.js line dash names, in pixels.
var dashArrays = map[string][]float64{
	"dot":         {2, 3},
	"dash":        {6, 4},
	"longdash":    {12, 4},
	"dashdot":     {6, 3, 2, 3},
	"longdashdot": {12, 3, 2, 3},
}

// WritePNG renders fig as a width x height pixel PNG image.
func WritePNG(w io.Writer, fig *plotly.Figure, width, height int) error {
	ss, info, err := collect(fig)
	if err != nil {
		return err
	}

	var cs []chart.Series
	for _, s := range ss {
		c := drawingColor(s.color)
		switch s.kind {
		case seriesPoints:
			cs = append(cs, chart.ContinuousSeries{
				Name:    s.name,
				XValues: s.xs,
				YValues: s.ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    s.size / 2,
					DotColor:    c,
				},
			})

		case seriesLines:
			cs = append(cs, chart.ContinuousSeries{
				Name:    s.name,
				XValues: s.xs,
				YValues: s.ys,
				Style: chart.Style{
					StrokeColor:     c,
					StrokeWidth:     s.size,
					StrokeDashArray: dashArrays[s.dash],
				},
			})

		case seriesBars:
			// go-chart has no bar series that mixes with
			// continuous series, so draw each bar as a
			// filled outline.
			for i, x := range s.xs {
				lo, hi := x-s.barWidth/2, x+s.barWidth/2
				name := ""
				if i == 0 {
					name = s.name
				}
				cs = append(cs, chart.ContinuousSeries{
					Name:    name,
					XValues: []float64{lo, lo, hi, hi},
					YValues: []float64{0, s.ys[i], s.ys[i], 0},
					Style: chart.Style{
						StrokeColor: c,
						StrokeWidth: 1,
						FillColor:   c,
					},
				})
			}
		}
	}

	ch := chart.Chart{
		Title:  info.title,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: info.xTitle},
		YAxis:  chart.YAxis{Name: info.yTitle},
		Series: cs,
	}
	if info.hasBars {
		lo, hi := yBounds(ss)
		ch.YAxis.Range = &chart.ContinuousRange{Min: math.Min(lo, 0), Max: math.Max(hi, 0)}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

func drawingColor(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func yBounds(ss []series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range ss {
		for _, y := range s.ys {
			lo, hi = math.Min(lo, y), math.Max(hi, y)
		}
	}
	return lo, hi
}
