// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws plotly figures as static images.
//
// Only the attributes iplot itself produces are understood: scatter
// traces in "markers" or "lines" mode and bar traces, each with a
// single colour. Coordinates that are not all numbers (categories or
// dates) are placed at their index.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/aclements/go-iplot/internal/colour"
	"github.com/aclements/go-iplot/plotly"
	"github.com/aclements/go-moremath/stats"
)

// defaultBarGap is plotly.js's default layout.bargap.
const defaultBarGap = 0.2

type seriesKind int

const (
	seriesPoints seriesKind = iota
	seriesLines
	seriesBars
)

// A series is one trace flattened for drawing.
type series struct {
	kind   seriesKind
	name   string
	xs, ys []float64
	color  color.NRGBA

	// size is the marker diameter or line width in pixels.
	size float64
	dash string

	// barWidth is the width of each bar in data units.
	barWidth float64
}

// figureInfo is the layout information the renderers use.
type figureInfo struct {
	title, xTitle, yTitle string
	hasBars               bool
}

func collect(fig *plotly.Figure) ([]series, figureInfo, error) {
	var info figureInfo
	if l := fig.Layout; l != nil {
		if l.Title != nil {
			info.title = l.Title.Text
		}
		if l.XAxis != nil && l.XAxis.Title != nil {
			info.xTitle = l.XAxis.Title.Text
		}
		if l.YAxis != nil && l.YAxis.Title != nil {
			info.yTitle = l.YAxis.Title.Text
		}
	}
	gap := defaultBarGap
	if fig.Layout != nil && fig.Layout.BarGap != nil {
		gap = *fig.Layout.BarGap
	}

	var out []series
	for i, tr := range fig.Data {
		var s series
		var err error
		switch tr := tr.(type) {
		case *plotly.Scatter:
			s, err = scatterSeries(tr)
		case *plotly.Bar:
			s, err = barSeries(tr, gap)
			info.hasBars = true
		default:
			err = fmt.Errorf("unsupported trace type %q", tr.TraceType())
		}
		if err != nil {
			return nil, info, fmt.Errorf("trace %d: %w", i, err)
		}
		if s.name == "" {
			s.name = fmt.Sprintf("trace %d", i)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, info, errors.New("figure has no traces")
	}
	return out, info, nil
}

func scatterSeries(tr *plotly.Scatter) (series, error) {
	s := series{name: tr.Name, xs: coords(tr.X), ys: coords(tr.Y)}
	if len(s.xs) != len(s.ys) {
		return s, fmt.Errorf("%d x values but %d y values", len(s.xs), len(s.ys))
	}
	opacity := opacityOr(tr.Opacity, 1)
	var col string
	switch {
	case strings.Contains(tr.Mode, "markers"):
		s.kind = seriesPoints
		s.size = 6
		if m := tr.Marker; m != nil {
			col = m.Color
			if m.Size != nil && *m.Size > 0 {
				s.size = *m.Size
			}
			opacity *= opacityOr(m.Opacity, 1)
		}
	case strings.Contains(tr.Mode, "lines"):
		s.kind = seriesLines
		s.size = 2
		if l := tr.Line; l != nil {
			col = l.Color
			if l.Width > 0 {
				s.size = l.Width
			}
			s.dash = l.Dash
		}
	default:
		return s, fmt.Errorf("unsupported scatter mode %q", tr.Mode)
	}
	var err error
	s.color, err = traceColour(col, opacity)
	return s, err
}

func barSeries(tr *plotly.Bar, gap float64) (series, error) {
	s := series{kind: seriesBars, name: tr.Name, xs: coords(tr.X), ys: coords(tr.Y)}
	if len(s.xs) != len(s.ys) {
		return s, fmt.Errorf("%d x values but %d y values", len(s.xs), len(s.ys))
	}
	var col string
	if tr.Marker != nil {
		col = tr.Marker.Color
	}
	var err error
	if s.color, err = traceColour(col, opacityOr(tr.Opacity, 1)); err != nil {
		return s, err
	}

	// Bars share the average spacing between x values.
	spacing := 1.0
	if len(s.xs) > 1 {
		lo, hi := stats.Bounds(s.xs)
		if hi > lo {
			spacing = (hi - lo) / float64(len(s.xs)-1)
		}
	}
	s.barWidth = spacing * (1 - gap)
	return s, nil
}

func traceColour(s string, opacity float64) (color.NRGBA, error) {
	if s == "" {
		s = "#1f77b4"
	}
	return colour.Parse(s, opacity)
}

func opacityOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// coords returns vs as floats. If any value is not a number, every
// value is replaced by its index.
func coords(vs plotly.Values) []float64 {
	xs := make([]float64, len(vs))
	for i, v := range vs {
		x, ok := number(v)
		if !ok {
			for i := range xs {
				xs[i] = float64(i)
			}
			return xs
		}
		xs[i] = x
	}
	return xs
}

func number(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case time.Duration:
		return v.Seconds(), true
	}
	return 0, false
}
