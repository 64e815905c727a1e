// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/aclements/go-iplot/graph"
	"github.com/aclements/go-iplot/plotly"
)

// A Chart is an ordered collection of keyed traces plus layout
// settings.
//
// Every method that configures the chart returns the chart so calls
// can be chained. The first error encountered is remembered and
// returned by Err and Figure; later calls are ignored.
type Chart struct {
	keys   []interface{}
	traces []*graph.Trace
	layout plotly.Layout
	err    error
}

// NewChart returns an empty chart.
func NewChart() *Chart {
	return &Chart{}
}

// Err returns the first error encountered by c.
func (c *Chart) Err() error {
	return c.err
}

// Keys returns the keys of c's traces in the order they were added.
func (c *Chart) Keys() []interface{} {
	return append([]interface{}(nil), c.keys...)
}

// Trace returns the trace stored under key, or nil.
func (c *Chart) Trace(key interface{}) *graph.Trace {
	for i, k := range c.keys {
		if k == key {
			return c.traces[i]
		}
	}
	return nil
}

// Add adds t to the chart under a key derived from name by
// UniqueKey.
func (c *Chart) Add(name interface{}, t *graph.Trace) *Chart {
	if c.err != nil {
		return c
	}
	key, err := UniqueKey(t.Kind.String(), name, c.keys)
	if err != nil {
		c.err = err
		return c
	}
	c.keys = append(c.keys, key)
	c.traces = append(c.traces, t)
	return c
}

func (c *Chart) Title(title string) *Chart {
	c.layout.Title = &plotly.Title{Text: title}
	return c
}

func (c *Chart) XTitle(title string) *Chart {
	c.layout.XAxis = &plotly.Axis{Title: &plotly.Title{Text: title}}
	return c
}

func (c *Chart) YTitle(title string) *Chart {
	c.layout.YAxis = &plotly.Axis{Title: &plotly.Title{Text: title}}
	return c
}

// Size sets the figure size in pixels.
func (c *Chart) Size(width, height int) *Chart {
	if c.err != nil {
		return c
	}
	if width < 0 || height < 0 {
		c.err = fmt.Errorf("%w: negative chart size %dx%d", ErrValue, width, height)
		return c
	}
	c.layout.Width, c.layout.Height = width, height
	return c
}

func (c *Chart) Legend(show bool) *Chart {
	c.layout.ShowLegend = &show
	return c
}

// BarGap sets the gap between adjacent bars as a fraction of the bar
// spacing. Without an explicit gap, the gap of the first bar trace is
// used.
func (c *Chart) BarGap(gap float64) *Chart {
	c.layout.BarGap = &gap
	return c
}

// Layout sets layout options by name. The recognized options are
// title, xtitle, ytitle, width, height, showlegend and bargap. Values
// may be given as strings. Options are applied in name order, so the
// error reported for several bad options is always the same.
func (c *Chart) Layout(opts map[string]interface{}) *Chart {
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := opts[name]
		if c.err != nil {
			break
		}
		var err error
		switch name {
		case "title":
			c.Title(fmt.Sprint(v))
		case "xtitle":
			c.XTitle(fmt.Sprint(v))
		case "ytitle":
			c.YTitle(fmt.Sprint(v))
		case "width", "height":
			var x float64
			if x, err = toFloat(v); err == nil {
				w, h := c.layout.Width, c.layout.Height
				if name == "width" {
					w = int(x)
				} else {
					h = int(x)
				}
				c.Size(w, h)
			}
		case "showlegend":
			var b bool
			if b, err = toBool(v); err == nil {
				c.Legend(b)
			}
		case "bargap":
			var x float64
			if x, err = toFloat(v); err == nil {
				c.BarGap(x)
			}
		default:
			err = fmt.Errorf("%w: unknown layout option %q", ErrValue, name)
		}
		if err != nil {
			c.err = fmt.Errorf("layout %s: %w", name, err)
		}
	}
	return c
}

// Figure builds the plotly figure for c.
func (c *Chart) Figure() (*plotly.Figure, error) {
	if c.err != nil {
		return nil, c.err
	}
	fig := &plotly.Figure{Data: make([]plotly.Trace, 0, len(c.traces))}
	layout := c.layout
	for i, t := range c.traces {
		obj, err := t.GraphObj()
		if err != nil {
			return nil, fmt.Errorf("trace %v: %w", c.keys[i], err)
		}
		fig.Data = append(fig.Data, obj)
		if t.Kind == graph.KindBar && layout.BarGap == nil {
			layout.BarGap = plotly.Float(t.Bar.Gap)
		}
	}
	fig.Layout = &layout
	return fig, nil
}

func toFloat(v interface{}) (float64, error) {
	switch v := v.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("%w: %v is not a number", ErrValue, v)
}

func toBool(v interface{}) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("%w: %v is not a boolean", ErrValue, v)
}
