// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figspec reads chart descriptions from YAML.
//
// A chart spec looks like
//
//	title: Heap size
//	xtitle: GC
//	ytitle: MB
//	traces:
//	  - kind: line
//	    key: heap
//	    x: [1, 2, 3]
//	    y: [10, 12, 11]
//	    props:
//	      dash: dot
//	  - kind: bar
//	    x: [a, b]
//	    y: [3, 4]
//
// Trace props use the option names of the corresponding graph
// constructor (color, name, size, line_width, connectgaps, ...).
package figspec

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aclements/go-iplot/defaults"
	"github.com/aclements/go-iplot/figure"
	"github.com/aclements/go-iplot/graph"
	"github.com/aclements/go-iplot/plotly"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Spec describes a chart.
type Spec struct {
	Title      string   `yaml:"title"`
	XTitle     string   `yaml:"xtitle"`
	YTitle     string   `yaml:"ytitle"`
	Width      int      `yaml:"width" validate:"gte=0"`
	Height     int      `yaml:"height" validate:"gte=0"`
	ShowLegend *bool    `yaml:"showlegend"`
	BarGap     *float64 `yaml:"bargap" validate:"omitempty,gte=0,lte=1"`
	Traces     []Trace  `yaml:"traces" validate:"required,min=1,dive"`
}

// Trace describes one trace of a chart.
type Trace struct {
	Kind  string                 `yaml:"kind" validate:"required,oneof=scatter line bar"`
	Key   interface{}            `yaml:"key"`
	X     []interface{}          `yaml:"x" validate:"required,min=1"`
	Y     []interface{}          `yaml:"y" validate:"required,min=1"`
	Props map[string]interface{} `yaml:"props"`
}

var validate = validator.New()

// Parse parses and validates a YAML chart spec.
func Parse(data []byte) (*Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	s := new(Spec)
	if err := dec.Decode(s); err != nil {
		return nil, err
	}
	if err := validate.Struct(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the chart spec at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build returns the chart described by s, with unset trace options
// taken from defs.
func (s *Spec) Build(defs *defaults.Defaults) (*figure.Chart, error) {
	c := figure.NewChart()
	for i, ts := range s.Traces {
		t, err := ts.build(defs)
		if err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
		c.Add(ts.Key, t)
	}
	if s.Title != "" {
		c.Title(s.Title)
	}
	if s.XTitle != "" {
		c.XTitle(s.XTitle)
	}
	if s.YTitle != "" {
		c.YTitle(s.YTitle)
	}
	if s.Width != 0 || s.Height != 0 {
		c.Size(s.Width, s.Height)
	}
	if s.ShowLegend != nil {
		c.Legend(*s.ShowLegend)
	}
	if s.BarGap != nil {
		c.BarGap(*s.BarGap)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func (ts *Trace) build(defs *defaults.Defaults) (*graph.Trace, error) {
	kind, err := graph.ParseKind(ts.Kind)
	if err != nil {
		return nil, err
	}
	x, y := plotly.Values(ts.X), plotly.Values(ts.Y)
	p := props(ts.Props)

	var common graph.Props
	p.common(&common, len(ts.X))
	switch kind {
	case graph.KindScatter:
		sp := graph.ScatterProps{Props: common}
		sp.Symbol = p.str("symbol")
		sp.Size = p.float("size")
		sp.Opacity = p.float("opacity")
		sp.Label = p.bool("label")
		sp.TextPosition = p.str("textposition")
		sp.LineWidth = p.float("line_width")
		sp.LineColor = p.str("line_color")
		if err := p.finish(); err != nil {
			return nil, err
		}
		return graph.NewScatter(x, y, defs, sp), nil

	case graph.KindLine:
		lp := graph.LineProps{Props: common}
		lp.Width = p.float("width")
		lp.Opacity = p.float("opacity")
		lp.Dash = p.str("dash")
		lp.Fill = p.str("fill")
		lp.ConnectGaps = p.bool("connectgaps")
		if err := p.finish(); err != nil {
			return nil, err
		}
		return graph.NewLine(x, y, defs, lp), nil

	case graph.KindBar:
		bp := graph.BarProps{Props: common}
		bp.Width = p.float("width")
		bp.Opacity = p.float("opacity")
		if err := p.finish(); err != nil {
			return nil, err
		}
		return graph.NewBar(x, y, defs, bp), nil
	}
	return nil, fmt.Errorf("cannot build %v traces", kind)
}
