// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotly is a typed model of the plotly.js figure schema.
//
// It covers the subset of traces and layout attributes iplot
// produces: scatter traces (used for both markers and lines), bar
// traces, and a small layout. Figures are encoded with Marshal and
// rendered as standalone HTML documents with WriteHTML.
package plotly

import "encoding/json"

// A Figure is the top-level plotly.js object: a list of traces and a
// layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
}

// A Trace is one plotted data series. Trace is implemented by
// *Scatter and *Bar.
type Trace interface {
	// TraceType returns the plotly.js "type" of the trace.
	TraceType() string
}

// Scatter is a plotly.js scatter trace. Depending on Mode it draws
// markers, lines, text, or a combination.
type Scatter struct {
	X            Values   `json:"x"`
	Y            Values   `json:"y"`
	Text         []string `json:"text,omitempty"`
	Mode         string   `json:"mode,omitempty"`
	Name         string   `json:"name,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
	Marker       *Marker  `json:"marker,omitempty"`
	Line         *Line    `json:"line,omitempty"`
	TextPosition string   `json:"textposition,omitempty"`
	HoverInfo    string   `json:"hoverinfo,omitempty"`
	Fill         string   `json:"fill,omitempty"`
	ShowLegend   *bool    `json:"showlegend,omitempty"`
	ConnectGaps  *bool    `json:"connectgaps,omitempty"`
}

func (*Scatter) TraceType() string { return "scatter" }

func (s *Scatter) MarshalJSON() ([]byte, error) {
	type scatter Scatter
	return json.Marshal(struct {
		Type string `json:"type"`
		*scatter
	}{s.TraceType(), (*scatter)(s)})
}

// Bar is a plotly.js bar trace.
type Bar struct {
	X       Values   `json:"x"`
	Y       Values   `json:"y"`
	Text    []string `json:"text,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Marker  *Marker  `json:"marker,omitempty"`
	Name    string   `json:"name,omitempty"`
}

func (*Bar) TraceType() string { return "bar" }

func (b *Bar) MarshalJSON() ([]byte, error) {
	type bar Bar
	return json.Marshal(struct {
		Type string `json:"type"`
		*bar
	}{b.TraceType(), (*bar)(b)})
}

// Marker styles the points of a scatter trace or the bars of a bar
// trace.
type Marker struct {
	Symbol  string   `json:"symbol,omitempty"`
	Size    *float64 `json:"size,omitempty"`
	Color   string   `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Line    *Line    `json:"line,omitempty"`
}

// Line styles a line, either the path of a scatter trace or the
// outline of a marker.
type Line struct {
	Width float64 `json:"width"`
	Color string  `json:"color,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Layout holds the figure-wide settings.
type Layout struct {
	Title      *Title   `json:"title,omitempty"`
	XAxis      *Axis    `json:"xaxis,omitempty"`
	YAxis      *Axis    `json:"yaxis,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	ShowLegend *bool    `json:"showlegend,omitempty"`
	BarGap     *float64 `json:"bargap,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title *Title `json:"title,omitempty"`
}

// Float returns a pointer to x.
func Float(x float64) *float64 { return &x }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
