// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph builds plotly traces from simplified options.
//
// A Trace holds the attributes of one plotted series. Constructors
// fill every option the caller leaves unset from a defaults
// configuration, and GraphObj translates the result into a
// plotly.Trace. Nothing is validated: coordinates and option values
// pass through to the plotly trace as given.
package graph

import (
	"errors"
	"fmt"

	"github.com/aclements/go-iplot/defaults"
	"github.com/aclements/go-iplot/plotly"
)

// ErrNotImplemented is returned by GraphObj for traces that have no
// plotly translation, such as those created by NewTrace.
var ErrNotImplemented = errors.New("graph object not implemented")

// Kind is the kind of a Trace.
type Kind int

const (
	// KindTrace is the abstract base kind. It holds the common
	// attributes but cannot be translated.
	KindTrace Kind = iota
	KindScatter
	KindLine
	KindBar
)

var kindNames = []string{"trace", "scatter", "line", "bar"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown trace kind %q", s)
}

// Trace is one plotted data series.
type Trace struct {
	Kind Kind

	X, Y plotly.Values

	// Text labels each point. It is nil if unset.
	Text []string

	Color      string
	Name       string
	HoverInfo  string
	ShowLegend bool

	// Only the attributes matching Kind are used.
	Scatter ScatterAttrs
	Line    LineAttrs
	Bar     BarAttrs
}

type ScatterAttrs struct {
	Symbol       string
	Size         float64
	Opacity      float64
	Label        bool
	TextPosition string
	LineWidth    float64
	LineColor    string
}

type LineAttrs struct {
	Width       float64
	Opacity     float64
	Dash        string
	Fill        string
	ConnectGaps bool
}

type BarAttrs struct {
	Gap     float64
	Opacity float64
}

// Props are the options common to all trace kinds. A nil field
// selects the default.
type Props struct {
	Text       []string
	Color      *string
	Name       *string
	HoverInfo  *string
	ShowLegend *bool
}

type ScatterProps struct {
	Props
	Symbol       *string
	Size         *float64
	Opacity      *float64
	Label        *bool
	TextPosition *string
	LineWidth    *float64

	// LineColor is the marker outline color. It defaults to the
	// global color, not to the trace's Color.
	LineColor *string
}

type LineProps struct {
	Props
	Width       *float64
	Opacity     *float64
	Dash        *string
	Fill        *string
	ConnectGaps *bool
}

type BarProps struct {
	Props

	// Width sets the gap between bars.
	Width   *float64
	Opacity *float64
}

// String returns a pointer to s, for use in Props.
func String(s string) *string { return &s }

// Float returns a pointer to x, for use in Props.
func Float(x float64) *float64 { return &x }

// Bool returns a pointer to b, for use in Props.
func Bool(b bool) *bool { return &b }

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// NewTrace returns a trace of kind KindTrace with the common options
// of p applied over defs.
func NewTrace(x, y plotly.Values, defs *defaults.Defaults, p Props) *Trace {
	return &Trace{
		Kind:       KindTrace,
		X:          x,
		Y:          y,
		Text:       p.Text,
		Color:      stringOr(p.Color, defs.Global.Color),
		Name:       stringOr(p.Name, ""),
		HoverInfo:  stringOr(p.HoverInfo, "all"),
		ShowLegend: boolOr(p.ShowLegend, true),
	}
}

// NewScatter returns a trace that draws a marker at each point.
func NewScatter(x, y plotly.Values, defs *defaults.Defaults, p ScatterProps) *Trace {
	t := NewTrace(x, y, defs, p.Props)
	t.Kind = KindScatter
	t.Scatter = ScatterAttrs{
		Symbol:       stringOr(p.Symbol, defs.Scatter.Symbol),
		Size:         floatOr(p.Size, defs.Scatter.Size),
		Opacity:      floatOr(p.Opacity, defs.Scatter.Opacity),
		Label:        boolOr(p.Label, false),
		TextPosition: stringOr(p.TextPosition, "top"),
		LineWidth:    floatOr(p.LineWidth, defs.Scatter.LineWidth),
		LineColor:    stringOr(p.LineColor, defs.Global.Color),
	}
	return t
}

// NewLine returns a trace that connects the points with a line.
func NewLine(x, y plotly.Values, defs *defaults.Defaults, p LineProps) *Trace {
	t := NewTrace(x, y, defs, p.Props)
	t.Kind = KindLine
	t.Line = LineAttrs{
		Width:       floatOr(p.Width, defs.Line.Width),
		Opacity:     floatOr(p.Opacity, defs.Line.Opacity),
		Dash:        stringOr(p.Dash, defs.Line.Dash),
		Fill:        stringOr(p.Fill, defs.Line.Fill),
		ConnectGaps: boolOr(p.ConnectGaps, defs.Line.ConnectGaps),
	}
	return t
}

// NewBar returns a trace that draws a bar at each point.
func NewBar(x, y plotly.Values, defs *defaults.Defaults, p BarProps) *Trace {
	t := NewTrace(x, y, defs, p.Props)
	t.Kind = KindBar
	t.Bar = BarAttrs{
		Gap:     floatOr(p.Width, defs.Bar.Gap),
		Opacity: floatOr(p.Opacity, defs.Bar.Opacity),
	}
	return t
}

// Mode returns the plotly scatter mode for the trace.
func (t *Trace) Mode() string {
	switch t.Kind {
	case KindScatter:
		if t.Scatter.Label {
			return "markers+text"
		}
		return "markers"
	case KindLine:
		return "lines"
	}
	return ""
}

// GraphObj translates t into a plotly trace. The result depends only
// on t's current attributes.
func (t *Trace) GraphObj() (plotly.Trace, error) {
	switch t.Kind {
	case KindScatter:
		s := t.Scatter
		return &plotly.Scatter{
			X:    t.X,
			Y:    t.Y,
			Text: t.Text,
			Mode: t.Mode(),
			Marker: &plotly.Marker{
				Symbol:  s.Symbol,
				Size:    plotly.Float(s.Size),
				Color:   t.Color,
				Opacity: plotly.Float(s.Opacity),
				Line:    &plotly.Line{Width: s.LineWidth, Color: s.LineColor},
			},
			Name:         t.Name,
			TextPosition: s.TextPosition,
			HoverInfo:    t.HoverInfo,
			ShowLegend:   plotly.Bool(t.ShowLegend),
		}, nil

	case KindLine:
		l := t.Line
		return &plotly.Scatter{
			X:           t.X,
			Y:           t.Y,
			Text:        t.Text,
			Mode:        t.Mode(),
			Opacity:     plotly.Float(l.Opacity),
			Line:        &plotly.Line{Width: l.Width, Color: t.Color, Dash: l.Dash},
			Name:        t.Name,
			HoverInfo:   t.HoverInfo,
			Fill:        l.Fill,
			ShowLegend:  plotly.Bool(t.ShowLegend),
			ConnectGaps: plotly.Bool(l.ConnectGaps),
		}, nil

	case KindBar:
		return &plotly.Bar{
			X:       t.X,
			Y:       t.Y,
			Text:    t.Text,
			Opacity: plotly.Float(t.Bar.Opacity),
			Marker:  &plotly.Marker{Color: t.Color},
			Name:    t.Name,
		}, nil
	}
	return nil, fmt.Errorf("%v: %w", t.Kind, ErrNotImplemented)
}

// String returns the JSON form of t's plotly trace.
func (t *Trace) String() string {
	obj, err := t.GraphObj()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	b, err := plotly.Marshal(obj)
	if err != nil {
		return fmt.Sprintf("<%v: %v>", t.Kind, err)
	}
	return string(b)
}
