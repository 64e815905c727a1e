// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figspec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-iplot/graph"
)

// propReader extracts typed options from a props map. It records the
// first type error and which options were consumed, so finish can
// report both bad and unknown options.
type propReader struct {
	m    map[string]interface{}
	used map[string]bool
	err  error
}

func props(m map[string]interface{}) *propReader {
	return &propReader{m: m, used: make(map[string]bool)}
}

func (p *propReader) get(name string) (interface{}, bool) {
	v, ok := p.m[name]
	if ok {
		p.used[name] = true
	}
	return v, ok
}

func (p *propReader) fail(name string, v interface{}, want string) {
	if p.err == nil {
		p.err = fmt.Errorf("prop %s: %v is not a %s", name, v, want)
	}
}

func (p *propReader) str(name string) *string {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		p.fail(name, v, "string")
		return nil
	}
	return &s
}

func (p *propReader) float(name string) *float64 {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	var x float64
	switch v := v.(type) {
	case int:
		x = float64(v)
	case float64:
		x = v
	default:
		p.fail(name, v, "number")
		return nil
	}
	return &x
}

func (p *propReader) bool(name string) *bool {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		p.fail(name, v, "boolean")
		return nil
	}
	return &b
}

// strings reads a list of strings. A single string applies to every
// point, so it is repeated n times.
func (p *propReader) strings(name string, n int) []string {
	v, ok := p.get(name)
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case string:
		ss := make([]string, n)
		for i := range ss {
			ss[i] = v
		}
		return ss
	case []interface{}:
		ss := make([]string, len(v))
		for i, x := range v {
			ss[i] = fmt.Sprint(x)
		}
		return ss
	}
	p.fail(name, v, "string or list")
	return nil
}

// common reads the options shared by all trace kinds of a trace with
// n points into c.
func (p *propReader) common(c *graph.Props, n int) {
	c.Text = p.strings("text", n)
	c.Color = p.str("color")
	c.Name = p.str("name")
	c.HoverInfo = p.str("hoverinfo")
	c.ShowLegend = p.bool("showlegend")
}

func (p *propReader) finish() error {
	if p.err != nil {
		return p.err
	}
	var unknown []string
	for name := range p.m {
		if !p.used[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown props %s", strings.Join(unknown, ", "))
	}
	return nil
}
