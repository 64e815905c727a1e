// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figspec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-iplot/defaults"
	"github.com/aclements/go-iplot/graph"
	"github.com/aclements/go-iplot/plotly"
	"github.com/google/go-cmp/cmp"
)

const testSpec = `
title: Heap
xtitle: GC
ytitle: MB
width: 640
height: 480
traces:
  - kind: scatter
    x: [1, 2, 3]
    y: [1.5, 2, 2.5]
    props:
      color: red
      size: 10
      label: true
      text: [a, b, c]
  - kind: line
    key: fit
    x: [1, 2, 3]
    y: [1, 2, 3]
    props:
      dash: dot
      connectgaps: true
  - kind: bar
    key: 7
    x: [a, b]
    y: [3, 4]
    props:
      width: 0.3
`

func testDefaults(t *testing.T) *defaults.Defaults {
	t.Helper()
	defs, err := defaults.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return defs
}

func TestBuild(t *testing.T) {
	s, err := Parse([]byte(testSpec))
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Build(testDefaults(t))
	if err != nil {
		t.Fatal(err)
	}

	wantKeys := []interface{}{"scatter_0", "fit", 7}
	if diff := cmp.Diff(wantKeys, c.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	sc := c.Trace("scatter_0")
	if sc.Kind != graph.KindScatter || sc.Color != "red" || sc.Scatter.Size != 10 || !sc.Scatter.Label {
		t.Errorf("scatter trace: %+v", sc)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, sc.Text); diff != "" {
		t.Errorf("scatter text mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(plotly.Values{1.5, 2, 2.5}, sc.Y); diff != "" {
		t.Errorf("scatter y mismatch (-want +got):\n%s", diff)
	}
	ln := c.Trace("fit")
	if ln.Line.Dash != "dot" || !ln.Line.ConnectGaps {
		t.Errorf("line trace: %+v", ln)
	}
	if br := c.Trace(7); br.Bar.Gap != 0.3 {
		t.Errorf("bar gap: got %v, want 0.3", br.Bar.Gap)
	}

	fig, err := c.Figure()
	if err != nil {
		t.Fatal(err)
	}
	l := fig.Layout
	if l.Title.Text != "Heap" || l.XAxis.Title.Text != "GC" || l.YAxis.Title.Text != "MB" || l.Width != 640 || l.Height != 480 {
		t.Errorf("unexpected layout %+v", l)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name, spec string
	}{
		{"no traces", "title: x\n"},
		{"unknown kind", "traces:\n  - kind: pie\n    x: [1]\n    y: [1]\n"},
		{"missing x", "traces:\n  - kind: bar\n    y: [1]\n"},
		{"empty y", "traces:\n  - kind: bar\n    x: [1]\n    y: []\n"},
		{"unknown field", "colour: red\ntraces:\n  - kind: bar\n    x: [1]\n    y: [1]\n"},
		{"bad bargap", "bargap: 2\ntraces:\n  - kind: bar\n    x: [1]\n    y: [1]\n"},
	} {
		if _, err := Parse([]byte(test.spec)); err == nil {
			t.Errorf("%s: want error", test.name)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	defs := testDefaults(t)
	for _, test := range []struct {
		name, spec, want string
	}{
		{"unknown prop", "traces:\n  - kind: bar\n    x: [1]\n    y: [1]\n    props: {dash: dot, zz: 1}\n", "unknown props dash, zz"},
		{"bad prop type", "traces:\n  - kind: line\n    x: [1]\n    y: [1]\n    props: {width: wide}\n", "prop width"},
		{"bad key", "traces:\n  - kind: line\n    key: [1]\n    x: [1]\n    y: [1]\n", "integer or string"},
	} {
		s, err := Parse([]byte(test.spec))
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		_, err = s.Build(defs)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: got %v, want error containing %q", test.name, err, test.want)
		}
	}
}

func TestScalarText(t *testing.T) {
	s, err := Parse([]byte("traces:\n  - kind: scatter\n    x: [1, 2, 3]\n    y: [1, 2, 3]\n    props: {text: hi, label: true}\n"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Build(testDefaults(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"hi", "hi", "hi"}, c.Trace("scatter_0").Text); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yml")
	if err := os.WriteFile(path, []byte(testSpec), 0666); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Traces) != 3 {
		t.Errorf("got %d traces, want 3", len(s.Traces))
	}
	if _, err := Load(path + ".missing"); err == nil {
		t.Errorf("loading missing file: want error")
	}
}
