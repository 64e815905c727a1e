// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-iplot/defaults"
	"github.com/aclements/go-iplot/graph"
	"github.com/aclements/go-iplot/plotly"
	"github.com/google/go-cmp/cmp"
)

func testChart(t *testing.T) *Chart {
	t.Helper()
	defs, err := defaults.Load("")
	if err != nil {
		t.Fatal(err)
	}
	x := plotly.Floats([]float64{1, 2, 3})
	return NewChart().
		Add(nil, graph.NewScatter(x, plotly.Floats([]float64{4, 5, 6}), defs, graph.ScatterProps{})).
		Add("fit", graph.NewLine(x, plotly.Floats([]float64{4.5, 5, 5.5}), defs, graph.LineProps{})).
		Add(nil, graph.NewBar(x, plotly.Floats([]float64{1, 0, 1}), defs, graph.BarProps{Width: graph.Float(0.4)})).
		Title("Test")
}

func testFigure(t *testing.T) *plotly.Figure {
	t.Helper()
	fig, err := testChart(t).Figure()
	if err != nil {
		t.Fatal(err)
	}
	return fig
}

func TestToJSON(t *testing.T) {
	fig := testFigure(t)
	s, err := ToJSON(fig)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Data []struct {
			X, Y []float64
		}
	}
	if err := json.Unmarshal([]byte(s), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Data) != len(fig.Data) {
		t.Fatalf("got %d traces, want %d", len(got.Data), len(fig.Data))
	}
	want := [][2][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{1, 2, 3}, {4.5, 5, 5.5}},
		{{1, 2, 3}, {1, 0, 1}},
	}
	for i, tr := range got.Data {
		if diff := cmp.Diff(want[i], [2][]float64{tr.X, tr.Y}); diff != "" {
			t.Errorf("trace %d coordinates mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestToJSONError(t *testing.T) {
	fig := &plotly.Figure{Data: []plotly.Trace{
		&plotly.Bar{X: plotly.Values{func() {}}, Y: plotly.Floats([]float64{1})},
	}}
	if _, err := ToJSON(fig); err == nil {
		t.Errorf("want error encoding a func")
	}
}

func TestToHTML(t *testing.T) {
	dir := t.TempDir()
	fig := testFigure(t)
	for _, name := range []string{"chart.htm", "chart.HTML", "chart", "chart.html.txt", ".html"} {
		path := filepath.Join(dir, name)
		if _, err := ToHTML(fig, path); !errors.Is(err, ErrValue) {
			t.Errorf("%s: got %v, want ErrValue", name, err)
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: file written despite bad extension", name)
		}
	}

	path := filepath.Join(dir, "chart.html")
	got, err := ToHTML(fig, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("got %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestUniqueKey(t *testing.T) {
	keys := []interface{}{"scatter_0", "a", 3}
	for _, test := range []struct {
		typ  string
		name interface{}
		want interface{}
	}{
		{"scatter", nil, "scatter_3"},
		{"bar", nil, "bar_3"},
		{"line", "b", "b"},
		{"line", 4, 4},
		{"line", 3, 4},
		{"line", "a", "a3"},
	} {
		got, err := UniqueKey(test.typ, test.name, keys)
		if err != nil {
			t.Errorf("UniqueKey(%q, %v): %v", test.typ, test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("UniqueKey(%q, %v) = %v, want %v", test.typ, test.name, got, test.want)
		}
	}

	if got, _ := UniqueKey("x", nil, nil); got != "x_0" {
		t.Errorf("UniqueKey with no keys = %v, want x_0", got)
	}
	// The adjusted key is not checked again.
	if got, _ := UniqueKey("x", 1, []interface{}{1, 2}); got != 2 {
		t.Errorf("UniqueKey(1) with 2 in use = %v, want 2", got)
	}
	if got, _ := UniqueKey("x", "a", []interface{}{"a", "a2"}); got != "a2" {
		t.Errorf("UniqueKey(a) with a2 in use = %v, want a2", got)
	}

	for _, name := range []interface{}{1.5, true, []string{"a"}, int64(3)} {
		if _, err := UniqueKey("x", name, keys); !errors.Is(err, ErrValue) {
			t.Errorf("UniqueKey(%#v): got %v, want ErrValue", name, err)
		}
	}
}

func TestChart(t *testing.T) {
	c := testChart(t)
	wantKeys := []interface{}{"scatter_0", "fit", "bar_2"}
	if diff := cmp.Diff(wantKeys, c.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if tr := c.Trace("fit"); tr == nil || tr.Kind != graph.KindLine {
		t.Errorf("Trace(fit) = %v, want line trace", tr)
	}
	if tr := c.Trace("missing"); tr != nil {
		t.Errorf("Trace(missing) = %v, want nil", tr)
	}

	fig, err := c.XTitle("x").YTitle("y").Size(640, 480).Legend(false).Figure()
	if err != nil {
		t.Fatal(err)
	}
	want := &plotly.Layout{
		Title:      &plotly.Title{Text: "Test"},
		XAxis:      &plotly.Axis{Title: &plotly.Title{Text: "x"}},
		YAxis:      &plotly.Axis{Title: &plotly.Title{Text: "y"}},
		Width:      640,
		Height:     480,
		ShowLegend: plotly.Bool(false),
		BarGap:     plotly.Float(0.4),
	}
	if diff := cmp.Diff(want, fig.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}

	fig, err = c.BarGap(0.1).Figure()
	if err != nil {
		t.Fatal(err)
	}
	if *fig.Layout.BarGap != 0.1 {
		t.Errorf("bar gap: got %v, want 0.1", *fig.Layout.BarGap)
	}
}

func TestChartLayout(t *testing.T) {
	c := NewChart().Layout(map[string]interface{}{
		"title":      "T",
		"width":      "800",
		"height":     600,
		"showlegend": "false",
		"bargap":     0.3,
	})
	fig, err := c.Figure()
	if err != nil {
		t.Fatal(err)
	}
	l := fig.Layout
	if l.Title.Text != "T" || l.Width != 800 || l.Height != 600 || *l.ShowLegend || *l.BarGap != 0.3 {
		t.Errorf("unexpected layout %+v", l)
	}

	c = NewChart().Layout(map[string]interface{}{"colour": "red"})
	if !errors.Is(c.Err(), ErrValue) {
		t.Errorf("unknown option: got %v, want ErrValue", c.Err())
	}
}

func TestChartErrors(t *testing.T) {
	defs, err := defaults.Load("")
	if err != nil {
		t.Fatal(err)
	}
	x := plotly.Floats([]float64{1})

	c := NewChart().Add(2.5, graph.NewBar(x, x, defs, graph.BarProps{}))
	if !errors.Is(c.Err(), ErrValue) {
		t.Errorf("bad key: got %v, want ErrValue", c.Err())
	}
	// The first error sticks.
	c.Size(-1, 0)
	if _, err := c.Figure(); !errors.Is(err, ErrValue) || !strings.Contains(err.Error(), "key") {
		t.Errorf("got %v, want bad key error", err)
	}

	c = NewChart().Add(nil, graph.NewTrace(x, x, defs, graph.Props{}))
	if _, err := c.Figure(); !errors.Is(err, graph.ErrNotImplemented) {
		t.Errorf("base trace: got %v, want ErrNotImplemented", err)
	}
}

func TestShow(t *testing.T) {
	fig := testFigure(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	urls := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- Show(ctx, fig, ShowOptions{Ready: func(url string) { urls <- url }})
	}()

	var url string
	select {
	case url = <-urls:
	case err := <-done:
		t.Fatalf("Show returned early: %v", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "<title>Test</title>") {
		t.Errorf("page does not show the figure:\n%s", body)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Show: %v", err)
	}
}

func TestChartLayoutErrorOrder(t *testing.T) {
	// With several bad options, the first by name is reported.
	for i := 0; i < 20; i++ {
		c := NewChart().Layout(map[string]interface{}{
			"zz":     1,
			"width":  "wide",
			"aa":     1,
			"height": "tall",
		})
		if err := c.Err(); err == nil || !strings.Contains(err.Error(), `"aa"`) {
			t.Fatalf("got %v, want error for option aa", err)
		}
	}
}

func TestUniqueKeyUncomparableKeys(t *testing.T) {
	// Keys of other types never equal an int or string name.
	keys := []interface{}{[]int{1}, map[string]int{}, "a"}
	got, err := UniqueKey("x", "a", keys)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a3" {
		t.Errorf("got %v, want a3", got)
	}
	if got, _ := UniqueKey("x", 1, keys); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}
