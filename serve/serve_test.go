// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serve

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aclements/go-iplot/plotly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFigure() *plotly.Figure {
	return &plotly.Figure{
		Data: []plotly.Trace{
			&plotly.Scatter{X: plotly.Floats([]float64{1, 2}), Y: plotly.Floats([]float64{3, 4}), Mode: "lines"},
		},
		Layout: &plotly.Layout{Title: &plotly.Title{Text: "Served"}},
	}
}

func get(t *testing.T, h http.Handler, path string) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec.Result()
}

func TestFigureJSON(t *testing.T) {
	h := NewHandler(Static(testFigure()), Options{})
	resp := get(t, h, "/figure.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var fig struct {
		Data []struct {
			Type string
			X, Y []float64
		}
		Layout struct {
			Title struct{ Text string }
		}
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fig))
	require.Len(t, fig.Data, 1)
	assert.Equal(t, "scatter", fig.Data[0].Type)
	assert.Equal(t, []float64{1, 2}, fig.Data[0].X)
	assert.Equal(t, []float64{3, 4}, fig.Data[0].Y)
	assert.Equal(t, "Served", fig.Layout.Title.Text)
}

func TestPage(t *testing.T) {
	h := NewHandler(Static(testFigure()), Options{HTML: plotly.HTMLOptions{DivID: "fig"}})
	resp := get(t, h, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<title>Served</title>")
	assert.Contains(t, string(body), `Plotly.newPlot("fig"`)
}

func TestHealthAndMetrics(t *testing.T) {
	h := NewHandler(Static(testFigure()), Options{})
	resp := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	get(t, h, "/figure.json")
	resp = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `iplot_http_requests_total{code="200",route="/figure.json"} 1`)
}

func TestCORS(t *testing.T) {
	h := NewHandler(Static(testFigure()), Options{AllowedOrigins: []string{"http://example.com"}})
	req := httptest.NewRequest("GET", "/figure.json", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestVar(t *testing.T) {
	var v Var
	h := NewHandler(&v, Options{})

	fig, err := v.Figure()
	require.NoError(t, err)
	assert.Empty(t, fig.Data)

	v.Set(nil, errors.New("bad spec"))
	resp := get(t, h, "/figure.json")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	v.Set(testFigure(), nil)
	resp = get(t, h, "/figure.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWatch(t *testing.T) {
	old := WatchDelay
	WatchDelay = 10 * time.Millisecond
	defer func() { WatchDelay = old }()

	path := filepath.Join(t.TempDir(), "chart.yml")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0666))

	var builds int32
	build := func() (*plotly.Figure, error) {
		n := atomic.AddInt32(&builds, 1)
		fig := testFigure()
		fig.Layout.Title.Text = string(rune('0' + n))
		return fig, nil
	}

	var v Var
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, build, &v, nil) }()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&builds) >= 1 }, 5*time.Second, 5*time.Millisecond)
	// Give the watcher time to register before changing the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0666))
	require.Eventually(t, func() bool { return atomic.LoadInt32(&builds) >= 2 }, 5*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	fig, err := v.Figure()
	require.NoError(t, err)
	assert.NotEqual(t, "1", fig.Layout.Title.Text)
}
