// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serve serves plotly figures over HTTP.
//
// The handler answers:
//
//	GET /             the figure as an HTML page
//	GET /figure.json  the figure as JSON
//	GET /healthz      "ok"
//	GET /metrics      Prometheus metrics
package serve

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/aclements/go-iplot/plotly"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// A Source supplies the figure to serve. Figure is called once per
// request and may be called concurrently.
type Source interface {
	Figure() (*plotly.Figure, error)
}

type static struct {
	fig *plotly.Figure
}

func (s static) Figure() (*plotly.Figure, error) { return s.fig, nil }

// Static returns a Source that always supplies fig.
func Static(fig *plotly.Figure) Source {
	return static{fig}
}

// Var is a Source whose figure can be replaced while it is being
// served. The zero Var supplies an empty figure.
type Var struct {
	mu  sync.RWMutex
	fig *plotly.Figure
	err error
}

// Set replaces the figure supplied by v. If err is non-nil, requests
// fail with err until the next Set.
func (v *Var) Set(fig *plotly.Figure, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fig, v.err = fig, err
}

func (v *Var) Figure() (*plotly.Figure, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.err != nil {
		return nil, v.err
	}
	if v.fig == nil {
		return &plotly.Figure{}, nil
	}
	return v.fig, nil
}

// Options configures a handler.
type Options struct {
	// Logger receives request logs. If nil, logs are discarded.
	Logger *zap.Logger

	// Registry receives the handler's metrics and is exposed on
	// /metrics. If nil, a new registry is used.
	Registry *prometheus.Registry

	// AllowedOrigins lists the origins allowed to fetch the figure
	// cross-origin. If empty, any origin is allowed.
	AllowedOrigins []string

	// HTML controls the rendered page.
	HTML plotly.HTMLOptions
}

type server struct {
	src     Source
	opts    Options
	logger  *zap.Logger
	metrics *metrics
}

// NewHandler returns an HTTP handler serving the figure supplied by
// src.
func NewHandler(src Source, opts Options) http.Handler {
	s := &server{src: src, opts: opts, logger: opts.Logger}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(reg)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handlePage)
	r.Get("/figure.json", s.handleJSON)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Method("GET", "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.metrics.observe(route, status, time.Since(start))
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
		)
	})
}

func (s *server) figure(w http.ResponseWriter) (*plotly.Figure, bool) {
	fig, err := s.src.Figure()
	if err != nil {
		s.logger.Error("figure unavailable", zap.Error(err))
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return nil, false
	}
	return fig, true
}

func (s *server) handlePage(w http.ResponseWriter, r *http.Request) {
	fig, ok := s.figure(w)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := plotly.WriteHTML(&buf, fig, s.opts.HTML); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *server) handleJSON(w http.ResponseWriter, r *http.Request) {
	fig, ok := s.figure(w)
	if !ok {
		return
	}
	b, err := plotly.Marshal(fig)
	if err != nil {
		s.logger.Error("encoding figure", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}
