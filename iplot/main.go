// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command iplot renders a chart described by a YAML chart spec.
//
// The output format is chosen by the extension of the -o file: .html
// writes a standalone plotly.js page, .json the plotly figure, .svg
// and .png static images. Without -o, the figure JSON is written to
// stdout. With -http, iplot serves the chart instead, and with -watch
// it rebuilds the chart whenever the spec file changes.
//
// Chart methods can be applied with -call, which may be repeated:
//
//	iplot -call 'Title "Heap size"' -call 'Size 800 600' -o heap.html heap.yml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/aclements/go-iplot/defaults"
	"github.com/aclements/go-iplot/figspec"
	"github.com/aclements/go-iplot/figure"
	"github.com/aclements/go-iplot/plotly"
	"github.com/aclements/go-iplot/render"
	"github.com/aclements/go-iplot/serve"
	"github.com/aclements/go-iplot/thread"
	"go.uber.org/zap"
)

func main() {
	log.SetPrefix("iplot: ")
	log.SetFlags(0)

	var calls callList
	var (
		flagDefaults = flag.String("defaults", "", "load trace defaults from `file` (default: bundled)")
		flagOut      = flag.String("o", "", "write output to `file` (default: JSON to stdout)")
		flagWidth    = flag.Int("width", 800, "image `width` for SVG and PNG output")
		flagHeight   = flag.Int("height", 600, "image `height` for SVG and PNG output")
		flagHTTP     = flag.String("http", "", "serve the chart on `addr` instead of writing it")
		flagWatch    = flag.Bool("watch", false, "with -http, rebuild the chart when the spec changes")
		flagVerbose  = flag.Bool("v", false, "log requests and rebuilds")
	)
	flag.Var(&calls, "call", "apply chart method `call`, e.g. 'Title \"x\"' (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] spec.yml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	specPath := flag.Arg(0)

	defs, err := defaults.Load(*flagDefaults)
	if err != nil {
		log.Fatal(err)
	}
	build := func() (*plotly.Figure, error) {
		return buildFigure(specPath, defs, calls)
	}

	if *flagHTTP != "" {
		logger := zap.NewNop()
		if *flagVerbose {
			if logger, err = zap.NewDevelopment(); err != nil {
				log.Fatal(err)
			}
		}
		defer logger.Sync()
		if err := serveChart(*flagHTTP, *flagWatch, specPath, build, logger); err != nil {
			log.Fatal(err)
		}
		return
	}

	fig, err := build()
	if err != nil {
		log.Fatal(err)
	}
	if err := writeFigure(fig, *flagOut, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
}

func buildFigure(path string, defs *defaults.Defaults, calls []thread.Call) (*plotly.Figure, error) {
	spec, err := figspec.Load(path)
	if err != nil {
		return nil, err
	}
	chart, err := spec.Build(defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res, err := thread.Apply(chart, calls)
	if err != nil {
		return nil, err
	}
	chart, ok := res.(*figure.Chart)
	if !ok {
		return nil, fmt.Errorf("calls returned %T, not a chart", res)
	}
	return chart.Figure()
}

func writeFigure(fig *plotly.Figure, out string, width, height int) error {
	if out == "" {
		return plotly.Encode(os.Stdout, fig)
	}

	ext := strings.TrimPrefix(filepath.Ext(out), ".")
	if ext == "html" {
		_, err := figure.ToHTML(fig, out)
		return err
	}

	var write func(*os.File) error
	switch ext {
	case "json":
		write = func(f *os.File) error { return plotly.Encode(f, fig) }
	case "svg":
		write = func(f *os.File) error { return render.WriteSVG(f, fig, width, height) }
	case "png":
		write = func(f *os.File) error { return render.WritePNG(f, fig, width, height) }
	default:
		return fmt.Errorf("unknown output format %q", ext)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serveChart(addr string, watch bool, path string, build func() (*plotly.Figure, error), logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var src serve.Var
	if watch {
		go func() {
			if err := serve.Watch(ctx, path, build, &src, logger); err != nil {
				log.Fatal(err)
			}
		}()
	} else {
		fig, err := build()
		if err != nil {
			return err
		}
		src.Set(fig, nil)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           serve.NewHandler(&src, serve.Options{Logger: logger}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sctx)
	}()
	log.Printf("serving on http://%s/", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
