// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/aclements/go-iplot/plotly"
	"github.com/aclements/go-iplot/serve"
	"go.uber.org/zap"
)

// ShowOptions controls Show.
type ShowOptions struct {
	// Addr is the address to listen on. If empty, Show listens on
	// a random port on localhost.
	Addr string

	// Logger receives server logs. If nil, logs are discarded.
	Logger *zap.Logger

	// Ready, if non-nil, is called with the page URL once the
	// server is listening.
	Ready func(url string)
}

// Show displays fig interactively by serving it as a web page until
// ctx is done. It returns nil once the server has shut down cleanly.
func Show(ctx context.Context, fig *plotly.Figure, opts ShowOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := opts.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           serve.NewHandler(serve.Static(fig), serve.Options{Logger: logger}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/"
	logger.Info("showing figure", zap.String("url", url))
	if opts.Ready != nil {
		opts.Ready(url)
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
