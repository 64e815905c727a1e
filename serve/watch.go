// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serve

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aclements/go-iplot/plotly"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// WatchDelay is how long Watch waits for a file to settle before
// rebuilding.
var WatchDelay = 200 * time.Millisecond

// Watch rebuilds the figure in v whenever the file at path changes,
// until ctx is done. It calls build once before watching. A failed
// build is stored in v, so requests report the error until the file
// is fixed.
func Watch(ctx context.Context, path string, build func() (*plotly.Figure, error), v *Var, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	v.Set(build())

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are
	// noticed.
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	logger.Info("watching chart spec", zap.String("path", path))

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("chart spec changed", zap.String("op", ev.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			fig, err := build()
			v.Set(fig, err)
			if err != nil {
				logger.Warn("rebuilding figure", zap.Error(err))
			} else {
				logger.Info("figure rebuilt", zap.Int("traces", len(fig.Data)))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("file watcher", zap.Error(err))
		}
	}
}
