// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure exports plotly figures and assembles them from
// traces.
package figure

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aclements/go-iplot/plotly"
)

// ErrValue is wrapped by errors caused by an unacceptable argument
// value.
var ErrValue = errors.New("invalid value")

// ToJSON returns the JSON serialization of fig.
func ToJSON(fig *plotly.Figure) (string, error) {
	b, err := plotly.Marshal(fig)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToHTML renders fig as an HTML page and saves it at path, which must
// have an "html" extension. It returns the path written.
func ToHTML(fig *plotly.Figure, path string) (string, error) {
	// A dotfile such as ".html" has no extension.
	if ext := filepath.Ext(path); ext == "" || ext == filepath.Base(path) || ext[1:] != "html" {
		return "", fmt.Errorf("%w: the filename must have an 'html' extension", ErrValue)
	}
	return plotly.PlotFile(fig, path, plotly.HTMLOptions{})
}
