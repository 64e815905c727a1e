// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotly

import (
	"bytes"
	"html/template"
	"io"
	"os"

	"github.com/google/uuid"
)

// DefaultScriptURL is where HTML pages load plotly.js from unless
// HTMLOptions says otherwise.
const DefaultScriptURL = "https://cdn.plot.ly/plotly-latest.min.js"

// HTMLOptions controls WriteHTML.
type HTMLOptions struct {
	// Title is the document title. If empty, the figure's layout
	// title is used.
	Title string

	// ScriptURL is the location of plotly.js. If empty,
	// DefaultScriptURL is used.
	ScriptURL string

	// DivID is the id of the element the figure is drawn in. If
	// empty, a random UUID is used.
	DivID string

	// ShowLink adds plotly's "Edit chart" link to the figure.
	ShowLink bool
}

const htmlPage = `<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <script src="{{.ScriptURL}}"></script>
  </head>
  <body>
    <div id="{{.DivID}}" class="plotly-graph-div" style="height:100%; width:100%;"></div>
    <script type="text/javascript">
      Plotly.newPlot({{.DivID}}, {{.Data}}, {{.Layout}}, {{.Config}});
    </script>
  </body>
</html>
`

var htmlTemplate = template.Must(template.New("page").Parse(htmlPage))

type plotConfig struct {
	ShowLink   bool `json:"showLink"`
	Responsive bool `json:"responsive"`
}

// WriteHTML writes fig to w as a standalone HTML document that draws
// the figure with plotly.js.
func WriteHTML(w io.Writer, fig *Figure, opts HTMLOptions) error {
	traces := fig.Data
	if traces == nil {
		traces = []Trace{}
	}
	data, err := Marshal(traces)
	if err != nil {
		return err
	}
	layout := []byte("{}")
	if fig.Layout != nil {
		if layout, err = Marshal(fig.Layout); err != nil {
			return err
		}
	}
	config, err := Marshal(plotConfig{ShowLink: opts.ShowLink, Responsive: true})
	if err != nil {
		return err
	}

	if opts.Title == "" && fig.Layout != nil && fig.Layout.Title != nil {
		opts.Title = fig.Layout.Title.Text
	}
	if opts.ScriptURL == "" {
		opts.ScriptURL = DefaultScriptURL
	}
	if opts.DivID == "" {
		opts.DivID = uuid.NewString()
	}

	// encoding/json escapes <, > and &, so the encoded figure is
	// safe to splice into a script element.
	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, struct {
		HTMLOptions
		Data, Layout, Config template.JS
	}{opts, template.JS(data), template.JS(layout), template.JS(config)})
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// PlotFile writes fig as an HTML document to filename and returns
// filename.
func PlotFile(fig *Figure, filename string, opts HTMLOptions) (string, error) {
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := WriteHTML(f, fig, opts); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return filename, nil
}
