// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colour parses the colour strings plotly.js accepts.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/colornames"
)

// Parse parses s, which may be "#rgb", "#rrggbb", "rgb(r, g, b)",
// "rgba(r, g, b, a)" or a CSS colour name, and scales its alpha by
// opacity.
func Parse(s string, opacity float64) (color.NRGBA, error) {
	c, err := parse(strings.TrimSpace(s))
	if err != nil {
		return c, err
	}
	c.A = uint8(math.Round(float64(c.A) * clamp(opacity)))
	return c, nil
}

func parse(s string) (color.NRGBA, error) {
	if hex := strings.TrimPrefix(s, "#"); hex != s {
		if (len(hex) != 3 && len(hex) != 6) || strings.Trim(strings.ToLower(hex), "0123456789abcdef") != "" {
			return color.NRGBA{}, fmt.Errorf("bad hex colour %q", s)
		}
		c := drawing.ColorFromHex(hex)
		return color.NRGBA{c.R, c.G, c.B, 255}, nil
	}

	var r, g, b uint8
	var a float64 = 1
	if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err == nil {
		return color.NRGBA{r, g, b, 255}, nil
	}
	if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err == nil {
		return color.NRGBA{r, g, b, uint8(math.Round(255 * clamp(a)))}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{c.R, c.G, c.B, c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
}

func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
