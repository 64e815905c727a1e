// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package defaults loads the default trace options.
//
// Defaults are organized by category: "global" options apply to every
// trace kind, and "scatter", "line" and "bar" options apply to one
// kind each. A set of defaults is loaded once and then passed,
// read-only, to every trace constructor.
package defaults

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the name of the bundled defaults file.
const File = "defaults.yml"

//go:embed defaults.yml
var bundled []byte

// Defaults is the full defaults configuration.
type Defaults struct {
	Global  Global  `yaml:"global"`
	Scatter Scatter `yaml:"scatter"`
	Line    Line    `yaml:"line"`
	Bar     Bar     `yaml:"bar"`
}

// Global holds the options shared by all trace kinds.
type Global struct {
	Color string `yaml:"color" validate:"required"`
}

type Scatter struct {
	Symbol    string  `yaml:"symbol" validate:"required"`
	Size      float64 `yaml:"size" validate:"gte=0"`
	Opacity   float64 `yaml:"opacity" validate:"gte=0,lte=1"`
	LineWidth float64 `yaml:"line_width" validate:"gte=0"`
}

type Line struct {
	Width       float64 `yaml:"width" validate:"gte=0"`
	Opacity     float64 `yaml:"opacity" validate:"gte=0,lte=1"`
	Dash        string  `yaml:"dash" validate:"required"`
	Fill        string  `yaml:"fill" validate:"required"`
	ConnectGaps bool    `yaml:"connectgaps"`
}

type Bar struct {
	Gap     float64 `yaml:"gap" validate:"gte=0,lte=1"`
	Opacity float64 `yaml:"opacity" validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Load reads defaults from the YAML file at path. If path is "", it
// returns the bundled defaults.
//
// Nothing is cached: every call reads and parses the file again.
func Load(path string) (*Defaults, error) {
	if path == "" {
		d, err := Parse(bundled)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", File, err)
		}
		return d, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses YAML-encoded defaults. Every category and option must
// be present; unknown options are an error.
func Parse(data []byte) (*Defaults, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, cat := range []string{"global", "scatter", "line", "bar"} {
		if _, ok := raw[cat]; !ok {
			return nil, fmt.Errorf("missing %q defaults", cat)
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	d := new(Defaults)
	if err := dec.Decode(d); err != nil {
		return nil, err
	}
	if err := validate.Struct(d); err != nil {
		return nil, err
	}
	return d, nil
}
