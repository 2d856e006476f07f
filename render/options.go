// SPDX-License-Identifier: MIT
// Package: titrate/render
//
// options.go: functional options for Build and Render.
//
// Option constructors validate eagerly and panic on meaningless values;
// Build and Render themselves never panic.

package render

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format selects the image encoding.
type Format int

const (
	// FormatPNG encodes a raster image.
	FormatPNG Format = iota
	// FormatSVG encodes a vector image.
	FormatSVG
)

const (
	// DefaultWidth and DefaultHeight are the image size in pixels.
	DefaultWidth  = 700
	DefaultHeight = 500
	// DefaultSubject names the acid in the title and x-axis label.
	DefaultSubject = "histidine"
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the conventional file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat maps "png" or "svg" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "ParseFormat(%q)", s)
	}
}

// Option customizes the chart.
type Option func(*config)

type config struct {
	width, height int
	format        Format
	title         string
	subject       string
}

func newConfig(opts ...Option) config {
	cfg := config{
		width:   DefaultWidth,
		height:  DefaultHeight,
		format:  FormatPNG,
		subject: DefaultSubject,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.title == "" {
		cfg.title = defaultTitle(cfg.subject)
	}

	return cfg
}

// WithSize sets the image size in pixels. Panics if either side is < 1.
func WithSize(width, height int) Option {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("render: WithSize(%d, %d)", width, height))
	}
	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithFormat selects PNG or SVG output. Panics on any other value.
func WithFormat(f Format) Option {
	if f != FormatPNG && f != FormatSVG {
		panic(fmt.Sprintf("render: WithFormat(%v)", f))
	}
	return func(c *config) {
		c.format = f
	}
}

// WithTitle overrides the chart title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSubject names the acid in the default title and x-axis label.
// Panics on an empty name.
func WithSubject(name string) Option {
	if strings.TrimSpace(name) == "" {
		panic("render: WithSubject(\"\")")
	}
	return func(c *config) {
		c.subject = name
	}
}

func defaultTitle(subject string) string {
	return "Henderson–Hasselbalch Titration Curve: " + capitalize(subject) + " (triprotic)"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)

	return strings.ToUpper(string(r[0])) + string(r[1:])
}
