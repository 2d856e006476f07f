// SPDX-License-Identifier: MIT
// Package: titrate/render
//
// errors.go: sentinel errors for chart assembly and encoding.

package render

import "github.com/cockroachdb/errors"

var (
	// ErrNilInput indicates a nil distribution or acid.
	ErrNilInput = errors.New("render: nil input")

	// ErrTooFewSamples indicates a distribution with fewer than two samples;
	// a line needs two points.
	ErrTooFewSamples = errors.New("render: too few samples")

	// ErrUnknownFormat indicates an output format other than png or svg.
	ErrUnknownFormat = errors.New("render: unknown format")
)
