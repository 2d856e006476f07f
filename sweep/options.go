// SPDX-License-Identifier: MIT
// Package: titrate/sweep
//
// options.go: functional options for the pH grid.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • No hidden globals; everything flows through config.

package sweep

import (
	"fmt"
	"math"
)

// Option customizes the pH grid by mutating a config before generation.
type Option func(*config)

// config aggregates the knobs used by PH. Passed by value after resolution.
type config struct {
	points int
	lo, hi float64
}

// newConfig starts from the documented defaults and applies options in
// order (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{
		points: DefaultPoints,
		lo:     MinPH,
		hi:     MaxPH,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPoints sets the number of samples. Panics if n < 1.
func WithPoints(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sweep: WithPoints(%d)", n))
	}
	return func(c *config) {
		c.points = n
	}
}

// WithRange sets the inclusive bounds. Panics on non-finite bounds or lo > hi.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(fmt.Sprintf("sweep: WithRange(%g, %g)", lo, hi))
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}
