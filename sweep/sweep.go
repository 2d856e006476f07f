// SPDX-License-Identifier: MIT
// Package: titrate/sweep
//
// sweep.go: deterministic evenly spaced grids.
//
// Model:
//   - step = (hi − lo)/(n − 1)
//   - x_i  = lo + i·step        for i = 0..n−2
//   - x_{n−1} = hi              (exact endpoint, no accumulated rounding)
//   - n == 1 → [lo]
//
// O(n) time, O(n) memory. No panics. No global state.

package sweep

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultPoints is the number of pH samples of the default grid.
	DefaultPoints = 2000
	// MinPH is the lower bound of the default grid.
	MinPH = 0.0
	// MaxPH is the upper bound of the default grid.
	MaxPH = 14.0
)

// Linspace returns n evenly spaced samples over [lo, hi].
//
// Errors:
//   - ErrBadSize when n < 1.
//   - ErrBadRange when lo or hi is not finite, or lo > hi.
func Linspace(n int, lo, hi float64) ([]float64, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrBadSize, "Linspace: n=%d", n)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, errors.Wrapf(ErrBadRange, "Linspace: [%g, %g] is not finite", lo, hi)
	}
	if lo > hi {
		return nil, errors.Wrapf(ErrBadRange, "Linspace: lo=%g > hi=%g", lo, hi)
	}

	out := make([]float64, n)
	out[0] = lo
	if n == 1 {
		return out, nil
	}

	step := (hi - lo) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi

	return out, nil
}

// PH returns the pH grid: DefaultPoints samples over [MinPH, MaxPH] unless
// overridden with WithPoints / WithRange.
func PH(opts ...Option) ([]float64, error) {
	cfg := newConfig(opts...)

	return Linspace(cfg.points, cfg.lo, cfg.hi)
}
