// SPDX-License-Identifier: MIT
// Package: titrate/acid
//
// errors.go: sentinel errors for the acid package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf at the detection site.

package acid

import "github.com/cockroachdb/errors"

// ErrInvalidParameter is the kind of every rejected constant set: a
// non-positive or non-finite pKa, a non-finite pI, or a wrong number of
// pKa values.
var ErrInvalidParameter = errors.New("acid: invalid parameter")

// ErrTooFewValues indicates that fewer than Protons pKa values were given.
// It wraps ErrInvalidParameter, so both sentinels match.
var ErrTooFewValues = errors.Wrap(ErrInvalidParameter, "acid: too few pKa values")
