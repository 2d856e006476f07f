// SPDX-License-Identifier: MIT
// Package: titrate/speciation
//
// errors.go: sentinel errors for the distribution calculator.
// Callers MUST use errors.Is(err, ErrX); context is attached with Wrapf.

package speciation

import "github.com/cockroachdb/errors"

var (
	// ErrNilAcid indicates that Compute/Evaluate received a nil *acid.Acid.
	ErrNilAcid = errors.New("speciation: acid is nil")

	// ErrEmptySweep indicates an empty pH sweep.
	ErrEmptySweep = errors.New("speciation: pH sweep is empty")

	// ErrNaNInf indicates a non-finite pH sample, or a sample so extreme that
	// the equilibrium terms overflow or all underflow to zero.
	ErrNaNInf = errors.New("speciation: non-finite value")

	// ErrOutOfRange indicates an index or a target n̄ outside the computed curve.
	ErrOutOfRange = errors.New("speciation: out of range")

	// ErrNotMonotonic indicates an inverse lookup on a sweep whose pH values
	// are not in ascending order.
	ErrNotMonotonic = errors.New("speciation: pH sweep is not ascending")

	// ErrSampleMismatch indicates two distributions over sweeps of different
	// lengths.
	ErrSampleMismatch = errors.New("speciation: sample count mismatch")
)
