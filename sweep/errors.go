// SPDX-License-Identifier: MIT
// Package: titrate/sweep
//
// errors.go: sentinel errors for the sweep package.
//
// Callers MUST use errors.Is(err, ErrX) to branch on semantics; the
// generators wrap these with the offending values.

package sweep

import "github.com/cockroachdb/errors"

// ErrBadSize indicates a non-positive number of samples.
var ErrBadSize = errors.New("sweep: invalid number of samples")

// ErrBadRange indicates a non-finite bound or lo > hi.
var ErrBadRange = errors.New("sweep: invalid range")
