// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column reductions and column normalization as deterministic
//     compositions over the ew* micro-kernels.
//
// Exposed API (see api.go):
//   - ColumnSums(X)            -> sums              // Σ_i X[i,j]
//   - NormalizeColumnsL1(X)    -> (Y, norms)        // L1 column normalization (degenerate columns unchanged)
//   - WeightedColumnSums(X, w) -> y                 // y_j = Σ_i w_i·X[i,j] (wᵀ·X)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops; column accumulators are
//     updated row by row so the flat buffer is read sequentially.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnSums         = "ColumnSums"
	opNormalizeColumnsL1 = "NormalizeColumnsL1"
	opWeightedColumnSums = "WeightedColumnSums"
)

// weightedColumnSums computes y_j = Σ_i w_i·X[i,j].
// Implementation:
//   - Stage 1: Validate X (non-nil) and len(w) == Rows().
//   - Stage 2: Accumulate row by row into a zeroed length-c vector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func weightedColumnSums(X Matrix, w []float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opWeightedColumnSums, err)
	}
	if err := ValidateVecLen(w, X.Rows()); err != nil {
		return nil, matrixErrorf(opWeightedColumnSums, err)
	}

	r, c := X.Rows(), X.Cols()
	y := make([]float64, c)

	var i, j int
	var wi float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			wi = w[i]
			if wi == 0 {
				continue // zero-weight rows contribute nothing
			}
			base := i * c
			for j = 0; j < c; j++ {
				y[j] += wi * d.data[base+j]
			}
		}
		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		wi = w[i]
		if wi == 0 {
			continue
		}
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opWeightedColumnSums, err)
			}
			y[j] += wi * v
		}
	}

	return y, nil
}

// columnSums returns Σ_i X[i,j] for every column j.
// Complexity: O(r*c) time, O(c) space.
func columnSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}
	ones := make([]float64, X.Rows())
	for i := range ones {
		ones[i] = 1.0
	}
	sums, err := weightedColumnSums(X, ones)
	if err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}

	return sums, nil
}

// normalizeColumnsL1 scales each column to have L1-norm == 1 when possible.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-column L1 norms Σ_i |x_ij| in one row-major pass.
//   - Stage 3: Build column scale factors (1/norm); for norm==0 use scale=1
//     to keep the column unchanged.
//   - Stage 4: Apply ewScaleCols to produce a normalized copy.
//
// Behavior highlights:
//   - Degenerate columns (norm==0) are left unchanged (stable policy).
//   - Non-finite norms are reported as ErrNaNInf.
//
// Returns:
//   - *Dense: normalized copy (r×c).
//   - []float64: original L1 norms (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) auxiliary slices).
func normalizeColumnsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				norms[j] += math.Abs(d.data[base+j])
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeColumnsL1, err)
				}
				norms[j] += math.Abs(v)
			}
		}
	}

	scale := make([]float64, c)
	for j = 0; j < c; j++ {
		switch {
		case math.IsInf(norms[j], 0) || math.IsNaN(norms[j]):
			return nil, nil, matrixErrorf(opNormalizeColumnsL1, ErrNaNInf)
		case norms[j] > 0:
			scale[j] = 1.0 / norms[j]
		default:
			scale[j] = 1.0 // preserves the column exactly
		}
	}

	Y, err := ewScaleCols(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL1, err)
	}

	return Y, norms, nil
}
