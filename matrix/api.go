// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, documented entry points over the private kernels.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ColumnSums returns Σ_i X[i,j] for each column j.
// Complexity: O(r*c).
func ColumnSums(X Matrix) ([]float64, error) { return columnSums(X) }

// NormalizeColumnsL1 returns a copy of X whose columns sum (in absolute
// value) to one, together with the original column L1 norms. Columns with
// a zero norm are copied unchanged.
// Complexity: O(r*c).
func NormalizeColumnsL1(X Matrix) (*Dense, []float64, error) { return normalizeColumnsL1(X) }

// WeightedColumnSums returns wᵀ·X, i.e. y_j = Σ_i w_i·X[i,j].
// len(w) must equal X.Rows().
// Complexity: O(r*c).
func WeightedColumnSums(X Matrix, w []float64) ([]float64, error) {
	return weightedColumnSums(X, w)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
