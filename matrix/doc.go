// Package matrix provides the dense numeric table used by the speciation
// calculator: a row-major float64 matrix with bounds-checked accessors and
// a handful of deterministic column kernels.
//
// The package provides:
//
//   - Dense, a row-major r×c buffer (offset = i*c + j) with safe At/Set.
//   - NormalizeColumnsL1, which scales every column to unit L1 norm and
//     returns the original norms (used to turn equilibrium terms into mole
//     fractions and to keep the denominator D per sample).
//   - WeightedColumnSums (wᵀ·A), used for weighted averages across rows.
//   - ColumnSums and AllClose for closure checks and tests.
//
// Matrices in this package are small in one dimension (a handful of
// species) and long in the other (thousands of samples), so every kernel
// walks the flat buffer in a fixed i→j order and never allocates more than
// its output.
package matrix
