// Package acid models the dissociation constants of a triprotic weak acid.
//
// An Acid is built from three pKa values and an isoelectric point (pI). The
// pKa values are sorted ascending on construction, so Ka1 (from the smallest
// pKa) is always the largest dissociation constant and the polyprotic
// distribution formulas can rely on Ka1 ≥ Ka2 ≥ Ka3:
//
//	Ka_i = 10^(-pKa_i)
//
// The pI is carried for display only; nothing in the distribution depends
// on it.
//
// Guarantees:
//
//   - Immutable: accessors return copies; an Acid never changes after New.
//   - Order-insensitive: New(2.1, 9.8, 3.9) and New(9.8, 3.9, 2.1) produce
//     bit-identical constants.
//   - Strict validation: fewer than three pKa values, more than three,
//     non-positive or non-finite values all fail with ErrInvalidParameter
//     (errors.Is); too few values additionally match ErrTooFewValues.
//
// Histidine returns the default preset (pKa 2.1, 3.9, 9.8; pI 3.0).
package acid
