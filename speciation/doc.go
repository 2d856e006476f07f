// Package speciation computes the protonation-state distribution of a
// triprotic acid across a pH sweep and the resulting titration curve.
//
// What & Why:
//
//	For every pH sample the hydrogen-ion concentration is h = 10^(-pH) and
//	the four protonation states H3A, H2A⁻, HA²⁻, A³⁻ carry the unnormalised
//	weights
//
//	  t0 = h³,  t1 = Ka1·h²,  t2 = Ka1·Ka2·h,  t3 = Ka1·Ka2·Ka3
//
//	Their sum is the denominator D and the mole fractions are αk = tk / D.
//	The average number of protons dissociated per molecule is
//
//	  n̄ = α1 + 2·α2 + 3·α3
//
//	which is the equivalents of base added in a titration: 0 at low pH, 3
//	at high pH, non-decreasing in between.
//
// Layout:
//
//	The weights are stored in a 4×N matrix.Dense (row = species, column =
//	sample). Column L1 normalisation yields the fractions and keeps D; a
//	weighted column sum with w = (0, 1, 2, 3) yields n̄.
//
// Guarantees:
//
//   - Σα = 1 per sample within floating-point tolerance.
//   - Pure: identical inputs give bit-identical outputs.
//   - A Distribution is immutable; accessors return copies.
//
// Complexity:
//
//	Compute is O(N) time and O(N) memory for N samples.
package speciation
