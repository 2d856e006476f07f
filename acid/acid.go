// SPDX-License-Identifier: MIT
// Package: titrate/acid
//
// acid.go: validated, sorted dissociation constants.
//
// Contract:
//   • New validates first, then sorts a private copy, then derives Ka.
//   • Ka is derived exactly once as math.Pow(10, -pKa); the same sorted
//     input always yields bit-identical constants.
//   • No panics; every rejection is an ErrInvalidParameter.

package acid

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Acid holds three sorted pKa values, their dissociation constants and
// the isoelectric point used for display.
type Acid struct {
	pKa [Protons]float64 // ascending
	ka  [Protons]float64 // non-increasing, Ka_i = 10^(-pKa_i)
	pI  float64
}

// New validates pKas and pI and returns an Acid with pKas sorted ascending.
// The input slice is never mutated.
//
// Errors (all match ErrInvalidParameter):
//   - ErrTooFewValues when len(pKas) < Protons.
//   - len(pKas) > Protons.
//   - any pKa ≤ 0, NaN or ±Inf.
//   - pI NaN or ±Inf.
//
// Complexity: O(1).
func New(pKas []float64, pI float64) (*Acid, error) {
	if len(pKas) < Protons {
		return nil, errors.Wrapf(ErrTooFewValues, "New: got %d, want %d", len(pKas), Protons)
	}
	if len(pKas) > Protons {
		return nil, errors.Wrapf(ErrInvalidParameter, "New: got %d pKa values, want %d", len(pKas), Protons)
	}
	for i, v := range pKas {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrInvalidParameter, "New: pKa[%d] is not finite", i)
		}
		if v <= 0 {
			return nil, errors.Wrapf(ErrInvalidParameter, "New: pKa[%d] = %g must be positive", i, v)
		}
	}
	if math.IsNaN(pI) || math.IsInf(pI, 0) {
		return nil, errors.Wrap(ErrInvalidParameter, "New: pI is not finite")
	}

	a := &Acid{pI: pI}
	copy(a.pKa[:], pKas)
	sort.Float64s(a.pKa[:])
	for i, p := range a.pKa {
		a.ka[i] = math.Pow(10, -p)
	}

	return a, nil
}

// Histidine returns the default preset: pKa 2.1, 3.9, 9.8 and pI 3.0.
func Histidine() *Acid {
	a, err := New([]float64{HistidinePKa1, HistidinePKa2, HistidinePKa3}, HistidinePI)
	if err != nil {
		// Literal constants above are valid; reaching this is a programming error.
		panic(err)
	}

	return a
}

// Protons returns the number of dissociable protons (always Protons).
func (a *Acid) Protons() int { return Protons }

// PKa returns a copy of the pKa values, sorted ascending.
func (a *Acid) PKa() []float64 {
	out := make([]float64, Protons)
	copy(out, a.pKa[:])

	return out
}

// Ka returns a copy of the dissociation constants, Ka1 ≥ Ka2 ≥ Ka3.
func (a *Acid) Ka() []float64 {
	out := make([]float64, Protons)
	copy(out, a.ka[:])

	return out
}

// PI returns the isoelectric point.
func (a *Acid) PI() float64 { return a.pI }

// MidEquivalence returns the n̄ positions of the half-equivalence points,
// {0.5, 1.5, 2.5}; at guide k the pH equals approximately PKa()[k].
func (a *Acid) MidEquivalence() []float64 {
	out := make([]float64, Protons)
	for k := range out {
		out[k] = float64(k) + midEquivalenceOffset
	}

	return out
}

// CumulativeKa returns β_k = Ka1·…·Ka_k for k = 0..Protons, with β_0 = 1.
// These are the coefficients of the distribution denominator
// D = Σ_k β_k·[H+]^(Protons-k).
func (a *Acid) CumulativeKa() []float64 {
	beta := make([]float64, Protons+1)
	beta[0] = 1
	for k := 1; k <= Protons; k++ {
		beta[k] = beta[k-1] * a.ka[k-1]
	}

	return beta
}

// String renders the constants as "pKa=[2.10 3.90 9.80] pI=3.00".
func (a *Acid) String() string {
	parts := make([]string, Protons)
	for i, p := range a.pKa {
		parts[i] = fmt.Sprintf("%.2f", p)
	}

	return fmt.Sprintf("pKa=[%s] pI=%.2f", strings.Join(parts, " "), a.pI)
}
