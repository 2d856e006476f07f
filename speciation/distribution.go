// SPDX-License-Identifier: MIT
// Package: titrate/speciation
//
// distribution.go: fractions and n̄ over a pH sweep.
//
// Implementation:
//   - Stage 1: validate acid and sweep (non-nil, non-empty, finite).
//   - Stage 2: fill the (Protons+1)×N term table tk = βk·h^(Protons−k).
//   - Stage 3: NormalizeColumnsL1 → fractions αk and denominators D.
//   - Stage 4: WeightedColumnSums with w = (0,1,…,Protons) → n̄.

package speciation

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/titrate/acid"
	"github.com/katalvlaran/titrate/matrix"
)

// species is the number of protonation states (fully protonated .. fully
// dissociated).
const species = acid.Protons + 1

// speciesNames labels the protonation states in row order.
var speciesNames = [species]string{"H3A", "H2A⁻", "HA²⁻", "A³⁻"}

// Point is the distribution at a single pH sample.
type Point struct {
	PH    float64          // sample pH
	Alpha [species]float64 // α0..α3
	NBar  float64          // α1 + 2α2 + 3α3
	D     float64          // h³ + Ka1h² + Ka1Ka2h + Ka1Ka2Ka3
}

// Distribution holds the species fractions and the titration curve over a
// pH sweep. It is immutable; accessors return copies.
type Distribution struct {
	ph        []float64
	frac      *matrix.Dense // species × samples
	denom     []float64
	nbar      []float64
	ascending bool
}

// Species returns the label of protonation state k (0 = H3A .. 3 = A³⁻), or
// "" when k is out of range.
func Species(k int) string {
	if k < 0 || k >= species {
		return ""
	}

	return speciesNames[k]
}

// Compute evaluates the distribution of a over every sample of pH.
//
// Errors:
//   - ErrNilAcid, ErrEmptySweep.
//   - ErrNaNInf for a non-finite sample or overflowing terms.
//
// Complexity: O(N) time and memory.
func Compute(a *acid.Acid, pH []float64) (*Distribution, error) {
	if a == nil {
		return nil, ErrNilAcid
	}
	if len(pH) == 0 {
		return nil, ErrEmptySweep
	}
	if err := matrix.ValidateFinite(pH); err != nil {
		return nil, errors.Wrap(errors.WithSecondaryError(ErrNaNInf, err), "Compute: pH sweep")
	}

	terms, err := equilibriumTerms(a, pH)
	if err != nil {
		return nil, err
	}

	frac, denom, err := matrix.NormalizeColumnsL1(terms)
	if err != nil {
		return nil, errors.Wrap(errors.WithSecondaryError(ErrNaNInf, err), "Compute: normalize")
	}
	for j, d := range denom {
		if d <= 0 {
			return nil, errors.Wrapf(ErrNaNInf, "Compute: denominator underflow at pH[%d]=%g", j, pH[j])
		}
	}

	nbar, err := matrix.WeightedColumnSums(frac, protonWeights())
	if err != nil {
		return nil, errors.Wrap(err, "Compute: n̄")
	}

	ph := make([]float64, len(pH))
	copy(ph, pH)

	return &Distribution{
		ph:        ph,
		frac:      frac,
		denom:     denom,
		nbar:      nbar,
		ascending: isAscending(ph),
	}, nil
}

// Evaluate returns the distribution of a at a single pH value.
func Evaluate(a *acid.Acid, pH float64) (Point, error) {
	d, err := Compute(a, []float64{pH})
	if err != nil {
		return Point{}, err
	}

	return d.At(0)
}

// equilibriumTerms fills t[k][j] = βk·h_j^(Protons−k) with h_j = 10^(−pH_j).
func equilibriumTerms(a *acid.Acid, pH []float64) (*matrix.Dense, error) {
	terms, err := matrix.NewZeros(species, len(pH))
	if err != nil {
		return nil, errors.Wrap(err, "Compute: allocate terms")
	}
	beta := a.CumulativeKa()

	var hp [species]float64 // hp[p] = h^p
	for j, v := range pH {
		h := math.Pow(10, -v)
		hp[0] = 1
		for p := 1; p < species; p++ {
			hp[p] = hp[p-1] * h
		}
		for k := 0; k < species; k++ {
			t := beta[k] * hp[acid.Protons-k]
			if math.IsInf(t, 0) || math.IsNaN(t) {
				return nil, errors.Wrapf(ErrNaNInf, "Compute: term %d overflows at pH[%d]=%g", k, j, v)
			}
			if err = terms.Set(k, j, t); err != nil {
				return nil, errors.Wrap(err, "Compute: store term")
			}
		}
	}

	return terms, nil
}

// protonWeights returns (0, 1, …, Protons): protons lost by each state.
func protonWeights() []float64 {
	w := make([]float64, species)
	for k := range w {
		w[k] = float64(k)
	}

	return w
}

func isAscending(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return false
		}
	}

	return true
}

// Len returns the number of samples.
func (d *Distribution) Len() int { return len(d.ph) }

// PH returns a copy of the pH samples.
func (d *Distribution) PH() []float64 { return cloneSlice(d.ph) }

// NBar returns a copy of the n̄ curve.
func (d *Distribution) NBar() []float64 { return cloneSlice(d.nbar) }

// Denominator returns a copy of D per sample.
func (d *Distribution) Denominator() []float64 { return cloneSlice(d.denom) }

// Alpha returns a copy of the fraction curve of state k (0..3).
func (d *Distribution) Alpha(k int) ([]float64, error) {
	row, err := d.frac.Row(k)
	if err != nil {
		return nil, errors.Wrapf(errors.WithSecondaryError(ErrOutOfRange, err), "Alpha(%d)", k)
	}

	return row, nil
}

// Fractions returns a copy of the species × samples fraction table.
func (d *Distribution) Fractions() *matrix.Dense {
	return d.frac.Clone().(*matrix.Dense)
}

// At returns the distribution at sample i.
func (d *Distribution) At(i int) (Point, error) {
	if i < 0 || i >= len(d.ph) {
		return Point{}, errors.Wrapf(ErrOutOfRange, "At(%d) with %d samples", i, len(d.ph))
	}
	p := Point{PH: d.ph[i], NBar: d.nbar[i], D: d.denom[i]}
	for k := 0; k < species; k++ {
		p.Alpha[k], _ = d.frac.At(k, i)
	}

	return p, nil
}

// MaxClosureError returns max_j |Σk αk(j) − 1|.
func (d *Distribution) MaxClosureError() float64 {
	sums, err := matrix.ColumnSums(d.frac)
	if err != nil {
		return math.Inf(1)
	}
	worst := 0.0
	for _, s := range sums {
		worst = math.Max(worst, math.Abs(s-1))
	}

	return worst
}

// AllClose reports whether d and o sample the same pH values and their
// fraction tables agree within |a-b| ≤ atol + rtol*|b|.
//
// Errors: ErrSampleMismatch when the sample counts differ; a NaN or Inf
// tolerance is rejected by matrix.AllClose.
func (d *Distribution) AllClose(o *Distribution, rtol, atol float64) (bool, error) {
	if d.Len() != o.Len() {
		return false, errors.Wrapf(ErrSampleMismatch, "AllClose: %d vs %d samples", d.Len(), o.Len())
	}
	for i, v := range d.ph {
		if v != o.ph[i] {
			return false, nil
		}
	}
	ok, err := matrix.AllClose(d.frac, o.frac, rtol, atol)
	if err != nil {
		return false, errors.Wrap(err, "AllClose")
	}

	return ok, nil
}

func cloneSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
