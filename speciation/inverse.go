package speciation

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// PHAtNBar returns the pH at which the titration curve reaches target,
// interpolating linearly between the two bracketing samples.
//
// n̄ is non-decreasing along an ascending sweep, so the first sample with
// n̄ ≥ target is found by binary search. A flat segment resolves to its
// right edge.
//
// Errors:
//   - ErrNotMonotonic if the sweep was not ascending.
//   - ErrOutOfRange if target lies outside [n̄(first), n̄(last)].
func (d *Distribution) PHAtNBar(target float64) (float64, error) {
	if !d.ascending {
		return 0, ErrNotMonotonic
	}
	n := len(d.nbar)
	if !(target >= d.nbar[0] && target <= d.nbar[n-1]) {
		return 0, errors.Wrapf(ErrOutOfRange, "PHAtNBar: %g outside [%g, %g]", target, d.nbar[0], d.nbar[n-1])
	}

	i := sort.SearchFloat64s(d.nbar, target)
	if i == 0 {
		return d.ph[0], nil
	}
	lo, hi := d.nbar[i-1], d.nbar[i]
	if hi == lo {
		return d.ph[i], nil
	}
	t := (target - lo) / (hi - lo)

	return d.ph[i-1] + t*(d.ph[i]-d.ph[i-1]), nil
}

// HalfEquivalence returns the pH at n̄ = 0.5, 1.5, 2.5: the points of the
// curve where adjacent species are present in equal amounts.
func (d *Distribution) HalfEquivalence() ([]float64, error) {
	out := make([]float64, 0, species-1)
	for k := 0; k < species-1; k++ {
		ph, err := d.PHAtNBar(float64(k) + 0.5)
		if err != nil {
			return nil, errors.Wrapf(err, "HalfEquivalence(%d)", k+1)
		}
		out = append(out, ph)
	}

	return out, nil
}
