package acid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/titrate/acid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_SortsAndDerivesKa checks ascending pKa, non-increasing Ka and the
// 10^(-pKa) conversion.
func TestNew_SortsAndDerivesKa(t *testing.T) {
	a, err := acid.New([]float64{9.8, 2.1, 3.9}, 3.0)
	require.NoError(t, err)

	assert.Equal(t, []float64{2.1, 3.9, 9.8}, a.PKa())
	ka := a.Ka()
	require.Len(t, ka, acid.Protons)
	assert.GreaterOrEqual(t, ka[0], ka[1])
	assert.GreaterOrEqual(t, ka[1], ka[2])
	assert.InEpsilon(t, math.Pow(10, -2.1), ka[0], 1e-15)
	assert.InEpsilon(t, math.Pow(10, -3.9), ka[1], 1e-15)
	assert.InEpsilon(t, math.Pow(10, -9.8), ka[2], 1e-15)
	assert.Equal(t, 3.0, a.PI())
	assert.Equal(t, acid.Protons, a.Protons())
}

// TestNew_OrderInvariance verifies every permutation gives bit-identical constants.
func TestNew_OrderInvariance(t *testing.T) {
	perms := [][]float64{
		{2.1, 3.9, 9.8},
		{2.1, 9.8, 3.9},
		{3.9, 2.1, 9.8},
		{3.9, 9.8, 2.1},
		{9.8, 2.1, 3.9},
		{9.8, 3.9, 2.1},
	}
	ref := acid.Histidine()
	for _, p := range perms {
		a, err := acid.New(p, acid.HistidinePI)
		require.NoError(t, err, "perm %v", p)
		assert.Equal(t, ref.PKa(), a.PKa(), "perm %v", p)
		assert.Equal(t, ref.Ka(), a.Ka(), "perm %v", p)
	}
}

// TestNew_DoesNotMutateInput guards the caller's slice.
func TestNew_DoesNotMutateInput(t *testing.T) {
	in := []float64{9.8, 3.9, 2.1}
	_, err := acid.New(in, 3.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{9.8, 3.9, 2.1}, in)
}

// TestNew_Invalid is a table of rejected inputs; each must match ErrInvalidParameter.
func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		pKas     []float64
		pI       float64
		tooFew   bool
		contains string
	}{
		{name: "nil", pKas: nil, pI: 3, tooFew: true},
		{name: "two values", pKas: []float64{2.1, 3.9}, pI: 3, tooFew: true},
		{name: "four values", pKas: []float64{1, 2, 3, 4}, pI: 3, contains: "got 4"},
		{name: "zero", pKas: []float64{0, 3.9, 9.8}, pI: 3, contains: "pKa[0]"},
		{name: "negative", pKas: []float64{2.1, -3.9, 9.8}, pI: 3, contains: "pKa[1]"},
		{name: "NaN", pKas: []float64{2.1, 3.9, math.NaN()}, pI: 3, contains: "pKa[2]"},
		{name: "Inf", pKas: []float64{math.Inf(1), 3.9, 9.8}, pI: 3, contains: "pKa[0]"},
		{name: "pI NaN", pKas: []float64{2.1, 3.9, 9.8}, pI: math.NaN(), contains: "pI"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := acid.New(tc.pKas, tc.pI)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, acid.ErrInvalidParameter)
			if tc.tooFew {
				assert.ErrorIs(t, err, acid.ErrTooFewValues)
			} else {
				assert.NotErrorIs(t, err, acid.ErrTooFewValues)
			}
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

// TestHistidine checks the preset and the display helpers.
func TestHistidine(t *testing.T) {
	a := acid.Histidine()
	assert.Equal(t, []float64{2.1, 3.9, 9.8}, a.PKa())
	assert.Equal(t, 3.0, a.PI())
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, a.MidEquivalence())
	assert.Equal(t, "pKa=[2.10 3.90 9.80] pI=3.00", a.String())
}

// TestCumulativeKa checks β_k = Ka1·…·Ka_k.
func TestCumulativeKa(t *testing.T) {
	a := acid.Histidine()
	ka := a.Ka()
	beta := a.CumulativeKa()
	require.Len(t, beta, acid.Protons+1)
	assert.Equal(t, 1.0, beta[0])
	assert.Equal(t, ka[0], beta[1])
	assert.Equal(t, ka[0]*ka[1], beta[2])
	assert.Equal(t, ka[0]*ka[1]*ka[2], beta[3])
}

// TestAccessorsReturnCopies ensures the Acid stays immutable.
func TestAccessorsReturnCopies(t *testing.T) {
	a := acid.Histidine()
	p := a.PKa()
	p[0] = 100
	k := a.Ka()
	k[0] = 100
	assert.Equal(t, acid.HistidinePKa1, a.PKa()[0])
	assert.NotEqual(t, 100.0, a.Ka()[0])
}
