package speciation_test

import (
	"testing"

	"github.com/katalvlaran/titrate/acid"
	"github.com/katalvlaran/titrate/speciation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPHAtNBar_RoundTrip looks up n̄ values taken from the curve itself.
func TestPHAtNBar_RoundTrip(t *testing.T) {
	d := histidineCurve(t)
	ph, nbar := d.PH(), d.NBar()

	for _, i := range []int{1, 250, 700, 1400, 1998} {
		got, err := d.PHAtNBar(nbar[i])
		require.NoError(t, err)
		assert.InDelta(t, ph[i], got, 1e-2, "sample %d", i)
	}
}

// TestPHAtNBar_Bounds checks targets at and outside the curve ends.
func TestPHAtNBar_Bounds(t *testing.T) {
	d := histidineCurve(t)
	nbar := d.NBar()

	got, err := d.PHAtNBar(nbar[0])
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = d.PHAtNBar(nbar[len(nbar)-1])
	require.NoError(t, err)
	assert.InDelta(t, 14.0, got, 1e-9)

	_, err = d.PHAtNBar(-0.1)
	assert.ErrorIs(t, err, speciation.ErrOutOfRange)
	_, err = d.PHAtNBar(3.0)
	assert.ErrorIs(t, err, speciation.ErrOutOfRange)
}

// TestPHAtNBar_Unsorted rejects inverse lookup on a descending sweep.
func TestPHAtNBar_Unsorted(t *testing.T) {
	d, err := speciation.Compute(acid.Histidine(), []float64{7, 3, 1})
	require.NoError(t, err)
	_, err = d.PHAtNBar(1)
	assert.ErrorIs(t, err, speciation.ErrNotMonotonic)
	_, err = d.HalfEquivalence()
	assert.ErrorIs(t, err, speciation.ErrNotMonotonic)
}

// TestHalfEquivalence checks the three crossings sit near the pKa values.
func TestHalfEquivalence(t *testing.T) {
	got, err := histidineCurve(t).HalfEquivalence()
	require.NoError(t, err)
	require.Len(t, got, 3)

	pka := acid.Histidine().PKa()
	for k := range got {
		assert.InDelta(t, pka[k], got[k], 0.1, "crossing %d", k+1)
	}
	assert.Less(t, got[0], got[1])
	assert.Less(t, got[1], got[2])
}
