package sweep_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/titrate/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPH_Default checks length, exact endpoints and uniform spacing of the
// default grid.
func TestPH_Default(t *testing.T) {
	ph, err := sweep.PH()
	require.NoError(t, err)
	require.Len(t, ph, sweep.DefaultPoints)

	assert.Equal(t, sweep.MinPH, ph[0])
	assert.Equal(t, sweep.MaxPH, ph[len(ph)-1])

	step := (sweep.MaxPH - sweep.MinPH) / float64(sweep.DefaultPoints-1)
	for i := 1; i < len(ph); i++ {
		assert.InDelta(t, step, ph[i]-ph[i-1], 1e-12, "spacing at %d", i)
	}
}

// TestLinspace_Small compares against hand-computed grids.
func TestLinspace_Small(t *testing.T) {
	got, err := sweep.Linspace(5, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)

	got, err = sweep.Linspace(1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, got)

	got, err = sweep.Linspace(3, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, got)
}

// TestLinspace_Errors covers size and range validation.
func TestLinspace_Errors(t *testing.T) {
	_, err := sweep.Linspace(0, 0, 1)
	assert.ErrorIs(t, err, sweep.ErrBadSize)

	_, err = sweep.Linspace(10, 1, 0)
	assert.ErrorIs(t, err, sweep.ErrBadRange)

	_, err = sweep.Linspace(10, math.NaN(), 1)
	assert.ErrorIs(t, err, sweep.ErrBadRange)

	_, err = sweep.Linspace(10, 0, math.Inf(1))
	assert.ErrorIs(t, err, sweep.ErrBadRange)
}

// TestPH_Options verifies last-wins option semantics.
func TestPH_Options(t *testing.T) {
	ph, err := sweep.PH(sweep.WithPoints(3), sweep.WithRange(2, 4), sweep.WithPoints(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2.5, 3, 3.5, 4}, ph)
}

// TestOptions_Panic ensures option constructors fail fast.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { sweep.WithPoints(0) })
	assert.Panics(t, func() { sweep.WithRange(5, 1) })
	assert.Panics(t, func() { sweep.WithRange(math.NaN(), 1) })
	assert.NotPanics(t, func() { sweep.WithRange(1, 1) })
}

// TestPH_Deterministic checks bit-identical output across calls.
func TestPH_Deterministic(t *testing.T) {
	a, err := sweep.PH()
	require.NoError(t, err)
	b, err := sweep.PH()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
