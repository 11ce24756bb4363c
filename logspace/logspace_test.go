package logspace_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/numspace/logspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// requirePanicsIs asserts that fn panics with an error matching want.
func requirePanicsIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a construction panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		require.ErrorIs(t, err, want)
	}()
	fn()
}

// TestLogSpace_Inclusive pins the decade ladder: 4 values from 1 to 1000
// inclusive, ratio (1000/1)^(1/3) = 10.
func TestLogSpace_Inclusive(t *testing.T) {
	got := logspace.LogSpaceInclusive(1.0, 1000.0, 4).Collect()
	assert.True(t, floats.EqualApprox(got, []float64{1, 10, 100, 1000}, 1e-10),
		"got %v", got)
}

// TestLogSpace_Exclusive pins the exclusive form: 3 values, 1000 itself
// never produced.
func TestLogSpace_Exclusive(t *testing.T) {
	got := logspace.LogSpace(1.0, 1000.0, 3).Collect()
	assert.True(t, floats.EqualApprox(got, []float64{1, 10, 100}, 1e-10),
		"got %v", got)
}

// TestLogSpace_GeometricRatio verifies the defining property: every
// consecutive pair shares the same ratio, within tolerance.
func TestLogSpace_GeometricRatio(t *testing.T) {
	got := logspace.LogSpaceInclusive(2.0, 512.0, 9).Collect()
	require.Len(t, got, 9)

	ratio := got[1] / got[0]
	for i := 2; i < len(got); i++ {
		assert.InDelta(t, ratio, got[i]/got[i-1], 1e-10, "pair %d", i)
	}
	assert.InDelta(t, 2.0, ratio, 1e-10, "(512/2)^(1/8) = 2")
}

// TestLogSpace_Reversed verifies backward agreement through the shared
// interpolation function.
func TestLogSpace_Reversed(t *testing.T) {
	forward := logspace.LogSpaceInclusive(1.0, 1000.0, 4).Collect()
	backward := slices.Collect(logspace.LogSpaceInclusive(1.0, 1000.0, 4).Backward())
	slices.Reverse(backward)
	assert.Equal(t, forward, backward, "same indices, same values, bit for bit")
}

// TestLogSpace_EndpointExactness verifies the inclusive endpoint lands on
// the declared end within floating tolerance.
func TestLogSpace_EndpointExactness(t *testing.T) {
	last, ok := logspace.LogSpaceInclusive(3.0, 777.0, 13).Last()
	require.True(t, ok)
	assert.InDelta(t, 777.0, last, 1e-9)
}

// TestLogSpace_SmallCounts covers the floors: exclusive zero steps is a
// legal empty sequence, inclusive one step is just start.
func TestLogSpace_SmallCounts(t *testing.T) {
	empty := logspace.LogSpace(1.0, 10.0, 0)
	assert.Zero(t, empty.Len())

	assert.Equal(t, []float64{5}, logspace.LogSpaceInclusive(5.0, 500.0, 1).Collect())
}

// TestLogSpace_FailFast pins the construction panics: non-positive
// bounds and the inclusive zero-step underflow.
func TestLogSpace_FailFast(t *testing.T) {
	requirePanicsIs(t, logspace.ErrNonPositive, func() {
		logspace.LogSpace(-1.0, 10.0, 3)
	})
	requirePanicsIs(t, logspace.ErrNonPositive, func() {
		logspace.LogSpaceInclusive(1.0, 0.0, 3)
	})
	requirePanicsIs(t, logspace.ErrZeroSteps, func() {
		logspace.LogSpaceInclusive(1.0, 10.0, 0)
	})
}

// TestLogSpace_Bounds verifies value-domain introspection.
func TestLogSpace_Bounds(t *testing.T) {
	b, ok := logspace.LogSpaceInclusive(1.0, 1000.0, 4).Bounds()
	require.True(t, ok)
	assert.Equal(t, 1.0, b.Start)
	assert.Equal(t, 1000.0, b.End)
	assert.True(t, b.Inclusive)
}
