package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-cubic-spline/internal/testutil"
)

// fourKnots is the minimal end-to-end fixture: 4 points, 3 segments.
var fourKnots = []Point{
	{X: 0, Y: 0},
	{X: 1, Y: 1},
	{X: 2, Y: 0},
	{X: 3, Y: -1},
}

// sincTable is a sampled sinc-like curve with 21 knots over [-5, 5].
var sincTable = []Point{
	{-5, 0}, {-4.5, 0.0707}, {-4, 0}, {-3.5, -0.0909},
	{-3, 0}, {-2.5, 0.1273}, {-2, 0}, {-1.5, -0.2122},
	{-1, 0}, {-0.5, 0.6366}, {0, 1}, {0.5, 0.6366},
	{1, 0}, {1.5, 0.2122}, {2, 0}, {2.5, 0.1273},
	{3, 0}, {3.5, 0.0909}, {4, 0}, {4.5, 0.0707},
	{5, 0},
}

// TestFit_MinimumSize verifies sequences shorter than 4 points are rejected
// and exactly 4 points succeed.
func TestFit_MinimumSize(t *testing.T) {
	for n := 0; n < 4; n++ {
		s, err := Fit(fourKnots[:n])
		require.Error(t, err, "n=%d", n)
		assert.ErrorIs(t, err, ErrInvalidPoints, "n=%d", n)
		assert.Nil(t, s, "n=%d", n)
	}

	s, err := Fit(fourKnots)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumSegments())
}

// TestFit_NonIncreasingX verifies duplicate or decreasing x values are
// rejected with a distinct error.
func TestFit_NonIncreasingX(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{
			name:   "duplicate x",
			points: []Point{{0, 0}, {1, 1}, {1, 2}, {3, -1}},
		},
		{
			name:   "decreasing x",
			points: []Point{{0, 0}, {2, 1}, {1, 2}, {3, -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.points)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNonIncreasingX)
		})
	}
}

// TestFit_NaturalBoundary verifies the second-derivative vector starts and
// ends with exactly zero for any valid input.
func TestFit_NaturalBoundary(t *testing.T) {
	for _, points := range [][]Point{fourKnots, sincTable} {
		s, err := Fit(points)
		require.NoError(t, err)

		sigma := s.SecondDerivatives()
		require.Len(t, sigma, len(points))
		assert.Equal(t, 0.0, sigma[0])
		assert.Equal(t, 0.0, sigma[len(sigma)-1])
		testutil.AssertNoNaNOrInf(t, sigma)
	}
}

// TestFit_KnotContinuity verifies adjacent segments agree at every interior
// knot, and both reproduce the knot's y value, within solver tolerance.
func TestFit_KnotContinuity(t *testing.T) {
	for _, points := range [][]Point{fourKnots, sincTable} {
		s, err := Fit(points)
		require.NoError(t, err)

		for i := 1; i < len(points)-1; i++ {
			x, y := points[i].X, points[i].Y

			left := s.Segment(i - 1)
			t1 := x - left.X0
			fromLeft := ((left.A*t1+left.B)*t1+left.C)*t1 + left.D

			right := s.Segment(i)
			fromRight := right.D // t = 0 at the segment start

			assert.InDelta(t, y, fromLeft, 1e-6, "left segment at knot %d", i)
			assert.InDelta(t, y, fromRight, 1e-6, "right segment at knot %d", i)
			assert.InDelta(t, fromLeft, fromRight, 1e-6, "continuity at knot %d", i)
		}
	}
}

// TestFit_InterpolationProperty verifies d[i] = y_i holds exactly: the cubic
// reproduces its left knot by construction.
func TestFit_InterpolationProperty(t *testing.T) {
	s, err := Fit(sincTable)
	require.NoError(t, err)

	_, _, _, d := s.Coefficients()
	require.Len(t, d, len(sincTable)-1)
	for i := range d {
		assert.Equal(t, sincTable[i].Y, d[i], "d[%d]", i)
	}
}

// TestFit_EndToEnd checks the complete 4-point scenario: coefficient counts,
// boundary sigmas, and value agreement at the interior knots x=1 and x=2.
func TestFit_EndToEnd(t *testing.T) {
	s, err := Fit(fourKnots)
	require.NoError(t, err)

	a, b, c, d := s.Coefficients()
	assert.Len(t, a, 3)
	assert.Len(t, b, 3)
	assert.Len(t, c, 3)
	assert.Len(t, d, 3)

	sigma := s.SecondDerivatives()
	assert.Equal(t, 0.0, sigma[0])
	assert.Equal(t, 0.0, sigma[3])

	for _, knot := range []Point{{X: 1, Y: 1}, {X: 2, Y: 0}} {
		y, err := s.Evaluate(knot.X)
		require.NoError(t, err)
		assert.InDelta(t, knot.Y, y, 1e-6, "value at x=%g", knot.X)
	}
}

// TestFit_Idempotent verifies fitting the same sequence twice yields
// identical coefficient arrays.
func TestFit_Idempotent(t *testing.T) {
	first, err := Fit(sincTable)
	require.NoError(t, err)
	second, err := Fit(sincTable)
	require.NoError(t, err)

	a1, b1, c1, d1 := first.Coefficients()
	a2, b2, c2, d2 := second.Coefficients()
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, first.SecondDerivatives(), second.SecondDerivatives())
}

// TestFit_InputNotRetained verifies the spline holds copies: mutating the
// input slice after fitting does not affect the result.
func TestFit_InputNotRetained(t *testing.T) {
	points := make([]Point, len(fourKnots))
	copy(points, fourKnots)

	s, err := Fit(points)
	require.NoError(t, err)

	points[1] = Point{X: 1, Y: 100}
	assert.Equal(t, fourKnots, s.Points())
}

// TestFit_AccessorsReturnCopies verifies callers own the returned arrays.
func TestFit_AccessorsReturnCopies(t *testing.T) {
	s, err := Fit(fourKnots)
	require.NoError(t, err)

	a, _, _, _ := s.Coefficients()
	sigma := s.SecondDerivatives()
	a[0] = 1e9
	sigma[1] = 1e9

	a2, _, _, _ := s.Coefficients()
	assert.NotEqual(t, 1e9, a2[0])
	assert.NotEqual(t, 1e9, s.SecondDerivatives()[1])
}

// TestConfig_Validate covers the configuration parameter ranges.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "zero value selects defaults", config: Config{}},
		{name: "valid custom", config: Config{Omega: 1.5, Tolerance: 1e-10, MaxIterations: 1000}},
		{name: "omega at upper bound", config: Config{Omega: 2.0}, wantErr: true},
		{name: "omega above range", config: Config{Omega: 2.5}, wantErr: true},
		{name: "omega negative", config: Config{Omega: -0.5}, wantErr: true},
		{name: "negative tolerance", config: Config{Tolerance: -1e-8}, wantErr: true},
		{name: "negative iteration cap", config: Config{MaxIterations: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFitWithConfig_IterationCap verifies an exhausted cap surfaces
// ErrNoConvergence rather than looping.
func TestFitWithConfig_IterationCap(t *testing.T) {
	config := &Config{Tolerance: 1e-14, MaxIterations: 1}
	_, err := FitWithConfig(sincTable, config)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConvergence)
}

// TestFitWithConfig_CustomOmega verifies faster relaxation factors reach the
// same solution.
func TestFitWithConfig_CustomOmega(t *testing.T) {
	base, err := Fit(fourKnots)
	require.NoError(t, err)

	tuned, err := FitWithConfig(fourKnots, &Config{Omega: 1.2})
	require.NoError(t, err)

	testutil.AssertInDeltaSlice(t, base.SecondDerivatives(), tuned.SecondDerivatives(), 1e-6)
}
