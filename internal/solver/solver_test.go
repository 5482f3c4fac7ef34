package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSolve_KnownSystem verifies convergence to the exact solution of a small
// diagonally dominant system: A=[[4,1],[1,3]], b=[1,2], x*=[1/11, 7/11].
func TestSolve_KnownSystem(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		4, 1,
		1, 3,
	})
	b := mat.NewVecDense(2, []float64{1, 2})
	x0 := mat.NewVecDense(2, nil)

	x, err := Solve(a, b, x0, DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 1.0/11.0, x.AtVec(0), 1e-7)
	assert.InDelta(t, 7.0/11.0, x.AtVec(1), 1e-7)

	// Residual of the returned solution must be within tolerance.
	var r mat.VecDense
	r.MulVec(a, x)
	r.SubVec(&r, b)
	assert.LessOrEqual(t, mat.Norm(&r, 2), DefaultTolerance)
}

// TestSolve_InitialGuessNotMutated verifies the caller's x0 is left intact.
func TestSolve_InitialGuessNotMutated(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		4, 1,
		1, 3,
	})
	b := mat.NewVecDense(2, []float64{1, 2})
	x0 := mat.NewVecDense(2, []float64{0.25, -0.5})

	_, err := Solve(a, b, x0, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.25, x0.AtVec(0))
	assert.Equal(t, -0.5, x0.AtVec(1))
}

// TestSolve_WarmStart verifies a guess that already satisfies the system
// returns without any sweep.
func TestSolve_WarmStart(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		2, 0,
		0, 2,
	})
	b := mat.NewVecDense(2, []float64{2, 4})
	x0 := mat.NewVecDense(2, []float64{1, 2})

	cfg := DefaultConfig()
	cfg.MaxIterations = 1 // would fail if a sweep were needed and insufficient
	x, err := Solve(a, b, x0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x.AtVec(0))
	assert.Equal(t, 2.0, x.AtVec(1))
}

// TestSolve_IterationCap verifies a cap too small to reach the tolerance
// surfaces ErrNoConvergence rather than looping.
func TestSolve_IterationCap(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		4, 1,
		1, 3,
	})
	b := mat.NewVecDense(2, []float64{1, 2})
	x0 := mat.NewVecDense(2, nil)

	cfg := Config{Omega: 0.1, Tolerance: 1e-12, MaxIterations: 2}
	_, err := Solve(a, b, x0, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConvergence)
}

// TestSolve_DimensionChecks verifies shape mismatches are rejected up front.
func TestSolve_DimensionChecks(t *testing.T) {
	square := mat.NewDense(2, 2, []float64{4, 1, 1, 3})

	tests := []struct {
		name string
		a    *mat.Dense
		b    *mat.VecDense
		x0   *mat.VecDense
	}{
		{
			name: "non-square matrix",
			a:    mat.NewDense(2, 3, nil),
			b:    mat.NewVecDense(2, nil),
			x0:   mat.NewVecDense(2, nil),
		},
		{
			name: "rhs length mismatch",
			a:    square,
			b:    mat.NewVecDense(3, nil),
			x0:   mat.NewVecDense(2, nil),
		},
		{
			name: "guess length mismatch",
			a:    square,
			b:    mat.NewVecDense(2, nil),
			x0:   mat.NewVecDense(3, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.a, tt.b, tt.x0, DefaultConfig())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadSystem)
		})
	}
}

// TestSolve_LargerTridiagonal exercises the solver on the kind of system the
// spline engine produces: strictly diagonally dominant tridiagonal.
func TestSolve_LargerTridiagonal(t *testing.T) {
	const n = 12
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 4)
		if i > 0 {
			a.Set(i, i-1, 1)
		}
		if i < n-1 {
			a.Set(i, i+1, 1)
		}
	}

	// Build b from a known solution so we can check round-trip accuracy.
	want := make([]float64, n)
	for i := range want {
		want[i] = float64(i%5) - 2
	}
	var b mat.VecDense
	b.MulVec(a, mat.NewVecDense(n, want))

	x, err := Solve(a, &b, mat.NewVecDense(n, nil), DefaultConfig())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.InDelta(t, want[i], x.AtVec(i), 1e-7, "x[%d]", i)
	}
}
