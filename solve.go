package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-cubic-spline/internal/solver"
)

// SolveLinearSystem solves a*x = b by successive over-relaxation, starting
// from the initial guess x0.
//
// a must be square with non-zero diagonal entries, and b and x0 must match
// its dimension. A nil config selects the defaults (omega 0.5, tolerance
// 1e-8, no iteration cap). Convergence is only guaranteed for diagonally
// dominant or otherwise SOR-convergent matrices; with no iteration cap an
// unsuitable system never terminates.
//
// x0 is never mutated. The returned slice is freshly allocated.
func SolveLinearSystem(a [][]float64, b, x0 []float64, config *Config) ([]float64, error) {
	m := len(a)
	if m == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrInvalidSystem)
	}
	if config != nil {
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}

	flat := make([]float64, 0, m*m)
	for i, row := range a {
		if len(row) != m {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidSystem, i, len(row), m)
		}
		flat = append(flat, row...)
	}
	if len(b) != m {
		return nil, fmt.Errorf("%w: rhs has length %d, want %d", ErrInvalidSystem, len(b), m)
	}
	if len(x0) != m {
		return nil, fmt.Errorf("%w: initial guess has length %d, want %d", ErrInvalidSystem, len(x0), m)
	}

	x, err := solver.Solve(
		mat.NewDense(m, m, flat),
		mat.NewVecDense(m, cloneFloats(b)),
		mat.NewVecDense(m, cloneFloats(x0)),
		config.solverConfig(),
	)
	if err != nil {
		return nil, err
	}

	out := make([]float64, m)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
