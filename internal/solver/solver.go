// Package solver implements an iterative linear-system solver based on
// successive over-relaxation (SOR).
//
// The solver is general purpose: it has no knowledge of splines or of the
// tridiagonal structure of the systems the engine feeds it. Convergence is
// only guaranteed for diagonally dominant (or otherwise SOR-convergent)
// matrices with a relaxation factor in (0, 2); supplying a well-posed system
// is the caller's responsibility.
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-cubic-spline/internal/simdops"
)

// Default solver parameters.
const (
	// DefaultOmega is the default relaxation factor.
	DefaultOmega = 0.5

	// DefaultTolerance is the default residual tolerance for convergence.
	DefaultTolerance = 1e-8
)

// Errors returned by the solver.
var (
	// ErrNoConvergence indicates the iteration cap was reached before the
	// residual dropped below the tolerance.
	ErrNoConvergence = errors.New("solver did not converge")

	// ErrBadSystem indicates the matrix and vectors have inconsistent shapes.
	ErrBadSystem = errors.New("inconsistent system dimensions")
)

// Config holds SOR iteration parameters.
//
// The solver trusts the config; range validation happens at the public API
// boundary. A relaxation factor outside (0, 2) or a non-convergent matrix
// leads to a non-terminating loop when MaxIterations is zero.
type Config struct {
	// Omega is the relaxation factor, blending the previous estimate with
	// the Gauss-Seidel update.
	Omega float64

	// Tolerance is the residual 2-norm below which iteration stops.
	Tolerance float64

	// MaxIterations caps the number of full sweeps. Zero means no cap,
	// matching the classic formulation where a non-convergent system
	// simply never terminates.
	MaxIterations int
}

// DefaultConfig returns the standard SOR parameters: omega 0.5,
// tolerance 1e-8, no iteration cap.
func DefaultConfig() Config {
	return Config{
		Omega:     DefaultOmega,
		Tolerance: DefaultTolerance,
	}
}

// Solve computes x such that a*x ≈ b, starting from the initial guess x0.
//
// Each sweep updates rows in increasing order using the current, partially
// updated estimate (Gauss-Seidel ordering), so the sweep itself is inherently
// sequential. After every full sweep the residual ‖a·x − b‖₂ is compared
// against cfg.Tolerance.
//
// x0 is never mutated; the returned vector is freshly allocated. All diagonal
// entries of a must be non-zero.
func Solve(a *mat.Dense, b, x0 *mat.VecDense, cfg Config) (*mat.VecDense, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: matrix is %dx%d, want square", ErrBadSystem, rows, cols)
	}
	if b.Len() != rows {
		return nil, fmt.Errorf("%w: rhs has length %d, want %d", ErrBadSystem, b.Len(), rows)
	}
	if x0.Len() != rows {
		return nil, fmt.Errorf("%w: initial guess has length %d, want %d", ErrBadSystem, x0.Len(), rows)
	}

	x := mat.VecDenseCopyOf(x0)
	xd := x.RawVector().Data

	var r mat.VecDense
	residual := func() float64 {
		r.MulVec(a, x)
		r.SubVec(&r, b)
		return mat.Norm(&r, 2)
	}

	iterations := 0
	for res := residual(); res > cfg.Tolerance; res = residual() {
		if cfg.MaxIterations > 0 && iterations >= cfg.MaxIterations {
			return nil, fmt.Errorf("%w: residual %g above tolerance %g after %d iterations",
				ErrNoConvergence, res, cfg.Tolerance, iterations)
		}

		for i := 0; i < rows; i++ {
			row := a.RawRowView(i)
			diag := row[i]
			// Off-diagonal contribution: full row dot minus the
			// diagonal term, over the live (partially updated) x.
			sum := simdops.DotUnsafe(row, xd) - diag*xd[i]
			xd[i] = (1-cfg.Omega)*xd[i] + (cfg.Omega/diag)*(b.AtVec(i)-sum)
		}
		iterations++
	}

	return x, nil
}
