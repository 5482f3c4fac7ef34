// Package engine implements the natural cubic spline coefficient algorithm:
// assembly of the tridiagonal second-derivative system and derivation of the
// per-segment cubic coefficients from its solution.
package engine

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-cubic-spline/internal/solver"
)

// Coefficients holds the result of a spline fit over n knots: four parallel
// coefficient arrays of length n-1 (one cubic per segment) and the full
// second-derivative vector of length n.
//
// Segment i covers [x[i], x[i+1]] and evaluates as
//
//	f_i(x) = A[i]·t³ + B[i]·t² + C[i]·t + D[i],  t = x − x[i]
type Coefficients struct {
	A, B, C, D []float64

	// Sigma is the second derivative at each knot. The natural boundary
	// condition fixes Sigma[0] and Sigma[n-1] to zero; interior entries
	// come from the solved tridiagonal system.
	Sigma []float64
}

// Build computes natural cubic spline coefficients for the knots (xs, ys).
//
// The caller guarantees len(xs) == len(ys) >= 4 with strictly increasing xs;
// validation happens at the public API boundary. Build is a pure function:
// it allocates fresh arrays and never retains its inputs.
func Build(xs, ys []float64, cfg solver.Config) (*Coefficients, error) {
	n := len(xs)

	// Knot spacings and y deltas, one per segment.
	h := make([]float64, n-1)
	dy := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		dy[i] = ys[i+1] - ys[i]
	}

	a, rhs := buildSystem(h, dy)

	// Interior second derivatives, solved from a zero initial guess.
	m := n - 2
	sol, err := solver.Solve(a, rhs, mat.NewVecDense(m, nil), cfg)
	if err != nil {
		return nil, err
	}

	sigma := make([]float64, n)
	for i := 0; i < m; i++ {
		sigma[i+1] = sol.AtVec(i)
	}

	c := &Coefficients{
		A:     make([]float64, n-1),
		B:     make([]float64, n-1),
		C:     make([]float64, n-1),
		D:     make([]float64, n-1),
		Sigma: sigma,
	}
	for i := 0; i < n-1; i++ {
		c.A[i] = (sigma[i+1] - sigma[i]) / (6 * h[i])
		c.B[i] = sigma[i] / 2
		c.C[i] = dy[i]/h[i] - (2*h[i]*sigma[i]+h[i]*sigma[i+1])/6
		c.D[i] = ys[i]
	}
	return c, nil
}

// buildSystem assembles the (n-2)×(n-2) tridiagonal system whose unknowns are
// the interior second derivatives sigma[1..n-2].
//
// Row i (for knot k = i+1) uses the standard natural-spline relations:
// diagonal 2(h[k-1]+h[k]), off-diagonals h[k-1] and h[k], right-hand side
// 6(dy[k]/h[k] − dy[k-1]/h[k-1]). The first and last rows omit the
// out-of-range neighbor term, consistent with sigma[0] = sigma[n-1] = 0.
func buildSystem(h, dy []float64) (*mat.Dense, *mat.VecDense) {
	m := len(h) - 1
	a := mat.NewDense(m, m, nil)
	rhs := mat.NewVecDense(m, nil)

	for i := 0; i < m; i++ {
		k := i + 1
		a.Set(i, i, 2*(h[k-1]+h[k]))
		if i > 0 {
			a.Set(i, i-1, h[k-1])
		}
		if i < m-1 {
			a.Set(i, i+1, h[k])
		}
		rhs.SetVec(i, 6*(dy[k]/h[k]-dy[k-1]/h[k-1]))
	}
	return a, rhs
}
