// Package spline computes natural cubic spline interpolants in pure Go.
//
// A natural cubic spline is a piecewise cubic curve through an ordered set of
// 2-D points with continuous value, first, and second derivative at the
// interior knots, and zero second derivative at the two endpoints. The
// library solves the interior second derivatives from the standard
// tridiagonal system using successive over-relaxation (SOR), then derives
// four polynomial coefficients per segment.
//
// # Quick Start
//
// For a one-shot fit with default solver parameters:
//
//	s, err := spline.Fit([]spline.Point{
//	    {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: -1},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := s.Evaluate(1.5)
//
// Solver parameters can be tuned through a configuration:
//
//	config := &spline.Config{
//	    Omega:         1.2,
//	    Tolerance:     1e-10,
//	    MaxIterations: 10000,
//	}
//	s, err := spline.FitWithConfig(points, config)
//
// # Architecture
//
// The library separates the numerical engine from any presentation concern:
//
//	Points -> [Tridiagonal System] -> [SOR Solver] -> [Segment Coefficients]
//
// internal/engine assembles the (n-2)x(n-2) second-derivative system and
// derives the coefficients; internal/solver is a general-purpose SOR
// implementation with no spline knowledge. Rendering is out of scope: the
// [Spline] type exposes coefficient arrays, point evaluation, and uniform
// sampling, and any plotting layer consumes those outputs only.
//
// # Coefficients
//
// Segment i spans [x_i, x_i+1] and evaluates as
//
//	f_i(x) = a[i]*(x-x_i)^3 + b[i]*(x-x_i)^2 + c[i]*(x-x_i) + d[i]
//
// The four arrays are available via [Spline.Coefficients], or per segment via
// [Spline.Segment]. By construction d[i] equals y_i, so every knot is
// interpolated exactly.
//
// # Solver Behavior
//
// The classic SOR formulation iterates until the residual norm drops below
// the tolerance, with no iteration cap: a system that does not satisfy the
// SOR convergence conditions never terminates. That behavior is preserved by
// default. Setting [Config.MaxIterations] to a positive value bounds the loop
// and surfaces [ErrNoConvergence] instead, a deliberate deviation from the
// unbounded classic semantics.
//
// The spline tridiagonal system is strictly diagonally dominant whenever the
// knot x values are strictly increasing, so fits over valid input always
// converge. Strictly increasing x is validated at the API boundary and
// rejected with [ErrNonIncreasingX].
//
// # Thread Safety
//
// A [Spline] is immutable after construction and safe for concurrent use.
// Fitting allocates per call and shares no state between invocations.
package spline
