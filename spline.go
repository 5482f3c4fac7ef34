package spline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-cubic-spline/internal/engine"
	"github.com/tphakala/go-cubic-spline/internal/solver"
)

// Point is a single 2-D knot of the interpolant.
type Point struct {
	X, Y float64
}

// Common errors returned by the package.
var (
	// ErrInvalidPoints indicates the point sequence cannot define a spline.
	ErrInvalidPoints = errors.New("invalid point sequence")

	// ErrNonIncreasingX indicates two consecutive knots share the same or
	// decreasing x, which breaks the diagonal dominance of the
	// second-derivative system.
	ErrNonIncreasingX = errors.New("knot x values not strictly increasing")

	// ErrInvalidConfig indicates invalid solver configuration parameters.
	ErrInvalidConfig = errors.New("invalid spline configuration")

	// ErrOutOfRange indicates an evaluation point outside the knot domain.
	ErrOutOfRange = errors.New("evaluation point outside spline domain")

	// ErrNoConvergence indicates the solver's iteration cap was exhausted
	// before the residual dropped below the tolerance. Only possible when
	// Config.MaxIterations is positive.
	ErrNoConvergence = solver.ErrNoConvergence

	// ErrInvalidSystem indicates a malformed linear system passed to
	// SolveLinearSystem.
	ErrInvalidSystem = solver.ErrBadSystem
)

// Config holds solver parameters for a spline fit.
// The zero value selects the defaults: omega 0.5, tolerance 1e-8, no
// iteration cap.
type Config struct {
	// Omega is the SOR relaxation factor, in (0, 2). Zero selects
	// DefaultOmega.
	Omega float64

	// Tolerance is the residual 2-norm below which the solver stops.
	// Zero selects DefaultTolerance.
	Tolerance float64

	// MaxIterations caps the number of solver sweeps. Zero keeps the
	// classic unbounded formulation, where a non-convergent system never
	// terminates; a positive cap turns non-convergence into
	// ErrNoConvergence instead.
	MaxIterations int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Omega != 0 && (c.Omega <= minOmega || c.Omega >= maxOmega) {
		return fmt.Errorf("%w: omega must be in (%g, %g), got %g", ErrInvalidConfig, minOmega, maxOmega, c.Omega)
	}

	if c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be non-negative, got %g", ErrInvalidConfig, c.Tolerance)
	}

	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must be non-negative, got %d", ErrInvalidConfig, c.MaxIterations)
	}

	return nil
}

// solverConfig translates the public configuration into solver parameters,
// filling in defaults for zero fields.
func (c *Config) solverConfig() solver.Config {
	cfg := solver.DefaultConfig()
	if c == nil {
		return cfg
	}
	if c.Omega != 0 {
		cfg.Omega = c.Omega
	}
	if c.Tolerance != 0 {
		cfg.Tolerance = c.Tolerance
	}
	cfg.MaxIterations = c.MaxIterations
	return cfg
}

// Spline is a fitted natural cubic spline. It is immutable after
// construction and safe for concurrent use.
type Spline struct {
	xs, ys []float64
	coef   *engine.Coefficients
}

// Fit computes the natural cubic spline through points using default solver
// parameters.
//
// The sequence must contain at least four points with strictly increasing x.
// Fit is a pure function of its input: it copies the points and allocates
// fresh result arrays, so repeated fits over the same sequence yield
// identical splines.
func Fit(points []Point) (*Spline, error) {
	return FitWithConfig(points, nil)
}

// FitWithConfig is like Fit with explicit solver parameters.
// A nil config selects the defaults.
func FitWithConfig(points []Point, config *Config) (*Spline, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	if config != nil {
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	coef, err := engine.Build(xs, ys, config.solverConfig())
	if err != nil {
		return nil, err
	}

	return &Spline{xs: xs, ys: ys, coef: coef}, nil
}

// validatePoints enforces the fit preconditions: at least minPoints knots and
// strictly increasing x.
func validatePoints(points []Point) error {
	if len(points) < minPoints {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidPoints, minPoints, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return fmt.Errorf("%w: points[%d].X=%g is not greater than points[%d].X=%g",
				ErrNonIncreasingX, i, points[i].X, i-1, points[i-1].X)
		}
	}
	return nil
}

// Coefficients returns copies of the four per-segment coefficient arrays,
// each of length NumSegments. Segment i evaluates as
// a[i]*t^3 + b[i]*t^2 + c[i]*t + d[i] with t = x - x_i.
func (s *Spline) Coefficients() (a, b, c, d []float64) {
	return cloneFloats(s.coef.A), cloneFloats(s.coef.B), cloneFloats(s.coef.C), cloneFloats(s.coef.D)
}

// SecondDerivatives returns a copy of the second-derivative vector, one entry
// per knot. The first and last entries are exactly zero (natural boundary
// condition).
func (s *Spline) SecondDerivatives() []float64 {
	return cloneFloats(s.coef.Sigma)
}

// Points returns a copy of the knots the spline was fitted through.
func (s *Spline) Points() []Point {
	points := make([]Point, len(s.xs))
	for i := range s.xs {
		points[i] = Point{X: s.xs[i], Y: s.ys[i]}
	}
	return points
}

// NumSegments returns the number of cubic segments (number of knots minus one).
func (s *Spline) NumSegments() int {
	return len(s.xs) - 1
}

// Domain returns the x range covered by the spline.
func (s *Spline) Domain() (lo, hi float64) {
	return s.xs[0], s.xs[len(s.xs)-1]
}

func cloneFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
