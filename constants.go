package spline

import (
	"github.com/tphakala/go-cubic-spline/internal/solver"
)

// Default solver parameters, applied when the corresponding Config fields are
// left zero.
const (
	// DefaultOmega is the default SOR relaxation factor.
	DefaultOmega = solver.DefaultOmega

	// DefaultTolerance is the default residual tolerance for convergence.
	DefaultTolerance = solver.DefaultTolerance
)

// Input constraints
const (
	// minPoints is the smallest point sequence a fit accepts. Fewer knots
	// leave no interior second derivative to solve for.
	minPoints = 4

	// minSamples is the smallest sample count Sample accepts (the two
	// domain endpoints).
	minSamples = 2
)

// Relaxation factor limits (exclusive). SOR is only defined for omega in (0, 2).
const (
	minOmega = 0.0
	maxOmega = 2.0
)
