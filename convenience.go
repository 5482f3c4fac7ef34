package spline

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// FitXY fits a natural cubic spline through parallel x and y slices with
// default solver parameters. The slices must have equal length.
func FitXY(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs)=%d but len(ys)=%d", ErrInvalidPoints, len(xs), len(ys))
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return Fit(points)
}

// FitFunc fits a natural cubic spline to f sampled at n evenly spaced knots
// across [lo, hi]. n must be at least 4 and lo must be less than hi.
func FitFunc(f func(float64) float64, lo, hi float64, n int) (*Spline, error) {
	if n < minPoints {
		return nil, fmt.Errorf("%w: need at least %d knots, got %d", ErrInvalidPoints, minPoints, n)
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: domain [%g, %g] is empty", ErrInvalidPoints, lo, hi)
	}

	xs := floats.Span(make([]float64, n), lo, hi)
	points := make([]Point, n)
	for i, x := range xs {
		points[i] = Point{X: x, Y: f(x)}
	}
	return Fit(points)
}
