package spline

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Segment describes one cubic piece of the spline, valid for x in [X0, X1]:
//
//	f(x) = A*t^3 + B*t^2 + C*t + D,  t = x - X0
type Segment struct {
	A, B, C, D float64
	X0, X1     float64
}

// Segment returns the i-th cubic segment. i must be in [0, NumSegments).
func (s *Spline) Segment(i int) Segment {
	return Segment{
		A:  s.coef.A[i],
		B:  s.coef.B[i],
		C:  s.coef.C[i],
		D:  s.coef.D[i],
		X0: s.xs[i],
		X1: s.xs[i+1],
	}
}

// Evaluate computes the spline value at x.
//
// x must lie within the knot domain; values outside it return ErrOutOfRange.
// At an interior knot the segment starting there is used, so knot values are
// reproduced exactly rather than to solver tolerance.
func (s *Spline) Evaluate(x float64) (float64, error) {
	lo, hi := s.Domain()
	if x < lo || x > hi {
		return 0, fmt.Errorf("%w: x=%g outside [%g, %g]", ErrOutOfRange, x, lo, hi)
	}
	return s.evalSegment(s.segmentIndex(x), x), nil
}

// Sample evaluates the spline at n evenly spaced points spanning the full
// knot domain, endpoints included. n must be at least 2.
func (s *Spline) Sample(n int) ([]Point, error) {
	if n < minSamples {
		return nil, fmt.Errorf("%w: sample count must be at least %d, got %d", ErrInvalidConfig, minSamples, n)
	}

	lo, hi := s.Domain()
	xs := floats.Span(make([]float64, n), lo, hi)

	points := make([]Point, n)
	for i, x := range xs {
		points[i] = Point{X: x, Y: s.evalSegment(s.segmentIndex(x), x)}
	}
	return points, nil
}

// segmentIndex locates the segment i with xs[i] <= x <= xs[i+1].
// Exact interior knot hits map to the segment starting at that knot; the
// result is clamped to a valid segment so callers that guarantee in-domain x
// can skip the range check.
func (s *Spline) segmentIndex(x float64) int {
	idx := sort.SearchFloat64s(s.xs, x)
	switch {
	case idx >= len(s.xs)-1:
		return len(s.xs) - 2
	case idx == 0:
		return 0
	case s.xs[idx] == x:
		return idx
	default:
		return idx - 1
	}
}

// evalSegment Horner-evaluates segment i at x.
func (s *Spline) evalSegment(i int, x float64) float64 {
	t := x - s.xs[i]
	return ((s.coef.A[i]*t+s.coef.B[i])*t+s.coef.C[i])*t + s.coef.D[i]
}
