// Package simdops provides SIMD-accelerated float64 slice operations used by
// the relaxation solver's inner loops.
//
// The functions here are thin wrappers around github.com/tphakala/simd that
// add the bounds checks the unsafe variants omit. With Profile-Guided
// Optimization (Go 1.22+) the wrapper calls inline away in hot paths.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Dot computes the dot product of a and b.
// Panics if the slices have different lengths.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("simdops: dot product of slices with different lengths")
	}
	return f64.DotProductUnsafe(a, b)
}

// DotUnsafe computes the dot product without a length check.
// Use only when slices are guaranteed to have equal length.
func DotUnsafe(a, b []float64) float64 {
	return f64.DotProductUnsafe(a, b)
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	return f64.Sum(a)
}

// Scale multiplies each element of a by scalar s: dst[i] = a[i] * s.
// dst and a must have the same length; dst may alias a.
func Scale(dst, a []float64, s float64) {
	if len(dst) != len(a) {
		panic("simdops: scale with mismatched slice lengths")
	}
	f64.Scale(dst, a, s)
}
