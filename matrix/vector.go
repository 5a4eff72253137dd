// SPDX-License-Identifier: MIT

// Package matrix - vector kernels.
//
// Purpose:
//   - One place for the []float64 primitives the solvers share: dot product,
//     Euclidean norm and distance, scaled accumulation, elementwise product.
//   - Delegate the kernels to gonum/floats (overflow-safe norms, dot products)
//     and algo-vecmath (SIMD-dispatched block products).
//
// Contract:
//   - Kernels assume equal lengths; callers validate with ValidateVecLen first.
//     Mismatched lengths are a programmer error and panic inside gonum/floats.
package matrix

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Dot returns Σ a[i]*b[i].
// Complexity: O(n).
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Norm returns the Euclidean norm ‖x‖₂ (scaled accumulation, no overflow for large entries).
// Complexity: O(n).
func Norm(x []float64) float64 {
	return floats.Norm(x, 2)
}

// MaxAbs returns max |x[i]| (0 for an empty slice).
// Complexity: O(n).
func MaxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, math.Inf(1))
}

// Distance returns ‖a − b‖₂ without allocating the difference.
// Complexity: O(n).
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// AddScaled performs dst += alpha*s in place.
// Complexity: O(n).
func AddScaled(dst []float64, alpha float64, s []float64) {
	floats.AddScaled(dst, alpha, s)
}

// Scale performs dst *= c in place.
// Complexity: O(n).
func Scale(c float64, dst []float64) {
	floats.Scale(c, dst)
}

// ScaleInto writes dst[i] = c*src[i].
// Complexity: O(n).
func ScaleInto(dst, src []float64, c float64) {
	vecmath.ScaleBlock(dst, src, c)
}

// AddInPlace performs dst += src elementwise.
// Complexity: O(n).
func AddInPlace(dst, src []float64) {
	vecmath.AddBlockInPlace(dst, src)
}

// MulElem writes the elementwise product dst[i] = a[i]*b[i].
// dst may alias a or b.
// Complexity: O(n).
func MulElem(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

// Zeros returns a new zero vector of length n (nil for n <= 0).
func Zeros(n int) []float64 {
	if n <= 0 {
		return nil
	}

	return make([]float64, n)
}

// CloneVec returns an independent copy of x (nil stays nil).
func CloneVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}

// IsFinite reports whether every element of x is neither NaN nor ±Inf.
func IsFinite(x []float64) bool {
	for _, v := range x {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
