// SPDX-License-Identifier: MIT

// Package quadrature approximates definite integrals.
package quadrature

import (
	"errors"
	"fmt"
)

// ErrSegments is returned when fewer than one segment is requested.
var ErrSegments = errors.New("quadrature: number of segments must be >= 1")

// ErrNilFunc is returned when the integrand is nil.
var ErrNilFunc = errors.New("quadrature: integrand is nil")

// Trapezoid applies the composite trapezoidal rule with n equal segments:
//
//	∫ f ≈ h/2 · (f(a) + 2·Σ_{i=1}^{n-1} f(a + i·h) + f(b)),  h = (b − a)/n
//
// b < a yields the negated integral. The error is O(h²) for smooth f; the
// rule is exact for linear f.
//
// Errors: ErrNilFunc, ErrSegments.
func Trapezoid(f func(x float64) float64, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if n < 1 {
		return 0, fmt.Errorf("quadrature.Trapezoid: n=%d: %w", n, ErrSegments)
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		sum += 2 * f(a+float64(i)*h)
	}

	return h / 2 * sum, nil
}
