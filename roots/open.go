// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Newton runs Newton-Raphson from x0: x ← x − f(x)/f'(x).
// Quadratic convergence near a simple root; no global guarantee.
//
// Errors: ErrNilFunc, ErrZeroDerivative, ErrNotConverged, ErrOptionViolation.
func Newton(f, df Func, x0 float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if f == nil || df == nil {
		return Result{}, ErrNilFunc
	}

	xr := x0
	var fx, dfx, xNew float64
	for i := 0; i < o.MaxIter; i++ {
		fx, dfx = f(xr), df(xr)
		if dfx == 0 {
			return Result{}, fmt.Errorf("roots.Newton: f'(%g) = 0: %w", xr, ErrZeroDerivative)
		}
		xNew = xr - fx/dfx
		if ea, ok := relErr(xNew, xr); ok && ea < o.Tolerance {
			return Result{Root: xNew, Iterations: i + 1}, nil
		}
		if fx == 0 {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		xr = xNew
	}

	return Result{}, notConverged("roots.Newton", o, xr)
}

// Secant replaces Newton's derivative with the slope through the last two
// iterates, starting from x0 and x1. When the new estimate is exactly zero the
// absolute change is compared against the tolerance instead.
//
// Errors: ErrNilFunc, ErrFlatSecant, ErrNotConverged, ErrOptionViolation.
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrNilFunc
	}

	f0, f1 := f(x0), f(x1)
	xr := x1
	var denom float64
	for i := 0; i < o.MaxIter; i++ {
		denom = f1 - f0
		if math.Abs(denom) < FlatSecantThreshold {
			return Result{}, fmt.Errorf("roots.Secant: f(%g) − f(%g) = %g: %w", x1, x0, denom, ErrFlatSecant)
		}
		xr = x1 - f1*(x1-x0)/denom
		if ea, ok := relErr(xr, x1); ok {
			if ea < o.Tolerance {
				return Result{Root: xr, Iterations: i + 1}, nil
			}
		} else if math.Abs(xr-x1) < o.Tolerance {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		x0, f0 = x1, f1
		x1, f1 = xr, f(xr)
	}

	return Result{}, notConverged("roots.Secant", o, xr)
}

// FixedPoint iterates x ← g(x) from x0. It converges when |g'(x)| < 1 near
// the fixed point; g is usually obtained by rearranging f(x) = 0 as x = g(x).
//
// Errors: ErrNilFunc, ErrNotConverged, ErrOptionViolation.
func FixedPoint(g Func, x0 float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilFunc
	}

	xOld := x0
	var xr float64
	for i := 0; i < o.MaxIter; i++ {
		xr = g(xOld)
		if ea, ok := relErr(xr, xOld); ok && ea < o.Tolerance {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		if xr == xOld {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		xOld = xr
	}

	return Result{}, notConverged("roots.FixedPoint", o, xr)
}
