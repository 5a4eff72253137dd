// SPDX-License-Identifier: MIT

package roots

import "fmt"

// Bisection halves the bracket [a, b] until the relative change of the
// midpoint drops below the tolerance. It always converges for a continuous f
// with a sign change on [a, b], at one bit per iteration.
//
// Errors: ErrNilFunc, ErrNoBracket, ErrNotConverged, ErrOptionViolation.
func Bisection(f Func, a, b float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrNilFunc
	}
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return Result{}, fmt.Errorf("roots.Bisection: f(%g)=%g, f(%g)=%g: %w", a, fa, b, fb, ErrNoBracket)
	}

	var xr, xOld, fxr float64
	for i := 0; i < o.MaxIter; i++ {
		xr = (a + b) / 2
		fxr = f(xr)
		if ea, ok := relErr(xr, xOld); ok && i > 0 && ea < o.Tolerance {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		if fxr == 0 {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		if fa*fxr < 0 {
			b = xr
		} else {
			a, fa = xr, fxr
		}
		xOld = xr
	}

	return Result{}, notConverged("roots.Bisection", o, xr)
}

// FalsePosition intersects the secant through (a, f(a)) and (b, f(b)) with
// the x axis and keeps the sub-interval that still brackets the root.
//
// Illinois variant: when the same endpoint survives two iterations in a row,
// its stored function value is halved, which pulls the next secant towards
// it and avoids the one-sided stagnation of plain regula falsi.
//
// Errors: ErrNilFunc, ErrNoBracket, ErrNotConverged, ErrOptionViolation.
func FalsePosition(f Func, a, b float64, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if f == nil {
		return Result{}, ErrNilFunc
	}
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return Result{}, fmt.Errorf("roots.FalsePosition: f(%g)=%g, f(%g)=%g: %w", a, fa, b, fb, ErrNoBracket)
	}

	var (
		xr, xOld, fxr float64
		staleA        int // iterations a has not moved
		staleB        int // iterations b has not moved
	)
	for i := 0; i < o.MaxIter; i++ {
		xr = b - fb*(a-b)/(fa-fb)
		fxr = f(xr)
		if ea, ok := relErr(xr, xOld); ok && i > 0 && ea < o.Tolerance {
			return Result{Root: xr, Iterations: i + 1}, nil
		}
		if fxr == 0 {
			return Result{Root: xr, Iterations: i + 1}, nil
		}

		if fa*fxr < 0 {
			b, fb = xr, fxr
			staleB = 0
			if staleA++; staleA >= 2 {
				fa /= 2
			}
		} else {
			a, fa = xr, fxr
			staleA = 0
			if staleB++; staleB >= 2 {
				fb /= 2
			}
		}
		xOld = xr
	}

	return Result{}, notConverged("roots.FalsePosition", o, xr)
}
