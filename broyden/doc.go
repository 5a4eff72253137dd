// SPDX-License-Identifier: MIT

// Package broyden solves nonlinear systems f(x) = 0 with Broyden's
// quasi-Newton method.
//
// Newton's method needs the Jacobian J(x) at every iterate. Broyden's method
// keeps an approximation B instead and corrects it after each step with a
// rank-one update chosen so that B maps the last step onto the observed change
// in the residual (the secant condition). No derivatives are evaluated.
//
// The iteration starts from the identity unless WithJacobian supplies a
// better estimate; a good B0 is usually the difference between a handful of
// iterations and divergence.
//
// Usage:
//
//	circle := func(x []float64) []float64 {
//		return []float64{x[0]*x[0] + x[1]*x[1] - 4, x[0] - x[1]}
//	}
//	x, err := broyden.Solve(circle, []float64{1, 1},
//		broyden.WithTolerance(1e-8),
//		broyden.WithMaxIter(50),
//	) // x ≈ [√2 √2]
//
// Known edge case: when Δx·Δx ≤ MinStepNormSq the update is skipped and the
// next iteration reuses the same B. If the tolerance is tighter than such
// steps, the iteration can stall on a stale B until MaxIter is exhausted.
package broyden
