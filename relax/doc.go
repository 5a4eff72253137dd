// SPDX-License-Identifier: MIT

// Package relax solves A·x = b with stationary relaxation methods:
// Jacobi, Gauss-Seidel and successive over-relaxation (SOR).
//
// What & Why:
//
//	Relaxation methods never factor A. Each sweep costs one pass over the
//	matrix, which makes them attractive for large, diagonally dominant
//	systems where a direct O(n³) elimination is wasteful. Convergence is
//	guaranteed for strictly diagonally dominant A; for other matrices it
//	depends on the spectral radius of the iteration matrix.
//
// Methods:
//
//	Jacobi       x_new[i] = (b[i] − Σ_{j≠i} A[i,j]·x_old[j]) / A[i,i]
//	GaussSeidel  same formula, evaluated in place with the freshest values,
//	             then blended: x[i] = ω·x_gs + (1−ω)·x_old[i]
//
// ω = 1 is plain Gauss-Seidel, 0<ω<1 under-relaxes and 1<ω<2 over-relaxes.
// Jacobi does not apply ω.
//
// Usage:
//
//	x, err := relax.Solve(a, b, relax.GaussSeidel,
//		relax.WithOmega(1.1),
//		relax.WithTolerance(1e-9),
//		relax.WithOnSweep(func(k int, _ []float64, change float64) {
//			history = append(history, change)
//		}),
//	)
//	var ce *matrix.ConvergenceError
//	if errors.As(err, &ce) {
//		// ce.Iterations sweeps ran, last change ce.Change
//	}
package relax
