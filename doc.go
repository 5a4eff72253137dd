// SPDX-License-Identifier: MIT

// Package eqsys is a small numerical-methods toolkit for solving systems of
// equations, from dense direct elimination to iterative relaxation and
// quasi-Newton iteration for nonlinear systems.
//
// 🚀 What is eqsys?
//
//	A pure-Go library of textbook solvers with explicit error contracts:
//		• Direct: Gauss elimination with scaled partial pivoting, Doolittle LU
//		• Banded: Thomas algorithm (TDMA) for tridiagonal systems
//		• Relaxation: Jacobi, Gauss–Seidel and SOR
//		• Nonlinear systems: Broyden's method with rank-one Jacobian updates
//		• Scalar roots: bisection, false position, Newton, secant, fixed point
//		• Companions: least-squares line fit, composite trapezoid rule
//
// ✨ Why choose eqsys?
//
//   - Inputs are never mutated; every solver works on private copies
//   - Failures are sentinel errors usable with errors.Is, and iterative
//     exhaustion is a *matrix.ConvergenceError usable with errors.As
//   - Functional options (WithTolerance, WithMaxIter…) with sane defaults
//   - Hooks (OnSweep, OnIterate) for tracing convergence
//
// Packages:
//
//	matrix/     — Dense storage, validators, sentinels, vector kernels
//	gauss/      — Gaussian elimination with scaled partial pivoting
//	lu/         — Doolittle LU factorization, determinant, inverse
//	thomas/     — tridiagonal (TDMA) solver
//	relax/      — Jacobi, Gauss–Seidel and SOR iteration
//	broyden/    — Broyden's quasi-Newton method for F(x) = 0
//	roots/      — scalar root finders
//	regression/ — ordinary least-squares straight line
//	quadrature/ — composite trapezoid rule
//	cmd/convplot — compares the solvers and plots relaxation history
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, -1}, {-1, 4}})
//	x, err := gauss.Solve(a, []float64{3, 3})
//	// x ≈ [1 1]
//
//	go get github.com/katalvlaran/eqsys
package eqsys
