// SPDX-License-Identifier: MIT

// Package thomas implements the Thomas algorithm (TDMA) for tridiagonal
// linear systems.
//
// A tridiagonal matrix is stored as three bands of length n:
//
//	| f0 g0             |
//	| e1 f1 g1          |
//	|    e2 f2 g2       |
//	|       .. .. ..    |
//	|          en fn    |
//
// e[0] and g[n-1] are unused. The solver performs a forward sweep followed by
// back substitution in O(n) time. It does not pivot, so it is meant for
// diagonally well-behaved systems (e.g. diagonally dominant ones, as produced
// by finite-difference discretizations); a zero pivot fails with ErrZeroPivot.
//
// Usage:
//
//	x, err := thomas.Solve(
//		[]float64{0, 1, 1}, // e
//		[]float64{2, 2, 2}, // f
//		[]float64{1, 1, 0}, // g
//		[]float64{3, 4, 3}, // b
//	) // x = [1 1 1]
//
// Bands, BandsOf and SolveMatrix convert between the band and dense forms.
package thomas
