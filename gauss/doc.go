// SPDX-License-Identifier: MIT

// Package gauss solves dense linear systems A·x = b by Gaussian elimination
// with scaled partial pivoting.
//
// What & Why:
//
//	Plain partial pivoting picks the largest |A[i,k]| in a column, which can be
//	fooled by a row that is simply scaled up. Scaled partial pivoting divides
//	each candidate by its row's largest magnitude first, so the choice reflects
//	how dominant the entry is within its own equation.
//
// Usage:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, -1, 0}, {-1, 4, -1}, {0, -1, 4}})
//	x, err := gauss.Solve(a, []float64{15, 10, 10}, gauss.WithTolerance(1e-9))
//	if errors.Is(err, matrix.ErrSingular) {
//		// near-singular system under the chosen tolerance
//	}
//
// The solver works on a private copy: neither a nor b is modified.
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²)
package gauss
