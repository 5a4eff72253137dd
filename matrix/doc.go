// SPDX-License-Identifier: MIT

// Package matrix is the dense matrix/vector model shared by every solver in eqsys.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 arrays, and Dense,
//     its row-major implementation with bounds-checked At/Set, mutable row views
//     (RawRowView), SwapRows and MulVec.
//   - DenseOf, which materializes any Matrix into an independent *Dense. Solvers
//     call it first, so caller-owned matrices are never mutated.
//   - Vector kernels over []float64 (Dot, Norm, Distance, AddScaled, Scale,
//     MulElem, MaxAbs) backed by algo-vecmath and gonum/floats.
//   - Canonical validators (ValidateSystem, ValidateVecLen, ...) and the shared
//     error taxonomy: ErrDimensionMismatch, ErrSingular, ErrZeroDiagonal,
//     ErrNotConverged (via *ConvergenceError), ErrNaNInf.
//
// Everything here is synchronous and allocation-conscious; a Dense is not safe
// for concurrent mutation, but every solver works on its own copy.
//
// Example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, -1}, {-1, 4}})
//	y, _ := a.MulVec([]float64{1, 1}) // [3 3]
package matrix
