// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose mutable row views for the elimination and relaxation kernels, which
//     always work on a private copy obtained through DenseOf.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/DenseOf: O(r*c);
//     RawRowView: O(1); SwapRows: O(c); MulVec: O(r*c).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 literal into a fresh Dense.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows (ErrBadShape).
//   - Stage 2: copy row by row, rejecting NaN/±Inf (ErrNaNInf).
//
// Errors:
//   - ErrBadShape, ErrNaNInf (wrapped with the offending coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFrom, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFrom, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
		for j = 0; j < c; j++ {
			if !isFinite(rows[i][j]) {
				return nil, matrixErrorf(opFrom, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) zero-init plus O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// DenseOf materializes any Matrix into a fresh, independent *Dense.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: Fast-path for *Dense (single copy of the flat buffer);
//     otherwise fixed i→j loop through At.
//
// Behavior highlights:
//   - The result never aliases m; solvers rely on this to leave caller input untouched.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, errors surfaced by m.At.
//   - ErrNaNInf when a non-Dense source holds NaN or ±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseOf, err)
			}
			if !isFinite(v) {
				return nil, matrixErrorf(opDenseOf, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). NaN and ±Inf are rejected with ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

func (m *Dense) cloneDense() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RawRowView returns row i as a slice aliasing the backing buffer.
// Writes through the slice mutate m; the slice is only valid while m is alive.
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Hot loops (elimination, relaxation sweeps) should hoist RawRowView out of the inner loop.
func (m *Dense) RawRowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRowView, denseErrorf(ctxAt, i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// RowViews returns every row as a slice aliasing the backing buffer.
// Reordering the returned outer slice permutes rows logically without moving
// data, which is how the elimination kernels implement pivoting on their
// private copy.
// Complexity: O(r).
func (m *Dense) RowViews() [][]float64 {
	rows := make([][]float64, m.r)
	for i := range rows {
		rows[i] = m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return rows
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(opSwap, denseErrorf(ctxAt, i, 0, ErrOutOfRange))
	}
	if j < 0 || j >= m.r {
		return matrixErrorf(opSwap, denseErrorf(ctxAt, j, 0, ErrOutOfRange))
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// MulVec computes y = m·x into a freshly allocated vector.
//
// Errors:
//   - ErrNilMatrix (nil x), ErrDimensionMismatch (len(x) != Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		y[i] = Dot(m.data[i*m.c:(i+1)*m.c], x)
	}

	return y, nil
}

// Diag returns a copy of the main diagonal (length min(r, c)).
// Complexity: O(min(r, c)).
func (m *Dense) Diag() []float64 {
	n := min(m.r, m.c)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i]
	}

	return d
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
