// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsys/matrix"
)

// rowsMatrix is a minimal non-Dense Matrix used to exercise the generic paths.
type rowsMatrix [][]float64

func (m rowsMatrix) Rows() int { return len(m) }
func (m rowsMatrix) Cols() int { return len(m[0]) }
func (m rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return 0, matrix.ErrOutOfRange
	}
	return m[i][j], nil
}
func (m rowsMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[0]) {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v
	return nil
}
func (m rowsMatrix) Clone() matrix.Matrix {
	out := make(rowsMatrix, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	return out
}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return d
}

func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 3, d.Cols())
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrBadShape, "%dx%d", tc.r, tc.c)
	}
}

func TestNewDenseFrom_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want error
	}{
		{"empty", nil, matrix.ErrBadShape},
		{"empty row", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
		{"ok", [][]float64{{1, 2}, {3, 4}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.NewDenseFrom(tc.in)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}}
	d := mustDense(t, src)
	src[0][0] = 99

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, d.Set(1, 0, 7))
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, id.Diag())
	v, err := id.At(0, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDenseOf_IndependentCopy(t *testing.T) {
	t.Parallel()

	orig := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	cp, err := matrix.DenseOf(orig)
	require.NoError(t, err)
	require.NoError(t, cp.Set(0, 0, -1))
	v, _ := orig.At(0, 0)
	assert.Equal(t, 1.0, v, "DenseOf must not alias a *Dense source")

	generic := rowsMatrix{{5, 6}, {7, 8}}
	cp, err = matrix.DenseOf(generic)
	require.NoError(t, err)
	row, err := cp.RawRowView(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8}, row)
	row[0] = 0
	assert.Equal(t, 7.0, generic[1][0], "DenseOf must not alias a generic source")

	_, err = matrix.DenseOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.DenseOf(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.DenseOf(rowsMatrix{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_Clone(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2}})
	c := d.Clone()
	require.NoError(t, c.Set(0, 1, 9))
	v, _ := d.At(0, 1)
	assert.Equal(t, 2.0, v)
}

func TestDense_RowViews(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	rows := d.RowViews()
	require.Len(t, rows, 3)

	// Writes go through to the backing buffer.
	rows[2][1] = 60
	v, _ := d.At(2, 1)
	assert.Equal(t, 60.0, v)

	// Permuting the headers leaves storage untouched.
	rows[0], rows[2] = rows[2], rows[0]
	v, _ = d.At(0, 0)
	assert.Equal(t, 1.0, v)

	// Capacity is clipped: appending must not overwrite the next row.
	r0, err := d.RawRowView(0)
	require.NoError(t, err)
	_ = append(r0, 100)
	v, _ = d.At(1, 0)
	assert.Equal(t, 3.0, v)

	_, err = d.RawRowView(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SwapRows(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, d.SwapRows(0, 1))
	assert.Equal(t, "[3, 4]\n[1, 2]\n", d.String())
	require.NoError(t, d.SwapRows(1, 1))
	require.ErrorIs(t, d.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestDense_MulVec(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	y, err := d.MulVec([]float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = d.MulVec([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = d.MulVec(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDense_Diag(t *testing.T) {
	t.Parallel()

	d := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	diag := d.Diag()
	assert.Equal(t, []float64{1, 5}, diag)
	diag[0] = 0
	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v, "Diag returns a copy")
}
