// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/eqsys/matrix"
	"github.com/katalvlaran/eqsys/regression"
)

func TestLinear_MatchesGonum(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4, 5, 6, 7}
	y := []float64{0.5, 2.5, 2, 4, 3.5, 6, 5.5}

	fit, err := regression.Linear(x, y)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, beta, fit.Slope, 1e-12)
	assert.InDelta(t, alpha, fit.Intercept, 1e-12)
	assert.InDelta(t, stat.RSquared(x, y, nil, alpha, beta), fit.R2, 1e-12)

	// Textbook values for this data set.
	assert.InDelta(t, 0.8392857, fit.Slope, 1e-7)
	assert.InDelta(t, 0.0714286, fit.Intercept, 1e-7)
	assert.InDelta(t, 0.7734, fit.StdErr, 1e-4)
	assert.InDelta(t, 0.8683, fit.R2, 1e-4)

	assert.InDelta(t, 0.0714286+0.8392857*8, fit.Predict(8), 1e-6)
}

func TestLinear_ExactLine(t *testing.T) {
	t.Parallel()

	fit, err := regression.Linear([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 1e-15)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-15)
	assert.InDelta(t, 0.0, fit.StdErr, 1e-12)
	assert.InDelta(t, 1.0, fit.R2, 1e-15)
}

func TestLinear_ConstantY(t *testing.T) {
	t.Parallel()

	fit, err := regression.Linear([]float64{1, 2, 3}, []float64{5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, fit.Slope)
	assert.Equal(t, 5.0, fit.Intercept)
	assert.Equal(t, 1.0, fit.R2)
	assert.False(t, math.IsNaN(fit.StdErr))
}

func TestLinear_Errors(t *testing.T) {
	t.Parallel()

	_, err := regression.Linear([]float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, regression.ErrTooFewPoints)

	_, err = regression.Linear([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, regression.ErrLengthMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = regression.Linear([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, regression.ErrDegenerateX)
}
