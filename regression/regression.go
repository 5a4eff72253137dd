// SPDX-License-Identifier: MIT

// Package regression fits straight lines by ordinary least squares.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eqsys/matrix"
)

// Sentinel errors for regression.
var (
	// ErrTooFewPoints is returned for fewer than three samples; the standard
	// error of the estimate divides by n − 2.
	ErrTooFewPoints = errors.New("regression: at least 3 points are required")

	// ErrLengthMismatch is returned when x and y differ in length.
	// Wraps matrix.ErrDimensionMismatch.
	ErrLengthMismatch = fmt.Errorf("regression: x and y lengths differ: %w", matrix.ErrDimensionMismatch)

	// ErrDegenerateX is returned when every x is the same, so no slope exists.
	ErrDegenerateX = errors.New("regression: all x values are equal")
)

// Fit describes the line y = Slope·x + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
	StdErr    float64 // standard error of the estimate, sqrt(Sr / (n − 2))
	R2        float64 // coefficient of determination (St − Sr) / St
}

// Predict evaluates the fitted line at x.
func (f Fit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Linear computes the least-squares line through (x[i], y[i]).
//
//	a1 = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	a0 = ȳ − a1·x̄
//
// R2 is 1 when every y is equal (St = 0): the horizontal line fits exactly.
//
// Errors: ErrLengthMismatch, ErrTooFewPoints, ErrDegenerateX.
func Linear(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("regression.Linear: len(x)=%d len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	n := len(x)
	if n < 3 {
		return Fit{}, fmt.Errorf("regression.Linear: n=%d: %w", n, ErrTooFewPoints)
	}

	nf := float64(n)
	sumX, sumY := floats.Sum(x), floats.Sum(y)
	sumXY, sumX2 := matrix.Dot(x, y), matrix.Dot(x, x)

	den := nf*sumX2 - sumX*sumX
	if den == 0 {
		return Fit{}, fmt.Errorf("regression.Linear: %w", ErrDegenerateX)
	}
	a1 := (nf*sumXY - sumX*sumY) / den
	xm, ym := sumX/nf, sumY/nf
	a0 := ym - a1*xm

	var st, sr, d, r float64
	for i := range x {
		d = y[i] - ym
		st += d * d
		r = y[i] - a1*x[i] - a0
		sr += r * r
	}

	fit := Fit{Slope: a1, Intercept: a0, StdErr: math.Sqrt(sr / (nf - 2)), R2: 1}
	if st != 0 {
		fit.R2 = (st - sr) / st
	}

	return fit, nil
}
