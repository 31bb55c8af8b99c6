// SPDX-License-Identifier: MIT
// Package matrix provides the small set of kernels iterative solvers need:
// matrix-vector product, the infinity norm of a matrix and the max-norm of
// a vector difference. All functions perform strict fail-fast validation.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec     = "MatVec"
	opNormInf    = "NormInf"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = NormZero
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// NormInf returns the infinity norm max_i Σ_j |m[i,j]| (maximum absolute row sum).
// Complexity: O(r*c).
func NormInf(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	best := NormZero
	var v, sum float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		sum = NormZero
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opNormInf, err)
			}
			sum += math.Abs(v)
		}
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// MaxAbsDiff returns max_i |a[i] - b[i]|, the infinity norm of a - b.
// Complexity: O(n).
func MaxAbsDiff(a, b []float64) (float64, error) {
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	best := NormZero
	for i := range a {
		// NaN must win so that divergence is never mistaken for convergence.
		if d := math.Abs(a[i] - b[i]); d > best || math.IsNaN(d) {
			best = d
		}
	}

	return best, nil
}
