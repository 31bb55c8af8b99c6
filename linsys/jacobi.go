// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

const (
	opSolve       = "Solve"
	opSolveRows   = "SolveRows"
	opSolveString = "SolveStrings"
	opSolveText   = "SolveText"
)

// Result is the outcome of one Jacobi solve.
type Result struct {
	Solution   []float64     // final iterate x
	Errors     []float64     // max-norm of x_new − x_old, one per iteration
	Iterations int           // number of Jacobi sweeps performed
	Norm       float64       // ‖A‖∞ of the (possibly rearranged) coefficient matrix
	Rearranged bool          // rows were permuted to obtain dominance
	System     *matrix.Dense // augmented system actually iterated, after rearrangement
}

// Solve runs Jacobi iteration on the augmented n×(n+1) matrix aug until the
// max-norm of successive iterate differences drops below accuracy.
//
// Implementation:
//   - Stage 1: validate accuracy and shape; split into A and b (aug untouched).
//   - Stage 2: dominance check, optional rearrangement, re-check.
//   - Stage 3: Jacobi sweeps from x = 0, every component computed from the
//     previous iterate only.
//
// Errors:
//   - ErrBadAccuracy, matrix.ErrNotAugmented, matrix.ErrNilMatrix, matrix.ErrNaNInf;
//   - ErrNotDiagonallyDominant (warning, Result has Norm/Rearranged only);
//   - ErrNotConverged (Result holds the last iterate and full error history).
//
// Complexity:
//   - Time O(k·n²) for k iterations, Space O(n² + k).
func Solve(aug matrix.Matrix, accuracy float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(accuracy) || math.IsInf(accuracy, 0) || accuracy <= 0 {
		return Result{}, fmt.Errorf("%s: %g: %w", opSolve, accuracy, ErrBadAccuracy)
	}
	if err := matrix.ValidateAugmented(aug); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateFinite(aug); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	a, b, err := matrix.Split(aug)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	var res Result
	if !IsDiagonallyDominant(a) {
		if o.rearrange {
			if res.Rearranged, err = Rearrange(a, b); err != nil {
				return Result{}, fmt.Errorf("%s: %w", opSolve, err)
			}
		}
		if !IsDiagonallyDominant(a) {
			res.Norm, _ = matrix.NormInf(a)

			return res, ErrNotDiagonallyDominant
		}
	}
	if res.Norm, err = matrix.NormInf(a); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if res.System, err = join(a, b); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	n := a.Rows()
	coef := make([][]float64, n) // row copies keep the sweep free of error checks
	for i := range coef {
		if coef[i], err = a.Row(i); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opSolve, err)
		}
	}

	x := make([]float64, n)
	for res.Iterations < o.maxIter {
		next := make([]float64, n)
		for i := 0; i < n; i++ {
			s1, s2 := 0.0, 0.0
			for j := 0; j < i; j++ {
				s1 += coef[i][j] * x[j]
			}
			for j := i + 1; j < n; j++ {
				s2 += coef[i][j] * x[j]
			}
			next[i] = (b[i] - s1 - s2) / coef[i][i]
		}
		diff, _ := matrix.MaxAbsDiff(next, x)
		res.Errors = append(res.Errors, diff)
		res.Iterations++
		x = next
		if diff < accuracy {
			res.Solution = x

			return res, nil
		}
	}
	res.Solution = x

	return res, fmt.Errorf("%s: %d iterations: %w", opSolve, res.Iterations, ErrNotConverged)
}

// join rebuilds the augmented matrix [a|b].
func join(a *matrix.Dense, b []float64) (*matrix.Dense, error) {
	n := a.Rows()
	rows := make([][]float64, n)
	for i := range rows {
		r, err := a.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = append(r, b[i])
	}

	return matrix.FromRows(rows)
}

// SolveRows is Solve over numeric rows of an augmented matrix.
func SolveRows(rows [][]float64, accuracy float64, opts ...Option) (Result, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolveRows, err)
	}

	return Solve(m, accuracy, opts...)
}

// SolveStrings is Solve over rows of numeric strings.
func SolveStrings(rows [][]string, accuracy float64, opts ...Option) (Result, error) {
	m, err := matrix.FromStrings(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolveString, err)
	}

	return Solve(m, accuracy, opts...)
}

// SolveText is Solve over newline/whitespace separated text.
func SolveText(text string, accuracy float64, opts ...Option) (Result, error) {
	m, err := matrix.ParseAugmented(text)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolveText, err)
	}

	return Solve(m, accuracy, opts...)
}
