// SPDX-License-Identifier: MIT

package nlsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/expr"
)

const (
	opNewton     = "Newton"
	opNewtonFunc = "NewtonFunc"
)

// Result is the outcome of a Newton solve.
type Result struct {
	X, Y       float64 // last iterate
	F1, F2     float64 // residuals f1(X,Y), f2(X,Y)
	Iterations int     // Newton steps performed
}

// Newton parses system as two ";"-separated equations in x and y (each may
// be written LHS = RHS) and runs NewtonFunc from (x0, y0).
func Newton(system string, x0, y0, tol float64, opts ...Option) (Result, error) {
	sys, err := expr.CompileSystem(system, expr.VarX, expr.VarY)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opNewton, err)
	}
	if sys.Len() != 2 {
		return Result{}, fmt.Errorf("%s: got %d: %w", opNewton, sys.Len(), ErrNotTwoEquations)
	}

	return NewtonFunc(sys.Func2(), x0, y0, tol, opts...)
}

// NewtonFunc runs Newton's method on F starting from (x0, y0). F must return
// exactly two values per call.
//
// Errors:
//   - ErrBadTolerance, ErrBadStart, ErrNotTwoEquations;
//   - ErrSingularJacobian with Iterations set to the failing step;
//   - ErrNotConverged with the last iterate and its residuals;
//   - *expr.EvaluationError from F.
func NewtonFunc(F expr.VecFunc2, x0, y0, tol float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if !(tol > 0) || math.IsInf(tol, 0) {
		return Result{}, fmt.Errorf("%s: %g: %w", opNewtonFunc, tol, ErrBadTolerance)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(y0) || math.IsInf(y0, 0) {
		return Result{}, fmt.Errorf("%s: (%g, %g): %w", opNewtonFunc, x0, y0, ErrBadStart)
	}

	eval := func(x, y float64) (float64, float64, error) {
		v, err := F(x, y)
		if err != nil {
			return 0, 0, err
		}
		if len(v) != 2 {
			return 0, 0, fmt.Errorf("got %d values: %w", len(v), ErrNotTwoEquations)
		}

		return v[0], v[1], nil
	}

	res := Result{X: x0, Y: y0}
	h := o.step
	for it := 1; it <= o.maxIter; it++ {
		res.Iterations = it
		f1, f2, err := eval(res.X, res.Y)
		if err != nil {
			return res, fmt.Errorf("%s: iteration %d: %w", opNewtonFunc, it, err)
		}
		f1x, f2x, err := eval(res.X+h, res.Y)
		if err != nil {
			return res, fmt.Errorf("%s: iteration %d: %w", opNewtonFunc, it, err)
		}
		f1y, f2y, err := eval(res.X, res.Y+h)
		if err != nil {
			return res, fmt.Errorf("%s: iteration %d: %w", opNewtonFunc, it, err)
		}

		j := [2][2]float64{
			{(f1x - f1) / h, (f1y - f1) / h},
			{(f2x - f2) / h, (f2y - f2) / h},
		}
		dx, dy, ok := solve2(j, -f1, -f2)
		if !ok {
			return res, fmt.Errorf("%s: iteration %d: %w", opNewtonFunc, it, ErrSingularJacobian)
		}
		res.X += dx
		res.Y += dy

		if math.Hypot(dx, dy) < tol {
			if res.F1, res.F2, err = eval(res.X, res.Y); err != nil {
				return res, fmt.Errorf("%s: %w", opNewtonFunc, err)
			}

			return res, nil
		}
	}

	f1, f2, err := eval(res.X, res.Y)
	if err != nil {
		return res, fmt.Errorf("%s: %w", opNewtonFunc, err)
	}
	res.F1, res.F2 = f1, f2

	return res, fmt.Errorf("%s: %d iterations: %w", opNewtonFunc, o.maxIter, ErrNotConverged)
}

// solve2 solves the 2×2 system m·[x y]ᵀ = [p q]ᵀ by Cramer's rule.
func solve2(m [2][2]float64, p, q float64) (x, y float64, ok bool) {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, 0, false
	}
	x = (p*m[1][1] - m[0][1]*q) / det
	y = (m[0][0]*q - p*m[1][0]) / det
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}

	return x, y, true
}
