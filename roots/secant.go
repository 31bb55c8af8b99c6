// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/expr"
)

const opSecant = "Secant"

// Secant compiles equation and runs SecantFunc on it.
func Secant(equation string, x0, x1, accuracy float64, opts ...Option) (Result, error) {
	f, err := compile(opSecant, equation)
	if err != nil {
		return Result{}, err
	}

	return SecantFunc(f, x0, x1, accuracy, opts...)
}

// SecantFunc iterates x₂ = x₁ − f(x₁)·(x₁−x₀)/(f(x₁)−f(x₀)).
//
// It succeeds when |f(x₁)| < accuracy before a step, or when the step itself
// is shorter than accuracy (FX is then re-evaluated at the new point).
//
// Errors: ErrBadAccuracy, ErrBadInterval, ErrFlatSecant, ErrNotConverged,
// *expr.EvaluationError. On failure Result holds only Iterations.
func SecantFunc(f expr.Func1, x0, x1, accuracy float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := checkAccuracy(opSecant, accuracy); err != nil {
		return Result{}, err
	}
	if err := checkPoints(opSecant, x0, x1); err != nil {
		return Result{}, err
	}

	for it := 1; it <= o.maxIter; it++ {
		f0, err := f(x0)
		if err != nil {
			return Result{Iterations: it}, fmt.Errorf("%s: %w", opSecant, err)
		}
		f1, err := f(x1)
		if err != nil {
			return Result{Iterations: it}, fmt.Errorf("%s: %w", opSecant, err)
		}
		if math.Abs(f1) < accuracy {
			return Result{Root: x1, FX: f1, Iterations: it}, nil
		}

		den := f1 - f0
		if math.Abs(den) < o.flatTol {
			return Result{Iterations: it}, fmt.Errorf("%s: iteration %d: %w", opSecant, it, ErrFlatSecant)
		}
		x0, x1 = x1, x1-f1*(x1-x0)/den

		if math.Abs(x1-x0) < accuracy {
			fx, ferr := f(x1)
			if ferr != nil {
				return Result{Iterations: it}, fmt.Errorf("%s: %w", opSecant, ferr)
			}

			return Result{Root: x1, FX: fx, Iterations: it}, nil
		}
	}

	return Result{Iterations: o.maxIter}, fmt.Errorf("%s: %d iterations: %w", opSecant, o.maxIter, ErrNotConverged)
}
