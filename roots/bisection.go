// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/expr"
)

const opBisection = "Bisection"

// Bisection compiles equation and runs BisectionFunc on it.
func Bisection(equation string, a, b, accuracy float64, opts ...Option) (Result, error) {
	f, err := compile(opBisection, equation)
	if err != nil {
		return Result{}, err
	}

	return BisectionFunc(f, a, b, accuracy, opts...)
}

// BisectionFunc halves [a,b] while |b−a| > accuracy. At midpoint m the left
// end moves to m when f(m)·f(a) > 0, otherwise the right end does. The
// midpoint of the final bracket is returned. a > b is swapped.
//
// There is no iteration cap: the count is ⌈log2((b−a)/accuracy)⌉, or stops
// earlier if the floating-point bracket cannot shrink any more.
//
// Errors: ErrBadAccuracy, ErrBadInterval, ErrNoSignChange (WithSignCheck),
// *expr.EvaluationError.
func BisectionFunc(f expr.Func1, a, b, accuracy float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := checkAccuracy(opBisection, accuracy); err != nil {
		return Result{}, err
	}
	if err := checkPoints(opBisection, a, b); err != nil {
		return Result{}, err
	}
	if a > b {
		a, b = b, a
	}

	fa, err := f(a)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opBisection, err)
	}
	if o.signCheck {
		fb, ferr := f(b)
		if ferr != nil {
			return Result{}, fmt.Errorf("%s: %w", opBisection, ferr)
		}
		if fa*fb > 0 {
			return Result{}, fmt.Errorf("%s: f(%g)=%g, f(%g)=%g: %w", opBisection, a, fa, b, fb, ErrNoSignChange)
		}
	}

	var res Result
	for math.Abs(b-a) > accuracy {
		m := (a + b) / 2
		if m == a || m == b {
			break
		}
		fm, ferr := f(m)
		if ferr != nil {
			return res, fmt.Errorf("%s: %w", opBisection, ferr)
		}
		if fm*fa > 0 {
			a, fa = m, fm
		} else {
			b = m
		}
		res.Iterations++
	}

	res.Root = (a + b) / 2
	if res.FX, err = f(res.Root); err != nil {
		return Result{Iterations: res.Iterations}, fmt.Errorf("%s: %w", opBisection, err)
	}

	return res, nil
}
