// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/expr"
)

const opFixedPoint = "FixedPoint"

// FixedPoint compiles phi and runs FixedPointFunc on it.
func FixedPoint(phi string, a, b, accuracy float64, opts ...Option) (Result, error) {
	f, err := compile(opFixedPoint, phi)
	if err != nil {
		return Result{}, err
	}

	return FixedPointFunc(f, a, b, accuracy, opts...)
}

// FixedPointFunc iterates x = φ(x) starting at the midpoint of [a,b] until
// |x_next − x_prev| < accuracy. The returned FX is φ(Root).
//
// φ(a) and φ(b) are evaluated first; if either lies outside [a,b] the
// search still runs and Result.Warning is set to ErrNotSelfMapping.
//
// Errors: ErrBadAccuracy, ErrBadInterval, ErrLeftInterval, ErrNotConverged,
// *expr.EvaluationError.
func FixedPointFunc(phi expr.Func1, a, b, accuracy float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := checkAccuracy(opFixedPoint, accuracy); err != nil {
		return Result{}, err
	}
	if err := checkPoints(opFixedPoint, a, b); err != nil {
		return Result{}, err
	}
	if a > b {
		a, b = b, a
	}

	var res Result
	pa, err := phi(a)
	if err != nil {
		return res, fmt.Errorf("%s: φ(a): %w", opFixedPoint, err)
	}
	pb, err := phi(b)
	if err != nil {
		return res, fmt.Errorf("%s: φ(b): %w", opFixedPoint, err)
	}
	if !inside(pa, a, b) || !inside(pb, a, b) {
		res.Warning = ErrNotSelfMapping
	}

	prev := (a + b) / 2
	for it := 1; it <= o.maxIter; it++ {
		res.Iterations = it
		next, perr := phi(prev)
		if perr != nil {
			return res, fmt.Errorf("%s: %w", opFixedPoint, perr)
		}
		if !inside(next, a, b) {
			return res, fmt.Errorf("%s: x=%g outside [%g, %g]: %w", opFixedPoint, next, a, b, ErrLeftInterval)
		}
		if math.Abs(next-prev) < accuracy {
			res.Root = next
			if res.FX, err = phi(next); err != nil {
				return Result{Iterations: it, Warning: res.Warning}, fmt.Errorf("%s: %w", opFixedPoint, err)
			}

			return res, nil
		}
		prev = next
	}

	return res, fmt.Errorf("%s: %d iterations: %w", opFixedPoint, o.maxIter, ErrNotConverged)
}

func inside(v, a, b float64) bool { return v >= a && v <= b }
