// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/expr"
)

const (
	opIntegrate     = "Integrate"
	opIntegrateExpr = "IntegrateExpr"
)

// Result is the accepted estimate of an integral.
type Result struct {
	Method    Method
	Value     float64 // I(n)
	N         int     // subdivisions behind Value (before any Simpson bump)
	Doublings int     // refinements performed
	Estimate  float64 // Runge error estimate |I(n/2) − I(n)| / (2^k − 1); NaN before the first doubling
}

// IntegrateExpr parses method and equation (a function of x) and calls
// Integrate.
func IntegrateExpr(method, equation string, a, b, eps float64, opts ...Option) (Result, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opIntegrateExpr, err)
	}
	f, err := expr.Unary(equation)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opIntegrateExpr, err)
	}

	return Integrate(m, f, a, b, eps, opts...)
}

// Integrate estimates ∫_a^b f(x)dx with rule m, doubling n from the initial
// count until Runge's estimate is below eps. a > b is swapped, so the result
// is the integral over the ordered interval.
//
// Errors:
//   - ErrUnknownMethod, ErrBadAccuracy, ErrBadInterval;
//   - ErrAccuracyNotReached with the last estimate (Value, N, Doublings);
//   - *expr.EvaluationError from f.
//
// Complexity: O(N) evaluations in total (geometric doubling).
func Integrate(m Method, f expr.Func1, a, b, eps float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if !m.valid() {
		return Result{}, fmt.Errorf("%s: %q: %w", opIntegrate, string(m), ErrUnknownMethod)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return Result{}, fmt.Errorf("%s: %g: %w", opIntegrate, eps, ErrBadAccuracy)
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return Result{}, fmt.Errorf("%s: [%g, %g]: %w", opIntegrate, a, b, ErrBadInterval)
	}
	if a > b {
		a, b = b, a
	}

	n := o.initialN
	prev, err := Composite(m, f, a, b, n)
	if err != nil {
		return Result{}, fmt.Errorf("%s: n=%d: %w", opIntegrate, n, err)
	}
	res := Result{Method: m, Value: prev, N: n, Estimate: math.NaN()}
	scale := math.Exp2(float64(m.Order())) - 1

	for d := 1; d <= o.maxDoublings; d++ {
		if n > o.maxSub/2 {
			break
		}
		n *= 2
		cur, cerr := Composite(m, f, a, b, n)
		if cerr != nil {
			return res, fmt.Errorf("%s: n=%d: %w", opIntegrate, n, cerr)
		}
		res.Value, res.N, res.Doublings = cur, n, d
		res.Estimate = math.Abs(prev-cur) / scale
		if res.Estimate < eps {
			return res, nil
		}
		prev = cur
	}

	return res, fmt.Errorf("%s: %s after %d doublings (n=%d): %w",
		opIntegrate, m, res.Doublings, res.N, ErrAccuracyNotReached)
}
