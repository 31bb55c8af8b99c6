// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/expr"
)

// Result is the outcome of a root search.
type Result struct {
	Root       float64 // approximate root x
	FX         float64 // f(Root); φ(Root) for FixedPoint
	Iterations int     // steps performed
	Warning    error   // non-fatal diagnostic, e.g. ErrNotSelfMapping
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func checkAccuracy(op string, acc float64) error {
	if !finite(acc) || acc <= 0 {
		return fmt.Errorf("%s: %g: %w", op, acc, ErrBadAccuracy)
	}

	return nil
}

func checkPoints(op string, pts ...float64) error {
	for _, p := range pts {
		if !finite(p) {
			return fmt.Errorf("%s: %g: %w", op, p, ErrBadInterval)
		}
	}

	return nil
}

// compile turns an equation string into an expr.Func1 over x.
func compile(op, equation string) (expr.Func1, error) {
	f, err := expr.Unary(equation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}
