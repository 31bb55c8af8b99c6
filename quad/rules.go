// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"

	"github.com/katalvlaran/numlab/expr"
)

// Composite applies rule m with n subintervals on [a,b]. Simpson bumps an
// odd n to n+1. The first evaluation failure aborts the sum.
//
// Complexity: O(n) evaluations of f.
func Composite(m Method, f expr.Func1, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("Composite: n=%d: %w", n, ErrBadSubdivisions)
	}
	switch m {
	case RectangleLeft:
		return rectangle(f, a, b, n, 0)
	case RectangleMid:
		return rectangle(f, a, b, n, 0.5)
	case RectangleRight:
		return rectangle(f, a, b, n, 1)
	case Trapezoidal:
		return trapezoidal(f, a, b, n)
	case Simpson:
		return simpson(f, a, b, n)
	default:
		return 0, fmt.Errorf("Composite: %q: %w", string(m), ErrUnknownMethod)
	}
}

// rectangle samples each subinterval at a + (i+shift)·h.
func rectangle(f expr.Func1, a, b float64, n int, shift float64) (float64, error) {
	h := (b - a) / float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		v, err := f(a + (float64(i)+shift)*h)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return h * sum, nil
}

func trapezoidal(f expr.Func1, a, b float64, n int) (float64, error) {
	h := (b - a) / float64(n)
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := 1; i < n; i++ {
		v, ferr := f(a + float64(i)*h)
		if ferr != nil {
			return 0, ferr
		}
		sum += v
	}

	return h * (0.5*(fa+fb) + sum), nil
}

func simpson(f expr.Func1, a, b float64, n int) (float64, error) {
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	var odd, even float64
	for i := 1; i <= n/2; i++ {
		v, ferr := f(a + float64(2*i-1)*h)
		if ferr != nil {
			return 0, ferr
		}
		odd += v
	}
	for i := 1; i < n/2; i++ {
		v, ferr := f(a + float64(2*i)*h)
		if ferr != nil {
			return 0, ferr
		}
		even += v
	}

	return h / 3 * (fa + fb + 4*odd + 2*even), nil
}
