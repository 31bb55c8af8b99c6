// SPDX-License-Identifier: MIT

package roots

import "errors"

var (
	// ErrBadAccuracy rejects non-positive or non-finite accuracy values.
	ErrBadAccuracy = errors.New("roots: accuracy must be finite and > 0")

	// ErrBadInterval rejects non-finite endpoints or starting points.
	ErrBadInterval = errors.New("roots: interval endpoints must be finite")

	// ErrNoSignChange is returned by Bisection under WithSignCheck(true)
	// when f(a) and f(b) share a strict sign.
	ErrNoSignChange = errors.New("roots: f(a) and f(b) have the same sign")

	// ErrFlatSecant means |f(x1) − f(x0)| fell below the flat tolerance.
	ErrFlatSecant = errors.New("roots: secant denominator vanished")

	// ErrLeftInterval means a fixed-point iterate escaped [a,b].
	ErrLeftInterval = errors.New("roots: iterate left the interval")

	// ErrNotConverged means the iteration cap was reached.
	ErrNotConverged = errors.New("roots: iteration limit reached")

	// ErrNotSelfMapping is the warning stored in Result.Warning when
	// φ(a) or φ(b) falls outside [a,b]. It is never returned as the error.
	ErrNotSelfMapping = errors.New("roots: φ does not map [a,b] into itself")
)
