// SPDX-License-Identifier: MIT

package roots

import "math"

const (
	// DefaultMaxIterations caps Secant and FixedPoint.
	DefaultMaxIterations = 100

	// DefaultFlatTolerance is the smallest |f(x1) − f(x0)| a secant step
	// accepts.
	DefaultFlatTolerance = 1e-15

	// DefaultSignCheck leaves Bisection without a sign-change precondition.
	DefaultSignCheck = false
)

const (
	panicMaxIterationsInvalid = "roots: WithMaxIterations: n must be >= 1"
	panicFlatToleranceInvalid = "roots: WithFlatTolerance: tol must be finite and >= 0"
)

// Option configures a root finder.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	maxIter   int
	flatTol   float64
	signCheck bool
}

// WithMaxIterations sets the Secant/FixedPoint iteration cap.
// Bisection has no cap; it is bounded by the halving itself.
// Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithFlatTolerance sets the secant denominator threshold.
// Panics on negative or non-finite tol.
func WithFlatTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicFlatToleranceInvalid)
	}

	return func(o *Options) { o.flatTol = tol }
}

// WithSignCheck makes Bisection verify f(a)·f(b) ≤ 0 before iterating.
func WithSignCheck(on bool) Option {
	return func(o *Options) { o.signCheck = on }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter:   DefaultMaxIterations,
		flatTol:   DefaultFlatTolerance,
		signCheck: DefaultSignCheck,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
