// SPDX-License-Identifier: MIT

package nlsys

import "math"

const (
	// DefaultMaxIterations caps the Newton loop.
	DefaultMaxIterations = 100

	// DefaultStep is the forward-difference step h.
	DefaultStep = 1e-6
)

const (
	panicMaxIterationsInvalid = "nlsys: WithMaxIterations: n must be >= 1"
	panicStepInvalid          = "nlsys: WithStep: h must be finite and > 0"
)

// Option configures Newton.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	maxIter int
	step    float64
}

// WithMaxIterations sets the Newton iteration cap. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithStep sets the finite-difference step. Panics on h ≤ 0 or non-finite h.
func WithStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

func gatherOptions(user ...Option) Options {
	o := Options{maxIter: DefaultMaxIterations, step: DefaultStep}
	for _, set := range user {
		set(&o)
	}

	return o
}
