// SPDX-License-Identifier: MIT

// Package linsys: functional configuration of the Jacobi solver.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
package linsys

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the Jacobi loop.
	DefaultMaxIterations = 10_000

	// DefaultRearrange enables the row-rearrangement pass for
	// non-dominant input.
	DefaultRearrange = true
)

const panicMaxIterationsInvalid = "linsys: WithMaxIterations: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIter   int  // >= 1; DefaultMaxIterations
	rearrange bool // DefaultRearrange
}

// WithMaxIterations sets the Jacobi iteration cap.
// Panics when n < 1 (programmer error).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithRearrange toggles the row-rearrangement pass. With false, a
// non-dominant matrix is refused immediately.
func WithRearrange(on bool) Option {
	return func(o *Options) { o.rearrange = on }
}

// gatherOptions applies user setters over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter:   DefaultMaxIterations,
		rearrange: DefaultRearrange,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
