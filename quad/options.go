// SPDX-License-Identifier: MIT

package quad

const (
	// DefaultInitialN is the subdivision count of the first estimate.
	DefaultInitialN = 4

	// DefaultMaxDoublings bounds the refinement loop.
	DefaultMaxDoublings = 1_000_000

	// DefaultMaxSubdivisions bounds n itself; doubling past it stops the
	// loop with ErrAccuracyNotReached.
	DefaultMaxSubdivisions = 1 << 24
)

const (
	panicInitialNInvalid       = "quad: WithInitialN: n must be >= 1"
	panicMaxDoublingsInvalid   = "quad: WithMaxDoublings: n must be >= 1"
	panicMaxSubdivisionInvalid = "quad: WithMaxSubdivisions: n must be >= 2"
)

// Option configures Integrate.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	initialN     int
	maxDoublings int
	maxSub       int
}

// WithInitialN sets the starting subdivision count. Panics when n < 1.
func WithInitialN(n int) Option {
	if n < 1 {
		panic(panicInitialNInvalid)
	}

	return func(o *Options) { o.initialN = n }
}

// WithMaxDoublings sets the doubling cap. Panics when n < 1.
func WithMaxDoublings(n int) Option {
	if n < 1 {
		panic(panicMaxDoublingsInvalid)
	}

	return func(o *Options) { o.maxDoublings = n }
}

// WithMaxSubdivisions sets the largest n the driver may reach.
// Panics when n < 2.
func WithMaxSubdivisions(n int) Option {
	if n < 2 {
		panic(panicMaxSubdivisionInvalid)
	}

	return func(o *Options) { o.maxSub = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		initialN:     DefaultInitialN,
		maxDoublings: DefaultMaxDoublings,
		maxSub:       DefaultMaxSubdivisions,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
