// SPDX-License-Identifier: MIT

package chart

import "gonum.org/v1/plot/vg"

const (
	// DefaultPoints is the number of samples across the full range.
	DefaultPoints = 1000

	// DefaultMargin widens the interval on each side by this share of its
	// width when no explicit range is given.
	DefaultMargin = 0.25

	// DefaultFormat is the image format of Function.
	DefaultFormat = "png"
)

// Default page size of Function.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

const (
	panicPointsInvalid = "chart: WithPoints: n must be >= 2"
	panicSizeInvalid   = "chart: WithSize: width and height must be > 0"
)

// Option configures Function.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	title    string
	points   int
	lo, hi   float64
	hasRange bool
	format   string
	width    vg.Length
	height   vg.Length
	marks    []mark
}

type mark struct {
	x, y  float64
	label string
}

// WithTitle sets the plot title.
func WithTitle(s string) Option { return func(o *Options) { o.title = s } }

// WithPoints sets the number of samples. Panics when n < 2.
func WithPoints(n int) Option {
	if n < 2 {
		panic(panicPointsInvalid)
	}

	return func(o *Options) { o.points = n }
}

// WithRange overrides the full drawn range.
func WithRange(lo, hi float64) Option {
	return func(o *Options) { o.lo, o.hi, o.hasRange = lo, hi, true }
}

// WithFormat selects the output format ("png", "svg", "pdf", "eps", ...).
func WithFormat(format string) Option { return func(o *Options) { o.format = format } }

// WithSize sets the page size. Panics on non-positive sizes.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = w, h }
}

// WithMarker adds a labelled point, e.g. a found root.
func WithMarker(x, y float64, label string) Option {
	return func(o *Options) { o.marks = append(o.marks, mark{x: x, y: y, label: label}) }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		points: DefaultPoints,
		format: DefaultFormat,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
