// SPDX-License-Identifier: MIT

package chart

import "errors"

var (
	// ErrNoData means there was nothing to draw, e.g. f failed at every
	// sample point or the error history is empty.
	ErrNoData = errors.New("chart: no data to draw")

	// ErrBadRange rejects non-finite or empty ranges.
	ErrBadRange = errors.New("chart: range must be finite with lo < hi")
)
