// SPDX-License-Identifier: MIT

package quad

import "errors"

var (
	// ErrUnknownMethod is returned by ParseMethod for unrecognised names.
	ErrUnknownMethod = errors.New("quad: unknown method")

	// ErrBadAccuracy rejects non-positive or non-finite eps.
	ErrBadAccuracy = errors.New("quad: eps must be finite and > 0")

	// ErrBadInterval rejects non-finite limits.
	ErrBadInterval = errors.New("quad: limits must be finite")

	// ErrBadSubdivisions rejects n < 1 passed to Composite.
	ErrBadSubdivisions = errors.New("quad: number of subintervals must be >= 1")

	// ErrAccuracyNotReached means the doubling or subdivision cap was hit
	// before Runge's estimate dropped below eps.
	ErrAccuracyNotReached = errors.New("quad: required accuracy not reached")
)
