// SPDX-License-Identifier: MIT

package nlsys

import "errors"

var (
	// ErrBadTolerance rejects non-positive or non-finite tolerances.
	ErrBadTolerance = errors.New("nlsys: tolerance must be finite and > 0")

	// ErrBadStart rejects non-finite starting points.
	ErrBadStart = errors.New("nlsys: starting point must be finite")

	// ErrNotTwoEquations means the system does not hold exactly two equations.
	ErrNotTwoEquations = errors.New("nlsys: system must have exactly two equations")

	// ErrSingularJacobian means det(J) is zero or not finite.
	ErrSingularJacobian = errors.New("nlsys: Jacobian is singular")

	// ErrNotConverged means the iteration cap was reached; the Result holds
	// the last iterate.
	ErrNotConverged = errors.New("nlsys: iteration limit reached")
)
