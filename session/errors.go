// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrUnset means a required parameter has not been set.
	ErrUnset = errors.New("session: parameter not set")

	// ErrInvalid means a parameter value was rejected.
	ErrInvalid = errors.New("session: invalid parameter")
)
