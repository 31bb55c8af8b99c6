// SPDX-License-Identifier: MIT

// Package session holds the parameters a front-end collects between calls:
// interval, accuracy, augmented matrix, equation and equation system.
//
// A Session is owned by the caller and passed explicitly; the numeric
// packages never see it. Setters validate what they store (an equation
// must compile, a matrix must be augmented), Require* accessors turn an
// unset field into ErrUnset, and Save/Load persist the whole set as YAML.
package session
