// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/matrix"
)

// Parameter names, used in errors and the YAML document.
const (
	FieldInterval = "interval"
	FieldAccuracy = "accuracy"
	FieldMatrix   = "matrix"
	FieldEquation = "equation"
	FieldSystem   = "system"
)

// Interval is a closed interval [A, B].
type Interval struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// String renders the interval as "[a, b]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", fmtFloat(iv.A), fmtFloat(iv.B))
}

// Session is the caller-owned parameter set. The zero value is empty.
type Session struct {
	Interval *Interval `yaml:"interval,omitempty"`
	Accuracy float64   `yaml:"accuracy,omitempty"`
	Matrix   string    `yaml:"matrix,omitempty"`
	Equation string    `yaml:"equation,omitempty"`
	System   string    `yaml:"system,omitempty"`
}

// SetInterval stores [a, b]. Both ends must be finite and distinct.
func (s *Session) SetInterval(a, b float64) error {
	iv := Interval{A: a, B: b}
	if err := iv.validate(); err != nil {
		return err
	}
	s.Interval = &iv

	return nil
}

func (iv Interval) validate() error {
	if !finite(iv.A) || !finite(iv.B) || iv.A == iv.B {
		return fmt.Errorf("%s %s: %w", FieldInterval, iv, ErrInvalid)
	}

	return nil
}

// SetAccuracy stores a finite accuracy > 0.
func (s *Session) SetAccuracy(acc float64) error {
	if !finite(acc) || acc <= 0 {
		return fmt.Errorf("%s %g: %w", FieldAccuracy, acc, ErrInvalid)
	}
	s.Accuracy = acc

	return nil
}

// SetMatrix stores augmented-matrix text after checking it parses.
// The text is kept in the canonical form produced by matrix.Format.
func (s *Session) SetMatrix(text string) error {
	m, err := matrix.ParseAugmented(text)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", FieldMatrix, ErrInvalid, err)
	}
	s.Matrix = matrix.Format(m)

	return nil
}

// SetEquation stores a single-variable equation after checking it compiles.
func (s *Session) SetEquation(src string) error {
	if _, err := expr.Compile(src, expr.VarX); err != nil {
		return fmt.Errorf("%s: %w: %w", FieldEquation, ErrInvalid, err)
	}
	s.Equation = strings.TrimSpace(src)

	return nil
}

// SetSystem stores a ";"-separated system in x and y after checking it
// compiles.
func (s *Session) SetSystem(src string) error {
	if _, err := expr.CompileSystem(src, expr.VarX, expr.VarY); err != nil {
		return fmt.Errorf("%s: %w: %w", FieldSystem, ErrInvalid, err)
	}
	s.System = strings.TrimSpace(src)

	return nil
}

// RequireInterval returns the interval or ErrUnset.
func (s *Session) RequireInterval() (a, b float64, err error) {
	if s.Interval == nil {
		return 0, 0, fmt.Errorf("%s: %w", FieldInterval, ErrUnset)
	}

	return s.Interval.A, s.Interval.B, nil
}

// RequireAccuracy returns the accuracy or ErrUnset.
func (s *Session) RequireAccuracy() (float64, error) {
	if s.Accuracy == 0 {
		return 0, fmt.Errorf("%s: %w", FieldAccuracy, ErrUnset)
	}

	return s.Accuracy, nil
}

// RequireMatrix parses the stored matrix or returns ErrUnset.
func (s *Session) RequireMatrix() (*matrix.Dense, error) {
	if s.Matrix == "" {
		return nil, fmt.Errorf("%s: %w", FieldMatrix, ErrUnset)
	}

	return matrix.ParseAugmented(s.Matrix)
}

// RequireEquation returns the equation or ErrUnset.
func (s *Session) RequireEquation() (string, error) {
	if s.Equation == "" {
		return "", fmt.Errorf("%s: %w", FieldEquation, ErrUnset)
	}

	return s.Equation, nil
}

// RequireSystem returns the system or ErrUnset.
func (s *Session) RequireSystem() (string, error) {
	if s.System == "" {
		return "", fmt.Errorf("%s: %w", FieldSystem, ErrUnset)
	}

	return s.System, nil
}

// Validate re-checks every set field, e.g. after Load.
func (s *Session) Validate() error {
	if s.Interval != nil {
		if err := s.Interval.validate(); err != nil {
			return err
		}
	}
	if s.Accuracy != 0 {
		if err := (&Session{}).SetAccuracy(s.Accuracy); err != nil {
			return err
		}
	}
	if s.Matrix != "" {
		if err := (&Session{}).SetMatrix(s.Matrix); err != nil {
			return err
		}
	}
	if s.Equation != "" {
		if err := (&Session{}).SetEquation(s.Equation); err != nil {
			return err
		}
	}
	if s.System != "" {
		if err := (&Session{}).SetSystem(s.System); err != nil {
			return err
		}
	}

	return nil
}

// Clear resets every parameter to unset.
func (s *Session) Clear() { *s = Session{} }

// ParsePair reads two numbers written as "a b", "a, b", "[a b]" or "(a, b)".
func ParsePair(text string) (a, b float64, err error) {
	t := strings.NewReplacer("[", " ", "]", " ", "(", " ", ")", " ", ",", " ").Replace(text)
	fields := strings.Fields(t)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%q: want two numbers: %w", text, ErrInvalid)
	}
	if a, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", text, ErrInvalid)
	}
	if b, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", text, ErrInvalid)
	}

	return a, b, nil
}

// ParseInterval is ParsePair plus the interval checks of SetInterval.
func ParseInterval(text string) (Interval, error) {
	a, b, err := ParsePair(text)
	if err != nil {
		return Interval{}, fmt.Errorf("%s %w", FieldInterval, err)
	}
	iv := Interval{A: a, B: b}
	if err = iv.validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
