// SPDX-License-Identifier: MIT

package quad

import (
	"fmt"
	"strings"
)

// Method names a composite quadrature rule.
type Method string

const (
	RectangleLeft  Method = "rectangle_left"
	RectangleMid   Method = "rectangle_mid"
	RectangleRight Method = "rectangle_right"
	Trapezoidal    Method = "trapezoidal"
	Simpson        Method = "simpson"
)

// Methods lists every supported rule in display order.
func Methods() []Method {
	return []Method{RectangleLeft, RectangleMid, RectangleRight, Trapezoidal, Simpson}
}

// ParseMethod maps a name (case-insensitive, surrounding space ignored) to
// a Method.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	if !m.valid() {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}

	return m, nil
}

func (m Method) valid() bool {
	for _, known := range Methods() {
		if m == known {
			return true
		}
	}

	return false
}

// Order is the k used in Runge's rule.
func (m Method) Order() int {
	if m == Simpson {
		return 4
	}

	return 2
}

// String implements fmt.Stringer.
func (m Method) String() string { return string(m) }
