// SPDX-License-Identifier: MIT

// Package matrix - augmented system ingestion [A|b].
//
// Purpose:
//   - Accept the three shapes a front-end may hold: numeric rows, string rows
//     (already split on whitespace) and raw text (rows on lines, values
//     separated by whitespace).
//   - Enforce the augmented invariant n ≥ 1 and every row has n+1 entries.
//   - Convert back to string rows / text so a system survives a session round-trip.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opFromRows    = "FromRows"
	opFromStrings = "FromStrings"
	opParse       = "ParseAugmented"
	opSplit       = "Split"
)

// FromRows builds a Dense from numeric rows. Rows must be non-empty and of
// equal length; values must be finite.
//
// Errors: ErrInvalidDimensions, ErrRagged, ErrNaNInf.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrRagged))
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// FromStrings builds a Dense from rows of numeric strings, e.g. the result of
// splitting each input line on whitespace.
//
// Errors: ErrInvalidDimensions, ErrRagged, ErrParse, ErrNaNInf.
func FromStrings(rows [][]string) (*Dense, error) {
	num := make([][]float64, len(rows))
	for i, row := range rows {
		num[i] = make([]float64, len(row))
		for j, s := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, matrixErrorf(opFromStrings, fmt.Errorf("entry (%d,%d) %q: %w", i, j, s, ErrParse))
			}
			num[i][j] = v
		}
	}
	m, err := FromRows(num)
	if err != nil {
		return nil, matrixErrorf(opFromStrings, err)
	}

	return m, nil
}

// ParseAugmented parses newline-separated rows of whitespace-separated
// numbers and checks the augmented shape n×(n+1). Blank lines are skipped.
//
// Errors: ErrInvalidDimensions (no rows), ErrRagged, ErrParse, ErrNotAugmented.
func ParseAugmented(text string) (*Dense, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	if len(rows) == 0 {
		return nil, matrixErrorf(opParse, ErrInvalidDimensions)
	}
	m, err := FromStrings(rows)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	if err = ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}

// Split separates an augmented n×(n+1) matrix into the coefficient matrix A
// (n×n, fresh storage) and the constant vector b (length n).
//
// Errors: ErrNilMatrix, ErrNotAugmented.
// Complexity: O(n²).
func Split(aug Matrix) (*Dense, []float64, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	n := aug.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	b := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j <= n; j++ {
			if v, err = aug.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opSplit, err)
			}
			if j == n {
				b[i] = v
			} else {
				a.data[i*n+j] = v
			}
		}
	}

	return a, b, nil
}

// ToStrings renders every entry with the shortest exact decimal form,
// row by row. The inverse of FromStrings.
func ToStrings(m Matrix) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			v, _ := m.At(i, j)
			out[i][j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}

	return out
}

// Format renders m as text accepted by ParseAugmented.
func Format(m Matrix) string {
	rows := ToStrings(m)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, " ")
	}

	return strings.Join(lines, "\n")
}
