// SPDX-License-Identifier: MIT

// Package report turns results into Markdown for people: matrix norm,
// solution vector, iteration counts, error history, residuals. Render
// styles that Markdown for a terminal with glamour.
package report
