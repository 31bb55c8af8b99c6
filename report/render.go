// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the word-wrap width used when Render gets width <= 0.
const DefaultWidth = 80

// Render styles markdown for the terminal. An empty style picks a dark or
// light theme from the terminal background; "notty" gives plain text.
func Render(markdown string, width int, style string) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}

	return out, nil
}
