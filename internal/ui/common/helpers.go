// Package common provides shared utilities for the UI.
package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TruncateName shortens name to at most maxWidth terminal cells, ending with "…".
// Wide characters such as CJK count as two cells.
func TruncateName(name string, maxWidth int) string {
	if lipgloss.Width(name) <= maxWidth {
		return name
	}

	var sb strings.Builder
	width := 0
	for _, r := range name {
		w := lipgloss.Width(string(r))
		if width+w > maxWidth-1 {
			break
		}
		sb.WriteRune(r)
		width += w
	}
	return sb.String() + "…"
}
