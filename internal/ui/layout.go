// Package ui provides shared TUI styling, layout helpers, and theme definitions.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// detailIndent hangs the secondary lines of a note row (metadata,
// preview, tags, parent folder) under the title marker.
const detailIndent = "  "

// PlaceCentre centres content both horizontally and vertically within the given dimensions.
func PlaceCentre(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Truncate truncates s to maxLen runes, appending "…" if truncated.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads s with spaces to the given width. Width is measured
// after ANSI styling so highlighted rows fill the pane evenly.
func PadRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// DetailLine renders one indented secondary line of a note row,
// truncated to the row width.
func DetailLine(style lipgloss.Style, text string, width int) string {
	return detailIndent + style.Render(Truncate(text, width-len(detailIndent)))
}
