package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notenav/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	VaultRoot string
	Source    string // current collection label (folder, tag, "All Notes")
	NoteCount int
	Selected  int    // size of the multi-selection, 0 when single
	SortLabel string // e.g. "modified ↓"
	Searching bool
	Message   string // transient info/error message
	IsError   bool
}

// RenderStatusBar renders the bottom status bar with clear visual
// sections separated by dim vertical bars.
//
// Wide (>= 60):   work/notes  │  42 notes  │  3 selected  │  modified ↓    vault
// Medium (40-59): work/notes  │  42 notes  │  3 selected
// Narrow (< 40):  work/notes  │  42 notes
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	sourceStyle := lipgloss.NewStyle().Foreground(t.Folder).Bold(true)
	left := " " + sourceStyle.Render(data.Source)

	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	left += sep + countStyle.Render(fmt.Sprintf("%d notes", data.NoteCount))

	if width >= 40 && data.Selected > 1 {
		selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		left += sep + selStyle.Render(fmt.Sprintf("%d selected", data.Selected))
	}

	if width >= 60 && data.SortLabel != "" {
		left += sep + lipgloss.NewStyle().Foreground(t.TextSubtle).Render(data.SortLabel)
	}

	if data.Searching {
		badge := lipgloss.NewStyle().
			Foreground(t.TextInverse).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1).
			Render("SEARCH")
		left += sep + badge
	}

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	} else if width >= 60 && data.VaultRoot != "" {
		vaultName := filepath.Base(data.VaultRoot)
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(vaultName) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).Render(content)
}
