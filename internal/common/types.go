package common

import (
	tea "github.com/charmbracelet/bubbletea"

	"notenav/internal/nav"
	"notenav/internal/ui/components"
)

// ── Pane identifiers ────────────────────────────────────────────────────────

// PaneID identifies one of the navigator's panes.
type PaneID int

const (
	PaneTree PaneID = iota
	PaneList
	PanePreview
)

// PaneMeta describes a pane for display purposes.
type PaneMeta struct {
	ID   PaneID
	Name string // Display name shown in the status bar.
}

// AllPanes is the ordered focus cycle: Tab/Shift+Tab moves through it.
var AllPanes = []PaneMeta{
	{PaneTree, "Folders"},
	{PaneList, "Notes"},
	{PanePreview, "Preview"},
}

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals panes to reload data from the vault.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// FocusPaneMsg requests a focus switch.
type FocusPaneMsg struct{ Pane PaneID }

// ToggleHelpMsg toggles the help overlay.
type ToggleHelpMsg struct{}

// SourceChangedMsg announces that the list pane's source collection
// switched (folder or tag selection changed in the tree).
type SourceChangedMsg struct {
	Source Source
}

// RevealMsg asks the navigator to select and scroll to a note,
// expanding collapsed ancestors as needed. Sent when an external
// surface (search, a link in the preview) targets a specific note.
type RevealMsg struct{ ID nav.ItemID }

// OpenNoteMsg asks the preview pane to load a note.
type OpenNoteMsg struct{ ID nav.ItemID }

// NotesLoadedMsg delivers a completed vault scan to the list pane.
type NotesLoadedMsg struct {
	Source Source
	Items  []nav.ItemRef
}

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── Source collections ──────────────────────────────────────────────────────

// SourceKind discriminates what the list pane is showing.
type SourceKind int

const (
	// SourceFolder lists the notes of one folder ("" is the vault root).
	SourceFolder SourceKind = iota
	// SourceTag lists the notes carrying one tag.
	SourceTag
	// SourceAll lists every note in the vault.
	SourceAll
)

// Source identifies a list-pane collection. Two sources are related
// when they are equal; switching to an unrelated source resets
// selection state.
type Source struct {
	Kind SourceKind
	Name string // folder path or tag name
}

// Title returns the source's status-bar label.
func (s Source) Title() string {
	switch s.Kind {
	case SourceTag:
		return "#" + s.Name
	case SourceAll:
		return "All Notes"
	default:
		if s.Name == "" {
			return "Vault"
		}
		return s.Name
	}
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface every pane must implement.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry

	// InputCapture returns true when the view is in a text-input mode
	// (e.g. the search field) and wants to capture arrow keys, letters,
	// etc. instead of letting the app handle them for pane switching.
	InputCapture() bool
}
