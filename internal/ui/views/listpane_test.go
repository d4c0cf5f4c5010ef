package views

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"notenav/internal/common"
	"notenav/internal/config"
	"notenav/internal/nav"
	"notenav/internal/ui"
	"notenav/internal/vault"
)

// newFolderList builds a list pane over a small vault and points it at
// the "work" folder (one direct note, one in a subfolder).
func newFolderList(t *testing.T) *ListView {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"inbox.md":         "# Inbox\n",
		"work/plan.md":     "# Plan\n",
		"work/sub/deep.md": "# Deep\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	svc, err := vault.NewFSService(root)
	if err != nil {
		t.Fatal(err)
	}
	pins, err := vault.LoadPins(root)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{SortField: "title"}
	v := NewListView(svc, pins, cfg, nav.KeyMap{}, ui.DefaultStyles())
	v.SetSize(80, 24)

	deliver(t, v, common.SourceChangedMsg{Source: common.Source{Kind: common.SourceFolder, Name: "work"}})
	return v
}

// deliver feeds msg to the view and, when the returned command produces
// a load result, feeds that back in too.
func deliver(t *testing.T, v *ListView, msg tea.Msg) {
	t.Helper()
	_, cmd := v.Update(msg)
	if cmd == nil {
		return
	}
	next := cmd()
	if err, ok := next.(common.ErrMsg); ok {
		t.Fatal(err.Err)
	}
	if _, ok := next.(common.NotesLoadedMsg); ok {
		v.Update(next)
	}
}

func pressKey(t *testing.T, v *ListView, k string) {
	t.Helper()
	deliver(t, v, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func TestToggleSubfolderNotesKeepsCursor(t *testing.T) {
	v := newFolderList(t)
	if v.NoteCount() != 1 {
		t.Fatalf("direct listing has %d notes, want 1", v.NoteCount())
	}
	v.sel.SetCursor("work/plan.md")

	pressKey(t, v, "i")
	if v.NoteCount() != 2 {
		t.Fatalf("recursive listing has %d notes, want 2", v.NoteCount())
	}
	cur, _ := v.sel.Cursor()
	if cur != "work/plan.md" {
		t.Fatalf("cursor after toggle = %s, want work/plan.md", cur)
	}
	row, ok := v.index[cur]
	if !ok {
		t.Fatalf("cursor %s missing from the rebuilt rows", cur)
	}
	start, end := v.virt.VisibleRange()
	if row < start || row > end {
		t.Fatalf("cursor row %d outside visible range [%d, %d]", row, start, end)
	}

	pressKey(t, v, "i")
	if v.NoteCount() != 1 {
		t.Fatalf("listing after toggling back has %d notes, want 1", v.NoteCount())
	}
	if cur, _ := v.sel.Cursor(); cur != "work/plan.md" {
		t.Fatalf("cursor after toggling back = %s, want work/plan.md", cur)
	}
}

func TestToggleSubfolderNotesVanishedCursorScrollsTop(t *testing.T) {
	v := newFolderList(t)

	pressKey(t, v, "i")
	v.sel.SetCursor("work/sub/deep.md")

	// Toggling recursion off drops the cursor note from the listing;
	// the window must fall back to the top rather than chase it.
	pressKey(t, v, "i")
	if _, ok := v.index["work/sub/deep.md"]; ok {
		t.Fatal("subfolder note still listed after toggling off")
	}
	if off := v.virt.Offset(); off != 0 {
		t.Fatalf("offset = %d, want 0", off)
	}
}
