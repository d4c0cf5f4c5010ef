package nav

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func testKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k")),
		Down:        key.NewBinding(key.WithKeys("down", "j")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Home:        key.NewBinding(key.WithKeys("home", "g")),
		End:         key.NewBinding(key.WithKeys("end", "G")),
		ExtendUp:    key.NewBinding(key.WithKeys("shift+up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down")),
		ExtendHome:  key.NewBinding(key.WithKeys("shift+home")),
		ExtendEnd:   key.NewBinding(key.WithKeys("shift+end")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a")),
		ClearSelect: key.NewBinding(key.WithKeys("esc")),
		Open:        key.NewBinding(key.WithKeys("enter")),
		Delete:      key.NewBinding(key.WithKeys("delete", "d")),
		TogglePin:   key.NewBinding(key.WithKeys("p")),
	}
}

func TestRoute(t *testing.T) {
	km := testKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, ActionMoveUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, ActionMoveDown},
		{tea.KeyMsg{Type: tea.KeyShiftUp}, ActionExtendUp},
		{tea.KeyMsg{Type: tea.KeyShiftDown}, ActionExtendDown},
		{tea.KeyMsg{Type: tea.KeyShiftHome}, ActionExtendHome},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, ActionSelectAll},
		{tea.KeyMsg{Type: tea.KeyEscape}, ActionClearSelection},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionOpen},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, ActionTogglePin},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, ActionNone},
	}
	for _, c := range cases {
		if got := Route(c.msg, km); got != c.want {
			t.Fatalf("Route(%q) = %v, want %v", c.msg.String(), got, c.want)
		}
	}
}

func TestNextSelectableSkipsHeaders(t *testing.T) {
	rows := []Row{
		{Kind: RowHeader, Label: "Pinned"},
		{Kind: RowItem, Item: ItemRef{ID: "a"}},
		{Kind: RowHeader, Label: "Today"},
		{Kind: RowItem, Item: ItemRef{ID: "b"}},
		{Kind: RowSpacer, Spacer: SpacerBottom},
	}
	if got := NextSelectable(rows, 1, 1); got != 3 {
		t.Fatalf("next down from 1 = %d, want 3", got)
	}
	if got := NextSelectable(rows, 3, -1); got != 1 {
		t.Fatalf("next up from 3 = %d, want 1", got)
	}
	// Clamped, never wrapped.
	if got := NextSelectable(rows, 3, 1); got != 3 {
		t.Fatalf("next down from last = %d, want 3", got)
	}
	if got := NextSelectable(rows, 1, -1); got != 1 {
		t.Fatalf("next up from first = %d, want 1", got)
	}
}

func TestFirstLastSelectable(t *testing.T) {
	rows := []Row{
		{Kind: RowHeader, Label: "Today"},
		{Kind: RowItem, Item: ItemRef{ID: "a"}},
		{Kind: RowItem, Item: ItemRef{ID: "b"}},
		{Kind: RowSpacer, Spacer: SpacerBottom},
	}
	if got := FirstSelectable(rows); got != 1 {
		t.Fatalf("first = %d, want 1", got)
	}
	if got := LastSelectable(rows); got != 2 {
		t.Fatalf("last = %d, want 2", got)
	}
	if got := FirstSelectable(nil); got != -1 {
		t.Fatalf("first of empty = %d, want -1", got)
	}
}

func TestPageTarget(t *testing.T) {
	rows := listOf("a", "b", "c", "d", "e", "f", "g", "h")

	if got := PageTarget(rows, 0, 5, 1); got != 5 {
		t.Fatalf("page down = %d, want 5", got)
	}
	// Clamps at the list end; the trailing spacer is not selectable, so
	// the target falls back to the last item.
	if got := PageTarget(rows, 5, 5, 1); got != 7 {
		t.Fatalf("page down past end = %d, want 7", got)
	}
	if got := PageTarget(rows, 5, 10, -1); got != 0 {
		t.Fatalf("page up past start = %d, want 0", got)
	}
	if got := PageTarget(nil, 0, 5, 1); got != 0 {
		t.Fatalf("page on empty = %d, want 0", got)
	}
}
