package nav

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a routed key event asks the navigator to do.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionExtendUp
	ActionExtendDown
	ActionExtendHome
	ActionExtendEnd
	ActionSelectAll
	ActionClearSelection
	ActionOpen
	ActionDelete
	ActionTogglePin
	ActionFocusPrevPane
	ActionFocusNextPane
)

// KeyMap holds the navigator's configurable bindings. Bindings come from
// config (see internal/app/keymap.go); nothing in the router hard-codes a
// physical key.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	Home          key.Binding
	End           key.Binding
	ExtendUp      key.Binding
	ExtendDown    key.Binding
	ExtendHome    key.Binding
	ExtendEnd     key.Binding
	SelectAll     key.Binding
	ClearSelect   key.Binding
	Open          key.Binding
	Delete        key.Binding
	TogglePin     key.Binding
	FocusPrevPane key.Binding
	FocusNextPane key.Binding
}

// Route maps a key event to an action. Pure: no state beyond the keymap.
func Route(msg tea.KeyMsg, km KeyMap) Action {
	switch {
	case key.Matches(msg, km.ExtendUp):
		return ActionExtendUp
	case key.Matches(msg, km.ExtendDown):
		return ActionExtendDown
	case key.Matches(msg, km.ExtendHome):
		return ActionExtendHome
	case key.Matches(msg, km.ExtendEnd):
		return ActionExtendEnd
	case key.Matches(msg, km.Up):
		return ActionMoveUp
	case key.Matches(msg, km.Down):
		return ActionMoveDown
	case key.Matches(msg, km.PageUp):
		return ActionPageUp
	case key.Matches(msg, km.PageDown):
		return ActionPageDown
	case key.Matches(msg, km.Home):
		return ActionHome
	case key.Matches(msg, km.End):
		return ActionEnd
	case key.Matches(msg, km.SelectAll):
		return ActionSelectAll
	case key.Matches(msg, km.ClearSelect):
		return ActionClearSelection
	case key.Matches(msg, km.Open):
		return ActionOpen
	case key.Matches(msg, km.Delete):
		return ActionDelete
	case key.Matches(msg, km.TogglePin):
		return ActionTogglePin
	case key.Matches(msg, km.FocusPrevPane):
		return ActionFocusPrevPane
	case key.Matches(msg, km.FocusNextPane):
		return ActionFocusNextPane
	}
	return ActionNone
}

// ── Row traversal helpers ───────────────────────────────────────────────────
//
// All traversal runs over the Row slice. Moving past the first/last
// selectable row clamps — it never wraps.

// NextSelectable returns the index of the next selectable row from `from`
// (exclusive) in direction dir, or from itself when none exists.
func NextSelectable(rows []Row, from, dir int) int {
	for i := from + dir; i >= 0 && i < len(rows); i += dir {
		if rows[i].Selectable() {
			return i
		}
	}
	return from
}

// FirstSelectable returns the index of the first selectable row, -1 if none.
func FirstSelectable(rows []Row) int {
	for i, r := range rows {
		if r.Selectable() {
			return i
		}
	}
	return -1
}

// LastSelectable returns the index of the last selectable row, -1 if none.
func LastSelectable(rows []Row) int {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Selectable() {
			return i
		}
	}
	return -1
}

// PageTarget returns the row index one page away from `from`, clamped to
// the list and landed on the nearest selectable row in the direction of
// travel (falling back against it at the edges).
func PageTarget(rows []Row, from, pageRows, dir int) int {
	if len(rows) == 0 {
		return from
	}
	target := from + dir*pageRows
	if target < 0 {
		target = 0
	}
	if target >= len(rows) {
		target = len(rows) - 1
	}
	if target >= 0 && target < len(rows) && rows[target].Selectable() {
		return target
	}
	if next := NextSelectable(rows, target, dir); next != target && rows[next].Selectable() {
		return next
	}
	if prev := NextSelectable(rows, target, -dir); prev >= 0 && prev < len(rows) && rows[prev].Selectable() {
		return prev
	}
	return from
}
