package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"notenav/internal/config"
	"notenav/internal/nav"
)

// KeyMap holds the global bindings. Navigation and selection keys live
// in nav.KeyMap so the router stays free of app concerns; the rest are
// app-level (quit, help, pane focus, refresh, reveal).
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextPane key.Binding
	PrevPane key.Binding
	Refresh  key.Binding
	Reveal   key.Binding
	Back     key.Binding

	Nav nav.KeyMap
}

// bind turns a space-separated key list from config into a binding.
// The help label shows only the first key.
func bind(keys, desc string) key.Binding {
	fields := strings.Fields(keys)
	if keys == " " {
		fields = []string{" "}
	}
	label := ""
	if len(fields) > 0 {
		label = fields[0]
	}
	return key.NewBinding(key.WithKeys(fields...), key.WithHelp(label, desc))
}

// NewKeyMap builds the key map from configured bindings.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Quit:     bind(kb.Quit+" ctrl+c", "quit"),
		Help:     bind(kb.Help, "help"),
		NextPane: bind(kb.Tab, "next pane"),
		PrevPane: bind(kb.ShiftTab, "prev pane"),
		Refresh:  bind(kb.Refresh+" ctrl+r", "refresh"),
		Reveal:   bind(kb.Reveal, "reveal in tree"),
		Back:     bind("esc", "back"),

		Nav: nav.KeyMap{
			Up:            bind(kb.Up, "up"),
			Down:          bind(kb.Down, "down"),
			PageUp:        bind(kb.PageUp, "page up"),
			PageDown:      bind(kb.PageDown, "page down"),
			Home:          bind(kb.Home, "top"),
			End:           bind(kb.End, "bottom"),
			ExtendUp:      bind(kb.ExtendUp, "extend up"),
			ExtendDown:    bind(kb.ExtendDown, "extend down"),
			ExtendHome:    bind(kb.ExtendHome, "extend to top"),
			ExtendEnd:     bind(kb.ExtendEnd, "extend to bottom"),
			SelectAll:     bind(kb.SelectAll, "select all"),
			ClearSelect:   bind(kb.ClearSelect, "clear selection"),
			Open:          bind(kb.Open, "open"),
			Delete:        bind(kb.Delete, "delete"),
			TogglePin:     bind(kb.TogglePin, "pin"),
			FocusPrevPane: bind(kb.ShiftTab, "prev pane"),
			FocusNextPane: bind(kb.Tab, "next pane"),
		},
	}
}

// DefaultKeyMap returns the key map for the default bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyBindings())
}
