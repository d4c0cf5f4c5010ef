package config

// KeyBindings defines the mapping of actions to keys. Values are
// bubbletea key names; multiple keys per action are space-separated.
// Kept separate so it can later be made configurable via config file.
type KeyBindings struct {
	Quit        string
	Help        string
	Tab         string
	ShiftTab    string
	Up          string
	Down        string
	PageUp      string
	PageDown    string
	Home        string
	End         string
	ExtendUp    string
	ExtendDown  string
	ExtendHome  string
	ExtendEnd   string
	SelectAll   string
	ClearSelect string
	Open        string
	Delete      string
	TogglePin   string
	NewNote     string
	Rename      string
	ToggleSort  string
	ToggleGroup string
	Expand      string
	Refresh     string
	Search      string
	Reveal      string
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:        "q",
		Help:        "?",
		Tab:         "tab",
		ShiftTab:    "shift+tab",
		Up:          "up k",
		Down:        "down j",
		PageUp:      "pgup ctrl+u",
		PageDown:    "pgdown ctrl+d",
		Home:        "home g",
		End:         "end G",
		ExtendUp:    "shift+up K",
		ExtendDown:  "shift+down J",
		ExtendHome:  "shift+home",
		ExtendEnd:   "shift+end",
		SelectAll:   "ctrl+a",
		ClearSelect: "esc",
		Open:        "enter",
		Delete:      "delete x",
		TogglePin:   "p",
		NewNote:     "n",
		Rename:      "R",
		ToggleSort:  "s",
		ToggleGroup: "d",
		Expand:      " ",
		Refresh:     "r",
		Search:      "/",
		Reveal:      "o",
	}
}
