package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the application.
// The dark palette is Catppuccin Mocha.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Pinned lipgloss.Color
	Tag    lipgloss.Color
	Folder lipgloss.Color
	Image  lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#f5c2e7"),

		Pinned: lipgloss.Color("#f9e2af"),
		Tag:    lipgloss.Color("#a6e3a1"),
		Folder: lipgloss.Color("#89dceb"),
		Image:  lipgloss.Color("#cba6f7"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),
	}
}

// LightTheme returns the light theme (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		SurfaceHover:  lipgloss.Color("#dce0e8"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#7287fd"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),
		Accent:    lipgloss.Color("#ea76cb"),

		Pinned: lipgloss.Color("#df8e1d"),
		Tag:    lipgloss.Color("#40a02b"),
		Folder: lipgloss.Color("#209fb5"),
		Image:  lipgloss.Color("#8839ef"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),
	}
}

// ThemeByName resolves a config theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	Content   lipgloss.Style
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// List rows
	NoteTitle     lipgloss.Style
	NoteMeta      lipgloss.Style
	NotePreview   lipgloss.Style
	RowCursor     lipgloss.Style
	RowSelected   lipgloss.Style
	SectionHeader lipgloss.Style
	PinMarker     lipgloss.Style
	TagChip       lipgloss.Style
	ImageMarker   lipgloss.Style

	// Tree rows
	TreeFolder  lipgloss.Style
	TreeTag     lipgloss.Style
	TreeCount   lipgloss.Style
	TreeCursor  lipgloss.Style
	TreeChevron lipgloss.Style
	TreeSection lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	KeyBind  lipgloss.Style
	KeyDesc  lipgloss.Style

	// Dialogs
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogButton lipgloss.Style

	// Search
	SearchPrompt lipgloss.Style
	SearchMatch  lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.HelpBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)

	s.Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	s.PanelFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderFocused).Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Padding(0, 1)

	s.NoteTitle = lipgloss.NewStyle().Foreground(t.Text)
	s.NoteMeta = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.NotePreview = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.RowCursor = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true)
	s.RowSelected = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface)
	s.SectionHeader = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	s.PinMarker = lipgloss.NewStyle().Foreground(t.Pinned)
	s.TagChip = lipgloss.NewStyle().Foreground(t.Tag)
	s.ImageMarker = lipgloss.NewStyle().Foreground(t.Image)

	s.TreeFolder = lipgloss.NewStyle().Foreground(t.Folder)
	s.TreeTag = lipgloss.NewStyle().Foreground(t.Tag)
	s.TreeCount = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.TreeCursor = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true)
	s.TreeChevron = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.TreeSection = lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Subtitle = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.Dialog = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Primary).Padding(1, 2).Width(60)
	s.DialogTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Align(lipgloss.Center)
	s.DialogButton = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Primary).Padding(0, 3).Bold(true)

	s.SearchPrompt = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.SearchMatch = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
