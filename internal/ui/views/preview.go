package views

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"notenav/internal/common"
	"notenav/internal/nav"
	"notenav/internal/ui"
	"notenav/internal/ui/components"
	"notenav/internal/vault"
)

// previewChromeRows is the panel border plus the title line.
const previewChromeRows = 3

type noteRenderedMsg struct {
	id       nav.ItemID
	rendered string
}

// PreviewView renders the current note's markdown in the right pane.
type PreviewView struct {
	svc    vault.Service
	styles ui.Styles
	width  int
	height int

	current nav.ItemID
	vp      viewport.Model
	ready   bool
}

// NewPreviewView creates the markdown preview pane.
func NewPreviewView(svc vault.Service, styles ui.Styles) *PreviewView {
	return &PreviewView{svc: svc, styles: styles}
}

func (v *PreviewView) Init() tea.Cmd { return nil }

func (v *PreviewView) InputCapture() bool { return false }

func (v *PreviewView) SetSize(w, h int) {
	v.width = w
	v.height = h
	vpH := h - previewChromeRows
	if vpH < 0 {
		vpH = 0
	}
	if !v.ready {
		v.vp = viewport.New(w-4, vpH)
		v.ready = true
	} else {
		v.vp.Width = w - 4
		v.vp.Height = vpH
	}
}

// render re-renders the note off the update loop; glamour word-wraps to
// the pane width, so a resize re-renders too.
func (v *PreviewView) render(id nav.ItemID) tea.Cmd {
	svc := v.svc
	width := v.width - 6
	if width < 20 {
		width = 20
	}
	return func() tea.Msg {
		src, err := svc.Read(id)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
			glamour.WithColorProfile(termenv.ColorProfile()),
		)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		out, err := r.Render(src)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return noteRenderedMsg{id: id, rendered: out}
	}
}

func (v *PreviewView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.OpenNoteMsg:
		v.current = msg.ID
		return v, v.render(msg.ID)

	case common.RefreshMsg:
		if v.current != "" {
			return v, v.render(v.current)
		}
		return v, nil

	case noteRenderedMsg:
		if msg.id != v.current {
			return v, nil // superseded by a later open
		}
		v.vp.SetContent(msg.rendered)
		v.vp.GotoTop()
		return v, nil

	case tea.KeyMsg, tea.MouseMsg:
		if !v.ready {
			return v, nil
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *PreviewView) View() string {
	title := "Preview"
	if v.current != "" {
		title = string(v.current)
	}
	head := v.styles.PanelTitle.Render(ui.Truncate(title, v.width-4)) + "\n"

	var body string
	switch {
	case !v.ready:
		body = ""
	case v.current == "":
		body = ui.PlaceCentre(v.width-4, v.vp.Height, v.styles.Muted.Render("Select a note"))
	default:
		body = v.vp.View()
	}
	return lipgloss.NewStyle().Width(v.width - 2).Height(v.height - 2).Render(head + body)
}

func (v *PreviewView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "j / k", Desc: "Scroll preview"},
		{Key: "pgup / pgdn", Desc: "Scroll by page"},
	}
}
