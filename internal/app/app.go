package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notenav/internal/common"
	"notenav/internal/config"
	"notenav/internal/nav"
	"notenav/internal/ui"
	"notenav/internal/ui/components"
	"notenav/internal/vault"
)

// Pane width thresholds: below narrowWidth only the focused pane shows,
// below mediumWidth the preview is dropped.
const (
	narrowWidth = 60
	mediumWidth = 100
)

// listInfo is the slice of the list pane the status bar needs.
type listInfo interface {
	Source() common.Source
	NoteCount() int
	Selection() *nav.Selection
	SortLabel() string
	Searching() bool
}

// visibilityAware panes hold scroll intents while hidden instead of
// dropping them.
type visibilityAware interface {
	SetVisible(visible bool)
}

// Model is the top-level Bubbletea model orchestrating the three panes.
type Model struct {
	svc    vault.Service
	cfg    *config.Config
	styles ui.Styles
	keys   KeyMap
	width  int
	height int
	focus  common.PaneID
	views  map[common.PaneID]common.View

	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time
}

// New creates the application model.
func New(svc vault.Service, cfg *config.Config, views map[common.PaneID]common.View) Model {
	return Model{
		svc:    svc,
		cfg:    cfg,
		styles: ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		keys:   NewKeyMap(config.DefaultKeyBindings()),
		focus:  common.PaneList,
		views:  views,
	}
}

// Init initialises every pane.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.views {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanes()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case common.FocusPaneMsg:
		m.setFocus(msg.Pane)
		return m, nil

	case common.ToggleHelpMsg:
		m.toggleHelp()
		return m, nil

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil
	}

	// Everything else (refresh, loads, source switches, opens, reveals)
	// is broadcast: panes coordinate through messages, never directly.
	return m, m.broadcast(msg)
}

// broadcast forwards a message to every pane.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for id, v := range m.views {
		updated, cmd := v.Update(msg)
		m.views[id] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// forward sends a message to the focused pane only.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	v, ok := m.views[m.focus]
	if !ok {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.views[m.focus] = updated
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) {
			m.toggleHelp()
		}
		return m, nil
	}

	// A pane in text-input mode (search, dialogs) gets every key.
	if v, ok := m.views[m.focus]; ok && v.InputCapture() {
		return m, m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, m.broadcast(common.RefreshMsg{})
	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevPane):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Reveal):
		if li, ok := m.views[common.PaneList].(listInfo); ok {
			if id, ok := li.Selection().Cursor(); ok {
				return m, m.broadcast(common.RevealMsg{ID: id})
			}
		}
		return m, nil
	}

	return m, m.forward(msg)
}

// toggleHelp flips the overlay and tells panes they are covered, so
// scroll intents queue instead of firing blind.
func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	for _, id := range m.visiblePanes() {
		if va, ok := m.views[id].(visibilityAware); ok {
			va.SetVisible(!m.showHelp)
		}
	}
}

func (m *Model) cycleFocus(delta int) {
	n := len(common.AllPanes)
	cur := 0
	for i, p := range common.AllPanes {
		if p.ID == m.focus {
			cur = i
			break
		}
	}
	visible := m.visiblePanes()
	for range common.AllPanes {
		cur = (cur + delta + n) % n
		id := common.AllPanes[cur].ID
		for _, vis := range visible {
			if vis == id {
				m.setFocus(id)
				return
			}
		}
		// In narrow mode every pane is reachable; focusing it shows it.
		if m.width < narrowWidth {
			m.setFocus(id)
			return
		}
	}
}

func (m *Model) setFocus(pane common.PaneID) {
	if _, ok := m.views[pane]; !ok {
		return
	}
	m.focus = pane
	m.layoutPanes()
}

// visiblePanes returns the panes the current width can show, in layout
// order.
func (m Model) visiblePanes() []common.PaneID {
	switch {
	case m.width < narrowWidth:
		return []common.PaneID{m.focus}
	case m.width < mediumWidth:
		return []common.PaneID{common.PaneTree, common.PaneList}
	default:
		return []common.PaneID{common.PaneTree, common.PaneList, common.PanePreview}
	}
}

// paneWidths splits the window across the visible panes.
func (m Model) paneWidths(visible []common.PaneID) map[common.PaneID]int {
	widths := make(map[common.PaneID]int, len(visible))
	if len(visible) == 1 {
		widths[visible[0]] = m.width
		return widths
	}

	tree := m.width / 5
	if tree < 22 {
		tree = 22
	}
	widths[common.PaneTree] = tree
	rest := m.width - tree
	if len(visible) == 3 {
		preview := rest * 45 / 100
		widths[common.PanePreview] = preview
		rest -= preview
	}
	widths[common.PaneList] = rest
	return widths
}

// layoutPanes resizes every pane and updates hidden/visible state.
// Hidden panes get a zero size, which detaches their scroll containers.
func (m *Model) layoutPanes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	visible := m.visiblePanes()
	widths := m.paneWidths(visible)
	contentH := m.contentHeight()

	shown := make(map[common.PaneID]bool, len(visible))
	for _, id := range visible {
		shown[id] = true
	}
	for id, v := range m.views {
		if shown[id] {
			v.SetSize(widths[id], contentH)
		} else {
			v.SetSize(0, 0)
		}
		if va, ok := v.(visibilityAware); ok {
			va.SetVisible(shown[id] && !m.showHelp)
		}
	}
}

func (m Model) contentHeight() int {
	h := m.height - 1 // status bar
	if h < 1 {
		h = 1
	}
	return h
}

// handleMouse routes mouse events to the pane under the pointer,
// focusing it on click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	visible := m.visiblePanes()
	widths := m.paneWidths(visible)

	x := msg.X
	for _, id := range visible {
		w := widths[id]
		if x < w {
			if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && id != m.focus {
				m.setFocus(id)
			}
			msg.X = x
			updated, cmd := m.views[id].Update(msg)
			m.views[id] = updated
			return m, cmd
		}
		x -= w
	}
	return m, nil
}

// View renders the entire UI. Pure — no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries()
		for _, p := range common.AllPanes {
			if v, ok := m.views[p.ID]; ok {
				switch p.ID {
				case common.PaneTree:
					sections["Tree"] = v.ShortHelp()
				case common.PaneList:
					sections["Notes"] = v.ShortHelp()
				}
			}
		}
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	visible := m.visiblePanes()
	widths := m.paneWidths(visible)
	contentH := m.contentHeight()

	panes := make([]string, 0, len(visible))
	for _, id := range visible {
		style := m.styles.Panel
		if id == m.focus {
			style = m.styles.PanelFocused
		}
		body := ""
		if v, ok := m.views[id]; ok {
			body = v.View()
		}
		panes = append(panes, style.Width(widths[id]-2).Height(contentH-2).Render(body))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	return lipgloss.JoinVertical(lipgloss.Left, content, m.statusBar())
}

func (m Model) statusBar() string {
	data := components.StatusBarData{VaultRoot: m.svc.Root()}
	if li, ok := m.views[common.PaneList].(listInfo); ok {
		data.Source = li.Source().Title()
		data.NoteCount = li.NoteCount()
		data.Selected = li.Selection().Count()
		data.SortLabel = li.SortLabel()
		data.Searching = li.Searching()
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		data.Message = m.statusMsg
		data.IsError = m.statusErr
	}
	return components.RenderStatusBar(m.styles, data, m.width)
}
