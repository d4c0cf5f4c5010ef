package views

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"notenav/internal/common"
	"notenav/internal/config"
	"notenav/internal/nav"
	"notenav/internal/ui"
	"notenav/internal/ui/components"
	"notenav/internal/vault"
)

// listChromeRows is the fixed vertical overhead of the list pane: the
// panel border (2) and the title line (1).
const listChromeRows = 3

// overscanRows is the extra measure-ahead margin handed to the
// virtualizer, in terminal lines.
const overscanRows = 6

// ListView is the note list pane: a virtualized window over the row
// list with multi-selection and scroll reconciliation.
type ListView struct {
	svc    vault.Service
	pins   *vault.Pins
	cfg    *config.Config
	styles ui.Styles
	keys   nav.KeyMap
	width  int
	height int

	source common.Source
	items  []nav.ItemRef
	rows   []nav.Row
	index  map[nav.ItemID]int
	order  []nav.ItemID

	sel       *nav.Selection
	gestures  *nav.Gestures
	virt      *nav.Virtualizer
	recon     *nav.Reconciler
	policy    nav.HeightPolicy
	sortOpt   nav.SortOption
	group     nav.GroupOption
	recursive bool // folder listings include subfolder notes

	searching bool
	search    textinput.Model
	query     string

	dialog        *components.Dialog
	pendingReveal nav.ItemID
	autoSelect    bool // arm auto-select-first on next load
}

// NewListView creates the note list pane showing the whole vault.
func NewListView(svc vault.Service, pins *vault.Pins, cfg *config.Config, keys nav.KeyMap, styles ui.Styles) *ListView {
	ti := textinput.New()
	ti.Placeholder = "search notes"
	ti.CharLimit = 100
	ti.Width = 30

	sel := nav.NewSelection()
	v := &ListView{
		svc:       svc,
		pins:      pins,
		cfg:       cfg,
		styles:    styles,
		keys:      keys,
		source:    common.Source{Kind: common.SourceAll},
		sel:       sel,
		gestures:  nav.NewGestures(sel),
		virt:      nav.NewVirtualizer(0, func(int) int { return 1 }),
		recon:     nav.NewReconciler(true),
		search:    ti,
		sortOpt:   sortOptionFromConfig(cfg),
		recursive: cfg.IncludeDescendants,
	}
	v.policy = nav.HeightPolicy{
		ShowDate:     cfg.ShowDate,
		PreviewLines: cfg.PreviewLines,
		ShowTags:     cfg.ShowTags,
		ShowParent:   cfg.ShowParent,
	}
	if cfg.GroupByDate {
		v.group = nav.GroupByDate
	}
	return v
}

func sortOptionFromConfig(cfg *config.Config) nav.SortOption {
	opt := nav.SortOption{Descending: cfg.SortDescending}
	switch cfg.SortField {
	case "title":
		opt.Field = nav.SortByTitle
	case "created":
		opt.Field = nav.SortByCreated
	default:
		opt.Field = nav.SortByModified
	}
	return opt
}

func (v *ListView) Init() tea.Cmd { return v.load() }

// SetSize lays out the pane and attaches the scroll container.
func (v *ListView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.virt.SetViewport(v.listHeight(), overscanRows)
	if w > 0 && h > 0 {
		v.virt.Attach()
	} else {
		v.virt.Detach()
	}
	v.recon.Reconcile(v.virt, v.index)
}

// SetVisible records whether the pane is shown at all (narrow layouts
// collapse it). Hidden panes hold scroll intents instead of dropping
// them.
func (v *ListView) SetVisible(visible bool) {
	v.recon.SetVisible(visible)
	if visible {
		v.virt.Attach()
	} else {
		v.virt.Detach()
	}
	v.recon.Reconcile(v.virt, v.index)
}

// Selection exposes the selection state for the status bar.
func (v *ListView) Selection() *nav.Selection { return v.sel }

// Source returns the current collection.
func (v *ListView) Source() common.Source { return v.source }

// NoteCount returns the number of notes currently listed.
func (v *ListView) NoteCount() int { return len(v.order) }

// SortLabel describes the active sort for the status bar.
func (v *ListView) SortLabel() string {
	name := "modified"
	switch v.sortOpt.Field {
	case nav.SortByTitle:
		name = "title"
	case nav.SortByCreated:
		name = "created"
	}
	arrow := "↑"
	if v.sortOpt.Descending {
		arrow = "↓"
	}
	return name + " " + arrow
}

// Searching reports whether the search field is open.
func (v *ListView) Searching() bool { return v.searching }

func (v *ListView) InputCapture() bool {
	return v.searching || (v.dialog != nil && v.dialog.Visible())
}

func (v *ListView) listHeight() int {
	h := v.height - listChromeRows
	if v.searching {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

// ── Data loading ────────────────────────────────────────────────────────────

func (v *ListView) load() tea.Cmd {
	src := v.source
	svc := v.svc
	recursive := v.recursive
	return func() tea.Msg {
		var items []nav.ItemRef
		var err error
		switch src.Kind {
		case common.SourceAll:
			items, err = svc.ScanAll()
		case common.SourceTag:
			items, err = svc.NotesByTag(src.Name)
		default:
			items, err = svc.Notes(src.Name, recursive)
		}
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.NotesLoadedMsg{Source: src, Items: items}
	}
}

// rebuildRows rebuilds the flat row list, its id index, and the
// measurement state from the current items, filter, and pins.
func (v *ListView) rebuildRows() {
	items := v.items
	if v.query != "" {
		items = filterItems(items, v.query)
	}
	v.rows = nav.Build(items, v.pins.Set(), v.sortOpt, v.group)
	v.index = nav.IndexByID(v.rows)
	v.order = nav.SelectableOrder(v.rows)

	v.virt.SetRowCount(len(v.rows))
	v.virt.SetEstimator(v.policy.Estimator(v.rows))
	v.virt.Measure()
	v.recon.Reconcile(v.virt, v.index)
}

// filterItems narrows items to fuzzy matches on the title.
func filterItems(items []nav.ItemRef, query string) []nav.ItemRef {
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	matches := fuzzy.Find(query, titles)
	out := make([]nav.ItemRef, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}

// ── Update ──────────────────────────────────────────────────────────────────

func (v *ListView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	if v.dialog != nil && v.dialog.Visible() {
		if res, ok := msg.(components.DialogResult); ok {
			return v.handleDialogResult(res)
		}
		d, cmd := v.dialog.Update(msg)
		v.dialog = &d
		return v, cmd
	}

	switch msg := msg.(type) {
	case components.DialogResult:
		return v.handleDialogResult(msg)

	case common.SourceChangedMsg:
		if msg.Source == v.source {
			return v, nil
		}
		v.source = msg.Source
		v.sel.Reset()
		v.sel.SetSignal(nav.SignalFolderNav)
		v.autoSelect = v.cfg.AutoSelectFirst
		return v, v.load()

	case common.NotesLoadedMsg:
		if msg.Source != v.source {
			return v, nil // stale load from a superseded source switch
		}
		v.items = msg.Items
		v.rebuildRows()

		if v.pendingReveal != "" {
			if _, ok := v.index[v.pendingReveal]; ok {
				v.sel.SetCursor(v.pendingReveal)
				v.sel.SetSignal(nav.SignalReveal)
			}
			v.pendingReveal = ""
		} else if v.autoSelect {
			if first := nav.FirstSelectable(v.rows); first >= 0 {
				v.sel.SetCursor(v.rows[first].Item.ID)
				v.sel.SetSignal(nav.SignalFolderAutoSelect)
			}
		}
		v.autoSelect = false
		return v, v.consumeSignal()

	case common.RefreshMsg:
		return v, v.load()

	case common.RevealMsg:
		return v.reveal(msg.ID)

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

// reveal selects and scrolls to a note, switching the source to the
// note's folder when the current collection doesn't contain it.
func (v *ListView) reveal(id nav.ItemID) (common.View, tea.Cmd) {
	if _, ok := v.index[id]; ok {
		v.sel.SetCursor(id)
		v.sel.SetSignal(nav.SignalReveal)
		return v, v.consumeSignal()
	}
	v.pendingReveal = id
	folder := ""
	if i := strings.LastIndexByte(string(id), '/'); i >= 0 {
		folder = string(id)[:i]
	}
	v.source = common.Source{Kind: common.SourceFolder, Name: folder}
	v.sel.Reset()
	v.query = ""
	v.search.Reset()
	return v, v.load()
}

// consumeSignal turns the armed selection signal into its scroll (and
// possibly open) side effect. Runs after rows are in sync.
func (v *ListView) consumeSignal() tea.Cmd {
	switch v.sel.TakeSignal() {
	case nav.SignalKeyboardNav:
		if id, ok := v.sel.Cursor(); ok {
			v.recon.RequestScroll(id, nav.AlignAuto, false, v.virt, v.index)
		}
	case nav.SignalReveal:
		if id, ok := v.sel.Cursor(); ok {
			v.recon.RequestScroll(id, nav.AlignAuto, true, v.virt, v.index)
		}
	case nav.SignalFolderNav:
		id, _ := v.sel.Cursor()
		v.recon.CollectionChanged(id, v.virt, v.index)
	case nav.SignalFolderAutoSelect:
		if id, ok := v.sel.Cursor(); ok {
			v.recon.RequestScroll(id, nav.AlignCenter, false, v.virt, v.index)
			return func() tea.Msg { return common.OpenNoteMsg{ID: id} }
		}
	}
	return nil
}

func (v *ListView) updateSearch(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searching = false
		v.search.Blur()
		v.query = ""
		v.search.Reset()
		v.rebuildRows()
		v.virt.SetViewport(v.listHeight(), overscanRows)
		return v, nil
	case "enter":
		// Keep the filter, close the field.
		v.searching = false
		v.search.Blur()
		v.virt.SetViewport(v.listHeight(), overscanRows)
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if q := v.search.Value(); q != v.query {
		v.query = q
		v.rebuildRows()
		v.recon.RequestScrollTop(v.virt, v.index)
	}
	return v, cmd
}

func (v *ListView) updateNormal(msg tea.KeyMsg) (common.View, tea.Cmd) {
	// View-local single-letter keys first; configurable nav bindings after.
	switch msg.String() {
	case "/":
		v.searching = true
		v.search.Focus()
		v.virt.SetViewport(v.listHeight(), overscanRows)
		return v, textinput.Blink
	case "n":
		d := components.NewInputDialog(v.styles, "New Note", "note title", "", "new")
		v.dialog = &d
		return v, textinput.Blink
	case "R":
		if id, ok := v.sel.Cursor(); ok {
			if row, ok := v.index[id]; ok {
				d := components.NewInputDialog(v.styles, "Rename Note", "new title", v.rows[row].Item.Title, "rename")
				v.dialog = &d
				return v, textinput.Blink
			}
		}
		return v, nil
	case "s":
		v.cycleSort()
		return v, nil
	case "d":
		v.toggleGroup()
		return v, nil
	case "i":
		return v, v.toggleRecursive()
	case "e":
		return v, v.editNote()
	}

	switch nav.Route(msg, v.keys) {
	case nav.ActionMoveUp:
		v.moveCursor(-1)
	case nav.ActionMoveDown:
		v.moveCursor(1)
	case nav.ActionPageUp:
		v.page(-1)
	case nav.ActionPageDown:
		v.page(1)
	case nav.ActionHome:
		v.gestures.MoveToEdge(v.rows, false, false)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	case nav.ActionEnd:
		v.gestures.MoveToEdge(v.rows, true, false)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	case nav.ActionExtendUp:
		v.gestures.ExtendStep(v.rows, -1)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	case nav.ActionExtendDown:
		v.gestures.ExtendStep(v.rows, 1)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	case nav.ActionExtendHome:
		v.gestures.MoveToEdge(v.rows, false, true)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	case nav.ActionExtendEnd:
		v.gestures.MoveToEdge(v.rows, true, true)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	case nav.ActionSelectAll:
		v.gestures.SelectAll(v.rows)
	case nav.ActionClearSelection:
		v.sel.ClearSet()
	case nav.ActionOpen:
		if id, ok := v.sel.Cursor(); ok {
			return v, func() tea.Msg { return common.OpenNoteMsg{ID: id} }
		}
	case nav.ActionDelete:
		return v.requestDelete()
	case nav.ActionTogglePin:
		return v.togglePin()
	default:
		return v, nil
	}
	return v, v.consumeSignal()
}

// moveCursor steps the cursor one selectable row, clamping at the edges.
func (v *ListView) moveCursor(dir int) {
	id, ok := v.sel.Cursor()
	if !ok {
		if first := nav.FirstSelectable(v.rows); first >= 0 {
			v.gestures.Click(v.rows[first].Item.ID)
			v.sel.SetSignal(nav.SignalKeyboardNav)
		}
		return
	}
	cur, ok := v.index[id]
	if !ok {
		return
	}
	next := nav.NextSelectable(v.rows, cur, dir)
	if next != cur {
		v.gestures.Click(v.rows[next].Item.ID)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	}
}

// page jumps the cursor roughly one viewport of rows.
func (v *ListView) page(dir int) {
	id, ok := v.sel.Cursor()
	if !ok {
		v.moveCursor(dir)
		return
	}
	cur, ok := v.index[id]
	if !ok {
		return
	}
	start, end := v.virt.VisibleRange()
	pageRows := end - start
	if pageRows < 1 {
		pageRows = 10
	}
	target := nav.PageTarget(v.rows, cur, pageRows, dir)
	if target != cur && v.rows[target].Selectable() {
		v.gestures.Click(v.rows[target].Item.ID)
		v.sel.SetSignal(nav.SignalKeyboardNav)
	}
}

func (v *ListView) cycleSort() {
	switch v.sortOpt.Field {
	case nav.SortByModified:
		v.sortOpt.Field = nav.SortByCreated
	case nav.SortByCreated:
		v.sortOpt.Field = nav.SortByTitle
	default:
		v.sortOpt.Field = nav.SortByModified
	}
	v.rebuildRows()
	if id, ok := v.sel.Cursor(); ok {
		v.recon.RequestScroll(id, nav.AlignAuto, false, v.virt, v.index)
	}
}

func (v *ListView) toggleGroup() {
	if v.group == nav.GroupNone {
		v.group = nav.GroupByDate
	} else {
		v.group = nav.GroupNone
	}
	v.rebuildRows()
	if id, ok := v.sel.Cursor(); ok {
		v.recon.RequestScroll(id, nav.AlignAuto, false, v.virt, v.index)
	}
}

// toggleRecursive flips whether folder listings include subfolder
// notes and reloads. The cursor survives when its note is still in the
// new listing; otherwise the window goes back to the top.
func (v *ListView) toggleRecursive() tea.Cmd {
	v.recursive = !v.recursive
	v.sel.SetSignal(nav.SignalFolderNav)
	return v.load()
}

func (v *ListView) togglePin() (common.View, tea.Cmd) {
	id, ok := v.sel.Cursor()
	if !ok {
		return v, nil
	}
	pinned, err := v.pins.Toggle(id)
	if err != nil {
		return v, common.CmdErr(err)
	}
	v.rebuildRows()
	v.recon.RequestScroll(id, nav.AlignAuto, false, v.virt, v.index)
	if pinned {
		return v, common.CmdInfo("pinned")
	}
	return v, common.CmdInfo("unpinned")
}

// requestDelete asks for confirmation (or deletes directly when the
// config says not to ask). The whole multi-selection is deleted.
func (v *ListView) requestDelete() (common.View, tea.Cmd) {
	ids := v.selectedIDs()
	if len(ids) == 0 {
		return v, nil
	}
	if !v.cfg.ConfirmDelete {
		return v, v.deleteNotes(ids)
	}
	msg := fmt.Sprintf("Delete %d note(s)? This cannot be undone.", len(ids))
	d := components.NewConfirmDialog(v.styles, "Delete Notes", msg, "delete")
	v.dialog = &d
	return v, nil
}

func (v *ListView) handleDialogResult(res components.DialogResult) (common.View, tea.Cmd) {
	v.dialog = nil
	if !res.Confirmed {
		return v, nil
	}
	switch res.Tag {
	case "delete":
		return v, v.deleteNotes(v.selectedIDs())
	case "new":
		title := strings.TrimSpace(res.Value)
		if title == "" {
			return v, nil
		}
		folder := ""
		if v.source.Kind == common.SourceFolder {
			folder = v.source.Name
		}
		return v, v.createNote(folder, title)
	case "rename":
		title := strings.TrimSpace(res.Value)
		id, ok := v.sel.Cursor()
		if title == "" || !ok {
			return v, nil
		}
		return v, v.renameNote(id, title)
	}
	return v, nil
}

func (v *ListView) selectedIDs() []nav.ItemID {
	ids := make([]nav.ItemID, 0, v.sel.Count())
	for _, id := range v.order {
		if v.sel.IsSelected(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (v *ListView) deleteNotes(ids []nav.ItemID) tea.Cmd {
	svc := v.svc
	pins := v.pins
	return func() tea.Msg {
		if err := svc.Delete(ids...); err != nil {
			return common.ErrMsg{Err: err}
		}
		if err := pins.Remove(ids...); err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.CmdRefresh()
	}
}

func (v *ListView) createNote(folder, title string) tea.Cmd {
	svc := v.svc
	return func() tea.Msg {
		ref, err := svc.Create(folder, title)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.RevealMsg{ID: ref.ID}
	}
}

// editNote suspends the TUI and opens the cursor note in the
// configured editor (falling back to $EDITOR, then vi).
func (v *ListView) editNote() tea.Cmd {
	id, ok := v.sel.Cursor()
	if !ok {
		return nil
	}
	editor := v.cfg.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	path := filepath.Join(v.svc.Root(), filepath.FromSlash(string(id)))
	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.RefreshMsg{}
	})
}

func (v *ListView) renameNote(id nav.ItemID, title string) tea.Cmd {
	svc := v.svc
	return func() tea.Msg {
		newID, err := svc.Rename(id, title)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.RevealMsg{ID: newID}
	}
}

// ── Mouse ───────────────────────────────────────────────────────────────────

func (v *ListView) handleMouse(msg tea.MouseMsg) (common.View, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.virt.ScrollBy(-3)
	case tea.MouseButtonWheelDown:
		v.virt.ScrollBy(3)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		row, ok := v.rowAtY(msg.Y)
		if !ok || !v.rows[row].Selectable() {
			break
		}
		id := v.rows[row].Item.ID
		switch {
		case msg.Shift:
			v.gestures.ShiftClick(v.rows, id)
		case msg.Ctrl || msg.Alt:
			v.gestures.ModifierClick(v.rows, id)
		default:
			v.gestures.Click(id)
			return v, func() tea.Msg { return common.OpenNoteMsg{ID: id} }
		}
	}
	return v, nil
}

// rowAtY maps a pane-relative Y coordinate to a row index.
func (v *ListView) rowAtY(y int) (int, bool) {
	chrome := listChromeRows - 1 // border bottom is below the content
	if v.searching {
		chrome++
	}
	line := v.virt.Offset() + y - chrome
	if line < 0 {
		return 0, false
	}
	start, end := v.virt.VisibleRange()
	for i := start; i <= end; i++ {
		off := v.virt.RowOffset(i)
		if line >= off && line < off+v.rowHeight(i) {
			return i, true
		}
	}
	return 0, false
}

func (v *ListView) rowHeight(i int) int {
	return v.policy.RowHeight(v.rows[i], i)
}

// ── View ────────────────────────────────────────────────────────────────────

func (v *ListView) View() string {
	var b strings.Builder

	title := v.styles.PanelTitle.Render(fmt.Sprintf("%s (%d)", v.source.Title(), len(v.order)))
	b.WriteString(title + "\n")
	if v.searching {
		b.WriteString(v.styles.SearchPrompt.Render("/") + v.search.View() + "\n")
	}

	listH := v.listHeight()
	content := v.renderWindow(listH)

	total := v.virt.TotalSize()
	if total > listH {
		bar := components.RenderScrollbar(v.styles, listH, total, listH,
			components.ScrollPercent(v.virt.Offset(), total, listH))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
	}
	b.WriteString(content)

	out := lipgloss.NewStyle().Width(v.width - 2).Height(v.height - 2).Render(b.String())
	if v.dialog != nil && v.dialog.Visible() {
		return ui.PlaceCentre(v.width, v.height, v.dialog.View())
	}
	return out
}

// renderWindow renders the visible rows, trimmed to the viewport.
func (v *ListView) renderWindow(listH int) string {
	if len(v.order) == 0 {
		empty := "No notes"
		if v.query != "" {
			empty = "No matches for " + v.query
		}
		return ui.PlaceCentre(v.width-4, listH, v.styles.Muted.Render(empty))
	}

	start, end := v.virt.VisibleRange()
	var lines []string
	for i := start; i <= end; i++ {
		lines = append(lines, v.renderRow(i)...)
	}

	// Trim partial rows at the top, then cut to the viewport height.
	skip := v.virt.Offset() - v.virt.RowOffset(start)
	if skip > 0 && skip < len(lines) {
		lines = lines[skip:]
	}
	if len(lines) > listH {
		lines = lines[:listH]
	}
	return strings.Join(lines, "\n")
}

// renderRow produces exactly RowHeight lines for row i.
func (v *ListView) renderRow(i int) []string {
	r := v.rows[i]
	h := v.rowHeight(i)
	w := v.width - 5 // border, padding, scrollbar
	if w < 10 {
		w = 10
	}

	switch r.Kind {
	case nav.RowHeader:
		label := v.styles.SectionHeader.Render(r.Label)
		if h == 2 {
			return []string{"", label}
		}
		return []string{label}
	case nav.RowSpacer:
		return []string{""}
	}

	it := r.Item
	cursorID, _ := v.sel.Cursor()
	isCursor := it.ID == cursorID
	isSelected := v.sel.IsSelected(it.ID)

	marker := "  "
	if isCursor {
		marker = "▸ "
	}
	title := marker + it.Title
	if r.Pinned {
		title += " " + v.styles.PinMarker.Render("★")
	}
	if it.HasImage {
		title += " " + v.styles.ImageMarker.Render("◨")
	}

	lines := []string{v.styles.NoteTitle.Render(ui.Truncate(title, w))}

	hasPreview := v.policy.PreviewLines > 0 && len(it.Preview) > 0
	if v.policy.ShowDate || hasPreview {
		meta := ""
		if v.policy.ShowDate {
			meta = age(it.Modified, time.Now())
		}
		if hasPreview {
			if meta != "" {
				meta += "  "
			}
			meta += it.Preview[0]
		}
		lines = append(lines, ui.DetailLine(v.styles.NoteMeta, meta, w))
	}
	if hasPreview && v.policy.PreviewLines > 1 {
		extra := len(it.Preview) - 1
		if extra > v.policy.PreviewLines-1 {
			extra = v.policy.PreviewLines - 1
		}
		for j := 1; j <= extra; j++ {
			lines = append(lines, ui.DetailLine(v.styles.NotePreview, it.Preview[j], w))
		}
	}
	if v.policy.ShowTags && len(it.Tags) > 0 {
		lines = append(lines, ui.DetailLine(v.styles.TagChip, "#"+strings.Join(it.Tags, " #"), w))
	}
	if v.policy.ShowParent {
		folder := it.Folder
		if folder == "" {
			folder = "/"
		}
		lines = append(lines, ui.DetailLine(v.styles.Muted, folder, w))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}

	// Highlight after layout so backgrounds span the full width.
	if isCursor || isSelected {
		style := v.styles.RowSelected
		if isCursor {
			style = v.styles.RowCursor
		}
		for j, line := range lines {
			lines[j] = style.Render(ui.PadRight(line, w))
		}
	}
	return lines
}

func (v *ListView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter", Desc: "Open note"},
		{Key: "n", Desc: "New note"},
		{Key: "R", Desc: "Rename note"},
		{Key: "e", Desc: "Edit in $EDITOR"},
		{Key: "x / del", Desc: "Delete selection"},
		{Key: "p", Desc: "Pin / unpin"},
		{Key: "s", Desc: "Cycle sort field"},
		{Key: "d", Desc: "Toggle date groups"},
		{Key: "i", Desc: "Toggle subfolder notes"},
		{Key: "/", Desc: "Search"},
	}
}

// age formats a timestamp relative to now.
func age(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
