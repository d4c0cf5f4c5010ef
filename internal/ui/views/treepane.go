package views

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notenav/internal/common"
	"notenav/internal/nav"
	"notenav/internal/ui"
	"notenav/internal/ui/components"
	"notenav/internal/vault"
)

// treeChromeRows is the panel border plus the title line.
const treeChromeRows = 3

type treeEntryKind int

const (
	entryAll treeEntryKind = iota
	entrySection
	entryFolder
	entryTag
)

// treeEntry is one rendered line of the tree pane: the "All Notes"
// pseudo-row, a section label, or a flattened tree row.
type treeEntry struct {
	kind  treeEntryKind
	label string // section entries only
	row   nav.TreeRow
}

type treeDataMsg struct {
	folders *nav.Tree
	tags    *nav.Tree
	total   int
}

// TreeView is the left pane: the vault's folder hierarchy and tag
// hierarchy behind an "All Notes" pseudo-row.
type TreeView struct {
	svc    vault.Service
	styles ui.Styles
	keys   nav.KeyMap
	width  int
	height int

	folders *nav.Tree
	tags    *nav.Tree
	total   int
	entries []treeEntry
	cursor  int
	virt    *nav.Virtualizer

	// Expansion survives reloads; trees are rebuilt from scratch on
	// every refresh.
	openFolders map[nav.ItemID]bool
	openTags    map[nav.ItemID]bool
}

// NewTreeView creates the folder/tag tree pane.
func NewTreeView(svc vault.Service, keys nav.KeyMap, styles ui.Styles) *TreeView {
	return &TreeView{
		svc:         svc,
		styles:      styles,
		keys:        keys,
		virt:        nav.NewVirtualizer(0, func(int) int { return 1 }),
		openFolders: make(map[nav.ItemID]bool),
		openTags:    make(map[nav.ItemID]bool),
	}
}

func (v *TreeView) Init() tea.Cmd { return v.load() }

func (v *TreeView) SetSize(w, h int) {
	v.width = w
	v.height = h
	vp := h - treeChromeRows
	if vp < 0 {
		vp = 0
	}
	v.virt.SetViewport(vp, 2)
	if w > 0 && h > 0 {
		v.virt.Attach()
	} else {
		v.virt.Detach()
	}
}

func (v *TreeView) InputCapture() bool { return false }

func (v *TreeView) load() tea.Cmd {
	svc := v.svc
	return func() tea.Msg {
		folderPaths, err := svc.Folders()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		tagCounts, err := svc.Tags()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		items, err := svc.ScanAll()
		if err != nil {
			return common.ErrMsg{Err: err}
		}

		folders := nav.NewTree()
		for _, p := range folderPaths {
			folders.Insert(nav.NodeFolder, p)
		}
		for _, it := range items {
			folders.AddCount(it.Folder, 1)
		}

		tags := nav.NewTree()
		names := make([]string, 0, len(tagCounts))
		for name := range tagCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			tags.Insert(nav.NodeTag, "#"+name)
			tags.AddCount("#"+name, tagCounts[name])
		}

		return treeDataMsg{folders: folders, tags: tags, total: len(items)}
	}
}

// rebuildEntries re-flattens both trees into the pane's line list.
func (v *TreeView) rebuildEntries() {
	v.entries = v.entries[:0]
	v.entries = append(v.entries, treeEntry{kind: entryAll})

	if v.folders != nil && v.folders.Len() > 0 {
		v.entries = append(v.entries, treeEntry{kind: entrySection, label: "FOLDERS"})
		for _, r := range v.folders.Flatten() {
			v.entries = append(v.entries, treeEntry{kind: entryFolder, row: r})
		}
	}
	if v.tags != nil && v.tags.Len() > 0 {
		v.entries = append(v.entries, treeEntry{kind: entrySection, label: "TAGS"})
		for _, r := range v.tags.Flatten() {
			v.entries = append(v.entries, treeEntry{kind: entryTag, row: r})
		}
	}

	v.virt.SetRowCount(len(v.entries))
	v.virt.Measure()
	if v.cursor >= len(v.entries) {
		v.cursor = len(v.entries) - 1
	}
	if v.cursor >= 0 && !v.selectable(v.cursor) {
		v.cursor = v.step(v.cursor, 1)
	}
}

func (v *TreeView) selectable(i int) bool {
	return i >= 0 && i < len(v.entries) && v.entries[i].kind != entrySection
}

// step returns the nearest selectable entry from i in direction dir,
// or i itself when there is none.
func (v *TreeView) step(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(v.entries); j += dir {
		if v.selectable(j) {
			return j
		}
	}
	return i
}

func (v *TreeView) node(e treeEntry) nav.TreeNode {
	if e.kind == entryTag {
		return v.tags.Node(e.row.Node)
	}
	return v.folders.Node(e.row.Node)
}

// source maps the cursor entry to the list-pane collection it stands
// for.
func (v *TreeView) source(e treeEntry) common.Source {
	switch e.kind {
	case entryFolder:
		return common.Source{Kind: common.SourceFolder, Name: string(v.node(e).ID)}
	case entryTag:
		return common.Source{Kind: common.SourceTag, Name: strings.TrimPrefix(string(v.node(e).ID), "#")}
	default:
		return common.Source{Kind: common.SourceAll}
	}
}

func (v *TreeView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case treeDataMsg:
		v.folders = msg.folders
		v.tags = msg.tags
		v.total = msg.total
		for id, open := range v.openFolders {
			if open {
				v.folders.Expand(id)
			}
		}
		for id, open := range v.openTags {
			if open {
				v.tags.Expand(id)
			}
		}
		v.rebuildEntries()
		return v, nil

	case common.RefreshMsg:
		return v, v.load()

	case common.RevealMsg:
		v.revealFolder(msg.ID)
		return v, nil

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

// revealFolder expands and selects the folder containing a note, so a
// cross-folder reveal in the list pane keeps the tree in sync.
func (v *TreeView) revealFolder(note nav.ItemID) {
	if v.folders == nil {
		return
	}
	folder := ""
	if cut := strings.LastIndexByte(string(note), '/'); cut >= 0 {
		folder = string(note)[:cut]
	}
	if folder == "" {
		v.cursor = 0
		v.syncScroll()
		return
	}
	v.folders.ExpandAncestors(nav.ItemID(folder))
	v.folders.Expand(nav.ItemID(folder))
	v.rememberExpansion()
	v.rebuildEntries()
	for i, e := range v.entries {
		if e.kind == entryFolder && v.node(e).ID == nav.ItemID(folder) {
			v.cursor = i
			break
		}
	}
	v.syncScroll()
}

func (v *TreeView) updateKeys(msg tea.KeyMsg) (common.View, tea.Cmd) {
	if msg.String() == " " {
		return v, v.toggleExpand()
	}

	switch nav.Route(msg, v.keys) {
	case nav.ActionMoveUp:
		return v.moveTo(v.step(v.cursor, -1))
	case nav.ActionMoveDown:
		return v.moveTo(v.step(v.cursor, 1))
	case nav.ActionHome:
		return v.moveTo(0)
	case nav.ActionEnd:
		return v.moveTo(v.lastSelectable())
	case nav.ActionPageUp:
		return v.moveTo(v.pageTarget(-1))
	case nav.ActionPageDown:
		return v.moveTo(v.pageTarget(1))
	case nav.ActionOpen:
		return v, v.toggleExpand()
	}
	return v, nil
}

func (v *TreeView) lastSelectable() int {
	for i := len(v.entries) - 1; i >= 0; i-- {
		if v.selectable(i) {
			return i
		}
	}
	return 0
}

func (v *TreeView) pageTarget(dir int) int {
	start, end := v.virt.VisibleRange()
	page := end - start
	if page < 1 {
		page = 10
	}
	target := v.cursor + dir*page
	if target < 0 {
		target = 0
	}
	if target > len(v.entries)-1 {
		target = len(v.entries) - 1
	}
	if !v.selectable(target) {
		target = v.step(target, dir)
	}
	return target
}

// moveTo moves the cursor and announces the new source collection.
func (v *TreeView) moveTo(i int) (common.View, tea.Cmd) {
	if i == v.cursor || !v.selectable(i) {
		return v, nil
	}
	v.cursor = i
	v.syncScroll()
	src := v.source(v.entries[i])
	return v, func() tea.Msg { return common.SourceChangedMsg{Source: src} }
}

// toggleExpand flips the cursor node's expansion. Leaves are ignored.
func (v *TreeView) toggleExpand() tea.Cmd {
	if !v.selectable(v.cursor) {
		return nil
	}
	e := v.entries[v.cursor]
	if e.kind != entryFolder && e.kind != entryTag {
		return nil
	}
	if !e.row.HasChildren {
		return nil
	}
	id := v.node(e).ID
	if e.kind == entryTag {
		v.tags.Toggle(id)
	} else {
		v.folders.Toggle(id)
	}
	v.rememberExpansion()
	v.rebuildEntries()
	// Keep the cursor on the toggled node; collapsing above it may have
	// shifted indices.
	for i, cand := range v.entries {
		if cand.kind == e.kind && v.node(cand).ID == id {
			v.cursor = i
			break
		}
	}
	v.syncScroll()
	return nil
}

func (v *TreeView) rememberExpansion() {
	if v.folders != nil {
		for i := 0; i < v.folders.Len(); i++ {
			id := v.folders.Node(i).ID
			v.openFolders[id] = v.folders.IsExpanded(id)
		}
	}
	if v.tags != nil {
		for i := 0; i < v.tags.Len(); i++ {
			id := v.tags.Node(i).ID
			v.openTags[id] = v.tags.IsExpanded(id)
		}
	}
}

func (v *TreeView) syncScroll() {
	v.virt.ScrollToIndex(v.cursor, nav.AlignAuto)
}

func (v *TreeView) handleMouse(msg tea.MouseMsg) (common.View, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.virt.ScrollBy(-3)
	case tea.MouseButtonWheelDown:
		v.virt.ScrollBy(3)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		i := v.virt.Offset() + msg.Y - (treeChromeRows - 1)
		if !v.selectable(i) {
			break
		}
		if i == v.cursor {
			return v, v.toggleExpand()
		}
		return v.moveTo(i)
	}
	return v, nil
}

// ── View ────────────────────────────────────────────────────────────────────

func (v *TreeView) View() string {
	var b strings.Builder
	b.WriteString(v.styles.PanelTitle.Render("Vault") + "\n")

	vp := v.height - treeChromeRows
	if vp < 0 {
		vp = 0
	}
	if len(v.entries) == 0 {
		b.WriteString(ui.PlaceCentre(v.width-4, vp, v.styles.Muted.Render("Loading…")))
		return lipgloss.NewStyle().Width(v.width - 2).Height(v.height - 2).Render(b.String())
	}

	start, end := v.virt.VisibleRange()
	var lines []string
	for i := start; i <= end && i < len(v.entries); i++ {
		lines = append(lines, v.renderEntry(i))
	}
	if len(lines) > vp {
		lines = lines[:vp]
	}
	content := strings.Join(lines, "\n")

	total := v.virt.TotalSize()
	if total > vp {
		bar := components.RenderScrollbar(v.styles, vp, total, vp,
			components.ScrollPercent(v.virt.Offset(), total, vp))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
	}
	b.WriteString(content)
	return lipgloss.NewStyle().Width(v.width - 2).Height(v.height - 2).Render(b.String())
}

func (v *TreeView) renderEntry(i int) string {
	e := v.entries[i]
	w := v.width - 5
	if w < 8 {
		w = 8
	}

	switch e.kind {
	case entrySection:
		return v.styles.TreeSection.Render(e.label)
	case entryAll:
		line := "  All Notes"
		if v.total > 0 {
			line += " " + v.styles.TreeCount.Render(fmt.Sprintf("(%d)", v.total))
		}
		if i == v.cursor {
			return v.styles.TreeCursor.Render(ui.PadRight(line, w))
		}
		return v.styles.TreeFolder.Render(line)
	}

	n := v.node(e)
	indent := strings.Repeat("  ", e.row.Depth+1)
	chevron := "  "
	if e.row.HasChildren {
		if e.row.Expanded {
			chevron = v.styles.TreeChevron.Render("▾ ")
		} else {
			chevron = v.styles.TreeChevron.Render("▸ ")
		}
	}

	style := v.styles.TreeFolder
	if e.kind == entryTag {
		style = v.styles.TreeTag
	}
	line := indent + chevron + style.Render(ui.Truncate(n.Name, w-len(indent)-8))
	if n.Count > 0 {
		line += " " + v.styles.TreeCount.Render(fmt.Sprintf("(%d)", n.Count))
	}
	if i == v.cursor {
		return v.styles.TreeCursor.Render(ui.PadRight(line, w))
	}
	return line
}

func (v *TreeView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter / space", Desc: "Expand / collapse"},
		{Key: "j / k", Desc: "Move between folders and tags"},
		{Key: "g / G", Desc: "Jump to top / bottom"},
	}
}
