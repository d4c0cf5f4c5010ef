package nav

import (
	"sort"
	"strings"
)

// NodeKind distinguishes the two hierarchies shown in the tree pane.
type NodeKind int

const (
	NodeFolder NodeKind = iota
	NodeTag
)

// TreeNode is one folder or tag. Nodes live in the tree's arena and refer
// to each other by index, never by pointer — child ordering and expansion
// logic stay testable without touching rendering.
type TreeNode struct {
	ID       ItemID // full path, e.g. "projects/go" or "#work/active"
	Kind     NodeKind
	Name     string // last path segment
	Parent   int    // arena index, -1 for roots
	Children []int  // arena indices, sorted by name
	Count    int    // notes directly under this node
}

// TreeRow is one flattened line of the tree pane.
type TreeRow struct {
	Node        int // arena index
	Depth       int
	HasChildren bool
	Expanded    bool
}

// Tree is an arena of folder/tag nodes with expansion state.
type Tree struct {
	nodes    []TreeNode
	index    map[ItemID]int
	roots    []int
	expanded map[ItemID]bool
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{index: make(map[ItemID]int), expanded: make(map[ItemID]bool)}
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at arena index i.
func (t *Tree) Node(i int) TreeNode { return t.nodes[i] }

// Lookup returns the arena index for id.
func (t *Tree) Lookup(id ItemID) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Insert adds the node at path (and any missing ancestors) and returns
// its arena index. Paths use "/" separators; tag paths carry their "#"
// prefix on the first segment. Inserting an existing path is a no-op
// returning the existing index.
func (t *Tree) Insert(kind NodeKind, path string) int {
	path = strings.Trim(path, "/")
	if path == "" {
		return -1
	}
	if i, ok := t.index[ItemID(path)]; ok {
		return i
	}

	segs := strings.Split(path, "/")
	parent := -1
	prefix := ""
	idx := -1
	for _, seg := range segs {
		if prefix == "" {
			prefix = seg
		} else {
			prefix = prefix + "/" + seg
		}
		id := ItemID(prefix)
		if i, ok := t.index[id]; ok {
			parent = i
			idx = i
			continue
		}
		t.nodes = append(t.nodes, TreeNode{ID: id, Kind: kind, Name: seg, Parent: parent})
		idx = len(t.nodes) - 1
		t.index[id] = idx
		if parent < 0 {
			t.roots = append(t.roots, idx)
			t.sortSiblings(&t.roots)
		} else {
			t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
			t.sortSiblings(&t.nodes[parent].Children)
		}
		parent = idx
	}
	return idx
}

// AddCount bumps the direct note count for path's node.
func (t *Tree) AddCount(path string, n int) {
	if i, ok := t.index[ItemID(strings.Trim(path, "/"))]; ok {
		t.nodes[i].Count += n
	}
}

// IsExpanded reports the expansion state of id.
func (t *Tree) IsExpanded(id ItemID) bool { return t.expanded[id] }

// Toggle flips id's expansion state.
func (t *Tree) Toggle(id ItemID) { t.expanded[id] = !t.expanded[id] }

// Expand opens id.
func (t *Tree) Expand(id ItemID) { t.expanded[id] = true }

// Collapse closes id.
func (t *Tree) Collapse(id ItemID) { t.expanded[id] = false }

// ExpandAncestors opens every ancestor of path so a reveal can resolve
// the target's row. The node itself is left as-is.
func (t *Tree) ExpandAncestors(path ItemID) {
	i, ok := t.index[path]
	if !ok {
		// The target may be a note path; expand its folder chain.
		dir := string(path)
		if cut := strings.LastIndex(dir, "/"); cut >= 0 {
			t.ExpandAncestors(ItemID(dir[:cut]))
			t.Expand(ItemID(dir[:cut]))
		}
		return
	}
	for p := t.nodes[i].Parent; p >= 0; p = t.nodes[p].Parent {
		t.expanded[t.nodes[p].ID] = true
	}
}

// Flatten produces the visible tree rows via an explicit stack walk —
// children of collapsed nodes are skipped. Ordering is deterministic:
// roots and siblings are kept name-sorted on insert.
func (t *Tree) Flatten() []TreeRow {
	out := make([]TreeRow, 0, len(t.nodes))

	type frame struct {
		node  int
		depth int
	}
	stack := make([]frame, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{t.roots[i], 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[f.node]
		expanded := t.expanded[n.ID]
		out = append(out, TreeRow{
			Node:        f.node,
			Depth:       f.depth,
			HasChildren: len(n.Children) > 0,
			Expanded:    expanded,
		})
		if !expanded {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n.Children[i], f.depth + 1})
		}
	}
	return out
}

func (t *Tree) sortSiblings(ids *[]int) {
	sort.Slice(*ids, func(a, b int) bool {
		return strings.ToLower(t.nodes[(*ids)[a]].Name) < strings.ToLower(t.nodes[(*ids)[b]].Name)
	})
}
