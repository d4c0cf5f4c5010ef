package nav

import (
	"testing"
	"time"
)

// listOf builds a plain row list (no headers) over the given ids.
func listOf(idStrs ...string) []Row {
	rows := make([]Row, 0, len(idStrs)+1)
	for _, s := range idStrs {
		rows = append(rows, Row{Kind: RowItem, Item: ItemRef{ID: ItemID(s), Title: s}})
	}
	rows = append(rows, Row{Kind: RowSpacer, Spacer: SpacerBottom})
	return rows
}

func TestSelectableOrderSkipsHeaders(t *testing.T) {
	rows := []Row{
		{Kind: RowHeader, Label: "Pinned"},
		{Kind: RowItem, Item: ItemRef{ID: "a"}},
		{Kind: RowHeader, Label: "Today"},
		{Kind: RowItem, Item: ItemRef{ID: "b"}},
		{Kind: RowSpacer, Spacer: SpacerBottom},
	}
	order := SelectableOrder(rows)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
}

func TestModifierClickToggles(t *testing.T) {
	rows := listOf("a", "b", "c")
	s := NewSelection()
	g := NewGestures(s)

	g.Click("a")
	if !g.ModifierClick(rows, "c") {
		t.Fatal("modifier click add refused")
	}
	wantSelected(t, s, ids("a", "b", "c"), "a", "c")

	// Removing down to one is allowed, removing the last is not.
	if !g.ModifierClick(rows, "a") {
		t.Fatal("modifier click remove refused")
	}
	if g.ModifierClick(rows, "c") {
		t.Fatal("removing the last selected item must be refused")
	}
	wantSelected(t, s, ids("a", "b", "c"), "c")
	checkInvariant(t, s)
}

func TestShiftClickRange(t *testing.T) {
	rows := listOf("a", "b", "c", "d", "e")
	order := ids("a", "b", "c", "d", "e")
	s := NewSelection()
	g := NewGestures(s)

	g.Click("b")
	g.ShiftClick(rows, "d")
	wantSelected(t, s, order, "b", "c", "d")

	// A second shift-click from the same anchor accumulates.
	g.ShiftClick(rows, "a")
	wantSelected(t, s, order, "a", "b", "c", "d")
	checkInvariant(t, s)
}

func TestExtendStepGrows(t *testing.T) {
	rows := listOf("a", "b", "c", "d")
	order := ids("a", "b", "c", "d")
	s := NewSelection()
	g := NewGestures(s)

	g.Click("b")
	g.ExtendStep(rows, 1)
	g.ExtendStep(rows, 1)
	wantSelected(t, s, order, "b", "c", "d")
	cur, _ := s.Cursor()
	if cur != "d" {
		t.Fatalf("cursor = %s, want d", cur)
	}
}

func TestExtendStepShrinksTowardAnchor(t *testing.T) {
	rows := listOf("a", "b", "c", "d", "e")
	order := ids("a", "b", "c", "d", "e")
	s := NewSelection()
	g := NewGestures(s)

	// Anchor on b, extend down to d: {b,c,d}, cursor d.
	g.Click("b")
	g.ShiftClick(rows, "d")

	// Stepping back toward the anchor shrinks from the trailing edge.
	g.ExtendStep(rows, -1)
	wantSelected(t, s, order, "b", "c")
	cur, _ := s.Cursor()
	if cur != "c" {
		t.Fatalf("cursor = %s, want c", cur)
	}

	g.ExtendStep(rows, -1)
	wantSelected(t, s, order, "b")
	checkInvariant(t, s)
}

func TestExtendStepJumpsOverSelectedRun(t *testing.T) {
	rows := listOf("a", "b", "c", "d", "e")
	order := ids("a", "b", "c", "d", "e")
	s := NewSelection()
	g := NewGestures(s)

	// A disjoint selected run ahead of the cursor, no anchor.
	s.Select("b")
	s.Select("c")
	s.Select("d")
	s.MoveCursor("b")

	// Stepping into the run jumps to its far end without deselecting.
	g.ExtendStep(rows, 1)
	wantSelected(t, s, order, "b", "c", "d")
	cur, _ := s.Cursor()
	if cur != "d" {
		t.Fatalf("cursor = %s, want d (far end of the run)", cur)
	}

	// The next step extends past the block.
	g.ExtendStep(rows, 1)
	wantSelected(t, s, order, "b", "c", "d", "e")
	checkInvariant(t, s)
}

func TestExtendStepNoCursorLandsOnEdge(t *testing.T) {
	rows := listOf("a", "b", "c")
	s := NewSelection()
	g := NewGestures(s)

	g.ExtendStep(rows, 1)
	cur, _ := s.Cursor()
	if cur != "a" {
		t.Fatalf("down with no cursor = %s, want a", cur)
	}

	s.Reset()
	g.ExtendStep(rows, -1)
	cur, _ = s.Cursor()
	if cur != "c" {
		t.Fatalf("up with no cursor = %s, want c", cur)
	}
}

func TestExtendStepStopsAtEdges(t *testing.T) {
	rows := listOf("a", "b")
	order := ids("a", "b")
	s := NewSelection()
	g := NewGestures(s)

	g.Click("b")
	g.ExtendStep(rows, 1)
	wantSelected(t, s, order, "b")
	cur, _ := s.Cursor()
	if cur != "b" {
		t.Fatalf("cursor walked off the end: %s", cur)
	}
}

func TestMoveToEdge(t *testing.T) {
	rows := listOf("a", "b", "c", "d")
	order := ids("a", "b", "c", "d")
	s := NewSelection()
	g := NewGestures(s)

	g.Click("c")
	g.MoveToEdge(rows, true, false)
	cur, _ := s.Cursor()
	if cur != "d" || s.Count() != 1 {
		t.Fatalf("plain edge move: cursor=%s count=%d", cur, s.Count())
	}

	g.MoveToEdge(rows, false, true)
	wantSelected(t, s, order, "a", "b", "c", "d")
	cur, _ = s.Cursor()
	if cur != "a" {
		t.Fatalf("extend-home cursor = %s, want a", cur)
	}
	checkInvariant(t, s)
}

// Extend-to-home across a pinned section: headers must not break the
// range, and every note between cursor and top joins the selection.
func TestExtendHomeAcrossSections(t *testing.T) {
	now := time.Now()
	items := []ItemRef{
		{ID: "a.md", Title: "Alpha", Modified: now},
		{ID: "b.md", Title: "Beta", Modified: now.Add(-time.Minute)},
		{ID: "c.md", Title: "Gamma", Modified: now.Add(-2 * time.Minute)},
	}
	rows := Build(items, map[ItemID]bool{"a.md": true}, SortOption{Field: SortByModified, Descending: true}, GroupByDate)
	order := SelectableOrder(rows)

	s := NewSelection()
	g := NewGestures(s)
	g.Click("c.md")
	g.MoveToEdge(rows, false, true)

	wantSelected(t, s, order, "a.md", "b.md", "c.md")
	cur, _ := s.Cursor()
	if cur != "a.md" {
		t.Fatalf("cursor = %s, want a.md", cur)
	}
}

func TestSelectAll(t *testing.T) {
	rows := listOf("a", "b", "c")
	order := ids("a", "b", "c")
	s := NewSelection()
	g := NewGestures(s)

	g.Click("b")
	g.SelectAll(rows)
	wantSelected(t, s, order, "a", "b", "c")
	cur, _ := s.Cursor()
	if cur != "b" {
		t.Fatalf("select-all moved the cursor: %s", cur)
	}

	// With no cursor, select-all lands on the first row.
	s.Reset()
	g.SelectAll(rows)
	cur, _ = s.Cursor()
	if cur != "a" {
		t.Fatalf("select-all with no cursor: %s, want a", cur)
	}
	checkInvariant(t, s)
}
