package nav

import "testing"

// pane bundles a virtualizer with a row index for reconciler tests:
// 20 uniform rows of 2 lines in a 10-line viewport.
func pane(attached bool) (*Virtualizer, map[ItemID]int) {
	v := NewVirtualizer(20, func(int) int { return 2 })
	v.SetViewport(10, 0)
	if attached {
		v.Attach()
	}
	index := make(map[ItemID]int, 20)
	for i := 0; i < 20; i++ {
		index[ItemID(rune('a'+i))] = i
	}
	return v, index
}

func TestRequestScrollExecutesWhenVisible(t *testing.T) {
	v, index := pane(true)
	r := NewReconciler(true)

	r.RequestScroll("k", AlignStart, false, v, index)
	if r.Pending() {
		t.Fatal("intent should be consumed immediately on a visible pane")
	}
	if v.Offset() != 20 {
		t.Fatalf("offset = %d, want 20 (row 10 start)", v.Offset())
	}
}

func TestIntentSurvivesHiddenPane(t *testing.T) {
	v, index := pane(false)
	r := NewReconciler(false)

	r.RequestScroll("k", AlignStart, false, v, index)
	if !r.Pending() {
		t.Fatal("hidden pane must hold the intent")
	}
	if v.Offset() != 0 {
		t.Fatalf("hidden pane scrolled to %d", v.Offset())
	}

	// Several reconcile passes while hidden change nothing.
	r.Reconcile(v, index)
	r.Reconcile(v, index)
	if !r.Pending() || v.Offset() != 0 {
		t.Fatal("hidden reconcile consumed or executed the intent")
	}

	// Becoming visible consumes it.
	v.Attach()
	r.SetVisible(true)
	r.Reconcile(v, index)
	if r.Pending() {
		t.Fatal("intent not consumed on the hidden-to-visible edge")
	}
	if v.Offset() != 20 {
		t.Fatalf("offset = %d, want 20", v.Offset())
	}
}

func TestIntentHeldWhileDetached(t *testing.T) {
	v, index := pane(false)
	r := NewReconciler(true)

	// Visible but the scroll container is not attached yet: the intent
	// stays pending instead of being dropped.
	r.RequestScroll("k", AlignStart, false, v, index)
	if !r.Pending() {
		t.Fatal("detached execution must keep the intent")
	}

	v.Attach()
	r.SetVisible(false)
	r.Reconcile(v, index)
	r.SetVisible(true)
	r.Reconcile(v, index)
	if r.Pending() || v.Offset() != 20 {
		t.Fatalf("pending=%v offset=%d after reattach", r.Pending(), v.Offset())
	}
}

func TestLastWriterWins(t *testing.T) {
	v, index := pane(false)
	r := NewReconciler(false)

	r.RequestScroll("e", AlignStart, false, v, index)
	r.RequestScrollTop(v, index)
	r.RequestScroll("k", AlignStart, false, v, index)

	v.Attach()
	r.SetVisible(true)
	r.Reconcile(v, index)
	if v.Offset() != 20 {
		t.Fatalf("offset = %d, want the last request's target 20", v.Offset())
	}
}

func TestNonStickyMissFallsBackToTop(t *testing.T) {
	v, index := pane(true)
	v.ScrollToOffset(14)
	r := NewReconciler(true)

	r.RequestScroll("missing", AlignCenter, false, v, index)
	if r.Pending() {
		t.Fatal("non-sticky miss should be consumed")
	}
	if v.Offset() != 0 {
		t.Fatalf("offset = %d, want fallback to top", v.Offset())
	}
}

func TestStickyMissWaitsForRebuild(t *testing.T) {
	v, index := pane(true)
	r := NewReconciler(true)

	expanded := []ItemID{}
	expand := func(id ItemID) { expanded = append(expanded, id) }

	r.Reveal("zz", expand, v, index)
	if len(expanded) != 1 || expanded[0] != "zz" {
		t.Fatalf("expand callback not invoked: %v", expanded)
	}
	if !r.Pending() {
		t.Fatal("sticky miss must keep the intent pending")
	}
	if v.Offset() != 0 {
		t.Fatalf("sticky miss scrolled to %d", v.Offset())
	}

	// The rebuild flushes: the item now resolves to a row.
	index["zz"] = 15
	r.Reconcile(v, index)
	if r.Pending() {
		t.Fatal("sticky intent not consumed once resolvable")
	}
	// Row 15 spans lines 30-31; minimal scroll brings its end to the
	// bottom edge.
	if v.Offset() != 22 {
		t.Fatalf("offset = %d, want 22", v.Offset())
	}
}

func TestCollectionChanged(t *testing.T) {
	v, index := pane(true)
	v.ScrollToOffset(18)
	r := NewReconciler(true)

	// Selection survives the switch: center on it.
	r.CollectionChanged("k", v, index)
	if v.Offset() != 16 {
		t.Fatalf("offset = %d, want 16 (row 10 centered)", v.Offset())
	}

	// No surviving selection: back to the top.
	v.ScrollToOffset(18)
	r.CollectionChanged("", v, index)
	if v.Offset() != 0 {
		t.Fatalf("offset = %d, want 0", v.Offset())
	}
}

func TestReconcileRemeasuresBeforeScrolling(t *testing.T) {
	heights := make([]int, 20)
	for i := range heights {
		heights[i] = 2
	}
	v := NewVirtualizer(20, func(i int) int { return heights[i] })
	v.SetViewport(10, 0)
	index := map[ItemID]int{"j": 9}

	r := NewReconciler(false)
	r.RequestScroll("j", AlignStart, false, v, index)

	// Rows above the target grow while the pane is hidden. Executing with
	// stale measurements would land at line 18; the reconciler remeasures
	// first and lands at 27.
	for i := 0; i < 9; i++ {
		heights[i] = 3
	}
	v.Attach()
	r.SetVisible(true)
	r.Reconcile(v, index)
	if v.Offset() != 27 {
		t.Fatalf("offset = %d, want 27 (post-remeasure row start)", v.Offset())
	}
}

func TestInitiallyVisibleNoSpuriousEdge(t *testing.T) {
	v, index := pane(true)
	r := NewReconciler(true)

	// A consumed intent must not re-fire on later passes.
	r.RequestScroll("k", AlignStart, false, v, index)
	v.ScrollToOffset(4)
	r.Reconcile(v, index)
	if v.Offset() != 4 {
		t.Fatalf("reconcile with no pending intent moved the window to %d", v.Offset())
	}
}
