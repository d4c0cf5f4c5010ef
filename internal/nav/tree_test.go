package nav

import "testing"

func flatIDs(t *Tree) []ItemID {
	rows := t.Flatten()
	out := make([]ItemID, len(rows))
	for i, r := range rows {
		out[i] = t.Node(r.Node).ID
	}
	return out
}

func TestInsertCreatesAncestors(t *testing.T) {
	tr := NewTree()
	idx := tr.Insert(NodeFolder, "projects/go/notenav")
	if idx < 0 {
		t.Fatal("insert returned no index")
	}
	if tr.Len() != 3 {
		t.Fatalf("node count = %d, want 3 (two ancestors created)", tr.Len())
	}
	if _, ok := tr.Lookup("projects"); !ok {
		t.Fatal("root ancestor missing")
	}
	if _, ok := tr.Lookup("projects/go"); !ok {
		t.Fatal("mid ancestor missing")
	}
	n := tr.Node(idx)
	if n.Name != "notenav" || n.ID != "projects/go/notenav" {
		t.Fatalf("leaf node = %+v", n)
	}

	// Reinserting is a no-op returning the existing index.
	if again := tr.Insert(NodeFolder, "projects/go/notenav"); again != idx {
		t.Fatalf("reinsert returned %d, want %d", again, idx)
	}
	if tr.Len() != 3 {
		t.Fatalf("reinsert grew the arena to %d", tr.Len())
	}
}

func TestFlattenSortedAndCollapsed(t *testing.T) {
	tr := NewTree()
	tr.Insert(NodeFolder, "work/reports")
	tr.Insert(NodeFolder, "archive")
	tr.Insert(NodeFolder, "work/drafts")

	// Collapsed roots only, name-sorted.
	got := flatIDs(tr)
	if len(got) != 2 || got[0] != "archive" || got[1] != "work" {
		t.Fatalf("collapsed flatten = %v", got)
	}

	tr.Expand("work")
	got = flatIDs(tr)
	want := []ItemID{"archive", "work", "work/drafts", "work/reports"}
	if len(got) != len(want) {
		t.Fatalf("expanded flatten = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expanded flatten = %v, want %v", got, want)
		}
	}

	rows := tr.Flatten()
	if rows[1].Depth != 0 || !rows[1].HasChildren || !rows[1].Expanded {
		t.Fatalf("work row = %+v", rows[1])
	}
	if rows[2].Depth != 1 || rows[2].HasChildren {
		t.Fatalf("drafts row = %+v", rows[2])
	}
}

func TestToggleExpansion(t *testing.T) {
	tr := NewTree()
	tr.Insert(NodeFolder, "a/b")
	tr.Toggle("a")
	if !tr.IsExpanded("a") {
		t.Fatal("toggle did not expand")
	}
	tr.Toggle("a")
	if tr.IsExpanded("a") {
		t.Fatal("toggle did not collapse")
	}
}

func TestExpandAncestors(t *testing.T) {
	tr := NewTree()
	tr.Insert(NodeFolder, "a/b/c")

	tr.ExpandAncestors("a/b/c")
	if !tr.IsExpanded("a") || !tr.IsExpanded("a/b") {
		t.Fatal("ancestors not expanded")
	}
	if tr.IsExpanded("a/b/c") {
		t.Fatal("the target itself must stay as-is")
	}

	// A note path below a known folder expands the folder chain too.
	tr2 := NewTree()
	tr2.Insert(NodeFolder, "x/y")
	tr2.ExpandAncestors("x/y/note.md")
	if !tr2.IsExpanded("x") || !tr2.IsExpanded("x/y") {
		t.Fatal("note-path reveal did not open the folder chain")
	}
}

func TestTagTree(t *testing.T) {
	tr := NewTree()
	tr.Insert(NodeTag, "#work/active")
	tr.Insert(NodeTag, "#home")
	tr.AddCount("#work/active", 3)

	i, ok := tr.Lookup("#work/active")
	if !ok {
		t.Fatal("tag node missing")
	}
	if n := tr.Node(i); n.Kind != NodeTag || n.Count != 3 {
		t.Fatalf("tag node = %+v", n)
	}

	got := flatIDs(tr)
	if len(got) != 2 || got[0] != "#home" || got[1] != "#work" {
		t.Fatalf("tag roots = %v", got)
	}
}
