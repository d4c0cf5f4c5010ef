package vault

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"notenav/internal/nav"
)

// testVault materializes a small vault in a temp dir.
func testVault(t *testing.T) *FSService {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"inbox.md":             "# Inbox\n\nloose note #inbox\n",
		"work/plan.md":         "---\ntitle: Plan\ntags: [work/active]\n---\n\ncontent\n",
		"work/sub/deep.md":     "# Deep\n\nnested #work\n",
		"personal/journal.md":  "# Journal\n",
		".notenav/pins.yaml":   "pinned: []\n",
		".obsidian/ignored.md": "# Hidden\n",
		"work/attachment.txt":  "not a note",
		"personal/IMG_NOTE.MD": "# Caps\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	svc, err := NewFSService(root)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func idSet(refs []nav.ItemRef) map[nav.ItemID]bool {
	out := make(map[nav.ItemID]bool, len(refs))
	for _, r := range refs {
		out[r.ID] = true
	}
	return out
}

func TestScanAllSkipsHiddenAndNonMarkdown(t *testing.T) {
	svc := testVault(t)
	refs, err := svc.ScanAll()
	if err != nil {
		t.Fatal(err)
	}
	got := idSet(refs)
	if len(got) != 5 {
		t.Fatalf("scanned %d notes: %v", len(got), got)
	}
	if got[".obsidian/ignored.md"] {
		t.Fatal("dot-directory note was scanned")
	}
	if got["work/attachment.txt"] {
		t.Fatal("non-markdown file was scanned")
	}
	if !got["personal/IMG_NOTE.MD"] {
		t.Fatal("uppercase .MD extension was skipped")
	}
}

func TestNotesRecursion(t *testing.T) {
	svc := testVault(t)

	direct, err := svc.Notes("work", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(direct) != 1 || direct[0].ID != "work/plan.md" {
		t.Fatalf("direct notes = %v", idSet(direct))
	}

	all, err := svc.Notes("work", true)
	if err != nil {
		t.Fatal(err)
	}
	got := idSet(all)
	if len(got) != 2 || !got["work/plan.md"] || !got["work/sub/deep.md"] {
		t.Fatalf("recursive notes = %v", got)
	}
}

func TestNotesByTagMatchesSubTags(t *testing.T) {
	svc := testVault(t)
	refs, err := svc.NotesByTag("work")
	if err != nil {
		t.Fatal(err)
	}
	got := idSet(refs)
	// "work" matches both the literal tag and "work/active".
	if len(got) != 2 || !got["work/plan.md"] || !got["work/sub/deep.md"] {
		t.Fatalf("notes by tag = %v", got)
	}
}

func TestFoldersAndTags(t *testing.T) {
	svc := testVault(t)

	folders, err := svc.Folders()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"personal", "work", "work/sub"}
	if len(folders) != len(want) {
		t.Fatalf("folders = %v, want %v", folders, want)
	}
	for i := range want {
		if folders[i] != want[i] {
			t.Fatalf("folders = %v, want %v", folders, want)
		}
	}

	tags, err := svc.Tags()
	if err != nil {
		t.Fatal(err)
	}
	if tags["work"] != 1 || tags["work/active"] != 1 || tags["inbox"] != 1 {
		t.Fatalf("tags = %v", tags)
	}
}

func TestCreateAvoidsCollisions(t *testing.T) {
	svc := testVault(t)

	first, err := svc.Create("drafts", "My Idea")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != "drafts/my-idea.md" || first.Title != "My Idea" {
		t.Fatalf("created = %+v", first)
	}

	second, err := svc.Create("drafts", "My Idea")
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != "drafts/my-idea-2.md" {
		t.Fatalf("collision id = %s", second.ID)
	}
}

func TestDeleteMoveRename(t *testing.T) {
	svc := testVault(t)

	if err := svc.Delete("inbox.md"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Read("inbox.md"); err == nil {
		t.Fatal("deleted note still readable")
	}

	moved, err := svc.Move("work/plan.md", "archive")
	if err != nil {
		t.Fatal(err)
	}
	if moved != "archive/plan.md" {
		t.Fatalf("moved id = %s", moved)
	}

	renamed, err := svc.Rename(moved, "Old Plan")
	if err != nil {
		t.Fatal(err)
	}
	if renamed != "archive/old-plan.md" {
		t.Fatalf("renamed id = %s", renamed)
	}
	if _, err := svc.Read(renamed); err != nil {
		t.Fatalf("renamed note unreadable: %v", err)
	}
}

func TestRenameCollisionKeepsBothNotes(t *testing.T) {
	svc := testVault(t)

	alpha, err := svc.Create("", "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	beta, err := svc.Create("", "Beta")
	if err != nil {
		t.Fatal(err)
	}

	renamed, err := svc.Rename(beta.ID, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if renamed != "alpha-2.md" {
		t.Fatalf("renamed id = %s", renamed)
	}

	content, err := svc.Read(alpha.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "# Alpha") {
		t.Fatalf("alpha.md was overwritten: %q", content)
	}
	if got, err := svc.Read(renamed); err != nil || !strings.Contains(got, "# Beta") {
		t.Fatalf("renamed note = %q, err %v", got, err)
	}
}

func TestRenameToOwnNameIsNoOp(t *testing.T) {
	svc := testVault(t)

	note, err := svc.Create("", "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	renamed, err := svc.Rename(note.ID, "Alpha")
	if err != nil {
		t.Fatal(err)
	}
	if renamed != note.ID {
		t.Fatalf("renamed id = %s, want %s", renamed, note.ID)
	}
}

func TestMoveCollisionKeepsBothNotes(t *testing.T) {
	svc := testVault(t)

	if _, err := svc.Create("archive", "Plan"); err != nil {
		t.Fatal(err)
	}

	moved, err := svc.Move("work/plan.md", "archive")
	if err != nil {
		t.Fatal(err)
	}
	if moved != "archive/plan-2.md" {
		t.Fatalf("moved id = %s", moved)
	}
	if _, err := svc.Read("archive/plan.md"); err != nil {
		t.Fatalf("existing note lost: %v", err)
	}
}

func TestDeleteMissingNoteFails(t *testing.T) {
	svc := testVault(t)
	if err := svc.Delete("nope.md"); err == nil {
		t.Fatal("expected an error deleting a missing note")
	}
}
