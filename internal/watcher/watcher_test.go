package watcher

import "testing"

func TestShouldIgnore(t *testing.T) {
	root := "/home/u/.vaults/notes"
	cases := []struct {
		path string
		want bool
	}{
		{"/home/u/.vaults/notes/inbox.md", false},
		{"/home/u/.vaults/notes/work/plan.md", false},
		{"/home/u/.vaults/notes/.notenav/pins.yaml", true},
		{"/home/u/.vaults/notes/.obsidian/cache", true},
		{"/home/u/.vaults/notes/work/.plan.md.swp", true},
		{"/home/u/.vaults/notes/work/plan.md~", true},
		{"/home/u/.vaults/notes/work/.#plan.md", true},
		{"/home/u/.vaults/notes/work/save.tmp", true},
	}
	for _, c := range cases {
		if got := shouldIgnore(root, c.path); got != c.want {
			t.Fatalf("shouldIgnore(%q) = %t, want %t", c.path, got, c.want)
		}
	}
}
