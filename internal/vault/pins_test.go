package vault

import (
	"testing"
)

func TestPinsRoundTrip(t *testing.T) {
	root := t.TempDir()

	p, err := LoadPins(root)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsPinned("a.md") {
		t.Fatal("fresh pin set is not empty")
	}

	on, err := p.Toggle("a.md")
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal("toggle on reported off")
	}
	if _, err := p.Toggle("b.md"); err != nil {
		t.Fatal(err)
	}

	// Reload from disk: pins persist.
	p2, err := LoadPins(root)
	if err != nil {
		t.Fatal(err)
	}
	if !p2.IsPinned("a.md") || !p2.IsPinned("b.md") {
		t.Fatalf("reloaded pins = %v", p2.Set())
	}

	off, err := p2.Toggle("a.md")
	if err != nil {
		t.Fatal(err)
	}
	if off {
		t.Fatal("toggle off reported on")
	}

	p3, err := LoadPins(root)
	if err != nil {
		t.Fatal(err)
	}
	if p3.IsPinned("a.md") || !p3.IsPinned("b.md") {
		t.Fatalf("pins after unpin = %v", p3.Set())
	}
}

func TestPinsRemove(t *testing.T) {
	root := t.TempDir()
	p, err := LoadPins(root)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Toggle("a.md"); err != nil {
		t.Fatal(err)
	}

	if err := p.Remove("a.md", "never-pinned.md"); err != nil {
		t.Fatal(err)
	}
	if p.IsPinned("a.md") {
		t.Fatal("removed pin survived")
	}

	// Removing nothing is a no-op, not a write error.
	if err := p.Remove("x.md"); err != nil {
		t.Fatal(err)
	}
}
