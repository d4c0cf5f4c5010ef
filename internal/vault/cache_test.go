package vault

import (
	"testing"
	"time"

	"notenav/internal/nav"
)

// countingService records how many scans hit the backing store.
type countingService struct {
	Service
	scans int
}

func (c *countingService) ScanAll() ([]nav.ItemRef, error) {
	c.scans++
	return []nav.ItemRef{{ID: "a.md", Title: "A"}}, nil
}

func (c *countingService) Delete(ids ...nav.ItemID) error { return nil }

func TestCachedServiceCoalescesReads(t *testing.T) {
	inner := &countingService{}
	c := NewCachedService(inner, time.Minute)

	for i := 0; i < 5; i++ {
		refs, err := c.ScanAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(refs) != 1 {
			t.Fatalf("refs = %v", refs)
		}
	}
	if inner.scans != 1 {
		t.Fatalf("inner scanned %d times, want 1", inner.scans)
	}
}

func TestCachedServiceInvalidatesOnWrite(t *testing.T) {
	inner := &countingService{}
	c := NewCachedService(inner, time.Minute)

	if _, err := c.ScanAll(); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete("a.md"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ScanAll(); err != nil {
		t.Fatal(err)
	}
	if inner.scans != 2 {
		t.Fatalf("inner scanned %d times, want 2 (write must invalidate)", inner.scans)
	}
}

func TestCachedServiceExplicitInvalidate(t *testing.T) {
	inner := &countingService{}
	c := NewCachedService(inner, time.Minute)

	if _, err := c.ScanAll(); err != nil {
		t.Fatal(err)
	}
	c.Invalidate()
	if _, err := c.ScanAll(); err != nil {
		t.Fatal(err)
	}
	if inner.scans != 2 {
		t.Fatalf("inner scanned %d times, want 2", inner.scans)
	}
}
