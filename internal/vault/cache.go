package vault

import (
	"fmt"
	"sync"
	"time"

	"notenav/internal/nav"
)

// CachedService wraps a Service with a TTL cache for the scan-shaped
// reads. A single refresh cycle asks for overlapping data (the list
// pane, the tree pane, and the status bar all want scan results);
// without caching one refresh re-parses the vault several times.
//
// Write operations invalidate the cache so the next read is fresh. The
// watcher calls Invalidate directly when the vault changes on disk.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// maxCacheEntries caps the cache. When exceeded, expired entries are
// evicted first; a still-full cache is flushed entirely.
const maxCacheEntries = 64

type cacheEntry struct {
	val    interface{}
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache.
// Recommended TTL: 1-2 seconds, long enough to cover one refresh cycle.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 16),
	}
}

// Invalidate clears all cached entries. Called after any write
// operation and by the filesystem watcher.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 16)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val interface{}, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val interface{}, err error) {
	c.mu.Lock()
	if len(c.cache) >= maxCacheEntries {
		now := time.Now()
		for k, e := range c.cache {
			if now.After(e.expiry) {
				delete(c.cache, k)
			}
		}
		if len(c.cache) >= maxCacheEntries {
			c.cache = make(map[string]cacheEntry, 16)
		}
	}
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// invalidateAndReturn is a helper for write methods.
func (c *CachedService) invalidateAndReturn(err error) error {
	if err == nil {
		c.Invalidate()
	}
	return err
}

// ── Vault info ──────────────────────────────────────────────────────────────

// Root delegates to the inner service.
func (c *CachedService) Root() string { return c.inner.Root() }

// ── Cached reads ────────────────────────────────────────────────────────────

// ScanAll delegates to the inner service (cached).
func (c *CachedService) ScanAll() ([]nav.ItemRef, error) {
	if v, ok, err := c.get("scanall"); ok {
		return v.([]nav.ItemRef), err
	}
	v, err := c.inner.ScanAll()
	c.set("scanall", v, err)
	return v, err
}

// Notes delegates to the inner service (cached per folder/mode).
func (c *CachedService) Notes(folder string, recursive bool) ([]nav.ItemRef, error) {
	key := fmt.Sprintf("notes:%s:%t", folder, recursive)
	if v, ok, err := c.get(key); ok {
		return v.([]nav.ItemRef), err
	}
	v, err := c.inner.Notes(folder, recursive)
	c.set(key, v, err)
	return v, err
}

// NotesByTag delegates to the inner service (cached per tag).
func (c *CachedService) NotesByTag(tag string) ([]nav.ItemRef, error) {
	key := "tag:" + tag
	if v, ok, err := c.get(key); ok {
		return v.([]nav.ItemRef), err
	}
	v, err := c.inner.NotesByTag(tag)
	c.set(key, v, err)
	return v, err
}

// Folders delegates to the inner service (cached).
func (c *CachedService) Folders() ([]string, error) {
	if v, ok, err := c.get("folders"); ok {
		return v.([]string), err
	}
	v, err := c.inner.Folders()
	c.set("folders", v, err)
	return v, err
}

// Tags delegates to the inner service (cached).
func (c *CachedService) Tags() (map[string]int, error) {
	if v, ok, err := c.get("tags"); ok {
		return v.(map[string]int), err
	}
	v, err := c.inner.Tags()
	c.set("tags", v, err)
	return v, err
}

// Read delegates to the inner service (not cached — content is large
// and the preview pane reads one note at a time).
func (c *CachedService) Read(id nav.ItemID) (string, error) {
	return c.inner.Read(id)
}

// ── Write operations (invalidate cache) ─────────────────────────────────────

// Create creates a note and invalidates the cache.
func (c *CachedService) Create(folder, title string) (nav.ItemRef, error) {
	ref, err := c.inner.Create(folder, title)
	if err == nil {
		c.Invalidate()
	}
	return ref, err
}

// Delete deletes notes and invalidates the cache.
func (c *CachedService) Delete(ids ...nav.ItemID) error {
	return c.invalidateAndReturn(c.inner.Delete(ids...))
}

// Move moves a note and invalidates the cache.
func (c *CachedService) Move(id nav.ItemID, folder string) (nav.ItemID, error) {
	newID, err := c.inner.Move(id, folder)
	if err == nil {
		c.Invalidate()
	}
	return newID, err
}

// Rename renames a note and invalidates the cache.
func (c *CachedService) Rename(id nav.ItemID, title string) (nav.ItemID, error) {
	newID, err := c.inner.Rename(id, title)
	if err == nil {
		c.Invalidate()
	}
	return newID, err
}
