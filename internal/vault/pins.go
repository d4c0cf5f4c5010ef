package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"notenav/internal/nav"
)

const pinsFileName = "pins.yaml"

// pinsFile is the on-disk shape: a plain list of vault-relative paths.
type pinsFile struct {
	Pinned []string `yaml:"pinned"`
}

// Pins is the persistent pinned-note set, stored inside the vault at
// .notenav/pins.yaml so pins travel with the notes.
type Pins struct {
	path string

	mu  sync.Mutex
	set map[nav.ItemID]bool
}

// LoadPins reads the pin set for the vault at root. A missing file is
// an empty set, not an error.
func LoadPins(root string) (*Pins, error) {
	p := &Pins{
		path: filepath.Join(root, metaDirName, pinsFileName),
		set:  make(map[nav.ItemID]bool),
	}
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pins: %w", err)
	}
	var f pinsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing pins: %w", err)
	}
	for _, id := range f.Pinned {
		p.set[nav.ItemID(id)] = true
	}
	return p, nil
}

// IsPinned reports whether id is pinned.
func (p *Pins) IsPinned(id nav.ItemID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.set[id]
}

// Set returns a snapshot of the pin set for row building.
func (p *Pins) Set() map[nav.ItemID]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[nav.ItemID]bool, len(p.set))
	for id := range p.set {
		out[id] = true
	}
	return out
}

// Toggle flips id's pinned state and persists. Returns the new state.
func (p *Pins) Toggle(id nav.ItemID) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.set[id] {
		delete(p.set, id)
	} else {
		p.set[id] = true
	}
	return p.set[id], p.save()
}

// Remove drops ids from the pin set (notes were deleted) and persists
// when anything changed.
func (p *Pins) Remove(ids ...nav.ItemID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	changed := false
	for _, id := range ids {
		if p.set[id] {
			delete(p.set, id)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return p.save()
}

// save writes the set. Caller holds the lock.
func (p *Pins) save() error {
	ids := make([]string, 0, len(p.set))
	for id := range p.set {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	data, err := yaml.Marshal(pinsFile{Pinned: ids})
	if err != nil {
		return fmt.Errorf("encoding pins: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("writing pins: %w", err)
	}
	return nil
}
