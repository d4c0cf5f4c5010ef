package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"notenav/internal/nav"
)

// metaDirName holds navigator state (pins) inside the vault. It is
// excluded from scans along with every other dot-directory.
const metaDirName = ".notenav"

// Service is the vault contract the navigator depends on. Views and the
// app model never touch the filesystem directly, which keeps them
// testable against in-memory implementations.
type Service interface {
	// ── Vault info ───────────────────────────────────────────────────
	Root() string

	// ── Reads ────────────────────────────────────────────────────────
	ScanAll() ([]nav.ItemRef, error)
	Notes(folder string, recursive bool) ([]nav.ItemRef, error)
	NotesByTag(tag string) ([]nav.ItemRef, error)
	Folders() ([]string, error)
	Tags() (map[string]int, error)
	Read(id nav.ItemID) (string, error)

	// ── Writes ───────────────────────────────────────────────────────
	Create(folder, title string) (nav.ItemRef, error)
	Delete(ids ...nav.ItemID) error
	Move(id nav.ItemID, folder string) (nav.ItemID, error)
	Rename(id nav.ItemID, title string) (nav.ItemID, error)
}

// FSService reads notes straight off the filesystem. All ids are
// vault-relative slash paths; the service owns the translation to OS
// paths.
type FSService struct {
	root string
}

// Compile-time check.
var _ Service = (*FSService)(nil)

// NewFSService opens the vault rooted at path.
func NewFSService(path string) (*FSService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving vault path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault path %s is not a directory", abs)
	}
	return &FSService{root: abs}, nil
}

// Root returns the absolute vault root.
func (s *FSService) Root() string { return s.root }

// ScanAll walks the whole vault and parses every markdown note.
// Dot-directories (including the vault's own state dir) are skipped.
func (s *FSService) ScanAll() ([]nav.ItemRef, error) {
	return s.scan(".")
}

// Notes returns the notes under folder. Non-recursive listings include
// only the folder's direct children.
func (s *FSService) Notes(folder string, recursive bool) ([]nav.ItemRef, error) {
	if folder == "" {
		folder = "."
	}
	refs, err := s.scan(folder)
	if err != nil {
		return nil, err
	}
	if recursive {
		return refs, nil
	}
	want := folder
	if want == "." {
		want = ""
	}
	direct := refs[:0]
	for _, r := range refs {
		if r.Folder == want {
			direct = append(direct, r)
		}
	}
	return direct, nil
}

// NotesByTag returns every note carrying the tag (or a sub-tag of it:
// "work" matches "work/active").
func (s *FSService) NotesByTag(tag string) ([]nav.ItemRef, error) {
	tag = normalizeTag(tag)
	all, err := s.ScanAll()
	if err != nil {
		return nil, err
	}
	out := make([]nav.ItemRef, 0, len(all))
	for _, r := range all {
		for _, t := range r.Tags {
			if t == tag || strings.HasPrefix(t, tag+"/") {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

// Folders lists every directory under the root, vault-relative, sorted.
func (s *FSService) Folders() ([]string, error) {
	var out []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDir(d.Name()) && path != s.root {
			return filepath.SkipDir
		}
		if path == s.root {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

// Tags aggregates tag usage counts across the vault.
func (s *FSService) Tags() (map[string]int, error) {
	all, err := s.ScanAll()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, r := range all {
		for _, t := range r.Tags {
			counts[t]++
		}
	}
	return counts, nil
}

// Read returns a note's full markdown source.
func (s *FSService) Read(id nav.ItemID) (string, error) {
	data, err := os.ReadFile(s.abs(id))
	if err != nil {
		return "", fmt.Errorf("reading note %s: %w", id, err)
	}
	return string(data), nil
}

// Create writes a new note skeleton and returns its ref. The filename
// is derived from the title; collisions get a numeric suffix.
func (s *FSService) Create(folder, title string) (nav.ItemRef, error) {
	if title == "" {
		title = "Untitled"
	}
	dir := filepath.Join(s.root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nav.ItemRef{}, fmt.Errorf("creating folder %s: %w", folder, err)
	}

	path := filepath.Join(dir, availableName(dir, slugify(title)))
	content := fmt.Sprintf("---\ntitle: %s\n---\n\n# %s\n", title, title)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nav.ItemRef{}, fmt.Errorf("creating note: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nav.ItemRef{}, fmt.Errorf("creating note: %w", err)
	}
	id := s.rel(path)
	return ParseNote(id, []byte(content), info.ModTime()), nil
}

// Delete removes the given notes. It stops at the first failure.
func (s *FSService) Delete(ids ...nav.ItemID) error {
	for _, id := range ids {
		if err := os.Remove(s.abs(id)); err != nil {
			return fmt.Errorf("deleting note %s: %w", id, err)
		}
	}
	return nil
}

// Move relocates a note into another folder, returning its new id.
// A name clash in the destination gets a numeric suffix, same as
// Create — an existing note is never overwritten.
func (s *FSService) Move(id nav.ItemID, folder string) (nav.ItemID, error) {
	src := s.abs(id)
	dir := filepath.Join(s.root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating folder %s: %w", folder, err)
	}
	base := filepath.Base(src)
	if filepath.Join(dir, base) == src {
		return id, nil
	}
	dst := filepath.Join(dir, availableName(dir, strings.TrimSuffix(base, filepath.Ext(base))))
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("moving note %s: %w", id, err)
	}
	return s.rel(dst), nil
}

// Rename gives the note a new title-derived filename in place. The
// collision rule matches Create and Move: a taken name gets a numeric
// suffix rather than replacing the other note.
func (s *FSService) Rename(id nav.ItemID, title string) (nav.ItemID, error) {
	src := s.abs(id)
	dir := filepath.Dir(src)
	if filepath.Join(dir, slugify(title)+".md") == src {
		return id, nil
	}
	dst := filepath.Join(dir, availableName(dir, slugify(title)))
	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("renaming note %s: %w", id, err)
	}
	return s.rel(dst), nil
}

// ── Internals ───────────────────────────────────────────────────────────────

// scan parses every note under the vault-relative folder.
func (s *FSService) scan(folder string) ([]nav.ItemRef, error) {
	start := filepath.Join(s.root, filepath.FromSlash(folder))
	var refs []nav.ItemRef
	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name()) && path != start {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		refs = append(refs, ParseNote(s.rel(path), data, info.ModTime()))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", folder, err)
	}
	return refs, nil
}

func (s *FSService) abs(id nav.ItemID) string {
	return filepath.Join(s.root, filepath.FromSlash(string(id)))
}

func (s *FSService) rel(path string) nav.ItemID {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return nav.ItemID(filepath.ToSlash(path))
	}
	return nav.ItemID(filepath.ToSlash(rel))
}

// availableName returns "stem.md", or the first "stem-N.md" (N >= 2)
// that does not already exist in dir.
func availableName(dir, stem string) string {
	name := stem + ".md"
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s-%d.md", stem, i)
	}
}

// skipDir filters hidden and state directories out of scans.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// slugify converts a title to a filesystem-safe stem.
func slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		out = "untitled"
	}
	return out
}
