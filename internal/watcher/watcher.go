// Package watcher monitors the vault directory tree for note changes
// and notifies the TUI to refresh. The whole vault is watched
// recursively: note vaults are small (thousands of files, not hundreds
// of thousands), so a watch per directory is cheap, and it means edits
// made by external editors show up without a manual refresh.
//
// Newly created directories are added to the watch set as their create
// events arrive, so notes written into fresh folders are still seen.
package watcher

import (
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects relevant vault changes.
type Event struct{}

// Watch monitors the vault rooted at root and sends Event values on the
// returned channel. Rapid bursts (an editor writing temp files, a sync
// client updating many notes) are coalesced via the debounce window.
//
// Call the returned stop function to tear down the watcher.
func Watch(root string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch every directory under the root, skipping hidden ones
	// (.notenav state, .git, sync-client metadata).
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree: watch what we can
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		_ = w.Add(path)
		return nil
	})
	if walkErr != nil {
		_ = w.Close()
		return nil, nil, walkErr
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// jitterRange adds randomness to the debounce so two instances
	// watching the same vault don't rescan at the same instant.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(root, ev.Name) {
					continue
				}
				// A new directory needs its own watch before notes
				// inside it produce events.
				if ev.Op.Has(fsnotify.Create) {
					if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
						_ = w.Add(ev.Name)
					}
				}
				jitter := time.Duration(rand.Int64N(int64(jitterRange) + 1))
				d := debounce + jitter
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore returns true for events that should not trigger a rescan.
// Hidden-segment checks run on the vault-relative path so a vault that
// itself lives under a hidden directory still gets events.
func shouldIgnore(root, path string) bool {
	base := filepath.Base(path)

	// Editor swap and atomic-save temp files. Editors write these on
	// every keystroke with autosave on; refreshing on them would make
	// the list churn while the user types.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") ||
		strings.HasSuffix(base, ".tmp") {
		return true
	}

	// Hidden files and anything inside hidden directories (state dir,
	// sync-client metadata).
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}

	return false
}
