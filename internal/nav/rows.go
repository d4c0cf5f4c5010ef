// Package nav implements the navigator core: the flat row model the list
// pane renders, the virtualized window over it, selection state, gesture
// handling, and the scroll/visibility reconciler. Everything in this
// package is pure Go over plain data — no terminal I/O, no bubbletea
// messages — so the state machines are testable in isolation from
// rendering.
package nav

import (
	"sort"
	"strings"
	"time"
)

// ItemID is the stable identity of a navigable item: the vault-relative
// path of a note, folder, or tag. It survives row-list rebuilds and is the
// recycling key of the virtualizer.
type ItemID string

// ItemRef is one navigable note as supplied by the vault layer. The nav
// core treats it as opaque payload except for the fields that drive
// sorting, grouping, and row-height estimation.
type ItemRef struct {
	ID       ItemID
	Title    string
	Folder   string // vault-relative parent folder, "" at the root
	Created  time.Time
	Modified time.Time
	Tags     []string
	Preview  []string // extracted content lines, may be empty
	HasImage bool
}

// ── Sort and group options ──────────────────────────────────────────────────

// SortField selects the primary sort key for the note list.
type SortField int

const (
	SortByTitle SortField = iota
	SortByCreated
	SortByModified
)

// SortOption combines a sort field with a direction.
type SortOption struct {
	Field      SortField
	Descending bool
}

// GroupOption controls whether date headers are inserted between items.
type GroupOption int

const (
	GroupNone GroupOption = iota
	GroupByDate
)

// ── Rows ────────────────────────────────────────────────────────────────────

// RowKind discriminates the three row variants.
type RowKind int

const (
	RowHeader RowKind = iota
	RowItem
	RowSpacer
)

// SpacerPos marks which list extremity a spacer pads.
type SpacerPos int

const (
	SpacerTop SpacerPos = iota
	SpacerBottom
)

// PinnedHeaderLabel is the fixed header above the pinned partition.
const PinnedHeaderLabel = "Pinned"

// Row is one line of the navigator list. Exactly one variant is populated
// depending on Kind.
type Row struct {
	Kind   RowKind
	Label  string    // RowHeader: the group label
	Item   ItemRef   // RowItem: the note payload
	Group  string    // RowItem: label of the group this item sits under, "" if ungrouped
	Pinned bool      // RowItem: item came from the pinned partition
	Spacer SpacerPos // RowSpacer
}

// Key returns the row's identity key, unique within one row list.
func (r Row) Key() string {
	switch r.Kind {
	case RowHeader:
		return "h:" + r.Label
	case RowItem:
		return "i:" + string(r.Item.ID)
	default:
		if r.Spacer == SpacerTop {
			return "s:top"
		}
		return "s:bottom"
	}
}

// Selectable reports whether the cursor can land on this row.
func (r Row) Selectable() bool { return r.Kind == RowItem }

// ── Builder ─────────────────────────────────────────────────────────────────

// Build produces the ordered flat row list for one source collection.
// It is a pure function of its inputs: the same (items, pins, sort, group)
// always yields the same row sequence. Empty input yields a spacer-only
// list, never an error.
//
// Pinned items sort among themselves and always sit under a single fixed
// "Pinned" header; they are never date-grouped. Date headers are emitted
// only when grouping is requested and the sort key is time-based.
func Build(items []ItemRef, pins map[ItemID]bool, sortOpt SortOption, group GroupOption) []Row {
	pinned := make([]ItemRef, 0, len(pins))
	unpinned := make([]ItemRef, 0, len(items))
	for _, it := range items {
		if pins[it.ID] {
			pinned = append(pinned, it)
		} else {
			unpinned = append(unpinned, it)
		}
	}
	sortItems(pinned, sortOpt)
	sortItems(unpinned, sortOpt)

	rows := make([]Row, 0, len(items)+8)

	if len(pinned) > 0 {
		rows = append(rows, Row{Kind: RowHeader, Label: PinnedHeaderLabel})
		for _, it := range pinned {
			rows = append(rows, Row{Kind: RowItem, Item: it, Group: PinnedHeaderLabel, Pinned: true})
		}
	}

	grouping := group == GroupByDate && sortOpt.Field != SortByTitle
	prevLabel := ""
	now := time.Now()
	for i, it := range unpinned {
		if grouping {
			label := dateBucket(sortTime(it, sortOpt.Field), now)
			if i == 0 || label != prevLabel {
				rows = append(rows, Row{Kind: RowHeader, Label: label})
				prevLabel = label
			}
			rows = append(rows, Row{Kind: RowItem, Item: it, Group: label})
			continue
		}
		rows = append(rows, Row{Kind: RowItem, Item: it})
	}

	rows = append(rows, Row{Kind: RowSpacer, Spacer: SpacerBottom})
	return rows
}

// IndexByID maps item identity to row index for the given row list.
// Rebuilt whenever the row list changes; scroll intents resolve through it.
func IndexByID(rows []Row) map[ItemID]int {
	idx := make(map[ItemID]int, len(rows))
	for i, r := range rows {
		if r.Kind == RowItem {
			idx[r.Item.ID] = i
		}
	}
	return idx
}

// sortItems sorts in place. The sort is stable so items with equal keys
// keep their source order across rebuilds — the row list must be
// deterministic or the virtualizer's recycling keys churn.
func sortItems(items []ItemRef, opt SortOption) {
	less := func(a, b ItemRef) bool {
		switch opt.Field {
		case SortByTitle:
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if ta != tb {
				return ta < tb
			}
			return a.ID < b.ID
		case SortByCreated:
			if !a.Created.Equal(b.Created) {
				return a.Created.Before(b.Created)
			}
			return a.ID < b.ID
		default:
			if !a.Modified.Equal(b.Modified) {
				return a.Modified.Before(b.Modified)
			}
			return a.ID < b.ID
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if opt.Descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func sortTime(it ItemRef, field SortField) time.Time {
	if field == SortByCreated {
		return it.Created
	}
	return it.Modified
}

// dateBucket maps a timestamp to its group label: "Today", "Yesterday",
// then month buckets ("January 2026"), then bare years for anything older
// than the current year.
func dateBucket(t time.Time, now time.Time) string {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch {
	case !t.Before(today):
		return "Today"
	case !t.Before(today.AddDate(0, 0, -1)):
		return "Yesterday"
	case t.Year() == now.Year():
		return t.Format("January 2006")
	default:
		return t.Format("2006")
	}
}
