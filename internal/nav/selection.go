package nav

// Signal is a single-use notification attached to a selection change. It
// tells exactly one downstream effect how the change came about (keyboard
// step, reveal, folder switch) so the effect can pick scroll alignment and
// auto-open behaviour. A signal is consumed exactly once via TakeSignal —
// there is deliberately no way to read it without clearing it, which
// removes the stale-flag / double-clear bug class of ambient booleans.
type Signal int

const (
	SignalNone Signal = iota
	// SignalKeyboardNav: the cursor moved via keyboard; follow with a
	// minimal (auto-align) scroll.
	SignalKeyboardNav
	// SignalReveal: an external reveal request selected the item; scroll
	// minimally and do not open the note.
	SignalReveal
	// SignalFolderNav: the source collection switched; scroll to top or
	// to the preserved selection.
	SignalFolderNav
	// SignalFolderAutoSelect: collection switched and the first note was
	// auto-selected; scroll centered and open it.
	SignalFolderAutoSelect
)

// Selection tracks the cursor (the single "current" item), the
// multi-selection set, and the anchor index for range gestures.
//
// Invariant, maintained by every mutation path: the set is either empty or
// contains the cursor. All mutation goes through the methods below; no
// other component holds a writable reference.
type Selection struct {
	cursor ItemID // "" means no cursor
	set    map[ItemID]struct{}
	anchor int // selectable-order index, -1 when unset
	signal Signal
}

// NewSelection returns the empty selection: no cursor, no set, no anchor.
func NewSelection() *Selection {
	return &Selection{set: make(map[ItemID]struct{}), anchor: -1}
}

// Cursor returns the current item and whether one is set.
func (s *Selection) Cursor() (ItemID, bool) { return s.cursor, s.cursor != "" }

// IsSelected reports whether id is in the multi-selection set.
func (s *Selection) IsSelected(id ItemID) bool {
	_, ok := s.set[id]
	return ok
}

// Count returns the size of the multi-selection set.
func (s *Selection) Count() int { return len(s.set) }

// Anchor returns the range anchor index, -1 when unset.
func (s *Selection) Anchor() int { return s.anchor }

// SetCursor makes id the sole selection and clears the anchor. An empty id
// clears cursor and set entirely.
func (s *Selection) SetCursor(id ItemID) {
	s.cursor = id
	s.set = make(map[ItemID]struct{})
	if id != "" {
		s.set[id] = struct{}{}
	}
	s.anchor = -1
}

// Toggle removes id from the set when present (refusing to empty the set),
// or adds it and moves the cursor to it. order is the current selectable
// id sequence; it resolves the cursor hand-off when the cursor itself is
// deselected: the cursor moves to the nearest remaining selected item
// after it in order, else the nearest before. Returns false when the
// toggle was refused (removing the last selected item).
func (s *Selection) Toggle(id ItemID, index int, order []ItemID) bool {
	if s.IsSelected(id) {
		if len(s.set) <= 1 {
			return false
		}
		delete(s.set, id)
		if s.cursor == id {
			s.cursor = s.nearestSelected(index, order)
		}
		return true
	}
	s.set[id] = struct{}{}
	s.cursor = id
	s.anchor = index
	return true
}

// ExtendRangeTo adds every selectable item between the anchor and index to
// the set, inclusive, and moves the cursor to id. Items already selected
// outside the range stay selected — range extension accumulates, it never
// replaces. With no anchor the previous cursor's position seeds the range
// start (and becomes the anchor).
func (s *Selection) ExtendRangeTo(id ItemID, index int, order []ItemID) {
	start := s.anchor
	if start < 0 {
		start = indexOf(order, s.cursor)
	}
	if start < 0 {
		// Nothing to extend from: behave like a plain select.
		s.SetCursor(id)
		return
	}
	s.anchor = start

	lo, hi := start, index
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i <= hi && i < len(order); i++ {
		if i >= 0 {
			s.set[order[i]] = struct{}{}
		}
	}
	s.cursor = id
}

// Select adds id to the set without touching the anchor. Used by
// edge-jump and select-all gestures which accumulate like ranges.
func (s *Selection) Select(id ItemID) {
	s.set[id] = struct{}{}
}

// Deselect removes id from the set. The caller is responsible for moving
// the cursor first when deselecting the cursor's own row.
func (s *Selection) Deselect(id ItemID) {
	delete(s.set, id)
}

// MoveCursor relocates the cursor onto an already-selected or
// newly-selected id, keeping the invariant by inserting it into the set.
func (s *Selection) MoveCursor(id ItemID) {
	s.cursor = id
	if id != "" {
		s.set[id] = struct{}{}
	}
}

// ClearSet empties the multi-selection but keeps the cursor as a
// single-item selection when present.
func (s *Selection) ClearSet() {
	s.set = make(map[ItemID]struct{})
	if s.cursor != "" {
		s.set[s.cursor] = struct{}{}
	}
	s.anchor = -1
}

// Reset returns to the initial state: no cursor, empty set. Called on
// mount and when the source collection becomes unrelated to the previous
// one (folder/tag switch).
func (s *Selection) Reset() {
	s.cursor = ""
	s.set = make(map[ItemID]struct{})
	s.anchor = -1
	s.signal = SignalNone
}

// SetSignal arms the single-use signal, superseding any unconsumed one.
func (s *Selection) SetSignal(sig Signal) { s.signal = sig }

// TakeSignal returns the armed signal and clears it. The read and the
// clear are one step: a second caller always observes SignalNone.
func (s *Selection) TakeSignal() Signal {
	sig := s.signal
	s.signal = SignalNone
	return sig
}

// nearestSelected picks the cursor's replacement after the cursor row was
// deselected: first selected item after index in order, else the last
// selected one before it.
func (s *Selection) nearestSelected(index int, order []ItemID) ItemID {
	for i := index + 1; i < len(order); i++ {
		if s.IsSelected(order[i]) {
			return order[i]
		}
	}
	for i := index - 1; i >= 0; i-- {
		if i < len(order) && s.IsSelected(order[i]) {
			return order[i]
		}
	}
	return ""
}

func indexOf(order []ItemID, id ItemID) int {
	if id == "" {
		return -1
	}
	for i, o := range order {
		if o == id {
			return i
		}
	}
	return -1
}
