package nav

// IntentKind discriminates the two scroll intent targets.
type IntentKind int

const (
	// IntentItem scrolls to a specific item's resolved row index.
	IntentItem IntentKind = iota
	// IntentTop scrolls to offset zero.
	IntentTop
)

// ScrollIntent is a deferred scroll request. At most one is outstanding
// per pane; a newer request simply overwrites the stored one
// (last-writer-wins, no queue).
type ScrollIntent struct {
	Kind  IntentKind
	Item  ItemID
	Align Align
	// sticky intents (reveals) survive a failed index lookup: the row
	// list rebuild may not have flushed yet. Non-sticky intents fall
	// back to top when the item is gone from the view.
	sticky bool
}

// Reconciler coordinates pending scroll intents against pane visibility
// transitions. It owns the intent and the pane's visibility history; the
// Hidden→Visible edge is the only transition that consumes an intent.
//
// Visibility is tracked as an explicit two-slot history (previous,
// current) advanced by Reconcile itself in a fixed order, so the edge is
// detectable without depending on any rendering framework's update
// scheduling.
type Reconciler struct {
	visible     bool
	prevVisible bool
	pending     *ScrollIntent
}

// NewReconciler starts with both history slots at the given visibility,
// so an initially-visible pane does not observe a spurious transition.
func NewReconciler(visible bool) *Reconciler {
	return &Reconciler{visible: visible, prevVisible: visible}
}

// SetVisible records the pane's current visibility. The previous slot is
// only advanced by Reconcile, preserving the before/after distinction
// even when SetVisible is called multiple times per pass.
func (r *Reconciler) SetVisible(visible bool) { r.visible = visible }

// Visible returns the current visibility.
func (r *Reconciler) Visible() bool { return r.visible }

// Pending reports whether an intent is outstanding.
func (r *Reconciler) Pending() bool { return r.pending != nil }

// RequestScroll stores (or, when the pane is visible and attached,
// immediately executes) a scroll intent targeting an item.
func (r *Reconciler) RequestScroll(id ItemID, align Align, sticky bool, v *Virtualizer, index map[ItemID]int) {
	r.pending = &ScrollIntent{Kind: IntentItem, Item: id, Align: align, sticky: sticky}
	if r.visible {
		r.execute(v, index)
	}
}

// RequestScrollTop stores or executes a scroll-to-top intent.
func (r *Reconciler) RequestScrollTop(v *Virtualizer, index map[ItemID]int) {
	r.pending = &ScrollIntent{Kind: IntentTop}
	if r.visible {
		r.execute(v, index)
	}
}

// CollectionChanged handles a source-collection identity switch: scroll
// to the still-valid selection, else to the top. selected is "" when no
// selection survives the switch.
func (r *Reconciler) CollectionChanged(selected ItemID, v *Virtualizer, index map[ItemID]int) {
	if selected != "" {
		r.RequestScroll(selected, AlignCenter, false, v, index)
		return
	}
	r.RequestScrollTop(v, index)
}

// Reveal handles an external make-this-visible request. expand runs
// first so collapsed ancestors open before the row index is resolved;
// the intent is sticky because the rebuild triggered by the expansion
// may not have produced the item's row yet.
func (r *Reconciler) Reveal(id ItemID, expand func(ItemID), v *Virtualizer, index map[ItemID]int) {
	if expand != nil {
		expand(id)
	}
	r.RequestScroll(id, AlignAuto, true, v, index)
}

// Reconcile runs once per update pass. It consumes the pending intent on
// the Hidden→Visible edge (or when a sticky intent's target has become
// resolvable), then advances the visibility history. Remeasure always
// precedes intent execution within the pass so a concurrent content
// change cannot clobber the scroll target.
func (r *Reconciler) Reconcile(v *Virtualizer, index map[ItemID]int) {
	becameVisible := r.visible && !r.prevVisible
	r.prevVisible = r.visible

	if r.pending == nil || !r.visible {
		return
	}
	if becameVisible || r.pending.sticky {
		r.execute(v, index)
	}
}

// execute attempts the pending intent. The intent is cleared only after a
// successful scroll attempt: with no attached container it stays alive
// for a future visibility transition instead of being discarded.
func (r *Reconciler) execute(v *Virtualizer, index map[ItemID]int) {
	if r.pending == nil || v == nil || !v.Attached() {
		return
	}

	// Remeasure first: stale cached heights would land the scroll on the
	// wrong offset, and a later remeasure must not move what we just
	// scrolled to.
	v.Measure()

	intent := r.pending
	if intent.Kind == IntentItem {
		if row, ok := index[intent.Item]; ok {
			v.ScrollToIndex(row, intent.Align)
			r.pending = nil
			return
		}
		if intent.sticky {
			// Row list rebuild hasn't flushed; keep waiting.
			return
		}
		// Item no longer exists in this view: fall back to top.
	}
	v.ScrollToOffset(0)
	r.pending = nil
}
