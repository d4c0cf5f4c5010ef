package nav

// Gestures translates pointer and keyboard selection gestures into
// Selection mutations with native list-box anchor/cursor semantics. It
// operates purely over the row list and selection state — never over
// rendered output.
type Gestures struct {
	sel *Selection
}

// NewGestures wraps a Selection.
func NewGestures(sel *Selection) *Gestures { return &Gestures{sel: sel} }

// SelectableOrder extracts the selectable item ids in row order. Gesture
// indices (anchor, range endpoints) are positions in this sequence, not
// raw row indices, so headers and spacers never shift a range.
func SelectableOrder(rows []Row) []ItemID {
	order := make([]ItemID, 0, len(rows))
	for _, r := range rows {
		if r.Selectable() {
			order = append(order, r.Item.ID)
		}
	}
	return order
}

// Click is a plain primary click or bare cursor move: single-selects the
// target and drops any multi-selection.
func (g *Gestures) Click(id ItemID) {
	g.sel.SetCursor(id)
}

// ModifierClick toggles the target in the multi-selection set (cmd/ctrl
// click). Deselecting the last remaining item is refused: at least one
// item stays selected, clearing is an explicit separate action. Returns
// whether the selection changed.
func (g *Gestures) ModifierClick(rows []Row, id ItemID) bool {
	order := SelectableOrder(rows)
	return g.sel.Toggle(id, indexOf(order, id), order)
}

// ShiftClick extends the selection range from the anchor (or the previous
// cursor when no anchor exists) to the target, accumulating.
func (g *Gestures) ShiftClick(rows []Row, id ItemID) {
	order := SelectableOrder(rows)
	g.sel.ExtendRangeTo(id, indexOf(order, id), order)
}

// ExtendStep handles shift+arrow: move the cursor one selectable step in
// dir (-1 up, +1 down), growing or shrinking the selection.
//
// Entering an unselected cell selects it (grow). Entering an
// already-selected cell while moving toward the anchor deselects the cell
// being left (shrink from the trailing edge). Moving away from the anchor
// through an already-selected run jumps the cursor to the run's far end
// without deselecting, so the next step extends past the block.
func (g *Gestures) ExtendStep(rows []Row, dir int) {
	order := SelectableOrder(rows)
	cur, ok := g.sel.Cursor()
	if !ok {
		// No cursor yet: behave like a plain move onto the edge row.
		if len(order) > 0 {
			if dir > 0 {
				g.sel.SetCursor(order[0])
			} else {
				g.sel.SetCursor(order[len(order)-1])
			}
		}
		return
	}
	ci := indexOf(order, cur)
	if ci < 0 {
		return
	}
	ni := ci + dir
	if ni < 0 || ni >= len(order) {
		return
	}

	next := order[ni]
	if !g.sel.IsSelected(next) {
		g.sel.Select(next)
		g.sel.MoveCursor(next)
		if g.sel.anchor < 0 {
			g.sel.anchor = ci
		}
		return
	}

	anchor := g.sel.Anchor()
	towardAnchor := anchor >= 0 && ((dir > 0 && anchor > ci) || (dir < 0 && anchor < ci))
	if towardAnchor {
		// Shrinking from the trailing edge: deselect the cell being
		// left, land on the neighbour.
		g.sel.MoveCursor(next)
		g.sel.Deselect(cur)
		return
	}

	// Moving away from the anchor through an already-selected run: jump
	// to the run's far end so the next step extends past the block.
	for ni+dir >= 0 && ni+dir < len(order) && g.sel.IsSelected(order[ni+dir]) {
		ni += dir
	}
	g.sel.MoveCursor(order[ni])
}

// MoveToEdge jumps the cursor to the first (up) or last (down) selectable
// row. With extend, every traversed row joins the selection —
// accumulating, like ExtendRangeTo.
func (g *Gestures) MoveToEdge(rows []Row, toEnd bool, extend bool) {
	order := SelectableOrder(rows)
	if len(order) == 0 {
		return
	}
	target := 0
	if toEnd {
		target = len(order) - 1
	}
	if !extend {
		g.sel.SetCursor(order[target])
		return
	}
	g.sel.ExtendRangeTo(order[target], target, order)
}

// SelectAll selects every selectable row. The cursor stays where it was
// when still present, else it lands on the first row.
func (g *Gestures) SelectAll(rows []Row) {
	order := SelectableOrder(rows)
	if len(order) == 0 {
		return
	}
	cur, _ := g.sel.Cursor()
	for _, id := range order {
		g.sel.Select(id)
	}
	if indexOf(order, cur) < 0 {
		cur = order[0]
	}
	g.sel.MoveCursor(cur)
}
