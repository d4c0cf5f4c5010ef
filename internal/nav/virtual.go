package nav

// Align specifies where a scrolled-to row lands in the viewport.
type Align int

const (
	// AlignStart puts the row's first line at the top of the viewport.
	AlignStart Align = iota
	// AlignCenter centers the row in the viewport.
	AlignCenter
	// AlignAuto performs the minimum scroll that brings the row fully
	// into view, and nothing at all if it already is.
	AlignAuto
)

// Virtualizer maintains a windowed view over a row list. It owns the
// measurement cache: a prefix of per-row sizes populated lazily from the
// estimator and invalidated explicitly by Measure — never silently stale.
//
// All offsets and sizes are in terminal lines. A detached virtualizer
// (pane hidden or not yet laid out) silently ignores scroll commands;
// callers retry through the reconciler's pending-intent mechanism.
type Virtualizer struct {
	estimate func(int) int
	rowCount int
	viewport int
	overscan int
	offset   int
	attached bool

	// sizes caches measured row heights for the prefix [0, len(sizes)).
	// offsets[i] is the cumulative start of row i; len(offsets) == len(sizes)+1.
	sizes   []int
	offsets []int
}

// NewVirtualizer creates a detached virtualizer over rowCount rows.
func NewVirtualizer(rowCount int, estimate func(int) int) *Virtualizer {
	return &Virtualizer{
		estimate: estimate,
		rowCount: rowCount,
		offsets:  []int{0},
	}
}

// Attach marks the scroll container live. Scroll commands only take
// effect while attached.
func (v *Virtualizer) Attach() { v.attached = true }

// Detach marks the container gone. State (offset, measurements) is
// preserved — hiding a pane must not reset its scroll position.
func (v *Virtualizer) Detach() { v.attached = false }

// Attached reports whether scroll commands currently take effect.
func (v *Virtualizer) Attached() bool { return v.attached }

// SetViewport sets the visible height and overscan, both in lines.
func (v *Virtualizer) SetViewport(height, overscan int) {
	if height < 0 {
		height = 0
	}
	v.viewport = height
	v.overscan = overscan
	v.clampOffset()
}

// SetRowCount replaces the row count after a row-list rebuild. Cached
// measurements beyond the new count are dropped; callers pair this with
// SetEstimator/Measure when row content changed too.
func (v *Virtualizer) SetRowCount(n int) {
	if n < 0 {
		n = 0
	}
	v.rowCount = n
	if len(v.sizes) > n {
		v.sizes = v.sizes[:n]
		v.offsets = v.offsets[:n+1]
	}
	v.clampOffset()
}

// SetEstimator swaps the height estimator (row list rebuilt or a
// height-affecting setting changed). Always followed by Measure.
func (v *Virtualizer) SetEstimator(estimate func(int) int) {
	v.estimate = estimate
}

// Offset returns the current scroll offset in lines.
func (v *Virtualizer) Offset() int { return v.offset }

// TotalSize returns the total content height in lines.
func (v *Virtualizer) TotalSize() int {
	v.measureThrough(v.rowCount - 1)
	return v.offsets[len(v.offsets)-1]
}

// RowOffset returns the start line of row i.
func (v *Virtualizer) RowOffset(i int) int {
	if i < 0 || i >= v.rowCount {
		return 0
	}
	v.measureThrough(i)
	return v.offsets[i]
}

// VisibleRange returns the inclusive [start, end] row index range whose
// lines intersect the viewport extended by the overscan margin. Returns
// (0, -1) when there are no rows.
func (v *Virtualizer) VisibleRange() (int, int) {
	if v.rowCount == 0 {
		return 0, -1
	}
	lo := v.offset - v.overscan
	hi := v.offset + v.viewport + v.overscan
	if lo < 0 {
		lo = 0
	}

	start := v.indexAt(lo)
	end := start
	for end+1 < v.rowCount {
		v.measureThrough(end + 1)
		if v.offsets[end+1] >= hi {
			break
		}
		end++
	}
	return start, end
}

// ScrollToIndex scrolls so row i lands according to align. Returns false
// (and moves nothing) when detached or i is out of range. Idempotent:
// repeating the call with unchanged state produces no further movement.
func (v *Virtualizer) ScrollToIndex(i int, align Align) bool {
	if !v.attached || i < 0 || i >= v.rowCount {
		return false
	}
	v.measureThrough(i)
	start := v.offsets[i]
	size := v.sizes[i]

	switch align {
	case AlignStart:
		v.offset = start
	case AlignCenter:
		v.offset = start - (v.viewport-size)/2
	case AlignAuto:
		switch {
		case start < v.offset:
			v.offset = start
		case start+size > v.offset+v.viewport:
			v.offset = start + size - v.viewport
		}
	}
	v.clampOffset()
	return true
}

// ScrollToOffset scrolls to an absolute line offset. No-op when detached.
func (v *Virtualizer) ScrollToOffset(offset int) bool {
	if !v.attached {
		return false
	}
	v.offset = offset
	v.clampOffset()
	return true
}

// ScrollBy shifts the offset by delta lines. No-op when detached.
func (v *Virtualizer) ScrollBy(delta int) bool {
	return v.ScrollToOffset(v.offset + delta)
}

// Measure invalidates the measurement cache from the first row whose
// recorded size no longer matches a fresh estimator read, then recomputes
// cumulative offsets from there. The scroll offset is preserved (clamped
// against the new total) — remeasuring must never jump the list.
func (v *Virtualizer) Measure() {
	stale := len(v.sizes)
	for i := 0; i < len(v.sizes); i++ {
		if v.sizes[i] != v.estimate(i) {
			stale = i
			break
		}
	}
	v.sizes = v.sizes[:stale]
	v.offsets = v.offsets[:stale+1]
	v.measureThrough(v.rowCount - 1)
	v.clampOffset()
}

// measureThrough extends the measured prefix to cover row i.
func (v *Virtualizer) measureThrough(i int) {
	if i >= v.rowCount {
		i = v.rowCount - 1
	}
	for n := len(v.sizes); n <= i; n++ {
		size := v.estimate(n)
		if size < 1 {
			size = 1
		}
		v.sizes = append(v.sizes, size)
		v.offsets = append(v.offsets, v.offsets[n]+size)
	}
}

// indexAt returns the index of the row containing line offset off.
func (v *Virtualizer) indexAt(off int) int {
	v.measureThrough(v.rowCount - 1)
	// Binary search over cumulative offsets: first row whose end > off.
	lo, hi := 0, v.rowCount-1
	for lo < hi {
		mid := (lo + hi) / 2
		if v.offsets[mid+1] > off {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func (v *Virtualizer) clampOffset() {
	max := v.TotalSize() - v.viewport
	if max < 0 {
		max = 0
	}
	if v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
}
