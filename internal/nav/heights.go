package nav

// Terminal row heights for the fixed row kinds. The very first header in a
// list omits the blank separator line above it, so headers have two heights.
const (
	heightHeaderFirst = 1
	heightHeader      = 2
	heightSpacer      = 1
	// heightImageMin is the clamp applied when a note shows an image
	// marker: the row needs enough lines for the block glyph to read.
	heightImageMin = 3
)

// HeightPolicy computes per-row heights from the display configuration AND
// the actual content of each item. Height must reflect what really renders
// — a note with no preview text gets no preview lines regardless of the
// configured count — otherwise the list visibly reflows once real content
// arrives.
type HeightPolicy struct {
	ShowDate     bool
	PreviewLines int // configured maximum; 0 disables previews
	ShowTags     bool
	ShowParent   bool
}

// RowHeight returns the height in terminal rows for row r at index.
// Index 0 matters only for headers (no top separator on the first row).
func (p HeightPolicy) RowHeight(r Row, index int) int {
	switch r.Kind {
	case RowHeader:
		if index == 0 {
			return heightHeaderFirst
		}
		return heightHeader
	case RowSpacer:
		return heightSpacer
	default:
		return p.itemHeight(r.Item)
	}
}

func (p HeightPolicy) itemHeight(it ItemRef) int {
	h := 1 // title line

	// Metadata line: date and the first preview line share one row.
	hasPreview := p.PreviewLines > 0 && len(it.Preview) > 0
	if p.ShowDate || hasPreview {
		h++
	}

	// Additional preview lines beyond the one folded into the metadata row.
	if hasPreview && p.PreviewLines > 1 {
		extra := len(it.Preview) - 1
		if extra > p.PreviewLines-1 {
			extra = p.PreviewLines - 1
		}
		if extra > 0 {
			h += extra
		}
	}

	if p.ShowTags && len(it.Tags) > 0 {
		h++
	}
	if p.ShowParent {
		h++
	}

	if it.HasImage && h < heightImageMin {
		h = heightImageMin
	}
	return h
}

// Estimator adapts the policy to the virtualizer's per-index callback for
// the given row list.
func (p HeightPolicy) Estimator(rows []Row) func(int) int {
	return func(i int) int {
		if i < 0 || i >= len(rows) {
			return 1
		}
		return p.RowHeight(rows[i], i)
	}
}
