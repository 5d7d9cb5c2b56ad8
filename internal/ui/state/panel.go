package state

// Panel is one open menu column. It owns the selection cursor, the filter
// line, and the scroll offset. The unfiltered item set is retained so the
// filter can be relaxed without asking the tree again.
//
// The filter line is stored as two rune halves around the insertion point,
// so every edit and cursor move is an append or a transfer between halves.
type Panel struct {
	ID    string
	Title string

	Items []Item

	Cursor         int
	ViewportOffset int

	full []Item
	head []rune // filter text before the insertion point
	tail []rune // filter text after it

	savedCursor int // selection before filtering began, -1 when none
}

// NewPanel constructs a column over the given items.
func NewPanel(id, title string, items []Item) *Panel {
	p := &Panel{ID: id, Title: title, savedCursor: -1}
	p.UpdateItems(items)
	return p
}

// UpdateItems replaces the column content after a snapshot change,
// reapplying the active filter and keeping the selection where it still
// fits.
func (p *Panel) UpdateItems(items []Item) {
	p.full = CloneItems(items)
	p.refilter()
}

// Filter returns the current filter text.
func (p *Panel) Filter() string {
	return string(p.head) + string(p.tail)
}

// FilterCursorPos returns the rune offset of the insertion point.
func (p *Panel) FilterCursorPos() int {
	return len(p.head)
}

// SetFilter replaces the filter text and insertion point wholesale.
func (p *Panel) SetFilter(query string, cursor int) {
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.head = append([]rune(nil), runes[:cursor]...)
	p.tail = append([]rune(nil), runes[cursor:]...)
	p.refilter()
}

// refilter recomputes the visible items. Entering a filter remembers the
// selection so clearing it can put the cursor back; while a filter is
// active the best match stays selected.
func (p *Panel) refilter() {
	query := trimmedFilter(p.Filter())
	if query == "" {
		p.Items = CloneItems(p.full)
		if p.savedCursor >= 0 {
			p.Cursor = p.savedCursor
			p.savedCursor = -1
		}
		p.clamp()
		return
	}
	if p.savedCursor < 0 {
		p.savedCursor = p.Cursor
	}
	p.Items = FilterItems(p.full, query)
	if idx := BestMatchIndex(p.Items, query); idx >= 0 {
		p.Cursor = idx
	}
	p.clamp()
}

// clamp keeps cursor and scroll offset inside the filtered item range.
func (p *Panel) clamp() {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}
