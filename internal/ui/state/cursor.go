package state

// MoveCursorUp moves the selection up one item, wrapping to the bottom.
func (p *Panel) MoveCursorUp() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	if p.Cursor > 0 {
		p.Cursor--
	} else {
		p.Cursor = n - 1
	}
	return n > 1
}

// MoveCursorDown moves the selection down one item, wrapping to the top.
func (p *Panel) MoveCursorDown() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	if p.Cursor < n-1 {
		p.Cursor++
	} else {
		p.Cursor = 0
	}
	return n > 1
}

// MoveCursorHome moves the selection to the first item.
func (p *Panel) MoveCursorHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	moved := p.Cursor != 0
	p.Cursor = 0
	return moved
}

// MoveCursorEnd moves the selection to the last item.
func (p *Panel) MoveCursorEnd() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	moved := p.Cursor != n-1
	p.Cursor = n - 1
	return moved
}

// MoveCursorPageUp jumps the selection up by one viewport of rows,
// stopping at the first item.
func (p *Panel) MoveCursorPageUp(rows int) bool {
	return p.jump(-p.page(rows))
}

// MoveCursorPageDown jumps the selection down by one viewport of rows,
// stopping at the last item.
func (p *Panel) MoveCursorPageDown(rows int) bool {
	return p.jump(p.page(rows))
}

func (p *Panel) jump(delta int) bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	next := old + delta
	if next < 0 {
		next = 0
	}
	if next > n-1 {
		next = n - 1
	}
	p.Cursor = next
	return p.Cursor != old
}

func (p *Panel) page(rows int) int {
	n := len(p.Items)
	if rows <= 0 || rows > n {
		rows = n
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// VisibleWindow clamps the selection, scrolls it into view, and returns
// the first visible index together with the items that fit in rows. A
// non-positive row count means everything fits.
func (p *Panel) VisibleWindow(rows int) (int, []Item) {
	p.clamp()
	n := len(p.Items)
	if n == 0 {
		return 0, nil
	}
	if rows <= 0 || rows >= n {
		p.ViewportOffset = 0
		return 0, p.Items
	}
	top := p.ViewportOffset
	if top > n-rows {
		top = n - rows
	}
	if top < 0 {
		top = 0
	}
	if p.Cursor < top {
		top = p.Cursor
	}
	if p.Cursor > top+rows-1 {
		top = p.Cursor - rows + 1
	}
	p.ViewportOffset = top
	return top, p.Items[top : top+rows]
}
