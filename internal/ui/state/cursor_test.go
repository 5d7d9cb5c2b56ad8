package state

import (
	"fmt"
	"testing"
)

func numberedPanel(n int) *Panel {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: fmt.Sprintf("n%d", i), Label: fmt.Sprintf("Item %d", i)}
	}
	return NewPanel("test", "Test", items)
}

func TestMoveCursorWrapsAroundEnds(t *testing.T) {
	p := numberedPanel(3)
	if !p.MoveCursorUp() || p.Cursor != 2 {
		t.Fatalf("expected wrap to bottom, got cursor %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 0 {
		t.Fatalf("expected wrap to top, got cursor %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", p.Cursor)
	}

	single := numberedPanel(1)
	if single.MoveCursorUp() || single.MoveCursorDown() || single.Cursor != 0 {
		t.Fatalf("expected single-item panel to stay put, got cursor %d", single.Cursor)
	}

	empty := numberedPanel(0)
	if empty.MoveCursorUp() || empty.MoveCursorDown() {
		t.Fatal("expected no movement in an empty panel")
	}
}

func TestMoveCursorHomeAndEnd(t *testing.T) {
	p := numberedPanel(3)
	p.Cursor = 1
	if !p.MoveCursorEnd() || p.Cursor != 2 {
		t.Fatalf("expected cursor at end, got %d", p.Cursor)
	}
	if p.MoveCursorEnd() {
		t.Fatal("expected no change when already at end")
	}
	if !p.MoveCursorHome() || p.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", p.Cursor)
	}
	if p.MoveCursorHome() {
		t.Fatal("expected no change when already at start")
	}

	empty := numberedPanel(0)
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatal("expected no movement in an empty panel")
	}
}

func TestPageMovesClampAtEdges(t *testing.T) {
	p := numberedPanel(10)
	if !p.MoveCursorPageDown(4) || p.Cursor != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", p.Cursor)
	}
	if !p.MoveCursorPageDown(4) || p.Cursor != 8 {
		t.Fatalf("expected cursor 8, got %d", p.Cursor)
	}
	if !p.MoveCursorPageDown(4) || p.Cursor != 9 {
		t.Fatalf("expected clamp at last item, got %d", p.Cursor)
	}
	if p.MoveCursorPageDown(4) {
		t.Fatal("expected no change at the bottom")
	}
	if !p.MoveCursorPageUp(4) || p.Cursor != 5 {
		t.Fatalf("expected cursor 5 after page up, got %d", p.Cursor)
	}

	// A non-positive row count pages by the whole list.
	if !p.MoveCursorPageUp(0) || p.Cursor != 0 {
		t.Fatalf("expected jump to top, got %d", p.Cursor)
	}
	if p.MoveCursorPageUp(4) {
		t.Fatal("expected no change at the top")
	}
}

func TestVisibleWindowFollowsCursor(t *testing.T) {
	p := numberedPanel(10)

	top, visible := p.VisibleWindow(3)
	if top != 0 || len(visible) != 3 || visible[0].ID != "n0" {
		t.Fatalf("unexpected initial window %d/%v", top, visible)
	}

	p.Cursor = 5
	top, visible = p.VisibleWindow(3)
	if top != 3 || visible[len(visible)-1].ID != "n5" {
		t.Fatalf("expected window to scroll down to the cursor, got %d/%v", top, visible)
	}
	if p.ViewportOffset != 3 {
		t.Fatalf("expected offset persisted, got %d", p.ViewportOffset)
	}

	p.Cursor = 1
	top, visible = p.VisibleWindow(3)
	if top != 1 || visible[0].ID != "n1" {
		t.Fatalf("expected window to scroll up to the cursor, got %d/%v", top, visible)
	}
}

func TestVisibleWindowClampsStaleOffset(t *testing.T) {
	p := numberedPanel(10)
	p.ViewportOffset = 9
	p.Cursor = 8
	top, visible := p.VisibleWindow(3)
	if top != 7 || len(visible) != 3 {
		t.Fatalf("expected offset clamped to the last full window, got %d/%v", top, visible)
	}

	p.Cursor = 42
	top, _ = p.VisibleWindow(3)
	if p.Cursor != 9 || top != 7 {
		t.Fatalf("expected cursor clamped into range, got cursor %d top %d", p.Cursor, top)
	}
}

func TestVisibleWindowWhenEverythingFits(t *testing.T) {
	p := numberedPanel(4)
	p.ViewportOffset = 2
	top, visible := p.VisibleWindow(0)
	if top != 0 || len(visible) != 4 || p.ViewportOffset != 0 {
		t.Fatalf("unexpected window %d/%v offset %d", top, visible, p.ViewportOffset)
	}
	top, visible = p.VisibleWindow(10)
	if top != 0 || len(visible) != 4 {
		t.Fatalf("unexpected window %d/%v", top, visible)
	}

	empty := numberedPanel(0)
	top, visible = empty.VisibleWindow(3)
	if top != 0 || visible != nil {
		t.Fatalf("expected empty window, got %d/%v", top, visible)
	}
}
