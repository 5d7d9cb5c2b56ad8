package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

func trimmedFilter(s string) string {
	return strings.TrimSpace(s)
}

// InsertFilterText inserts text at the insertion point.
func (p *Panel) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	p.head = append(p.head, []rune(text)...)
	p.refilter()
	return true
}

// DeleteFilterRuneBackward removes the rune before the insertion point.
func (p *Panel) DeleteFilterRuneBackward() bool {
	if len(p.head) == 0 {
		return false
	}
	p.head = p.head[:len(p.head)-1]
	p.refilter()
	return true
}

// DeleteFilterWordBackward removes the word before the insertion point,
// including any trailing spaces between it and the point.
func (p *Panel) DeleteFilterWordBackward() bool {
	if len(p.head) == 0 {
		return false
	}
	p.head = p.head[:wordStart(p.head)]
	p.refilter()
	return true
}

// wordStart finds the index where the last word of runes begins.
func wordStart(runes []rune) int {
	i := len(runes)
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// MoveFilterCursorStart moves the insertion point to the start.
func (p *Panel) MoveFilterCursorStart() bool {
	if len(p.head) == 0 {
		return false
	}
	moved := append([]rune(nil), p.head...)
	p.tail = append(moved, p.tail...)
	p.head = nil
	return true
}

// MoveFilterCursorEnd moves the insertion point to the end.
func (p *Panel) MoveFilterCursorEnd() bool {
	if len(p.tail) == 0 {
		return false
	}
	p.head = append(p.head, p.tail...)
	p.tail = nil
	return true
}

// MoveFilterCursorRuneBackward shifts one rune from head to tail.
func (p *Panel) MoveFilterCursorRuneBackward() bool {
	if len(p.head) == 0 {
		return false
	}
	last := p.head[len(p.head)-1]
	p.head = p.head[:len(p.head)-1]
	p.tail = append([]rune{last}, p.tail...)
	return true
}

// MoveFilterCursorRuneForward shifts one rune from tail to head.
func (p *Panel) MoveFilterCursorRuneForward() bool {
	if len(p.tail) == 0 {
		return false
	}
	p.head = append(p.head, p.tail[0])
	p.tail = append([]rune(nil), p.tail[1:]...)
	return true
}

// MoveFilterCursorWordBackward moves the insertion point to the start of
// the previous word.
func (p *Panel) MoveFilterCursorWordBackward() bool {
	at := wordStart(p.head)
	if at == len(p.head) {
		return false
	}
	moved := append([]rune(nil), p.head[at:]...)
	p.head = p.head[:at]
	p.tail = append(moved, p.tail...)
	return true
}

// MoveFilterCursorWordForward moves the insertion point past the next word
// and the spaces that follow it.
func (p *Panel) MoveFilterCursorWordForward() bool {
	j := 0
	for j < len(p.tail) && !unicode.IsSpace(p.tail[j]) {
		j++
	}
	for j < len(p.tail) && unicode.IsSpace(p.tail[j]) {
		j++
	}
	if j == 0 {
		return false
	}
	p.head = append(p.head, p.tail[:j]...)
	p.tail = append([]rune(nil), p.tail[j:]...)
	return true
}

// FilterItems narrows items to those whose label fuzzily matches the
// query, falling back to substring matching on label or ID so short
// queries like numeric IDs still hit.
func FilterItems(items []Item, query string) []Item {
	query = trimmedFilter(query)
	if query == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	matched := make([]Item, 0, len(items))
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
		matched = append(matched, items[rank.OriginalIndex])
	}
	if len(matched) > 0 {
		return matched
	}
	needle := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), needle) ||
			strings.Contains(strings.ToLower(item.ID), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// BestMatchIndex picks the item the query most plausibly names: an exact
// label or ID match wins, then a prefix match, then the closest fuzzy
// rank. Returns -1 only when there are no items at all.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = trimmedFilter(query)
	if query == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, query) || strings.EqualFold(item.ID, query) {
			return i
		}
	}
	needle := strings.ToLower(query)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), needle) ||
			strings.HasPrefix(strings.ToLower(item.ID), needle) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	best := -1
	bestDistance := 0
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
		if best < 0 || rank.Distance < bestDistance {
			best = rank.OriginalIndex
			bestDistance = rank.Distance
		}
	}
	if best >= 0 {
		return best
	}
	return 0
}
