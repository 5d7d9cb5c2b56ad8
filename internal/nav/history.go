package nav

import "sync"

// History is the ordered chain of currently open panel identifiers, root
// first. It is mutated exclusively by the Orchestrator, one completed
// open/close step at a time, so readers always observe a valid
// root-to-node path made of fully finished steps.
type History struct {
	mu  sync.Mutex
	ids []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Push appends an opened panel to the chain.
func (h *History) Push(id string) {
	h.mu.Lock()
	h.ids = append(h.ids, id)
	h.mu.Unlock()
}

// Pop removes and returns the deepest open panel.
func (h *History) Pop() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.ids) == 0 {
		return "", false
	}
	id := h.ids[len(h.ids)-1]
	h.ids = h.ids[:len(h.ids)-1]
	return id, true
}

// Clear drops every open panel, used on full menu teardown.
func (h *History) Clear() {
	h.mu.Lock()
	h.ids = nil
	h.mu.Unlock()
}

// Snapshot returns a copy of the open chain. The copy is stable even while
// a navigation sequence is mutating the history.
func (h *History) Snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.ids) == 0 {
		return nil
	}
	out := make([]string, len(h.ids))
	copy(out, h.ids)
	return out
}

// Current returns the deepest open panel, if any.
func (h *History) Current() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.ids) == 0 {
		return "", false
	}
	return h.ids[len(h.ids)-1], true
}

// Len reports how many panels are open.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.ids)
}

// IndexOf returns the position of id in the open chain, or -1.
func (h *History) IndexOf(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, open := range h.ids {
		if open == id {
			return i
		}
	}
	return -1
}
