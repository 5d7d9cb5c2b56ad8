package nav

import (
	"sync"

	"github.com/Vaaaaal/flyout-menu-control/internal/logging/events"
)

// Snapshot is the derived active-state view of the history: every open
// panel is active, the deepest one is current, and the rest form the
// breadcrumb trail.
type Snapshot struct {
	Active     []string
	Current    string
	Breadcrumb []string
}

// ComputeSnapshot derives the active state from an open chain. It is a
// wholesale recomputation; nothing is patched incrementally, so the
// derived flags cannot drift from the history.
func ComputeSnapshot(history []string) Snapshot {
	var snap Snapshot
	if len(history) == 0 {
		return snap
	}
	snap.Active = make([]string, len(history))
	copy(snap.Active, history)
	snap.Current = history[len(history)-1]
	snap.Breadcrumb = make([]string, len(history)-1)
	copy(snap.Breadcrumb, history[:len(history)-1])
	return snap
}

// Contains reports whether id is on the open path.
func (s Snapshot) Contains(id string) bool {
	for _, open := range s.Active {
		if open == id {
			return true
		}
	}
	return false
}

// Propagator fans a single consistent snapshot out to subscribers after
// every history mutation.
type Propagator struct {
	mu   sync.Mutex
	subs []func(Snapshot)
}

// NewPropagator returns a propagator with no subscribers.
func NewPropagator() *Propagator {
	return &Propagator{}
}

// Subscribe registers a callback invoked synchronously with each published
// snapshot. Callbacks receive value copies and must not block for long.
func (p *Propagator) Subscribe(fn func(Snapshot)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.subs = append(p.subs, fn)
	p.mu.Unlock()
}

// Publish recomputes the snapshot for the given history and emits exactly
// one notification per subscriber.
func (p *Propagator) Publish(history []string) Snapshot {
	snap := ComputeSnapshot(history)
	events.Nav.Snapshot(snap.Active, snap.Current, snap.Breadcrumb)
	p.mu.Lock()
	subs := make([]func(Snapshot), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
	return snap
}
