package nav

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Vaaaaal/flyout-menu-control/internal/logging/events"
	"github.com/Vaaaaal/flyout-menu-control/internal/transition"
	"github.com/Vaaaaal/flyout-menu-control/internal/tree"
)

// Phase reports where the orchestrator is within a navigation sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseClosing
	PhaseOpening
)

func (p Phase) String() string {
	switch p {
	case PhaseClosing:
		return "closing"
	case PhaseOpening:
		return "opening"
	default:
		return "idle"
	}
}

// Orchestrator turns navigation requests into strictly sequenced close and
// open steps. Panels are visually nested, so steps never overlap: the close
// phase runs innermost-first, then the open phase outermost-first, and each
// step waits for the transition executor before the next one starts. The
// history is mutated immediately after each completed step, never batched.
//
// The orchestrator does not queue or cancel requests. A second request
// issued while a sequence is in flight races with it; hosts are expected to
// disable their trigger surface while Phase() is not PhaseIdle, or to
// accept last-write-wins. A stalled executor leaves the sequence stuck in
// its phase; recovery is an external context timeout, because forcing a
// skip would let the visual and logical states diverge.
type Orchestrator struct {
	resolver   *Resolver
	history    *History
	executor   transition.Executor
	propagator *Propagator

	openDuration  time.Duration
	closeDuration time.Duration

	mu    sync.Mutex
	phase Phase
}

// Options carries the collaborators and timings for an orchestrator.
type Options struct {
	Index         *tree.Index
	Executor      transition.Executor
	Propagator    *Propagator
	OpenDuration  time.Duration
	CloseDuration time.Duration
}

// NewOrchestrator wires the navigation core together. The propagator is
// optional; without one, state changes are still traced but not fanned out.
func NewOrchestrator(opts Options) *Orchestrator {
	prop := opts.Propagator
	if prop == nil {
		prop = NewPropagator()
	}
	return &Orchestrator{
		resolver:      NewResolver(opts.Index),
		history:       NewHistory(),
		executor:      opts.Executor,
		propagator:    prop,
		openDuration:  opts.OpenDuration,
		closeDuration: opts.CloseDuration,
	}
}

// Rebind swaps the tree index after a content reload. Safe to call while a
// sequence is in flight; the running sequence keeps the path it already
// resolved, and open panels missing from the new index are the host's to
// close.
func (o *Orchestrator) Rebind(index *tree.Index) {
	o.mu.Lock()
	o.resolver = NewResolver(index)
	o.mu.Unlock()
}

func (o *Orchestrator) currentResolver() *Resolver {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resolver
}

// History exposes the open chain for hosts computing their next request.
// Callers must treat reads as snapshots; the chain changes step by step
// while a sequence runs.
func (o *Orchestrator) History() *History {
	return o.history
}

// Propagator exposes the snapshot fan-out for subscription.
func (o *Orchestrator) Propagator() *Propagator {
	return o.propagator
}

// Phase reports the current sequence phase.
func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

// NavigateTo opens the panel chain leading to targetID, closing whatever
// part of the current chain diverges from it. Requests for unknown targets
// return ErrUnknownTarget before any transition runs; requests for the
// already-current panel are no-ops.
func (o *Orchestrator) NavigateTo(ctx context.Context, targetID string) error {
	events.Nav.Request(targetID)
	path, err := o.currentResolver().ResolvePath(targetID)
	if err != nil {
		events.Nav.Rejected(targetID, err.Error())
		return err
	}
	events.Nav.Resolved(targetID, path)
	div := Diverge(o.history.Snapshot(), path)
	events.Nav.Diverged(div.CommonPrefix, div.ToClose, div.ToOpen)
	if err := o.run(ctx, div.ToClose, div.ToOpen); err != nil {
		return err
	}
	events.Nav.Done(targetID, o.history.Snapshot())
	return nil
}

// CloseNode closes nodeID and every open descendant beneath it, deepest
// first. Closing a known node that is not open is a no-op; closing an
// unknown node returns ErrUnknownTarget.
func (o *Orchestrator) CloseNode(ctx context.Context, nodeID string) error {
	if _, ok := o.currentResolver().index.FindByID(nodeID); !ok {
		events.Nav.Rejected(nodeID, "close of unknown node")
		return fmt.Errorf("close %q: %w", nodeID, ErrUnknownTarget)
	}
	open := o.history.Snapshot()
	at := -1
	for i, id := range open {
		if id == nodeID {
			at = i
			break
		}
	}
	if at < 0 {
		return nil
	}
	toClose := make([]string, 0, len(open)-at)
	for i := len(open) - 1; i >= at; i-- {
		toClose = append(toClose, open[i])
	}
	return o.run(ctx, toClose, nil)
}

// CloseAll tears the whole menu down, closing panels deepest first.
func (o *Orchestrator) CloseAll(ctx context.Context) error {
	open := o.history.Snapshot()
	if len(open) == 0 {
		return nil
	}
	toClose := make([]string, 0, len(open))
	for i := len(open) - 1; i >= 0; i-- {
		toClose = append(toClose, open[i])
	}
	return o.run(ctx, toClose, nil)
}

func (o *Orchestrator) run(ctx context.Context, toClose, toOpen []string) error {
	defer o.setPhase(PhaseIdle)
	if len(toClose) > 0 {
		o.setPhase(PhaseClosing)
		for _, id := range toClose {
			if err := o.closeStep(ctx, id); err != nil {
				return err
			}
		}
	}
	if len(toOpen) > 0 {
		o.setPhase(PhaseOpening)
		for _, id := range toOpen {
			if err := o.openStep(ctx, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *Orchestrator) closeStep(ctx context.Context, id string) error {
	events.Panel.Closing(id)
	req := transition.Request{NodeID: id, Direction: transition.Close, Duration: o.closeDuration}
	if err := o.executor.Run(ctx, req); err != nil {
		events.Panel.StepFailed(id, transition.Close.String(), err)
		return fmt.Errorf("close %s: %w", id, err)
	}
	o.history.Pop()
	o.propagator.Publish(o.history.Snapshot())
	events.Panel.Closed(id)
	return nil
}

func (o *Orchestrator) openStep(ctx context.Context, id string) error {
	events.Panel.Opening(id)
	req := transition.Request{NodeID: id, Direction: transition.Open, Duration: o.openDuration}
	if err := o.executor.Run(ctx, req); err != nil {
		events.Panel.StepFailed(id, transition.Open.String(), err)
		return fmt.Errorf("open %s: %w", id, err)
	}
	o.history.Push(id)
	o.propagator.Publish(o.history.Snapshot())
	events.Panel.Opened(id)
	return nil
}
