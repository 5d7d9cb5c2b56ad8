// Package transition defines the contract between the navigation core and
// whatever renders panel animations. The core only knows that a transition
// takes time and signals completion; how it looks is the executor's
// business.
package transition

import (
	"context"
	"time"
)

// Direction says whether a panel is sliding open or closed.
type Direction int

const (
	Open Direction = iota
	Close
)

func (d Direction) String() string {
	if d == Close {
		return "close"
	}
	return "open"
}

// Request describes one panel transition.
type Request struct {
	NodeID    string
	Direction Direction
	Duration  time.Duration
}

// Executor performs a transition and returns once it has visually
// completed. Implementations must honor ctx cancellation; the core applies
// no internal timeout.
type Executor interface {
	Run(ctx context.Context, req Request) error
}

// Func adapts a closure into an Executor.
type Func func(ctx context.Context, req Request) error

func (f Func) Run(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// Delay is the host executor: it waits out the requested duration on a
// timer, which paces the sequential panel reveal the same way an animation
// engine would.
type Delay struct{}

func (Delay) Run(ctx context.Context, req Request) error {
	if req.Duration <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(req.Duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
