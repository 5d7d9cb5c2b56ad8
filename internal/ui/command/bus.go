// Package command wraps navigation requests into Bubble Tea commands so
// the model never blocks the event loop on a running transition sequence.
package command

import (
	"context"
	"time"

	"github.com/Vaaaaal/flyout-menu-control/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies the navigation entry point a request targets.
type Kind string

const (
	KindNavigate Kind = "navigate"
	KindClose    Kind = "close"
	KindCloseAll Kind = "close-all"
)

// Request encapsulates one navigation invocation.
type Request struct {
	Kind    Kind
	Target  string
	Timeout time.Duration
	Run     func(context.Context) error
}

// Result reports a finished navigation sequence back to the model.
type Result struct {
	Kind   Kind
	Target string
	Err    error
}

// Bus coordinates the execution of navigation requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs a request inside a Bubble Tea command. The timeout is the
// external stall guard for the transition executor; zero disables it.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(string(req.Kind), req.Target)
	return func() tea.Msg {
		ctx := context.Background()
		if req.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, req.Timeout)
			defer cancel()
		}
		var err error
		if req.Run != nil {
			err = req.Run(ctx)
		}
		events.Command.Result(string(req.Kind), req.Target, err)
		return Result{Kind: req.Kind, Target: req.Target, Err: err}
	}
}
