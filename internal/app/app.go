package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vaaaaal/flyout-menu-control/internal/content"
	"github.com/Vaaaaal/flyout-menu-control/internal/logging"
	"github.com/Vaaaaal/flyout-menu-control/internal/logging/events"
	"github.com/Vaaaaal/flyout-menu-control/internal/nav"
	"github.com/Vaaaaal/flyout-menu-control/internal/transition"
	"github.com/Vaaaaal/flyout-menu-control/internal/tree"
	"github.com/Vaaaaal/flyout-menu-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	ContentPath  string
	Width        int
	Height       int
	OpenMs       int
	CloseMs      int
	NavTimeoutMs int
	Target       string
	ShowFooter   bool
	Watch        bool
	Verbose      bool
}

// contentSettle is how long the watcher waits for CMS writes to stop
// before re-reading the export file.
const contentSettle = 300 * time.Millisecond

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	records, err := content.Load(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("load menu content: %w", err)
	}
	events.Content.Loaded(cfg.ContentPath, len(records))
	index, err := tree.Build(records)
	if err != nil {
		return fmt.Errorf("index menu content: %w", err)
	}

	orch := nav.NewOrchestrator(nav.Options{
		Index:         index,
		Executor:      transition.Delay{},
		Propagator:    nav.NewPropagator(),
		OpenDuration:  time.Duration(cfg.OpenMs) * time.Millisecond,
		CloseDuration: time.Duration(cfg.CloseMs) * time.Millisecond,
	})

	var watcher *content.Watcher
	if cfg.Watch {
		watcher, err = content.NewWatcher(cfg.ContentPath, contentSettle)
		if err != nil {
			// The menu still works without live reload.
			logging.Error(fmt.Errorf("watch menu content: %w", err))
			watcher = nil
		} else {
			defer watcher.Stop()
		}
	}

	navTimeout := time.Duration(cfg.NavTimeoutMs) * time.Millisecond
	model := ui.NewModel(index, orch, watcher, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, navTimeout, cfg.Target)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
