package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vaaaaal/flyout-menu-control/internal/nav"
	"github.com/Vaaaaal/flyout-menu-control/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// navSnapshotMsg carries one propagator snapshot into the event loop.
type navSnapshotMsg struct {
	snapshot nav.Snapshot
}

type navFeedDoneMsg struct{}

func waitForNavSnapshot(events <-chan nav.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-events
		if !ok {
			return navFeedDoneMsg{}
		}
		return navSnapshotMsg{snapshot: snap}
	}
}

func (m *Model) handleNavSnapshotMsg(msg tea.Msg) tea.Cmd {
	snapMsg, ok := msg.(navSnapshotMsg)
	if !ok {
		return nil
	}
	m.snapshot = snapMsg.snapshot
	m.syncPanels()
	return waitForNavSnapshot(m.navEvents)
}

func (m *Model) handleNavFeedDoneMsg(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) navigateCmd(target string) tea.Cmd {
	m.navigating = true
	m.pendingTarget = target
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		Kind:    command.KindNavigate,
		Target:  target,
		Timeout: m.navTimeout,
		Run: func(ctx context.Context) error {
			return m.orch.NavigateTo(ctx, target)
		},
	})
}

func (m *Model) closeCmd(nodeID string) tea.Cmd {
	m.navigating = true
	m.pendingTarget = nodeID
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		Kind:    command.KindClose,
		Target:  nodeID,
		Timeout: m.navTimeout,
		Run: func(ctx context.Context) error {
			return m.orch.CloseNode(ctx, nodeID)
		},
	})
}

func (m *Model) closeAllCmd() tea.Cmd {
	m.navigating = true
	m.pendingTarget = ""
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		Kind:    command.KindCloseAll,
		Timeout: m.navTimeout,
		Run: func(ctx context.Context) error {
			return m.orch.CloseAll(ctx)
		},
	})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.navigating = false
	m.pendingTarget = ""
	// Re-derive from the history rather than trusting the last forwarded
	// frame; intermediate snapshots may have been dropped.
	m.snapshot = nav.ComputeSnapshot(m.orch.History().Snapshot())
	m.syncPanels()
	if result.Err != nil {
		switch {
		case errors.Is(result.Err, nav.ErrUnknownTarget):
			m.setInfo(fmt.Sprintf("No menu entry %q", result.Target))
		case errors.Is(result.Err, context.DeadlineExceeded):
			m.errMsg = fmt.Sprintf("Transition stalled while handling %s", result.Target)
		default:
			m.errMsg = result.Err.Error()
		}
		return nil
	}
	if m.verbose && result.Kind == command.KindNavigate {
		m.setInfo(fmt.Sprintf("Opened %s", result.Target))
	}
	// A reload may have removed panels that were open while this sequence
	// ran; a partial chain has no meaning, so tear the menu down now.
	for _, id := range m.snapshot.Active {
		if _, ok := m.index.FindByID(id); !ok {
			m.setInfo("Menu content changed; closing open panels.")
			return m.closeAllCmd()
		}
	}
	return nil
}
