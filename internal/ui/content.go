package ui

import (
	"github.com/Vaaaaal/flyout-menu-control/internal/content"
	"github.com/Vaaaaal/flyout-menu-control/internal/logging/events"
	"github.com/Vaaaaal/flyout-menu-control/internal/tree"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForContentEvent(w *content.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return contentDoneMsg{}
		}
		return contentEventMsg{event: evt}
	}
}

type contentEventMsg struct {
	event content.Event
}

type contentDoneMsg struct{}

func (m *Model) handleContentEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(contentEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyContentEvent(eventMsg.event)
	if m.watcher != nil {
		waitCmd := waitForContentEvent(m.watcher)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleContentDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyContentEvent swaps in a re-indexed content snapshot. Open panels
// that survived the edit keep their state; if any open panel vanished the
// whole menu is torn down, since a partial chain has no meaning.
func (m *Model) applyContentEvent(evt content.Event) tea.Cmd {
	if evt.Err != nil {
		events.Content.Invalid(evt.Path, evt.Err)
		m.errMsg = evt.Err.Error()
		return nil
	}
	index, err := tree.Build(evt.Records)
	if err != nil {
		events.Content.Invalid(evt.Path, err)
		m.errMsg = err.Error()
		return nil
	}
	events.Content.Reloaded(evt.Path, len(evt.Records))
	m.index = index
	m.orch.Rebind(index)
	m.errMsg = ""
	for _, id := range m.snapshot.Active {
		if _, ok := index.FindByID(id); !ok {
			m.setInfo("Menu content changed; closing open panels.")
			if m.navigating {
				// A sequence is running against the old snapshot; its
				// completion handler performs the teardown instead.
				return nil
			}
			return m.closeAllCmd()
		}
	}
	m.syncPanels()
	return nil
}
