package ui

import (
	"github.com/Vaaaaal/flyout-menu-control/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	if len(m.snapshot.Active) == 0 {
		return tea.Quit
	}
	current := m.snapshot.Current
	events.UI.PanelBack(current)
	m.forceClearInfo()
	return m.closeCmd(current)
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.navigating {
		return nil
	}
	current := m.currentPanel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	item := current.Items[current.Cursor]
	events.UI.PanelEnter(current.ID, item.ID, item.Label, current.Filter())
	before := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	return m.navigateCmd(item.ID)
}

func (m *Model) moveCursorUp() {
	if current := m.currentPanel(); current != nil {
		if moved := current.MoveCursorUp(); moved {
			events.UI.PanelCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentPanel(); current != nil {
		if moved := current.MoveCursorDown(); moved {
			events.UI.PanelCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentPanel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.PanelCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentPanel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.PanelCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentPanel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.PanelCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentPanel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.PanelCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	// A sequence is in flight: the trigger surface is disabled so requests
	// stay serialized and the history cannot race the visual state.
	if m.navigating {
		return nil
	}
	if keyMsg.String() == "ctrl+d" {
		if len(m.snapshot.Active) == 0 {
			return nil
		}
		m.forceClearInfo()
		return m.closeAllCmd()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}
