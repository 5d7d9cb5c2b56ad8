package events

import "github.com/Vaaaaal/flyout-menu-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) PanelEnter(panelID, itemID, label, filter string) {
	logging.Trace("panel.enter", map[string]interface{}{
		"panel":  panelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) PanelBack(panelID string) {
	logging.Trace("panel.back", map[string]interface{}{"panel": panelID})
}

func (UITracer) PanelCursor(panelID string, cursor int) {
	logging.Trace("panel.cursor", map[string]interface{}{"panel": panelID, "cursor": cursor})
}

func (FilterTracer) Cleared(panelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"panel": panelID})
}

func (FilterTracer) WordBackspace(panelID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"panel": panelID, "filter": filter})
}

func (FilterTracer) Cursor(panelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"panel": panelID, "cursor": pos})
}

func (FilterTracer) CursorWord(panelID string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"panel": panelID, "cursor": pos})
}

func (FilterTracer) Append(panelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"panel": panelID, "filter": filter})
}

func (FilterTracer) Backspace(panelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"panel": panelID, "filter": filter})
}

func (CommandTracer) Queue(kind, target string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind, "target": target})
}

func (CommandTracer) Result(kind, target string, err error) {
	payload := map[string]interface{}{"kind": kind, "target": target}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
