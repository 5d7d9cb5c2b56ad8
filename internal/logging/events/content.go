package events

import "github.com/Vaaaaal/flyout-menu-control/internal/logging"

type ContentTracer struct{}

var Content = ContentTracer{}

func (ContentTracer) Loaded(path string, records int) {
	logging.Trace("content.loaded", map[string]interface{}{"path": path, "records": records})
}

func (ContentTracer) Reloaded(path string, records int) {
	logging.Trace("content.reloaded", map[string]interface{}{"path": path, "records": records})
}

func (ContentTracer) Invalid(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("content.invalid", map[string]interface{}{"path": path, "error": err.Error()})
}
