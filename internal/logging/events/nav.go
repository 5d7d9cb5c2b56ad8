package events

import "github.com/Vaaaaal/flyout-menu-control/internal/logging"

type NavTracer struct{}

type PanelTracer struct{}

var (
	Nav   = NavTracer{}
	Panel = PanelTracer{}
)

func (NavTracer) Request(target string) {
	logging.Trace("nav.request", map[string]interface{}{"target": target})
}

func (NavTracer) Resolved(target string, path []string) {
	logging.Trace("nav.resolved", map[string]interface{}{"target": target, "path": path})
}

func (NavTracer) Diverged(commonPrefix int, toClose, toOpen []string) {
	logging.Trace("nav.diverged", map[string]interface{}{
		"commonPrefix": commonPrefix,
		"toClose":      toClose,
		"toOpen":       toOpen,
	})
}

func (NavTracer) Rejected(target string, reason string) {
	logging.Trace("nav.rejected", map[string]interface{}{"target": target, "reason": reason})
}

func (NavTracer) Done(target string, history []string) {
	logging.Trace("nav.done", map[string]interface{}{"target": target, "history": history})
}

func (NavTracer) Snapshot(active []string, current string, breadcrumb []string) {
	logging.Trace("nav.snapshot", map[string]interface{}{
		"active":     active,
		"current":    current,
		"breadcrumb": breadcrumb,
	})
}

func (PanelTracer) Opening(nodeID string) {
	logging.Trace("panel.opening", map[string]interface{}{"node": nodeID})
}

func (PanelTracer) Opened(nodeID string) {
	logging.Trace("panel.opened", map[string]interface{}{"node": nodeID})
}

func (PanelTracer) Closing(nodeID string) {
	logging.Trace("panel.closing", map[string]interface{}{"node": nodeID})
}

func (PanelTracer) Closed(nodeID string) {
	logging.Trace("panel.closed", map[string]interface{}{"node": nodeID})
}

func (PanelTracer) StepFailed(nodeID, direction string, err error) {
	if err == nil {
		return
	}
	logging.Trace("panel.step-failed", map[string]interface{}{
		"node":      nodeID,
		"direction": direction,
		"error":     err.Error(),
	})
}
