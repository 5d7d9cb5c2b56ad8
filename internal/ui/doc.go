// Package ui contains the Bubble Tea program that hosts the flyout menu
// controller. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function (key presses, nav snapshots, content reloads).
//   - Key handlers (internal/ui/navigation.go) translate user intent into
//     navigation requests; they never touch the history directly. Requests
//     run asynchronously through the internal/ui/command bus, and the model
//     disables enter/esc while a sequence is in flight so requests stay
//     serialized.
//   - The nav propagator publishes one snapshot per history mutation; those
//     are forwarded into the event loop as navSnapshotMsg values so each
//     completed open/close step redraws the columns mid-sequence.
//
// State ownership:
//   - Per-column state lives in internal/ui/state.Panel, which tracks items,
//     filtering, and viewport calculations.
//   - The open path itself is owned by the nav orchestrator; the model only
//     renders the snapshots derived from it.
//   - A content.Watcher streams CMS reload events; applyContentEvent swaps
//     the tree index and tears the menu down if an open panel vanished.
package ui
