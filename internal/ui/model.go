package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/Vaaaaal/flyout-menu-control/internal/content"
	"github.com/Vaaaaal/flyout-menu-control/internal/nav"
	"github.com/Vaaaaal/flyout-menu-control/internal/theme"
	"github.com/Vaaaaal/flyout-menu-control/internal/tree"
	"github.com/Vaaaaal/flyout-menu-control/internal/ui/command"
	uistate "github.com/Vaaaaal/flyout-menu-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type panel = uistate.Panel

const (
	rootPanelID      = ""
	defaultRootTitle = "menu"

	infoDisplayFor = 4 * time.Second
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newPanel(id, title string, items []uistate.Item) *panel {
	return uistate.NewPanel(id, title, items)
}

// Model implements the Bubble Tea host around the navigation core. The
// model never mutates the history itself; it issues requests through the
// command bus and redraws from the snapshots the propagator publishes.
type Model struct {
	index   *tree.Index
	orch    *nav.Orchestrator
	watcher *content.Watcher
	bus     *command.Bus

	navEvents chan nav.Snapshot
	snapshot  nav.Snapshot
	panels    []*panel

	navigating    bool
	pendingTarget string
	navTimeout    time.Duration

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	rootTitle   string
	startTarget string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state around an index and orchestrator.
// startTarget optionally names (by id or CMS name) a node to navigate to on
// startup; navTimeout is the external stall guard for transition sequences.
func NewModel(index *tree.Index, orch *nav.Orchestrator, watcher *content.Watcher, width, height int, showFooter, verbose bool, navTimeout time.Duration, startTarget string) *Model {
	m := &Model{
		index:       index,
		orch:        orch,
		watcher:     watcher,
		bus:         command.New(),
		navEvents:   make(chan nav.Snapshot, 16),
		navTimeout:  navTimeout,
		showFooter:  showFooter,
		verbose:     verbose,
		rootTitle:   defaultRootTitle,
		startTarget: startTarget,
	}
	// Intermediate snapshots are best-effort frames; the completion message
	// re-syncs from the history, so a full channel drops rather than stalls
	// the orchestrator.
	orch.Propagator().Subscribe(func(s nav.Snapshot) {
		select {
		case m.navEvents <- s:
		default:
		}
	})
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.snapshot = nav.ComputeSnapshot(orch.History().Snapshot())
	m.syncPanels()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForNavSnapshot(m.navEvents)}
	if m.watcher != nil {
		cmds = append(cmds, waitForContentEvent(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if target, ok := m.resolveStartTarget(); ok {
		cmds = append(cmds, m.navigateCmd(target))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(navSnapshotMsg{}):    m.handleNavSnapshotMsg,
		reflect.TypeOf(navFeedDoneMsg{}):    m.handleNavFeedDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
		reflect.TypeOf(contentEventMsg{}):   m.handleContentEventMsg,
		reflect.TypeOf(contentDoneMsg{}):    m.handleContentDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// resolveStartTarget maps the configured start entry to a node id, trying
// the id first and the CMS name second.
func (m *Model) resolveStartTarget() (string, bool) {
	if m.startTarget == "" {
		return "", false
	}
	if node, ok := m.index.FindByID(m.startTarget); ok {
		return node.ID, true
	}
	if node, ok := m.index.FindByName(m.startTarget); ok {
		return node.ID, true
	}
	m.errMsg = fmt.Sprintf("Unknown menu entry %q", m.startTarget)
	return "", false
}

// syncPanels rebuilds the open columns from the latest snapshot, keeping
// cursor and filter state for panels that remain open.
func (m *Model) syncPanels() {
	prev := make(map[string]*panel, len(m.panels))
	for _, p := range m.panels {
		prev[p.ID] = p
	}
	next := make([]*panel, 0, len(m.snapshot.Active)+1)
	root := prev[rootPanelID]
	if root == nil {
		root = newPanel(rootPanelID, m.rootTitle, itemsForNodes(m.index.Roots()))
	} else {
		root.UpdateItems(itemsForNodes(m.index.Roots()))
	}
	next = append(next, root)
	for _, id := range m.snapshot.Active {
		node, ok := m.index.FindByID(id)
		if !ok {
			continue
		}
		items := itemsForNodes(m.index.ChildrenOf(id))
		p := prev[id]
		if p == nil {
			p = newPanel(id, panelTitle(node), items)
		} else {
			p.Title = panelTitle(node)
			p.UpdateItems(items)
		}
		next = append(next, p)
	}
	m.panels = next
	m.syncViewport(m.currentPanel())
}

func (m *Model) currentPanel() *panel {
	if len(m.panels) == 0 {
		return nil
	}
	return m.panels[len(m.panels)-1]
}

func (m *Model) syncViewport(p *panel) {
	if p == nil {
		return
	}
	p.VisibleWindow(m.maxVisibleItems())
}

func itemsForNodes(nodes []tree.Node) []uistate.Item {
	items := make([]uistate.Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, uistate.Item{
			ID:     node.ID,
			Label:  panelTitle(node),
			Folder: node.Kind == tree.Folder,
		})
	}
	return items
}

func panelTitle(node tree.Node) string {
	if node.Title != "" {
		return node.Title
	}
	if node.Name != "" {
		return node.Name
	}
	return node.ID
}

func (m *Model) setInfo(msg string) {
	m.infoMsg = msg
	m.infoExpire = time.Now().Add(infoDisplayFor)
}

func (m *Model) clearInfo() {
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	return m.infoMsg
}
