package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	panelMinWidth     = 18
	panelMaxWidth     = 40
	panelGap          = 2
	defaultPanelWidth = 28

	breadcrumbSeparator = " › "
)

// View implements tea.Model.
func (m *Model) View() string {
	m.clearInfo()
	var b strings.Builder
	b.WriteString(m.menuHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderColumns())
	b.WriteString("\n")
	if prompt, style := m.filterPrompt(); prompt != "" {
		if style != nil {
			prompt = style.Render(prompt)
		}
		b.WriteString(prompt)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderWith(styles.Error, m.errMsg))
		b.WriteString("\n")
	} else if info := m.currentInfo(); info != "" {
		b.WriteString("\n")
		b.WriteString(renderWith(styles.Info, info))
		b.WriteString("\n")
	}
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(renderWith(styles.Footer, "↑/↓ move  enter open  esc close  ctrl+d close all  ctrl+c quit"))
		b.WriteString("\n")
	}
	return b.String()
}

// menuHeader renders the breadcrumb trail of the open path.
func (m *Model) menuHeader() string {
	segments := make([]string, 0, len(m.snapshot.Active)+1)
	if len(m.snapshot.Active) == 0 {
		segments = append(segments, renderWith(styles.Header, m.rootTitle))
	} else {
		segments = append(segments, renderWith(styles.Breadcrumb, m.rootTitle))
		for i, id := range m.snapshot.Active {
			title := id
			if node, ok := m.index.FindByID(id); ok {
				title = panelTitle(node)
			}
			if i == len(m.snapshot.Active)-1 {
				segments = append(segments, renderWith(styles.Header, title))
			} else {
				segments = append(segments, renderWith(styles.Breadcrumb, title))
			}
		}
	}
	header := strings.Join(segments, breadcrumbSeparator)
	if m.navigating {
		loading := "…"
		if m.pendingTarget != "" {
			if node, ok := m.index.FindByID(m.pendingTarget); ok {
				loading = "… " + panelTitle(node)
			}
		}
		header += "  " + renderWith(styles.Loading, loading)
	}
	return header
}

func (m *Model) renderColumns() string {
	if len(m.panels) == 0 {
		return renderWith(styles.Info, "(no menu content)")
	}
	width := m.panelWidth()
	cols := make([]string, 0, len(m.panels))
	for i, p := range m.panels {
		focused := i == len(m.panels)-1
		activeChild := ""
		if i < len(m.snapshot.Active) {
			activeChild = m.snapshot.Active[i]
		}
		cols = append(cols, m.renderPanel(p, width, focused, activeChild))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) renderPanel(p *panel, width int, focused bool, activeChild string) string {
	lines := make([]string, 0, 16)
	lines = append(lines, renderWith(styles.PanelTitle, truncate.String(p.Title, uint(width))))
	start, displayItems := p.VisibleWindow(m.maxVisibleItems())
	if len(p.Items) == 0 {
		msg := "(no entries)"
		if filter := p.Filter(); filter != "" {
			msg = fmt.Sprintf("No matches for %q", filter)
		}
		lines = append(lines, renderWith(styles.Info, truncate.String(msg, uint(width))))
	}
	for i, item := range displayItems {
		idx := start + i
		label := item.Label
		if item.Folder {
			label += " ›"
		}
		prefix := "  "
		style := styles.Item
		switch {
		case focused && idx == p.Cursor:
			prefix = "▸ "
			style = styles.SelectedItem
		case item.ID != "" && item.ID == activeChild:
			prefix = "• "
			if item.ID == m.snapshot.Current {
				style = styles.CurrentItem
			} else {
				style = styles.ActiveItem
			}
		}
		text := truncate.String(prefix+label, uint(width))
		lines = append(lines, renderWith(style, text))
	}
	column := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width + panelGap).Render(column)
}

func (m *Model) panelWidth() int {
	if m.width <= 0 || len(m.panels) == 0 {
		return defaultPanelWidth
	}
	width := (m.width - panelGap*len(m.panels)) / len(m.panels)
	if width < panelMinWidth {
		width = panelMinWidth
	}
	if width > panelMaxWidth {
		width = panelMaxWidth
	}
	return width
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 12
	}
	visible := m.height - 7
	if visible < 3 {
		visible = 3
	}
	return visible
}

func renderWith(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
