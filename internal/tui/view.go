package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/tui/panels"
)

// View renders the full TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, minWidth, minHeight)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	body := m.renderBody()
	if m.layout.Minimal {
		return body
	}

	header := panels.RenderHeader(panels.HeaderProps{
		Source:      m.sourceName,
		StateSymbol: m.loadState.Symbol(),
		StateLabel:  m.loadState.Label(),
		Theme:       m.theme.Name,
		Override:    m.theme.Override,
	}, m.layout.Header.Width, m.theme.HeaderStyle())

	searchW, searchH := innerDims(m.layout.Search)
	search := m.theme.PanelBorderStyle(m.focus == FocusSearch && m.overlay == OverlayNone).
		Width(searchW).Height(searchH).
		Render(m.search.View())

	stats := panels.RenderStats(panels.StatsProps{
		Shown:  len(m.visible),
		Total:  m.bindings.Len(),
		Column: m.sortColumn,
		State:  m.sortState,
		Search: m.cfg.Search,
	}, m.layout.Stats.Width, m.theme.statsStyle)

	footer := panels.RenderFooter(panels.FooterProps{
		Focus:   focusName(m.focus, m.overlay),
		Status:  m.status,
		IsError: m.statusErr,
	}, m.layout.Footer.Width, m.theme.FooterStyle(), m.theme.errorStyle)

	return lipgloss.JoinVertical(lipgloss.Left, header, search, stats, body, footer)
}

// focusName returns the footer hint context for the focused widget or the
// open overlay.
func focusName(f FocusTarget, o Overlay) string {
	switch o {
	case OverlayOptions:
		return "options"
	case OverlayLogs:
		return "logs"
	case OverlayHelp:
		return "help"
	}
	return f.String()
}

// renderBody renders the table region: an open overlay, a notice, or the
// table itself.
func (m Model) renderBody() string {
	w, h := innerDims(m.layout.Table)

	if m.overlay != OverlayNone {
		title := m.theme.titleStyle.Render(m.overlay.String())
		return m.theme.overlayStyle.
			Width(w).Height(h).
			Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.overlayView()))
	}

	content := m.table.View()
	if notice := m.tableNotice(); notice != "" {
		content = lipgloss.NewStyle().
			Width(w).
			Align(lipgloss.Center).
			Foreground(m.theme.Palette.Muted).
			Render(notice)
	}
	return m.theme.PanelBorderStyle(m.focus == FocusTable).
		Width(w).Height(h).
		Render(content)
}

func (m Model) overlayView() string {
	switch m.overlay {
	case OverlayOptions:
		return m.options.View()
	case OverlayLogs:
		return m.logs.View()
	case OverlayHelp:
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return ""
}

// tableNotice returns the text shown instead of the table, or "" when the
// table has rows to show.
func (m Model) tableNotice() string {
	switch {
	case m.loadState == StateLoading:
		return StateLoading.Label()
	case m.err != nil && m.bindings.Len() == 0:
		return fmt.Sprintf("Failed to load keybindings: %v", m.err)
	case len(m.cols) == 0:
		return "All columns are hidden. Press o to choose columns."
	case m.bindings.Len() == 0:
		return "No keybindings found."
	case len(m.visible) == 0:
		return fmt.Sprintf("No keybindings match %q.", m.query)
	}
	return ""
}
