package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/tui/panels"
)

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case bindingsLoadedMsg:
		return m.handleBindingsLoaded(msg)
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case configSavedMsg:
		if msg.Err != nil {
			m.log.Warn("saving config", "path", m.configPath, "error", msg.Err)
			return m.setStatus(fmt.Sprintf("Failed to save config: %v", msg.Err), true)
		}
		return m, nil
	case themeChangedMsg:
		return m.handleThemeChanged(msg)
	case themeWatchClosedMsg:
		m.themeChanges = nil
		return m, nil
	case panels.OptionsChangedMsg:
		return m.applyConfig(msg.Config)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status, m.statusErr = "", false
		}
		return m, nil
	case logsTickMsg:
		if m.overlay != OverlayLogs {
			return m, nil
		}
		m.logs = m.logs.SetMessages(m.log.Messages())
		return m, logsTickCmd()
	}
	return m.delegateToFocused(msg)
}

// resize recomputes the layout and resizes every widget.
func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.layout = Calculate(width, height, m.cfg.Minimal)
	if m.layout.TooSmall {
		return m
	}

	searchW, _ := innerDims(m.layout.Search)
	m.search.Width = max(1, searchW-len(m.search.Prompt)-1)

	overlayW, overlayH := overlayDims(m.layout.Table)
	m.options = m.options.SetWidth(overlayW)
	m.logs = m.logs.SetSize(overlayW, overlayH)
	m.help.Width = overlayW

	return m.rebuildTable()
}

// overlayDims returns the content size of an overlay drawn over r: the
// border, one column of padding per side and the title line.
func overlayDims(r Rect) (w, h int) {
	w, h = innerDims(r)
	return max(1, w-2), max(1, h-2)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.overlay != OverlayNone {
		return m.handleOverlayKey(msg)
	}
	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	if col, ok := m.keys.SortColumn(msg); ok {
		return m.clickColumn(col), nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		if m.cfg.Minimal {
			return m, nil
		}
		m.focus = FocusSearch
		m.table.Blur()
		return m, m.search.Focus()
	case msg.String() == "esc" && m.query != "":
		m.search.SetValue("")
		m.query = ""
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Refresh):
		return m.startRefresh()
	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	case key.Matches(msg, m.keys.Options):
		m.options = m.options.SetConfig(m.cfg)
		m.overlay = OverlayOptions
		return m, nil
	case key.Matches(msg, m.keys.Minimal):
		cfg := m.cfg
		cfg.Minimal = !cfg.Minimal
		return m.applyConfig(cfg)
	case key.Matches(msg, m.keys.Logs):
		m.overlay = OverlayLogs
		m.logs = m.logs.SetMessages(m.log.Messages())
		return m, logsTickCmd()
	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil
	}
	return m.delegateToFocused(msg)
}

// handleOverlayKey routes keys while an overlay is open. esc and the key
// that opened the overlay close it.
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	closeKey := map[Overlay]key.Binding{
		OverlayOptions: m.keys.Options,
		OverlayLogs:    m.keys.Logs,
		OverlayHelp:    m.keys.Help,
	}[m.overlay]
	if msg.String() == "esc" || msg.String() == "q" || key.Matches(msg, closeKey) {
		m.overlay = OverlayNone
		return m, nil
	}
	return m.delegateToFocused(msg)
}

// handleSearchKey edits the query. Every change re-runs the filter.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leave) {
		m.focus = FocusTable
		m.search.Blur()
		m.table.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query {
		m.query = v
		m = m.refresh()
	}
	return m, cmd
}

// delegateToFocused forwards msg to the overlay or the focused widget.
func (m Model) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.overlay {
	case OverlayOptions:
		m.options, cmd = m.options.Update(msg)
		return m, cmd
	case OverlayLogs:
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	case OverlayHelp:
		return m, nil
	}

	switch m.focus {
	case FocusSearch:
		m.search, cmd = m.search.Update(msg)
	case FocusTable:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// handleMouse treats a left click on a column title as a sort click and
// scrolls the table with the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone || m.layout.TooSmall {
		return m.delegateToFocused(msg)
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.table.MoveUp(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.table.MoveDown(1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if msg.Y != m.layout.Table.Y+1 {
			return m, nil
		}
		if col, ok := m.columnAt(msg.X); ok {
			return m.clickColumn(col), nil
		}
	}
	return m, nil
}

// columnAt returns the column whose title spans screen column x.
func (m Model) columnAt(x int) (keybind.SortColumn, bool) {
	start := m.layout.Table.X + 1
	for i, w := range m.colWidths {
		end := start + w + cellPadding
		if x >= start && x < end {
			return m.cols[i].sort, true
		}
		start = end
	}
	return 0, false
}

// clickColumn advances the sort state as a click on col's header would.
func (m Model) clickColumn(col keybind.SortColumn) Model {
	m.sortColumn, m.sortState = keybind.NextSortState(m.sortColumn, col, m.sortState)
	m.log.Debug("sort changed", "column", m.sortColumn, "state", m.sortState)
	return m.refresh()
}

func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	if !m.loadState.CanTransitionTo(StateRefreshing) {
		return m, nil
	}
	m.loadState = StateRefreshing
	m.log.Info("refreshing keybindings", "source", m.sourceName)
	return m, fetchCmd(m.source)
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.exportDir == "" {
		return m, nil
	}
	return m, exportCmd(m.exportDir, m.bindings, m.now(), m.cfg.Export.Retention, m.log)
}

func (m Model) handleBindingsLoaded(msg bindingsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		if m.loadState.CanTransitionTo(StateFailed) {
			m.loadState = StateFailed
		}
		m.log.Error("loading keybindings", "source", m.sourceName, "error", msg.Err)
		m = m.refresh()
		return m.setStatus(fmt.Sprintf("Failed to load keybindings: %v", msg.Err), true)
	}

	m.err = nil
	m.bindings = msg.Bindings
	if m.loadState.CanTransitionTo(StateReady) {
		m.loadState = StateReady
	}
	m.log.Info("loaded keybindings", "source", m.sourceName, "count", msg.Bindings.Len())
	if m.statusErr {
		m.status, m.statusErr = "", false
	}
	return m.refresh(), nil
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error("exporting keybindings", "dir", m.exportDir, "error", msg.Err)
		return m.setStatus(fmt.Sprintf("Export failed: %v", msg.Err), true)
	}
	m.log.Info("exported keybindings", "path", msg.Path, "count", m.bindings.Len())
	return m.setStatus("Exported to "+msg.Path, false)
}

func (m Model) handleThemeChanged(msg themeChangedMsg) (tea.Model, tea.Cmd) {
	var next tea.Cmd
	if m.themeChanges != nil {
		next = waitForThemeChange(m.themeChanges, m.themePath)
	}
	if msg.Err != nil {
		m.log.Warn("loading theme override", "path", m.themePath, "error", msg.Err)
		return m, next
	}
	if msg.Override != m.override {
		m.log.Info("theme override applied", "path", m.themePath, "custom", !msg.Override.IsZero())
	}
	m.override = msg.Override
	m = m.applyTheme()
	return m.rebuildTable(), next
}

// applyConfig makes cfg the session configuration and saves it.
func (m Model) applyConfig(cfg config.Config) (tea.Model, tea.Cmd) {
	prev := m.cfg
	m.cfg = cfg
	m.options = m.options.SetConfig(cfg)

	if cfg.Theme != prev.Theme {
		m = m.applyTheme()
	}

	var cmds []tea.Cmd
	if cfg.Minimal != prev.Minimal {
		if cfg.Minimal {
			m.overlay = OverlayNone
			m.focus = FocusTable
			m.search.Blur()
			m.table.Focus()
		}
		var status tea.Cmd
		m, status = m.setMinimalStatus(cfg.Minimal)
		cmds = append(cmds, status)
	}
	m = m.resize(m.width, m.height).refresh()

	if m.configPath != "" {
		cmds = append(cmds, saveConfigCmd(m.configPath, cfg))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) setMinimalStatus(on bool) (Model, tea.Cmd) {
	if on {
		return m.setStatus("Minimal mode: press z to leave", false)
	}
	return m.setStatus("Minimal mode off", false)
}

// applyTheme rebuilds the theme from the configured name and the current
// override and restyles the widgets.
func (m Model) applyTheme() Model {
	m.theme = NewTheme(m.cfg.Theme, m.override)
	m.table.SetStyles(m.theme.TableStyles())
	m.help.Styles = m.theme.HelpStyles()
	m.options = m.options.SetStyles(m.theme.titleStyle, m.theme.statsStyle)
	m.search.PromptStyle = m.theme.titleStyle
	m.search.TextStyle = m.search.TextStyle.Foreground(m.theme.Palette.Fg)
	return m
}

// setStatus shows text in the footer. Errors stay until replaced; other
// messages expire after statusTTL.
func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusErr = isErr
	if isErr {
		return m, nil
	}
	return m, clearStatusCmd(m.statusID)
}

// refresh re-runs the filter and sort and rebuilds the table.
func (m Model) refresh() Model {
	m.visible = keybind.FilterAndSort(m.bindings.Entries, m.query, m.cfg.Search, m.sortColumn, m.sortState)
	return m.rebuildTable()
}

// rebuildTable renders the visible entries into the table widget.
func (m Model) rebuildTable() Model {
	w, h := innerDims(m.layout.Table)
	m.cols = visibleColumns(m.cfg.Columns)
	tcols, rows, widths := buildTable(m.visible, m.cols, m.sortColumn, m.sortState, w)
	m.colWidths = widths

	// Rows must be cleared first: the table renders existing rows against
	// the new columns.
	m.table.SetRows(nil)
	m.table.SetColumns(tcols)
	m.table.SetRows(rows)
	m.table.SetWidth(w)
	m.table.SetHeight(h)

	if n := len(rows); n > 0 {
		m.table.SetCursor(max(0, min(m.table.Cursor(), n-1)))
	}
	return m
}
