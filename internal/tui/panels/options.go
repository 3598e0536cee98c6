package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/tui/components"
)

// OptionsChangedMsg is emitted when the user toggles a setting. Config is the
// full configuration with the change applied.
type OptionsChangedMsg struct{ Config config.Config }

// Options panel tabs.
const (
	TabTheme = iota
	TabColumns
	TabSearch
)

var optionTabs = []string{"Theme", "Columns", "Search"}

// option is one toggleable row in the options panel.
type option struct {
	label string
	radio bool // rendered as (•) instead of [x]
	get   func(c config.Config) bool
	set   func(c *config.Config)
}

var tabOptions = [][]option{
	TabTheme: {
		{
			label: "Dark", radio: true,
			get: func(c config.Config) bool { return c.Theme == config.ThemeDark },
			set: func(c *config.Config) { c.Theme = config.ThemeDark },
		},
		{
			label: "Light", radio: true,
			get: func(c config.Config) bool { return c.Theme == config.ThemeLight },
			set: func(c *config.Config) { c.Theme = config.ThemeLight },
		},
		{
			label: "Minimal mode (z to leave)",
			get:   func(c config.Config) bool { return c.Minimal },
			set:   func(c *config.Config) { c.Minimal = !c.Minimal },
		},
	},
	TabColumns: {
		{
			label: "Keybind",
			get:   func(c config.Config) bool { return c.Columns.Keybind },
			set:   func(c *config.Config) { c.Columns.Keybind = !c.Columns.Keybind },
		},
		{
			label: "Description",
			get:   func(c config.Config) bool { return c.Columns.Description },
			set:   func(c *config.Config) { c.Columns.Description = !c.Columns.Description },
		},
		{
			label: "Command",
			get:   func(c config.Config) bool { return c.Columns.Command },
			set:   func(c *config.Config) { c.Columns.Command = !c.Columns.Command },
		},
	},
	TabSearch: {
		{
			label: "Keybind",
			get:   func(c config.Config) bool { return c.Search.Keybind },
			set:   func(c *config.Config) { c.Search.Keybind = !c.Search.Keybind },
		},
		{
			label: "Description",
			get:   func(c config.Config) bool { return c.Search.Description },
			set:   func(c *config.Config) { c.Search.Description = !c.Search.Description },
		},
		{
			label: "Command",
			get:   func(c config.Config) bool { return c.Search.Command },
			set:   func(c *config.Config) { c.Search.Command = !c.Search.Command },
		},
	},
}

// OptionsPanel edits the theme, column visibility and search fields.
type OptionsPanel struct {
	tabs   components.TabBar
	cfg    config.Config
	cursor int
	accent lipgloss.Style
	width  int
}

// NewOptionsPanel creates an options panel showing cfg.
func NewOptionsPanel(cfg config.Config, w int) OptionsPanel {
	return OptionsPanel{
		tabs:   components.NewTabBar(optionTabs),
		cfg:    cfg,
		accent: lipgloss.NewStyle().Bold(true),
		width:  w,
	}
}

// SetConfig replaces the settings shown, keeping tab and cursor.
func (p OptionsPanel) SetConfig(cfg config.Config) OptionsPanel {
	p.cfg = cfg
	return p
}

// Config returns the settings as currently shown.
func (p OptionsPanel) Config() config.Config {
	return p.cfg
}

// SetStyles sets the accent style for the selected row and active tab.
func (p OptionsPanel) SetStyles(accent, muted lipgloss.Style) OptionsPanel {
	p.accent = accent
	p.tabs = p.tabs.SetStyles(accent, muted)
	return p
}

// SetWidth resizes the panel.
func (p OptionsPanel) SetWidth(w int) OptionsPanel {
	p.width = w
	p.tabs = p.tabs.SetWidth(w)
	return p
}

// Tab returns the active tab index.
func (p OptionsPanel) Tab() int {
	return p.tabs.Active()
}

// Cursor returns the highlighted row in the active tab.
func (p OptionsPanel) Cursor() int {
	return p.cursor
}

// Update handles navigation and toggle keys.
func (p OptionsPanel) Update(msg tea.Msg) (OptionsPanel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	opts := tabOptions[p.tabs.Active()]
	switch km.String() {
	case "tab", "]", "right":
		p.tabs = p.tabs.Next()
		p.cursor = 0
	case "shift+tab", "[", "left":
		p.tabs = p.tabs.Prev()
		p.cursor = 0
	case "j", "down":
		if p.cursor < len(opts)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case " ", "enter", "x":
		opts[p.cursor].set(&p.cfg)
		cfg := p.cfg
		return p, func() tea.Msg { return OptionsChangedMsg{Config: cfg} }
	}
	return p, nil
}

// View renders the tab bar followed by the rows of the active tab.
func (p OptionsPanel) View() string {
	var b strings.Builder
	b.WriteString(p.tabs.View())
	b.WriteString("\n\n")

	for i, o := range tabOptions[p.tabs.Active()] {
		mark := checkbox(o.get(p.cfg), o.radio)
		line := mark + " " + o.label
		if i == p.cursor {
			line = p.accent.Render("> " + line)
		} else {
			line = "  " + line
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

func checkbox(on, radio bool) string {
	switch {
	case radio && on:
		return "(•)"
	case radio:
		return "( )"
	case on:
		return "[x]"
	default:
		return "[ ]"
	}
}
