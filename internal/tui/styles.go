// Package tui provides the bubbletea + lipgloss terminal UI for browsing
// keybindings.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
)

// Palette is the set of colors a Theme is built from.
type Palette struct {
	Bg        lipgloss.Color
	Fg        lipgloss.Color
	Panel     lipgloss.Color
	Accent    lipgloss.Color
	Stroke    lipgloss.Color
	Selection lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
}

var darkPalette = Palette{
	Bg:        lipgloss.Color("#0f1117"),
	Fg:        lipgloss.Color("#d4d7dc"),
	Panel:     lipgloss.Color("#151922"),
	Accent:    lipgloss.Color("#7aa2f7"),
	Stroke:    lipgloss.Color("#3b4261"),
	Selection: lipgloss.Color("#283457"),
	Muted:     lipgloss.Color("#737aa2"),
	Error:     lipgloss.Color("#f7768e"),
}

var lightPalette = Palette{
	Bg:        lipgloss.Color("#f5f5f7"),
	Fg:        lipgloss.Color("#1f2328"),
	Panel:     lipgloss.Color("#e8e9ee"),
	Accent:    lipgloss.Color("#2e5bd8"),
	Stroke:    lipgloss.Color("#b8bcc8"),
	Selection: lipgloss.Color("#cfd8f6"),
	Muted:     lipgloss.Color("#6b7080"),
	Error:     lipgloss.Color("#c4314b"),
}

// PaletteFor returns the built-in palette for a theme name. Unknown names
// get the dark palette.
func PaletteFor(name string) Palette {
	if name == config.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// WithOverride returns p with every color set in o replacing its own.
func (p Palette) WithOverride(o config.ThemeOverride) Palette {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&p.Bg, o.Bg)
	set(&p.Fg, o.Fg)
	set(&p.Panel, o.Panel)
	set(&p.Accent, o.Accent)
	set(&p.Stroke, o.Stroke)
	set(&p.Selection, o.Selection)
	return p
}
