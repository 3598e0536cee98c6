package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
)

// Theme holds the palette-derived styles for the TUI.
type Theme struct {
	Name     string
	Palette  Palette
	Override bool // true when a theme override file supplied colors

	headerStyle     lipgloss.Style
	statsStyle      lipgloss.Style
	footerStyle     lipgloss.Style
	errorStyle      lipgloss.Style
	borderFocused   lipgloss.Style
	borderUnfocused lipgloss.Style
	overlayStyle    lipgloss.Style
	titleStyle      lipgloss.Style
}

// NewTheme creates a Theme from a theme name ("dark" or "light") and an
// optional override. Colors set in the override replace the palette's.
func NewTheme(name string, override config.ThemeOverride) Theme {
	p := PaletteFor(name).WithOverride(override)
	return Theme{
		Name:     name,
		Palette:  p,
		Override: !override.IsZero(),
		headerStyle: lipgloss.NewStyle().
			Background(p.Panel).
			Foreground(p.Accent).
			Bold(true),
		statsStyle: lipgloss.NewStyle().
			Foreground(p.Muted),
		footerStyle: lipgloss.NewStyle().
			Background(p.Panel).
			Foreground(p.Muted),
		errorStyle: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Stroke),
		overlayStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		titleStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
	}
}

// HeaderStyle returns the style for the header bar.
func (t Theme) HeaderStyle() lipgloss.Style { return t.headerStyle }

// FooterStyle returns the style for the footer bar.
func (t Theme) FooterStyle() lipgloss.Style { return t.footerStyle }

// PanelBorderStyle returns the border style for a region based on whether
// it currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// TableStyles returns the bubbles table styles for the palette.
func (t Theme) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Palette.Stroke).
		BorderBottom(true).
		Foreground(t.Palette.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(t.Palette.Fg).
		Background(t.Palette.Selection).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(t.Palette.Fg)
	return s
}

// HelpStyles returns the bubbles help styles for the palette.
func (t Theme) HelpStyles() help.Styles {
	s := help.New().Styles
	s.ShortKey = lipgloss.NewStyle().Foreground(t.Palette.Accent)
	s.ShortDesc = lipgloss.NewStyle().Foreground(t.Palette.Muted)
	s.ShortSeparator = lipgloss.NewStyle().Foreground(t.Palette.Stroke)
	s.FullKey = s.ShortKey
	s.FullDesc = s.ShortDesc
	s.FullSeparator = s.ShortSeparator
	return s
}
