package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus   string // "table", "search", "options", "logs", "help"
	Status  string // transient message, e.g. the export path
	IsError bool   // render Status with the error style
	Hints   string // pre-rendered key hints; empty uses the defaults for Focus
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: status message. Right side: keybinding hints for the current focus.
func RenderFooter(props FooterProps, width int, style, errStyle lipgloss.Style) string {
	left := props.Status
	if props.IsError && left != "" {
		left = errStyle.Render(left)
	}

	right := props.Hints
	if right == "" {
		right = panelHints(props.Focus)
	}

	gap := width - lipgloss.Width(left) - runewidth.StringWidth(right) - 2
	if gap < 2 {
		gap = 2
	}

	return style.Width(width).MaxHeight(1).Render(" " + left + strings.Repeat(" ", gap) + right)
}

// panelHints returns the keybinding hints for a given focus.
func panelHints(focus string) string {
	switch focus {
	case "search":
		return "type to filter  esc/enter:back to table"
	case "options":
		return "j/k:move  space:toggle  [/]:tab  esc:close"
	case "logs":
		return "j/k:scroll  f:follow  esc:close"
	case "help":
		return "esc:close"
	default:
		return "/:search  1-3:sort  o:options  ?:help  q:quit"
	}
}
