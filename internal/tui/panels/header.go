// Package panels provides the header, footer, stats, options and log panels
// of the hyprbind TUI.
package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
// String fields for state avoid importing the parent tui package (circular dep prevention).
type HeaderProps struct {
	Source      string // command the bind report came from
	StateSymbol string // e.g. "✓", "✗", "⟳"
	StateLabel  string // e.g. "Ready", "Loading keybindings…"
	Theme       string
	Override    bool // theme override file in effect
}

// RenderHeader renders the header bar. style is applied to the full width.
func RenderHeader(props HeaderProps, width int, style lipgloss.Style) string {
	parts := []string{"HyprBind"}

	stateLabel := props.StateLabel
	if props.StateSymbol != "" && props.StateLabel != "" {
		stateLabel = props.StateSymbol + " " + props.StateLabel
	}
	if stateLabel != "" {
		parts = append(parts, stateLabel)
	}
	if props.Source != "" {
		parts = append(parts, fmt.Sprintf("source: %s", props.Source))
	}
	if props.Theme != "" {
		theme := props.Theme
		if props.Override {
			theme += " (custom)"
		}
		parts = append(parts, fmt.Sprintf("theme: %s", theme))
	}

	content := strings.Join(parts, "  │  ")
	return style.Width(width).MaxHeight(1).Render(content)
}
