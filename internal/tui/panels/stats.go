package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

// StatsProps holds the numbers shown on the stats line under the search bar.
type StatsProps struct {
	Shown, Total int
	Column       keybind.SortColumn
	State        keybind.SortState
	Search       keybind.SearchOptions
}

// RenderStats renders "<shown> of <total> keybindings" followed by the
// active sort and the fields searched.
func RenderStats(props StatsProps, width int, style lipgloss.Style) string {
	parts := []string{fmt.Sprintf("%d of %d keybindings", props.Shown, props.Total)}

	if props.State != keybind.SortNone {
		parts = append(parts, fmt.Sprintf("sort: %s %s", props.Column, props.State.Indicator()))
	}
	parts = append(parts, "search: "+SearchFields(props.Search))

	return style.Width(width).MaxHeight(1).Render(" " + strings.Join(parts, "  ·  "))
}

// SearchFields lists the fields enabled in opts, or "off" when none are.
func SearchFields(opts keybind.SearchOptions) string {
	var fields []string
	if opts.Keybind {
		fields = append(fields, "keybind")
	}
	if opts.Description {
		fields = append(fields, "description")
	}
	if opts.Command {
		fields = append(fields, "command")
	}
	if len(fields) == 0 {
		return "off"
	}
	return strings.Join(fields, ", ")
}
