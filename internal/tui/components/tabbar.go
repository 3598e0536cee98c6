// Package components provides reusable widgets for the hyprbind TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TabBar is a stateless tab bar that renders a row of labelled tabs. The
// active tab is drawn with the active style and marked with brackets.
type TabBar struct {
	tabs     []string
	active   int
	width    int
	activeS  lipgloss.Style
	inactive lipgloss.Style
}

// NewTabBar creates a TabBar with the given tab titles. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{
		tabs:     tabs,
		activeS:  lipgloss.NewStyle().Bold(true),
		inactive: lipgloss.NewStyle().Faint(true),
	}
}

// Active returns the index of the currently active tab.
func (t TabBar) Active() int {
	return t.active
}

// ActiveTitle returns the title of the active tab, or "" with no tabs.
func (t TabBar) ActiveTitle() string {
	if len(t.tabs) == 0 {
		return ""
	}
	return t.tabs[t.active]
}

// SetActive returns a TabBar with tab i active. Out-of-range values are clamped.
func (t TabBar) SetActive(i int) TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = max(0, min(i, len(t.tabs)-1))
	return t
}

// Next returns a TabBar with the next tab active (wraps around).
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.tabs)
	return t
}

// Prev returns a TabBar with the previous tab active (wraps around).
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// SetStyles returns a TabBar drawn with the given active and inactive styles.
func (t TabBar) SetStyles(active, inactive lipgloss.Style) TabBar {
	t.activeS = active
	t.inactive = inactive
	return t
}

// SetWidth returns a TabBar truncated to w cells when rendered. Zero
// disables truncation.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// View renders the tab bar as a single line string.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	labels := make([]string, len(t.tabs))
	for i, label := range t.tabs {
		if i == t.active {
			labels[i] = "[" + label + "]"
		} else {
			labels[i] = " " + label + " "
		}
	}
	if t.width > 0 {
		labels = fitLabels(labels, t.width)
	}

	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == t.active {
			parts[i] = t.activeS.Render(label)
		} else {
			parts[i] = t.inactive.Render(label)
		}
	}
	return strings.Join(parts, " │ ")
}

// fitLabels shortens labels from the end until the joined line fits in width.
func fitLabels(labels []string, width int) []string {
	const sep = 3 // " │ "
	total := sep * (len(labels) - 1)
	for _, l := range labels {
		total += runewidth.StringWidth(l)
	}
	for i := len(labels) - 1; i >= 0 && total > width; i-- {
		w := runewidth.StringWidth(labels[i])
		keep := max(1, w-(total-width))
		labels[i] = runewidth.Truncate(labels[i], keep, "…")
		total -= w - runewidth.StringWidth(labels[i])
	}
	return labels
}
