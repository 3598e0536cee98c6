package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// LogView is a scrollable list of pre-rendered lines that wraps
// bubbles/viewport. In follow mode (default) replacing the content keeps the
// view at the bottom. Scrolling up leaves follow mode; 'f' toggles it.
type LogView struct {
	vp     viewport.Model
	lines  []string
	follow bool
}

// NewLogView creates a LogView with the given dimensions, initially in follow mode.
func NewLogView(w, h int) LogView {
	return LogView{
		vp:     viewport.New(w, h),
		follow: true,
	}
}

// SetLines replaces all lines. Scrolls to the bottom if follow mode is enabled.
func (v LogView) SetLines(lines []string) LogView {
	v.lines = append([]string(nil), lines...)
	v.vp.SetContent(strings.Join(v.lines, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Len returns the number of lines held.
func (v LogView) Len() int {
	return len(v.lines)
}

// ToggleFollow switches follow mode on or off.
// When turned on, scrolls immediately to the bottom.
func (v LogView) ToggleFollow() LogView {
	v.follow = !v.follow
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// SetSize resizes the log view to the given dimensions.
func (v LogView) SetSize(w, h int) LogView {
	v.vp.Width = w
	v.vp.Height = h
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// Following reports whether follow mode is currently active.
func (v LogView) Following() bool {
	return v.follow
}

// Update handles scroll keys and mouse wheel events.
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "f" {
		return v.ToggleFollow(), nil
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	if v.follow && !v.vp.AtBottom() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			v.follow = false
		}
	}
	return v, cmd
}

// View renders the visible lines.
func (v LogView) View() string {
	return v.vp.View()
}
