package panels

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/logging"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/tui/components"
)

// LogsPanel lists the messages retained by the logger.
type LogsPanel struct {
	view components.LogView
}

// NewLogsPanel creates an empty logs panel.
func NewLogsPanel(w, h int) LogsPanel {
	return LogsPanel{view: components.NewLogView(w, h)}
}

// SetMessages replaces the panel content with msgs, oldest first.
func (p LogsPanel) SetMessages(msgs []logging.Message) LogsPanel {
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = m.String()
	}
	if len(lines) == 0 {
		lines = []string{"(no log messages)"}
	}
	p.view = p.view.SetLines(lines)
	return p
}

// SetSize resizes the panel.
func (p LogsPanel) SetSize(w, h int) LogsPanel {
	p.view = p.view.SetSize(w, h)
	return p
}

// Following reports whether the panel tracks the newest message.
func (p LogsPanel) Following() bool {
	return p.view.Following()
}

// Update handles scroll and follow keys.
func (p LogsPanel) Update(msg tea.Msg) (LogsPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p LogsPanel) View() string {
	return p.view.View()
}
