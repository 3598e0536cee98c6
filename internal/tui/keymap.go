package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

// KeyMap holds the root model's key bindings. Table navigation keys
// (up/down, pgup/pgdown, home/end) belong to the table widget itself.
type KeyMap struct {
	Search          key.Binding
	Leave           key.Binding
	SortKeybind     key.Binding
	SortDescription key.Binding
	SortCommand     key.Binding
	Refresh         key.Binding
	Export          key.Binding
	Options         key.Binding
	Minimal         key.Binding
	Logs            key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "back"),
		),
		SortKeybind: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort keybind"),
		),
		SortDescription: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort description"),
		),
		SortCommand: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort command"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export json"),
		),
		Options: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options"),
		),
		Minimal: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "minimal"),
		),
		Logs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "logs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.SortKeybind, k.SortDescription, k.SortCommand, k.Options, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Leave, k.Refresh, k.Export},
		{k.SortKeybind, k.SortDescription, k.SortCommand},
		{k.Options, k.Minimal, k.Logs, k.Help, k.Quit},
	}
}

// SortColumn returns the column a sort key clicks.
func (k KeyMap) SortColumn(msg tea.KeyMsg) (keybind.SortColumn, bool) {
	switch {
	case key.Matches(msg, k.SortKeybind):
		return keybind.SortKeybind, true
	case key.Matches(msg, k.SortDescription):
		return keybind.SortDescription, true
	case key.Matches(msg, k.SortCommand):
		return keybind.SortCommand, true
	}
	return 0, false
}
