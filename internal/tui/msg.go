package tui

import (
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

// bindingsLoadedMsg carries the result of a bind report fetch.
type bindingsLoadedMsg struct {
	Bindings keybind.Bindings
	Err      error
}

// exportDoneMsg carries the result of a JSON export.
type exportDoneMsg struct {
	Path string
	Err  error
}

// configSavedMsg carries the result of persisting the config.
type configSavedMsg struct{ Err error }

// themeChangedMsg carries a reloaded theme override.
type themeChangedMsg struct {
	Override config.ThemeOverride
	Err      error
}

// themeWatchClosedMsg signals the theme change channel closed.
type themeWatchClosedMsg struct{}

// clearStatusMsg expires the status line set with the same id.
type clearStatusMsg struct{ id int }

// logsTickMsg refreshes the logs overlay while it is open.
type logsTickMsg struct{}
