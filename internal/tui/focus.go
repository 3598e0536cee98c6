package tui

// FocusTarget identifies which widget currently holds keyboard focus.
type FocusTarget int

const (
	FocusTable  FocusTarget = iota // keybinding table
	FocusSearch                    // search bar
)

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusTable:
		return "table"
	case FocusSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Overlay identifies a panel drawn over the table.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayOptions
	OverlayLogs
	OverlayHelp
)

// String returns the overlay title.
func (o Overlay) String() string {
	switch o {
	case OverlayOptions:
		return "Options"
	case OverlayLogs:
		return "Logs"
	case OverlayHelp:
		return "Help"
	default:
		return ""
	}
}

// LoadState tracks fetching of the bind report.
type LoadState int

const (
	StateLoading    LoadState = iota // first fetch in flight
	StateReady                       // bindings loaded
	StateFailed                      // last fetch failed
	StateRefreshing                  // refetch in flight, previous bindings still shown
)

// validTransitions defines the allowed LoadState transitions.
var validTransitions = map[LoadState][]LoadState{
	StateLoading:    {StateReady, StateFailed},
	StateReady:      {StateRefreshing},
	StateFailed:     {StateRefreshing, StateLoading},
	StateRefreshing: {StateReady, StateFailed},
}

// CanTransitionTo reports whether transitioning from s to next is valid.
func (s LoadState) CanTransitionTo(next LoadState) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// Busy reports whether a fetch is in flight.
func (s LoadState) Busy() bool {
	return s == StateLoading || s == StateRefreshing
}

// Label returns a short label for the state.
func (s LoadState) Label() string {
	switch s {
	case StateLoading:
		return "Loading keybindings…"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	case StateRefreshing:
		return "Refreshing…"
	default:
		return "Unknown"
	}
}

// Symbol returns a single-character symbol representing the state.
func (s LoadState) Symbol() string {
	switch s {
	case StateLoading, StateRefreshing:
		return "⟳"
	case StateReady:
		return "✓"
	case StateFailed:
		return "✗"
	default:
		return "?"
	}
}
