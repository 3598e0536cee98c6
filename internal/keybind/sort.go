package keybind

import (
	"slices"
	"strings"
)

// SortColumn identifies a sortable table column.
type SortColumn int

const (
	SortKeybind SortColumn = iota
	SortDescription
	SortCommand
)

// String returns the column title.
func (c SortColumn) String() string {
	switch c {
	case SortKeybind:
		return "Keybind"
	case SortDescription:
		return "Description"
	case SortCommand:
		return "Command"
	default:
		return "unknown"
	}
}

// SortState is the tri-state direction of the sorted column.
type SortState int

const (
	SortNone SortState = iota
	SortAscending
	SortDescending
)

// String returns a lowercase label for the state.
func (s SortState) String() string {
	switch s {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return "unsorted"
	}
}

// Indicator returns the arrow shown next to a sorted column title.
func (s SortState) Indicator() string {
	switch s {
	case SortAscending:
		return "▲"
	case SortDescending:
		return "▼"
	default:
		return ""
	}
}

// NextSortState returns the column and state after clicking a column header.
// Clicking the current column cycles Ascending → Descending → None →
// Ascending; clicking another column selects it in ascending order.
func NextSortState(current, clicked SortColumn, state SortState) (SortColumn, SortState) {
	if current != clicked {
		return clicked, SortAscending
	}
	switch state {
	case SortAscending:
		return clicked, SortDescending
	case SortDescending:
		return clicked, SortNone
	default:
		return clicked, SortAscending
	}
}

// FilterAndSort returns a new slice with the entries matching query, ordered
// by col when state is not SortNone. The sort is stable; descending order is
// the ascending result reversed, so ties come out in reverse input order.
func FilterAndSort(entries []Entry, query string, opts SearchOptions, col SortColumn, state SortState) []Entry {
	out := Bindings{Entries: entries}.Filter(query, opts)
	if state == SortNone {
		return out
	}

	slices.SortStableFunc(out, compareBy(col))
	if state == SortDescending {
		slices.Reverse(out)
	}
	return out
}

// compareBy returns the ascending comparator for col.
func compareBy(col SortColumn) func(a, b Entry) int {
	switch col {
	case SortDescription:
		return func(a, b Entry) int { return strings.Compare(a.Description, b.Description) }
	case SortCommand:
		return func(a, b Entry) int { return strings.Compare(a.Command, b.Command) }
	default:
		return func(a, b Entry) int {
			if c := strings.Compare(a.Modifiers, b.Modifiers); c != 0 {
				return c
			}
			return strings.Compare(a.Key, b.Key)
		}
	}
}
