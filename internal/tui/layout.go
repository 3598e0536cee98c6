package tui

// Minimum terminal size the UI renders at.
const (
	minWidth  = 40
	minHeight = 11
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Header, Search, Stats Rect
	Table, Footer         Rect
	Minimal               bool
	TooSmall              bool // true when terminal is below the minimum 40×11
}

// Calculate computes the layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 40 or height < 11.
//
// Full layout, top to bottom:
//   - Header: 1 row
//   - Search: 3 rows (bordered input)
//   - Stats: 1 row
//   - Table: remaining rows (bordered)
//   - Footer: 1 row
//
// Minimal layout gives the whole terminal to the table.
func Calculate(width, height int, minimal bool) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true, Minimal: minimal}
	}

	if minimal {
		return Layout{
			Table:   Rect{X: 0, Y: 0, Width: width, Height: height},
			Minimal: true,
		}
	}

	const headerH, searchH, statsH, footerH = 1, 3, 1, 1
	tableY := headerH + searchH + statsH
	tableH := height - tableY - footerH

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: headerH},
		Search: Rect{X: 0, Y: headerH, Width: width, Height: searchH},
		Stats:  Rect{X: 0, Y: headerH + searchH, Width: width, Height: statsH},
		Table:  Rect{X: 0, Y: tableY, Width: width, Height: tableH},
		Footer: Rect{X: 0, Y: height - footerH, Width: width, Height: footerH},
	}
}

// innerDims returns the content dimensions for a rect accounting for the
// 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
