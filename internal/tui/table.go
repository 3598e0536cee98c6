package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

// cellPadding is the horizontal padding bubbles/table adds around each cell.
const cellPadding = 2

// minColumnWidth is the narrowest a column is squeezed to.
const minColumnWidth = 4

// column describes one table column.
type column struct {
	sort  keybind.SortColumn
	title string
	cell  func(keybind.Entry) string
}

var allColumns = []column{
	{sort: keybind.SortKeybind, title: "Keybind", cell: keybind.Decorate},
	{sort: keybind.SortDescription, title: "Description", cell: descriptionCell},
	{sort: keybind.SortCommand, title: "Command", cell: func(e keybind.Entry) string { return e.Command }},
}

// descriptionCell renders an empty description as "-".
func descriptionCell(e keybind.Entry) string {
	if e.Description == "" {
		return "-"
	}
	return e.Description
}

// visibleColumns returns the columns enabled in c, in display order.
func visibleColumns(c config.ColumnsConfig) []column {
	show := map[keybind.SortColumn]bool{
		keybind.SortKeybind:     c.Keybind,
		keybind.SortDescription: c.Description,
		keybind.SortCommand:     c.Command,
	}
	var cols []column
	for _, col := range allColumns {
		if show[col.sort] {
			cols = append(cols, col)
		}
	}
	return cols
}

// columnTitle appends the sort arrow to the title of the sorted column.
func columnTitle(col column, sortCol keybind.SortColumn, state keybind.SortState) string {
	if col.sort != sortCol || state == keybind.SortNone {
		return col.title
	}
	return col.title + " " + state.Indicator()
}

// buildTable renders entries into bubbles table columns and rows that fit in
// width cells. It also returns the content width of each column.
func buildTable(entries []keybind.Entry, cols []column, sortCol keybind.SortColumn, state keybind.SortState, width int) ([]table.Column, []table.Row, []int) {
	if len(cols) == 0 {
		return nil, nil, nil
	}

	titles := make([]string, len(cols))
	natural := make([]int, len(cols))
	for i, col := range cols {
		titles[i] = columnTitle(col, sortCol, state)
		natural[i] = runewidth.StringWidth(titles[i])
	}

	rows := make([]table.Row, len(entries))
	for r, e := range entries {
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[i] = col.cell(e)
			natural[i] = max(natural[i], runewidth.StringWidth(row[i]))
		}
		rows[r] = row
	}

	widths := columnWidths(natural, width-cellPadding*len(cols))
	tcols := make([]table.Column, len(cols))
	for i := range cols {
		tcols[i] = table.Column{Title: titles[i], Width: widths[i]}
	}
	return tcols, rows, widths
}

// columnWidths fits the natural column widths into avail cells. Spare room
// goes to the last column; when space is short, columns shrink in
// proportion to their natural width but never below minColumnWidth.
func columnWidths(natural []int, avail int) []int {
	widths := make([]int, len(natural))
	if len(natural) == 0 {
		return widths
	}

	total := 0
	for _, n := range natural {
		total += n
	}

	if total <= avail {
		copy(widths, natural)
		widths[len(widths)-1] += avail - total
		return widths
	}

	sum := 0
	widest := 0
	for i, n := range natural {
		widths[i] = max(minColumnWidth, n*max(avail, 0)/max(total, 1))
		sum += widths[i]
		if widths[i] > widths[widest] {
			widest = i
		}
	}
	if diff := avail - sum; diff != 0 {
		widths[widest] = max(minColumnWidth, widths[widest]+diff)
	}
	return widths
}
