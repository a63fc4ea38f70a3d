package domnav

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/dom"
)

// shiftContext is the active table-shift state: the table being
// navigated and the current cell coordinates within its grid.
type shiftContext struct {
	table *html.Node
	grid  [][]*html.Node
	row   int
	col   int
}

var tablePred = dom.MustPredicate("table")
var cellPred = dom.MustPredicate("tableCell")

// EnterShifter enters table navigation for the table containing the
// current position. Returns false when the position is not inside a
// table.
func (nav *Navigator) EnterShifter() bool {
	_, ctx := nav.locate()
	if ctx == nil {
		return false
	}
	nav.shift = ctx
	return true
}

// locate resolves the enclosing table and the current cell coordinates.
func (nav *Navigator) locate() (*html.Node, *shiftContext) {
	cur := nav.CurrentNode()
	if cur == nil {
		return nil, nil
	}
	table := dom.Ancestor(cur, tablePred)
	if table == nil {
		return nil, nil
	}

	grid := buildGrid(table)
	if len(grid) == 0 {
		return nil, nil
	}

	ctx := &shiftContext{table: table, grid: grid}
	cell := dom.Ancestor(cur, cellPred)
	for r, row := range grid {
		for c, n := range row {
			if n == cell {
				ctx.row, ctx.col = r, c
				return cell, ctx
			}
		}
	}
	// Inside the table but outside any cell: start at the first cell.
	return grid[0][0], ctx
}

// buildGrid collects the cell grid of a table, skipping rows belonging
// to nested tables.
func buildGrid(table *html.Node) [][]*html.Node {
	var grid [][]*html.Node
	last := dom.LastDeep(table)
	for n := table.FirstChild; n != nil; n = dom.Next(n) {
		if dom.Tag(n) == "tr" && dom.Ancestor(n.Parent, tablePred) == table {
			var row []*html.Node
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if cellPred(c) {
					row = append(row, c)
				}
			}
			if len(row) > 0 {
				grid = append(grid, row)
			}
		}
		if n == last {
			break
		}
	}
	return grid
}

// ensureShifter auto-enters the shift context, per the row/column
// commands' enter-then-act contract.
func (nav *Navigator) ensureShifter() bool {
	if nav.shift != nil {
		return true
	}
	return nav.EnterShifter()
}

// moveToCell positions onto a grid cell and records its coordinates.
func (nav *Navigator) moveToCell(r, c int) bool {
	s := nav.shift
	if r < 0 || r >= len(s.grid) {
		return false
	}
	row := s.grid[r]
	if c >= len(row) {
		c = len(row) - 1
	}
	if c < 0 {
		return false
	}
	s.row, s.col = r, c
	nav.MoveTo(row[c])
	return true
}

// NextRow moves one row in the active direction.
func (nav *Navigator) NextRow() bool {
	if !nav.ensureShifter() {
		return false
	}
	delta := 1
	if nav.reversed {
		delta = -1
	}
	return nav.moveToCell(nav.shift.row+delta, nav.shift.col)
}

// NextCol moves one column in the active direction. Unlike a row change,
// a column move past the row edge fails rather than clamping.
func (nav *Navigator) NextCol() bool {
	if !nav.ensureShifter() {
		return false
	}
	delta := 1
	if nav.reversed {
		delta = -1
	}
	s := nav.shift
	target := s.col + delta
	if target < 0 || target >= len(s.grid[s.row]) {
		return false
	}
	return nav.moveToCell(s.row, target)
}

// GoToFirstCell moves to the table's first cell.
func (nav *Navigator) GoToFirstCell() bool {
	if !nav.ensureShifter() {
		return false
	}
	return nav.moveToCell(0, 0)
}

// GoToLastCell moves to the table's last cell.
func (nav *Navigator) GoToLastCell() bool {
	if !nav.ensureShifter() {
		return false
	}
	last := len(nav.shift.grid) - 1
	return nav.moveToCell(last, len(nav.shift.grid[last])-1)
}

// GoToRowFirstCell moves to the first cell of the current row.
func (nav *Navigator) GoToRowFirstCell() bool {
	if !nav.ensureShifter() {
		return false
	}
	return nav.moveToCell(nav.shift.row, 0)
}

// GoToRowLastCell moves to the last cell of the current row.
func (nav *Navigator) GoToRowLastCell() bool {
	if !nav.ensureShifter() {
		return false
	}
	return nav.moveToCell(nav.shift.row, len(nav.shift.grid[nav.shift.row])-1)
}

// GoToColFirstCell moves to the top cell of the current column.
func (nav *Navigator) GoToColFirstCell() bool {
	if !nav.ensureShifter() {
		return false
	}
	return nav.moveToCell(0, nav.shift.col)
}

// GoToColLastCell moves to the bottom cell of the current column.
func (nav *Navigator) GoToColLastCell() bool {
	if !nav.ensureShifter() {
		return false
	}
	return nav.moveToCell(len(nav.shift.grid)-1, nav.shift.col)
}

// HeaderText describes the header cells governing the current cell.
func (nav *Navigator) HeaderText() (string, bool) {
	if !nav.ensureShifter() {
		return "", false
	}
	s := nav.shift

	var parts []string
	// Column header: th in the first row at the current column.
	if len(s.grid) > 0 && s.col < len(s.grid[0]) {
		if h := s.grid[0][s.col]; dom.Tag(h) == "th" {
			parts = append(parts, dom.Text(h))
		}
	}
	// Row header: th in the current row.
	for _, c := range s.grid[s.row] {
		if dom.Tag(c) == "th" {
			parts = append(parts, dom.Text(c))
			break
		}
	}

	if len(parts) == 0 {
		return "No headers.", true
	}
	return strings.Join(parts, ", "), true
}

// LocationDescription describes the current position in the table.
func (nav *Navigator) LocationDescription() (string, bool) {
	if !nav.ensureShifter() {
		return "", false
	}
	s := nav.shift
	return fmt.Sprintf("Row %d of %d, Column %d of %d",
		s.row+1, len(s.grid), s.col+1, len(s.grid[s.row])), true
}

// ExitShifter leaves table navigation, positioning on the table itself.
func (nav *Navigator) ExitShifter() bool {
	if nav.shift == nil {
		return false
	}
	table := nav.shift.table
	nav.shift = nil
	nav.MoveTo(table)
	return true
}

// ExitShifterContent leaves table navigation past the table contents.
func (nav *Navigator) ExitShifterContent() bool {
	if nav.shift == nil {
		return false
	}
	table := nav.shift.table
	nav.shift = nil

	for n := dom.Next(dom.LastDeep(table)); n != nil; n = dom.Next(n) {
		if isContentText(n) {
			nav.cur = n
			nav.offset = 0
			return true
		}
	}
	// Nothing after the table; fall back onto the table node.
	nav.MoveTo(table)
	return true
}
