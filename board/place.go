package board

import (
	"fmt"
	"slices"
)

// ClearReport lists the lines removed by a commit.
type ClearReport struct {
	Rows     []int
	Cols     []int
	Released int
}

// Lines returns the number of cleared rows plus columns.
func (r ClearReport) Lines() int { return len(r.Rows) + len(r.Cols) }

// Place commits occupants[i] to cells[i] and then clears every full row and
// column. The placement is atomic: if any target is out of bounds, occupied, or
// repeated, nothing changes and the error wraps ErrPlacementRejected.
func (g *Grid) Place(cells []Coord, occupants []Occupant) (ClearReport, error) {
	if len(cells) != len(occupants) {
		return ClearReport{}, fmt.Errorf("%w: %d cells for %d occupants", ErrPlacementRejected, len(cells), len(occupants))
	}

	g.incoming.Clear()
	for _, c := range cells {
		if !g.inBounds(c.Col, c.Row) {
			return ClearReport{}, fmt.Errorf("%w: %w at %v", ErrPlacementRejected, ErrOutOfBounds, c)
		}
		i := g.index(c.Col, c.Row)
		if _, dup := g.incoming.Get(i); dup || !g.cells[i].CanPlace() {
			return ClearReport{}, fmt.Errorf("%w: %w at %v", ErrPlacementRejected, ErrOccupied, c)
		}
		g.incoming.Put(i, none{})
	}

	for i, c := range cells {
		g.cells[g.index(c.Col, c.Row)].place(occupants[i])
	}

	return g.ClearLines(), nil
}

// ClearLines finds every full row and column on the current board and frees all
// of their cells. Rows and columns are detected before anything is cleared, so
// an intersection of a full row and a full column is released exactly once.
func (g *Grid) ClearLines() ClearReport {
	g.fullRows = g.fullRows[:0]
	for row := 0; row < g.height; row++ {
		if g.rowFull(row) {
			g.fullRows = append(g.fullRows, row)
		}
	}

	g.fullCols = g.fullCols[:0]
	for col := 0; col < g.width; col++ {
		if g.colFull(col) {
			g.fullCols = append(g.fullCols, col)
		}
	}

	var report ClearReport
	if len(g.fullRows) == 0 && len(g.fullCols) == 0 {
		return report
	}

	for _, row := range g.fullRows {
		for col := 0; col < g.width; col++ {
			if g.release(g.index(col, row)) {
				report.Released++
			}
		}
	}
	for _, col := range g.fullCols {
		for row := 0; row < g.height; row++ {
			if g.release(g.index(col, row)) {
				report.Released++
			}
		}
	}

	report.Rows = slices.Clone(g.fullRows)
	report.Cols = slices.Clone(g.fullCols)
	return report
}

func (g *Grid) rowFull(row int) bool {
	for col := 0; col < g.width; col++ {
		if g.cells[g.index(col, row)].CanPlace() {
			return false
		}
	}
	return true
}

func (g *Grid) colFull(col int) bool {
	for row := 0; row < g.height; row++ {
		if g.cells[g.index(col, row)].CanPlace() {
			return false
		}
	}
	return true
}
