package board_test

import (
	"testing"

	"github.com/plus3/blockfit/board"
	"github.com/stretchr/testify/require"
)

// releaseLog records every occupant handed back by a grid.
type releaseLog struct {
	counts map[board.Occupant]int
	total  int
}

func newReleaseLog() *releaseLog {
	return &releaseLog{counts: make(map[board.Occupant]int)}
}

func (l *releaseLog) Release(o board.Occupant) {
	l.counts[o]++
	l.total++
}

func newGrid(t testing.TB, width, height int, rel board.Releaser) *board.Grid {
	t.Helper()
	g, err := board.New(width, height, board.DefaultGeometry(), rel)
	require.NoError(t, err)
	return g
}

// fill occupies cells in one commit, using handles starting at first. It fails
// the test if the commit clears anything.
func fill(t testing.TB, g *board.Grid, first board.Occupant, cells ...board.Coord) {
	t.Helper()
	occupants := make([]board.Occupant, len(cells))
	for i := range occupants {
		occupants[i] = first + board.Occupant(i)
	}
	report, err := g.Place(cells, occupants)
	require.NoError(t, err)
	require.Zero(t, report.Lines(), "setup unexpectedly cleared lines")
}

func rowExcept(row, width int, skip ...int) []board.Coord {
	var cells []board.Coord
outer:
	for col := 0; col < width; col++ {
		for _, s := range skip {
			if col == s {
				continue outer
			}
		}
		cells = append(cells, board.Coord{Col: col, Row: row})
	}
	return cells
}

func colExcept(col, height int, skip ...int) []board.Coord {
	var cells []board.Coord
outer:
	for row := 0; row < height; row++ {
		for _, s := range skip {
			if row == s {
				continue outer
			}
		}
		cells = append(cells, board.Coord{Col: col, Row: row})
	}
	return cells
}

func freeCount(g *board.Grid) int {
	return g.Width()*g.Height() - g.Occupied()
}

func litCells(g *board.Grid) []board.Coord {
	var lit []board.Coord
	for c, cell := range g.Cells() {
		if _, ok := cell.Highlight(); ok {
			lit = append(lit, c)
		}
	}
	return lit
}
