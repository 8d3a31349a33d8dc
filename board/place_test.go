package board_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfit/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceClearsCompletedRow(t *testing.T) {
	log := newReleaseLog()
	g := newGrid(t, 8, 8, log)

	fill(t, g, 1, rowExcept(3, 8, 0)...)
	fill(t, g, 100, board.Coord{Col: 4, Row: 5}, board.Coord{Col: 0, Row: 6})

	report, err := g.Place([]board.Coord{{Col: 0, Row: 3}}, []board.Occupant{50})
	require.NoError(t, err)

	assert.Equal(t, []int{3}, report.Rows)
	assert.Empty(t, report.Cols)
	assert.Equal(t, 8, report.Released)
	assert.Equal(t, 1, report.Lines())

	for col := range 8 {
		assert.True(t, g.CanPlace(board.Coord{Col: col, Row: 3}))
	}
	assert.False(t, g.CanPlace(board.Coord{Col: 4, Row: 5}))
	assert.False(t, g.CanPlace(board.Coord{Col: 0, Row: 6}))
	assert.Equal(t, 2, g.Occupied())
	assert.Equal(t, 1, log.counts[50])
}

func TestPlaceReleasesIntersectionOnce(t *testing.T) {
	log := newReleaseLog()
	g := newGrid(t, 8, 8, log)

	// Row 2 and column 5 both miss only (5, 2).
	fill(t, g, 1, append(rowExcept(2, 8, 5), colExcept(5, 8, 2)...)...)

	report, err := g.Place([]board.Coord{{Col: 5, Row: 2}}, []board.Occupant{99})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, report.Rows)
	assert.Equal(t, []int{5}, report.Cols)
	assert.Equal(t, 15, report.Released)
	assert.Equal(t, 15, log.total)
	for o, n := range log.counts {
		assert.Equal(t, 1, n, "occupant %d released %d times", o, n)
	}
	assert.Equal(t, 1, log.counts[99])
	assert.Zero(t, g.Occupied())
}

func TestPlaceIsAtomic(t *testing.T) {
	tests := []struct {
		name  string
		cells []board.Coord
		err   error
	}{
		{"out of bounds", []board.Coord{{Col: 0, Row: 0}, {Col: 4, Row: 0}}, board.ErrOutOfBounds},
		{"negative", []board.Coord{{Col: 0, Row: 0}, {Col: 0, Row: -1}}, board.ErrOutOfBounds},
		{"occupied", []board.Coord{{Col: 0, Row: 0}, {Col: 2, Row: 2}}, board.ErrOccupied},
		{"repeated", []board.Coord{{Col: 0, Row: 0}, {Col: 0, Row: 0}}, board.ErrOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newReleaseLog()
			g := newGrid(t, 4, 4, log)
			fill(t, g, 1, board.Coord{Col: 2, Row: 2})

			_, err := g.Place(tt.cells, []board.Occupant{10, 11})
			assert.ErrorIs(t, err, board.ErrPlacementRejected)
			assert.ErrorIs(t, err, tt.err)

			assert.True(t, g.CanPlace(board.Coord{Col: 0, Row: 0}))
			assert.Equal(t, 1, g.Occupied())
			assert.Zero(t, log.total)
		})
	}
}

func TestPlaceLengthMismatch(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	_, err := g.Place([]board.Coord{{Col: 0, Row: 0}}, nil)
	assert.ErrorIs(t, err, board.ErrPlacementRejected)
	assert.Zero(t, g.Occupied())
}

func TestPlaceStoresOccupants(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	fill(t, g, 7, board.Coord{Col: 1, Row: 2}, board.Coord{Col: 3, Row: 0})

	cell, ok := g.At(board.Coord{Col: 1, Row: 2})
	require.True(t, ok)
	o, occupied := cell.Occupant()
	assert.True(t, occupied)
	assert.Equal(t, board.Occupant(7), o)

	cell, _ = g.At(board.Coord{Col: 3, Row: 0})
	o, _ = cell.Occupant()
	assert.Equal(t, board.Occupant(8), o)
}

// Whatever order lines are cleared in, a cell survives exactly when it lies on
// no full row and no full column.
func TestClearLinesMatchesFullLineUnion(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := range 200 {
		width, height := 2+rng.IntN(7), 2+rng.IntN(7)
		g := newGrid(t, width, height, nil)

		taken := make(map[board.Coord]bool)
		for c := range g.Cells() {
			if rng.IntN(3) > 0 {
				taken[c] = true
			}
		}
		// Force some full lines.
		if rng.IntN(2) == 0 {
			row := rng.IntN(height)
			for col := range width {
				taken[board.Coord{Col: col, Row: row}] = true
			}
		}
		if rng.IntN(2) == 0 {
			col := rng.IntN(width)
			for row := range height {
				taken[board.Coord{Col: col, Row: row}] = true
			}
		}

		fullRow := make([]bool, height)
		for row := range height {
			fullRow[row] = true
			for col := range width {
				fullRow[row] = fullRow[row] && taken[board.Coord{Col: col, Row: row}]
			}
		}
		fullCol := make([]bool, width)
		for col := range width {
			fullCol[col] = true
			for row := range height {
				fullCol[col] = fullCol[col] && taken[board.Coord{Col: col, Row: row}]
			}
		}

		var cells []board.Coord
		var occupants []board.Occupant
		for c := range taken {
			cells = append(cells, c)
			occupants = append(occupants, board.Occupant(len(cells)))
		}
		report, err := g.Place(cells, occupants)
		require.NoError(t, err)

		rows, cols := 0, 0
		for _, full := range fullRow {
			if full {
				rows++
			}
		}
		for _, full := range fullCol {
			if full {
				cols++
			}
		}
		require.Len(t, report.Rows, rows, "round %d", round)
		require.Len(t, report.Cols, cols, "round %d", round)

		for c, cell := range g.Cells() {
			want := taken[c] && !fullRow[c.Row] && !fullCol[c.Col]
			require.Equal(t, want, !cell.CanPlace(), "round %d cell %v", round, c)
		}
	}
}

func TestClearLinesOnSparseBoardIsNoop(t *testing.T) {
	g := newGrid(t, 3, 3, nil)
	fill(t, g, 1, board.Coord{Col: 1, Row: 1})

	report := g.ClearLines()
	assert.Zero(t, report.Lines())
	assert.Zero(t, report.Released)
	assert.Equal(t, 1, g.Occupied())
}
