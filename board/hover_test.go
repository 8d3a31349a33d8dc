package board_test

import (
	"testing"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldOf(g *board.Grid, cells ...board.Coord) []board.Vec2 {
	out := make([]board.Vec2, len(cells))
	for i, c := range cells {
		out[i] = g.CellToWorld(c)
	}
	return out
}

func TestHoverSnapsToCellCentres(t *testing.T) {
	g := newGrid(t, 8, 8, nil)
	step := g.Geometry().Step()

	want := []board.Coord{{Col: 2, Row: 2}, {Col: 3, Row: 2}, {Col: 2, Row: 3}}
	blocks := worldOf(g, want...)
	// Off-centre drag positions still resolve to the nearest cell.
	for i := range blocks {
		blocks[i] = blocks[i].Add(board.Vec2{X: 0.3 * step.X, Y: -0.2 * step.Y})
	}

	cells := make([]board.Coord, len(blocks))
	snapped := make([]board.Vec2, len(blocks))
	require.True(t, g.Hover(blocks, cells, snapped, 1))

	assert.Equal(t, want, cells)
	assert.Equal(t, worldOf(g, want...), snapped)
	assert.Empty(t, litCells(g), "no line completes on an empty board")
}

func TestHoverRejectsOutOfBoundsAndOccupied(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	fill(t, g, 1, board.Coord{Col: 1, Row: 1})

	cells := make([]board.Coord, 2)
	snapped := make([]board.Vec2, 2)

	outside := worldOf(g, board.Coord{Col: 3, Row: 0}, board.Coord{Col: 4, Row: 0})
	assert.False(t, g.Hover(outside, cells, snapped, 0))

	below := worldOf(g, board.Coord{Col: 0, Row: 0}, board.Coord{Col: 0, Row: -1})
	assert.False(t, g.Hover(below, cells, snapped, 0))

	blocked := worldOf(g, board.Coord{Col: 0, Row: 1}, board.Coord{Col: 1, Row: 1})
	assert.False(t, g.Hover(blocked, cells, snapped, 0))

	assert.Equal(t, 1, g.Occupied())
	assert.Empty(t, litCells(g))
}

func TestHoverHighlightsCompletableRow(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	fill(t, g, 1, rowExcept(0, 4, 3)...)

	blocks := worldOf(g, board.Coord{Col: 3, Row: 0})
	cells := make([]board.Coord, 1)
	snapped := make([]board.Vec2, 1)
	require.True(t, g.Hover(blocks, cells, snapped, 2))

	assert.ElementsMatch(t, rowExcept(0, 4), litCells(g))
	for _, c := range rowExcept(0, 4) {
		cell, ok := g.At(c)
		require.True(t, ok)
		color, lit := cell.Highlight()
		assert.True(t, lit)
		assert.Equal(t, shape.ColorID(2), color)
	}
	// Hovering never changes occupancy.
	assert.Equal(t, 3, g.Occupied())
}

func TestHoverHighlightsRowAndColumn(t *testing.T) {
	g := newGrid(t, 5, 5, nil)
	fill(t, g, 1, append(rowExcept(2, 5, 4), colExcept(4, 5, 2)...)...)

	blocks := worldOf(g, board.Coord{Col: 4, Row: 2})
	require.True(t, g.Hover(blocks, make([]board.Coord, 1), make([]board.Vec2, 1), 0))

	want := append(rowExcept(2, 5), colExcept(4, 5, 2)...)
	assert.ElementsMatch(t, want, litCells(g))
}

func TestHoverHighlightsLinesCompletedByTheGroupItself(t *testing.T) {
	g := newGrid(t, 3, 3, nil)
	fill(t, g, 1, board.Coord{Col: 0, Row: 1})

	blocks := worldOf(g, board.Coord{Col: 1, Row: 1}, board.Coord{Col: 2, Row: 1})
	require.True(t, g.Hover(blocks, make([]board.Coord, 2), make([]board.Vec2, 2), 0))

	assert.ElementsMatch(t, rowExcept(1, 3), litCells(g))
}

func TestHoverDuplicateTargetsAreAccepted(t *testing.T) {
	g := newGrid(t, 2, 2, nil)
	fill(t, g, 1, board.Coord{Col: 0, Row: 0})

	target := g.CellToWorld(board.Coord{Col: 1, Row: 0})
	blocks := []board.Vec2{target, target}
	cells := make([]board.Coord, 2)
	require.True(t, g.Hover(blocks, cells, make([]board.Vec2, 2), 0))

	assert.Equal(t, []board.Coord{{Col: 1, Row: 0}, {Col: 1, Row: 0}}, cells)
	assert.ElementsMatch(t, rowExcept(0, 2), litCells(g))
}

func TestHoverClearsStaleHighlights(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	fill(t, g, 1, rowExcept(0, 4, 3)...)

	one := make([]board.Coord, 1)
	snap := make([]board.Vec2, 1)
	require.True(t, g.Hover(worldOf(g, board.Coord{Col: 3, Row: 0}), one, snap, 0))
	require.NotEmpty(t, litCells(g))

	// A valid hover that completes nothing wipes the old preview.
	require.True(t, g.Hover(worldOf(g, board.Coord{Col: 2, Row: 3}), one, snap, 0))
	assert.Empty(t, litCells(g))

	require.True(t, g.Hover(worldOf(g, board.Coord{Col: 3, Row: 0}), one, snap, 0))
	require.NotEmpty(t, litCells(g))

	// So does a rejected hover.
	assert.False(t, g.Hover(worldOf(g, board.Coord{Col: 0, Row: 0}), one, snap, 0))
	assert.Empty(t, litCells(g))
}

func TestClearHighlightsIsIdempotent(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	fill(t, g, 1, rowExcept(1, 4, 0)...)
	require.True(t, g.Hover(worldOf(g, board.Coord{Col: 0, Row: 1}), make([]board.Coord, 1), make([]board.Vec2, 1), 0))

	g.ClearHighlights()
	assert.Empty(t, litCells(g))
	g.ClearHighlights()
	assert.Empty(t, litCells(g))
	assert.Equal(t, 3, g.Occupied())
}

func TestHoverShortBuffers(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	blocks := worldOf(g, board.Coord{Col: 0, Row: 0}, board.Coord{Col: 1, Row: 0})

	assert.False(t, g.Hover(blocks, make([]board.Coord, 1), make([]board.Vec2, 2), 0))
	assert.False(t, g.Hover(blocks, make([]board.Coord, 2), make([]board.Vec2, 1), 0))
}
