package board_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleBlockFitsEverywhereOnEmptyBoard(t *testing.T) {
	g := newGrid(t, 8, 8, nil)
	dot := shape.MustParse("#")

	anchors := g.Anchors(dot)
	assert.Len(t, anchors, 64)

	seen := make(map[board.Coord]bool)
	for _, a := range anchors {
		assert.False(t, seen[a])
		seen[a] = true
	}
	assert.True(t, g.CanShapeFit(dot))
}

func TestEmptyBoardFitDependsOnlyOnSize(t *testing.T) {
	catalog := shape.Default()

	for width := 1; width <= 6; width++ {
		for height := 1; height <= 6; height++ {
			g := newGrid(t, width, height, nil)
			for color := range catalog.NumColors() {
				shapes, err := catalog.ShapesForColor(shape.ColorID(color))
				require.NoError(t, err)
				for _, s := range shapes {
					want := s.Rows() <= height && s.Cols() <= width
					assert.Equal(t, want, g.CanShapeFit(s), "%dx%d board, shape\n%s", width, height, s)
				}
			}
		}
	}
}

func TestFitRespectsOrientation(t *testing.T) {
	g := newGrid(t, 2, 2, nil)
	fill(t, g, 1, board.Coord{Col: 1, Row: 1})

	// Top row "#." sits on board row 1.
	foot := shape.MustParse(
		"#.",
		"##",
	)
	hat := shape.MustParse(
		"##",
		"#.",
	)

	assert.True(t, g.FitsAt(foot, board.Coord{}))
	assert.True(t, g.CanShapeFit(foot))
	assert.False(t, g.CanShapeFit(hat))
	assert.Empty(t, g.Anchors(hat))
}

func TestFitsAtBounds(t *testing.T) {
	g := newGrid(t, 4, 4, nil)
	bar := shape.MustParse("###")

	assert.True(t, g.FitsAt(bar, board.Coord{Col: 1, Row: 3}))
	assert.False(t, g.FitsAt(bar, board.Coord{Col: 2, Row: 0}))
	assert.False(t, g.FitsAt(bar, board.Coord{Col: -1, Row: 0}))
	assert.False(t, g.FitsAt(bar, board.Coord{Col: 0, Row: 4}))
	assert.False(t, g.FitsAt(shape.Shape{}, board.Coord{}))
	assert.False(t, g.CanShapeFit(shape.Shape{}))
}

func TestFitBlockedByOccupancy(t *testing.T) {
	g := newGrid(t, 3, 3, nil)
	fill(t, g, 1, board.Coord{Col: 1, Row: 0}, board.Coord{Col: 1, Row: 2})

	bar := shape.MustParse("###")
	assert.Equal(t, []board.Coord{{Col: 0, Row: 1}}, g.Anchors(bar))

	fill(t, g, 10, board.Coord{Col: 0, Row: 1})
	assert.False(t, g.CanShapeFit(bar))
	assert.Equal(t, []board.Coord{{Col: 2, Row: 0}, {Col: 2, Row: 1}}, g.Anchors(shape.MustParse("#", "#")))
	assert.True(t, g.CanShapeFit(shape.MustParse("#")))
}

func TestTargets(t *testing.T) {
	ell := shape.MustParse(
		"#.",
		"#.",
		"##",
	)
	got := board.Targets(ell, board.Coord{Col: 3, Row: 4}, nil)
	assert.Equal(t, []board.Coord{
		{Col: 3, Row: 4}, {Col: 4, Row: 4},
		{Col: 3, Row: 5},
		{Col: 3, Row: 6},
	}, got)
}

func ExampleGrid_CanShapeFit() {
	g, _ := board.New(3, 3, board.DefaultGeometry(), nil)
	square := shape.MustParse("##", "##")

	fmt.Println(g.CanShapeFit(square))
	_, _ = g.Place([]board.Coord{{Col: 1, Row: 1}}, []board.Occupant{1})
	fmt.Println(g.CanShapeFit(square))
	// Output:
	// true
	// false
}
