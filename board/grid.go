// Package board implements the placement grid: cell occupancy, world/cell
// coordinate conversion, hover validation with line-completion highlights,
// commits with row/column clearing, and shape fit searches.
//
// A Grid is not safe for concurrent use. It is driven by one input gesture at a
// time.
package board

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidGeometry   = errors.New("cell step must be positive")
	ErrPlacementRejected = errors.New("placement rejected")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrOccupied          = errors.New("cell occupied")
)

type none struct{}

// Grid is a fixed-size board of cells stored row-major.
type Grid struct {
	width, height int
	cells         []Cell

	geom   Geometry
	step   Vec2
	pivot  Vec2
	center Vec2

	releaser Releaser

	// Reused between calls so hover evaluation does not allocate.
	incoming    *intmap.Map[int, none]
	touchedRows *intmap.Map[int, none]
	touchedCols *intmap.Map[int, none]
	fullRows    []int
	fullCols    []int
}

// New creates an empty width x height grid. The releaser, which may be nil, is
// told about every occupant removed from the board.
func New(width, height int, geom Geometry, releaser Releaser) (*Grid, error) {
	if !geom.valid() {
		return nil, ErrInvalidGeometry
	}

	g := &Grid{
		geom:        geom,
		step:        geom.Step(),
		pivot:       geom.Pivot(),
		releaser:    releaser,
		incoming:    intmap.New[int, none](16),
		touchedRows: intmap.New[int, none](8),
		touchedCols: intmap.New[int, none](8),
	}
	if err := g.Reset(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset releases every occupant and re-creates the grid with new dimensions. On
// invalid dimensions the grid is left untouched.
func (g *Grid) Reset(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g.Clear()

	if width*height != len(g.cells) {
		g.cells = make([]Cell, width*height)
	}
	g.width, g.height = width, height
	g.center = Vec2{float64(width), float64(height)}.Scale(0.5)
	return nil
}

// Clear frees every cell, releasing occupants, and removes all highlights.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.release(i)
		g.cells[i].unhighlight()
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Geometry returns the layout the grid was created with.
func (g *Grid) Geometry() Geometry { return g.geom }

func (g *Grid) index(col, row int) int { return row*g.width + col }

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Cell returns the cell at (col, row). Out-of-bounds lookups return nil, false.
func (g *Grid) Cell(col, row int) (*Cell, bool) {
	if !g.inBounds(col, row) {
		return nil, false
	}
	return &g.cells[g.index(col, row)], true
}

// At is Cell for a Coord.
func (g *Grid) At(c Coord) (*Cell, bool) { return g.Cell(c.Col, c.Row) }

// CanPlace reports whether c is inside the grid and free.
func (g *Grid) CanPlace(c Coord) bool {
	cell, ok := g.At(c)
	return ok && cell.CanPlace()
}

// Cells iterates every cell, bottom row first.
func (g *Grid) Cells() iter.Seq2[Coord, *Cell] {
	return func(yield func(Coord, *Cell) bool) {
		for row := 0; row < g.height; row++ {
			for col := 0; col < g.width; col++ {
				if !yield(Coord{Col: col, Row: row}, &g.cells[g.index(col, row)]) {
					return
				}
			}
		}
	}
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for i := range g.cells {
		if !g.cells[i].CanPlace() {
			n++
		}
	}
	return n
}

// release vacates the cell at index i and hands its occupant to the releaser.
func (g *Grid) release(i int) bool {
	o, ok := g.cells[i].vacate()
	if !ok {
		return false
	}
	if g.releaser != nil {
		g.releaser.Release(o)
	}
	return true
}
