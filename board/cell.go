package board

import "github.com/plus3/blockfit/shape"

// Occupant is an opaque handle for the block instance sitting in a cell. The
// board stores and releases it but never interprets it.
type Occupant uint64

// Releaser takes back occupants whose cells were cleared.
type Releaser interface {
	Release(Occupant)
}

// ReleaserFunc adapts a function to the Releaser interface.
type ReleaserFunc func(Occupant)

func (f ReleaserFunc) Release(o Occupant) { f(o) }

// Cell is one board position: occupancy plus transient highlight state.
type Cell struct {
	occupant  Occupant
	occupied  bool
	highlight shape.ColorID
	lit       bool
}

// CanPlace reports whether the cell is free. Highlight state does not matter.
func (c *Cell) CanPlace() bool { return !c.occupied }

// Occupant returns the handle stored in the cell, if any.
func (c *Cell) Occupant() (Occupant, bool) { return c.occupant, c.occupied }

// Highlight returns the preview colour if the cell is part of a line that the
// current hover would complete.
func (c *Cell) Highlight() (shape.ColorID, bool) { return c.highlight, c.lit }

func (c *Cell) place(o Occupant) {
	c.occupant = o
	c.occupied = true
}

// vacate frees the cell and returns the previous occupant.
func (c *Cell) vacate() (Occupant, bool) {
	o, ok := c.occupant, c.occupied
	c.occupant = 0
	c.occupied = false
	return o, ok
}

func (c *Cell) setHighlight(color shape.ColorID) {
	c.highlight = color
	c.lit = true
}

func (c *Cell) unhighlight() {
	c.highlight = 0
	c.lit = false
}
