package board

import "github.com/plus3/blockfit/shape"

// Resolve maps each block's world position to its cell and writes the cells into
// out. It fails, leaving out unspecified, if out is too short or any block lands
// outside the grid or on an occupied cell.
func (g *Grid) Resolve(blocks []Vec2, out []Coord) bool {
	if len(out) < len(blocks) {
		return false
	}
	for i, p := range blocks {
		c := g.WorldToCell(p)
		if !g.CanPlace(c) {
			return false
		}
		out[i] = c
	}
	return true
}

// Hover validates a dragged group. Highlights from any previous call are always
// cleared first. On success the snapped cell-centre position of each block is
// written to snapped, and every row and column the drop would complete is
// highlighted with color. cells receives the resolved coordinates.
func (g *Grid) Hover(blocks []Vec2, cells []Coord, snapped []Vec2, color shape.ColorID) bool {
	g.ClearHighlights()

	if len(snapped) < len(blocks) || !g.Resolve(blocks, cells) {
		return false
	}

	cells = cells[:len(blocks)]
	for i, c := range cells {
		snapped[i] = g.CellToWorld(c)
	}

	g.highlightCompletable(cells, color)
	return true
}

// ClearHighlights removes every highlight.
func (g *Grid) ClearHighlights() {
	for i := range g.cells {
		g.cells[i].unhighlight()
	}
}

func (g *Grid) highlightCompletable(cells []Coord, color shape.ColorID) {
	g.incoming.Clear()
	g.touchedRows.Clear()
	g.touchedCols.Clear()

	for _, c := range cells {
		g.incoming.Put(g.index(c.Col, c.Row), none{})
		g.touchedRows.Put(c.Row, none{})
		g.touchedCols.Put(c.Col, none{})
	}

	g.touchedRows.ForEach(func(row int, _ none) bool {
		if g.rowCompletes(row) {
			for col := 0; col < g.width; col++ {
				g.cells[g.index(col, row)].setHighlight(color)
			}
		}
		return true
	})

	g.touchedCols.ForEach(func(col int, _ none) bool {
		if g.colCompletes(col) {
			for row := 0; row < g.height; row++ {
				g.cells[g.index(col, row)].setHighlight(color)
			}
		}
		return true
	})
}

// rowCompletes reports whether every cell of row is occupied or incoming.
func (g *Grid) rowCompletes(row int) bool {
	for col := 0; col < g.width; col++ {
		if !g.freeAndNotIncoming(g.index(col, row)) {
			continue
		}
		return false
	}
	return true
}

func (g *Grid) colCompletes(col int) bool {
	for row := 0; row < g.height; row++ {
		if !g.freeAndNotIncoming(g.index(col, row)) {
			continue
		}
		return false
	}
	return true
}

func (g *Grid) freeAndNotIncoming(i int) bool {
	if !g.cells[i].CanPlace() {
		return false
	}
	_, incoming := g.incoming.Get(i)
	return !incoming
}
