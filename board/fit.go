package board

import "github.com/plus3/blockfit/shape"

// CanShapeFit reports whether s fits somewhere on the board. It scans anchors
// bottom-left first and stops at the first fit.
func (g *Grid) CanShapeFit(s shape.Shape) bool {
	if s.IsZero() {
		return false
	}
	for row := 0; row <= g.height-s.Rows(); row++ {
		for col := 0; col <= g.width-s.Cols(); col++ {
			if g.fitsAt(s, col, row) {
				return true
			}
		}
	}
	return false
}

// FitsAt reports whether s placed with its bottom-left corner on anchor covers
// only free in-bounds cells.
func (g *Grid) FitsAt(s shape.Shape, anchor Coord) bool {
	if s.IsZero() || anchor.Col < 0 || anchor.Row < 0 ||
		anchor.Col+s.Cols() > g.width || anchor.Row+s.Rows() > g.height {
		return false
	}
	return g.fitsAt(s, anchor.Col, anchor.Row)
}

func (g *Grid) fitsAt(s shape.Shape, col, row int) bool {
	for _, o := range s.Cells() {
		if !g.cells[g.index(col+o.Col, row+o.Row)].CanPlace() {
			return false
		}
	}
	return true
}

// Anchors returns every anchor at which s fits.
func (g *Grid) Anchors(s shape.Shape) []Coord {
	if s.IsZero() {
		return nil
	}
	var anchors []Coord
	for row := 0; row <= g.height-s.Rows(); row++ {
		for col := 0; col <= g.width-s.Cols(); col++ {
			if g.fitsAt(s, col, row) {
				anchors = append(anchors, Coord{Col: col, Row: row})
			}
		}
	}
	return anchors
}

// Targets writes the cells s would cover at anchor into out and returns
// out[:s.CellCount()].
func Targets(s shape.Shape, anchor Coord, out []Coord) []Coord {
	out = out[:0]
	for _, o := range s.Cells() {
		out = append(out, Coord{Col: anchor.Col + o.Col, Row: anchor.Row + o.Row})
	}
	return out
}
