package board

import (
	"math"

	"github.com/plus3/blockfit/shape"
)

// Vec2 is a world-space position or extent.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2      { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Div(o Vec2) Vec2      { return Vec2{v.X / o.X, v.Y / o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Coord addresses a cell by column and row. Row 0 is the bottom row.
type Coord struct {
	Col, Row int
}

// Geometry describes how cells are laid out in world space.
type Geometry struct {
	CellSize   Vec2
	CellGap    Vec2
	GridOffset Vec2
	// Origin is the world position of the board's centre reference point.
	Origin Vec2
}

// DefaultGeometry returns the stock cell layout.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:   Vec2{1.14, 1.14},
		CellGap:    Vec2{0.04, 0.04},
		GridOffset: Vec2{0, 0.1},
	}
}

// Step is the distance between neighbouring cell centres.
func (g Geometry) Step() Vec2 { return g.CellSize.Add(g.CellGap) }

// Pivot is the local shift from a cell's corner to its centre.
func (g Geometry) Pivot() Vec2 { return g.CellSize.Scale(0.5).Add(g.GridOffset) }

func (g Geometry) valid() bool {
	step := g.Step()
	return step.X > 0 && step.Y > 0 &&
		!math.IsInf(step.X, 0) && !math.IsInf(step.Y, 0)
}

// CellToWorld returns the exact world position of a cell centre.
func (g *Grid) CellToWorld(c Coord) Vec2 {
	local := Vec2{float64(c.Col), float64(c.Row)}.Sub(g.center).Mul(g.step)
	return g.geom.Origin.Add(g.pivot).Add(local)
}

// WorldToCell returns the cell whose centre is nearest to p. The result may lie
// outside the grid; ties round to the even index.
func (g *Grid) WorldToCell(p Vec2) Coord {
	local := p.Sub(g.geom.Origin).Sub(g.pivot).Div(g.step).Add(g.center)
	return Coord{
		Col: int(math.RoundToEven(local.X)),
		Row: int(math.RoundToEven(local.Y)),
	}
}

// GroupLayout writes, for each block of s, its world offset from the dragged
// group's position, and returns out[:s.CellCount()]. A group whose position is
// GroupPosition(s, anchor) has its blocks exactly on the cells of that anchor.
func (g *Grid) GroupLayout(s shape.Shape, out []Vec2) []Vec2 {
	out = out[:0]
	half := Vec2{float64(s.Cols()), float64(s.Rows())}.Scale(0.5)
	for _, o := range s.Cells() {
		local := Vec2{float64(o.Col), float64(o.Row)}.Sub(half).Mul(g.step)
		out = append(out, local.Add(g.pivot))
	}
	return out
}

// GroupPosition is the group position that lands s with its bottom-left corner on
// anchor, for use with GroupLayout.
func (g *Grid) GroupPosition(s shape.Shape, anchor Coord) Vec2 {
	half := Vec2{float64(s.Cols()), float64(s.Rows())}.Scale(0.5)
	cell := Vec2{float64(anchor.Col), float64(anchor.Row)}
	return g.geom.Origin.Add(cell.Sub(g.center).Add(half).Mul(g.step))
}
