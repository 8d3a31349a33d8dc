package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
)

const (
	// PixelsPerUnit scales world units to screen pixels. World Y points up.
	PixelsPerUnit = 48
	BoardCenterX  = ScreenWidth / 2
	BoardCenterY  = 320
	TrayCenterY   = 680
	TrayScale     = 0.5
)

var (
	backgroundColor = color.RGBA{24, 26, 32, 255}
	emptyCellColor  = color.RGBA{48, 52, 62, 255}
	outlineColor    = color.RGBA{70, 76, 90, 255}
)

func worldToScreen(p board.Vec2) (float32, float32) {
	return float32(BoardCenterX + p.X*PixelsPerUnit), float32(BoardCenterY - p.Y*PixelsPerUnit)
}

func screenToWorld(x, y int) board.Vec2 {
	return board.Vec2{
		X: float64(x-BoardCenterX) / PixelsPerUnit,
		Y: float64(BoardCenterY-y) / PixelsPerUnit,
	}
}

// trayCenter is the screen position of a tray slot's centre.
func (g *Game) trayCenter(slot, slots int) (float32, float32) {
	w := float32(ScreenWidth) / float32(slots)
	return w*float32(slot) + w/2, TrayCenterY
}

// slotAt returns the unplaced slot under the cursor.
func (g *Game) slotAt(mx, my int) (int, bool) {
	choices := g.session.Choices()
	if len(choices) == 0 {
		return 0, false
	}
	w := float32(ScreenWidth) / float32(len(choices))
	for _, c := range choices {
		if c.Placed {
			continue
		}
		cx, cy := g.trayCenter(c.Slot, len(choices))
		if abs32(float32(mx)-cx) <= w/2 && abs32(float32(my)-cy) <= w/2 {
			return c.Slot, true
		}
	}
	return 0, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawBoard(screen)
	g.drawTray(screen)
	g.drawHeld(screen)

	status := fmt.Sprintf("Score: %d  Lines: %d  Round: %d\nDrag a piece onto the board. R restarts, Q quits.",
		g.score, g.lines, g.session.Generation())
	if g.gameOver {
		status += "\n\nOUT OF MOVES - press R to play again"
	}
	ebitenutil.DebugPrint(screen, status)

	if g.debug {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	grid := g.session.Grid()
	size := grid.Geometry().CellSize
	w, h := float32(size.X*PixelsPerUnit), float32(size.Y*PixelsPerUnit)

	for at, cell := range grid.Cells() {
		x, y := worldToScreen(grid.CellToWorld(at))
		x, y = x-w/2, y-h/2

		fill := emptyCellColor
		if o, ok := cell.Occupant(); ok {
			if b, ok := g.blocks.Get(o); ok {
				fill = g.color(b.Color)
			}
		}
		if c, ok := cell.Highlight(); ok {
			fill = tint(g.color(c), fill)
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, outlineColor, false)
	}
}

func (g *Game) drawTray(screen *ebiten.Image) {
	grid := g.session.Grid()
	size := grid.Geometry().CellSize
	w, h := float32(size.X*PixelsPerUnit*TrayScale), float32(size.Y*PixelsPerUnit*TrayScale)

	choices := g.session.Choices()
	var offsets []board.Vec2
	for _, c := range choices {
		if c.Placed || c.Slot == g.slot {
			continue
		}
		offsets = grid.GroupLayout(c.Shape, offsets)
		cx, cy := g.trayCenter(c.Slot, len(choices))
		for _, off := range offsets {
			x := cx + float32(off.X*PixelsPerUnit*TrayScale) - w/2
			y := cy - float32(off.Y*PixelsPerUnit*TrayScale) - h/2
			vector.DrawFilledRect(screen, x, y, w, h, g.color(c.Color), false)
		}
	}
}

// drawHeld draws the dragged piece under the cursor.
func (g *Game) drawHeld(screen *ebiten.Image) {
	if g.slot < 0 {
		return
	}
	c, err := g.session.Choice(g.slot)
	if err != nil {
		return
	}
	size := g.session.Grid().Geometry().CellSize
	w, h := float32(size.X*PixelsPerUnit), float32(size.Y*PixelsPerUnit)

	base := g.color(c.Color)
	fill := color.NRGBA{R: base.R, G: base.G, B: base.B, A: 200}
	for _, p := range g.positions {
		x, y := worldToScreen(p)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, fill, false)
	}
	if g.hover.Accepted {
		for _, p := range g.hover.Snapped {
			x, y := worldToScreen(p)
			vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 2, color.White, false)
		}
	}
}

func (g *Game) color(c shape.ColorID) color.RGBA {
	if int(c) < 0 || int(c) >= len(g.palette) {
		return color.RGBA{200, 200, 200, 255}
	}
	return g.palette[c]
}

// tint mixes a highlight colour into a base colour.
func tint(hi, base color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(hi.R) + uint16(base.R)) / 2),
		G: uint8((uint16(hi.G) + uint16(base.G)) / 2),
		B: uint8((uint16(hi.B) + uint16(base.B)) / 2),
		A: 255,
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
