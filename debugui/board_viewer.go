package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfit/board"
	"github.com/plus3/blockfit/shape"
)

func NewBoardViewerComponent(palette []color.RGBA) BoardViewerComponent {
	bv := BoardViewerComponent{palette: make([]imgui.Vec4, len(palette))}
	for i, c := range palette {
		bv.palette[i] = toVec4(c)
	}
	return bv
}

func (bv *BoardViewerComponent) Render(grid *board.Grid) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 320), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cells := grid.Width() * grid.Height()
	occupied := grid.Occupied()
	lit := 0
	for _, cell := range grid.Cells() {
		if _, ok := cell.Highlight(); ok {
			lit++
		}
	}

	imgui.Text(fmt.Sprintf("Size: %dx%d", grid.Width(), grid.Height()))
	imgui.Text(fmt.Sprintf("Occupied: %d/%d (%.0f%%)", occupied, cells, 100*float32(occupied)/float32(cells)))
	imgui.Text(fmt.Sprintf("Highlighted: %d", lit))
	imgui.Checkbox("Show occupants", &bv.showOccupants)
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("BoardCells", int32(grid.Width()), tableFlags, imgui.NewVec2(0, 0), 0) {
		// Top row first, as the board is drawn.
		for row := grid.Height() - 1; row >= 0; row-- {
			imgui.TableNextRow()
			for col := 0; col < grid.Width(); col++ {
				imgui.TableNextColumn()
				cell, _ := grid.Cell(col, row)
				bv.renderCell(cell)
			}
		}
		imgui.EndTable()
	}

	imgui.End()
}

func (bv *BoardViewerComponent) renderCell(cell *board.Cell) {
	text := "."
	if o, ok := cell.Occupant(); ok {
		text = "#"
		if bv.showOccupants {
			text = fmt.Sprintf("%d", o)
		}
	}

	if c, ok := cell.Highlight(); ok {
		imgui.TextColored(bv.color(c), text)
		return
	}
	imgui.Text(text)
}

func (bv *BoardViewerComponent) color(c shape.ColorID) imgui.Vec4 {
	if int(c) < 0 || int(c) >= len(bv.palette) {
		return imgui.NewVec4(1, 1, 1, 1)
	}
	return bv.palette[c]
}
