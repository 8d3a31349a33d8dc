package debugui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfit/engine"
)

func NewTrayViewerComponent(palette []color.RGBA) TrayViewerComponent {
	tv := TrayViewerComponent{palette: make([]imgui.Vec4, len(palette))}
	for i, c := range palette {
		tv.palette[i] = toVec4(c)
	}
	return tv
}

func (tv *TrayViewerComponent) Render(session *engine.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)

	if !imgui.BeginV("Tray", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Generation: %d", session.Generation()))
	imgui.SameLine()
	if session.Over() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "PLAYING")
	}
	if tv.Restart != nil && imgui.Button("Restart level") {
		tv.Restart()
	}
	imgui.Separator()

	grid := session.Grid()
	choices := session.Choices()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("TrayTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Colour")
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Anchors")
		imgui.TableHeadersRow()

		for _, c := range choices {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Slot))
			imgui.TableNextColumn()
			if int(c.Color) < len(tv.palette) {
				imgui.TextColored(tv.palette[c.Color], fmt.Sprintf("%d", c.Color))
			} else {
				imgui.Text(fmt.Sprintf("%d", c.Color))
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d/%d", c.Ref.Color, c.Ref.Index))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Shape.CellCount()))
			imgui.TableNextColumn()
			if c.Placed {
				imgui.Text("placed")
			} else {
				imgui.Text(fmt.Sprintf("%d", len(grid.Anchors(c.Shape))))
			}
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Shapes") {
		for _, c := range choices {
			imgui.BulletText(fmt.Sprintf("Slot %d (%dx%d)", c.Slot, c.Shape.Cols(), c.Shape.Rows()))
			imgui.Indent()
			for _, line := range strings.Split(c.Shape.String(), "\n") {
				imgui.Text(line)
			}
			imgui.Unindent()
		}
		imgui.TreePop()
	}

	imgui.End()
}
