// Package debugui provides Dear ImGui inspector panels for a running game
// session: board occupancy and highlights, the choice tray, and stage timings.
package debugui

import (
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Item holds a Dear ImGui render function that runs once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Games should skip their own input handling while the flags are set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders a list of items between the backend's BeginFrame and
// EndFrame calls.
type Overlay struct {
	Items []Item
	Input InputState
}

// Add appends a render function.
func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, Item{Render: render})
}

// Render updates the input state and runs every item.
func (o *Overlay) Render() {
	o.Input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.Input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range o.Items {
		item.Render()
	}
}

func toVec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
