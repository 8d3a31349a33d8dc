package debugui

import "github.com/AllenDang/cimgui-go/imgui"

type BoardViewerComponent struct {
	palette       []imgui.Vec4
	showOccupants bool
}

type TrayViewerComponent struct {
	palette []imgui.Vec4
	// Restart, when set, adds a button that starts a new level.
	Restart func()
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	stageHistory  map[string][]float32
	plotSamples   []float32
}
