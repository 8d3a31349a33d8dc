package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/blockfit/engine"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
		stageHistory:  make(map[string][]float32),
		plotSamples:   make([]float32, historyFrames),
	}
}

func (ps *PerformanceStatsComponent) Render(stats *engine.PipelineStats, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	for _, st := range stats.Stages {
		history, ok := ps.stageHistory[st.Name]
		if !ok {
			history = make([]float32, ps.historyFrames)
			ps.stageHistory[st.Name] = history
		}
		history[ps.frameIndex] = float32(st.LastDuration.Microseconds())
	}
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	imgui.Text(fmt.Sprintf("Events: %d", stats.Events))
	imgui.Text(fmt.Sprintf("Failed Events: %d", stats.Failed))
	imgui.Text(fmt.Sprintf("Stages: %d", stats.StageCount))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Stage Latency") {
		if implot.BeginPlotV("Stage Latency", imgui.NewVec2(-1, 200), 0) {
			implot.SetupAxesV("Frame", "Last (us)", 0, implot.AxisFlagsAutoFit)
			for _, st := range stats.Stages {
				ps.unroll(ps.stageHistory[st.Name])
				implot.PlotLineFloatPtrInt(st.Name, &ps.plotSamples[0], int32(len(ps.plotSamples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Stage Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StageStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Stage")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, st := range stats.Stages {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(st.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", st.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(st.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(st.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(st.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// unroll copies a ring buffer into plotSamples, oldest sample first.
func (ps *PerformanceStatsComponent) unroll(history []float32) {
	n := copy(ps.plotSamples, history[ps.frameIndex:])
	copy(ps.plotSamples[n:], history[:ps.frameIndex])
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
