package debugui

import (
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/tetris/game"
)

// LatencyChart plots the last execution time of every scheduler system over
// a window of frames.
type LatencyChart struct {
	size    int
	offset  int
	names   []string
	history map[string][]float32
}

func NewLatencyChart(historyFrames int) *LatencyChart {
	return &LatencyChart{
		size:    max(historyFrames, 1),
		history: make(map[string][]float32),
	}
}

// Record appends one sample per system, in milliseconds. Systems seen for the
// first time start with an empty history.
func (c *LatencyChart) Record(stats *game.SchedulerStats) {
	for _, sys := range stats.Systems {
		samples, ok := c.history[sys.Name]
		if !ok {
			samples = make([]float32, c.size)
			c.history[sys.Name] = samples
			c.names = append(c.names, sys.Name)
		}
		samples[c.offset] = float32(sys.LastDuration) / float32(time.Millisecond)
	}
	c.offset = (c.offset + 1) % c.size
}

// Series returns the history of one system, oldest sample first.
func (c *LatencyChart) Series(name string) []float32 {
	samples, ok := c.history[name]
	if !ok {
		return nil
	}
	ordered := make([]float32, c.size)
	copy(ordered, samples[c.offset:])
	copy(ordered[c.size-c.offset:], samples[:c.offset])
	return ordered
}

func (c *LatencyChart) Render(stats *game.SchedulerStats) {
	c.Record(stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(800, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(460, 300), imgui.CondOnce)
	if !imgui.BeginV("System Latency", nil, 0) {
		imgui.End()
		return
	}

	maxLatency := float32(0.01)
	series := make([][]float32, len(c.names))
	for i, name := range c.names {
		series[i] = c.Series(name)
		for _, v := range series[i] {
			maxLatency = max(maxLatency, v)
		}
	}

	if implot.BeginPlotV("##latency", imgui.NewVec2(-1, -1), 0) {
		implot.SetupAxesV("Frame", "Time (ms)", 0, 0)
		implot.SetupAxisLimitsV(implot.AxisY1, 0, float64(maxLatency*1.1), implot.CondAlways)
		for i, name := range c.names {
			implot.PlotLineFloatPtrInt(name, &series[i][0], int32(c.size))
		}
		implot.EndPlot()
	}

	imgui.End()
}
