package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/game"
)

// SessionStatsWindow shows score and flow state, frame times and scheduler
// timings for one session.
type SessionStatsWindow struct {
	history *FrameHistory
}

func NewSessionStatsWindow(historyFrames int) *SessionStatsWindow {
	return &SessionStatsWindow{history: NewFrameHistory(historyFrames)}
}

func (w *SessionStatsWindow) Render(session *game.Session, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(420, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.history.Push(deltaTime * 1000.0)

	state := session.State()
	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", state.Lines))
	imgui.Text(fmt.Sprintf("Level: %d (drop every %s)", state.Level, state.DropInterval))
	imgui.Text(fmt.Sprintf("Pieces: %d", state.PiecesPlaced))
	imgui.Text(fmt.Sprintf("Play time: %s", state.Elapsed.Truncate(time.Second)))
	imgui.Text(fmt.Sprintf("Restarts: %d", state.Restarts))

	paused := state.Paused
	if imgui.Checkbox("Paused", &paused) && paused != state.Paused {
		session.Enqueue(game.TogglePause)
	}
	imgui.SameLine()
	clockwise := state.Clockwise
	if imgui.Checkbox("Clockwise", &clockwise) && clockwise != state.Clockwise {
		session.Enqueue(game.ToggleRotateDirection)
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		session.Enqueue(game.Restart)
	}
	if state.Over {
		imgui.Text("Game over")
	}

	avg := w.history.Average()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	imgui.Text("Frame Time Graph (ms)")
	samples := w.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		stats := session.Scheduler().Stats()
		imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Placements") {
		for _, k := range engine.Kinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", k, session.Placed(k)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
