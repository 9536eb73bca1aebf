package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/engine"
)

const inspectorCell = 10

// BoardInspector shows the pieces and counters of a board next to a small
// picture of the full grid, hidden rows included.
type BoardInspector struct {
	ShowProjection bool
}

func (bi *BoardInspector) Render(view engine.View) {
	imgui.SetNextWindowPosV(imgui.NewVec2(420, 440), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	current := view.CurrentPiece()
	imgui.Text(fmt.Sprintf("Board: %dx%d (+%d hidden rows)", view.Width(), view.Height(), engine.RowsAboveBoard))
	imgui.Text(fmt.Sprintf("Current: %s at %s, rotation %d/%d",
		current.Kind(), current.Origin(), current.RotationIndex(), current.RotationCount()))
	imgui.Text(fmt.Sprintf("Next: %s", view.NextPiece().Kind()))
	imgui.Text(fmt.Sprintf("Last move: %d blocks placed, %d lines removed, changed %t",
		view.LastBlocksPlaced(), view.LastLinesRemoved(), view.Changed()))
	imgui.Checkbox("Show projection", &bi.ShowProjection)
	imgui.Separator()

	rows := view.Height() + engine.RowsAboveBoard
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))
	hidden := imgui.ColorU32Vec4(imgui.NewVec4(0.3, 0.1, 0.1, 1))
	ghost := imgui.ColorU32Vec4(imgui.NewVec4(1, 1, 1, 0.25))

	var projection engine.Piece
	if bi.ShowProjection {
		projection = view.Projection()
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < view.Width(); x++ {
			p := engine.Point{X: x, Y: y}
			col := empty
			if y >= view.Height() {
				col = hidden
			}
			if c := view.Color(p); !c.Empty() {
				rgba := c.RGBA()
				col = imgui.ColorU32Vec4(imgui.NewVec4(
					float32(rgba.R)/255, float32(rgba.G)/255, float32(rgba.B)/255, 1))
			} else if bi.ShowProjection && projection.Occupies(p) {
				col = ghost
			}

			minX := origin.X + float32(x*inspectorCell)
			minY := origin.Y + float32((rows-1-y)*inspectorCell)
			drawList.AddRectFilled(
				imgui.NewVec2(minX, minY),
				imgui.NewVec2(minX+inspectorCell-1, minY+inspectorCell-1),
				col,
			)
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(view.Width()*inspectorCell), float32(rows*inspectorCell)))

	imgui.End()
}
