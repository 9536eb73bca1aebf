package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/game"
)

const (
	margin       = 16
	sidebarWidth = 220
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	gridColor       = color.RGBA{40, 40, 52, 255}
	borderColor     = color.RGBA{200, 200, 210, 255}
	ghostColor      = color.RGBA{255, 255, 255, 48}
)

type layout struct {
	rows, cols int
	cell       int
}

func newLayout(rows, cols, cell int) layout {
	return layout{rows: rows, cols: cols, cell: cell}
}

func (l layout) windowSize() (int, int) {
	return l.cols*l.cell + sidebarWidth + 3*margin, l.rows*l.cell + 2*margin
}

// cellRect maps a board point to screen coordinates. Row 0 is at the bottom.
func (l layout) cellRect(p engine.Point) (x, y, size float32) {
	size = float32(l.cell)
	x = float32(margin + p.X*l.cell)
	y = float32(margin + (l.rows-1-p.Y)*l.cell)
	return x, y, size
}

func (l layout) drawBoard(screen *ebiten.Image, board engine.View, ghost *intmap.Map[uint64, struct{}]) {
	screen.Fill(backgroundColor)

	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.cols; x++ {
			p := engine.Point{X: x, Y: y}
			cx, cy, size := l.cellRect(p)

			if c := board.Color(p); !c.Empty() {
				vector.DrawFilledRect(screen, cx+1, cy+1, size-2, size-2, c.RGBA(), false)
				continue
			}
			vector.StrokeRect(screen, cx, cy, size, size, 1, gridColor, false)
			if _, ok := ghost.Get(p.Hash()); ok {
				vector.DrawFilledRect(screen, cx+1, cy+1, size-2, size-2, ghostColor, false)
			}
		}
	}

	vector.StrokeRect(screen, margin-1, margin-1, float32(l.cols*l.cell+2), float32(l.rows*l.cell+2), 2, borderColor, false)
}

func (l layout) drawSidebar(screen *ebiten.Image, board engine.View, state game.State, cfg game.Config) {
	left := 2*margin + l.cols*l.cell

	ebitenutil.DebugPrintAt(screen, "NEXT", left, margin)
	next := board.NextPiece()
	for _, b := range next.Blocks() {
		size := float32(l.cell) * 0.75
		x := float32(left) + float32(b.X)*size
		y := float32(margin+20) + float32(engine.BlocksPerPiece-1-b.Y)*size
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, next.Color().RGBA(), false)
	}

	untilLevel := cfg.LevelDuration - state.Elapsed%cfg.LevelDuration
	direction := "Right"
	if !state.Clockwise {
		direction = "Left"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Full rows: %d\n", state.Lines)
	fmt.Fprintf(&sb, "Level: %d\n", state.Level)
	fmt.Fprintf(&sb, "Next level in: %ds\n", int(untilLevel.Seconds()))
	fmt.Fprintf(&sb, "Total score: %d\n", state.Score)
	fmt.Fprintf(&sb, "Rotation: %s\n", direction)
	switch {
	case state.Over:
		sb.WriteString("\nGAME OVER\nN to start again\n")
	case state.Paused:
		sb.WriteString("\nPAUSED\n")
	}
	sb.WriteString("\nArrows  move / rotate\nSpace   drop\nZ X     rotate left/right\nP       pause\nR       rotation direction\nN       new game\nQ       quit\n")

	ebitenutil.DebugPrintAt(screen, sb.String(), left, margin+20+l.cell*3+16)
}
