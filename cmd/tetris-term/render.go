package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/game"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	textStyle   = tcell.StyleDefault
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	colorStyles = map[engine.Color]tcell.Style{}
)

func init() {
	for c := engine.Cyan; c <= engine.Red; c++ {
		rgba := c.RGBA()
		colorStyles[c] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
	}
}

// RenderSystem redraws the terminal after every frame.
type RenderSystem struct {
	screen tcell.Screen
}

func (s *RenderSystem) Execute(frame *game.UpdateFrame) {
	board := frame.Session.Board()
	state := frame.Session.State()
	s.screen.Clear()

	// Each cell is two columns wide so blocks look square.
	ghost := board.Projection()
	for y := 0; y < board.Height(); y++ {
		row := board.Height() - y
		s.put(0, row, '|', borderStyle)
		s.put(2*board.Width()+1, row, '|', borderStyle)
		for x := 0; x < board.Width(); x++ {
			p := engine.Point{X: x, Y: y}
			style, glyph := textStyle, ' '
			if c := board.Color(p); !c.Empty() {
				style = colorStyles[c]
			} else if ghost.Occupies(p) {
				style, glyph = ghostStyle, '.'
			}
			s.put(2*x+1, row, glyph, style)
			s.put(2*x+2, row, glyph, style)
		}
	}
	for x := 0; x < 2*board.Width()+2; x++ {
		s.put(x, board.Height()+1, '-', borderStyle)
	}

	left := 2*board.Width() + 4
	s.text(left, 1, "Next:")
	next := board.NextPiece()
	for _, b := range next.Blocks() {
		style := colorStyles[next.Color()]
		s.put(left+2*b.X, 2+engine.BlocksPerPiece-1-b.Y, ' ', style)
		s.put(left+2*b.X+1, 2+engine.BlocksPerPiece-1-b.Y, ' ', style)
	}

	direction := "Right"
	if !state.Clockwise {
		direction = "Left"
	}
	lines := []string{
		fmt.Sprintf("Full rows:   %d", state.Lines),
		fmt.Sprintf("Level:       %d", state.Level),
		fmt.Sprintf("Total score: %d", state.Score),
		fmt.Sprintf("Rotation:    %s", direction),
	}
	switch {
	case state.Over:
		lines = append(lines, "", "GAME OVER - n for a new game")
	case state.Paused:
		lines = append(lines, "", "PAUSED")
	}
	for i, line := range lines {
		s.text(left, 7+i, line)
	}

	s.screen.Show()
}

func (s *RenderSystem) put(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *RenderSystem) text(x, y int, str string) {
	for i, r := range []rune(str) {
		s.put(x+i, y, r, textStyle)
	}
}
