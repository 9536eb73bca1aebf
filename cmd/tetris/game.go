package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/game"
)

// Game implements ebiten.Game around a session.
type Game struct {
	session *game.Session
	layout  layout
	keys    *keyboard
	// ghost holds the hashes of the projection's cells.
	ghost *intmap.Map[uint64, struct{}]
	dt    time.Duration

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.ImguiSystem
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.Frame(g.tick)
	} else {
		g.tick()
	}
	return nil
}

func (g *Game) tick() {
	cmds := g.keys.Commands()
	if g.overlay == nil || !g.overlay.InputState.WantCaptureKeyboard {
		g.session.Enqueue(cmds...)
	}
	g.session.Tick(g.dt)
}

func (g *Game) Draw(screen *ebiten.Image) {
	board := g.session.Board()
	g.ghost.Clear()
	for _, p := range board.Projection().Positions() {
		g.ghost.Put(p.Hash(), struct{}{})
	}

	g.layout.drawBoard(screen, board, g.ghost)
	g.layout.drawSidebar(screen, board, g.session.State(), g.session.Config())

	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.windowSize()
}
