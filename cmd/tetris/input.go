package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/game"
)

// Key repeat timings, in ticks.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

type binding struct {
	key    ebiten.Key
	cmd    game.Command
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, game.MoveLeft, true},
	{ebiten.KeyArrowRight, game.MoveRight, true},
	{ebiten.KeyArrowDown, game.MoveDown, true},
	{ebiten.KeyArrowUp, game.Rotate, false},
	{ebiten.KeyZ, game.RotateCounterclockwise, false},
	{ebiten.KeyX, game.RotateClockwise, false},
	{ebiten.KeySpace, game.Drop, false},
	{ebiten.KeyP, game.TogglePause, false},
	{ebiten.KeyR, game.ToggleRotateDirection, false},
	{ebiten.KeyN, game.Restart, false},
}

type keyboard struct {
	buf []game.Command
}

func newKeyboard() *keyboard {
	return &keyboard{buf: make([]game.Command, 0, len(bindings))}
}

// Commands returns the commands triggered this tick. Movement keys repeat
// while held. The slice is reused on the next call.
func (k *keyboard) Commands() []game.Command {
	k.buf = k.buf[:0]
	for _, b := range bindings {
		d := inpututil.KeyPressDuration(b.key)
		if d == 1 || (b.repeat && d > repeatDelay && (d-repeatDelay)%repeatInterval == 0) {
			k.buf = append(k.buf, b.cmd)
		}
	}
	return k.buf
}
