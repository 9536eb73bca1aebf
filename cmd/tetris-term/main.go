// Command tetris-term plays Tetris in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/game"
)

func main() {
	defaults := game.DefaultConfig()
	height := flag.Int("height", defaults.Height, "Visible board rows.")
	width := flag.Int("width", defaults.Width, "Board columns.")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the piece generator.")
	tick := flag.Duration("tick", 16*time.Millisecond, "Update interval.")
	flag.Parse()

	cfg := defaults
	cfg.Height, cfg.Width = *height, *width
	cfg.Seed = *seed

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialise terminal: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := make(chan game.Command, 16)
	go pollKeys(screen, input, cancel)

	session.Scheduler().Register(&RenderSystem{screen: screen})
	session.Run(ctx, *tick, input)
	screen.Fini()

	state := session.State()
	log.Printf("Final score %d, %d lines, level %d", state.Score, state.Lines, state.Level)
}

var runeBindings = map[rune]game.Command{
	' ': game.Drop,
	'z': game.RotateCounterclockwise,
	'x': game.RotateClockwise,
	'p': game.TogglePause,
	'r': game.ToggleRotateDirection,
	'n': game.Restart,
}

var keyBindings = map[tcell.Key]game.Command{
	tcell.KeyLeft:  game.MoveLeft,
	tcell.KeyRight: game.MoveRight,
	tcell.KeyDown:  game.MoveDown,
	tcell.KeyUp:    game.Rotate,
}

// pollKeys forwards key presses until the screen is finalised or the player
// quits.
func pollKeys(screen tcell.Screen, input chan<- game.Command, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q'):
				quit()
				return
			case ev.Key() == tcell.KeyRune:
				if cmd, ok := runeBindings[ev.Rune()]; ok {
					input <- cmd
				}
			default:
				if cmd, ok := keyBindings[ev.Key()]; ok {
					input <- cmd
				}
			}
		}
	}
}
