package game

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/engine"
)

// State is a snapshot of a session's scoring and flow state.
type State struct {
	Score        int
	Lines        int
	Level        int
	PiecesPlaced int
	Restarts     int

	// Elapsed is unpaused play time since the last restart.
	Elapsed      time.Duration
	DropInterval time.Duration

	Paused bool
	Over   bool
	// Clockwise is the direction the Rotate command turns.
	Clockwise bool
}

// Session drives a board: it applies player commands, pulls the current
// piece down on a timer, and keeps score.
//
// A Session is not safe for concurrent use. Enqueue, Tick and Run must be
// called from the same goroutine; Run accepts commands from other goroutines
// through its input channel.
type Session struct {
	config    Config
	board     *engine.Board
	scheduler *Scheduler
	input     *Commands
	state     State
	placed    *intmap.Map[engine.Kind, int]
}

// NewSession validates cfg and builds a session with the input, level,
// gravity and score systems registered in that order.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Sequence = slices.Clone(cfg.Sequence)

	board, err := cfg.newBoard(0)
	if err != nil {
		return nil, fmt.Errorf("game: new board: %w", err)
	}

	s := &Session{
		config: cfg,
		board:  board,
		input:  newCommands(),
		placed: intmap.New[engine.Kind, int](engine.KindCount),
		state: State{
			DropInterval: cfg.intervalAt(0),
			Clockwise:    true,
		},
	}

	s.scheduler = newScheduler(s)
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&LevelSystem{})
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&ScoreSystem{})
	return s, nil
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config {
	cfg := s.config
	cfg.Sequence = slices.Clone(cfg.Sequence)
	return cfg
}

// Board returns the live board. A restart replaces the board, so callers
// should fetch it again after every tick rather than keep it.
func (s *Session) Board() engine.View {
	return s.board
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	return s.state
}

// Placed returns how many pieces of kind have frozen since the last restart.
func (s *Session) Placed(kind engine.Kind) int {
	n, _ := s.placed.Get(kind)
	return n
}

// Scheduler exposes the session's scheduler, for registering extra systems
// and reading execution stats.
func (s *Session) Scheduler() *Scheduler {
	return s.scheduler
}

// Enqueue queues commands for the next tick.
func (s *Session) Enqueue(cmds ...Command) {
	s.input.Push(cmds...)
}

// Pending returns the number of commands waiting for the next tick.
func (s *Session) Pending() int {
	return s.input.Len()
}

// Tick advances the session by dt.
func (s *Session) Tick(dt time.Duration) {
	s.scheduler.Once(dt.Seconds())
}

// Run ticks the session at the given interval until the context is
// cancelled. Commands received on input are queued for the next tick; a nil
// or closed channel simply delivers nothing.
func (s *Session) Run(ctx context.Context, interval time.Duration, input <-chan Command) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			s.Enqueue(cmd)
		case now := <-ticker.C:
			s.Tick(now.Sub(lastTime))
			lastTime = now
		}
	}
}

func (s *Session) execute(frame *UpdateFrame, cmd Command) {
	switch cmd {
	case TogglePause:
		if !s.board.IsFull() {
			s.state.Paused = !s.state.Paused
		}
		return
	case ToggleRotateDirection:
		s.state.Clockwise = !s.state.Clockwise
		return
	case Restart:
		if !frame.restarting {
			frame.restarting = true
			frame.Commands.Defer(s.restart)
		}
		return
	}

	if s.state.Paused {
		return
	}

	switch cmd {
	case MoveLeft:
		frame.apply(s.board.MoveLeft)
	case MoveRight:
		frame.apply(s.board.MoveRight)
	case MoveDown:
		frame.apply(s.board.MoveDown)
	case RotateClockwise:
		frame.apply(s.board.RotateClockwise)
	case RotateCounterclockwise:
		frame.apply(s.board.RotateCounterclockwise)
	case Rotate:
		if s.state.Clockwise {
			frame.apply(s.board.RotateClockwise)
		} else {
			frame.apply(s.board.RotateCounterclockwise)
		}
	case Drop:
		frame.apply(s.board.Drop)
	}
}

// restart swaps in a fresh board. Random sessions move to the next seed so
// consecutive games differ; sequence sessions replay their sequence.
func (s *Session) restart() {
	restarts := s.state.Restarts + 1
	board, err := s.config.newBoard(restarts)
	if err != nil {
		panic(fmt.Sprintf("game: restart with a validated config failed: %v", err))
	}

	s.board = board
	s.placed.Clear()
	s.state = State{
		Restarts:     restarts,
		DropInterval: s.config.intervalAt(0),
		Clockwise:    s.state.Clockwise,
	}
}
