package game

import (
	"math"
	"time"

	"github.com/plus3/tetris/engine"
)

var lineScores = [...]int{0, 100, 300, 600, 900}

// ScoreFor returns the points awarded for clearing lines rows with one piece.
func ScoreFor(lines int) int {
	if lines < 0 || lines >= len(lineScores) {
		return 0
	}
	return lineScores[lines]
}

// delta converts the frame's delta time to a duration, rounded to the
// nearest nanosecond.
func (f *UpdateFrame) delta() time.Duration {
	return time.Duration(math.Round(f.DeltaTime * float64(time.Second)))
}

// InputSystem applies the commands queued since the previous frame, in order.
type InputSystem struct {
	Applied int64
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for _, cmd := range frame.Input {
		frame.Session.execute(frame, cmd)
		s.Applied++
	}
}

// LevelSystem advances play time and derives the level and gravity period
// from it. Paused and finished games do not age.
type LevelSystem struct{}

func (s *LevelSystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	if session.state.Paused || session.board.IsFull() {
		return
	}
	state := &session.state
	state.Elapsed += frame.delta()
	state.Level = int(state.Elapsed / session.config.LevelDuration)
	state.DropInterval = session.config.intervalAt(state.Level)
}

// GravitySystem moves the current piece down once per drop interval.
type GravitySystem struct {
	board       *engine.Board
	accumulator time.Duration
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	if s.board != session.board {
		s.board = session.board
		s.accumulator = 0
	}
	if session.state.Paused || s.board.IsFull() {
		return
	}

	s.accumulator += frame.delta()
	for s.accumulator >= session.state.DropInterval && !s.board.IsFull() {
		s.accumulator -= session.state.DropInterval
		frame.apply(s.board.MoveDown)
	}
}

// ScoreSystem folds the frame's placements into the score, the line total
// and the per-kind placement counters.
type ScoreSystem struct{}

func (s *ScoreSystem) Execute(frame *UpdateFrame) {
	session := frame.Session
	for _, p := range frame.Placements {
		session.state.Score += ScoreFor(p.Lines)
		session.state.Lines += p.Lines
		session.state.PiecesPlaced++

		n, _ := session.placed.Get(p.Kind)
		session.placed.Put(p.Kind, n+1)
	}
	session.state.Over = session.board.IsFull()
}
