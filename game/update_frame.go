package game

import "github.com/plus3/tetris/engine"

// Placement records one piece freezing into the grid during a frame.
type Placement struct {
	Kind  engine.Kind
	Lines int
}

// UpdateFrame is handed to every system during one scheduler step.
type UpdateFrame struct {
	DeltaTime float64
	// Input holds the commands pushed since the previous frame.
	Input []Command
	// Commands collects operations deferred to the end of the frame.
	Commands *Commands
	Session  *Session
	// Placements is appended to whenever a board command freezes a piece.
	Placements []Placement

	restarting bool
}

func newUpdateFrame(dt float64, session *Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Input:     session.input.Take(),
		Commands:  newCommands(),
		Session:   session,
	}
}

// apply runs a board command and records a placement if it froze the
// current piece. A terminal board ignores commands, so nothing is recorded
// for it.
func (f *UpdateFrame) apply(command func()) {
	board := f.Session.board
	if board.IsFull() {
		return
	}
	kind := board.CurrentPiece().Kind()
	command()
	if board.LastBlocksPlaced() > 0 {
		f.Placements = append(f.Placements, Placement{Kind: kind, Lines: board.LastLinesRemoved()})
	}
}
