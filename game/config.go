package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/tetris/engine"
)

// ErrInvalidConfig is returned by NewSession for a configuration that cannot
// drive a game.
var ErrInvalidConfig = errors.New("game: invalid config")

// Config describes a session: board dimensions, the piece supply and the
// gravity curve.
type Config struct {
	Height int
	Width  int

	// Seed feeds the bag generator. Ignored when Sequence is set.
	Seed int64
	// Sequence, when non-empty, replaces random play with a fixed cycle of
	// pieces.
	Sequence []engine.Piece

	// DropInterval is the level 0 gravity period. Each level shortens it by
	// DropIntervalStep, never below MinDropInterval.
	DropInterval     time.Duration
	DropIntervalStep time.Duration
	MinDropInterval  time.Duration

	// LevelDuration is the unpaused play time between level increments.
	LevelDuration time.Duration
}

// DefaultConfig returns the classic 20x10 setup.
func DefaultConfig() Config {
	return Config{
		Height:           20,
		Width:            10,
		Seed:             1,
		DropInterval:     500 * time.Millisecond,
		DropIntervalStep: 20 * time.Millisecond,
		MinDropInterval:  100 * time.Millisecond,
		LevelDuration:    time.Minute,
	}
}

// Validate reports the first problem with the configuration, wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Height <= 0 || c.Width <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Height, c.Width)
	case len(c.Sequence) == 0 && c.Width < engine.BlocksPerPiece:
		return fmt.Errorf("%w: random play needs a width of at least %d, got %d", ErrInvalidConfig, engine.BlocksPerPiece, c.Width)
	case c.DropInterval <= 0:
		return fmt.Errorf("%w: drop interval must be positive", ErrInvalidConfig)
	case c.MinDropInterval <= 0 || c.MinDropInterval > c.DropInterval:
		return fmt.Errorf("%w: min drop interval must be in (0, %s], got %s", ErrInvalidConfig, c.DropInterval, c.MinDropInterval)
	case c.DropIntervalStep < 0:
		return fmt.Errorf("%w: drop interval step must not be negative", ErrInvalidConfig)
	case c.LevelDuration <= 0:
		return fmt.Errorf("%w: level duration must be positive", ErrInvalidConfig)
	}
	return nil
}

// intervalAt returns the gravity period for a level.
func (c Config) intervalAt(level int) time.Duration {
	return max(c.MinDropInterval, c.DropInterval-time.Duration(level)*c.DropIntervalStep)
}

func (c Config) newBoard(restarts int) (*engine.Board, error) {
	if len(c.Sequence) > 0 {
		return engine.NewSequenceBoard(c.Height, c.Width, c.Sequence)
	}
	return engine.NewBoard(c.Height, c.Width, c.Seed+int64(restarts))
}
