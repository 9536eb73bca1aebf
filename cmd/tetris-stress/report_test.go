package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReport(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Height, cfg.Width = 4, 4
	cfg.Sequence = []engine.Piece{
		engine.NewPiece(engine.O).SetOrigin(engine.Point{X: -1, Y: 3}),
		engine.NewPiece(engine.O).SetOrigin(engine.Point{X: 1, Y: 3}),
	}
	session, err := game.NewSession(cfg)
	require.NoError(t, err)
	session.Enqueue(game.Drop, game.Drop)
	session.Tick(0)

	r := &Report{Duration: time.Second, Sessions: 2, Height: 4, Width: 4}
	r.Collect(session, 3)
	r.Collect(session, 1)

	assert.Equal(t, 4, r.GamesFinished)
	assert.Equal(t, 4, r.PiecesPlaced)
	assert.Equal(t, 4, r.LinesCleared)
	assert.Equal(t, 300, r.BestScore)
	require.Len(t, r.Systems, 4)
	assert.Equal(t, "InputSystem", r.Systems[0].Name)
	assert.Equal(t, int64(2), r.Systems[0].Executions)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Tetris Stress Test Report")
	assert.Contains(t, out, "**Sessions:** 2 (4x4, base seed 0)")
	assert.Contains(t, out, "**Best Score:** 300")
	assert.Contains(t, out, "| ScoreSystem | 2 |")
}

func TestRandomInputSystemRestarts(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Height, cfg.Width = 2, 4
	cfg.Sequence = []engine.Piece{engine.NewPiece(engine.O).SetOrigin(engine.Point{X: -1, Y: 1})}
	session, err := game.NewSession(cfg)
	require.NoError(t, err)

	input := &RandomInputSystem{rng: rand.New(rand.NewPCG(1, 2))}
	session.Scheduler().Register(input)

	session.Enqueue(game.Drop, game.Drop)
	session.Tick(0)
	require.True(t, session.State().Over)
	assert.Equal(t, 1, input.Finished)

	// The restart is applied on the next frame; the finished game is only
	// counted once.
	session.Tick(0)
	assert.False(t, session.State().Over)
	assert.Equal(t, 1, session.State().Restarts)
	assert.Equal(t, 1, input.Finished)

	session.Tick(0)
	assert.Equal(t, 1, input.Finished)
	assert.Equal(t, 1, session.Pending())
}
