package engine_test

import (
	"testing"

	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
)

func TestPointHash(t *testing.T) {
	seen := make(map[uint64]engine.Point)
	for x := -8; x <= 8; x++ {
		for y := -8; y <= 8; y++ {
			p := engine.Point{X: x, Y: y}
			if other, ok := seen[p.Hash()]; ok {
				t.Fatalf("%s and %s share hash %d", p, other, p.Hash())
			}
			seen[p.Hash()] = p
		}
	}

	assert.Equal(t, engine.Point{X: 3, Y: 4}.Hash(), engine.Point{X: 3, Y: 4}.Hash())
	assert.Equal(t, engine.Point{X: 4, Y: 6}, engine.Point{X: 1, Y: 2}.Add(engine.Point{X: 3, Y: 4}))
	assert.Equal(t, "(1, -2)", engine.Point{X: 1, Y: -2}.String())
}

func TestRotationTables(t *testing.T) {
	wantCounts := map[engine.Kind]int{
		engine.I: 2,
		engine.J: 4,
		engine.L: 4,
		engine.O: 1,
		engine.S: 2,
		engine.T: 4,
		engine.Z: 2,
	}

	for _, k := range engine.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			p := engine.NewPiece(k)
			assert.Equal(t, wantCounts[k], p.RotationCount())
			assert.Len(t, k.Rotations(), wantCounts[k])
			for i, r := range k.Rotations() {
				assert.True(t, r.Valid(), "rotation %d of %s is malformed", i, k)
			}
			assert.Equal(t, k.Color(), p.Color())
			assert.False(t, p.Color().Empty())
		})
	}
}

func TestRotationValid(t *testing.T) {
	tests := []struct {
		name  string
		r     engine.Rotation
		valid bool
	}{
		{"square", engine.Rotation{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, true},
		{"line", engine.Rotation{{0, 3}, {0, 2}, {0, 1}, {0, 0}}, true},
		{"negative", engine.Rotation{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, false},
		{"too wide", engine.Rotation{{1, 0}, {2, 0}, {3, 0}, {4, 0}}, false},
		{"detached", engine.Rotation{{0, 0}, {1, 0}, {2, 0}, {0, 3}}, false},
		{"duplicate", engine.Rotation{{0, 0}, {0, 0}, {1, 0}, {2, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.r.Valid())
		})
	}
}

func TestPieceTransformsArePure(t *testing.T) {
	p := engine.NewPiece(engine.T).SetOrigin(engine.Point{X: 3, Y: 5})

	assert.Equal(t, engine.Point{X: 2, Y: 5}, p.MoveLeft().Origin())
	assert.Equal(t, engine.Point{X: 4, Y: 5}, p.MoveRight().Origin())
	assert.Equal(t, engine.Point{X: 3, Y: 4}, p.MoveDown().Origin())
	assert.Equal(t, 1, p.RotateClockwise().RotationIndex())
	assert.Equal(t, 3, p.RotateCounterclockwise().RotationIndex())

	assert.Equal(t, engine.Point{X: 3, Y: 5}, p.Origin())
	assert.Equal(t, 0, p.RotationIndex())
	assert.Equal(t, engine.T, p.MoveDown().RotateClockwise().Kind())
}

func TestPieceRotationCycle(t *testing.T) {
	for _, k := range engine.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			start := engine.NewPiece(k).SetOrigin(engine.Point{X: 2, Y: 7})

			p := start
			for range start.RotationCount() {
				p = p.RotateClockwise()
			}
			assert.Equal(t, start, p)

			assert.Equal(t, start, start.RotateClockwise().RotateCounterclockwise())
			assert.Equal(t, start, start.RotateCounterclockwise().RotateClockwise())
		})
	}
}

func TestPieceAbsolutePosition(t *testing.T) {
	p := engine.NewPiece(engine.O).SetOrigin(engine.Point{X: 2, Y: 3})

	want := [engine.BlocksPerPiece]engine.Point{{3, 4}, {3, 5}, {4, 4}, {4, 5}}
	assert.Equal(t, want, p.Positions())
	for i := range engine.BlocksPerPiece {
		assert.Equal(t, want[i], p.AbsolutePosition(i))
		assert.True(t, p.Occupies(want[i]))
	}
	assert.False(t, p.Occupies(engine.Point{X: 2, Y: 3}))
}

func TestPieceString(t *testing.T) {
	got := engine.NewPiece(engine.O).String()
	want := "    \n" +
		" ++ \n" +
		" ++ \n" +
		"    \n" +
		"O at (0, 0)\n"
	assert.Equal(t, want, got)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Z", engine.Z.String())
	assert.Equal(t, "Kind(9)", engine.Kind(9).String())
	assert.False(t, engine.Kind(9).Valid())
	assert.Panics(t, func() { engine.NewPiece(engine.Kind(7)) })
}
