package engine_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareAt returns an O piece whose blocks cover columns x, x+1 and rows
// y, y+1.
func squareAt(x, y int) engine.Piece {
	return engine.NewPiece(engine.O).SetOrigin(engine.Point{X: x - 1, Y: y - 1})
}

func newSequenceBoard(t *testing.T, height, width int, pieces ...engine.Piece) *engine.Board {
	t.Helper()
	b, err := engine.NewSequenceBoard(height, width, pieces)
	require.NoError(t, err)
	return b
}

func grid(b *engine.Board) [][]engine.Color {
	rows := make([][]engine.Color, b.Rows())
	for y := range rows {
		rows[y] = b.RowAt(y)
	}
	return rows
}

type snapshot struct {
	Grid    [][]engine.Color
	Current engine.Piece
	Next    engine.Piece
	Lines   int
	Blocks  int
	Changed bool
	Full    bool
}

func snap(b *engine.Board) snapshot {
	return snapshot{
		Grid:    grid(b),
		Current: b.CurrentPiece(),
		Next:    b.NextPiece(),
		Lines:   b.LastLinesRemoved(),
		Blocks:  b.LastBlocksPlaced(),
		Changed: b.Changed(),
		Full:    b.IsFull(),
	}
}

var snapshotCmp = cmp.AllowUnexported(engine.Piece{})

func fitsBoard(b *engine.Board, p engine.Piece) bool {
	for _, pos := range p.Positions() {
		if !b.IsWithinBoard(pos) {
			return false
		}
	}
	return true
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 10},
		{"zero width", 20, 0},
		{"negative height", -1, 10},
		{"too narrow for random play", 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.NewBoard(tt.height, tt.width, 1)
			assert.ErrorIs(t, err, engine.ErrInvalidDimensions)
			assert.Nil(t, b)
		})
	}

	t.Run("empty sequence", func(t *testing.T) {
		_, err := engine.NewSequenceBoard(4, 4, nil)
		assert.ErrorIs(t, err, engine.ErrEmptySequence)
	})

	t.Run("sequence piece off the board", func(t *testing.T) {
		_, err := engine.NewSequenceBoard(4, 4, []engine.Piece{squareAt(3, 0)})
		assert.ErrorIs(t, err, engine.ErrPieceOutOfBounds)
	})

	t.Run("sequence with bad dimensions", func(t *testing.T) {
		_, err := engine.NewSequenceBoard(0, 4, []engine.Piece{squareAt(0, 0)})
		assert.ErrorIs(t, err, engine.ErrInvalidDimensions)
	})

	t.Run("nil generator", func(t *testing.T) {
		_, err := engine.NewBoardWithGenerator(4, 4, nil)
		assert.Error(t, err)
	})
}

func TestNewBoardInitialState(t *testing.T) {
	b, err := engine.NewBoard(20, 10, 3)
	require.NoError(t, err)

	assert.Equal(t, 20, b.Height())
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 24, b.Rows())
	for y := 0; y < b.Rows(); y++ {
		assert.Len(t, b.RowAt(y), 10)
		assert.True(t, b.IsRowEmpty(y) || y >= b.Height(), "row %d", y)
	}
	assert.Zero(t, b.FrozenCells())
	assert.True(t, b.Changed())
	assert.False(t, b.IsFull())
	assert.Zero(t, b.LastLinesRemoved())
	assert.Zero(t, b.LastBlocksPlaced())

	spawn := engine.SpawnOrigin(20, 10)
	assert.Equal(t, engine.Point{X: 3, Y: 20}, spawn)
	assert.Equal(t, spawn, b.CurrentPiece().Origin())
	assert.Equal(t, spawn, b.NextPiece().Origin())
	assert.NotEqual(t, b.CurrentPiece().Kind(), b.NextPiece().Kind())
	assert.True(t, fitsBoard(b, b.CurrentPiece()))
	assert.True(t, fitsBoard(b, b.NextPiece()))
}

func TestSpawnOriginFitsEveryRotation(t *testing.T) {
	for _, width := range []int{4, 5, 10, 11} {
		b, err := engine.NewBoard(8, width, 1)
		require.NoError(t, err)
		for _, k := range engine.Kinds() {
			p := engine.NewPiece(k).SetOrigin(engine.SpawnOrigin(8, width))
			for range p.RotationCount() {
				assert.False(t, b.Collides(p), "width %d kind %s rotation %d", width, k, p.RotationIndex())
				p = p.RotateClockwise()
			}
		}
	}
}

func TestQueries(t *testing.T) {
	b := newSequenceBoard(t, 4, 4, squareAt(0, 4), squareAt(2, 4))
	b.Drop()

	// Frozen square in columns 0-1, rows 0-1. Current square in columns 2-3,
	// rows 4-5.
	yellow := engine.O.Color()
	assert.Equal(t, []engine.Color{yellow, yellow, engine.NoColor, engine.NoColor}, b.RowAt(0))
	assert.Nil(t, b.RowAt(8))
	assert.Nil(t, b.RowAt(-1))

	assert.False(t, b.IsRowEmpty(0))
	assert.True(t, b.IsRowEmpty(2))
	assert.True(t, b.IsRowEmpty(3))
	assert.False(t, b.IsRowEmpty(4))
	assert.False(t, b.IsRowEmpty(5))
	assert.True(t, b.IsRowEmpty(6))

	assert.False(t, b.IsRowFull(0))
	assert.False(t, b.IsRowFull(4))
	assert.True(t, b.IsRowFullUnderProjection(0))
	assert.True(t, b.IsRowFullUnderProjection(1))
	assert.False(t, b.IsRowFullUnderProjection(2))
	assert.False(t, b.IsRowFull(99))

	assert.Equal(t, yellow, b.Color(engine.Point{X: 0, Y: 0}))
	assert.Equal(t, yellow, b.Color(engine.Point{X: 2, Y: 4}))
	assert.Equal(t, engine.NoColor, b.Color(engine.Point{X: 2, Y: 0}))
	assert.Equal(t, engine.NoColor, b.Color(engine.Point{X: -1, Y: 0}))
	assert.Equal(t, engine.NoColor, b.Color(engine.Point{X: 0, Y: 8}))

	assert.True(t, b.IsWithinBoard(engine.Point{X: 3, Y: 7}))
	assert.False(t, b.IsWithinBoard(engine.Point{X: 4, Y: 0}))
	assert.False(t, b.IsWithinBoard(engine.Point{X: 0, Y: 8}))
	assert.False(t, b.IsWithinBoard(engine.Point{X: 0, Y: -1}))

	assert.Equal(t, squareAt(2, 0), b.Projection())
	assert.Equal(t, squareAt(2, 4), b.CurrentPiece())
}

func TestRowAtReturnsCopy(t *testing.T) {
	b := newSequenceBoard(t, 4, 4, squareAt(0, 0))
	b.MoveDown()

	row := b.RowAt(0)
	row[3] = engine.Red
	assert.Equal(t, engine.NoColor, b.RowAt(0)[3])
}

func TestCollides(t *testing.T) {
	b := newSequenceBoard(t, 4, 4, squareAt(0, 0), squareAt(2, 4))
	b.MoveDown()

	tests := []struct {
		name    string
		piece   engine.Piece
		collide bool
	}{
		{"free cell", squareAt(2, 0), false},
		{"frozen overlap", squareAt(1, 1), true},
		{"left wall", squareAt(-1, 3), true},
		{"right wall", squareAt(3, 3), true},
		{"floor", squareAt(2, -1), true},
		{"ceiling", squareAt(2, 7), true},
		{"top hidden row", squareAt(2, 6), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.collide, b.Collides(tt.piece))
			assert.Equal(t, tt.collide, b.Collides(tt.piece), "second call")
		})
	}

	assert.False(t, b.Collides(b.CurrentPiece()))
}

func TestMoveNoOpAtWall(t *testing.T) {
	b := newSequenceBoard(t, 6, 4, squareAt(0, 5))
	require.True(t, b.Collides(b.CurrentPiece().MoveLeft()))

	before := snap(b)
	b.MoveLeft()
	after := snap(b)

	assert.False(t, after.Changed)
	before.Changed = false
	if diff := cmp.Diff(before, after, snapshotCmp); diff != "" {
		t.Errorf("blocked move changed the board (-before +after):\n%s", diff)
	}

	b.MoveRight()
	assert.True(t, b.Changed())
	assert.Equal(t, squareAt(1, 5), b.CurrentPiece())

	b.MoveRight()
	b.MoveRight()
	assert.False(t, b.Changed())
	assert.Equal(t, squareAt(2, 5), b.CurrentPiece())
}

func TestRotateBlocked(t *testing.T) {
	upright := engine.NewPiece(engine.I).RotateClockwise().SetOrigin(engine.Point{X: -2, Y: 2})
	b := newSequenceBoard(t, 6, 4, upright)
	require.Equal(t, 1, b.CurrentPiece().RotationIndex())

	b.RotateClockwise()
	assert.False(t, b.Changed())
	assert.Equal(t, upright, b.CurrentPiece())

	b.RotateCounterclockwise()
	assert.False(t, b.Changed())
	assert.Equal(t, upright, b.CurrentPiece())

	b.MoveRight()
	b.MoveRight()
	b.RotateClockwise()
	assert.True(t, b.Changed())
	assert.Equal(t, 0, b.CurrentPiece().RotationIndex())
}

func TestRotateSingleOrientationReportsChange(t *testing.T) {
	b := newSequenceBoard(t, 6, 4, squareAt(1, 5))
	before := b.CurrentPiece()

	b.RotateClockwise()
	assert.True(t, b.Changed())
	assert.Equal(t, before, b.CurrentPiece())

	b.RotateCounterclockwise()
	assert.True(t, b.Changed())
	assert.Equal(t, before, b.CurrentPiece())
}

func TestMoveDownFalls(t *testing.T) {
	b := newSequenceBoard(t, 6, 4, squareAt(1, 5))

	b.MoveDown()
	assert.True(t, b.Changed())
	assert.Zero(t, b.LastBlocksPlaced())
	assert.Zero(t, b.LastLinesRemoved())
	assert.Equal(t, squareAt(1, 4), b.CurrentPiece())
	assert.Zero(t, b.FrozenCells())
}

func TestFreezeAdvancesPieces(t *testing.T) {
	first := squareAt(0, 0)
	second := squareAt(2, 4)
	b := newSequenceBoard(t, 4, 4, first, second)
	require.Equal(t, first, b.CurrentPiece())
	require.Equal(t, second, b.NextPiece())

	b.MoveDown()
	assert.Equal(t, 4, b.LastBlocksPlaced())
	assert.Zero(t, b.LastLinesRemoved())
	assert.True(t, b.Changed())
	assert.Equal(t, 4, b.FrozenCells())
	assert.Equal(t, second, b.CurrentPiece())
	assert.Equal(t, first, b.NextPiece())

	b.MoveLeft()
	assert.Zero(t, b.LastBlocksPlaced())
}

func TestDropScenario(t *testing.T) {
	b := newSequenceBoard(t, 4, 4, squareAt(0, 4), squareAt(2, 4), squareAt(0, 4), squareAt(2, 4))

	var lines, frozen []int
	for range 4 {
		b.Drop()
		assert.Equal(t, 4, b.LastBlocksPlaced())
		lines = append(lines, b.LastLinesRemoved())
		frozen = append(frozen, b.FrozenCells())
	}

	if diff := cmp.Diff([]int{0, 2, 0, 2}, lines); diff != "" {
		t.Errorf("lines removed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 0, 4, 0}, frozen); diff != "" {
		t.Errorf("frozen cells (-want +got):\n%s", diff)
	}

	want := make([][]engine.Color, 8)
	for y := range want {
		want[y] = make([]engine.Color, 4)
	}
	if diff := cmp.Diff(want, grid(b)); diff != "" {
		t.Errorf("final grid (-want +got):\n%s", diff)
	}
	assert.False(t, b.IsFull())
}

func TestClearRowAboveStack(t *testing.T) {
	flat := engine.NewPiece(engine.I).SetOrigin(engine.Point{X: 0, Y: 5})
	b := newSequenceBoard(t, 6, 4, squareAt(0, 6), flat)

	b.Drop()
	b.Drop()
	assert.Equal(t, 1, b.LastLinesRemoved())
	assert.Equal(t, 4, b.FrozenCells())

	yellow := engine.O.Color()
	assert.Equal(t, []engine.Color{yellow, yellow, engine.NoColor, engine.NoColor}, b.RowAt(0))
	assert.Equal(t, []engine.Color{yellow, yellow, engine.NoColor, engine.NoColor}, b.RowAt(1))
	assert.Equal(t, make([]engine.Color, 4), b.RowAt(2))
}

func TestLineClearShiftsRowsDown(t *testing.T) {
	b := newSequenceBoard(t, 6, 4, squareAt(0, 6), squareAt(0, 6), squareAt(2, 6))

	b.Drop() // columns 0-1, rows 0-1
	b.Drop() // stacked on top, rows 2-3
	require.Zero(t, b.LastLinesRemoved())
	require.Equal(t, 8, b.FrozenCells())

	b.Drop() // columns 2-3, rows 0-1: both bottom rows clear
	assert.Equal(t, 2, b.LastLinesRemoved())
	assert.Equal(t, 4, b.FrozenCells())

	yellow := engine.O.Color()
	want := make([][]engine.Color, 10)
	for y := range want {
		want[y] = make([]engine.Color, 4)
	}
	want[0] = []engine.Color{yellow, yellow, engine.NoColor, engine.NoColor}
	want[1] = []engine.Color{yellow, yellow, engine.NoColor, engine.NoColor}
	if diff := cmp.Diff(want, grid(b)); diff != "" {
		t.Errorf("grid after clear (-want +got):\n%s", diff)
	}
}

func TestGameOver(t *testing.T) {
	b := newSequenceBoard(t, 2, 4, squareAt(0, 2))

	b.Drop()
	require.False(t, b.IsFull())

	b.Drop()
	require.True(t, b.IsFull())
	assert.Equal(t, 4, b.LastBlocksPlaced())
	assert.Zero(t, b.LastLinesRemoved())

	before := snap(b)
	commands := []func(){
		b.MoveLeft, b.MoveRight, b.MoveDown,
		b.RotateClockwise, b.RotateCounterclockwise, b.Drop,
	}
	for _, cmd := range commands {
		cmd()
		if diff := cmp.Diff(before, snap(b), snapshotCmp); diff != "" {
			t.Fatalf("command changed a terminal board (-before +after):\n%s", diff)
		}
	}
}

func TestMoveDownMatchesDropAtRest(t *testing.T) {
	seq := []engine.Piece{squareAt(0, 0), squareAt(2, 0), squareAt(0, 4)}
	viaMove := newSequenceBoard(t, 4, 4, seq...)
	viaDrop := newSequenceBoard(t, 4, 4, seq...)

	for i := 0; i < 2; i++ {
		require.Equal(t, viaMove.Projection(), viaMove.CurrentPiece())
		for y := 0; y < viaMove.Rows(); y++ {
			assert.Equal(t, viaMove.IsRowFull(y), viaMove.IsRowFullUnderProjection(y), "piece %d row %d", i, y)
		}

		viaMove.MoveDown()
		viaDrop.Drop()

		if diff := cmp.Diff(snap(viaMove), snap(viaDrop), snapshotCmp); diff != "" {
			t.Fatalf("piece %d: MoveDown and Drop disagree (-move +drop):\n%s", i, diff)
		}
	}
	assert.Equal(t, 2, viaMove.LastLinesRemoved())
}

func TestProjection(t *testing.T) {
	b, err := engine.NewBoard(10, 6, 11)
	require.NoError(t, err)

	for range 30 {
		if b.IsFull() {
			break
		}
		p := b.Projection()
		assert.False(t, b.Collides(p))
		assert.True(t, b.Collides(p.MoveDown()))
		assert.Equal(t, b.CurrentPiece().Origin().X, p.Origin().X)
		assert.Equal(t, b.CurrentPiece().RotationIndex(), p.RotationIndex())

		before := snap(b)
		b.Projection()
		if diff := cmp.Diff(before, snap(b), snapshotCmp); diff != "" {
			t.Fatalf("projection mutated the board:\n%s", diff)
		}
		b.Drop()
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		b, err := engine.NewBoard(12, 6, seed)
		require.NoError(t, err)
		rng := rand.New(rand.NewPCG(uint64(seed), 7))

		commands := []func(){
			b.MoveLeft, b.MoveRight, b.MoveDown, b.MoveDown,
			b.RotateClockwise, b.RotateCounterclockwise, b.Drop,
		}

		for step := 0; step < 3000 && !b.IsFull(); step++ {
			frozenBefore := b.FrozenCells()
			commands[rng.IntN(len(commands))]()

			require.Equal(t, 16, b.Rows())
			for y := 0; y < b.Rows(); y++ {
				row := b.RowAt(y)
				require.Len(t, row, 6)
				full := true
				for _, c := range row {
					full = full && !c.Empty()
				}
				require.False(t, full, "seed %d step %d: row %d left full", seed, step, y)
			}

			lines := b.LastLinesRemoved()
			require.GreaterOrEqual(t, lines, 0)
			require.LessOrEqual(t, lines, 4)

			switch b.LastBlocksPlaced() {
			case 0:
				require.Zero(t, lines)
				require.Equal(t, frozenBefore, b.FrozenCells())
			case 4:
				require.Equal(t, frozenBefore+4-lines*b.Width(), b.FrozenCells(), "seed %d step %d", seed, step)
			default:
				t.Fatalf("blocks placed = %d", b.LastBlocksPlaced())
			}

			require.True(t, fitsBoard(b, b.CurrentPiece()))
			require.True(t, fitsBoard(b, b.NextPiece()))
		}
		assert.True(t, b.IsFull(), "seed %d never filled up", seed)
	}
}

func TestBoardString(t *testing.T) {
	b := newSequenceBoard(t, 4, 4, squareAt(0, 4), squareAt(1, 2))
	b.Drop()

	want := "| ++ |\n" +
		"| ++ |\n" +
		"|XX  |\n" +
		"|XX  |\n" +
		"------\n"
	assert.Equal(t, want, b.String())
}
