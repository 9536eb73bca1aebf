package engine

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidDimensions is returned for boards that cannot hold a piece.
	ErrInvalidDimensions = errors.New("engine: invalid board dimensions")
	// ErrPieceOutOfBounds is returned when a supplied piece does not fit the
	// board it is meant to spawn on.
	ErrPieceOutOfBounds = errors.New("engine: piece outside board")
)

// RowsAboveBoard is the number of hidden rows above the visible board. Pieces
// spawn there and a frozen block there ends the game.
const RowsAboveBoard = BlocksPerPiece

// View is the read-only surface of a board handed to renderers and scorers.
type View interface {
	Height() int
	Width() int
	RowAt(y int) []Color
	Color(p Point) Color
	CurrentPiece() Piece
	NextPiece() Piece
	Projection() Piece
	LastLinesRemoved() int
	LastBlocksPlaced() int
	Changed() bool
	IsFull() bool
}

var _ View = (*Board)(nil)

// Board is the mutable simulation core. It owns the grid, the falling and
// next pieces, and the generator feeding them.
//
// The grid holds Height()+RowsAboveBoard rows of Width() cells, row 0 at the
// bottom. Once IsFull reports true every command is a no-op.
//
// A Board is not safe for concurrent use.
type Board struct {
	height int
	width  int
	rows   [][]Color

	generator Generator
	current   Piece
	next      Piece

	lastLinesRemoved int
	lastBlocksPlaced int
	changed          bool
	full             bool
}

// SpawnOrigin returns the origin random play spawns pieces at: horizontally
// centred and resting on the first hidden row. Every orientation of every
// kind placed there fits the board when width >= BlocksPerPiece.
func SpawnOrigin(height, width int) Point {
	return Point{X: (width - BlocksPerPiece) / 2, Y: height}
}

// NewBoard returns a board for random play, dealing pieces from a bag
// generator seeded with seed.
func NewBoard(height, width int, seed int64) (*Board, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	if width < BlocksPerPiece {
		return nil, fmt.Errorf("%w: random play needs width >= %d, got %d", ErrInvalidDimensions, BlocksPerPiece, width)
	}
	return newBoard(height, width, NewBagGenerator(seed, SpawnOrigin(height, width))), nil
}

// NewSequenceBoard returns a board that cycles through pieces in order. Each
// piece spawns exactly where it is placed, so every piece must lie inside the
// board.
func NewSequenceBoard(height, width int, pieces []Piece) (*Board, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	for i, p := range pieces {
		if !fits(height, width, p) {
			return nil, fmt.Errorf("%w: sequence piece %d (%s at %s)", ErrPieceOutOfBounds, i, p.Kind(), p.Origin())
		}
	}
	gen, err := NewSequenceGenerator(pieces)
	if err != nil {
		return nil, err
	}
	return newBoard(height, width, gen), nil
}

// NewBoardWithGenerator returns a board fed by gen. The generator must only
// produce pieces that lie inside the board.
func NewBoardWithGenerator(height, width int, gen Generator) (*Board, error) {
	if err := checkDimensions(height, width); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.New("engine: nil generator")
	}
	return newBoard(height, width, gen), nil
}

func checkDimensions(height, width int) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	return nil
}

func fits(height, width int, p Piece) bool {
	for _, pos := range p.Positions() {
		if pos.X < 0 || pos.X >= width || pos.Y < 0 || pos.Y >= height+RowsAboveBoard {
			return false
		}
	}
	return true
}

func newBoard(height, width int, gen Generator) *Board {
	b := &Board{
		height:    height,
		width:     width,
		rows:      make([][]Color, 0, height+RowsAboveBoard),
		generator: gen,
		changed:   true,
	}
	for range height + RowsAboveBoard {
		b.rows = append(b.rows, make([]Color, width))
	}
	b.current = gen.Next()
	b.next = gen.Next()
	return b
}

// Height returns the number of visible rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Rows returns the total number of grid rows, hidden rows included.
func (b *Board) Rows() int {
	return len(b.rows)
}

// CurrentPiece returns the falling piece.
func (b *Board) CurrentPiece() Piece {
	return b.current
}

// NextPiece returns the piece that spawns after the current one freezes.
func (b *Board) NextPiece() Piece {
	return b.next
}

// LastLinesRemoved returns how many rows the last command cleared, 0 to 4.
func (b *Board) LastLinesRemoved() int {
	return b.lastLinesRemoved
}

// LastBlocksPlaced returns 4 if the last command froze a piece and 0
// otherwise.
func (b *Board) LastBlocksPlaced() int {
	return b.lastBlocksPlaced
}

// Changed reports whether the last command altered the board.
func (b *Board) Changed() bool {
	return b.changed
}

// IsFull reports whether the game is over.
func (b *Board) IsFull() bool {
	return b.full
}

// IsWithinBoard reports whether p lies on the grid, hidden rows included.
func (b *Board) IsWithinBoard(p Point) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < len(b.rows)
}

// RowAt returns a copy of the frozen cells of row y, without the current
// piece. It returns nil when y is outside the grid.
func (b *Board) RowAt(y int) []Color {
	if y < 0 || y >= len(b.rows) {
		return nil
	}
	return slices.Clone(b.rows[y])
}

// IsRowEmpty reports whether row y holds neither a frozen block nor a block
// of the current piece.
func (b *Board) IsRowEmpty(y int) bool {
	if y < 0 || y >= len(b.rows) {
		return true
	}
	for _, pos := range b.current.Positions() {
		if pos.Y == y {
			return false
		}
	}
	return rowEmpty(b.rows[y])
}

// IsRowFull reports whether row y is completely occupied once the current
// piece is overlaid on the frozen cells.
func (b *Board) IsRowFull(y int) bool {
	return b.rowFullWith(y, b.current)
}

// IsRowFullUnderProjection is IsRowFull with the current piece overlaid at
// its projection, predicting the outcome of Drop.
func (b *Board) IsRowFullUnderProjection(y int) bool {
	return b.rowFullWith(y, b.Projection())
}

func (b *Board) rowFullWith(y int, p Piece) bool {
	row := b.RowAt(y)
	if row == nil {
		return false
	}
	for _, pos := range p.Positions() {
		if pos.Y == y && pos.X >= 0 && pos.X < b.width {
			row[pos.X] = p.Color()
		}
	}
	return rowFull(row)
}

// Color returns the frozen color at p, else the current piece's color if one
// of its blocks covers p, else NoColor.
func (b *Board) Color(p Point) Color {
	if !b.IsWithinBoard(p) {
		return NoColor
	}
	if c := b.rows[p.Y][p.X]; !c.Empty() {
		return c
	}
	if b.current.Occupies(p) {
		return b.current.Color()
	}
	return NoColor
}

// Collides reports whether p leaves the grid or overlaps a frozen block. The
// current piece's own cells are not considered.
func (b *Board) Collides(p Piece) bool {
	for _, pos := range p.Positions() {
		if !b.IsWithinBoard(pos) || !b.rows[pos.Y][pos.X].Empty() {
			return true
		}
	}
	return false
}

// Projection returns the current piece moved down as far as it can go
// without colliding.
func (b *Board) Projection() Piece {
	projection := b.current
	for {
		moved := projection.MoveDown()
		if b.Collides(moved) {
			return projection
		}
		projection = moved
	}
}

// FrozenCells returns the number of occupied grid cells, hidden rows
// included.
func (b *Board) FrozenCells() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

func rowEmpty(row []Color) bool {
	for _, c := range row {
		if !c.Empty() {
			return false
		}
	}
	return true
}

func rowFull(row []Color) bool {
	for _, c := range row {
		if c.Empty() {
			return false
		}
	}
	return true
}
