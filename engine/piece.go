package engine

import (
	"fmt"
	"strings"
)

// Piece is an immutable falling tetromino. Every transform returns a new
// value and leaves the receiver untouched; whether the result is legal on a
// board is decided by the board, never by the piece.
//
// Pieces are comparable: two pieces are == when they have the same kind,
// rotation index and origin.
type Piece struct {
	kind     Kind
	rotation int
	origin   Point
}

// NewPiece returns a piece of the given kind in its first orientation at
// origin (0, 0).
func NewPiece(kind Kind) Piece {
	if !kind.Valid() {
		panic(fmt.Sprintf("engine: unknown piece kind %d", kind))
	}
	return Piece{kind: kind}
}

// Kind returns the variant of p.
func (p Piece) Kind() Kind {
	return p.kind
}

// Color returns the color of p.
func (p Piece) Color() Color {
	return p.kind.Color()
}

// Origin returns the board-space anchor the rotation offsets are added to.
func (p Piece) Origin() Point {
	return p.origin
}

// RotationIndex returns the index of the current orientation.
func (p Piece) RotationIndex() int {
	return p.rotation
}

// RotationCount returns the number of distinct orientations of p: 1, 2 or 4.
func (p Piece) RotationCount() int {
	return len(kindTable[p.kind].rotations)
}

// Blocks returns the current orientation as offsets from the origin.
func (p Piece) Blocks() Rotation {
	return kindTable[p.kind].rotations[p.rotation]
}

// AbsolutePosition returns the board position of block i, for i in
// [0, BlocksPerPiece).
func (p Piece) AbsolutePosition(i int) Point {
	return p.origin.Add(p.Blocks()[i])
}

// Positions returns the board positions of all four blocks.
func (p Piece) Positions() [BlocksPerPiece]Point {
	var out [BlocksPerPiece]Point
	for i, b := range p.Blocks() {
		out[i] = p.origin.Add(b)
	}
	return out
}

// Occupies reports whether one of the blocks of p sits at pos.
func (p Piece) Occupies(pos Point) bool {
	return p.Blocks().Contains(Point{X: pos.X - p.origin.X, Y: pos.Y - p.origin.Y})
}

// MoveLeft returns p shifted one column to the left.
func (p Piece) MoveLeft() Piece {
	p.origin.X--
	return p
}

// MoveRight returns p shifted one column to the right.
func (p Piece) MoveRight() Piece {
	p.origin.X++
	return p
}

// MoveDown returns p shifted one row down.
func (p Piece) MoveDown() Piece {
	p.origin.Y--
	return p
}

// RotateClockwise returns p in its next orientation.
func (p Piece) RotateClockwise() Piece {
	p.rotation = (p.rotation + 1) % p.RotationCount()
	return p
}

// RotateCounterclockwise returns p in its previous orientation.
func (p Piece) RotateCounterclockwise() Piece {
	n := p.RotationCount()
	p.rotation = (p.rotation - 1 + n) % n
	return p
}

// SetOrigin returns p anchored at origin.
func (p Piece) SetOrigin(origin Point) Piece {
	p.origin = origin
	return p
}

// String draws the current orientation in a 4x4 box, top row first, followed
// by the origin.
func (p Piece) String() string {
	var sb strings.Builder
	blocks := p.Blocks()
	for y := BlocksPerPiece - 1; y >= 0; y-- {
		for x := 0; x < BlocksPerPiece; x++ {
			if blocks.Contains(Point{X: x, Y: y}) {
				sb.WriteByte(CurrentBlockChar)
			} else {
				sb.WriteByte(EmptyBlockChar)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s at %s\n", p.kind, p.origin)
	return sb.String()
}
