// Package engine implements the falling-block board simulation: piece
// geometry and rotation, collision against walls and frozen cells, gravity,
// freezing, line clearing and the piece supply.
//
// A Board is driven by one caller at a time. Every command runs to
// completion before it returns and none of them block.
package engine

import "fmt"

// Point is an integer board coordinate. X grows to the right and Y grows
// upwards, so row 0 is the bottom of the board.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Hash packs the point into a single integer key. Two points with
// coordinates in the int32 range hash equally only if they are equal.
func (p Point) Hash() uint64 {
	return uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y)))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
