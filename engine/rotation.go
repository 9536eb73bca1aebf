package engine

// BlocksPerPiece is the number of blocks in every piece. It is also the number
// of rows reserved above the visible board for spawning and overflow.
const BlocksPerPiece = 4

// Rotation is one orientation of a piece, given as block offsets from the
// piece origin.
type Rotation [BlocksPerPiece]Point

// Valid reports whether r is a well-formed tetromino orientation: every
// coordinate lies in [0, BlocksPerPiece) and every block touches at least one
// other block horizontally or vertically.
func (r Rotation) Valid() bool {
	for i, p := range r {
		if p.X < 0 || p.Y < 0 || p.X >= BlocksPerPiece || p.Y >= BlocksPerPiece {
			return false
		}

		adjacent := false
		for j, q := range r {
			if i == j {
				continue
			}
			if p == q {
				return false
			}
			if abs(p.X-q.X)+abs(p.Y-q.Y) == 1 {
				adjacent = true
			}
		}
		if !adjacent {
			return false
		}
	}
	return true
}

// Contains reports whether offset is one of the blocks of r.
func (r Rotation) Contains(offset Point) bool {
	for _, p := range r {
		if p == offset {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
