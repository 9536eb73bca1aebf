package engine

// MoveLeft shifts the current piece one column left if it fits.
func (b *Board) MoveLeft() {
	b.shift(b.current.MoveLeft())
}

// MoveRight shifts the current piece one column right if it fits.
func (b *Board) MoveRight() {
	b.shift(b.current.MoveRight())
}

// RotateClockwise turns the current piece to its next orientation if it fits.
// A piece with a single orientation always fits, so the board still reports
// a change even though the shape looks the same.
func (b *Board) RotateClockwise() {
	b.shift(b.current.RotateClockwise())
}

// RotateCounterclockwise turns the current piece to its previous orientation
// if it fits.
func (b *Board) RotateCounterclockwise() {
	b.shift(b.current.RotateCounterclockwise())
}

// shift replaces the current piece with candidate unless it collides. It never
// freezes, clears lines or advances the generator.
func (b *Board) shift(candidate Piece) {
	if b.full {
		return
	}
	b.lastLinesRemoved = 0
	b.lastBlocksPlaced = 0
	b.changed = false
	if b.Collides(candidate) {
		return
	}
	b.current = candidate
	b.changed = true
}

// MoveDown lets the current piece fall one row. When it cannot fall any
// further it freezes into the grid, full rows are cleared and the next piece
// spawns, unless the frozen blocks now reach the hidden rows, which ends the
// game.
func (b *Board) MoveDown() {
	if b.full {
		return
	}
	b.lastLinesRemoved = 0
	b.changed = true

	moved := b.current.MoveDown()
	if !b.Collides(moved) {
		b.current = moved
		b.lastBlocksPlaced = 0
		return
	}

	b.freeze()
	b.lastLinesRemoved = b.clearFullRows()
	b.lastBlocksPlaced = BlocksPerPiece

	for y := b.height; y < len(b.rows); y++ {
		if !rowEmpty(b.rows[y]) {
			b.full = true
			return
		}
	}

	b.current = b.next
	b.next = b.generator.Next()
}

// Drop moves the current piece to its projection and freezes it there in the
// same call.
func (b *Board) Drop() {
	if b.full {
		return
	}
	b.current = b.Projection()
	b.MoveDown()
}

func (b *Board) freeze() {
	color := b.current.Color()
	for _, pos := range b.current.Positions() {
		b.rows[pos.Y][pos.X] = color
	}
}

// clearFullRows removes every completely occupied row and appends as many
// empty rows at the top, so everything above a cleared row falls by one.
func (b *Board) clearFullRows() int {
	kept := b.rows[:0]
	removed := 0
	for _, row := range b.rows {
		if rowFull(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	for range removed {
		kept = append(kept, make([]Color, b.width))
	}
	b.rows = kept
	return removed
}
