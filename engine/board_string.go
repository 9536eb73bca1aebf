package engine

import "strings"

// Characters used by Board.String and Piece.String.
const (
	SideBorderChar   = '|'
	BottomBorderChar = '-'
	EmptyBlockChar   = ' '
	FrozenBlockChar  = 'X'
	CurrentBlockChar = '+'
)

// String draws the visible rows, top row first, between side borders and
// above a bottom border.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 3) * (b.height + 1))
	for y := b.height - 1; y >= 0; y-- {
		sb.WriteByte(SideBorderChar)
		for x := 0; x < b.width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case !b.rows[y][x].Empty():
				sb.WriteByte(FrozenBlockChar)
			case b.current.Occupies(p):
				sb.WriteByte(CurrentBlockChar)
			default:
				sb.WriteByte(EmptyBlockChar)
			}
		}
		sb.WriteByte(SideBorderChar)
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(string(BottomBorderChar), b.width+2))
	sb.WriteByte('\n')
	return sb.String()
}
