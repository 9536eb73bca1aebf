package engine

//go:generate go tool stringer -type=Kind

// Kind identifies one of the seven tetromino variants.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of piece variants.
const KindCount = 7

type kindSpec struct {
	color     Color
	rotations []Rotation
}

// kindTable holds the geometry of every variant. Pieces index into it by kind
// so all pieces of a kind share one rotation list.
var kindTable = [KindCount]kindSpec{
	I: {
		color: Cyan,
		rotations: []Rotation{
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 3}, {2, 2}, {2, 1}, {2, 0}},
		},
	},
	J: {
		color: Blue,
		rotations: []Rotation{
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
			{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		},
	},
	L: {
		color: Orange,
		rotations: []Rotation{
			{{1, 2}, {1, 1}, {1, 0}, {2, 0}},
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{0, 2}, {1, 2}, {1, 1}, {1, 0}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		},
	},
	O: {
		color: Yellow,
		rotations: []Rotation{
			{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		},
	},
	S: {
		color: Green,
		rotations: []Rotation{
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		},
	},
	T: {
		color: Magenta,
		rotations: []Rotation{
			{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
			{{1, 2}, {1, 1}, {1, 0}, {0, 1}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 2}, {1, 1}, {1, 0}, {2, 1}},
		},
	},
	Z: {
		color: Red,
		rotations: []Rotation{
			{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		},
	},
}

func init() {
	for k, spec := range kindTable {
		for _, r := range spec.rotations {
			if !r.Valid() {
				panic("malformed rotation for piece kind " + Kind(k).String())
			}
		}
	}
}

// Kinds returns every piece variant in declaration order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, T, Z}
}

// Valid reports whether k names one of the seven variants.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Color returns the color every piece of this kind is drawn and frozen with.
func (k Kind) Color() Color {
	return kindTable[k].color
}

// Rotations returns a copy of the distinct orientations of this kind.
func (k Kind) Rotations() []Rotation {
	return append([]Rotation(nil), kindTable[k].rotations...)
}
