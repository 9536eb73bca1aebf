package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptySequence is returned when a sequence generator is built from no
// pieces.
var ErrEmptySequence = errors.New("engine: piece sequence is empty")

// Generator supplies the pieces a board spawns. A board owns its generator
// and pulls exactly one piece from it each time a piece freezes.
type Generator interface {
	Next() Piece
}

// BagGenerator deals pieces from a shuffled bag holding one of each kind.
// When the bag runs out it is refilled, so every run of KindCount draws that
// starts at a refill contains each kind exactly once. The order is fully
// determined by the seed.
type BagGenerator struct {
	rng    *rand.Rand
	origin Point
	bag    []Piece
}

// NewBagGenerator returns a bag generator whose pieces spawn at origin.
func NewBagGenerator(seed int64, origin Point) *BagGenerator {
	g := &BagGenerator{
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		origin: origin,
		bag:    make([]Piece, 0, KindCount),
	}
	g.refill()
	return g
}

// Next draws one piece uniformly from what is left in the bag.
func (g *BagGenerator) Next() Piece {
	choice := g.rng.IntN(len(g.bag))
	result := g.bag[choice]
	g.bag = slices.Delete(g.bag, choice, choice+1)
	if len(g.bag) == 0 {
		g.refill()
	}
	return result
}

// Remaining returns the number of pieces left before the next refill.
func (g *BagGenerator) Remaining() int {
	return len(g.bag)
}

func (g *BagGenerator) refill() {
	for _, k := range Kinds() {
		g.bag = append(g.bag, NewPiece(k).SetOrigin(g.origin))
	}
}

// SequenceGenerator repeats a fixed list of pieces forever, in order. Each
// piece keeps the origin and orientation it was given.
type SequenceGenerator struct {
	sequence []Piece
	cursor   int
}

// NewSequenceGenerator copies pieces into a new generator.
func NewSequenceGenerator(pieces []Piece) (*SequenceGenerator, error) {
	if len(pieces) == 0 {
		return nil, ErrEmptySequence
	}
	return &SequenceGenerator{sequence: slices.Clone(pieces)}, nil
}

// Next returns the piece under the cursor and advances it.
func (g *SequenceGenerator) Next() Piece {
	result := g.sequence[g.cursor]
	g.cursor = (g.cursor + 1) % len(g.sequence)
	return result
}

// Pieces returns a copy of the repeating sequence.
func (g *SequenceGenerator) Pieces() []Piece {
	return slices.Clone(g.sequence)
}
