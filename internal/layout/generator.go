// Package layout produces uniformly-sampled, legal fleet placements —
// the building block both the hypothesis ensemble and the genetic
// architect sample from.
package layout

import (
	"math/rand/v2"

	"github.com/callegarimattia/battleship/internal/grid"
)

// DefaultAttempts is K, the number of random placement attempts the
// generator makes per ship before giving up on the whole layout.
const DefaultAttempts = 200

// Generator produces a single legal fleet placement per call to
// Generate. It is deterministic for a given *rand.Rand: two generators
// seeded identically and fed the same lengths produce identical output.
type Generator struct {
	rng             *rand.Rand
	width, height   int
	attemptsPerShip int
}

// New builds a Generator bound to rng and a width×height board. attempts
// is K; zero or negative selects DefaultAttempts.
func New(rng *rand.Rand, width, height, attempts int) *Generator {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Generator{rng: rng, width: width, height: height, attemptsPerShip: attempts}
}

// Generate attempts to place every length in lengths, in order, onto a
// fresh board. It reports ok=false (GenerationExhausted, surfaced as
// absence rather than an error) if any single ship could not be placed
// within the attempt budget; callers retry with a fresh Generate call.
func (g *Generator) Generate(lengths []int) (board *grid.Board, ships []*grid.Ship, ok bool) {
	b, err := grid.NewBoard(g.width, g.height)
	if err != nil {
		return nil, nil, false
	}

	placed := make([]*grid.Ship, 0, len(lengths))
	for _, length := range lengths {
		ship, placedOK := g.placeOne(b, length)
		if !placedOK {
			return nil, nil, false
		}
		placed = append(placed, ship)
	}

	return b, placed, true
}

func (g *Generator) placeOne(b *grid.Board, length int) (*grid.Ship, bool) {
	for range g.attemptsPerShip {
		o := grid.Horizontal
		if g.rng.IntN(2) == 1 {
			o = grid.Vertical
		}

		start := grid.Coordinate{X: g.rng.IntN(g.width), Y: g.rng.IntN(g.height)}
		cells := grid.Segments(start, length, o)

		if grid.Fits(b, cells) {
			b.SetAll(cells, grid.Sunk)
			return &grid.Ship{Length: length, Cells: cells}, true
		}
	}
	return nil, false
}
