// Package architect runs an evolutionary search for a defensive fleet
// placement that resists a hunter using heat/VoI-style heuristics.
package architect

import (
	"math"
	"math/rand/v2"

	"github.com/callegarimattia/battleship/internal/grid"
	"github.com/callegarimattia/battleship/internal/layout"
	"github.com/callegarimattia/battleship/internal/prng"
)

const (
	tournamentSize      = 5
	mutationProbability = 0.1

	weightStealth       = 0.70
	weightOrientation   = 0.15
	weightEdgeAvoidance = 0.10
	weightFragmentation = 0.05

	parityOpenerShots = 15
)

// Individual is one candidate defensive fleet and its last-evaluated
// fitness.
type Individual struct {
	Ships   []*grid.Ship
	Fitness float64
}

// GenerateBestLayout runs a fixed-population genetic search for
// generations rounds and returns the fittest fleet found. It is a pure
// function of (seed, generations, populationSize, width, height,
// lengths): the whole search runs single-threaded against one shared
// PRNG stream, so determinism needs no special handling.
func GenerateBestLayout(seed uint64, generations, populationSize, width, height int, lengths []int) []*grid.Ship {
	rng := prng.New(seed)
	gen := layout.New(rng, width, height, 0)

	population := initialPopulation(gen, lengths, populationSize)
	evaluateAll(population, width, height)

	for range generations {
		population = nextGeneration(rng, gen, population, lengths, width, height)
		evaluateAll(population, width, height)
	}

	return best(population).Ships
}

func initialPopulation(gen *layout.Generator, lengths []int, size int) []*Individual {
	population := make([]*Individual, 0, size)
	for len(population) < size {
		ind, ok := freshIndividual(gen, lengths)
		if !ok {
			continue
		}
		population = append(population, ind)
	}
	return population
}

func freshIndividual(gen *layout.Generator, lengths []int) (*Individual, bool) {
	_, ships, ok := gen.Generate(lengths)
	if !ok {
		return nil, false
	}
	return &Individual{Ships: ships}, true
}

func evaluateAll(population []*Individual, width, height int) {
	for _, ind := range population {
		ind.Fitness = fitness(ind.Ships, width, height)
	}
}

func best(population []*Individual) *Individual {
	top := population[0]
	for _, ind := range population[1:] {
		if ind.Fitness > top.Fitness {
			top = ind
		}
	}
	return top
}

// eliteCount returns the number of top individuals carried unchanged
// into the next generation: 10% of the population, floored at 5 and
// capped at the population size.
func eliteCount(populationSize int) int {
	n := populationSize / 10
	if n < 5 {
		n = 5
	}
	if n > populationSize {
		n = populationSize
	}
	return n
}

func nextGeneration(rng *rand.Rand, gen *layout.Generator, population []*Individual, lengths []int, width, height int) []*Individual {
	sorted := sortedByFitnessDesc(population)
	size := len(population)

	next := make([]*Individual, 0, size)
	elites := eliteCount(size)
	if elites > size {
		elites = size
	}
	next = append(next, sorted[:elites]...)

	for len(next) < size {
		a := tournamentSelect(rng, population)
		b := tournamentSelect(rng, population)
		child := crossover(rng, gen, a, b, lengths, width, height)
		child = mutate(rng, gen, child, lengths)
		next = append(next, child)
	}

	return next
}

func sortedByFitnessDesc(population []*Individual) []*Individual {
	sorted := make([]*Individual, len(population))
	copy(sorted, population)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Fitness < sorted[j].Fitness; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

func tournamentSelect(rng *rand.Rand, population []*Individual) *Individual {
	winner := population[rng.IntN(len(population))]
	for range tournamentSize - 1 {
		challenger := population[rng.IntN(len(population))]
		if challenger.Fitness > winner.Fitness {
			winner = challenger
		}
	}
	return winner
}

// crossover splits the ship order of two parents at a random point and
// concatenates prefix-A with suffix-B. An illegal union (overlap or
// 3x3 violation) falls back to a freshly generated random individual.
func crossover(rng *rand.Rand, gen *layout.Generator, a, b *Individual, lengths []int, width, height int) *Individual {
	split := rng.IntN(len(a.Ships) + 1)

	child := make([]*grid.Ship, 0, len(a.Ships))
	child = append(child, a.Ships[:split]...)
	child = append(child, b.Ships[split:]...)

	if grid.ValidFleet(width, height, child) {
		return &Individual{Ships: child}
	}

	for {
		ind, ok := freshIndividual(gen, lengths)
		if ok {
			return ind
		}
	}
}

// mutate replaces individual with a freshly generated random individual
// with probability mutationProbability (coarse mutation).
func mutate(rng *rand.Rand, gen *layout.Generator, individual *Individual, lengths []int) *Individual {
	if rng.Float64() >= mutationProbability {
		return individual
	}
	for {
		ind, ok := freshIndividual(gen, lengths)
		if ok {
			return ind
		}
	}
}

func fitness(ships []*grid.Ship, width, height int) float64 {
	return weightStealth*stealth(ships, width, height) +
		weightOrientation*orientationBalance(ships) +
		weightEdgeAvoidance*edgeAvoidance(ships, width, height) +
		weightFragmentation*fragmentation(ships, width, height)
}

// stealth simulates a parity-pattern opener (every cell with x+y even,
// row-major order, up to parityOpenerShots shots) and scores
// 1 - hits/parityOpenerShots.
func stealth(ships []*grid.Ship, width, height int) float64 {
	occupied := shipCellSet(ships)

	hits, shots := 0, 0
	for y := 0; y < height && shots < parityOpenerShots; y++ {
		for x := 0; x < width && shots < parityOpenerShots; x++ {
			if (x+y)%2 != 0 {
				continue
			}
			shots++
			if occupied[grid.Coordinate{X: x, Y: y}] {
				hits++
			}
		}
	}
	return 1 - float64(hits)/parityOpenerShots
}

func shipCellSet(ships []*grid.Ship) map[grid.Coordinate]bool {
	set := make(map[grid.Coordinate]bool)
	for _, s := range ships {
		for _, c := range s.Cells {
			set[c] = true
		}
	}
	return set
}

// orientationBalance rewards fleets with similar counts of vertical and
// horizontal ships: 1 - |V-H|/len(ships).
func orientationBalance(ships []*grid.Ship) float64 {
	if len(ships) == 0 {
		return 1
	}
	var v, h int
	for _, s := range ships {
		if s.Orientation() == grid.Vertical {
			v++
		} else {
			h++
		}
	}
	diff := v - h
	if diff < 0 {
		diff = -diff
	}
	return 1 - float64(diff)/float64(len(ships))
}

// edgeAvoidance is the fraction of ship cells strictly in the interior
// of the board (not on row/col 0 or W-1/H-1). Ships hugging the border
// are statistically easier for a heat map to corroborate quickly once
// a neighboring cell is ruled out.
func edgeAvoidance(ships []*grid.Ship, width, height int) float64 {
	total, interior := 0, 0
	for _, s := range ships {
		for _, c := range s.Cells {
			total++
			if c.X > 0 && c.X < width-1 && c.Y > 0 && c.Y < height-1 {
				interior++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(interior) / float64(total)
}

// fragmentation is the average pairwise Chebyshev distance between ship
// centroids, normalized by the board's Chebyshev diagonal: rewards
// spreading ships apart, since that makes it harder to infer one ship's
// position from a neighbor already sunk.
func fragmentation(ships []*grid.Ship, width, height int) float64 {
	if len(ships) < 2 {
		return 1
	}

	centroids := make([][2]float64, len(ships))
	for i, s := range ships {
		var sx, sy float64
		for _, c := range s.Cells {
			sx += float64(c.X)
			sy += float64(c.Y)
		}
		n := float64(len(s.Cells))
		centroids[i] = [2]float64{sx / n, sy / n}
	}

	var sum float64
	count := 0
	for i := range centroids {
		for j := i + 1; j < len(centroids); j++ {
			dx := math.Abs(centroids[i][0] - centroids[j][0])
			dy := math.Abs(centroids[i][1] - centroids[j][1])
			sum += math.Max(dx, dy)
			count++
		}
	}

	diag := math.Max(float64(width-1), float64(height-1))
	if diag == 0 || count == 0 {
		return 0
	}
	return (sum / float64(count)) / diag
}
