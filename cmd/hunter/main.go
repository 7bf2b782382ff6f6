// Command hunter runs a self-play demo: it generates a secret fleet,
// lets the decision core hunt it down shot by shot, and separately runs
// the fleet architect to produce a defensive layout. It exists to
// exercise the library end to end; it is not a host binding.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/callegarimattia/battleship/internal/architect"
	"github.com/callegarimattia/battleship/internal/grid"
	"github.com/callegarimattia/battleship/internal/hunter"
	"github.com/callegarimattia/battleship/internal/layout"
	"github.com/callegarimattia/battleship/internal/prng"
)

func main() {
	width := flag.Int("width", 10, "board width")
	height := flag.Int("height", 10, "board height")
	seed := flag.Uint64("seed", 0, "PRNG seed (0 selects a random seed)")
	generations := flag.Int("architect-generations", 50, "fleet architect generation count")
	population := flag.Int("architect-population", 50, "fleet architect population size")
	flag.Parse()

	fleet := []int{5, 4, 3, 3, 2}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = rand.Uint64()
	}
	log.Printf("self-play demo: %dx%d board, fleet %v, seed %d", *width, *height, fleet, seedValue)

	secretGen := layout.New(prng.New(seedValue), *width, *height, 0)
	_, secretShips, ok := secretGen.Generate(fleet)
	if !ok {
		log.Fatal("failed to generate a secret fleet placement")
	}

	defensiveSeed := seedValue ^ 0xD1B54A32D192ED03
	defensive := architect.GenerateBestLayout(defensiveSeed, *generations, *population, *width, *height, fleet)
	log.Printf("architect produced a %d-ship defensive layout", len(defensive))

	engine, err := hunter.NewSeeded(*width, *height, fleet, seedValue)
	if err != nil {
		log.Fatalf("failed to create hunter engine: %v", err)
	}
	engine.SetDefensiveFleet(defensive)

	cellShip := make(map[grid.Coordinate]*grid.Ship, (*width)*(*height))
	for _, s := range secretShips {
		for _, c := range s.Cells {
			cellShip[c] = s
		}
	}

	maxShots := (*width) * (*height)
	shots := 0
	for !allSunk(secretShips) && shots < maxShots {
		x, y := engine.BestMove()
		coord := grid.Coordinate{X: x, Y: y}

		result := grid.Miss
		if ship, hit := cellShip[coord]; hit {
			ship.Hits++
			if ship.IsSunk() {
				result = grid.Sunk
			} else {
				result = grid.Hit
			}
		}

		shots++
		if err := engine.ApplyShot(x, y, result); err != nil {
			log.Fatalf("shot %d at (%d,%d) rejected: %v", shots, x, y, err)
		}
		fmt.Printf("shot %3d: (%2d,%2d) -> %s\n", shots, x, y, result)
	}

	if !allSunk(secretShips) {
		log.Printf("gave up after %d shots without sinking the fleet", shots)
		return
	}
	log.Printf("fleet destroyed in %d shots", shots)
}

func allSunk(ships []*grid.Ship) bool {
	for _, s := range ships {
		if !s.IsSunk() {
			return false
		}
	}
	return true
}
