// Package ensemble maintains the Monte-Carlo hypothesis population: a
// set of complete, legal fleet layouts every one of which remains
// consistent with every shot observed so far.
package ensemble

import (
	"runtime"
	"sync"

	"github.com/callegarimattia/battleship/internal/config"
	"github.com/callegarimattia/battleship/internal/grid"
	"github.com/callegarimattia/battleship/internal/layout"
	"github.com/callegarimattia/battleship/internal/prng"
)

// Ensemble holds the current hypothesis population. It is not safe for
// concurrent use by multiple goroutines from the outside — the facade
// serializes access with its own mutex — but internally fans work out
// across goroutines and barriers before returning.
type Ensemble struct {
	width, height     int
	lengths           []int
	target            int
	refillThreshold   int
	placementAttempts int
	attemptBudget     int
	seed              uint64
	calls             int

	layouts []*grid.Board
}

// New builds an empty Ensemble for a width×height board and a given
// fleet (by ship length), configured from cfg and deterministically
// seeded.
func New(width, height int, lengths []int, cfg *config.Config, seed uint64) *Ensemble {
	return &Ensemble{
		width:             width,
		height:            height,
		lengths:           lengths,
		target:            cfg.EnsembleTarget,
		refillThreshold:   cfg.RefillThreshold,
		placementAttempts: cfg.PlacementAttempts,
		attemptBudget:     cfg.GenerationAttemptBudget,
		seed:              seed,
	}
}

// Size returns the number of layouts currently in the ensemble.
func (e *Ensemble) Size() int { return len(e.layouts) }

// Layouts returns the current layout population. Callers must not
// mutate the returned boards; layouts are immutable once inserted.
func (e *Ensemble) Layouts() []*grid.Board { return e.layouts }

// Initialize discards any existing population and generates fresh
// layouts consistent with known until the ensemble reaches its target
// size or the generation-attempt budget is exhausted. A partial
// ensemble (fewer than target layouts) is acceptable on exhaustion.
func (e *Ensemble) Initialize(known *grid.Board) {
	e.layouts = nil
	e.fill(known)
}

// Filter removes every layout inconsistent with known (the observation
// just recorded), then refills the population if it dropped below the
// refill threshold. Filtering itself never generates new layouts.
func (e *Ensemble) Filter(known *grid.Board) {
	e.layouts = filterConsistent(e.layouts, known)
	if len(e.layouts) < e.refillThreshold {
		e.fill(known)
	}
}

// fill generates additional layouts consistent with known until the
// ensemble reaches its target size or the attempt budget is exhausted.
// Work is partitioned by worker index, not work-stealing, so the result
// is a pure function of (seed, worker count, prior calls) and never of
// goroutine scheduling order.
func (e *Ensemble) fill(known *grid.Board) {
	need := e.target - len(e.layouts)
	if need <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > need {
		workers = need
	}
	if workers < 1 {
		workers = 1
	}

	perWorkerNeed := (need + workers - 1) / workers
	perWorkerBudget := e.attemptBudget / workers
	if perWorkerBudget < perWorkerNeed {
		perWorkerBudget = perWorkerNeed
	}

	e.calls++
	callSeed := prng.Derive(e.seed, e.calls)

	results := make([][]*grid.Board, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			rng := prng.New(prng.Derive(callSeed, idx))
			gen := layout.New(rng, e.width, e.height, e.placementAttempts)

			var produced []*grid.Board
			for attempts := 0; attempts < perWorkerBudget && len(produced) < perWorkerNeed; attempts++ {
				board, _, ok := gen.Generate(e.lengths)
				if !ok {
					continue
				}
				if consistent(board, known) {
					produced = append(produced, board)
				}
			}
			results[idx] = produced
		}(i)
	}
	wg.Wait()

	for _, produced := range results {
		for _, b := range produced {
			if len(e.layouts) >= e.target {
				return
			}
			e.layouts = append(e.layouts, b)
		}
	}
}

// filterConsistent partitions layouts by index across a bounded worker
// pool and keeps those consistent with known, preserving input order.
func filterConsistent(layouts []*grid.Board, known *grid.Board) []*grid.Board {
	if len(layouts) == 0 {
		return layouts
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(layouts) {
		workers = len(layouts)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(layouts) + workers - 1) / workers

	results := make([][]*grid.Board, workers)
	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, len(layouts))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(idx, start, end int) {
			defer wg.Done()
			var kept []*grid.Board
			for _, l := range layouts[start:end] {
				if consistent(l, known) {
					kept = append(kept, l)
				}
			}
			results[idx] = kept
		}(i, start, end)
	}
	wg.Wait()

	out := make([]*grid.Board, 0, len(layouts))
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// consistent reports whether layout agrees with every non-Empty cell of
// known: Miss requires the layout cell be Empty; Hit or Sunk requires
// the layout cell be Sunk (ship-occupied).
func consistent(layout *grid.Board, known *grid.Board) bool {
	for c, state := range known.Cells() {
		switch state {
		case grid.Miss:
			if layout.At(c) != grid.Empty {
				return false
			}
		case grid.Hit, grid.Sunk:
			if layout.At(c) != grid.Sunk {
				return false
			}
		}
	}
	return true
}
