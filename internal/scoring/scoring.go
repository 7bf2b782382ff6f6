// Package scoring derives per-cell hit probability and Value-of-Information
// from the hypothesis ensemble, and ranks candidate cells for the
// tactical verifier.
package scoring

import (
	"runtime"
	"sort"
	"sync"

	"github.com/callegarimattia/battleship/internal/grid"
)

// Candidate is a scored, empty cell on the known board, ordered for
// hand-off to the alpha-beta verifier.
type Candidate struct {
	Coordinate grid.Coordinate
	Score      float64
}

// HeatMap counts, per cell, how many ensemble layouts occupy it with a
// ship (CellState Sunk inside a hypothesis layout).
type HeatMap struct {
	width, height int
	counts        []int
	total         int
}

// BuildHeatMap accumulates occupancy counts across layouts. Accumulation
// is parallelized across a bounded worker pool, partitioned by layout
// index; per-worker partial counts are summed in worker-index order so
// the result does not depend on goroutine scheduling.
func BuildHeatMap(width, height int, layouts []*grid.Board) *HeatMap {
	h := &HeatMap{width: width, height: height, counts: make([]int, width*height), total: len(layouts)}
	if len(layouts) == 0 {
		return h
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(layouts) {
		workers = len(layouts)
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(layouts) + workers - 1) / workers

	partials := make([][]int, workers)
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
			counts := make([]int, width*height)
			for _, l := range layouts[start:end] {
				for c, state := range l.Cells() {
					if state == grid.Sunk {
						counts[c.Y*width+c.X]++
					}
				}
			}
			partials[idx] = counts
		}(i, start, end)
	}
	wg.Wait()

	for _, counts := range partials {
		if counts == nil {
			continue
		}
		for i, v := range counts {
			h.counts[i] += v
		}
	}
	return h
}

// Probability returns heat/|ensemble| for c, 0 when the ensemble is empty.
func (h *HeatMap) Probability(c grid.Coordinate) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.counts[c.Y*h.width+c.X]) / float64(h.total)
}

// VoI returns 1-|2p-1|, maximized when p is near 0.5.
func VoI(p float64) float64 {
	v := 2*p - 1
	if v < 0 {
		v = -v
	}
	return 1 - v
}

// Weight returns w for the combined score, keyed off the largest
// remaining ship length: 0.8 when lMax >= 4, else 0.5.
func Weight(lMax int) float64 {
	if lMax >= 4 {
		return 0.8
	}
	return 0.5
}

// TopCandidates scores every Empty cell of known using h and w, sorts
// descending with row-major tie-break, and returns the top k.
func TopCandidates(known *grid.Board, h *HeatMap, w float64, k int) []Candidate {
	var candidates []Candidate
	for c, state := range known.Cells() {
		if state != grid.Empty {
			continue
		}
		p := h.Probability(c)
		score := w*VoI(p) + (1-w)*p
		candidates = append(candidates, Candidate{Coordinate: c, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if k > 0 && len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
