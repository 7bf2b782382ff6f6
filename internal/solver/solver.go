// Package solver implements the deterministic constraint pruner: it
// marks known-board cells as Miss when no remaining ship could possibly
// occupy them, without ever enumerating full layouts.
package solver

import "github.com/callegarimattia/battleship/internal/grid"

// Solve mutates board in place, marking every Empty cell that cannot
// host any ship in remainingLengths as Miss. It never relaxes a cell,
// never introduces Hit or Sunk, and is idempotent — running it twice in
// a row with the same remainingLengths produces no further change.
//
// The approach operates on L_min, the shortest remaining ship: it finds
// the 4-connected islands of non-Miss cells, discards islands whose
// bounding box is too small in both dimensions to fit L_min, and then
// refines by requiring a straight run of L_min within the island (this
// catches non-convex islands whose bounding box alone looks big enough).
// It is sound — anything it marks Miss truly cannot host a ship — but
// not complete: it cannot detect constraints that span two islands at
// once (e.g. a ship forced into one of two disjoint regions because
// nothing else fits). A complete solver would need placement-level
// constraint propagation, which is out of scope.
func Solve(board *grid.Board, remainingLengths []int) {
	lMin := minLength(remainingLengths)
	if lMin == 0 {
		return
	}

	for _, island := range islands(board) {
		if !canHostShip(island, lMin) {
			markMiss(board, island)
		}
	}
}

func minLength(lengths []int) int {
	if len(lengths) == 0 {
		return 0
	}
	m := lengths[0]
	for _, l := range lengths[1:] {
		if l < m {
			m = l
		}
	}
	return m
}

// island is a 4-connected component of non-Miss cells, along with a
// membership set for O(1) lookups during the straight-run refinement.
type island struct {
	cells []grid.Coordinate
	set   map[grid.Coordinate]bool
}

func islands(board *grid.Board) []island {
	visited := make(map[grid.Coordinate]bool)
	var result []island

	for c, state := range board.Cells() {
		if state == grid.Miss || visited[c] {
			continue
		}
		result = append(result, floodFill(board, c, visited))
	}

	return result
}

func floodFill(board *grid.Board, start grid.Coordinate, visited map[grid.Coordinate]bool) island {
	set := map[grid.Coordinate]bool{start: true}
	cells := []grid.Coordinate{start}
	visited[start] = true

	queue := []grid.Coordinate{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range neighbors4(cur) {
			if !board.InBounds(n) || visited[n] || board.At(n) == grid.Miss {
				continue
			}
			visited[n] = true
			set[n] = true
			cells = append(cells, n)
			queue = append(queue, n)
		}
	}

	return island{cells: cells, set: set}
}

func neighbors4(c grid.Coordinate) [4]grid.Coordinate {
	return [4]grid.Coordinate{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
}

func boundingBox(cells []grid.Coordinate) (w, h int) {
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return maxX - minX + 1, maxY - minY + 1
}

func canHostShip(isl island, lMin int) bool {
	w, h := boundingBox(isl.cells)
	if w < lMin && h < lMin {
		return false
	}
	return hasStraightRun(isl, lMin)
}

// hasStraightRun reports whether the island contains lMin consecutive
// cells, all within the island, extending right or downward from some
// origin cell.
func hasStraightRun(isl island, lMin int) bool {
	for _, origin := range isl.cells {
		if runFits(isl.set, origin, lMin, 1, 0) || runFits(isl.set, origin, lMin, 0, 1) {
			return true
		}
	}
	return false
}

func runFits(set map[grid.Coordinate]bool, origin grid.Coordinate, length, dx, dy int) bool {
	for i := range length {
		c := grid.Coordinate{X: origin.X + i*dx, Y: origin.Y + i*dy}
		if !set[c] {
			return false
		}
	}
	return true
}

func markMiss(board *grid.Board, isl island) {
	for _, c := range isl.cells {
		if board.At(c) == grid.Empty {
			board.Set(c, grid.Miss)
		}
	}
}
