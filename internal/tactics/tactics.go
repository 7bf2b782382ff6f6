// Package tactics provides the depth-limited alpha-beta verifier used
// to tie-break the top-scoring candidates from the heat/VoI scorer.
//
// The "minimizer" here is not a real adversary — the opponent's board
// is already fixed, not chosen move-by-move. It is a pessimistic
// evaluator over the next cell explored, kept only because empirically
// it converges the search faster than heat alone by rewarding
// candidates likely to extend a known-hit chain.
package tactics

import (
	"math"

	"github.com/callegarimattia/battleship/internal/grid"
)

const (
	hitScore      = 10
	adjacentBonus = 100
)

// Evaluate scores board: +10 per Hit cell, +100 per contiguous
// horizontal or vertical Hit pair. Sunk, Miss, and Empty cells earn
// nothing.
func Evaluate(board *grid.Board) int {
	score := 0
	for c, state := range board.Cells() {
		if state != grid.Hit {
			continue
		}
		score += hitScore

		right := grid.Coordinate{X: c.X + 1, Y: c.Y}
		if board.InBounds(right) && board.At(right) == grid.Hit {
			score += adjacentBonus
		}
		down := grid.Coordinate{X: c.X, Y: c.Y + 1}
		if board.InBounds(down) && board.At(down) == grid.Hit {
			score += adjacentBonus
		}
	}
	return score
}

// Depth returns the search depth D for a known board with E empty
// cells remaining: E > 50 -> 2, 20 < E <= 50 -> 3, E <= 20 -> 4.
func Depth(emptyCount int) int {
	switch {
	case emptyCount > 50:
		return 2
	case emptyCount > 20:
		return 3
	default:
		return 4
	}
}

// Verify ranks candidates by playing each as an optimistic Hit on a
// clone of known, then running alpha-beta to the depth policy's D with
// that first ply already spent. It returns the highest-scoring
// candidate, ties broken by input order.
func Verify(known *grid.Board, candidates []grid.Coordinate) grid.Coordinate {
	depth := Depth(known.Count(grid.Empty))

	bestIdx := 0
	bestScore := math.MinInt
	for i, c := range candidates {
		clone := known.Clone()
		clone.Set(c, grid.Hit)
		score := alphaBeta(clone, depth-1, math.MinInt, math.MaxInt, false)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return candidates[bestIdx]
}

// alphaBeta explores tentative plays over every Empty cell of board:
// the maximizer marks Hit, the minimizer marks Miss. It bottoms out at
// depth 0 or when no Empty cell remains.
func alphaBeta(board *grid.Board, depth int, alpha, beta int, maximizing bool) int {
	if depth <= 0 {
		return Evaluate(board)
	}

	cells := emptyCells(board)
	if len(cells) == 0 {
		return Evaluate(board)
	}

	if maximizing {
		best := math.MinInt
		for _, c := range cells {
			child := board.Clone()
			child.Set(c, grid.Hit)
			val := alphaBeta(child, depth-1, alpha, beta, false)
			if val > best {
				best = val
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, c := range cells {
		child := board.Clone()
		child.Set(c, grid.Miss)
		val := alphaBeta(child, depth-1, alpha, beta, true)
		if val < best {
			best = val
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

func emptyCells(board *grid.Board) []grid.Coordinate {
	var cells []grid.Coordinate
	for c, state := range board.Cells() {
		if state == grid.Empty {
			cells = append(cells, c)
		}
	}
	return cells
}
