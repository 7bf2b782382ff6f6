// Package snapshot defines the serializable view of a hunter's state
// that a host may persist. Persistence itself is the host's concern;
// this package only shapes the exact subset named by the external
// contract: known board, remaining ship lengths, and board dimensions.
// The ensemble is reproducible from these plus a PRNG seed, so it is
// deliberately not part of the snapshot.
package snapshot

import "github.com/callegarimattia/battleship/internal/grid"

// KnownBoard is the persistable view of a hunter's known board and
// remaining fleet.
type KnownBoard struct {
	Width                int     `json:"width"`
	Height               int     `json:"height"`
	Cells                [][]int `json:"cells"`
	RemainingShipLengths []int   `json:"remaining_ship_lengths"`
}

// FromBoard builds a KnownBoard snapshot from a live board and the
// current remaining ship lengths. Cells are laid out row-major
// ([y][x]) using the stable external CellState codes.
func FromBoard(board *grid.Board, remainingLengths []int) KnownBoard {
	cells := make([][]int, board.Height())
	for y := range cells {
		row := make([]int, board.Width())
		for x := range row {
			row[x] = board.At(grid.Coordinate{X: x, Y: y}).Code()
		}
		cells[y] = row
	}

	lengths := make([]int, len(remainingLengths))
	copy(lengths, remainingLengths)

	return KnownBoard{
		Width:                board.Width(),
		Height:               board.Height(),
		Cells:                cells,
		RemainingShipLengths: lengths,
	}
}
