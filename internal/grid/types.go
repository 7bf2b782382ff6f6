// Package grid provides the coordinate, cell-state, ship, and board
// primitives shared by every other hunter package.
package grid

// CellState represents the state of a single grid cell.
//
// Sunk carries two meanings depending on which board it appears on: inside
// a hypothesis layout it simply marks a ship-occupied cell; on the known
// board it marks a cell whose ship has been fully destroyed. Callers must
// not conflate the two — see the doc comment on whichever function reads
// the board.
type CellState int

// Possible CellState values. The numeric values are part of the external
// contract (see Code) and must not be reordered.
const (
	Empty CellState = iota
	Miss
	Hit
	Sunk
)

// String returns a human-readable name for the cell state.
func (c CellState) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

// Code returns the stable external integer code for the cell state
// (0=Empty, 1=Miss, 2=Hit, 3=Sunk), as fixed by the host contract.
func (c CellState) Code() int { return int(c) }

// CellStateFromCode converts an external integer code back into a
// CellState. It reports false for any value outside 0..3.
func CellStateFromCode(code int) (CellState, bool) {
	switch CellState(code) {
	case Empty, Miss, Hit, Sunk:
		return CellState(code), true
	default:
		return Empty, false
	}
}

// Orientation represents the placement direction of a ship.
type Orientation int

// Possible Orientation values.
const (
	Horizontal Orientation = iota
	Vertical
)

// Vector returns the (dx, dy) delta for the orientation.
func (o Orientation) Vector() (dx, dy int) {
	if o == Vertical {
		return 0, 1
	}
	return 1, 0
}

// Coordinate represents a 2D point on the grid.
type Coordinate struct {
	X, Y int
}

// Chebyshev returns the Chebyshev (king-move) distance between two
// coordinates.
func (c Coordinate) Chebyshev(o Coordinate) int {
	dx := abs(c.X - o.X)
	dy := abs(c.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Segments returns the size ordered cells a ship of the given length and
// orientation would occupy starting at start.
func Segments(start Coordinate, length int, o Orientation) []Coordinate {
	dx, dy := o.Vector()
	cells := make([]Coordinate, length)
	for i := range cells {
		cells[i] = Coordinate{X: start.X + i*dx, Y: start.Y + i*dy}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
