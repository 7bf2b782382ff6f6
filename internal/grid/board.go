package grid

import "iter"

// MaxDimension is the largest board width or height the host contract
// allows.
const MaxDimension = 255

// Board is a W×H grid of cell states. The same type represents both the
// known board (ground-truth observations enriched by the constraint
// solver) and a hypothesis layout (a complete hidden fleet placement) —
// see the CellState doc comment for how Sunk differs between the two.
type Board struct {
	width, height int
	cells         []CellState
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, ErrInvalidDimensions
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// Width returns the board width.
func (b *Board) Width() int { return b.width }

// Height returns the board height.
func (b *Board) Height() int { return b.height }

// InBounds reports whether c lies within the board.
func (b *Board) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(c Coordinate) int { return c.Y*b.width + c.X }

// At returns the cell state at c. It panics if c is out of bounds —
// callers at the boundary (the hunter facade) are expected to validate
// coordinates first.
func (b *Board) At(c Coordinate) CellState {
	if !b.InBounds(c) {
		panic("grid: coordinate out of bounds")
	}
	return b.cells[b.index(c)]
}

// Set writes the cell state at c. It panics if c is out of bounds.
func (b *Board) Set(c Coordinate, s CellState) {
	if !b.InBounds(c) {
		panic("grid: coordinate out of bounds")
	}
	b.cells[b.index(c)] = s
}

// SetAll writes s to every coordinate in cs.
func (b *Board) SetAll(cs []Coordinate, s CellState) {
	for _, c := range cs {
		b.Set(c, s)
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]CellState, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// Cells returns an iterator over every coordinate and its cell state, in
// row-major order.
func (b *Board) Cells() iter.Seq2[Coordinate, CellState] {
	return func(yield func(Coordinate, CellState) bool) {
		for y := range b.height {
			for x := range b.width {
				c := Coordinate{X: x, Y: y}
				if !yield(c, b.cells[b.index(c)]) {
					return
				}
			}
		}
	}
}

// Count returns the number of cells matching state s.
func (b *Board) Count(s CellState) int {
	n := 0
	for _, v := range b.cells {
		if v == s {
			n++
		}
	}
	return n
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, v := range b.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}
