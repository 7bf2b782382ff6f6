package grid

// Ship identifies a single placed ship by its ordered, colinear,
// contiguous cells.
type Ship struct {
	Length int
	Cells  []Coordinate
	Hits   int
}

// NewShip builds a ship of the given length, starting at start and
// extending in orientation o. It does not check legality against any
// board; see Fits for that.
func NewShip(start Coordinate, length int, o Orientation) (*Ship, error) {
	if length <= 0 {
		return nil, ErrInvalidShipLength
	}
	return &Ship{Length: length, Cells: Segments(start, length, o)}, nil
}

// IsSunk reports whether every cell of the ship has been hit.
func (s *Ship) IsSunk() bool { return s.Hits >= s.Length }

// Orientation reports the ship's orientation. A length-1 ship is
// considered Horizontal by convention (it has no meaningful axis).
func (s *Ship) Orientation() Orientation {
	if len(s.Cells) > 1 && s.Cells[0].X == s.Cells[1].X {
		return Vertical
	}
	return Horizontal
}

// Fits reports whether every cell of cells is in bounds and whether the
// full 3×3 Chebyshev neighborhood of each cell is Empty on board — the
// no-touch rule. It does not mutate board.
func Fits(board *Board, cells []Coordinate) bool {
	for _, c := range cells {
		if !board.InBounds(c) {
			return false
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := Coordinate{X: c.X + dx, Y: c.Y + dy}
				if board.InBounds(n) && board.At(n) != Empty {
					return false
				}
			}
		}
	}
	return true
}

// NoTouching reports whether every pair of cells belonging to distinct
// ships in ships is at Chebyshev distance ≥ 2 — the 3×3 no-touch rule
// checked across an already-assembled fleet (used by the genetic
// architect's crossover, which recombines already-valid ships and must
// re-validate only the cross-ship relationship).
func NoTouching(ships []*Ship) bool {
	for i := range ships {
		for j := i + 1; j < len(ships); j++ {
			for _, a := range ships[i].Cells {
				for _, b := range ships[j].Cells {
					if a.Chebyshev(b) <= 1 {
						return false
					}
				}
			}
		}
	}
	return true
}

// InBoundsFleet reports whether every cell of every ship lies within a
// width×height board.
func InBoundsFleet(width, height int, ships []*Ship) bool {
	for _, s := range ships {
		for _, c := range s.Cells {
			if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
				return false
			}
		}
	}
	return true
}

// ValidFleet reports whether ships forms a legal fleet on a width×height
// board: every ship in bounds, no shared cells, and no two distinct
// ships within Chebyshev distance 1 of each other.
func ValidFleet(width, height int, ships []*Ship) bool {
	if !InBoundsFleet(width, height, ships) {
		return false
	}
	seen := make(map[Coordinate]bool)
	for _, s := range ships {
		for _, c := range s.Cells {
			if seen[c] {
				return false
			}
			seen[c] = true
		}
	}
	return NoTouching(ships)
}

// StampShips marks every cell of every ship as Sunk on board — the
// convention a hypothesis layout uses to record ship occupancy.
func StampShips(board *Board, ships []*Ship) {
	for _, s := range ships {
		board.SetAll(s.Cells, Sunk)
	}
}
