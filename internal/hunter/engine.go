// Package hunter exposes the stateful decision API consumed by the
// host: construct an engine over a board and fleet, apply observed
// shot results, and ask for the best next move.
package hunter

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/callegarimattia/battleship/internal/config"
	"github.com/callegarimattia/battleship/internal/ensemble"
	"github.com/callegarimattia/battleship/internal/grid"
	"github.com/callegarimattia/battleship/internal/scoring"
	"github.com/callegarimattia/battleship/internal/snapshot"
	"github.com/callegarimattia/battleship/internal/solver"
	"github.com/callegarimattia/battleship/internal/tactics"
)

// Engine holds one game's known board, remaining fleet, and hypothesis
// ensemble, and exposes the operations needed to pick the next shot.
//
// State transitions (ApplyShot, BestMove) are non-reentrant from the
// caller's perspective; Engine additionally enforces this with its own
// mutex, matching the serialized-access pattern every stateful game
// handle in this codebase uses.
type Engine struct {
	mu sync.Mutex

	id        string
	cfg       *config.Config
	known     *grid.Board
	remaining []int
	pop       *ensemble.Ensemble

	// defensiveFleet is purely informational: the architect's output for
	// this engine's own board. Hunting operations never read it — the
	// hunter plays the opponent's board, never its own.
	defensiveFleet []*grid.Ship
}

// New creates an Engine for a width×height board with an initial
// hypothesis ensemble over shipLengths, seeded from system entropy. Use
// NewSeeded for reproducible runs.
func New(width, height int, shipLengths []int) (*Engine, error) {
	return newEngine(width, height, shipLengths, rand.Uint64())
}

// NewSeeded is New with an explicit PRNG seed, for deterministic runs.
func NewSeeded(width, height int, shipLengths []int, seed uint64) (*Engine, error) {
	return newEngine(width, height, shipLengths, seed)
}

// NewEmpty creates an Engine with an empty known board, empty remaining
// fleet, and no hypothesis ensemble. Engine has no method that installs
// an ensemble afterwards, so BestMove on such an engine always returns
// the sentinel (0, 0).
func NewEmpty(width, height int) (*Engine, error) {
	board, err := grid.NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	return &Engine{id: uuid.NewString(), cfg: config.Load(), known: board}, nil
}

func newEngine(width, height int, shipLengths []int, seed uint64) (*Engine, error) {
	board, err := grid.NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	for _, l := range shipLengths {
		if l < 1 {
			return nil, grid.ErrInvalidShipLength
		}
	}

	cfg := config.Load()
	pop := ensemble.New(width, height, shipLengths, cfg, seed)
	pop.Initialize(board)

	remaining := make([]int, len(shipLengths))
	copy(remaining, shipLengths)

	return &Engine{
		id:        uuid.NewString(),
		cfg:       cfg,
		known:     board,
		remaining: remaining,
		pop:       pop,
	}, nil
}

// ID returns the engine's unique handle.
func (e *Engine) ID() string { return e.id }

// Layouts returns the current hypothesis ensemble's layouts, or nil if
// the engine has none (an engine built by NewEmpty). Exposed for
// diagnostics and testing; callers must not mutate the returned boards.
func (e *Engine) Layouts() []*grid.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pop == nil {
		return nil
	}
	return e.pop.Layouts()
}

// ApplyShot records an observed result at (x, y). Empty is a no-op (the
// "no observation yet" state can never itself be observed). A result
// that contradicts an already-recorded cell is rejected as
// ErrInvalidObservation, except the normal Hit-to-Sunk finalization.
//
// Marking a cell Sunk triggers inference of the whole destroyed ship:
// the contiguous run of Hit/Sunk cells through (x, y) is promoted to
// Sunk and its length removed from the remaining fleet. Without this,
// remaining-ship-length bookkeeping would silently stop shrinking once
// a ship was fully destroyed, starving the constraint solver of its
// strongest signal.
func (e *Engine) ApplyShot(x, y int, result grid.CellState) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	coord := grid.Coordinate{X: x, Y: y}
	if !e.known.InBounds(coord) {
		return ErrInvalidObservation
	}
	if result == grid.Empty {
		return nil
	}

	existing := e.known.At(coord)
	if existing != grid.Empty && existing != result {
		if !(existing == grid.Hit && result == grid.Sunk) {
			return ErrInvalidObservation
		}
	}
	if existing == result {
		return nil
	}

	e.known.Set(coord, result)

	if result == grid.Sunk {
		length := e.markSunkRun(coord)
		e.remaining = removeOne(e.remaining, length)
	}

	solver.Solve(e.known, e.remaining)

	if e.pop != nil {
		e.pop.Filter(e.known)
	}

	return nil
}

// markSunkRun promotes the contiguous Hit/Sunk run through c — in
// whichever of the two axes is longer — to Sunk, and returns the run's
// length (the destroyed ship's length).
func (e *Engine) markSunkRun(c grid.Coordinate) int {
	horizontal := e.collectRun(c, 1, 0)
	vertical := e.collectRun(c, 0, 1)

	run := horizontal
	if len(vertical) > len(run) {
		run = vertical
	}
	for _, cell := range run {
		e.known.Set(cell, grid.Sunk)
	}
	return len(run)
}

func (e *Engine) collectRun(c grid.Coordinate, dx, dy int) []grid.Coordinate {
	run := []grid.Coordinate{c}
	for _, dir := range [2]int{-1, 1} {
		cur := grid.Coordinate{X: c.X + dir*dx, Y: c.Y + dir*dy}
		for e.known.InBounds(cur) {
			state := e.known.At(cur)
			if state != grid.Hit && state != grid.Sunk {
				break
			}
			if dir == -1 {
				run = append([]grid.Coordinate{cur}, run...)
			} else {
				run = append(run, cur)
			}
			cur = grid.Coordinate{X: cur.X + dir*dx, Y: cur.Y + dir*dy}
		}
	}
	return run
}

// removeOne removes the first occurrence of length from lengths. A
// missing match is left as a no-op: it indicates the host reported a
// Sunk run whose length doesn't match any remaining ship, which should
// not occur in normal play.
func removeOne(lengths []int, length int) []int {
	for i, l := range lengths {
		if l == length {
			out := make([]int, 0, len(lengths)-1)
			out = append(out, lengths[:i]...)
			out = append(out, lengths[i+1:]...)
			return out
		}
	}
	return lengths
}

// BestMove returns the highest-ranked next shot: heat/VoI scoring over
// the current ensemble narrows the board to a handful of candidates,
// and the alpha-beta verifier tie-breaks among them. Returns the
// sentinel (0, 0) if the ensemble is empty or no Empty cell remains.
func (e *Engine) BestMove() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pop == nil || e.pop.Size() == 0 {
		return 0, 0
	}
	if e.known.Count(grid.Empty) == 0 {
		return 0, 0
	}

	heat := scoring.BuildHeatMap(e.known.Width(), e.known.Height(), e.pop.Layouts())
	weight := scoring.Weight(maxLength(e.remaining))
	candidates := scoring.TopCandidates(e.known, heat, weight, e.cfg.CandidatePoolSize)
	if len(candidates) == 0 {
		return 0, 0
	}

	coords := make([]grid.Coordinate, len(candidates))
	for i, c := range candidates {
		coords[i] = c.Coordinate
	}

	best := tactics.Verify(e.known, coords)
	return best.X, best.Y
}

func maxLength(lengths []int) int {
	m := 0
	for _, l := range lengths {
		if l > m {
			m = l
		}
	}
	return m
}

// Snapshot returns the persistable view of the current known board and
// remaining fleet.
func (e *Engine) Snapshot() snapshot.KnownBoard {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot.FromBoard(e.known, e.remaining)
}

// SetDefensiveFleet stores the architect-produced layout for this
// engine's own board. It is purely informational: hunting operations
// never read it back.
func (e *Engine) SetDefensiveFleet(ships []*grid.Ship) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.defensiveFleet = ships
}
