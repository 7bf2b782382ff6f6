package hunter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callegarimattia/battleship/internal/grid"
	"github.com/callegarimattia/battleship/internal/hunter"
	"github.com/callegarimattia/battleship/internal/scoring"
)

func smallEngineEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HUNTER_ENSEMBLE_TARGET", "500")
	t.Setenv("HUNTER_REFILL_THRESHOLD", "300")
	t.Setenv("HUNTER_GENERATION_ATTEMPT_BUDGET", "50000")
}

// TestBestMoveScenarioS1 mirrors spec.md scenario S1: a single ship
// whose only legal placement is fully determined by one Hit observation
// should make BestMove pick the next cell of that placement.
func TestBestMoveScenarioS1(t *testing.T) {
	smallEngineEnv(t)

	// A 3x1 board admits exactly one placement for a length-3 ship, so
	// after the corner Hit the ensemble collapses to a single known
	// layout and the outcome is fully determined, not a statistical tie.
	e, err := hunter.NewSeeded(3, 1, []int{3}, 7)
	require.NoError(t, err)

	require.NoError(t, e.ApplyShot(0, 0, grid.Hit))

	x, y := e.BestMove()
	assert.Equal(t, 1, x)
	assert.Equal(t, 0, y)
}

func TestApplyShotRejectsOutOfBounds(t *testing.T) {
	smallEngineEnv(t)

	e, err := hunter.NewSeeded(5, 5, []int{3}, 1)
	require.NoError(t, err)

	err = e.ApplyShot(10, 10, grid.Hit)
	assert.ErrorIs(t, err, hunter.ErrInvalidObservation)
}

func TestApplyShotRejectsContradiction(t *testing.T) {
	smallEngineEnv(t)

	e, err := hunter.NewSeeded(5, 5, []int{3}, 2)
	require.NoError(t, err)

	require.NoError(t, e.ApplyShot(1, 1, grid.Miss))
	err = e.ApplyShot(1, 1, grid.Hit)
	assert.ErrorIs(t, err, hunter.ErrInvalidObservation)
}

func TestApplyShotAllowsHitToSunkFinalization(t *testing.T) {
	smallEngineEnv(t)

	e, err := hunter.NewSeeded(5, 5, []int{3}, 3)
	require.NoError(t, err)

	require.NoError(t, e.ApplyShot(1, 1, grid.Hit))
	assert.NoError(t, e.ApplyShot(1, 1, grid.Sunk))
}

func TestApplyShotSunkDecrementsRemainingLength(t *testing.T) {
	smallEngineEnv(t)

	e, err := hunter.NewSeeded(6, 6, []int{3, 2}, 4)
	require.NoError(t, err)

	require.NoError(t, e.ApplyShot(0, 0, grid.Hit))
	require.NoError(t, e.ApplyShot(1, 0, grid.Hit))
	require.NoError(t, e.ApplyShot(2, 0, grid.Sunk))

	snap := e.Snapshot()
	assert.Equal(t, []int{2}, snap.RemainingShipLengths)
	// The whole run gets promoted to Sunk, not just the final cell.
	assert.Equal(t, grid.Sunk.Code(), snap.Cells[0][0])
	assert.Equal(t, grid.Sunk.Code(), snap.Cells[0][1])
}

// TestBestMoveScenarioS4 mirrors spec.md scenario S4: on a 10x10 board
// with the standard fleet, the very first BestMove must land on an
// Empty cell whose heat rank (among all candidates, scored exactly as
// BestMove itself scores them) falls in the top 5 of the initial
// ensemble.
func TestBestMoveScenarioS4(t *testing.T) {
	smallEngineEnv(t)

	fleet := []int{5, 4, 3, 3, 2}
	e, err := hunter.NewSeeded(10, 10, fleet, 55)
	require.NoError(t, err)

	x, y := e.BestMove()

	layouts := e.Layouts()
	require.NotEmpty(t, layouts, "engine produced no hypothesis layouts")

	// No shots have been fired yet, so the known board is still all
	// Empty — the same board BestMove itself scored against.
	known, err := grid.NewBoard(10, 10)
	require.NoError(t, err)

	heat := scoring.BuildHeatMap(10, 10, layouts)
	weight := scoring.Weight(5) // largest remaining ship length
	ranked := scoring.TopCandidates(known, heat, weight, 100)

	rank := -1
	want := grid.Coordinate{X: x, Y: y}
	for i, c := range ranked {
		if c.Coordinate == want {
			rank = i + 1
			break
		}
	}

	require.NotEqual(t, -1, rank, "BestMove coordinate (%d,%d) not found among ranked candidates", x, y)
	assert.LessOrEqual(t, rank, 5, "BestMove coordinate (%d,%d) ranked %d, want top 5", x, y, rank)
}

func TestBestMoveEmptyEngineReturnsSentinel(t *testing.T) {
	e, err := hunter.NewEmpty(5, 5)
	require.NoError(t, err)

	x, y := e.BestMove()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestNewEmptyHasNoObservationsOrFleet(t *testing.T) {
	e, err := hunter.NewEmpty(4, 4)
	require.NoError(t, err)

	snap := e.Snapshot()
	assert.Empty(t, snap.RemainingShipLengths)
	for _, row := range snap.Cells {
		for _, cell := range row {
			assert.Equal(t, grid.Empty.Code(), cell)
		}
	}
}

func TestDeterminismAcrossIdenticalSeeds(t *testing.T) {
	smallEngineEnv(t)

	e1, err := hunter.NewSeeded(6, 6, []int{3, 2}, 42)
	require.NoError(t, err)
	e2, err := hunter.NewSeeded(6, 6, []int{3, 2}, 42)
	require.NoError(t, err)

	x1, y1 := e1.BestMove()
	x2, y2 := e2.BestMove()
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}
