package tactics_test

import (
	"testing"

	"github.com/callegarimattia/battleship/internal/grid"
	"github.com/callegarimattia/battleship/internal/tactics"
)

// TestEvaluateScenarioS5 mirrors spec.md scenario S5.
func TestEvaluateScenarioS5(t *testing.T) {
	t.Parallel()

	b, _ := grid.NewBoard(5, 5)
	if got := tactics.Evaluate(b); got != 0 {
		t.Errorf("all-empty board evaluates to %d, want 0", got)
	}

	b.Set(grid.Coordinate{X: 1, Y: 1}, grid.Hit)
	b.Set(grid.Coordinate{X: 1, Y: 2}, grid.Hit)
	if got := tactics.Evaluate(b); got != 120 {
		t.Errorf("vertical Hit pair evaluates to %d, want 120", got)
	}

	b.Set(grid.Coordinate{X: 3, Y: 3}, grid.Hit)
	if got := tactics.Evaluate(b); got != 130 {
		t.Errorf("adding an isolated Hit evaluates to %d, want 130", got)
	}
}

func TestEvaluateDiagonalPairDoesNotScoreBonus(t *testing.T) {
	t.Parallel()

	b, _ := grid.NewBoard(5, 5)
	b.Set(grid.Coordinate{X: 1, Y: 1}, grid.Hit)
	b.Set(grid.Coordinate{X: 2, Y: 2}, grid.Hit)
	if got := tactics.Evaluate(b); got != 20 {
		t.Errorf("diagonal Hit pair evaluates to %d, want 20", got)
	}
}

func TestDepthPolicyEnvelope(t *testing.T) {
	t.Parallel()

	cases := []struct {
		empty int
		want  int
	}{
		{empty: 60, want: 2},
		{empty: 51, want: 2},
		{empty: 50, want: 3},
		{empty: 21, want: 3},
		{empty: 20, want: 4},
		{empty: 0, want: 4},
	}
	for _, c := range cases {
		if got := tactics.Depth(c.empty); got != c.want {
			t.Errorf("Depth(%d) = %d, want %d", c.empty, got, c.want)
		}
	}
}

// TestVerifyScenarioS2 mirrors spec.md scenario S2.
func TestVerifyScenarioS2(t *testing.T) {
	t.Parallel()

	b, _ := grid.NewBoard(5, 5)
	b.Set(grid.Coordinate{X: 2, Y: 2}, grid.Hit)

	candidates := []grid.Coordinate{{X: 4, Y: 4}, {X: 2, Y: 3}}
	got := tactics.Verify(b, candidates)
	want := grid.Coordinate{X: 2, Y: 3}
	if got != want {
		t.Errorf("Verify() = %v, want %v", got, want)
	}
}

func TestVerifyBreaksTiesByInputOrder(t *testing.T) {
	t.Parallel()

	b, _ := grid.NewBoard(3, 3)
	candidates := []grid.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}}
	got := tactics.Verify(b, candidates)
	if got != candidates[0] {
		t.Errorf("Verify() on a symmetric board = %v, want first candidate %v", got, candidates[0])
	}
}
