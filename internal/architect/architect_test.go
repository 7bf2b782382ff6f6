package architect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callegarimattia/battleship/internal/architect"
	"github.com/callegarimattia/battleship/internal/grid"
)

func standardFleet() []int { return []int{5, 4, 3, 3, 2} }

// TestGenerateBestLayoutScenarioS6 mirrors spec.md scenario S6.
func TestGenerateBestLayoutScenarioS6(t *testing.T) {
	t.Parallel()

	ships1 := architect.GenerateBestLayout(99, 30, 50, 10, 10, standardFleet())
	require.True(t, grid.ValidFleet(10, 10, ships1))
	require.Len(t, ships1, len(standardFleet()))

	ships2 := architect.GenerateBestLayout(99, 30, 50, 10, 10, standardFleet())
	require.Len(t, ships2, len(ships1))
	for i := range ships1 {
		assert.Equal(t, ships1[i].Cells, ships2[i].Cells, "ship %d differs across identically seeded runs", i)
	}
}

func TestGenerateBestLayoutProducesLegalFleetOnSmallPopulation(t *testing.T) {
	t.Parallel()

	ships := architect.GenerateBestLayout(5, 5, 6, 10, 10, standardFleet())
	assert.True(t, grid.ValidFleet(10, 10, ships))
}

func TestGenerateBestLayoutRespectsNoTouchRule(t *testing.T) {
	t.Parallel()

	ships := architect.GenerateBestLayout(123, 10, 20, 8, 8, []int{3, 2, 2})
	require.True(t, grid.ValidFleet(8, 8, ships))
	assert.True(t, grid.NoTouching(ships))
}
