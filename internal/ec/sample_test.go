package ec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		got, err := sampleDistinct(rng, 12, 5, 3)
		require.NoError(t, err)
		require.Len(t, got, 5)

		seen := make(map[int]bool, 5)
		for _, idx := range got {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 12)
			assert.NotEqual(t, 3, idx, "excluded index must never be drawn")
			assert.False(t, seen[idx], "indices must be distinct")
			seen[idx] = true
		}
	}
}

func TestSampleDistinctMinimumPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Six slots minus the excluded one leaves exactly five choices.
	got, err := sampleDistinct(rng, 6, 5, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, got)
}

func TestSampleDistinctTooFewSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := sampleDistinct(rng, 5, 5, 0)
	assert.Error(t, err)
}
