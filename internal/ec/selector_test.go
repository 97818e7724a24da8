package ec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAllPreservesOrder(t *testing.T) {
	pop := Population{
		evaluated(Candidate{0}, 3, false),
		evaluated(Candidate{1}, 1, false),
	}

	selected, err := SelectAll{}.Select(rand.New(rand.NewSource(1)), pop, nil)
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Same(t, pop[0], selected[0])
	assert.Same(t, pop[1], selected[1])
}

func TestTournamentSelectorCount(t *testing.T) {
	pop := Population{
		evaluated(Candidate{0}, 3, false),
		evaluated(Candidate{1}, 1, false),
		evaluated(Candidate{2}, 2, false),
	}

	s := &TournamentSelector{N: 7, Size: 2}
	selected, err := s.Select(rand.New(rand.NewSource(1)), pop, nil)
	require.NoError(t, err)
	assert.Len(t, selected, 7)

	// Defaults: N matches the population, tournaments of two.
	s = &TournamentSelector{}
	selected, err = s.Select(rand.New(rand.NewSource(1)), pop, nil)
	require.NoError(t, err)
	assert.Len(t, selected, 3)
}

func TestTournamentSelectorFavorsFitter(t *testing.T) {
	// With tournaments spanning the whole population the winner is
	// always the overall best.
	pop := Population{
		evaluated(Candidate{0}, 3, false),
		evaluated(Candidate{1}, 1, false),
		evaluated(Candidate{2}, 2, false),
	}

	s := &TournamentSelector{N: 5, Size: 30}
	selected, err := s.Select(rand.New(rand.NewSource(1)), pop, nil)
	require.NoError(t, err)
	for _, ind := range selected {
		assert.Equal(t, 1.0, ind.Fitness)
	}
}
