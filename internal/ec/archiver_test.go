package ec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalBestArchiverKeepsSingleBest(t *testing.T) {
	a := GlobalBestArchiver{}
	rng := rand.New(rand.NewSource(1))

	pop := Population{
		evaluated(Candidate{0}, 3, false),
		evaluated(Candidate{1}, 1, false),
		evaluated(Candidate{2}, 2, false),
	}

	archive, err := a.Archive(rng, pop, nil, nil)
	require.NoError(t, err)
	require.Len(t, archive, 1)
	assert.Equal(t, 1.0, archive[0].Fitness)

	// The archived entry is a clone, detached from the population.
	archive[0].Candidate()[0] = 99
	assert.Equal(t, Candidate{1}, pop[1].Candidate())
}

func TestPersonalBestArchiverSeedsFromPopulation(t *testing.T) {
	a := PersonalBestArchiver{}
	rng := rand.New(rand.NewSource(1))

	pop := Population{
		evaluated(Candidate{0}, 3, false),
		evaluated(Candidate{1}, 1, false),
	}

	archive, err := a.Archive(rng, pop, nil, nil)
	require.NoError(t, err)
	require.Len(t, archive, 2)
	assert.Equal(t, 3.0, archive[0].Fitness)
	assert.Equal(t, 1.0, archive[1].Fitness)
}

func TestPersonalBestArchiverKeepsBetterPerSlot(t *testing.T) {
	a := PersonalBestArchiver{}
	rng := rand.New(rand.NewSource(1))

	archive := Population{
		evaluated(Candidate{0}, 3, false),
		evaluated(Candidate{1}, 1, false),
	}
	pop := Population{
		evaluated(Candidate{10}, 2, false), // improves slot 0
		evaluated(Candidate{11}, 5, false), // worse than slot 1
	}

	next, err := a.Archive(rng, pop, archive, nil)
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, 2.0, next[0].Fitness)
	assert.Equal(t, Candidate{10}, next[0].Candidate())
	assert.Equal(t, 1.0, next[1].Fitness)
	assert.Equal(t, Candidate{1}, next[1].Candidate())
}
