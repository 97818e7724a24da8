package ec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategyRoundTrip(t *testing.T) {
	all := Strategies()
	require.Len(t, all, 10)

	for _, want := range all {
		got, err := ParseStrategy(want.String())
		require.NoError(t, err, want.String())
		assert.Equal(t, want, got)
	}
}

func TestParseStrategyRejectsMalformed(t *testing.T) {
	for _, name := range []string{
		"",
		"best/1/exp",
		"GA/best/1/exp",
		"DE/medium/1/exp",
		"DE/best/x/exp",
		"DE/best/3/exp",
		"DE/best/1/uniform",
		"DE/rand-to-best/2/bin",
	} {
		_, err := ParseStrategy(name)
		assert.Error(t, err, name)
	}
}

// fixedParents builds a parent pool with every gene well inside [0, 1]
// and distinct from the best vector, so repair never fires and any
// crossed-over gene is detectable.
func fixedParents(np, d int) []Candidate {
	parents := make([]Candidate, np)
	for i := range parents {
		parents[i] = make(Candidate, d)
		for j := range parents[i] {
			parents[i][j] = 0.1 + 0.05*float64(i%10)
		}
	}
	return parents
}

func TestExponentialCrossoverSaturatesAtFullRate(t *testing.T) {
	// With CR = 1 the exponential walk never stops early, so with F = 0
	// every dimension of every offspring collapses onto the base vector.
	s := Strategy{Base: BaseBest, Diffs: 1, Crossover: CrossExponential}
	rng := rand.New(rand.NewSource(7))

	parents := fixedParents(8, 5)
	best := Candidate{0.9, 0.9, 0.9, 0.9, 0.9}

	offspring, err := s.Variate(rng, parents, best, 0, 1)
	require.NoError(t, err)
	require.Len(t, offspring, 8)
	for _, off := range offspring {
		assert.Equal(t, best, off)
	}
}

func TestBinomialCrossoverHitsOneFixedDimension(t *testing.T) {
	// The binomial loop redraws the acceptance test but never advances
	// the dimension, so no matter the rate at most one gene can change.
	s := Strategy{Base: BaseBest, Diffs: 1, Crossover: CrossBinomial}
	best := Candidate{0.9, 0.9, 0.9, 0.9}

	for _, cr := range []float64{0, 0.5, 1} {
		rng := rand.New(rand.NewSource(11))
		parents := fixedParents(8, 4)

		offspring, err := s.Variate(rng, parents, best, 0, cr)
		require.NoError(t, err)

		for i, off := range offspring {
			changed := 0
			for j := range off {
				if off[j] != parents[i][j] {
					assert.Equal(t, best[j], off[j])
					changed++
				}
			}
			assert.Equal(t, 1, changed, "CR=%g slot %d", cr, i)
		}
	}
}

func TestVariateRepairsOutOfRangeGenes(t *testing.T) {
	// A base vector outside [0, 1] drives every gene out of range, so
	// the repair pass must replace them all with three-decimal draws.
	s := Strategy{Base: BaseBest, Diffs: 1, Crossover: CrossExponential}
	rng := rand.New(rand.NewSource(3))

	parents := fixedParents(8, 4)
	best := Candidate{5, 5, 5, 5}

	offspring, err := s.Variate(rng, parents, best, 0, 1)
	require.NoError(t, err)
	for _, off := range offspring {
		for _, g := range off {
			assert.GreaterOrEqual(t, g, 0.0)
			assert.LessOrEqual(t, g, 1.0)
			assert.Equal(t, math.Round(g*1000)/1000, g, "repaired genes are rounded to three decimals")
		}
	}
}

func TestVariatePreservesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	parents := fixedParents(10, 3)
	best := parents[0]

	for _, s := range Strategies() {
		offspring, err := s.Variate(rng, parents, best, 0.5, 0.9)
		require.NoError(t, err, s.String())
		assert.Len(t, offspring, len(parents), s.String())
		for _, off := range offspring {
			assert.Len(t, off, 3, s.String())
		}
	}
}

func TestVariateDeterministicForSeed(t *testing.T) {
	s := Strategy{Base: BaseRand, Diffs: 2, Crossover: CrossBinomial}
	parents := fixedParents(9, 4)
	best := parents[2]

	first, err := s.Variate(rand.New(rand.NewSource(21)), parents, best, 0.7, 0.8)
	require.NoError(t, err)
	second, err := s.Variate(rand.New(rand.NewSource(21)), parents, best, 0.7, 0.8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVariateRejectsTinyPopulations(t *testing.T) {
	s := Strategy{Base: BaseRand, Diffs: 1, Crossover: CrossExponential}
	rng := rand.New(rand.NewSource(1))

	_, err := s.Variate(rng, fixedParents(5, 3), Candidate{0, 0, 0}, 0.5, 0.9)
	assert.Error(t, err)

	_, err = s.Variate(rng, nil, nil, 0.5, 0.9)
	assert.Error(t, err)
}
