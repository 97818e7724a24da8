package ec

import "math/rand"

// Variator transforms parent candidates into offspring candidates.
// Variators run in pipeline order: the output of one feeds the next.
// The state argument gives read access to the current run for operators
// that need the archive or the live population, such as swarm updates.
type Variator interface {
	Vary(rng *rand.Rand, candidates []Candidate, state *State, cfg *Config) ([]Candidate, error)
}

// GaussianMutation perturbs each gene with probability Rate by adding a
// draw from N(Mean, Stdev), then applies the bounder.
type GaussianMutation struct {
	Mean    float64
	Stdev   float64
	Rate    float64
	Bounder Bounder
}

func (m *GaussianMutation) Vary(rng *rand.Rand, candidates []Candidate, state *State, cfg *Config) ([]Candidate, error) {
	rate := m.Rate
	if rate == 0 {
		rate = 0.1
	}
	stdev := m.Stdev
	if stdev == 0 {
		stdev = 1
	}
	bounder := m.Bounder
	if bounder == nil {
		bounder = Unbounded
	}
	out := make([]Candidate, len(candidates))
	for i, cs := range candidates {
		mutant := cs.Clone()
		for j := range mutant {
			if rng.Float64() < rate {
				mutant[j] += m.Mean + stdev*rng.NormFloat64()
			}
		}
		out[i] = bounder.Bound(mutant)
	}
	return out, nil
}

// UniformMutation replaces each gene with probability Rate by a fresh
// uniform draw in [Lower, Upper].
type UniformMutation struct {
	Rate  float64
	Lower float64
	Upper float64
}

func (m *UniformMutation) Vary(rng *rand.Rand, candidates []Candidate, state *State, cfg *Config) ([]Candidate, error) {
	rate := m.Rate
	if rate == 0 {
		rate = 0.1
	}
	lo, hi := m.Lower, m.Upper
	if lo == 0 && hi == 0 {
		hi = 1
	}
	out := make([]Candidate, len(candidates))
	for i, cs := range candidates {
		mutant := cs.Clone()
		for j := range mutant {
			if rng.Float64() <= rate {
				mutant[j] = lo + (hi-lo)*rng.Float64()
			}
		}
		out[i] = mutant
	}
	return out, nil
}

// NPointCrossover recombines consecutive parent pairs at Points cut
// positions with probability Rate, passing parents through unchanged
// otherwise. An odd trailing parent is passed through.
type NPointCrossover struct {
	Points int
	Rate   float64
}

func (x *NPointCrossover) Vary(rng *rand.Rand, candidates []Candidate, state *State, cfg *Config) ([]Candidate, error) {
	points := x.Points
	if points <= 0 {
		points = 1
	}
	rate := x.Rate
	if rate == 0 {
		rate = 1
	}
	out := make([]Candidate, 0, len(candidates))
	for i := 0; i+1 < len(candidates); i += 2 {
		mom, dad := candidates[i], candidates[i+1]
		if rng.Float64() >= rate || len(mom) < 2 {
			out = append(out, mom.Clone(), dad.Clone())
			continue
		}
		cuts := make(map[int]bool, points)
		for len(cuts) < points && len(cuts) < len(mom)-1 {
			cuts[1+rng.Intn(len(mom)-1)] = true
		}
		bro, sis := mom.Clone(), dad.Clone()
		swap := false
		for j := range mom {
			if cuts[j] {
				swap = !swap
			}
			if swap {
				bro[j], sis[j] = dad[j], mom[j]
			}
		}
		out = append(out, bro, sis)
	}
	if len(candidates)%2 == 1 {
		out = append(out, candidates[len(candidates)-1].Clone())
	}
	return out, nil
}
