package ec

import "math/rand"

// Selector picks the parents that variation will act on.
type Selector interface {
	Select(rng *rand.Rand, population Population, cfg *Config) (Population, error)
}

// SelectAll returns the whole population as parents, preserving slot
// order. This is the selector for DE and swarm runs, where positional
// lineage matters.
type SelectAll struct{}

func (SelectAll) Select(rng *rand.Rand, population Population, cfg *Config) (Population, error) {
	return population, nil
}

// TournamentSelector picks N parents, each as the winner of a
// tournament among Size randomly drawn members.
type TournamentSelector struct {
	N    int
	Size int
}

func (s *TournamentSelector) Select(rng *rand.Rand, population Population, cfg *Config) (Population, error) {
	n := s.N
	if n <= 0 {
		n = len(population)
	}
	size := s.Size
	if size <= 0 {
		size = 2
	}
	selected := make(Population, 0, n)
	for len(selected) < n {
		winner := population[rng.Intn(len(population))]
		for t := 1; t < size; t++ {
			challenger := population[rng.Intn(len(population))]
			better, err := challenger.Better(winner)
			if err != nil {
				return nil, err
			}
			if better {
				winner = challenger
			}
		}
		selected = append(selected, winner)
	}
	return selected, nil
}
