package ec

import "math/rand"

// Archiver maintains the auxiliary best-so-far store. It runs once per
// generation, after replacement, and its entries may outlive the
// population generation that produced them.
type Archiver interface {
	Archive(rng *rand.Rand, population, archive Population, cfg *Config) (Population, error)
}

// GlobalBestArchiver keeps a single reference to the best individual of
// the current population. Best-based DE strategies read their base
// vector from it.
type GlobalBestArchiver struct{}

func (GlobalBestArchiver) Archive(rng *rand.Rand, population, archive Population, cfg *Config) (Population, error) {
	best, err := population.Best()
	if err != nil {
		return nil, err
	}
	return Population{best.Clone()}, nil
}

// PersonalBestArchiver keeps one personal-best entry per population
// slot, as used by particle-based variants. Each slot retains whichever
// of the stored entry and the current member compares better.
type PersonalBestArchiver struct{}

func (PersonalBestArchiver) Archive(rng *rand.Rand, population, archive Population, cfg *Config) (Population, error) {
	if len(archive) == 0 {
		return population.Clone(), nil
	}
	next := make(Population, 0, len(archive))
	for i, stored := range archive {
		if i >= len(population) {
			break
		}
		current := population[i]
		better, err := current.Better(stored)
		if err != nil {
			return nil, err
		}
		if better {
			next = append(next, current.Clone())
		} else {
			next = append(next, stored)
		}
	}
	return next, nil
}
