// Package swarm provides a particle swarm optimizer built on the ec
// engine primitives. It follows the velocity-free formulation of Deb
// and Padhye (GECCO 2010): instead of velocities it keeps the previous
// population and a personal-best archive, and moves each particle
// toward its personal best and the neighborhood best.
package swarm

import (
	"math/rand"

	"github.com/tsadreas/Optim-iterator/internal/ec"
)

const (
	defaultInertia       = 0.5
	defaultCognitiveRate = 2.1
	defaultSocialRate    = 2.1
)

// NewEngine creates an engine configured as a particle swarm: whole
// population selection, the swarm position update as the sole variator,
// wholesale replacement, and a personal-best archive.
func NewEngine(rng *rand.Rand, bounder ec.Bounder) *ec.Engine {
	e := ec.New(rng)
	e.Selector = ec.SelectAll{}
	e.Variators = []ec.Variator{&Variator{
		Inertia:       defaultInertia,
		CognitiveRate: defaultCognitiveRate,
		SocialRate:    defaultSocialRate,
		Bounder:       bounder,
	}}
	e.Replacer = Replacer{}
	e.Archiver = ec.PersonalBestArchiver{}
	return e
}

// Variator moves each particle using its previous position, its
// personal best from the archive, and the neighborhood best under a
// star topology (the whole swarm is one neighborhood). It is stateful:
// it remembers the population between generations.
type Variator struct {
	Inertia       float64
	CognitiveRate float64
	SocialRate    float64
	Bounder       ec.Bounder

	previous ec.Population
}

func (v *Variator) Vary(rng *rand.Rand, candidates []ec.Candidate, state *ec.State, cfg *ec.Config) ([]ec.Candidate, error) {
	population := state.Population
	archive := state.Archive
	if len(archive) == 0 {
		archive = population
	}
	if len(v.previous) == 0 {
		v.previous = population.Clone()
	}
	bounder := v.Bounder
	if bounder == nil {
		bounder = ec.Unbounded
	}

	// Star topology: every particle's neighborhood is the whole swarm,
	// so the neighborhood best is the best personal best.
	nbest, err := archive.Best()
	if err != nil {
		return nil, err
	}

	offspring := make([]ec.Candidate, len(population))
	for i, x := range population {
		xprev := x
		if i < len(v.previous) {
			xprev = v.previous[i]
		}
		pbest := x
		if i < len(archive) {
			pbest = archive[i]
		}

		particle := make(ec.Candidate, len(x.Candidate()))
		for j := range particle {
			xi := x.Candidate()[j]
			xpi := xprev.Candidate()[j]
			pbi := pbest.Candidate()[j]
			nbi := nbest.Candidate()[j]
			particle[j] = xi + v.Inertia*(xi-xpi) +
				v.CognitiveRate*rng.Float64()*(pbi-xi) +
				v.SocialRate*rng.Float64()*(nbi-xi)
		}
		offspring[i] = bounder.Bound(particle)
	}

	// The population seen here is the pre-replacement one, which is
	// exactly what the next generation needs as "previous".
	v.previous = population.Clone()
	return offspring, nil
}

// Replacer replaces the swarm wholesale with the moved particles. A
// particle whose evaluation failed keeps its previous position so the
// swarm never shrinks.
type Replacer struct{}

func (Replacer) Replace(rng *rand.Rand, population, parents, offspring ec.Population, cfg *ec.Config) (ec.Population, error) {
	next := make(ec.Population, len(parents))
	for i, parent := range parents {
		if i < len(offspring) && offspring[i] != nil {
			next[i] = offspring[i]
		} else {
			next[i] = parent
		}
	}
	return next, nil
}
