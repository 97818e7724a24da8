package ec

import (
	"math/rand"
	"sort"
)

// Replacer merges parents and offspring into the next generation.
// Offspring slots whose evaluation failed are passed as nil.
type Replacer interface {
	Replace(rng *rand.Rand, population, parents, offspring Population, cfg *Config) (Population, error)
}

// SlotComparison selects how the positional replacer decides a slot.
type SlotComparison int

const (
	// CompareMagnitude keeps whichever of parent and offspring has the
	// larger |fitness|, with the offspring winning ties. This is the
	// historical rule, preserved as-is even though it ignores the
	// maximize flag; see CompareOrdered for the orthodox alternative.
	CompareMagnitude SlotComparison = iota

	// CompareOrdered keeps whichever side is better under the
	// maximize-aware ordering, again with the offspring winning ties.
	CompareOrdered
)

// PositionalReplacer decides every slot independently between parent
// and offspring in the same position. This keeps the population size
// fixed and preserves slot lineage, which index-based DE mutation
// depends on.
type PositionalReplacer struct {
	Comparison SlotComparison
}

func (r *PositionalReplacer) Replace(rng *rand.Rand, population, parents, offspring Population, cfg *Config) (Population, error) {
	next := make(Population, len(parents))
	for i, parent := range parents {
		// A non-evaluable offspring leaves the parent in place.
		if i >= len(offspring) || offspring[i] == nil {
			next[i] = parent
			continue
		}
		off := offspring[i]
		if !parent.Evaluated || !off.Evaluated {
			return nil, ErrFitnessUnset
		}

		keepParent := false
		switch r.Comparison {
		case CompareMagnitude:
			keepParent = parent.magnitude() > off.magnitude()
		case CompareOrdered:
			better, err := parent.Better(off)
			if err != nil {
				return nil, err
			}
			keepParent = better
		}

		if keepParent {
			next[i] = parent
		} else {
			next[i] = off
		}
	}
	return next, nil
}

// RankedReplacer merges the parent generation and the offspring, sorts
// them with the maximize-aware ordering, and keeps the top NP
// (steady-state replacement). The whole population competes, not just
// the selected parents, so the best individual is never lost.
type RankedReplacer struct{}

func (RankedReplacer) Replace(rng *rand.Rand, population, parents, offspring Population, cfg *Config) (Population, error) {
	merged := make(Population, 0, len(population)+len(offspring))
	merged = append(merged, population...)
	for _, off := range offspring {
		if off != nil {
			merged = append(merged, off)
		}
	}
	for _, ind := range merged {
		if !ind.Evaluated {
			return nil, ErrFitnessUnset
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		better, _ := merged[i].Better(merged[j])
		return better
	})
	np := len(population)
	if np > len(merged) {
		np = len(merged)
	}
	return merged[:np], nil
}
