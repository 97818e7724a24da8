package ec

// Population is an ordered collection of individuals. For DE runs the
// slot order is significant: index-based mutation assumes persistent
// slot identity across generations.
type Population []*Individual

// Best returns the best individual under the maximize-aware ordering.
// Fails on an empty population or when any member is unevaluated.
func (p Population) Best() (*Individual, error) {
	if len(p) == 0 {
		return nil, &ConfigError{Option: "population", Reason: "is empty"}
	}
	best := p[0]
	for _, ind := range p[1:] {
		better, err := ind.Better(best)
		if err != nil {
			return nil, err
		}
		if better {
			best = ind
		}
	}
	return best, nil
}

// Clone returns a deep copy of the population. Observers receive clones
// so that the engine's live state is never shared.
func (p Population) Clone() Population {
	out := make(Population, len(p))
	for i, ind := range p {
		out[i] = ind.Clone()
	}
	return out
}

// Candidates returns independent copies of every member's candidate.
func (p Population) Candidates() []Candidate {
	out := make([]Candidate, len(p))
	for i, ind := range p {
		out[i] = ind.Candidate().Clone()
	}
	return out
}
