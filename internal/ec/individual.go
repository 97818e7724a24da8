package ec

import (
	"fmt"
	"math"
	"time"
)

// Candidate is a real-valued vector representing one point in the
// search space.
type Candidate []float64

// Clone returns an independent copy of the candidate.
func (c Candidate) Clone() Candidate {
	if c == nil {
		return nil
	}
	out := make(Candidate, len(c))
	copy(out, c)
	return out
}

// Individual pairs a candidate solution with its evaluated fitness and
// any named auxiliary responses produced by the evaluator.
type Individual struct {
	candidate Candidate

	// Fitness is only meaningful while Evaluated is true.
	Fitness   float64
	Evaluated bool

	Responses map[string]float64
	Maximize  bool
	Birthdate time.Time
}

// NewIndividual creates an unevaluated individual for the given candidate.
func NewIndividual(candidate Candidate, maximize bool) *Individual {
	return &Individual{
		candidate: candidate,
		Maximize:  maximize,
		Birthdate: time.Now(),
	}
}

// Candidate returns the individual's candidate solution.
func (ind *Individual) Candidate() Candidate {
	return ind.candidate
}

// SetCandidate replaces the candidate solution and clears the fitness
// and responses, since they no longer describe the new candidate.
func (ind *Individual) SetCandidate(candidate Candidate) {
	ind.candidate = candidate
	ind.Fitness = 0
	ind.Evaluated = false
	ind.Responses = nil
}

// SetFitness records the evaluated fitness and responses.
func (ind *Individual) SetFitness(fitness float64, responses map[string]float64) {
	ind.Fitness = fitness
	ind.Evaluated = true
	ind.Responses = responses
}

// Better reports whether ind is strictly better than other under the
// maximize flag. Comparing an unevaluated individual fails with
// ErrFitnessUnset; it is never silently treated as equal.
func (ind *Individual) Better(other *Individual) (bool, error) {
	if !ind.Evaluated || !other.Evaluated {
		return false, ErrFitnessUnset
	}
	if ind.Maximize {
		return ind.Fitness > other.Fitness, nil
	}
	return ind.Fitness < other.Fitness, nil
}

// Clone returns a deep copy of the individual.
func (ind *Individual) Clone() *Individual {
	out := &Individual{
		candidate: ind.candidate.Clone(),
		Fitness:   ind.Fitness,
		Evaluated: ind.Evaluated,
		Maximize:  ind.Maximize,
		Birthdate: ind.Birthdate,
	}
	if ind.Responses != nil {
		out.Responses = make(map[string]float64, len(ind.Responses))
		for k, v := range ind.Responses {
			out.Responses[k] = v
		}
	}
	return out
}

func (ind *Individual) String() string {
	if !ind.Evaluated {
		return fmt.Sprintf("%v : unevaluated", ind.candidate)
	}
	return fmt.Sprintf("%v : %g, %v", ind.candidate, ind.Fitness, ind.Responses)
}

// magnitude returns |fitness|, used by the historical positional
// replacement rule.
func (ind *Individual) magnitude() float64 {
	return math.Abs(ind.Fitness)
}
