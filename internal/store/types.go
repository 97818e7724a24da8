package store

import (
	"time"
)

// RunRecord is the persisted outcome of one optimization run: the
// configuration echo needed to reproduce it, the best solution found,
// and the run counters.
type RunRecord struct {
	// RunID uniquely identifies the run.
	RunID string `json:"runId"`

	// Algorithm is the engine flavor, e.g. "dea", "ga", "pso".
	Algorithm string `json:"algorithm"`

	// Strategy is the DE strategy notation, empty for non-DE runs.
	Strategy string `json:"strategy,omitempty"`

	// Problem names the objective that was optimized.
	Problem string `json:"problem"`

	Dimensions    int     `json:"dimensions"`
	PopSize       int     `json:"popSize"`
	Maximize      bool    `json:"maximize"`
	MutationScale float64 `json:"mutationScale,omitempty"`
	CrossoverRate float64 `json:"crossoverRate,omitempty"`
	Seed          int64   `json:"seed"`

	// BestCandidate and BestFitness describe the best individual of the
	// final population.
	BestCandidate []float64 `json:"bestCandidate"`
	BestFitness   float64   `json:"bestFitness"`

	Generations      int    `json:"generations"`
	Evaluations      int    `json:"evaluations"`
	TerminationCause string `json:"terminationCause"`

	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// RunInfo is run metadata without the candidate payload, for listings.
type RunInfo struct {
	RunID            string    `json:"runId"`
	Algorithm        string    `json:"algorithm"`
	Problem          string    `json:"problem"`
	BestFitness      float64   `json:"bestFitness"`
	Generations      int       `json:"generations"`
	Evaluations      int       `json:"evaluations"`
	TerminationCause string    `json:"terminationCause"`
	StartTime        time.Time `json:"startTime"`
}

// ToInfo converts a full RunRecord to its listing metadata.
func (r *RunRecord) ToInfo() RunInfo {
	return RunInfo{
		RunID:            r.RunID,
		Algorithm:        r.Algorithm,
		Problem:          r.Problem,
		BestFitness:      r.BestFitness,
		Generations:      r.Generations,
		Evaluations:      r.Evaluations,
		TerminationCause: r.TerminationCause,
		StartTime:        r.StartTime,
	}
}

// Validate checks that the record has the fields every consumer relies on.
func (r *RunRecord) Validate() error {
	if r.RunID == "" {
		return &ValidationError{Field: "RunID", Reason: "cannot be empty"}
	}
	if r.Algorithm == "" {
		return &ValidationError{Field: "Algorithm", Reason: "cannot be empty"}
	}
	if r.Problem == "" {
		return &ValidationError{Field: "Problem", Reason: "cannot be empty"}
	}
	if len(r.BestCandidate) == 0 {
		return &ValidationError{Field: "BestCandidate", Reason: "cannot be empty"}
	}
	if r.Dimensions > 0 && len(r.BestCandidate) != r.Dimensions {
		return &ValidationError{Field: "BestCandidate", Reason: "length does not match dimensions"}
	}
	if r.PopSize <= 0 {
		return &ValidationError{Field: "PopSize", Reason: "must be positive"}
	}
	if r.Generations < 0 {
		return &ValidationError{Field: "Generations", Reason: "cannot be negative"}
	}
	if r.Evaluations < 0 {
		return &ValidationError{Field: "Evaluations", Reason: "cannot be negative"}
	}
	if r.StartTime.IsZero() {
		return &ValidationError{Field: "StartTime", Reason: "cannot be zero"}
	}
	return nil
}

// ValidationError represents a run record validation error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}
