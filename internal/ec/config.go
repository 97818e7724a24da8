package ec

import (
	"encoding/json"
	"fmt"
)

// Config holds the options recognized by the engine, as named, typed,
// defaulted fields. Anything problem-specific goes into Extra, which is
// forwarded unchanged to every operator and evaluation worker. The same
// Config value is threaded through the whole run.
type Config struct {
	// PopSize is the nominal population size NP. DE strategies need at
	// least 6 slots so that five distinct partners can be drawn.
	PopSize int

	// Maximize selects the direction of the fitness ordering.
	Maximize bool

	// MutationScale is the DE mutation scale F.
	MutationScale float64

	// CrossoverRate is the DE crossover rate CR.
	CrossoverRate float64

	// Workers is the evaluation pool size; 0 means hardware parallelism.
	Workers int

	// MaxEvaluations and MaxGenerations are termination thresholds read
	// by the corresponding terminator clauses; 0 disables the clause.
	MaxEvaluations int
	MaxGenerations int

	// Seeds are candidates inserted into the initial population before
	// the generator fills the remaining slots.
	Seeds []Candidate

	// Extra carries problem-specific parameters to operators and
	// evaluation workers. Every value must be transferable
	// (JSON-serializable); validation rejects anything else up front
	// instead of silently dropping it at dispatch time.
	Extra map[string]any
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		PopSize:       100,
		Maximize:      true,
		MutationScale: 0.5,
		CrossoverRate: 0.9,
	}
}

// Validate checks the configuration once, before any work begins.
func (c *Config) Validate() error {
	if c.PopSize <= 0 {
		return &ConfigError{Option: "PopSize", Reason: "must be positive"}
	}
	if c.MutationScale < 0 {
		return &ConfigError{Option: "MutationScale", Reason: "must not be negative"}
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return &ConfigError{Option: "CrossoverRate", Reason: "must be in [0, 1]"}
	}
	if c.Workers < 0 {
		return &ConfigError{Option: "Workers", Reason: "must not be negative"}
	}
	if c.MaxEvaluations < 0 {
		return &ConfigError{Option: "MaxEvaluations", Reason: "must not be negative"}
	}
	if c.MaxGenerations < 0 {
		return &ConfigError{Option: "MaxGenerations", Reason: "must not be negative"}
	}
	for key, value := range c.Extra {
		if _, err := json.Marshal(value); err != nil {
			return &ConfigError{
				Option: "Extra",
				Reason: fmt.Sprintf("value %q is not transferable: %v", key, err),
			}
		}
	}
	return nil
}

// params returns a shallow copy of Extra for one evaluation request.
func (c *Config) params() map[string]any {
	if c.Extra == nil {
		return nil
	}
	out := make(map[string]any, len(c.Extra))
	for k, v := range c.Extra {
		out[k] = v
	}
	return out
}
