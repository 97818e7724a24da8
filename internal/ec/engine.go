package ec

import (
	"context"
	"log/slog"
	"math/rand"
)

// Generator produces one candidate for an initial-population slot.
type Generator func(rng *rand.Rand, cfg *Config) Candidate

// Observer is notified with a population snapshot at generation 0 and
// after every subsequent generation. The snapshot is a deep copy and
// safe to retain. An observer error is fatal and aborts the run.
type Observer interface {
	Observe(population Population, generations, evaluations int, cfg *Config) error
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(population Population, generations, evaluations int, cfg *Config) error

func (f ObserverFunc) Observe(population Population, generations, evaluations int, cfg *Config) error {
	return f(population, generations, evaluations, cfg)
}

// State is a read view over the current run handed to variators.
type State struct {
	Population  Population
	Archive     Population
	Generations int
	Evaluations int
}

// RunState is the explicit result of a run: the final population and
// archive plus the counters and the recorded termination cause. The
// engine's live internals are never exposed.
type RunState struct {
	Population       Population
	Archive          Population
	Generations      int
	Evaluations      int
	TerminationCause string
}

// Best returns the best individual of the final population.
func (rs *RunState) Best() (*Individual, error) {
	return rs.Population.Best()
}

// Engine is the generational loop controller. It owns the population,
// archive, and counters exclusively; operators and observers only ever
// see copies or read views.
//
// Offspring are produced either by the DE strategy engine (when
// Strategy is set) or by the Selector/Variators pipeline. Variation is
// single-threaded and consumes the shared random stream in slot order,
// so runs are reproducible for a fixed seed; evaluation of each batch
// is the single parallel (and single blocking) step per generation.
type Engine struct {
	Strategy    *Strategy
	Selector    Selector
	Variators   []Variator
	Replacer    Replacer
	Archiver    Archiver
	Terminators []Terminator
	Observers   []Observer

	rng *rand.Rand
}

// New creates a generic engine: whole-population selection, ranked
// steady-state replacement, and a global-best archive. Callers add
// variators, terminators, and observers as needed.
func New(rng *rand.Rand) *Engine {
	return &Engine{
		Selector: SelectAll{},
		Replacer: RankedReplacer{},
		Archiver: GlobalBestArchiver{},
		rng:      rng,
	}
}

// NewDEA creates an engine running the given DE strategy with
// positional replacement under the historical magnitude rule and a
// global-best archive. Strategies need a population of more than 6.
func NewDEA(rng *rand.Rand, strategy Strategy) *Engine {
	e := New(rng)
	e.Strategy = &strategy
	e.Replacer = &PositionalReplacer{Comparison: CompareMagnitude}
	return e
}

// Evolve runs the evolution until a termination clause fires, then
// returns the final run state. Context cancellation is honored between
// generations only and returns the provisional state with ErrAborted;
// there is no mid-batch cancellation.
func (e *Engine) Evolve(ctx context.Context, generator Generator, evaluator Evaluator, cfg Config) (*RunState, error) {
	if evaluator == nil {
		return nil, &ConfigError{Option: "evaluator", Reason: "is required"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if e.Strategy != nil {
		if err := e.Strategy.Validate(); err != nil {
			return nil, err
		}
	}
	if generator == nil && len(cfg.Seeds) < cfg.PopSize {
		return nil, &ConfigError{Option: "generator", Reason: "is required when seeds do not fill the population"}
	}

	// Build and evaluate the initial population as one batch.
	initial := make([]Candidate, 0, cfg.PopSize)
	for _, seed := range cfg.Seeds {
		initial = append(initial, seed.Clone())
	}
	for len(initial) < cfg.PopSize {
		initial = append(initial, generator(e.rng, &cfg))
	}
	slog.Debug("evaluating initial population", "candidates", len(initial))
	results, err := evaluator.Evaluate(initial, &cfg)
	if err != nil {
		return nil, err
	}

	population := make(Population, 0, len(initial))
	for i, res := range results {
		if res.Err != nil {
			slog.Warn("excluding candidate, fitness is undefined",
				"candidate", initial[i], "error", res.Err)
			continue
		}
		ind := NewIndividual(initial[i], cfg.Maximize)
		ind.SetFitness(res.Fitness, res.Responses)
		population = append(population, ind)
	}
	evaluations := len(results)
	generations := 0
	slog.Debug("initial population built", "size", len(population))

	archive, err := e.updateArchive(population, nil, &cfg)
	if err != nil {
		return nil, err
	}
	if err := e.notify(population, generations, evaluations, &cfg); err != nil {
		return nil, err
	}

	var cause string
	for {
		stop, name, err := e.shouldTerminate(population, generations, evaluations, &cfg)
		if err != nil {
			return nil, err
		}
		if stop {
			cause = name
			slog.Debug("termination", "cause", cause, "generation", generations, "evaluations", evaluations)
			break
		}
		state := &RunState{
			Population:  population,
			Archive:     archive,
			Generations: generations,
			Evaluations: evaluations,
		}
		if ctx.Err() != nil {
			state.TerminationCause = "user_abort"
			state.Population = population.Clone()
			state.Archive = archive.Clone()
			return state, ErrAborted
		}

		parents, offspringCS, err := e.vary(population, archive, generations, evaluations, &cfg)
		if err != nil {
			return nil, err
		}

		results, err := evaluator.Evaluate(offspringCS, &cfg)
		if err != nil {
			return nil, err
		}
		offspring := make(Population, len(results))
		for i, res := range results {
			if res.Err != nil {
				slog.Warn("excluding candidate, fitness is undefined",
					"candidate", offspringCS[i], "error", res.Err)
				continue
			}
			ind := NewIndividual(offspringCS[i], cfg.Maximize)
			ind.SetFitness(res.Fitness, res.Responses)
			offspring[i] = ind
		}
		evaluations += len(results)

		population, err = e.Replacer.Replace(e.rng, population, parents, offspring, &cfg)
		if err != nil {
			return nil, err
		}
		archive, err = e.updateArchive(population, archive, &cfg)
		if err != nil {
			return nil, err
		}
		generations++

		if err := e.notify(population, generations, evaluations, &cfg); err != nil {
			return nil, err
		}
	}

	return &RunState{
		Population:       population.Clone(),
		Archive:          archive.Clone(),
		Generations:      generations,
		Evaluations:      evaluations,
		TerminationCause: cause,
	}, nil
}

// vary produces one batch of offspring candidates, slot-aligned with
// the returned parents.
func (e *Engine) vary(population, archive Population, generations, evaluations int, cfg *Config) (Population, []Candidate, error) {
	if e.Strategy != nil {
		best, err := e.globalBest(population, archive)
		if err != nil {
			return nil, nil, err
		}
		offspringCS, err := e.Strategy.Variate(e.rng, population.Candidates(), best.Candidate(), cfg.MutationScale, cfg.CrossoverRate)
		if err != nil {
			return nil, nil, err
		}
		return population, offspringCS, nil
	}

	parents, err := e.Selector.Select(e.rng, population, cfg)
	if err != nil {
		return nil, nil, err
	}
	offspringCS := parents.Candidates()
	state := &State{
		Population:  population,
		Archive:     archive,
		Generations: generations,
		Evaluations: evaluations,
	}
	for _, v := range e.Variators {
		offspringCS, err = v.Vary(e.rng, offspringCS, state, cfg)
		if err != nil {
			return nil, nil, err
		}
	}
	return parents, offspringCS, nil
}

// globalBest reads the base vector for best-based strategies from the
// archive, falling back to the population when the archive is empty.
func (e *Engine) globalBest(population, archive Population) (*Individual, error) {
	if len(archive) > 0 {
		return archive.Best()
	}
	return population.Best()
}

func (e *Engine) updateArchive(population, archive Population, cfg *Config) (Population, error) {
	if e.Archiver == nil {
		return archive, nil
	}
	return e.Archiver.Archive(e.rng, population, archive, cfg)
}

// shouldTerminate ORs the termination clauses in declared order and
// short-circuits on the first clause that fires.
func (e *Engine) shouldTerminate(population Population, generations, evaluations int, cfg *Config) (bool, string, error) {
	// With no clauses configured the run stops immediately rather than
	// looping forever.
	if len(e.Terminators) == 0 {
		return true, "default_termination", nil
	}
	for _, t := range e.Terminators {
		stop, err := t.Test(population, generations, evaluations, cfg)
		if err != nil {
			return false, "", err
		}
		if stop {
			return true, t.Name, nil
		}
	}
	return false, "", nil
}

func (e *Engine) notify(population Population, generations, evaluations int, cfg *Config) error {
	if len(e.Observers) == 0 {
		return nil
	}
	snapshot := population.Clone()
	for _, obs := range e.Observers {
		if err := obs.Observe(snapshot, generations, evaluations, cfg); err != nil {
			return err
		}
	}
	return nil
}
