package ec

import "math"

// TerminateFunc tests whether the run should stop, given the current
// population snapshot and counters.
type TerminateFunc func(population Population, generations, evaluations int, cfg *Config) (bool, error)

// Terminator is a named termination clause. The engine combines its
// clauses with logical OR, testing them in declared order; the first
// clause to fire is recorded as the termination cause.
type Terminator struct {
	Name string
	Test TerminateFunc
}

// EvaluationTermination stops the run once the cumulative evaluation
// count reaches cfg.MaxEvaluations. Because termination is only checked
// between generations, the overshoot is bounded by one batch.
func EvaluationTermination() Terminator {
	return Terminator{
		Name: "evaluation_termination",
		Test: func(population Population, generations, evaluations int, cfg *Config) (bool, error) {
			return cfg.MaxEvaluations > 0 && evaluations >= cfg.MaxEvaluations, nil
		},
	}
}

// GenerationTermination stops the run once cfg.MaxGenerations
// generations have completed.
func GenerationTermination() Terminator {
	return Terminator{
		Name: "generation_termination",
		Test: func(population Population, generations, evaluations int, cfg *Config) (bool, error) {
			return cfg.MaxGenerations > 0 && generations >= cfg.MaxGenerations, nil
		},
	}
}

// FitnessHistory provides the per-generation best-fitness series
// recorded so far, typically by an observer.
type FitnessHistory interface {
	BestFitnesses() []float64
}

// ConvergenceTermination stops the run when the best fitness has
// plateaued: the last two recorded values differ by no more than
// |last|*tol, and the latest value is also the best ever recorded. The
// second condition distinguishes a genuine plateau from transient
// stagnation. The clause stays silent until more than three generations
// have been recorded.
func ConvergenceTermination(history FitnessHistory, tol float64) Terminator {
	return Terminator{
		Name: "convergence_termination",
		Test: func(population Population, generations, evaluations int, cfg *Config) (bool, error) {
			fit := history.BestFitnesses()
			if len(fit) <= 3 {
				return false, nil
			}
			last, prev := fit[len(fit)-1], fit[len(fit)-2]
			if math.Abs(last-prev) > math.Abs(last*tol) {
				return false, nil
			}
			if cfg.Maximize {
				return last >= prev && last >= maxOf(fit), nil
			}
			return last <= prev && last <= minOf(fit), nil
		},
	}
}

func maxOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		out = math.Max(out, v)
	}
	return out
}

func minOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		out = math.Min(out, v)
	}
	return out
}
