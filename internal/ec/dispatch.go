package ec

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Request carries everything a worker needs to evaluate one candidate.
// Workers receive their own candidate copy and a shallow copy of the
// run parameters, never references into the engine's mutable state.
// Params values are guaranteed transferable by configuration validation.
type Request struct {
	Candidate Candidate
	Params    map[string]any
}

// Objective evaluates a single candidate, returning its fitness and any
// named auxiliary responses. A returned error marks the candidate as
// non-evaluable; it is excluded downstream rather than aborting the run.
type Objective func(req Request) (float64, map[string]float64, error)

// Result is the outcome of one candidate evaluation. A non-nil Err
// means the fitness is undefined and the candidate must be excluded.
type Result struct {
	Fitness   float64
	Responses map[string]float64
	Err       error
}

// Evaluator evaluates a batch of candidates. The returned results are
// index-aligned with the submitted candidates. This is the only
// interface the engine requires from problem code.
type Evaluator interface {
	Evaluate(candidates []Candidate, cfg *Config) ([]Result, error)
}

// Pool dispatches candidate evaluations to a fixed-size worker pool.
// All evaluations within a batch are independent, so the batch is
// embarrassingly parallel; Evaluate blocks until the whole batch is
// done. There is no per-task retry and no per-evaluation timeout: a
// hung objective blocks its generation indefinitely.
type Pool struct {
	objective Objective
	workers   int
}

// NewPool creates a pool running the given objective on up to workers
// goroutines. A non-positive worker count defaults to the available
// hardware parallelism.
func NewPool(objective Objective, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{objective: objective, workers: workers}
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Evaluate runs one task per candidate on the worker pool and returns
// results realigned to the original submission order, regardless of
// completion order. A panicking objective is a pool-level fault and
// aborts the batch with a PoolError.
func (p *Pool) Evaluate(candidates []Candidate, cfg *Config) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(candidates))

	jobs := make(chan int)
	var wg sync.WaitGroup

	var faultOnce sync.Once
	var fault error

	workers := p.workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Keep draining jobs after a panic so that submission
			// never deadlocks; the fault still aborts the batch.
			for i := range jobs {
				func() {
					defer func() {
						if r := recover(); r != nil {
							faultOnce.Do(func() {
								fault = &PoolError{Cause: fmt.Errorf("worker panic: %v", r)}
							})
						}
					}()
					req := Request{
						Candidate: candidates[i].Clone(),
						Params:    cfg.params(),
					}
					fitness, responses, err := p.objective(req)
					results[i] = Result{Fitness: fitness, Responses: responses, Err: err}
				}()
			}
		}()
	}

	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if fault != nil {
		return nil, fault
	}

	slog.Debug("evaluated batch",
		"candidates", len(candidates),
		"workers", workers,
		"elapsed", time.Since(start),
	)
	return results, nil
}
