package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tsadreas/Optim-iterator/internal/benchmarks"
	"github.com/tsadreas/Optim-iterator/internal/ec"
	"github.com/tsadreas/Optim-iterator/internal/observers"
	"github.com/tsadreas/Optim-iterator/internal/store"
	"github.com/tsadreas/Optim-iterator/internal/swarm"
)

var (
	problemName  string
	algorithm    string
	strategyName string
	dims         int
	popSize      int
	mutScale     float64
	crossRate    float64
	maxEvals     int
	maxGens      int
	tol          float64
	workers      int
	seed         int64
	dataDir      string
	maximizeObj  bool
	magnitudeCmp bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single optimization",
	Long: `Runs one optimization of a benchmark problem and writes the run
record, the generation trace, and the statistics and individuals CSV files
under the data directory.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&problemName, "problem", "styblinski-tang", "Benchmark problem: styblinski-tang, sphere")
	runCmd.Flags().StringVar(&algorithm, "algorithm", "dea", "Algorithm: dea, ga, pso")
	runCmd.Flags().StringVar(&strategyName, "strategy", "DE/best/2/exp", "DE strategy (dea only)")
	runCmd.Flags().IntVar(&dims, "dims", 4, "Problem dimensions")
	runCmd.Flags().IntVar(&popSize, "pop", 12, "Population size")
	runCmd.Flags().Float64Var(&mutScale, "mutation-scale", 0.5, "Mutation scale F")
	runCmd.Flags().Float64Var(&crossRate, "crossover-rate", 0.9, "Crossover rate CR")
	runCmd.Flags().IntVar(&maxEvals, "max-evals", 100, "Stop after this many evaluations (0 = disabled)")
	runCmd.Flags().IntVar(&maxGens, "max-gens", 0, "Stop after this many generations (0 = disabled)")
	runCmd.Flags().Float64Var(&tol, "tol", 0, "Convergence tolerance (0 = disabled)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Evaluation workers (0 = all CPUs)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	runCmd.Flags().StringVar(&dataDir, "data", "./data", "Data directory for run artifacts")
	runCmd.Flags().BoolVar(&maximizeObj, "maximize", false, "Maximize instead of minimize")
	runCmd.Flags().BoolVar(&magnitudeCmp, "magnitude-replacement", false, "Use the legacy |fitness| replacement rule (dea only)")

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	problem, err := benchmarks.ByName(problemName, dims)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))

	engine, strategy, err := buildEngine(rng, problem)
	if err != nil {
		return err
	}

	fsStore, err := store.NewFSStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	runID := uuid.New().String()
	runDir := fsStore.RunDir(runID)

	trace, err := store.NewTraceWriter(dataDir, runID, false)
	if err != nil {
		return fmt.Errorf("failed to create trace: %w", err)
	}
	defer trace.Close()

	params := make([]string, dims)
	for i := range params {
		params[i] = fmt.Sprintf("x%d", i+1)
	}
	fileObs, err := observers.NewFile(
		filepath.Join(runDir, "statistics.csv"),
		filepath.Join(runDir, "individuals.csv"),
		params, problem.Responses,
	)
	if err != nil {
		return fmt.Errorf("failed to create file observer: %w", err)
	}
	defer fileObs.Close()

	engine.Observers = []ec.Observer{
		fileObs,
		&observers.Trace{Writer: trace, IncludeCandidate: true},
		observers.Slog{},
	}
	if maxEvals > 0 {
		engine.Terminators = append(engine.Terminators, ec.EvaluationTermination())
	}
	if maxGens > 0 {
		engine.Terminators = append(engine.Terminators, ec.GenerationTermination())
	}
	if tol > 0 {
		engine.Terminators = append(engine.Terminators, ec.ConvergenceTermination(fileObs, tol))
	}

	cfg := ec.DefaultConfig()
	cfg.PopSize = popSize
	cfg.Maximize = maximizeObj || problem.Maximize
	cfg.MutationScale = mutScale
	cfg.CrossoverRate = crossRate
	cfg.Workers = workers
	cfg.MaxEvaluations = maxEvals
	cfg.MaxGenerations = maxGens

	pool := ec.NewPool(problem.Objective, workers)

	slog.Info("starting optimization",
		"run_id", runID,
		"problem", problem.Name,
		"algorithm", algorithm,
		"strategy", strategy,
		"pop", popSize,
		"dims", dims,
		"workers", pool.Workers(),
	)

	// Ctrl-C ends the run early with a provisional population.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	state, err := engine.Evolve(ctx, problem.Generate, pool, cfg)
	if err != nil && !errors.Is(err, ec.ErrAborted) {
		return fmt.Errorf("evolution failed: %w", err)
	}
	aborted := errors.Is(err, ec.ErrAborted)
	if aborted {
		slog.Warn("run aborted, population is provisional", "run_id", runID)
	}
	elapsed := time.Since(start)

	best, bestErr := state.Best()
	if bestErr != nil {
		return fmt.Errorf("no evaluable individuals survived: %w", bestErr)
	}

	endTime := time.Now()
	record := &store.RunRecord{
		RunID:            runID,
		Algorithm:        algorithm,
		Strategy:         strategy,
		Problem:          problem.Name,
		Dimensions:       dims,
		PopSize:          popSize,
		Maximize:         cfg.Maximize,
		MutationScale:    mutScale,
		CrossoverRate:    crossRate,
		Seed:             seed,
		BestCandidate:    best.Candidate(),
		BestFitness:      best.Fitness,
		Generations:      state.Generations,
		Evaluations:      state.Evaluations,
		TerminationCause: state.TerminationCause,
		StartTime:        start,
		EndTime:          &endTime,
	}
	if err := fsStore.SaveRun(runID, record); err != nil {
		return fmt.Errorf("failed to save run record: %w", err)
	}

	slog.Info("optimization complete",
		"run_id", runID,
		"elapsed", elapsed,
		"generations", state.Generations,
		"evaluations", state.Evaluations,
		"termination", state.TerminationCause,
		"best_fit", best.Fitness,
	)

	printReport(record, fileObs.BestFitnesses(), elapsed)
	return nil
}

// buildEngine assembles the engine for the requested algorithm and
// returns it with the strategy notation used (empty for non-DE runs).
func buildEngine(rng *rand.Rand, problem *benchmarks.Problem) (*ec.Engine, string, error) {
	switch algorithm {
	case "dea":
		strategy, err := ec.ParseStrategy(strategyName)
		if err != nil {
			return nil, "", err
		}
		engine := ec.NewDEA(rng, strategy)
		if !magnitudeCmp {
			engine.Replacer = &ec.PositionalReplacer{Comparison: ec.CompareOrdered}
		}
		return engine, strategy.String(), nil
	case "ga":
		engine := ec.New(rng)
		engine.Selector = &ec.TournamentSelector{Size: 2}
		engine.Variators = []ec.Variator{
			&ec.NPointCrossover{Points: 2, Rate: crossRate},
			&ec.GaussianMutation{Rate: mutScale, Stdev: 1, Bounder: problem.Bounder},
		}
		return engine, "", nil
	case "pso":
		return swarm.NewEngine(rng, problem.Bounder), "", nil
	default:
		return nil, "", fmt.Errorf("unknown algorithm: %s", algorithm)
	}
}

// printReport writes the human-readable run summary to stdout: the
// initial and final best fitness and the wall-clock time.
func printReport(record *store.RunRecord, bestHistory []float64, elapsed time.Duration) {
	fmt.Printf("Run %s (%s", record.RunID, record.Algorithm)
	if record.Strategy != "" {
		fmt.Printf(" %s", record.Strategy)
	}
	fmt.Printf(" on %s)\n", record.Problem)
	if len(bestHistory) > 0 {
		fmt.Printf("Initial best fitness: %g\n", bestHistory[0])
	}
	fmt.Printf("Final best fitness:   %g\n", record.BestFitness)
	fmt.Printf("Best candidate:       %v\n", record.BestCandidate)
	fmt.Printf("Generations: %d, evaluations: %d, cause: %s\n",
		record.Generations, record.Evaluations, record.TerminationCause)
	fmt.Printf("Calculation time: %s\n", elapsed.Round(time.Millisecond))
}
