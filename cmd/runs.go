package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsadreas/Optim-iterator/internal/store"
)

var (
	runsDataDir string
	showTrace   bool
	forceDelete bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage persisted optimization runs",
	Long: `List, inspect, and delete optimization runs saved under the data
directory. Each run keeps its record, generation trace, and CSV files.`,
}

var listRunsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all persisted runs",
	RunE:  runListRuns,
}

var showRunCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the record of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowRun,
}

var deleteRunCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run and its artifacts",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteRun,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(listRunsCmd)
	runsCmd.AddCommand(showRunCmd)
	runsCmd.AddCommand(deleteRunCmd)

	runsCmd.PersistentFlags().StringVar(&runsDataDir, "data", "./data", "Data directory for run artifacts")
	showRunCmd.Flags().BoolVar(&showTrace, "trace", false, "Include the generation trace")
	deleteRunCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Skip confirmation prompt")
}

func runListRuns(cmd *cobra.Command, args []string) error {
	runStore, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	infos, err := runStore.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(infos) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tALGORITHM\tPROBLEM\tBEST FIT\tGENS\tEVALS\tCAUSE\tSTARTED")
	fmt.Fprintln(w, "------\t---------\t-------\t--------\t----\t-----\t-----\t-------")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.6g\t%d\t%d\t%s\t%s\n",
			shortID(info.RunID),
			info.Algorithm,
			info.Problem,
			info.BestFitness,
			info.Generations,
			info.Evaluations,
			info.TerminationCause,
			info.StartTime.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Printf("\nTotal runs: %d\n", len(infos))
	return nil
}

func runShowRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	runStore, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	record, err := runStore.LoadRun(runID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	fmt.Printf("Run:         %s\n", record.RunID)
	fmt.Printf("Algorithm:   %s", record.Algorithm)
	if record.Strategy != "" {
		fmt.Printf(" (%s)", record.Strategy)
	}
	fmt.Println()
	fmt.Printf("Problem:     %s (%d dimensions, maximize=%t)\n", record.Problem, record.Dimensions, record.Maximize)
	fmt.Printf("Population:  %d, F=%g, CR=%g, seed=%d\n", record.PopSize, record.MutationScale, record.CrossoverRate, record.Seed)
	fmt.Printf("Best fit:    %g\n", record.BestFitness)
	fmt.Printf("Best cand:   %v\n", record.BestCandidate)
	fmt.Printf("Counters:    %d generations, %d evaluations\n", record.Generations, record.Evaluations)
	fmt.Printf("Termination: %s\n", record.TerminationCause)
	fmt.Printf("Started:     %s\n", record.StartTime.Format(time.RFC3339))
	if record.EndTime != nil {
		fmt.Printf("Ended:       %s (%s)\n", record.EndTime.Format(time.RFC3339),
			record.EndTime.Sub(record.StartTime).Round(time.Millisecond))
	}

	if !showTrace {
		return nil
	}

	reader, err := store.NewTraceReader(runsDataDir, runID)
	if err != nil {
		return fmt.Errorf("failed to open trace: %w", err)
	}
	defer reader.Close()

	entries, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read trace: %w", err)
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tEVALS\tBEST FIT")
	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%d\t%.6g\n", entry.Generation, entry.Evaluations, entry.BestFitness)
	}
	w.Flush()
	return nil
}

func runDeleteRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	runStore, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	record, err := runStore.LoadRun(runID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	if !forceDelete {
		fmt.Printf("Delete run %s (%s on %s, started %s)? [y/N]: ",
			shortID(record.RunID), record.Algorithm, record.Problem,
			record.StartTime.Format("2006-01-02 15:04:05"))
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := runStore.DeleteRun(runID); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	slog.Info("deleted run", "run_id", runID)
	fmt.Printf("Deleted run %s.\n", runID)
	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12] + "..."
	}
	return id
}
