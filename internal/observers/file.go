package observers

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tsadreas/Optim-iterator/internal/ec"
)

// File writes two CSV files per run: a statistics file with one row per
// generation (worst, best, median, average, and standard deviation of
// fitness) and an individuals file with one row per population member
// per generation. It also records the per-generation best fitness
// series, which the convergence terminator reads.
type File struct {
	statsFile *os.File
	indsFile  *os.File
	stats     *csv.Writer
	inds      *csv.Writer

	params    []string
	responses []string
	best      []float64
}

// NewFile creates the observer, truncating both output files. The
// params and responses name lists fix the CSV column order.
func NewFile(statsPath, indsPath string, params, responses []string) (*File, error) {
	statsFile, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create statistics file: %w", err)
	}
	indsFile, err := os.Create(indsPath)
	if err != nil {
		statsFile.Close()
		return nil, fmt.Errorf("failed to create individuals file: %w", err)
	}
	return &File{
		statsFile: statsFile,
		indsFile:  indsFile,
		stats:     csv.NewWriter(statsFile),
		inds:      csv.NewWriter(indsFile),
		params:    params,
		responses: responses,
	}, nil
}

// Observe appends one statistics row and one row per individual, then
// flushes so the files track the run live.
func (o *File) Observe(population ec.Population, generations, evaluations int, cfg *ec.Config) error {
	stats, err := Statistics(population)
	if err != nil {
		return err
	}
	o.best = append(o.best, stats.Best)

	if generations == 0 {
		header := []string{"Gen", "Eval #", "Worst Fit", "Best Fit", "Median Fit", "Avg Fit", "Std Fit"}
		if err := o.stats.Write(header); err != nil {
			return fmt.Errorf("failed to write statistics header: %w", err)
		}
		header = []string{"Gen", "Ind"}
		header = append(header, o.params...)
		header = append(header, "Fitness")
		header = append(header, o.responses...)
		if err := o.inds.Write(header); err != nil {
			return fmt.Errorf("failed to write individuals header: %w", err)
		}
	}

	row := []string{
		strconv.Itoa(generations),
		strconv.Itoa(evaluations),
		formatFloat(stats.Worst),
		formatFloat(stats.Best),
		formatFloat(stats.Median),
		formatFloat(stats.Mean),
		formatFloat(stats.Std),
	}
	if err := o.stats.Write(row); err != nil {
		return fmt.Errorf("failed to write statistics row: %w", err)
	}

	for i, ind := range population {
		row := []string{strconv.Itoa(generations), strconv.Itoa(i)}
		candidate := ind.Candidate()
		for j := range o.params {
			var g float64
			if j < len(candidate) {
				g = candidate[j]
			}
			row = append(row, formatFloat(g))
		}
		row = append(row, formatFloat(ind.Fitness))
		for _, name := range o.responses {
			row = append(row, formatFloat(ind.Responses[name]))
		}
		if err := o.inds.Write(row); err != nil {
			return fmt.Errorf("failed to write individuals row: %w", err)
		}
	}

	o.stats.Flush()
	o.inds.Flush()
	if err := o.stats.Error(); err != nil {
		return fmt.Errorf("failed to flush statistics file: %w", err)
	}
	if err := o.inds.Error(); err != nil {
		return fmt.Errorf("failed to flush individuals file: %w", err)
	}
	return nil
}

// BestFitnesses returns the best fitness recorded at each observed
// generation. Implements the terminator's FitnessHistory.
func (o *File) BestFitnesses() []float64 {
	return o.best
}

// Close flushes and closes both files.
func (o *File) Close() error {
	o.stats.Flush()
	o.inds.Flush()
	if err := o.statsFile.Close(); err != nil {
		o.indsFile.Close()
		return fmt.Errorf("failed to close statistics file: %w", err)
	}
	if err := o.indsFile.Close(); err != nil {
		return fmt.Errorf("failed to close individuals file: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
