package observers

import (
	"log/slog"

	"github.com/tsadreas/Optim-iterator/internal/ec"
)

// Slog logs a one-line generation summary at Info level.
type Slog struct{}

func (Slog) Observe(population ec.Population, generations, evaluations int, cfg *ec.Config) error {
	stats, err := Statistics(population)
	if err != nil {
		return err
	}
	slog.Info("generation complete",
		"generation", generations,
		"evaluations", evaluations,
		"population", len(population),
		"best_fit", stats.Best,
		"worst_fit", stats.Worst,
		"avg_fit", stats.Mean,
	)
	return nil
}
