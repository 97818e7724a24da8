// Package observers provides generation observers: CSV statistics and
// individuals files, structured log output, and a JSONL trace bridge.
// All persisted run artifacts are produced here, outside the engine.
package observers

import (
	"math"
	"sort"

	"github.com/tsadreas/Optim-iterator/internal/ec"
)

// Stats summarizes the fitness distribution of one generation. Best and
// Worst respect the population's maximize flag.
type Stats struct {
	Worst  float64
	Best   float64
	Median float64
	Mean   float64
	Std    float64
}

// Statistics computes fitness statistics for the population. Fails if
// the population is empty or any member is unevaluated.
func Statistics(population ec.Population) (Stats, error) {
	if len(population) == 0 {
		return Stats{}, ec.ErrFitnessUnset
	}
	fits := make([]float64, len(population))
	for i, ind := range population {
		if !ind.Evaluated {
			return Stats{}, ec.ErrFitnessUnset
		}
		fits[i] = ind.Fitness
	}

	sorted := append([]float64(nil), fits...)
	sort.Float64s(sorted)

	var mean float64
	for _, f := range fits {
		mean += f
	}
	mean /= float64(len(fits))

	var variance float64
	for _, f := range fits {
		variance += (f - mean) * (f - mean)
	}
	variance /= float64(len(fits))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	stats := Stats{
		Median: median,
		Mean:   mean,
		Std:    math.Sqrt(variance),
	}
	if population[0].Maximize {
		stats.Best = sorted[len(sorted)-1]
		stats.Worst = sorted[0]
	} else {
		stats.Best = sorted[0]
		stats.Worst = sorted[len(sorted)-1]
	}
	return stats, nil
}
