package observers

import (
	"time"

	"github.com/tsadreas/Optim-iterator/internal/ec"
	"github.com/tsadreas/Optim-iterator/internal/store"
)

// Trace appends one store.TraceEntry per generation, recording the
// generation's best fitness and candidate.
type Trace struct {
	Writer *store.TraceWriter

	// IncludeCandidate controls whether the best candidate vector is
	// written alongside the fitness.
	IncludeCandidate bool
}

func (t *Trace) Observe(population ec.Population, generations, evaluations int, cfg *ec.Config) error {
	best, err := population.Best()
	if err != nil {
		return err
	}
	entry := store.TraceEntry{
		Generation:  generations,
		Evaluations: evaluations,
		BestFitness: best.Fitness,
		Timestamp:   time.Now(),
	}
	if t.IncludeCandidate {
		entry.BestCandidate = best.Candidate().Clone()
	}
	if err := t.Writer.Write(entry); err != nil {
		return err
	}
	return t.Writer.Flush()
}
