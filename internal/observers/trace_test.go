package observers

import (
	"testing"

	"github.com/tsadreas/Optim-iterator/internal/ec"
	"github.com/tsadreas/Optim-iterator/internal/store"
)

func TestTraceObserverWritesEntries(t *testing.T) {
	dir := t.TempDir()
	writer, err := store.NewTraceWriter(dir, "run-1", false)
	if err != nil {
		t.Fatalf("NewTraceWriter failed: %v", err)
	}

	obs := &Trace{Writer: writer, IncludeCandidate: true}
	cfg := ec.DefaultConfig()
	cfg.Maximize = false

	if err := obs.Observe(observedPopulation(5), 0, 3, &cfg); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if err := obs.Observe(observedPopulation(2), 1, 6, &cfg); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := store.NewTraceReader(dir, "run-1")
	if err != nil {
		t.Fatalf("NewTraceReader failed: %v", err)
	}
	defer reader.Close()

	entries, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 trace entries, got %d", len(entries))
	}
	if entries[0].Generation != 0 || entries[0].BestFitness != 5 {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Generation != 1 || entries[1].Evaluations != 6 {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
	if len(entries[0].BestCandidate) != 2 {
		t.Errorf("Expected best candidate in entry, got %v", entries[0].BestCandidate)
	}
}
