package observers

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsadreas/Optim-iterator/internal/ec"
)

func setupFileObserver(t *testing.T) (*File, string, string) {
	t.Helper()

	dir := t.TempDir()
	statsPath := filepath.Join(dir, "statistics.csv")
	indsPath := filepath.Join(dir, "individuals.csv")

	obs, err := NewFile(statsPath, indsPath, []string{"x1", "x2"}, []string{"r1"})
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	return obs, statsPath, indsPath
}

func observedPopulation(fitness float64) ec.Population {
	pop := make(ec.Population, 3)
	for i := range pop {
		ind := ec.NewIndividual(ec.Candidate{0.1, 0.2}, false)
		ind.SetFitness(fitness+float64(i), map[string]float64{"r1": fitness * 2})
		pop[i] = ind
	}
	return pop
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return rows
}

func TestFileObserverWritesBothFiles(t *testing.T) {
	obs, statsPath, indsPath := setupFileObserver(t)

	cfg := ec.DefaultConfig()
	if err := obs.Observe(observedPopulation(5), 0, 3, &cfg); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if err := obs.Observe(observedPopulation(4), 1, 6, &cfg); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if err := obs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	stats := readCSV(t, statsPath)
	if len(stats) != 3 {
		t.Fatalf("Expected header plus 2 statistics rows, got %d rows", len(stats))
	}
	wantHeader := []string{"Gen", "Eval #", "Worst Fit", "Best Fit", "Median Fit", "Avg Fit", "Std Fit"}
	for i, col := range wantHeader {
		if stats[0][i] != col {
			t.Errorf("Statistics header column %d: expected %q, got %q", i, col, stats[0][i])
		}
	}
	if stats[1][0] != "0" || stats[1][1] != "3" {
		t.Errorf("Unexpected first statistics row: %v", stats[1])
	}

	inds := readCSV(t, indsPath)
	// Header plus 3 individuals for each of 2 generations.
	if len(inds) != 7 {
		t.Fatalf("Expected 7 individuals rows, got %d", len(inds))
	}
	wantHeader = []string{"Gen", "Ind", "x1", "x2", "Fitness", "r1"}
	for i, col := range wantHeader {
		if inds[0][i] != col {
			t.Errorf("Individuals header column %d: expected %q, got %q", i, col, inds[0][i])
		}
	}
	if len(inds[1]) != 6 {
		t.Errorf("Expected 6 columns per individuals row, got %d", len(inds[1]))
	}
}

func TestFileObserverRecordsBestSeries(t *testing.T) {
	obs, _, _ := setupFileObserver(t)
	defer obs.Close()

	cfg := ec.DefaultConfig()
	cfg.Maximize = false
	if err := obs.Observe(observedPopulation(5), 0, 3, &cfg); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}
	if err := obs.Observe(observedPopulation(2), 1, 6, &cfg); err != nil {
		t.Fatalf("Observe failed: %v", err)
	}

	best := obs.BestFitnesses()
	if len(best) != 2 {
		t.Fatalf("Expected 2 recorded generations, got %d", len(best))
	}
	if best[0] != 5 || best[1] != 2 {
		t.Errorf("Unexpected best series: %v", best)
	}
}

func TestFileObserverUnevaluatedFails(t *testing.T) {
	obs, _, _ := setupFileObserver(t)
	defer obs.Close()

	cfg := ec.DefaultConfig()
	pop := ec.Population{ec.NewIndividual(ec.Candidate{0.1, 0.2}, false)}
	if err := obs.Observe(pop, 0, 1, &cfg); err == nil {
		t.Fatal("Expected error for unevaluated population")
	}
}
