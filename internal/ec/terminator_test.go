package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fitnessStub []float64

func (s fitnessStub) BestFitnesses() []float64 { return s }

func TestEvaluationTermination(t *testing.T) {
	term := EvaluationTermination()
	cfg := &Config{MaxEvaluations: 100}

	stop, err := term.Test(nil, 5, 99, cfg)
	require.NoError(t, err)
	assert.False(t, stop)

	stop, err = term.Test(nil, 5, 100, cfg)
	require.NoError(t, err)
	assert.True(t, stop)

	// Zero disables the clause.
	stop, err = term.Test(nil, 5, 1000, &Config{})
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestGenerationTermination(t *testing.T) {
	term := GenerationTermination()
	cfg := &Config{MaxGenerations: 10}

	stop, err := term.Test(nil, 9, 0, cfg)
	require.NoError(t, err)
	assert.False(t, stop)

	stop, err = term.Test(nil, 10, 0, cfg)
	require.NoError(t, err)
	assert.True(t, stop)

	stop, err = term.Test(nil, 1000, 0, &Config{})
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestConvergenceSilentUntilFourGenerations(t *testing.T) {
	term := ConvergenceTermination(fitnessStub{5, 5, 5}, 0.01)

	stop, err := term.Test(nil, 2, 0, &Config{})
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestConvergenceFiresOnPlateauAtBestEver(t *testing.T) {
	term := ConvergenceTermination(fitnessStub{10, 6, 4, 4}, 0.01)

	stop, err := term.Test(nil, 3, 0, &Config{Maximize: false})
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestConvergenceIgnoresTransientStagnation(t *testing.T) {
	// The series plateaued at 4, but 3 was seen earlier, so the plateau
	// is not at the best-ever value.
	term := ConvergenceTermination(fitnessStub{10, 3, 4, 4}, 0.01)

	stop, err := term.Test(nil, 3, 0, &Config{Maximize: false})
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestConvergenceRespectsTolerance(t *testing.T) {
	term := ConvergenceTermination(fitnessStub{10, 6, 5, 4}, 0.01)

	// |4 - 5| is far above |4| * 0.01.
	stop, err := term.Test(nil, 3, 0, &Config{Maximize: false})
	require.NoError(t, err)
	assert.False(t, stop)

	// A looser tolerance accepts the same step.
	loose := ConvergenceTermination(fitnessStub{10, 6, 5, 4}, 0.5)
	stop, err = loose.Test(nil, 3, 0, &Config{Maximize: false})
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestConvergenceMaximize(t *testing.T) {
	term := ConvergenceTermination(fitnessStub{1, 7, 9, 9}, 0.01)

	stop, err := term.Test(nil, 3, 0, &Config{Maximize: true})
	require.NoError(t, err)
	assert.True(t, stop)
}
