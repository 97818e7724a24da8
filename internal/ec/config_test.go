package ec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.PopSize)
	assert.Equal(t, 0.5, cfg.MutationScale)
	assert.Equal(t, 0.9, cfg.CrossoverRate)
	assert.True(t, cfg.Maximize)
}

func TestValidateRejectsBadOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"zero population", func(cfg *Config) { cfg.PopSize = 0 }},
		{"negative mutation scale", func(cfg *Config) { cfg.MutationScale = -0.1 }},
		{"crossover rate above one", func(cfg *Config) { cfg.CrossoverRate = 1.5 }},
		{"negative workers", func(cfg *Config) { cfg.Workers = -1 }},
		{"negative max evaluations", func(cfg *Config) { cfg.MaxEvaluations = -1 }},
		{"negative max generations", func(cfg *Config) { cfg.MaxGenerations = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestValidateRejectsNonTransferableExtra(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extra = map[string]any{
		"threshold": 0.5,
		"callback":  func() {},
	}

	err := cfg.Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Extra", cfgErr.Option)
}

func TestParamsIsIndependentCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extra = map[string]any{"threshold": 0.5}

	params := cfg.params()
	params["threshold"] = 99.0
	params["injected"] = true

	assert.Equal(t, 0.5, cfg.Extra["threshold"])
	assert.NotContains(t, cfg.Extra, "injected")

	cfg.Extra = nil
	assert.Nil(t, cfg.params())
}
