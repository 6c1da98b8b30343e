package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 0, cfg.Verbosity)
	assert.False(t, cfg.JSON)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Empty(t, cfg.Rules)
	assert.False(t, cfg.Progress)
	assert.Empty(t, cfg.CPUProfile)
	assert.Equal(t, os.Stdout, cfg.Output)
	assert.Equal(t, os.Stderr, cfg.Log)
	assert.NoError(t, cfg.Validate())
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithJSONOutput(true).
		WithWorkers(3).
		WithRules("board", "game-ended").
		WithProgress(true).
		WithCPUProfile("/tmp/prof").
		WithOutput(&out).
		WithLog(&log).
		Build()

	assert.Equal(t, 2, cfg.Verbosity)
	assert.True(t, cfg.JSON)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"board", "game-ended"}, cfg.Rules)
	assert.True(t, cfg.Progress)
	assert.Equal(t, "/tmp/prof", cfg.CPUProfile)
	assert.Same(t, &out, cfg.Output)
	assert.Same(t, &log, cfg.Log)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"defaults", NewConfig(), false},
		{"one worker", NewConfigBuilder().WithWorkers(1).Build(), false},
		{"no workers", NewConfigBuilder().WithWorkers(0).Build(), true},
		{"negative verbosity", NewConfigBuilder().WithVerbosity(-1).Build(), true},
		{"known rules", NewConfigBuilder().WithRules("checkmate", "board").Build(), false},
		{"unknown rule", NewConfigBuilder().WithRules("castling").Build(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, chesserrors.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "verbosity: 1\njson: true\nworkers: 2\nrules: [board, game-ended]\nprogress: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Verbosity)
	assert.True(t, cfg.JSON)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"board", "game-ended"}, cfg.Rules)
	assert.True(t, cfg.Progress)
	assert.Equal(t, os.Stdout, cfg.Output)

	p, err := cfg.Pipeline()
	require.NoError(t, err)
	assert.Equal(t, []string{"board", "game-ended"}, p.Names())
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "json: true\n"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig().Workers, cfg.Workers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "workers: [not, a, number]\n"))
	assert.ErrorIs(t, err, chesserrors.ErrInvalidConfig)

	_, err = Load(writeConfig(t, "workers: 0\n"))
	assert.ErrorIs(t, err, chesserrors.ErrInvalidConfig)

	_, err = Load(writeConfig(t, "rules: [en-passant]\n"))
	assert.ErrorIs(t, err, chesserrors.ErrInvalidConfig)
}
