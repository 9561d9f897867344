// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlab/statcalc/explain"
	"github.com/statlab/statcalc/internal/config"
	"github.com/statlab/statcalc/stats"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "statcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, explain.DefaultBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, stats.MaxSimulationPoints, cfg.Simulation.MaxPoints)
	assert.Equal(t, stats.MaxSimulationTrials, cfg.Simulation.MaxTrials)
	assert.Zero(t, cfg.Simulation.Seed)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
  write_timeout: 2m
llm:
  base_url: "http://localhost:11434/v1"
  model: "llama3"
  temperature: 0.7
logging:
  level: debug
  format: json
simulation:
  seed: 42
  max_points: 500
  max_trials: 50
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-12)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.Equal(t, 500, cfg.Simulation.MaxPoints)
	assert.Equal(t, 50, cfg.Simulation.MaxTrials)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STATCALC_SERVER_ADDR", ":7070")
	t.Setenv("STATCALC_LLM_MODEL", "env-model")
	t.Setenv("STATCALC_SIMULATION_SEED", "7")
	t.Setenv("OPENAI_API_KEY", "sk-from-openai")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "env-model", cfg.LLM.Model)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
	assert.Equal(t, "sk-from-openai", cfg.LLM.APIKey)
}

func TestLoadPrefixedKeyWins(t *testing.T) {
	t.Setenv("STATCALC_LLM_API_KEY", "sk-prefixed")
	t.Setenv("OPENAI_API_KEY", "sk-from-openai")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-prefixed", cfg.LLM.APIKey)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty addr", "server:\n  addr: \" \"\n", config.ErrInvalidAddr},
		{"zero timeout", "llm:\n  timeout: 0s\n", config.ErrInvalidTimeout},
		{"temperature", "llm:\n  temperature: 3\n", config.ErrInvalidTemperature},
		{"max tokens", "llm:\n  max_tokens: 0\n", config.ErrInvalidMaxTokens},
		{"log level", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"log format", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
		{"max points", "simulation:\n  max_points: 20000\n", config.ErrInvalidMaxPoints},
		{"max trials", "simulation:\n  max_trials: 5000\n", config.ErrInvalidMaxTrials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STATCALC_LLM_MODEL=dotenv-model\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("STATCALC_LLM_MODEL", "")
	require.NoError(t, os.Unsetenv("STATCALC_LLM_MODEL"))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-model", cfg.LLM.Model)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := config.ParseLevel("trace")
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "kind", "normal")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "normal", rec["kind"])

	buf.Reset()
	logger, err = config.NewLogger(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")

	_, err = config.NewLogger(config.LoggingConfig{Format: "xml"}, &buf)
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

func TestLLMClient(t *testing.T) {
	t.Parallel()

	c := config.LLMConfig{
		BaseURL:     "http://localhost:1/v1",
		APIKey:      "k",
		Model:       "m",
		Timeout:     time.Second,
		Temperature: 0.1,
		MaxTokens:   10,
	}.Client()

	assert.Equal(t, "http://localhost:1/v1", c.BaseURL)
	assert.Equal(t, "k", c.APIKey)
	assert.Equal(t, "m", c.Model)
	assert.Equal(t, time.Second, c.Timeout)
	assert.Equal(t, 10, c.MaxTokens)
}
