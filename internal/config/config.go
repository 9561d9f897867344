// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads statcalc configuration from defaults, an
// optional YAML file, a .env file and STATCALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/statlab/statcalc/explain"
	"github.com/statlab/statcalc/stats"
)

// Sentinel validation errors.
var (
	ErrInvalidAddr        = errors.New("server address must not be empty")
	ErrInvalidTimeout     = errors.New("timeout must be positive")
	ErrInvalidTemperature = errors.New("llm temperature must be in [0, 2]")
	ErrInvalidMaxTokens   = errors.New("llm max tokens must be positive")
	ErrInvalidLogLevel    = errors.New("unknown log level")
	ErrInvalidLogFormat   = errors.New("unknown log format")
	ErrInvalidMaxPoints   = errors.New("simulation max points out of range")
	ErrInvalidMaxTrials   = errors.New("simulation max trials out of range")
)

// EnvPrefix prefixes every environment override, so llm.api_key is
// read from STATCALC_LLM_API_KEY.
const EnvPrefix = "STATCALC"

const (
	defaultAddr      = ":8080"
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1024
	maxTemperature   = 2
)

// Config holds all statcalc configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// LLMConfig holds the language-model endpoint configuration.
type LLMConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SimulationConfig holds data simulator configuration.
type SimulationConfig struct {
	// Seed seeds the simulator. Zero means a fresh random seed per
	// run.
	Seed      uint64 `mapstructure:"seed"`
	MaxPoints int    `mapstructure:"max_points"`

	// MaxTrials bounds the trials behind each simulated binomial
	// value.
	MaxTrials int `mapstructure:"max_trials"`
}

// Load reads configuration. If configPath is empty, config.yaml is
// looked up in the working directory and in ./config; a missing file
// is not an error. A .env file in the working directory, if present,
// is loaded into the environment first without overriding variables
// that are already set.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("llm.api_key", EnvPrefix+"_LLM_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", defaultAddr)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")

	v.SetDefault("llm.base_url", explain.DefaultBaseURL)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", defaultModel)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", defaultMaxTokens)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.max_points", stats.MaxSimulationPoints)
	v.SetDefault("simulation.max_trials", stats.MaxSimulationTrials)
}

// Validate checks cfg for values the rest of statcalc cannot use.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrInvalidAddr
	}
	for name, d := range map[string]time.Duration{
		"server.read_timeout":  cfg.Server.ReadTimeout,
		"server.write_timeout": cfg.Server.WriteTimeout,
		"server.idle_timeout":  cfg.Server.IdleTimeout,
		"llm.timeout":          cfg.LLM.Timeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidTimeout, name, d)
		}
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > maxTemperature {
		return fmt.Errorf("%w: %v", ErrInvalidTemperature, cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxTokens, cfg.LLM.MaxTokens)
	}
	if _, err := ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w %q", ErrInvalidLogFormat, cfg.Logging.Format)
	}
	if cfg.Simulation.MaxPoints < 1 || cfg.Simulation.MaxPoints > stats.MaxSimulationPoints {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidMaxPoints, cfg.Simulation.MaxPoints, stats.MaxSimulationPoints)
	}
	if cfg.Simulation.MaxTrials < 1 || cfg.Simulation.MaxTrials > stats.MaxSimulationTrials {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidMaxTrials, cfg.Simulation.MaxTrials, stats.MaxSimulationTrials)
	}
	return nil
}

// ParseLevel parses a log level name: debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidLogLevel, s)
}

// NewLogger returns a logger writing to w in the configured format at
// the configured level.
func NewLogger(cfg LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch cfg.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidLogFormat, cfg.Format)
	}
	return slog.New(h), nil
}

// Client returns the language-model client described by cfg.
func (cfg LLMConfig) Client() *explain.OpenAIClient {
	return &explain.OpenAIClient{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Timeout:     cfg.Timeout,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
}
