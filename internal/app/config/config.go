// Package config loads the server configuration: a YAML tuning file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	predusecase "stock_dashboard/internal/feature/prediction/usecase"
	tsusecase "stock_dashboard/internal/feature/timeseries/usecase"
)

// Latency holds the simulated request delays.
type Latency struct {
	Series         time.Duration `yaml:"series"`
	Prediction     time.Duration `yaml:"prediction"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // 0 disables the timeout
}

// Log selects the slog handler.
type Log struct {
	Format string `yaml:"format"` // json | text
	Level  string `yaml:"level"`  // debug | info | warn | error
}

// Config holds all application configuration.
type Config struct {
	Addr           string             `yaml:"addr"`
	Series         tsusecase.Params   `yaml:"series"`
	Prediction     predusecase.Params `yaml:"prediction"`
	Latency        Latency            `yaml:"latency"`
	RandomSeed     uint64             `yaml:"random_seed"` // 0 draws a fresh seed per request
	SymbolCacheTTL time.Duration      `yaml:"symbol_cache_ttl"`
	Log            Log                `yaml:"log"`
}

// Default returns the configuration used when no file or override is present.
func Default() Config {
	return Config{
		Addr:       ":8080",
		Series:     tsusecase.DefaultParams(),
		Prediction: predusecase.DefaultParams(),
		Latency: Latency{
			Series:         500 * time.Millisecond,
			Prediction:     700 * time.Millisecond,
			RequestTimeout: 5 * time.Second,
		},
		Log: Log{Format: "json", Level: "info"},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SERIES_DELAY", &cfg.Latency.Series},
		{"PREDICTION_DELAY", &cfg.Latency.Prediction},
		{"REQUEST_TIMEOUT", &cfg.Latency.RequestTimeout},
		{"SYMBOL_CACHE_TTL", &cfg.SymbolCacheTTL},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RANDOM_SEED: %w", err)
		}
		cfg.RandomSeed = seed
	}
	return nil
}

// Validate checks the tuning and the delays.
func (c *Config) Validate() error {
	if err := c.Series.Validate(); err != nil {
		return fmt.Errorf("series: %w", err)
	}
	if err := c.Prediction.Validate(); err != nil {
		return fmt.Errorf("prediction: %w", err)
	}
	if c.Latency.Series < 0 || c.Latency.Prediction < 0 || c.Latency.RequestTimeout < 0 {
		return fmt.Errorf("latency values must be >= 0")
	}
	if c.SymbolCacheTTL < 0 {
		return fmt.Errorf("symbol_cache_ttl must be >= 0")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	return nil
}
