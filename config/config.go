// Package config loads somtsp run settings from YAML files and environment
// variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/somtsp"
	"github.com/katalvlaran/somtsp/som"
)

// ErrInvalid is returned by Validate; the message names the offending key.
var ErrInvalid = fmt.Errorf("config: invalid setting: %w", somtsp.ErrInvalidInput)

// Config contains all somtsp settings.
type Config struct {
	// Training holds the trainer settings.
	Training TrainingConfig `json:"training" yaml:"training"`

	// Logging configures the command-line logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// TrainingConfig mirrors som.Options without the callback fields.
type TrainingConfig struct {
	Epochs       int           `json:"epochs" yaml:"epochs"`
	LearningRate float64       `json:"learning_rate" yaml:"learning_rate"`
	Radius       int           `json:"radius" yaml:"radius"`
	Seed         int64         `json:"seed" yaml:"seed"`
	Init         string        `json:"init" yaml:"init"`
	ObserveEvery int           `json:"observe_every" yaml:"observe_every"`
	Pause        time.Duration `json:"pause" yaml:"pause"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of "debug", "info" (default), "warn", "error".
	Level string `json:"level" yaml:"level"`

	// Format is "logfmt" (default) or "json".
	Format string `json:"format" yaml:"format"`
}

// Default returns a Config matching som.DefaultOptions.
func Default() *Config {
	o := som.DefaultOptions()
	return &Config{
		Training: TrainingConfig{
			Epochs:       o.Epochs,
			LearningRate: o.LearningRate,
			Radius:       o.Radius,
			Seed:         o.Seed,
			Init:         o.Init.String(),
			ObserveEvery: o.ObserveEvery,
			Pause:        o.Pause,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "logfmt",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped when
// path is empty) and then with SOMTSP_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides reads SOMTSP_SEED, SOMTSP_EPOCHS and SOMTSP_LOG_LEVEL.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SOMTSP_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: SOMTSP_SEED=%q", ErrInvalid, v)
		}
		cfg.Training.Seed = n
	}
	if v := os.Getenv("SOMTSP_EPOCHS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SOMTSP_EPOCHS=%q", ErrInvalid, v)
		}
		cfg.Training.Epochs = n
	}
	if v := os.Getenv("SOMTSP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	t := c.Training
	if t.Epochs < 0 {
		return fmt.Errorf("%w: epochs must be non-negative, got %d", ErrInvalid, t.Epochs)
	}
	if !(t.LearningRate >= som.MinLearningRate) || math.IsInf(t.LearningRate, 0) {
		return fmt.Errorf("%w: learning_rate must be finite and at least %v, got %v", ErrInvalid, som.MinLearningRate, t.LearningRate)
	}
	if t.Radius < 0 {
		return fmt.Errorf("%w: radius must be non-negative, got %d", ErrInvalid, t.Radius)
	}
	if t.ObserveEvery < 1 {
		return fmt.Errorf("%w: observe_every must be at least 1, got %d", ErrInvalid, t.ObserveEvery)
	}
	if t.Pause < 0 {
		return fmt.Errorf("%w: pause must be non-negative, got %v", ErrInvalid, t.Pause)
	}
	if _, err := som.ParseInit(t.Init); err != nil {
		return fmt.Errorf("%w: init %q (valid: zero, centroid, circle)", ErrInvalid, t.Init)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: log level %q (valid: debug, info, warn, error)", ErrInvalid, c.Logging.Level)
	}
	if c.Logging.Format != "logfmt" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: log format %q (valid: logfmt, json)", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// Options converts the training section to som.Options. The Observer and
// Rand fields are left for the caller.
func (c *Config) Options() (som.Options, error) {
	if err := c.Validate(); err != nil {
		return som.Options{}, err
	}
	init, err := som.ParseInit(c.Training.Init)
	if err != nil {
		return som.Options{}, errors.Join(ErrInvalid, err)
	}
	return som.Options{
		Epochs:       c.Training.Epochs,
		LearningRate: c.Training.LearningRate,
		Radius:       c.Training.Radius,
		Seed:         c.Training.Seed,
		Init:         init,
		ObserveEvery: c.Training.ObserveEvery,
		Pause:        c.Training.Pause,
	}, nil
}
