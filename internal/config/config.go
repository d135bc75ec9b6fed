// SPDX-License-Identifier: EPL-2.0

// Package config loads the audfx YAML configuration: logging, output format,
// batch concurrency and an optional effect chain preset.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audfx/effects"
	"github.com/ik5/audfx/utils"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top level of an audfx YAML file.
type Config struct {
	LogLevel string `yaml:"log_level"` // logrus level name
	BitDepth int    `yaml:"bit_depth"` // WAV output bit depth
	Workers  int    `yaml:"workers"`   // files processed at once
	Chain    []Step `yaml:"chain"`     // preset used by `audfx apply`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		BitDepth: 16,
		Workers:  runtime.NumCPU(),
	}
}

// searchPaths are tried in order when LoadConfig gets an empty path.
var searchPaths = []string{"audfx.yaml", "audfx.yml"}

// LoadConfig reads the YAML file at path on top of the defaults. An empty
// path looks for audfx.yaml in the working directory and falls back to the
// defaults when there is none. Environment overrides are applied last, then
// the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, candidate := range searchPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and every chain step.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if err := utils.CheckBitDepth(c.BitDepth); err != nil {
		return fmt.Errorf("%w: bit_depth: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}

	for i, step := range c.Chain {
		if _, err := step.Processor(); err != nil {
			return fmt.Errorf("%w: chain step %d: %w", ErrInvalidConfig, i, err)
		}
	}

	return nil
}

// Level is the parsed log level. It assumes Validate passed.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Processors builds the effect chain preset.
func (c *Config) Processors() (effects.Chain, error) {
	chain := make(effects.Chain, 0, len(c.Chain))
	for i, step := range c.Chain {
		p, err := step.Processor()
		if err != nil {
			return nil, fmt.Errorf("chain step %d: %w", i, err)
		}
		chain = append(chain, p)
	}
	return chain, nil
}

// applyEnvOverrides applies AUDFX_LOG_LEVEL, AUDFX_WORKERS and
// AUDFX_BIT_DEPTH. Values that do not parse are ignored with a warning.
func (c *Config) applyEnvOverrides() {
	log := logrus.WithField("function", "config.applyEnvOverrides")

	if val, ok := os.LookupEnv("AUDFX_LOG_LEVEL"); ok {
		c.LogLevel = val
		log.WithField("log_level", val).Debug("Overriding log_level from env")
	}

	overrideInt := func(name string, dst *int) {
		val, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			log.WithFields(logrus.Fields{"variable": name, "value": val}).Warn("Ignoring non-numeric override")
			return
		}
		*dst = n
		log.WithFields(logrus.Fields{"variable": name, "value": n}).Debug("Overriding from env")
	}

	overrideInt("AUDFX_WORKERS", &c.Workers)
	overrideInt("AUDFX_BIT_DEPTH", &c.BitDepth)
}
