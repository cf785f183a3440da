// Package config - Evaluator settings loaded from YAML with
// environment overrides.
package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/thisisWooyeol/HRSBench/colors"
	"github.com/thisisWooyeol/HRSBench/scoring"
)

// envPrefix namespaces the environment overrides, e.g.
// HRSBENCH_DEVELOPMENT=1.
const envPrefix = "hrsbench"

// Config carries the evaluator's tunable vocabularies and logging
// mode. The relation synonym sets and hue breakpoints live here, not
// as hidden constants, so a deployment can extend them without
// touching the engine.
type Config struct {
	// Development switches the logger to human-readable console
	// output.
	Development bool `yaml:"development" envconfig:"DEVELOPMENT"`
	// Relations maps free-form relation labels onto geometric
	// predicates.
	Relations scoring.RelationVocab `yaml:"relations"`
	// Hues bins average hues into named colors.
	Hues colors.HueBreakpoints `yaml:"hues"`
}

// Default returns the benchmark's stock vocabularies.
func Default() Config {
	return Config{
		Relations: scoring.DefaultRelationVocab(),
		Hues:      colors.DefaultHueBreakpoints(),
	}
}

// Load builds a config from the defaults, an optional YAML file, and
// environment overrides, in that order.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, errors.Wrap(err, "apply environment overrides")
	}
	return cfg, nil
}

// Logger builds the process logger according to the configured mode.
func (c Config) Logger() (*zap.Logger, error) {
	if c.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
