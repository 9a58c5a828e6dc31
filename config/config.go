// Package config loads the service configuration from YAML or JSON with
// environment-variable overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/campusflow/trafficq/core/forecast"
	"github.com/campusflow/trafficq/core/metrics"
	"github.com/campusflow/trafficq/core/policy"
	"github.com/campusflow/trafficq/infra/store"
)

type Config struct {
	Forecaster forecast.Config `json:"forecaster"`
	Circuit    policy.Config   `json:"circuit"`
	Store      store.Config    `json:"store"`
	Metrics    metrics.Config  `json:"metrics"`
}

// Default returns a configuration with every section at its defaults.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	c.Forecaster.SetDefaults()
	c.Circuit.SetDefaults()
	c.Store.SetDefaults()
	c.Metrics.SetDefaults()
}

// Load reads the file at path and applies TQ_-prefixed environment
// overrides (TQ_FORECASTER__SEED=7 sets forecaster.seed).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("TQ_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tq_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Forecaster.Validate(); err != nil {
		return nil, fmt.Errorf("forecaster: %w", err)
	}
	if err := cfg.Circuit.Validate(); err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}
	return &cfg, nil
}
