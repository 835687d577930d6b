package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DECILE_CONFIG is set
//  3. env (prefix DECILE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DECILE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, wrapLoadError(err)
		}
	}

	// Environment variables: DECILE_ADDR, DECILE_ROSTER_SIZE, ...
	// Map env keys like DECILE_ROSTER_SIZE -> roster_size (flat keys);
	// underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("DECILE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "decile_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, wrapLoadError(err)
	}

	// Unmarshal into a copy so defaults survive for unset keys.
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, wrapLoadError(err)
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.RosterSize < 0 {
		return nil, errors.New("roster_size must not be negative")
	}
	if cfg.ReportingInterval < 1 {
		return nil, errors.New("reporting_interval must be positive")
	}
	return &cfg, nil
}
