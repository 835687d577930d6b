// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment sources on top.
// - External errors are wrapped via this package's error helpers.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for the health and
	// metrics endpoint, e.g. ":9080".
	Addr string `koanf:"addr"`

	// RosterSize sets how many players the simulation generates.
	RosterSize int `koanf:"roster_size"`

	// ReportingInterval is the online engine's retained-set capacity K
	// and its checkpoint period.
	ReportingInterval int `koanf:"reporting_interval"`

	// QueueSize bounds the in-memory player queue feeding the online
	// engine.
	QueueSize int `koanf:"queue_size"`

	// GeneratorWorkers sets the number of goroutines used for roster
	// generation.
	GeneratorWorkers int `koanf:"generator_workers"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		RosterSize:        100_000,
		ReportingInterval: 1_000,
		QueueSize:         200_000,
		GeneratorWorkers:  runtime.NumCPU(),
	}
}
