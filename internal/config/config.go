// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the movie
// client. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the persisted session state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration of the remote movie API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Telemetry holds OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file diagnostics are appended to. Results go to stdout,
	// so logs never do.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the session store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// Ephemeral keeps the session in memory only. Nothing survives the
	// process, which is mostly useful for scripting and tests.
	// Env: STORAGE_EPHEMERAL
	Ephemeral bool `env:"EPHEMERAL"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "movie-client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration of the remote API client.
type Adapter struct {
	// BaseURL is the root URL of the movie API. Empty means the built-in
	// production URL.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Telemetry holds OpenTelemetry settings. Tracing is disabled when Endpoint
// is empty.
type Telemetry struct {
	// Endpoint is the OTLP/gRPC collector address (host:port).
	// Env: TELEMETRY_OTLP_ENDPOINT
	Endpoint string `env:"OTLP_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	// Env: TELEMETRY_OTLP_INSECURE
	Insecure bool `env:"OTLP_INSECURE"`

	// ShutdownTimeout bounds the final span flush on exit (e.g. "5s").
	// Env: TELEMETRY_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// The arguments left over after flag parsing (the sub-command and its own
// arguments) are returned alongside the config.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}
