package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates an API base URL without scheme or host.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid session storage settings
	// (for example, an empty DSN or an in-memory DSN without -ephemeral).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTelemetryConfigs indicates invalid tracing settings
	// (for example, a negative shutdown timeout).
	ErrInvalidTelemetryConfigs = errors.New("invalid telemetry configuration")
)
