package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the diagnostics file path.
	LogFile string
}

// ClientAdapter holds settings of the remote API transport.
type ClientAdapter struct {
	// BaseURL is the root URL of the movie API; empty selects the default.
	BaseURL string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups session store settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Ephemeral selects the in-memory session store.
	Ephemeral bool
}

// ClientTelemetry holds tracing settings.
type ClientTelemetry struct {
	Endpoint        string
	Insecure        bool
	ShutdownTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains process-level settings.
	App ClientApp
	// Adapter contains remote API settings.
	Adapter ClientAdapter
	// Storage contains session store settings.
	Storage ClientStorage
	// Telemetry contains tracing settings.
	Telemetry ClientTelemetry
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration. args are the process arguments without the
// program name; the ones that are not configuration flags are returned.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, rest, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL: cfg.Adapter.BaseURL,
		},
		Storage: ClientStorage{
			DB:        ClientDB{DSN: cfg.Storage.DB.DSN},
			Ephemeral: cfg.Storage.Ephemeral,
		},
		Telemetry: ClientTelemetry{
			Endpoint:        cfg.Telemetry.Endpoint,
			Insecure:        cfg.Telemetry.Insecure,
			ShutdownTimeout: cfg.Telemetry.ShutdownTimeout,
		},
	}
}
