package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the global configuration flags from args and returns the
// resulting config together with the arguments that follow them (the
// sub-command). Parsing stops at the first non-flag argument.
//
// Flags:
//
//	-api        movie API base URL (e.g. https://micolsmovieapp.herokuapp.com)
//	-d          SQLite session database path
//	-ephemeral  keep the session in memory only
//	-log        log file path
//	-otlp       OTLP/gRPC collector endpoint host:port
//	-c/-config  json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var baseURL string
	var databaseDSN string
	var ephemeral bool
	var logFile string
	var otlpEndpoint string
	var jsonConfigPath string

	fs := flag.NewFlagSet("movie-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&baseURL, "api", "", "Movie API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.BoolVar(&ephemeral, "ephemeral", false, "Keep the session in memory only")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&otlpEndpoint, "otlp", "", "OTLP collector endpoint host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Ephemeral: ephemeral,
		},
		Adapter: Adapter{
			BaseURL: baseURL,
		},
		Telemetry: Telemetry{
			Endpoint: otlpEndpoint,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
