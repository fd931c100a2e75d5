// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE": "/var/log/movie-client.log",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN":    "/var/lib/movie-client/session.db",
		"STORAGE_EPHEMERAL": "true",

		"ADAPTER_BASE_URL": "https://movies.example.com",

		"TELEMETRY_OTLP_ENDPOINT":    "collector:4317",
		"TELEMETRY_OTLP_INSECURE":    "true",
		"TELEMETRY_SHUTDOWN_TIMEOUT": "3s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/var/log/movie-client.log", cfg.App.LogFile)
	assert.Equal(t, "/var/lib/movie-client/session.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.Ephemeral)
	assert.Equal(t, "https://movies.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, 3*time.Second, cfg.Telemetry.ShutdownTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL": "http://localhost:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.Storage.Ephemeral)
	assert.Zero(t, cfg.Telemetry.ShutdownTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"TELEMETRY_SHUTDOWN_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_EPHEMERAL": "maybe",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_LOG_FILE",
		"STORAGE_DB_DSN",
		"STORAGE_EPHEMERAL",
		"ADAPTER_BASE_URL",
		"TELEMETRY_OTLP_ENDPOINT",
		"TELEMETRY_OTLP_INSECURE",
		"TELEMETRY_SHUTDOWN_TIMEOUT",
	}
	for _, k := range keys {
		// t.Setenv restores the original value after the test.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
