// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
//
// Only source-independent checks live here; client-specific rules are in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Telemetry.ShutdownTimeout < 0 {
		return ErrInvalidTelemetryConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !cfg.Storage.Ephemeral {
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	}

	if cfg.Adapter.BaseURL != "" {
		u, err := url.Parse(cfg.Adapter.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidAdapterConfigs
		}
	}

	return nil
}
