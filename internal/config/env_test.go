// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.2.3",
		"APP_CATALOG":   "/etc/types/catalog.yaml",
		"APP_LOG_LEVEL": "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_MAX_BODY_BYTES":  "4096",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"TYPES_NUMBER_ALLOWS_NAN":   "true",
		"TYPES_DATE_ALLOWS_INVALID": "false",
		"TYPES_JITLESS":             "true",
		"TYPES_CLONE":               "false",
		"TYPES_ON_UNDECLARED_KEY":   "delete",
	})

	// Act
	cfg, err := parseEnv()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/etc/types/catalog.yaml", cfg.App.CatalogPath)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxBodyBytes)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, Types{
		NumberAllowsNaN:   "true",
		DateAllowsInvalid: "false",
		Jitless:           "true",
		Clone:             "false",
		OnUndeclaredKey:   "delete",
	}, cfg.Types)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	cfg, err := parseEnv()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading environment configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the loader reads. Empty values are
// treated as unset by the env library.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION", "APP_CATALOG", "APP_LOG_LEVEL",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_MAX_BODY_BYTES",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"TYPES_NUMBER_ALLOWS_NAN", "TYPES_DATE_ALLOWS_INVALID", "TYPES_JITLESS",
		"TYPES_CLONE", "TYPES_ON_UNDECLARED_KEY",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}
