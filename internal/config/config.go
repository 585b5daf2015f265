// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-type-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the catalog location,
	// the log level and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Types holds the global type options applied before the catalog is
	// declared.
	Types Types `envPrefix:"TYPES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// CatalogPath is the YAML type catalog declared at startup.
	// Env: APP_CATALOG
	CatalogPath string `env:"CATALOG"`

	// LogLevel is a zerolog level name, e.g. "info".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes limits the size of a validated payload.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Adapter holds the settings of the HTTP client used by cmd/client.
type Adapter struct {
	// HTTPAddress is the base address of the validation server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Types holds the global type options. Values are kept as strings so that
// "unset" survives the merge of configuration sources; see [Types.Options].
type Types struct {
	// Env: TYPES_NUMBER_ALLOWS_NAN
	NumberAllowsNaN string `env:"NUMBER_ALLOWS_NAN"`

	// Env: TYPES_DATE_ALLOWS_INVALID
	DateAllowsInvalid string `env:"DATE_ALLOWS_INVALID"`

	// Env: TYPES_JITLESS
	Jitless string `env:"JITLESS"`

	// Clone set to "false" makes morphs mutate the validated input.
	// Env: TYPES_CLONE
	Clone string `env:"CLONE"`

	// OnUndeclaredKey is one of ignore, delete or reject.
	// Env: TYPES_ON_UNDECLARED_KEY
	OnUndeclaredKey string `env:"ON_UNDECLARED_KEY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first source
// that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
