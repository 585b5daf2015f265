package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTypesConfigs indicates global type options that cannot be
	// converted, e.g. a non-boolean jitless value.
	ErrInvalidTypesConfigs = errors.New("invalid types configuration")
)
