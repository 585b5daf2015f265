// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Missing server
// settings are reported only by [StructuredConfig.ValidateServer], because
// the client shares this loader.
func (cfg *StructuredConfig) validate() error {
	if _, err := cfg.Types.Options(); err != nil {
		return err
	}
	return nil
}

// ValidateServer reports the settings cmd/server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	var errs error
	if cfg.Server.HTTPAddress == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs))
	}
	if cfg.Server.MaxBodyBytes < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: negative max body size", ErrInvalidServerConfigs))
	}
	if cfg.App.Version == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: empty version", ErrInvalidAppConfigs))
	}
	if cfg.App.CatalogPath == "" {
		errs = errors.Join(errs, fmt.Errorf("%w: empty catalog path", ErrInvalidAppConfigs))
	}
	return errs
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
