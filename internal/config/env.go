// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the variables named by the env and envPrefix tags of
// [StructuredConfig], e.g. SERVER_ADDRESS or TYPES_ON_UNDECLARED_KEY. Unset
// variables leave their fields empty so that later sources can fill them.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error reading environment configs: %w", err)
	}
	return &cfg, nil
}
