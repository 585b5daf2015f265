// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-type-keeper/internal/resolver"
	"github.com/MKhiriev/go-type-keeper/models"
)

var global atomic.Pointer[resolver.Effective]

// Configure merges opts onto the current global options. Options set by an
// earlier call stay in force unless opts sets them again.
//
// Configure must be called during program initialization, before any Type
// that should observe it is declared: Types declared earlier keep the
// configuration they captured.
func Configure(opts models.Options) error {
	merged, err := resolver.Overlay(opts, Global().Local())
	if err != nil {
		return err
	}

	eff, err := resolver.Resolve(models.LevelGlobal, merged, resolver.Default())
	if err != nil {
		return fmt.Errorf("error applying global configuration: %w", err)
	}

	global.Store(eff)
	return nil
}

// Global returns the global configuration currently in force.
func Global() *resolver.Effective {
	if eff := global.Load(); eff != nil {
		return eff
	}

	eff, err := resolver.Resolve(models.LevelGlobal, models.Options{}, resolver.Default())
	if err != nil {
		panic("schema: cannot resolve empty global options: " + err.Error())
	}
	global.CompareAndSwap(nil, eff)
	return global.Load()
}
