// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"sync"

	"github.com/MKhiriev/go-type-keeper/internal/clone"
	"github.com/MKhiriev/go-type-keeper/internal/message"
	"github.com/MKhiriev/go-type-keeper/models"
)

// DefaultOptions returns the built-in default-level options. Every field is set.
func DefaultOptions() models.Options {
	return models.Options{
		NumberAllowsNaN:   models.Bool(false),
		DateAllowsInvalid: models.Bool(false),
		Jitless:           models.Bool(false),
		Clone:             models.CloneWith(clone.Deep),
		OnUndeclaredKey:   models.UndeclaredIgnore,
		Custom:            models.Meta{},
		Messages:          message.Defaults(),
		ByCode:            message.DefaultCodeHandlers(),
	}
}

var defaultEffective = sync.OnceValue(func() *Effective {
	eff, err := Resolve(models.LevelDefault, DefaultOptions(), nil)
	if err != nil {
		panic("resolver: invalid built-in defaults: " + err.Error())
	}
	return eff
})

// Default returns the process-wide default-level configuration.
// It is built once, on first use.
func Default() *Effective {
	return defaultEffective()
}
