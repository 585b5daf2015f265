// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-type-keeper/models"
)

// Options converts the section into partial global type options. Empty
// fields stay unset and inherit the built-in defaults.
func (t Types) Options() (models.Options, error) {
	var (
		opts models.Options
		err  error
	)

	if opts.NumberAllowsNaN, err = parseOptionalBool("numberAllowsNaN", t.NumberAllowsNaN); err != nil {
		return models.Options{}, err
	}
	if opts.DateAllowsInvalid, err = parseOptionalBool("dateAllowsInvalid", t.DateAllowsInvalid); err != nil {
		return models.Options{}, err
	}
	if opts.Jitless, err = parseOptionalBool("jitless", t.Jitless); err != nil {
		return models.Options{}, err
	}

	clone, err := parseOptionalBool("clone", t.Clone)
	if err != nil {
		return models.Options{}, err
	}
	if clone != nil && !*clone {
		opts.Clone = models.NoClone()
	}

	if t.OnUndeclaredKey != "" {
		policy := models.UndeclaredKeyPolicy(t.OnUndeclaredKey)
		if !policy.IsValid() {
			return models.Options{}, fmt.Errorf("%w: onUndeclaredKey %q", ErrInvalidTypesConfigs, t.OnUndeclaredKey)
		}
		opts.OnUndeclaredKey = policy
	}

	return opts, nil
}

func parseOptionalBool(name, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidTypesConfigs, name, raw)
	}
	return &v, nil
}

func formatOptionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
