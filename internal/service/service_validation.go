// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/schema"
	"github.com/MKhiriev/go-type-keeper/models"
)

type validationService struct {
	registry TypeRegistry

	logger *logger.Logger
}

func NewValidationService(registry TypeRegistry, logger *logger.Logger) (ValidationService, error) {
	if registry == nil {
		return nil, ErrNoRegistry
	}

	return &validationService{
		registry: registry,
		logger:   logger,
	}, nil
}

func (v *validationService) Validate(ctx context.Context, scope, typeName string, payload any) (models.ValidationResult, error) {
	log := logger.FromContext(ctx)

	t, err := v.registry.Lookup(scope, typeName)
	if err != nil {
		log.Debug().Err(err).Str("scope", scope).Str("type", typeName).Msg("type lookup failed")
		return models.ValidationResult{}, fmt.Errorf("%w: %s.%s: %w", ErrTypeNotFound, scope, typeName, err)
	}

	start := time.Now()
	out, err := t.Validate(payload)
	elapsed := time.Since(start)

	var arkErrs *schema.ArkErrors
	switch {
	case errors.As(err, &arkErrs):
		log.Debug().
			Str("scope", scope).
			Str("type", typeName).
			Int("errors", arkErrs.Len()).
			Dur("elapsed", elapsed).
			Msg("payload rejected")
		return models.ValidationResult{
			Valid:   false,
			Errors:  arkErrs.Issues(),
			Summary: arkErrs.Summary(),
		}, nil
	case err != nil:
		return models.ValidationResult{}, fmt.Errorf("error validating %s.%s: %w", scope, typeName, err)
	}

	log.Debug().Str("scope", scope).Str("type", typeName).Dur("elapsed", elapsed).Msg("payload accepted")
	return models.ValidationResult{Valid: true, Data: out}, nil
}

func (v *validationService) ListTypes(ctx context.Context) []models.TypeInfo {
	var infos []models.TypeInfo
	for _, scope := range v.registry.Scopes() {
		for _, name := range scope.Types() {
			t, err := scope.Type(name)
			if err != nil {
				// names come from the scope itself
				continue
			}
			infos = append(infos, models.TypeInfo{
				ID:          t.ID(),
				Scope:       scope.Name(),
				Name:        name,
				Kind:        string(t.Kind()),
				Description: t.Description(),
				Meta:        t.Meta(),
			})
		}
	}
	return infos
}
