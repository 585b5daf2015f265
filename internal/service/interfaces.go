package service

import (
	"context"

	"github.com/MKhiriev/go-type-keeper/internal/schema"
	"github.com/MKhiriev/go-type-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ValidationService validates payloads against declared types.
type ValidationService interface {
	// Validate checks payload against the type declared as typeName in scope.
	// A payload that fails validation is not an error: the failures are
	// reported in the result. Unknown scopes or types return ErrTypeNotFound.
	Validate(ctx context.Context, scope, typeName string, payload any) (models.ValidationResult, error)

	// ListTypes describes every declared type ordered by scope and name.
	ListTypes(ctx context.Context) []models.TypeInfo
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TypeRegistry resolves declared types by scope and name.
type TypeRegistry interface {
	Lookup(scope, typeName string) (*schema.Type, error)
	Scopes() []*schema.Scope
}
