// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the validation service API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for an
// unknown scope or type).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-type-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the validation
// server.
type ServerAdapter interface {
	// Validate sends payload to be checked against the type declared as
	// typeName in scope. A payload that fails validation is not an error:
	// the result reports Valid=false and the failures.
	Validate(ctx context.Context, scope, typeName string, payload any) (models.ValidationResult, error)

	// ListTypes fetches the descriptions of every declared type.
	ListTypes(ctx context.Context) ([]models.TypeInfo, error)

	// GetServerVersion fetches the server's application version.
	GetServerVersion(ctx context.Context) (string, error)
}
