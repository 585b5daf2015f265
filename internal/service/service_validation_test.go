package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-type-keeper/internal/catalog"
	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/mock"
	"github.com/MKhiriev/go-type-keeper/internal/schema"
	"github.com/MKhiriev/go-type-keeper/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCatalog = `
scopes:
  users:
    config:
      onUndeclaredKey: reject
      meta: {owner: identity}
    types:
      - name: user
        kind: object
        props:
          name: {kind: string, morph: [trim]}
          age: {kind: integer, min: 0}
  misc:
    types:
      - name: flag
        kind: boolean
`

func newTestValidationService(t *testing.T) ValidationService {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)
	reg, err := c.Build()
	require.NoError(t, err)

	svc, err := NewValidationService(reg, logger.Nop())
	require.NoError(t, err)
	return svc
}

func TestNewValidationService_NilRegistry(t *testing.T) {
	svc, err := NewValidationService(nil, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoRegistry)
}

func TestValidate_Valid(t *testing.T) {
	svc := newTestValidationService(t)

	res, err := svc.Validate(context.Background(), "users", "user", map[string]any{"name": " Bob ", "age": 30.0})

	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, map[string]any{"name": "Bob", "age": 30.0}, res.Data)
	assert.Empty(t, res.Errors)
}

func TestValidate_Invalid(t *testing.T) {
	svc := newTestValidationService(t)

	res, err := svc.Validate(context.Background(), "users", "user", map[string]any{"name": 1.0, "age": -1.0, "role": "admin"})

	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Nil(t, res.Data)

	want := []models.ValidationIssue{
		{Code: models.CodeMin, Path: "age", Expected: "at least 0", Actual: "-1", Message: "age must be at least 0 (was -1)"},
		{Code: models.CodeDomain, Path: "name", Expected: "a string", Actual: "number", Message: "name must be a string (was number)"},
		{Code: models.CodeUndeclared, Path: "role", Expected: "removed", Message: "role must be removed"},
	}
	if diff := cmp.Diff(want, res.Errors); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "age must be at least 0 (was -1)\nname must be a string (was number)\nrole must be removed", res.Summary)
}

func TestValidate_TypeNotFound(t *testing.T) {
	svc := newTestValidationService(t)

	tests := []struct {
		name     string
		scope    string
		typeName string
		wrapped  error
	}{
		{"unknown scope", "billing", "user", catalog.ErrUnknownScope},
		{"unknown type", "users", "invoice", schema.ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(context.Background(), tt.scope, tt.typeName, nil)
			assert.ErrorIs(t, err, ErrTypeNotFound)
			assert.ErrorIs(t, err, tt.wrapped)
		})
	}
}

func TestValidate_UsesRegistryType(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockTypeRegistry(ctrl)
	registry.EXPECT().Lookup("misc", "count").Return(schema.Number().Min(1), nil)

	svc, err := NewValidationService(registry, logger.Nop())
	require.NoError(t, err)

	res, err := svc.Validate(context.Background(), "misc", "count", 0)

	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, models.CodeMin, res.Errors[0].Code)
	assert.Equal(t, "must be at least 1 (was 0)", res.Summary)
}

func TestListTypes_EmptyRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockTypeRegistry(ctrl)
	registry.EXPECT().Scopes().Return(nil)

	svc, err := NewValidationService(registry, logger.Nop())
	require.NoError(t, err)

	assert.Empty(t, svc.ListTypes(context.Background()))
}

func TestListTypes(t *testing.T) {
	svc := newTestValidationService(t)

	infos := svc.ListTypes(context.Background())

	require.Len(t, infos, 2)
	assert.Equal(t, "misc", infos[0].Scope)
	assert.Equal(t, "flag", infos[0].Name)
	assert.Equal(t, "boolean", infos[0].Kind)
	assert.Equal(t, "a boolean", infos[0].Description)

	assert.Equal(t, "users", infos[1].Scope)
	assert.Equal(t, "user", infos[1].Name)
	assert.Equal(t, "object", infos[1].Kind)
	assert.Equal(t, models.Meta{"owner": "identity"}, infos[1].Meta)
	assert.NotEmpty(t, infos[1].ID)
}

func TestNewServices(t *testing.T) {
	reg := catalog.NewRegistry()

	services, err := NewServices(reg, config.StructuredConfig{App: config.App{Version: "1.0.0"}}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.ValidationService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = NewServices(reg, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
