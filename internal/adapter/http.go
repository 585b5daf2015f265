package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-type-keeper/internal/config"
	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/utils"
	"github.com/MKhiriev/go-type-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate implements [ServerAdapter]. It POSTs payload as JSON to
// POST /api/validate/{scope}/{type} and decodes the result for both 200 and
// 422 responses.
func (h *httpServerAdapter) Validate(ctx context.Context, scope, typeName string, payload any) (models.ValidationResult, error) {
	var result models.ValidationResult

	// a nil payload is the JSON document null, not an empty body
	body, err := json.Marshal(payload)
	if err != nil {
		return result, fmt.Errorf("encode payload: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"scope": scope, "type": typeName}).
		SetBody(body).
		Post("/api/validate/{scope}/{type}")
	if err != nil {
		return result, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode validate response: %w", err)
	}

	h.logger.Debug().
		Str("scope", scope).
		Str("type", typeName).
		Bool("valid", result.Valid).
		Int("errors", len(result.Errors)).
		Msg("payload validated by server")
	return result, nil
}

// ListTypes implements [ServerAdapter]. It GETs /api/types.
func (h *httpServerAdapter) ListTypes(ctx context.Context) ([]models.TypeInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/types")
	if err != nil {
		return nil, fmt.Errorf("list types request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var types []models.TypeInfo
	if err = json.Unmarshal(resp.Body(), &types); err != nil {
		return nil, fmt.Errorf("decode list types response: %w", err)
	}
	return types, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version/.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}
