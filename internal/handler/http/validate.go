// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-type-keeper/internal/logger"
	"github.com/MKhiriev/go-type-keeper/internal/utils"
	"github.com/MKhiriev/go-type-keeper/models"
	"github.com/go-chi/chi/v5"
)

// validate decodes the JSON body and checks it against the type named by the
// {scope} and {type} URL params. Valid payloads answer 200 with the
// transformed data, invalid ones 422 with every validation issue.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	scope := chi.URLParam(r, "scope")
	typeName := chi.URLParam(r, "type")

	var payload any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		err = decodeError(err)
		log.Err(err).Str("func", "*Handler.validate").Msg("invalid JSON was passed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	result, err := h.services.ValidationService.Validate(r.Context(), scope, typeName, payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.validate").Msg("error validating payload")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Str("func", "*Handler.validate").Msg("error writing response")
	}
}

func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	types := h.services.ValidationService.ListTypes(r.Context())
	if types == nil {
		types = []models.TypeInfo{}
	}

	if _, err := utils.WriteJSON(w, types, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listTypes").Msg("error writing response")
	}
}

func decodeError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
