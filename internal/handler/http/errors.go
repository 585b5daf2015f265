// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for requests rejected before they reach the service layer.
// Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a single JSON value.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when the request body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
