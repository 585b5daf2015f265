// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import "errors"

var (
	// ErrUnknownType is returned when a scope has no type with the requested name.
	ErrUnknownType = errors.New("unknown type")

	// ErrDuplicateType is returned when a name is declared twice in one scope.
	ErrDuplicateType = errors.New("type already declared")

	// ErrNilType is returned when a nil *Type is declared.
	ErrNilType = errors.New("nil type")

	// ErrEmptyName is returned for an empty scope or type name.
	ErrEmptyName = errors.New("name must not be empty")
)
