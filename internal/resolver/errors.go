// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import "errors"

var (
	// ErrIncompleteDefaults is returned when default-level options leave a field unset.
	ErrIncompleteDefaults = errors.New("default options must set every field")

	// ErrMissingParent is returned when a non-default level is resolved without a parent.
	ErrMissingParent = errors.New("parent configuration is required above the default level")

	// ErrLevelOrder is returned when the parent is not broader than the level being resolved.
	ErrLevelOrder = errors.New("parent level must be broader than the resolved level")

	// ErrInvalidUndeclaredKeyPolicy is returned for an unknown onUndeclaredKey value.
	ErrInvalidUndeclaredKeyPolicy = errors.New("invalid undeclared key policy")
)
