// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver merges options declared at the four configuration levels
// into an effective configuration.
//
// Precedence runs type > scope > global > default. An option set at a more
// specific level overrides the same option at a broader level; an unset
// option inherits from the next broader level. The default level is always
// fully populated, so every [Effective] is too.
//
// Error-message handlers are resolved per error code. For a code c the lookup
// order is:
//
//	type[c], type, scope[c], scope, global[c], global, default[c], default
//
// i.e. a code-keyed handler is checked before generic handlers of the same or
// a broader level, while a generic handler set at a more specific level
// shadows code-keyed handlers of broader levels.
//
// Resolution is a pure merge: inputs are never modified.
package resolver
