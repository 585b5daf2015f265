// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package message assembles user-visible validation messages.
//
// A leaf error goes through four ordered stages, each customizable through
// [models.MessageHandlers]:
//
//  1. expected: completes "must be ___";
//  2. actual: completes "(was ___)"; an empty result omits the clause;
//  3. problem: combines expected and actual into one sentence;
//  4. message: prefixes the problem with the rendered path.
//
// Composite errors (a union whose branches all failed) run stages 1 and 2
// for every leaf and are then joined by [Composite], bypassing the problem and
// message handlers.
package message
