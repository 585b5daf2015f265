// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema declares and runs runtime validators ("types").
//
// A [Type] validates a value, optionally transforms it with morphs, and
// reports every failure as an [ArkError] collected into [ArkErrors]; failures
// are returned as values, never raised.
//
// Every Type captures its configuration when it is declared:
//
//   - constructors such as [String] or [Object] capture the global
//     configuration in force at the call ([Configure] is not retroactive);
//   - [Scope.Declare] re-bases a Type on the scope's configuration;
//   - [Type.Configure] layers type-level options on top.
//
// Type-level options are shallow: they apply to errors produced at the Type's
// own root and never to errors of nested Types, which keep the configuration
// they captured themselves.
//
// Global configuration is process-wide and must be established with
// [Configure] before any dependent Type is declared. Types are immutable once
// declared and safe for concurrent use.
package schema
