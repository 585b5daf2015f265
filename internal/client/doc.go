// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the validation server.
//
// The client talks to the server through [adapter.ServerAdapter] and supports
// three commands:
//
//	validate <scope> <type> <file>   validate a JSON document ("-" reads stdin)
//	types                            list declared types
//	version                          print the server version
//
// A document that fails validation makes Run return [ErrInvalidPayload] after
// every failure is printed.
package client
