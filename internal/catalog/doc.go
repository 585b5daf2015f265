// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog declares scopes and types from a YAML document.
//
// A catalog has a top-level config section holding global options and a set
// of named scopes, each with its own config and an ordered list of type
// declarations:
//
//	config:
//	  onUndeclaredKey: delete
//	scopes:
//	  users:
//	    config:
//	      meta: {owner: accounts}
//	    types:
//	      - name: password
//	        kind: string
//	        minLength: 8
//	      - name: user
//	        kind: object
//	        props:
//	          name: {kind: string}
//	          password: {ref: password}
//
// Global options are returned by [Catalog.Global] rather than applied, so the
// caller can configure the schema package before [Catalog.Build] declares
// anything.
package catalog
