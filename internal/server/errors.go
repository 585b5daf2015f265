// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNothingToServe is returned by NewServer when it has no listen address or
// no HTTP handler to mount.
var errNothingToServe = errors.New("nothing to serve: http address or handler is missing")
