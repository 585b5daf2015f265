// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-type-keeper/internal/message"
)

var errNotString = errors.New("must be a string")

// ParseNumber converts a numeric string to float64.
func ParseNumber(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		if isNumber(v) {
			return toFloat64(v), nil
		}
		return nil, errNotString
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("must be a well-formed numeric string (was %s)", message.Render(v))
	}
	return f, nil
}

// ParseDate converts an RFC 3339 string to time.Time.
func ParseDate(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errNotString
	}

	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("must be an RFC 3339 date (was %s)", message.Render(v))
	}
	return d, nil
}

// TrimSpace removes leading and trailing white space from strings.
func TrimSpace(v any) (any, error) {
	return mapString(v, strings.TrimSpace)
}

// ToLower lower-cases strings.
func ToLower(v any) (any, error) {
	return mapString(v, strings.ToLower)
}

// ToUpper upper-cases strings.
func ToUpper(v any) (any, error) {
	return mapString(v, strings.ToUpper)
}

// Morphs maps the names accepted by declarative catalogs to built-in morphs.
var Morphs = map[string]Morph{
	"parseNumber": ParseNumber,
	"parseDate":   ParseDate,
	"trim":        TrimSpace,
	"lower":       ToLower,
	"upper":       ToUpper,
}

func mapString(v any, fn func(string) string) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errNotString
	}
	return fn(s), nil
}
