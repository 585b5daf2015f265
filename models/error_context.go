// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"regexp"
	"strconv"
	"strings"
)

// Path is the sequence of property-access steps from the validated root to a
// value. Each step is either a string key or an int index.
type Path []any

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// String renders the path as a property-access expression, e.g. user.tags[1].
// Keys that are not identifiers are rendered as quoted index expressions.
func (p Path) String() string {
	var b strings.Builder
	for _, step := range p {
		switch s := step.(type) {
		case int:
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s))
			b.WriteString("]")
		case string:
			if identifierRe.MatchString(s) {
				if b.Len() > 0 {
					b.WriteString(".")
				}
				b.WriteString(s)
			} else {
				b.WriteString("[")
				b.WriteString(strconv.Quote(s))
				b.WriteString("]")
			}
		}
	}
	return b.String()
}

// Append returns a new path with step added. The receiver is not modified.
func (p Path) Append(step any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, step)
}

// ErrorContext describes a single validation failure. It is passed by value to
// every message handler and must be treated as read-only.
type ErrorContext struct {
	// Code identifies the failed constraint.
	Code Code

	// Rule is the constraint's parameter, e.g. the bound of a minLength check.
	Rule any

	// Data is the offending value.
	Data any

	// Actual is the default rendering of Data for this code.
	Actual string

	// Path is the location of Data relative to the validated root.
	Path Path

	// PropString is Path rendered by [Path.String].
	PropString string

	// Description is the built-in description of the constraint, e.g. "a string".
	Description string
}
