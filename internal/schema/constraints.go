// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/MKhiriev/go-type-keeper/models"
)

// check is a single constraint evaluated after the domain matched.
type check struct {
	code        models.Code
	rule        any
	description string
	test        func(v any) bool
}

func (t *Type) with(c check) *Type {
	d := t.derive()
	d.checks = append(d.checks, c)
	d.compile()
	return d
}

// MinLength requires strings (in runes) or arrays to have at least n elements.
func (t *Type) MinLength(n int) *Type {
	return t.with(check{
		code:        models.CodeMinLength,
		rule:        n,
		description: fmt.Sprintf("at least length %d", n),
		test:        func(v any) bool { return lengthOf(v) >= n },
	})
}

// MaxLength requires strings (in runes) or arrays to have at most n elements.
func (t *Type) MaxLength(n int) *Type {
	return t.with(check{
		code:        models.CodeMaxLength,
		rule:        n,
		description: fmt.Sprintf("at most length %d", n),
		test:        func(v any) bool { return lengthOf(v) <= n },
	})
}

// Pattern requires strings to match re.
func (t *Type) Pattern(re *regexp.Regexp) *Type {
	return t.with(check{
		code:        models.CodePattern,
		rule:        re.String(),
		description: "matching /" + re.String() + "/",
		test: func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
	})
}

// Min requires numbers to be greater than or equal to n.
func (t *Type) Min(n float64) *Type {
	return t.with(check{
		code:        models.CodeMin,
		rule:        n,
		description: "at least " + formatNumber(n),
		test:        func(v any) bool { return toFloat64(v) >= n },
	})
}

// Max requires numbers to be less than or equal to n.
func (t *Type) Max(n float64) *Type {
	return t.with(check{
		code:        models.CodeMax,
		rule:        n,
		description: "at most " + formatNumber(n),
		test:        func(v any) bool { return toFloat64(v) <= n },
	})
}

// DivisibleBy requires numbers to be a multiple of n. DivisibleBy(1) is
// described as "an integer".
func (t *Type) DivisibleBy(n float64) *Type {
	description := "a multiple of " + formatNumber(n)
	if n == 1 {
		description = "an integer"
	}
	return t.with(check{
		code:        models.CodeDivisor,
		rule:        n,
		description: description,
		test: func(v any) bool {
			if n == 0 {
				return true
			}
			return isMultiple(toFloat64(v), n)
		},
	})
}

// isMultiple reports whether v is an integral multiple of n, allowing for the
// rounding error of the quotient.
func isMultiple(v, n float64) bool {
	q := v / n
	tolerance := math.Max(1e-9, math.Abs(q)*2*epsilon)
	return math.Abs(q-math.Round(q)) <= tolerance
}

const epsilon = 2.220446049250313e-16

// Narrow adds an arbitrary predicate. description completes "must be ___".
func (t *Type) Narrow(predicate func(v any) bool, description string) *Type {
	return t.with(check{
		code:        models.CodePredicate,
		description: description,
		test:        predicate,
	})
}

func lengthOf(v any) int {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}
	if arr, ok := toSlice(v); ok {
		return len(arr)
	}
	return 0
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
