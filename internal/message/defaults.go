// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package message

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-type-keeper/models"
)

// Defaults returns the generic built-in handlers. Every field is set.
func Defaults() models.MessageHandlers {
	return models.MessageHandlers{
		Expected: DefaultExpected,
		Actual:   Render,
		Problem:  DefaultProblem,
		Message:  DefaultMessage,
	}
}

// DefaultCodeHandlers returns the built-in code-keyed handlers.
func DefaultCodeHandlers() models.CodeHandlers {
	return models.CodeHandlers{
		models.CodeDomain:     {Actual: Kind},
		models.CodeMinLength:  {Actual: Length},
		models.CodeMaxLength:  {Actual: Length},
		models.CodeRequired:   {Actual: func(any) string { return "missing" }},
		models.CodeUndeclared: {Actual: func(any) string { return "" }},
		models.CodeMorph:      {Problem: morphProblem},
		models.CodeUnion:      {Actual: Kind},
	}
}

// morphProblem reports the morph's own error text.
func morphProblem(_, _ string, ctx models.ErrorContext) string {
	return ctx.Description
}

// DefaultExpected returns the built-in description of the failed constraint.
func DefaultExpected(ctx models.ErrorContext) string {
	return ctx.Description
}

// DefaultProblem renders "must be <expected> (was <actual>)". The parenthetical
// is omitted when actual is empty.
func DefaultProblem(expected, actual string, _ models.ErrorContext) string {
	if actual == "" {
		return "must be " + expected
	}
	return "must be " + expected + " (was " + actual + ")"
}

// DefaultMessage prefixes problem with the rendered path, if any.
func DefaultMessage(problem string, ctx models.ErrorContext) string {
	if ctx.PropString == "" {
		return problem
	}
	return ctx.PropString + " " + problem
}

// Kind names the domain of v: string, number, boolean, null, object, array,
// Date, or the Go type for anything else. NaN is named NaN.
func Kind(v any) string {
	if isNaN(v) {
		return "NaN"
	}

	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case time.Time:
		return "Date"
	case map[string]any:
		return "object"
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Length renders the length of a string (in runes) or a collection.
func Length(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Itoa(utf8.RuneCountInString(s))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return strconv.Itoa(rv.Len())
	default:
		return Render(v)
	}
}

// Render is the generic printable form of a value used for "(was ___)".
func Render(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if math.IsNaN(val) {
			return "NaN"
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		if isNaN(val) {
			return "NaN"
		}
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case time.Time:
		if val.IsZero() {
			return "an invalid Date"
		}
		return val.Format(time.RFC3339)
	default:
		return Kind(v)
	}
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	default:
		return false
	}
}
