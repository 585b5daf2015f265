// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-type-keeper/models"
)

// ArkError is a single validation failure.
type ArkError struct {
	// Context describes the failure and is what the message handlers saw.
	Context models.ErrorContext

	// Expected, Actual, Problem and Message are the outputs of the assembly
	// stages. Problem and Message of a composite error come from the
	// composite rule rather than from configured handlers.
	Expected string
	Actual   string
	Problem  string
	Message  string

	// Branches holds the leaf errors of a composite error.
	Branches []*ArkError
}

// Error implements the error interface.
func (e *ArkError) Error() string {
	return e.Message
}

// Code returns the failed constraint's code.
func (e *ArkError) Code() models.Code {
	return e.Context.Code
}

// PropString returns the rendered path of the offending value.
func (e *ArkError) PropString() string {
	return e.Context.PropString
}

// IsComposite reports whether e aggregates several leaf errors.
func (e *ArkError) IsComposite() bool {
	return len(e.Branches) > 0
}

// ArkErrors collects every failure of one validation, in traversal order.
type ArkErrors struct {
	Errors []*ArkError
}

// Error implements the error interface.
func (e *ArkErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e.Errors), strings.Join(e.messages(), "\n  - "))
}

// Summary joins every message with a newline.
func (e *ArkErrors) Summary() string {
	return strings.Join(e.messages(), "\n")
}

// Add appends err.
func (e *ArkErrors) Add(err *ArkError) {
	e.Errors = append(e.Errors, err)
}

// HasErrors returns true if there are any errors.
func (e *ArkErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Len returns the number of errors.
func (e *ArkErrors) Len() int {
	return len(e.Errors)
}

// AsError returns nil if there are no errors, otherwise e.
func (e *ArkErrors) AsError() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// ByPath returns the errors whose rendered path equals propString.
func (e *ArkErrors) ByPath(propString string) []*ArkError {
	var result []*ArkError
	for _, err := range e.Errors {
		if err.Context.PropString == propString {
			result = append(result, err)
		}
	}
	return result
}

// Issues converts the errors into their wire representation.
func (e *ArkErrors) Issues() []models.ValidationIssue {
	issues := make([]models.ValidationIssue, 0, len(e.Errors))
	for _, err := range e.Errors {
		issues = append(issues, models.ValidationIssue{
			Code:     err.Context.Code,
			Path:     err.Context.PropString,
			Expected: err.Expected,
			Actual:   err.Actual,
			Message:  err.Message,
		})
	}
	return issues
}

func (e *ArkErrors) messages() []string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return msgs
}
