// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Code identifies the constraint a validation error was produced by.
type Code string

// Built-in error codes.
const (
	CodeDomain     Code = "domain"
	CodeRequired   Code = "required"
	CodeUndeclared Code = "undeclared"
	CodeMinLength  Code = "minLength"
	CodeMaxLength  Code = "maxLength"
	CodeMin        Code = "min"
	CodeMax        Code = "max"
	CodeDivisor    Code = "divisor"
	CodePattern    Code = "pattern"
	CodeUnit       Code = "unit"
	CodeDate       Code = "date"
	CodePredicate  Code = "predicate"
	CodeMorph      Code = "morph"
	CodeUnion      Code = "union"
)

// UndeclaredKeyPolicy controls what happens to object keys that are not part
// of the declared shape.
type UndeclaredKeyPolicy string

const (
	// UndeclaredIgnore passes undeclared keys through unchanged.
	UndeclaredIgnore UndeclaredKeyPolicy = "ignore"
	// UndeclaredDelete removes undeclared keys from the output.
	UndeclaredDelete UndeclaredKeyPolicy = "delete"
	// UndeclaredReject reports one error per undeclared key.
	UndeclaredReject UndeclaredKeyPolicy = "reject"
)

// IsValid reports whether p is one of the known policies.
func (p UndeclaredKeyPolicy) IsValid() bool {
	switch p {
	case UndeclaredIgnore, UndeclaredDelete, UndeclaredReject:
		return true
	default:
		return false
	}
}

// CloneFunc copies a value before morphs are applied to it.
type CloneFunc func(v any) any

// ClonePolicy decides whether input is copied before it is transformed.
// A nil *ClonePolicy inside [Options] means "unset".
type ClonePolicy struct {
	// Disabled makes transformations mutate the original input.
	Disabled bool

	// Fn performs the copy. Ignored when Disabled is true.
	Fn CloneFunc
}

// CloneWith returns a policy that copies input with fn.
func CloneWith(fn CloneFunc) *ClonePolicy {
	return &ClonePolicy{Fn: fn}
}

// NoClone returns a policy that disables copying.
func NoClone() *ClonePolicy {
	return &ClonePolicy{Disabled: true}
}

// Apply copies v according to the policy.
func (p *ClonePolicy) Apply(v any) any {
	if p == nil || p.Disabled || p.Fn == nil {
		return v
	}
	return p.Fn(v)
}

// MessageHandlers customize the four stages of error message assembly.
// Nil functions and an empty Description are unset.
type MessageHandlers struct {
	// Description replaces the expected phrase verbatim.
	Description string

	// Expected completes "must be ___".
	Expected func(ctx ErrorContext) string

	// Actual completes "(was ___)". Returning "" omits the clause.
	Actual func(data any) string

	// Problem combines expected and actual into one sentence.
	Problem func(expected, actual string, ctx ErrorContext) string

	// Message combines the problem with the path.
	Message func(problem string, ctx ErrorContext) string
}

// IsZero reports whether no handler is set.
func (h MessageHandlers) IsZero() bool {
	return h.Description == "" && h.Expected == nil && h.Actual == nil && h.Problem == nil && h.Message == nil
}

// Normalized returns h with Description promoted to a constant Expected
// when no Expected function was given.
func (h MessageHandlers) Normalized() MessageHandlers {
	if h.Expected == nil && h.Description != "" {
		description := h.Description
		h.Expected = func(ErrorContext) string { return description }
	}
	return h
}

// Or fills every unset field of h from fallback.
func (h MessageHandlers) Or(fallback MessageHandlers) MessageHandlers {
	if h.Description == "" {
		h.Description = fallback.Description
	}
	if h.Expected == nil {
		h.Expected = fallback.Expected
	}
	if h.Actual == nil {
		h.Actual = fallback.Actual
	}
	if h.Problem == nil {
		h.Problem = fallback.Problem
	}
	if h.Message == nil {
		h.Message = fallback.Message
	}
	return h
}

// CodeHandlers maps an error code to the handlers used for errors with that code.
type CodeHandlers map[Code]MessageHandlers

// Options is a partial configuration record. Zero-valued fields are unset and
// inherit from the next broader [ConfigLevel].
type Options struct {
	NumberAllowsNaN   *bool
	DateAllowsInvalid *bool
	Jitless           *bool
	Clone             *ClonePolicy
	OnUndeclaredKey   UndeclaredKeyPolicy

	// Custom is open metadata carried alongside a type. It has no built-in meaning.
	Custom Meta

	// Messages apply to every error code.
	Messages MessageHandlers

	// ByCode apply only to errors with a matching code and are consulted
	// before Messages of the same or a broader level.
	ByCode CodeHandlers
}

// Copy returns a copy of o whose maps can be modified without affecting o.
// The maps are always non-nil.
func (o Options) Copy() Options {
	out := o
	out.Custom = make(Meta, len(o.Custom))
	maps.Copy(out.Custom, o.Custom)
	out.ByCode = make(CodeHandlers, len(o.ByCode))
	maps.Copy(out.ByCode, o.ByCode)
	return out
}

// ForCodes returns a copy of o whose Messages are moved under each of codes.
// Without codes o is returned unchanged.
func (o Options) ForCodes(codes ...Code) Options {
	if len(codes) == 0 || o.Messages.IsZero() {
		return o
	}

	out := o.Copy()
	for _, code := range codes {
		out.ByCode[code] = o.Messages.Or(out.ByCode[code])
	}
	out.Messages = MessageHandlers{}
	return out
}

// Bool returns a pointer to v. It is a helper for the tri-state option fields.
func Bool(v bool) *bool {
	return &v
}
