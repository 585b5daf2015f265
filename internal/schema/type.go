// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"slices"
	"sort"

	"github.com/MKhiriev/go-type-keeper/internal/resolver"
	"github.com/MKhiriev/go-type-keeper/internal/utils"
	"github.com/MKhiriev/go-type-keeper/models"
)

// Kind is the domain a Type accepts.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
	KindUnit    Kind = "unit"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindUnion   Kind = "union"
)

// Morph transforms a value after the whole input validated successfully.
type Morph func(v any) (any, error)

var ids = utils.NewUUIDGenerator()

// Type is a compiled validator for one data shape. Types are immutable:
// every method that changes a Type returns a new one.
type Type struct {
	id          string
	kind        Kind
	description string

	// base is the configuration in force when the Type was declared, config
	// is base with the Type's own options layered on.
	base   *resolver.Effective
	config *resolver.Effective
	local  models.Options
	scope  *Scope

	checks   []check
	props    []Property
	elem     *Type
	branches []*Type
	units    []any
	morphs   []Morph

	plan       *objectPlan
	transforms bool
}

func newType(kind Kind, description string) *Type {
	base := Global()
	t := &Type{
		id:          ids.Generate(),
		kind:        kind,
		description: description,
		base:        base,
	}
	if err := t.resolve(); err != nil {
		// empty type-level options over a valid base cannot fail
		panic(fmt.Sprintf("schema: %v", err))
	}
	return t
}

// String accepts strings.
func String() *Type {
	return newType(KindString, "a string")
}

// Number accepts any Go numeric value. NaN is rejected unless the
// numberAllowsNaN option is set.
func Number() *Type {
	return newType(KindNumber, "a number")
}

// Integer accepts numbers without a fractional part.
func Integer() *Type {
	return Number().DivisibleBy(1)
}

// Boolean accepts true and false.
func Boolean() *Type {
	return newType(KindBoolean, "a boolean")
}

// Date accepts time.Time values and RFC 3339 strings. Malformed strings are
// always rejected, the zero time unless the dateAllowsInvalid option is set.
func Date() *Type {
	return newType(KindDate, "a Date")
}

// Unit accepts exactly one of values. Numbers compare by value regardless of
// their Go type.
func Unit(values ...any) *Type {
	t := newType(KindUnit, describeUnits(values))
	t.units = slices.Clone(values)
	return t
}

// Array accepts slices whose every element satisfies elem.
func Array(elem *Type) *Type {
	t := newType(KindArray, "an array")
	t.elem = elem
	t.compile()
	return t
}

// Union accepts a value satisfying at least one of branches. The first
// matching branch decides the output.
func Union(branches ...*Type) *Type {
	descriptions := make([]string, 0, len(branches))
	for _, b := range branches {
		descriptions = append(descriptions, b.Description())
	}
	t := newType(KindUnion, joinOr(descriptions))
	t.branches = slices.Clone(branches)
	t.compile()
	return t
}

// ID returns the Type's unique identifier.
func (t *Type) ID() string {
	return t.id
}

// Kind returns the domain the Type accepts.
func (t *Type) Kind() Kind {
	return t.kind
}

// Description returns the type-level description if one was configured,
// otherwise the built-in one, e.g. "a string".
func (t *Type) Description() string {
	if t.local.Messages.Description != "" {
		return t.local.Messages.Description
	}
	return t.description
}

// Config returns the Type's effective configuration.
func (t *Type) Config() *resolver.Effective {
	return t.config
}

// Meta returns the Type's effective custom metadata.
func (t *Type) Meta() models.Meta {
	return t.config.Custom()
}

// MetaValue returns t's custom metadata under key converted to T.
func MetaValue[T any](t *Type, key string) (T, bool) {
	return models.MetaValue[T](t.config.Custom(), key)
}

// Scope returns the scope the Type was declared in, or nil.
func (t *Type) Scope() *Scope {
	return t.scope
}

// Props returns the declared properties of an object Type in key order.
func (t *Type) Props() []Property {
	out := slices.Clone(t.props)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Configure returns a new Type with opts layered on the receiver's type-level
// options. With codes, the message handlers of opts apply only to errors
// carrying one of those codes. The receiver is not modified.
func (t *Type) Configure(opts models.Options, codes ...models.Code) (*Type, error) {
	local, err := resolver.Overlay(opts.ForCodes(codes...), t.local)
	if err != nil {
		return nil, err
	}

	c := t.derive()
	c.local = local
	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

// Describe returns a new Type whose expected phrase is description.
func (t *Type) Describe(description string) *Type {
	c, err := t.Configure(models.Options{Messages: models.MessageHandlers{Description: description}})
	if err != nil {
		// a description alone is always a valid option set
		panic(fmt.Sprintf("schema: %v", err))
	}
	return c
}

// Pipe returns a new Type that applies morphs, in order, to validated values.
func (t *Type) Pipe(morphs ...Morph) *Type {
	c := t.derive()
	c.morphs = append(c.morphs, morphs...)
	c.compile()
	return c
}

// Transforms reports whether validating with t can change the input: t or a
// nested Type has morphs, or an object deletes undeclared keys.
func (t *Type) Transforms() bool {
	return t.transforms
}

// Allows reports whether v satisfies t.
func (t *Type) Allows(v any) bool {
	tr := newTraversal(true)
	t.traverse(tr, v, nil, nil)
	return !tr.errs.HasErrors()
}

// Validate checks input against t. On success it returns the transformed
// value and a nil error; otherwise it returns nil and an *ArkErrors holding
// every failure.
//
// Transforming Types copy input first according to the effective clone
// policy; with cloning disabled the caller's input is modified in place.
func (t *Type) Validate(input any) (any, error) {
	data := input
	if t.transforms {
		data = t.config.Clone().Apply(input)
	}

	out := data
	tr := newTraversal(false)
	t.traverse(tr, data, nil, func(v any) { out = v })
	if err := tr.errs.AsError(); err != nil {
		return nil, err
	}

	tr.applyPending()
	if err := tr.errs.AsError(); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Type) derive() *Type {
	c := *t
	c.id = ids.Generate()
	c.local = t.local.Copy()
	c.checks = slices.Clone(t.checks)
	c.props = slices.Clone(t.props)
	c.branches = slices.Clone(t.branches)
	c.units = slices.Clone(t.units)
	c.morphs = slices.Clone(t.morphs)
	return &c
}

func (t *Type) resolve() error {
	eff, err := resolver.Resolve(models.LevelType, t.local, t.base)
	if err != nil {
		return err
	}
	t.config = eff
	t.compile()
	return nil
}

// rebase returns a copy of t, and of every nested Type not owned by another
// scope, declared under scope.
func (t *Type) rebase(scope *Scope) (*Type, error) {
	c := t.derive()
	c.base = scope.config
	c.scope = scope

	for i, p := range c.props {
		if p.Type.scope != nil {
			continue
		}
		nested, err := p.Type.rebase(scope)
		if err != nil {
			return nil, err
		}
		c.props[i].Type = nested
	}
	if c.elem != nil && c.elem.scope == nil {
		nested, err := c.elem.rebase(scope)
		if err != nil {
			return nil, err
		}
		c.elem = nested
	}
	for i, b := range c.branches {
		if b.scope != nil {
			continue
		}
		nested, err := b.rebase(scope)
		if err != nil {
			return nil, err
		}
		c.branches[i] = nested
	}

	if err := c.resolve(); err != nil {
		return nil, err
	}
	return c, nil
}

// compile precomputes what validation needs. With the jitless option the
// object plan is left unset and rebuilt on every validation instead.
func (t *Type) compile() {
	t.plan = nil
	if t.kind == KindObject && !t.config.Jitless() {
		t.plan = newObjectPlan(t.props)
	}
	t.transforms = t.computeTransforms()
}

func (t *Type) computeTransforms() bool {
	if len(t.morphs) > 0 {
		return true
	}
	if t.kind == KindObject && t.config.OnUndeclaredKey() == models.UndeclaredDelete {
		return true
	}
	for _, p := range t.props {
		if p.Type.transforms {
			return true
		}
	}
	if t.elem != nil && t.elem.transforms {
		return true
	}
	for _, b := range t.branches {
		if b.transforms {
			return true
		}
	}
	return false
}
