// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-type-keeper/models"
)

// Resolve layers local over parent and returns the effective configuration
// for level. parent must be nil for [models.LevelDefault] and non-nil, and of
// a broader level, otherwise.
//
// Neither local nor parent is modified.
func Resolve(level models.ConfigLevel, local models.Options, parent *Effective) (*Effective, error) {
	if local.OnUndeclaredKey != "" && !local.OnUndeclaredKey.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUndeclaredKeyPolicy, local.OnUndeclaredKey)
	}

	eff := local.Copy()
	eff.Messages = eff.Messages.Normalized()
	for code, h := range eff.ByCode {
		eff.ByCode[code] = h.Normalized()
	}

	if parent == nil {
		if level != models.LevelDefault {
			return nil, fmt.Errorf("%w: %s", ErrMissingParent, level)
		}
		if err := checkComplete(eff); err != nil {
			return nil, err
		}
		return &Effective{level: level, local: local.Copy(), options: eff}, nil
	}

	if parent.level >= level {
		return nil, fmt.Errorf("%w: %s over %s", ErrLevelOrder, level, parent.level)
	}

	// Generic handlers set at this level shadow code-keyed handlers inherited
	// from broader levels. Copying them into the code entries keeps the merge
	// below from filling those fields from the parent.
	for code := range parent.options.ByCode {
		eff.ByCode[code] = eff.ByCode[code].Or(eff.Messages)
	}

	if err := mergo.Merge(&eff, parent.options,
		mergo.WithoutDereference,
		mergo.WithTransformers(codeHandlersTransformer{}),
	); err != nil {
		return nil, fmt.Errorf("error merging %s options: %w", level, err)
	}

	return &Effective{level: level, local: local.Copy(), options: eff, parent: parent}, nil
}

// Chain resolves locals in order, starting from [Default]. locals[0] is the
// global level, locals[1] the scope level, locals[2] the type level.
func Chain(locals ...models.Options) (*Effective, error) {
	eff := Default()
	for i, local := range locals {
		level := models.LevelGlobal + models.ConfigLevel(i)
		if level > models.LevelType {
			return nil, fmt.Errorf("%w: too many levels (%d)", ErrLevelOrder, len(locals))
		}

		var err error
		if eff, err = Resolve(level, local, eff); err != nil {
			return nil, err
		}
	}
	return eff, nil
}

// codeHandlersTransformer merges code-keyed handlers field by field, so a code
// entry at a specific level only overrides the handlers it actually sets.
type codeHandlersTransformer struct{}

func (codeHandlersTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(models.CodeHandlers{}) {
		return nil
	}

	return func(dst, src reflect.Value) error {
		d, ok := dst.Interface().(models.CodeHandlers)
		if !ok {
			return nil
		}
		s, _ := src.Interface().(models.CodeHandlers)
		for code, inherited := range s {
			h := d[code]
			if err := mergo.Merge(&h, inherited); err != nil {
				return fmt.Errorf("error merging %q handlers: %w", code, err)
			}
			d[code] = h
		}
		return nil
	}
}

func checkComplete(o models.Options) error {
	var missing []string
	if o.NumberAllowsNaN == nil {
		missing = append(missing, "numberAllowsNaN")
	}
	if o.DateAllowsInvalid == nil {
		missing = append(missing, "dateAllowsInvalid")
	}
	if o.Jitless == nil {
		missing = append(missing, "jitless")
	}
	if o.Clone == nil {
		missing = append(missing, "clone")
	}
	if o.OnUndeclaredKey == "" {
		missing = append(missing, "onUndeclaredKey")
	}
	if o.Custom == nil {
		missing = append(missing, "custom")
	}
	h := o.Messages
	if h.Expected == nil || h.Actual == nil || h.Problem == nil || h.Message == nil {
		missing = append(missing, "messages")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrIncompleteDefaults, missing)
	}
	return nil
}

// Overlay returns over merged onto under at the same level: fields set in over
// win, unset fields are taken from under. Code-keyed handlers merge per field.
func Overlay(over, under models.Options) (models.Options, error) {
	out := over.Copy()
	if err := mergo.Merge(&out, under.Copy(),
		mergo.WithoutDereference,
		mergo.WithTransformers(codeHandlersTransformer{}),
	); err != nil {
		return models.Options{}, fmt.Errorf("error overlaying options: %w", err)
	}
	return out, nil
}
