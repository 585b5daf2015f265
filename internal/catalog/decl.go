// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/MKhiriev/go-type-keeper/internal/schema"
	"github.com/MKhiriev/go-type-keeper/models"
)

// Decl declares one type. Nested declarations (props, items, branches) use
// the same shape without a name.
type Decl struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Ref names a type declared earlier in the same scope. A ref decl must
	// not set kind.
	Ref string `yaml:"ref"`

	MinLength   *int     `yaml:"minLength"`
	MaxLength   *int     `yaml:"maxLength"`
	Pattern     string   `yaml:"pattern"`
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
	DivisibleBy *float64 `yaml:"divisibleBy"`
	Values      []any    `yaml:"values"`

	Props    map[string]*Decl `yaml:"props"`
	Optional bool             `yaml:"optional"`
	Items    *Decl            `yaml:"items"`
	Branches []*Decl          `yaml:"branches"`

	Morph []string `yaml:"morph"`

	Config *OptionsDoc `yaml:"config"`
	// Codes restricts the message handlers of Config to errors with these codes.
	Codes []string `yaml:"codes"`
}

func (d *Decl) build(scope *schema.Scope) (*schema.Type, error) {
	t, err := d.base(scope)
	if err != nil {
		return nil, err
	}

	if t, err = d.constrain(t); err != nil {
		return nil, err
	}

	for _, name := range d.Morph {
		m, ok := schema.Morphs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMorph, name)
		}
		t = t.Pipe(m)
	}

	if d.Config != nil {
		opts, err := d.Config.Options()
		if err != nil {
			return nil, err
		}
		codes := make([]models.Code, 0, len(d.Codes))
		for _, c := range d.Codes {
			codes = append(codes, models.Code(c))
		}
		if t, err = t.Configure(opts, codes...); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (d *Decl) base(scope *schema.Scope) (*schema.Type, error) {
	if d.Ref != "" {
		if d.Kind != "" {
			return nil, fmt.Errorf("%w: ref %s sets kind %s", ErrInvalidDecl, d.Ref, d.Kind)
		}
		t, err := scope.Type(d.Ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRef, d.Ref)
		}
		return t, nil
	}

	switch schema.Kind(d.Kind) {
	case schema.KindString:
		return schema.String(), nil
	case schema.KindNumber:
		return schema.Number(), nil
	case "integer":
		return schema.Integer(), nil
	case schema.KindBoolean:
		return schema.Boolean(), nil
	case schema.KindDate:
		return schema.Date(), nil
	case schema.KindUnit:
		if len(d.Values) == 0 {
			return nil, fmt.Errorf("%w: unit needs values", ErrInvalidDecl)
		}
		return schema.Unit(d.Values...), nil
	case schema.KindObject:
		return d.object(scope)
	case schema.KindArray:
		if d.Items == nil {
			return nil, fmt.Errorf("%w: array needs items", ErrInvalidDecl)
		}
		elem, err := d.Items.build(scope)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return schema.Array(elem), nil
	case schema.KindUnion:
		if len(d.Branches) == 0 {
			return nil, fmt.Errorf("%w: union needs branches", ErrInvalidDecl)
		}
		branches := make([]*schema.Type, 0, len(d.Branches))
		for i, b := range d.Branches {
			if b == nil {
				return nil, fmt.Errorf("branch %d: %w: empty", i, ErrInvalidDecl)
			}
			t, err := b.build(scope)
			if err != nil {
				return nil, fmt.Errorf("branch %d: %w", i, err)
			}
			branches = append(branches, t)
		}
		return schema.Union(branches...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}

func (d *Decl) object(scope *schema.Scope) (*schema.Type, error) {
	keys := make([]string, 0, len(d.Props))
	for key := range d.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	props := make([]schema.Property, 0, len(keys))
	for _, key := range keys {
		p := d.Props[key]
		if p == nil {
			return nil, fmt.Errorf("prop %s: %w: empty", key, ErrInvalidDecl)
		}
		t, err := p.build(scope)
		if err != nil {
			return nil, fmt.Errorf("prop %s: %w", key, err)
		}
		if p.Optional {
			props = append(props, schema.Optional(key, t))
		} else {
			props = append(props, schema.Prop(key, t))
		}
	}
	return schema.Object(props...), nil
}

func (d *Decl) constrain(t *schema.Type) (*schema.Type, error) {
	if d.MinLength != nil {
		t = t.MinLength(*d.MinLength)
	}
	if d.MaxLength != nil {
		t = t.MaxLength(*d.MaxLength)
	}
	if d.Pattern != "" {
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern: %w", ErrInvalidDecl, err)
		}
		t = t.Pattern(re)
	}
	if d.Min != nil {
		t = t.Min(*d.Min)
	}
	if d.Max != nil {
		t = t.Max(*d.Max)
	}
	if d.DivisibleBy != nil {
		t = t.DivisibleBy(*d.DivisibleBy)
	}
	return t, nil
}
