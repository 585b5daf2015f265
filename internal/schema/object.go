// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"sort"
)

// Property is one declared key of an object Type.
type Property struct {
	Key      string
	Type     *Type
	Optional bool
}

// Prop declares a required key.
func Prop(key string, t *Type) Property {
	return Property{Key: key, Type: t}
}

// Optional declares a key that may be absent.
func Optional(key string, t *Type) Property {
	return Property{Key: key, Type: t, Optional: true}
}

// Object accepts map[string]any values with the declared properties. When a
// key is declared twice the last declaration wins. Keys outside the declared
// shape are handled by the onUndeclaredKey option.
func Object(props ...Property) *Type {
	t := newType(KindObject, "an object")

	seen := make(map[string]int, len(props))
	for _, p := range props {
		if i, ok := seen[p.Key]; ok {
			t.props[i] = p
			continue
		}
		seen[p.Key] = len(t.props)
		t.props = append(t.props, p)
	}

	t.compile()
	return t
}

// objectPlan is the precompiled traversal order of an object Type.
type objectPlan struct {
	keys     []string
	props    map[string]Property
	declared map[string]bool
}

func newObjectPlan(props []Property) *objectPlan {
	plan := &objectPlan{
		keys:     make([]string, 0, len(props)),
		props:    make(map[string]Property, len(props)),
		declared: make(map[string]bool, len(props)),
	}
	for _, p := range props {
		plan.keys = append(plan.keys, p.Key)
		plan.props[p.Key] = p
		plan.declared[p.Key] = true
	}
	sort.Strings(plan.keys)
	return plan
}

func (t *Type) objectPlan() *objectPlan {
	if t.plan != nil {
		return t.plan
	}
	return newObjectPlan(t.props)
}

// undeclaredKeys returns the keys of obj outside the plan, sorted.
func (p *objectPlan) undeclaredKeys(obj map[string]any) []string {
	var keys []string
	for key := range obj {
		if !p.declared[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
