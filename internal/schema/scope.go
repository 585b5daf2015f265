// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-type-keeper/internal/resolver"
	"github.com/MKhiriev/go-type-keeper/models"
)

// Scope is a named group of Types sharing scope-level options.
type Scope struct {
	id     string
	name   string
	config *resolver.Effective

	mu    sync.RWMutex
	types map[string]*Type
}

// NewScope creates a scope whose options are layered on the global
// configuration in force now.
func NewScope(name string, opts models.Options) (*Scope, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	eff, err := resolver.Resolve(models.LevelScope, opts, Global())
	if err != nil {
		return nil, fmt.Errorf("error configuring scope %q: %w", name, err)
	}

	return &Scope{
		id:     ids.Generate(),
		name:   name,
		config: eff,
		types:  make(map[string]*Type),
	}, nil
}

// Declare registers t under name and returns the registered copy, which
// inherits the scope configuration. Nested Types that do not belong to another
// scope are re-declared in s as well.
func (s *Scope) Declare(name string, t *Type) (*Type, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if t == nil {
		return nil, ErrNilType
	}

	declared, err := t.rebase(s)
	if err != nil {
		return nil, fmt.Errorf("error declaring %s.%s: %w", s.name, name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.types[name]; ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateType, s.name, name)
	}
	s.types[name] = declared
	return declared, nil
}

// Type returns the Type declared under name.
func (s *Scope) Type(name string) (*Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownType, s.name, name)
	}
	return t, nil
}

// Types returns the declared names in sorted order.
func (s *Scope) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scope) ID() string {
	return s.id
}

func (s *Scope) Name() string {
	return s.name
}

// Config returns the scope-level effective configuration.
func (s *Scope) Config() *resolver.Effective {
	return s.config
}
