// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/MKhiriev/go-type-keeper/internal/schema"
	"github.com/MKhiriev/go-type-keeper/models"
	"gopkg.in/yaml.v3"
)

// Document is the YAML representation of a catalog.
type Document struct {
	Config *OptionsDoc          `yaml:"config"`
	Scopes map[string]*ScopeDoc `yaml:"scopes"`
}

// ScopeDoc declares one scope.
type ScopeDoc struct {
	Config *OptionsDoc `yaml:"config"`
	Types  []*Decl     `yaml:"types"`
}

// Catalog is a parsed, not yet declared, document.
type Catalog struct {
	doc Document
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}
	return &Catalog{doc: doc}, nil
}

// Global converts the top-level config section into options for
// [schema.Configure].
func (c *Catalog) Global() (models.Options, error) {
	return c.doc.Config.Options()
}

// ScopeNames returns the declared scope names in sorted order.
func (c *Catalog) ScopeNames() []string {
	names := make([]string, 0, len(c.doc.Scopes))
	for name := range c.doc.Scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates every scope and declares its types in document order. Scopes
// capture the global configuration in force when Build is called.
func (c *Catalog) Build() (*Registry, error) {
	reg := NewRegistry()

	for _, name := range c.ScopeNames() {
		doc := c.doc.Scopes[name]
		if doc == nil {
			doc = &ScopeDoc{}
		}

		opts, err := doc.Config.Options()
		if err != nil {
			return nil, fmt.Errorf("scope %s: %w", name, err)
		}
		scope, err := schema.NewScope(name, opts)
		if err != nil {
			return nil, fmt.Errorf("scope %s: %w", name, err)
		}

		for i, decl := range doc.Types {
			if decl == nil || decl.Name == "" {
				return nil, fmt.Errorf("scope %s: type #%d: %w: name is required", name, i, ErrInvalidDecl)
			}
			t, err := decl.build(scope)
			if err != nil {
				return nil, fmt.Errorf("scope %s: type %s: %w", name, decl.Name, err)
			}
			if _, err = scope.Declare(decl.Name, t); err != nil {
				return nil, fmt.Errorf("scope %s: %w", name, err)
			}
		}

		reg.Add(scope)
	}

	return reg, nil
}
