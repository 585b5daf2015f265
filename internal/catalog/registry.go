package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-type-keeper/internal/schema"
)

// Registry holds the scopes a catalog declared, by name.
type Registry struct {
	mu     sync.RWMutex
	scopes map[string]*schema.Scope
}

func NewRegistry() *Registry {
	return &Registry{scopes: make(map[string]*schema.Scope)}
}

// Add registers scope under its name, replacing any scope with the same name.
func (r *Registry) Add(scope *schema.Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scopes[scope.Name()] = scope
}

// Scope returns the scope registered under name.
func (r *Registry) Scope(name string) (*schema.Scope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scope, ok := r.scopes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScope, name)
	}
	return scope, nil
}

// Lookup returns the type declared as typeName in scopeName.
func (r *Registry) Lookup(scopeName, typeName string) (*schema.Type, error) {
	scope, err := r.Scope(scopeName)
	if err != nil {
		return nil, err
	}
	return scope.Type(typeName)
}

// Scopes returns every registered scope ordered by name.
func (r *Registry) Scopes() []*schema.Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*schema.Scope, 0, len(r.scopes))
	for _, s := range r.scopes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
