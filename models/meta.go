package models

// Meta is an open, user-extensible record attached to a type.
type Meta map[string]any

// Get returns the value stored under key.
func (m Meta) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// MetaValue returns the value stored under key converted to T.
// ok is false when the key is absent or holds a value of another type.
func MetaValue[T any](m Meta, key string) (T, bool) {
	var zero T
	v, ok := m[key]
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
