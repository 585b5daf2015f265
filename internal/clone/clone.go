// Package clone implements the built-in deep copy used before morphs are
// applied to validated input.
//
// Deep preserves the dynamic type of every value and the identity graph of the
// input: a pointer, map or slice reachable twice from the input is copied once
// and shared by both places in the output, and cycles are reproduced instead
// of followed forever. Unexported struct fields are copied as deeply as
// exported ones.
package clone

import goclone "github.com/huandu/go-clone"

// Deep returns a deep copy of v.
func Deep(v any) any {
	if v == nil {
		return nil
	}
	return goclone.Slowly(v)
}
