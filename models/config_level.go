// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigLevel identifies where a set of [Options] was declared.
// Levels are ordered by precedence: a higher level overrides a lower one.
type ConfigLevel uint8

const (
	// LevelDefault holds the built-in, fully populated options.
	LevelDefault ConfigLevel = iota
	// LevelGlobal holds process-wide options applied before types are declared.
	LevelGlobal
	// LevelScope holds options shared by every type declared in a scope.
	LevelScope
	// LevelType holds options attached to a single type.
	LevelType
)

// String returns a human-readable name for the level.
func (l ConfigLevel) String() string {
	switch l {
	case LevelDefault:
		return "default"
	case LevelGlobal:
		return "global"
	case LevelScope:
		return "scope"
	case LevelType:
		return "type"
	default:
		return "unknown"
	}
}

// Parent returns the next broader level. LevelDefault is its own parent.
func (l ConfigLevel) Parent() ConfigLevel {
	if l == LevelDefault {
		return LevelDefault
	}
	return l - 1
}
