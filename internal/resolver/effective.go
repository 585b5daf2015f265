// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-type-keeper/models"
)

// Effective is a fully populated configuration produced by [Resolve].
// It is immutable; accessors return copies where mutation would be possible.
type Effective struct {
	level   models.ConfigLevel
	local   models.Options
	options models.Options
	parent  *Effective
}

// Level returns the level this configuration was resolved at.
func (e *Effective) Level() models.ConfigLevel {
	return e.level
}

// Parent returns the configuration this one was layered on, or nil at the default level.
func (e *Effective) Parent() *Effective {
	return e.parent
}

// Local returns a copy of the options explicitly set at this level.
func (e *Effective) Local() models.Options {
	return e.local.Copy()
}

// Options returns a copy of the merged options.
func (e *Effective) Options() models.Options {
	return e.options.Copy()
}

func (e *Effective) NumberAllowsNaN() bool {
	return *e.options.NumberAllowsNaN
}

func (e *Effective) DateAllowsInvalid() bool {
	return *e.options.DateAllowsInvalid
}

func (e *Effective) Jitless() bool {
	return *e.options.Jitless
}

func (e *Effective) Clone() *models.ClonePolicy {
	return e.options.Clone
}

func (e *Effective) OnUndeclaredKey() models.UndeclaredKeyPolicy {
	return e.options.OnUndeclaredKey
}

// Custom returns a copy of the merged custom metadata.
func (e *Effective) Custom() models.Meta {
	out := make(models.Meta, len(e.options.Custom))
	maps.Copy(out, e.options.Custom)
	return out
}

// Description returns the generic description in force, if any.
func (e *Effective) Description() string {
	return e.options.Messages.Description
}

// Handlers returns the message handlers for errors with code. Every field of
// the result is set.
func (e *Effective) Handlers(code models.Code) models.MessageHandlers {
	return e.options.ByCode[code].Or(e.options.Messages)
}

// Source returns the level that supplied the named scalar option:
// numberAllowsNaN, dateAllowsInvalid, jitless, clone or onUndeclaredKey.
// ok is false for an unknown name.
func (e *Effective) Source(option string) (level models.ConfigLevel, ok bool) {
	isSet, known := setters[option]
	if !known {
		return 0, false
	}

	for cur := e; cur != nil; cur = cur.parent {
		if isSet(cur.local) {
			return cur.level, true
		}
	}
	return models.LevelDefault, true
}

// OptionSource names the level that supplied one scalar option.
type OptionSource struct {
	Option string
	Level  models.ConfigLevel
}

// Trace reports, for every scalar option, the level of e's chain that
// supplied its value. Entries are ordered by option name.
func Trace(e *Effective) []OptionSource {
	names := slices.Sorted(maps.Keys(setters))
	out := make([]OptionSource, 0, len(names))
	for _, name := range names {
		level, _ := e.Source(name)
		out = append(out, OptionSource{Option: name, Level: level})
	}
	return out
}

var setters = map[string]func(models.Options) bool{
	"numberAllowsNaN":   func(o models.Options) bool { return o.NumberAllowsNaN != nil },
	"dateAllowsInvalid": func(o models.Options) bool { return o.DateAllowsInvalid != nil },
	"jitless":           func(o models.Options) bool { return o.Jitless != nil },
	"clone":             func(o models.Options) bool { return o.Clone != nil },
	"onUndeclaredKey":   func(o models.Options) bool { return o.OnUndeclaredKey != "" },
}
