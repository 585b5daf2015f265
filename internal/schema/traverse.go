// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/MKhiriev/go-type-keeper/internal/message"
	"github.com/MKhiriev/go-type-keeper/internal/resolver"
	"github.com/MKhiriev/go-type-keeper/models"
)

// pendingAction is a transformation deferred until the whole input validated.
type pendingAction struct {
	cfg  *resolver.Effective
	path models.Path
	run  func() (data any, err error)
}

// traversal collects the errors and deferred transformations of one
// validation. A dry traversal only decides acceptance.
type traversal struct {
	dry     bool
	errs    *ArkErrors
	pending []pendingAction
}

func newTraversal(dry bool) *traversal {
	return &traversal{dry: dry, errs: &ArkErrors{}}
}

func (tr *traversal) fork() *traversal {
	return newTraversal(tr.dry)
}

func (tr *traversal) queue(a pendingAction) {
	if !tr.dry {
		tr.pending = append(tr.pending, a)
	}
}

// applyPending runs deferred transformations in the order they were queued,
// which is post-order: children before their parents.
//
// Once a transformation fails, transformations of its ancestors are skipped.
func (tr *traversal) applyPending() {
	var failed []models.Path
	for _, a := range tr.pending {
		if encloses(a.path, failed) {
			continue
		}
		data, err := a.run()
		if err == nil {
			continue
		}
		failed = append(failed, a.path)
		ctx := newContext(models.CodeMorph, nil, err.Error(), data, a.path)
		tr.errs.Add(assemble(a.cfg.Handlers(models.CodeMorph), ctx))
	}
	tr.pending = nil
}

func encloses(path models.Path, failed []models.Path) bool {
	for _, f := range failed {
		if len(path) <= len(f) && slices.Equal(path, f[:len(path)]) {
			return true
		}
	}
	return false
}

// fail records a leaf error. cfg is the configuration of the Type that owns
// the error.
func (tr *traversal) fail(cfg *resolver.Effective, code models.Code, rule any, description string, data any, path models.Path) {
	ctx := newContext(code, rule, description, data, path)
	if tr.dry {
		tr.errs.Add(&ArkError{Context: ctx})
		return
	}
	tr.errs.Add(assemble(cfg.Handlers(code), ctx))
}

func newContext(code models.Code, rule any, description string, data any, path models.Path) models.ErrorContext {
	return models.ErrorContext{
		Code:        code,
		Rule:        rule,
		Data:        data,
		Actual:      resolver.Default().Handlers(code).Actual(data),
		Path:        path,
		PropString:  path.String(),
		Description: description,
	}
}

func assemble(h models.MessageHandlers, ctx models.ErrorContext) *ArkError {
	p := message.Assemble(h, ctx)
	return &ArkError{
		Context:  ctx,
		Expected: p.Expected,
		Actual:   p.Actual,
		Problem:  p.Problem,
		Message:  p.Message,
	}
}

// traverse validates value at path. set replaces value in its parent once a
// deferred transformation produced a new one; it is nil at the root of a dry
// traversal.
func (t *Type) traverse(tr *traversal, value any, path models.Path, set func(any)) {
	current := value
	assign := func(v any) {
		current = v
		if set != nil {
			set(v)
		}
	}

	before := tr.errs.Len()
	var domainOK bool
	switch t.kind {
	case KindObject:
		domainOK = t.traverseObject(tr, value, path, assign)
	case KindArray:
		domainOK = t.traverseArray(tr, value, path, assign)
	case KindUnion:
		t.traverseUnion(tr, value, path, assign)
		domainOK = tr.errs.Len() == before
	default:
		t.traverseScalar(tr, value, path)
		domainOK = tr.errs.Len() == before
	}

	// constraints only run once the node's own domain matched; failures of
	// nested values do not hide them
	if domainOK {
		for _, c := range t.checks {
			if !c.test(value) {
				tr.fail(t.config, c.code, c.rule, c.description, value, path)
			}
		}
	}

	if len(t.morphs) == 0 || tr.errs.Len() != before {
		return
	}
	morphs := t.morphs
	tr.queue(pendingAction{
		cfg:  t.config,
		path: path,
		run: func() (any, error) {
			v := current
			for _, m := range morphs {
				out, err := m(v)
				if err != nil {
					return v, err
				}
				v = out
			}
			assign(v)
			return v, nil
		},
	})
}

func (t *Type) traverseScalar(tr *traversal, value any, path models.Path) {
	switch t.kind {
	case KindString:
		if _, ok := value.(string); !ok {
			tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
		}
	case KindNumber:
		if !isNumber(value) {
			tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
			return
		}
		if math.IsNaN(toFloat64(value)) && !t.config.NumberAllowsNaN() {
			tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
		}
	case KindBoolean:
		if _, ok := value.(bool); !ok {
			tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
		}
	case KindDate:
		t.checkDate(tr, value, path)
	case KindUnit:
		for _, u := range t.units {
			if valuesEqual(u, value) {
				return
			}
		}
		tr.fail(t.config, models.CodeUnit, t.units, t.description, value, path)
	}
}

func (t *Type) checkDate(tr *traversal, value any, path models.Path) {
	var d time.Time
	switch v := value.(type) {
	case time.Time:
		d = v
	case *time.Time:
		if v != nil {
			d = *v
		}
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			tr.fail(t.config, models.CodeDate, nil, "a valid Date", value, path)
			return
		}
		d = parsed
	default:
		tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
		return
	}

	if d.IsZero() && !t.config.DateAllowsInvalid() {
		tr.fail(t.config, models.CodeDate, nil, "a valid Date", value, path)
	}
}

// traverseObject reports whether value is an object at all.
func (t *Type) traverseObject(tr *traversal, value any, path models.Path, assign func(any)) bool {
	obj, converted, ok := toMap(value)
	if !ok {
		tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
		return false
	}
	if converted && t.transforms {
		tr.queue(pendingAction{cfg: t.config, path: path, run: func() (any, error) {
			assign(obj)
			return obj, nil
		}})
	}

	plan := t.objectPlan()
	for _, key := range plan.keys {
		prop := plan.props[key]
		propPath := path.Append(key)

		v, present := obj[key]
		if !present {
			if !prop.Optional {
				tr.fail(t.base, models.CodeRequired, key, prop.Type.Description(), nil, propPath)
			}
			continue
		}
		prop.Type.traverse(tr, v, propPath, func(out any) { obj[key] = out })
	}

	switch t.config.OnUndeclaredKey() {
	case models.UndeclaredReject:
		for _, key := range plan.undeclaredKeys(obj) {
			tr.fail(t.base, models.CodeUndeclared, key, "removed", obj[key], path.Append(key))
		}
	case models.UndeclaredDelete:
		undeclared := plan.undeclaredKeys(obj)
		if len(undeclared) == 0 {
			return true
		}
		tr.queue(pendingAction{cfg: t.config, path: path, run: func() (any, error) {
			for _, key := range undeclared {
				delete(obj, key)
			}
			return obj, nil
		}})
	}
	return true
}

// traverseArray reports whether value is an array at all.
func (t *Type) traverseArray(tr *traversal, value any, path models.Path, assign func(any)) bool {
	_, native := value.([]any)
	arr, ok := toSlice(value)
	if !ok {
		tr.fail(t.config, models.CodeDomain, nil, t.description, value, path)
		return false
	}
	if !native && t.transforms {
		tr.queue(pendingAction{cfg: t.config, path: path, run: func() (any, error) {
			assign(arr)
			return arr, nil
		}})
	}

	for i, v := range arr {
		t.elem.traverse(tr, v, path.Append(i), func(out any) { arr[i] = out })
	}
	return true
}

func (t *Type) traverseUnion(tr *traversal, value any, path models.Path, assign func(any)) {
	var failed []*ArkErrors
	for _, b := range t.branches {
		sub := tr.fork()
		b.traverse(sub, value, path, assign)
		if !sub.errs.HasErrors() {
			tr.pending = append(tr.pending, sub.pending...)
			return
		}
		failed = append(failed, sub.errs)
	}

	if tr.dry {
		tr.fail(t.config, models.CodeUnion, nil, t.description, value, path)
		return
	}

	var (
		leaves   []message.Parts
		leafCtx  []models.ErrorContext
		branches []*ArkError
	)
	for _, errs := range failed {
		for _, e := range errs.Errors {
			leaves = append(leaves, message.Parts{
				Expected: e.Expected,
				Actual:   e.Actual,
				Problem:  e.Problem,
				Message:  e.Message,
			})
			leafCtx = append(leafCtx, e.Context)
			branches = append(branches, e)
		}
	}

	ctx := newContext(models.CodeUnion, nil, t.description, value, path)

	// a described union reads as a single expectation; problem and message
	// handlers never apply to composite errors
	if !t.local.Messages.IsZero() || !t.local.ByCode[models.CodeUnion].IsZero() {
		p := message.Leaf(t.config.Handlers(models.CodeUnion), ctx)
		p.Problem = message.DefaultProblem(p.Expected, p.Actual, ctx)
		p.Message = message.DefaultMessage(p.Problem, ctx)
		tr.errs.Add(&ArkError{
			Context:  ctx,
			Expected: p.Expected,
			Actual:   p.Actual,
			Problem:  p.Problem,
			Message:  p.Message,
			Branches: branches,
		})
		return
	}

	p := message.Composite(ctx, leaves, leafCtx)
	tr.errs.Add(&ArkError{
		Context:  ctx,
		Expected: p.Expected,
		Actual:   p.Actual,
		Problem:  p.Problem,
		Message:  p.Message,
		Branches: branches,
	})
}

// toMap returns v as map[string]any. Maps with other value types are copied
// and reported as converted.
func toMap(v any) (map[string]any, bool, bool) {
	if obj, ok := v.(map[string]any); ok {
		return obj, false, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true, true
}
