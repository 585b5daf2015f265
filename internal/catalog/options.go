// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/MKhiriev/go-type-keeper/internal/clone"
	"github.com/MKhiriev/go-type-keeper/internal/message"
	"github.com/MKhiriev/go-type-keeper/models"
)

// OptionsDoc is the YAML form of [models.Options]. Message stages are
// text/template strings.
type OptionsDoc struct {
	NumberAllowsNaN   *bool                  `yaml:"numberAllowsNaN"`
	DateAllowsInvalid *bool                  `yaml:"dateAllowsInvalid"`
	Jitless           *bool                  `yaml:"jitless"`
	Clone             *bool                  `yaml:"clone"`
	OnUndeclaredKey   string                 `yaml:"onUndeclaredKey"`
	Meta              map[string]any         `yaml:"meta"`
	HandlersDoc       `yaml:",inline"`
	ByCode            map[string]HandlersDoc `yaml:"byCode"`
}

// HandlersDoc is the YAML form of [models.MessageHandlers].
//
// Template data per stage:
//   - expected: the error context.
//   - actual: the offending value.
//   - problem: the error context plus .Expected and .Actual.
//   - message: the error context plus .Problem.
//
// The functions render and kind are available in every template. A present
// but empty actual omits the "(was ...)" clause.
type HandlersDoc struct {
	Description string  `yaml:"description"`
	Expected    *string `yaml:"expected"`
	Actual      *string `yaml:"actual"`
	Problem     *string `yaml:"problem"`
	Message     *string `yaml:"message"`
}

type problemData struct {
	models.ErrorContext
	Expected string
	Actual   string
}

type messageData struct {
	models.ErrorContext
	Problem string
}

var funcs = template.FuncMap{
	"render": message.Render,
	"kind":   message.Kind,
}

// Options converts the document into a partial options record. A nil
// receiver yields empty options.
func (d *OptionsDoc) Options() (models.Options, error) {
	var opts models.Options
	if d == nil {
		return opts, nil
	}

	opts.NumberAllowsNaN = d.NumberAllowsNaN
	opts.DateAllowsInvalid = d.DateAllowsInvalid
	opts.Jitless = d.Jitless
	if d.Clone != nil {
		if *d.Clone {
			opts.Clone = models.CloneWith(clone.Deep)
		} else {
			opts.Clone = models.NoClone()
		}
	}

	if d.OnUndeclaredKey != "" {
		policy := models.UndeclaredKeyPolicy(d.OnUndeclaredKey)
		if !policy.IsValid() {
			return opts, fmt.Errorf("%w: onUndeclaredKey %q", ErrInvalidConfig, d.OnUndeclaredKey)
		}
		opts.OnUndeclaredKey = policy
	}

	if len(d.Meta) > 0 {
		opts.Custom = models.Meta(d.Meta)
	}

	h, err := d.HandlersDoc.handlers("")
	if err != nil {
		return opts, err
	}
	opts.Messages = h

	if len(d.ByCode) > 0 {
		codes := make([]string, 0, len(d.ByCode))
		for code := range d.ByCode {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		opts.ByCode = make(models.CodeHandlers, len(codes))
		for _, code := range codes {
			h, err := d.ByCode[code].handlers(code)
			if err != nil {
				return opts, err
			}
			opts.ByCode[models.Code(code)] = h
		}
	}

	return opts, nil
}

func (d HandlersDoc) handlers(code string) (models.MessageHandlers, error) {
	h := models.MessageHandlers{Description: d.Description}
	name := func(stage string) string {
		if code == "" {
			return stage
		}
		return code + "." + stage
	}

	if d.Expected != nil {
		tmpl, err := parseTemplate(name("expected"), *d.Expected)
		if err != nil {
			return h, err
		}
		h.Expected = func(ctx models.ErrorContext) string {
			return execute(tmpl, ctx, func() string { return message.DefaultExpected(ctx) })
		}
	}

	if d.Actual != nil {
		if *d.Actual == "" {
			h.Actual = func(any) string { return "" }
		} else {
			tmpl, err := parseTemplate(name("actual"), *d.Actual)
			if err != nil {
				return h, err
			}
			h.Actual = func(data any) string {
				return execute(tmpl, data, func() string { return message.Render(data) })
			}
		}
	}

	if d.Problem != nil {
		tmpl, err := parseTemplate(name("problem"), *d.Problem)
		if err != nil {
			return h, err
		}
		h.Problem = func(expected, actual string, ctx models.ErrorContext) string {
			data := problemData{ErrorContext: ctx, Expected: expected, Actual: actual}
			return execute(tmpl, data, func() string { return message.DefaultProblem(expected, actual, ctx) })
		}
	}

	if d.Message != nil {
		tmpl, err := parseTemplate(name("message"), *d.Message)
		if err != nil {
			return h, err
		}
		h.Message = func(problem string, ctx models.ErrorContext) string {
			data := messageData{ErrorContext: ctx, Problem: problem}
			return execute(tmpl, data, func() string { return message.DefaultMessage(problem, ctx) })
		}
	}

	return h, nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: template %s: %w", ErrInvalidConfig, name, err)
	}
	return tmpl, nil
}

// execute renders tmpl, falling back to the built-in stage output when the
// template fails at run time.
func execute(tmpl *template.Template, data any, fallback func() string) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fallback()
	}
	return buf.String()
}
