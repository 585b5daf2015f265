// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package message

import (
	"strings"

	"github.com/MKhiriev/go-type-keeper/models"
)

// Parts holds the output of every pipeline stage for one leaf error.
type Parts struct {
	Expected string
	Actual   string
	Problem  string
	Message  string
}

// Leaf runs stages 1 and 2 only. It is used for the leaves of composite errors.
func Leaf(h models.MessageHandlers, ctx models.ErrorContext) Parts {
	h = h.Or(Defaults())
	return Parts{
		Expected: h.Expected(ctx),
		Actual:   h.Actual(ctx.Data),
	}
}

// Assemble runs all four stages for a leaf error.
// Unset handlers in h fall back to [Defaults].
func Assemble(h models.MessageHandlers, ctx models.ErrorContext) Parts {
	h = h.Or(Defaults())

	p := Leaf(h, ctx)
	p.Problem = h.Problem(p.Expected, p.Actual, ctx)
	p.Message = h.Message(p.Problem, ctx)
	return p
}

// Composite joins already computed leaves into one message.
//
// When every leaf shares the same path the expectations are joined with "or"
// into a single sentence. Otherwise each leaf message is listed on its own
// line under a header naming the common location.
func Composite(ctx models.ErrorContext, leaves []Parts, leafCtx []models.ErrorContext) Parts {
	if len(leaves) == 0 {
		return Parts{}
	}

	samePath := true
	for _, lc := range leafCtx {
		if lc.PropString != ctx.PropString {
			samePath = false
			break
		}
	}

	expected := make([]string, 0, len(leaves))
	seen := make(map[string]bool, len(leaves))
	actual := ""
	for _, leaf := range leaves {
		if !seen[leaf.Expected] {
			seen[leaf.Expected] = true
			expected = append(expected, leaf.Expected)
		}
		if actual == "" {
			actual = leaf.Actual
		}
	}

	out := Parts{
		Expected: strings.Join(expected, " or "),
		Actual:   actual,
	}

	if samePath {
		out.Problem = DefaultProblem(out.Expected, out.Actual, ctx)
		out.Message = DefaultMessage(out.Problem, ctx)
		return out
	}

	header := ctx.PropString
	if header == "" {
		header = "value"
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(" must be one of:")
	for _, leaf := range leaves {
		b.WriteString("\n • ")
		b.WriteString(leaf.Message)
	}
	out.Problem = b.String()
	out.Message = out.Problem
	return out
}
