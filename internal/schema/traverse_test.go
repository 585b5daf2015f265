package schema

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-type-keeper/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndeclaredKeys_Delete(t *testing.T) {
	withCleanGlobal(t)
	require.NoError(t, Configure(models.Options{OnUndeclaredKey: models.UndeclaredDelete}))

	user := Object(Prop("name", String()))
	input := map[string]any{"name": "Alice", "age": "42"}

	out, err := user.Validate(input)

	require.NoError(t, err)
	if diff := cmp.Diff(map[string]any{"name": "Alice"}, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]any{"name": "Alice", "age": "42"}, input, "input must not be modified")
	assert.True(t, user.Transforms())
}

func TestUndeclaredKeys_DeleteNested(t *testing.T) {
	withCleanGlobal(t)

	item, err := Object(Prop("sku", String())).Configure(models.Options{OnUndeclaredKey: models.UndeclaredDelete})
	require.NoError(t, err)
	order := Object(Prop("items", Array(item)))

	out, err := order.Validate(map[string]any{
		"items": []any{
			map[string]any{"sku": "A", "note": "x"},
			map[string]any{"sku": "B"},
		},
		"comment": "kept",
	})

	require.NoError(t, err)
	want := map[string]any{
		"items": []any{
			map[string]any{"sku": "A"},
			map[string]any{"sku": "B"},
		},
		"comment": "kept",
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestUndeclaredKeys_Reject(t *testing.T) {
	withCleanGlobal(t)

	obj, err := Object(Prop("a", String())).Configure(models.Options{OnUndeclaredKey: models.UndeclaredReject})
	require.NoError(t, err)

	_, err = obj.Validate(map[string]any{"a": "x", "z": 1, "b": 2})

	errs := validationErrors(t, err)
	require.Equal(t, 2, errs.Len())
	assert.Equal(t, "b must be removed", errs.Errors[0].Message)
	assert.Equal(t, "z must be removed", errs.Errors[1].Message)
	for _, e := range errs.Errors {
		assert.Equal(t, models.CodeUndeclared, e.Code())
		assert.Equal(t, "removed", e.Expected)
		assert.Empty(t, e.Actual)
	}
	assert.False(t, obj.Transforms())
}

func TestUndeclaredKeys_IgnoreByDefault(t *testing.T) {
	withCleanGlobal(t)

	obj := Object(Prop("a", String()))
	input := map[string]any{"a": "x", "extra": true}

	out, err := obj.Validate(input)

	require.NoError(t, err)
	assert.Equal(t, input, out)
	assert.False(t, obj.Transforms())
}

func TestMorphs(t *testing.T) {
	withCleanGlobal(t)

	form := Object(
		Prop("age", String().Pipe(ParseNumber)),
		Prop("email", String().Pipe(TrimSpace, ToLower)),
		Optional("tags", Array(String().Pipe(ToUpper))),
	)
	input := map[string]any{"age": "42", "email": "  Bob@Example.COM ", "tags": []string{"a", "b"}}

	out, err := form.Validate(input)

	require.NoError(t, err)
	want := map[string]any{"age": 42.0, "email": "bob@example.com", "tags": []any{"A", "B"}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "42", input["age"])
	assert.Equal(t, []string{"a", "b"}, input["tags"])
}

func TestMorphs_RunOnlyAfterSuccess(t *testing.T) {
	withCleanGlobal(t)

	calls := 0
	counting := func(v any) (any, error) {
		calls++
		return v, nil
	}
	obj := Object(Prop("a", String().Pipe(counting)), Prop("b", Number()))

	_, err := obj.Validate(map[string]any{"a": "x", "b": "not a number"})

	require.Error(t, err)
	assert.Zero(t, calls)
	assert.False(t, obj.Allows(map[string]any{"a": "x"}))
	assert.Zero(t, calls)
}

func TestMorphs_Error(t *testing.T) {
	withCleanGlobal(t)

	parsed := 0
	obj := Object(Prop("age", String().Pipe(ParseNumber))).Pipe(func(v any) (any, error) {
		parsed++
		return v, nil
	})

	_, err := obj.Validate(map[string]any{"age": "abc"})

	errs := validationErrors(t, err)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, models.CodeMorph, errs.Errors[0].Code())
	assert.Equal(t, `age must be a well-formed numeric string (was "abc")`, errs.Errors[0].Message)
	assert.Zero(t, parsed, "enclosing morph must be skipped")
}

func TestMorphs_ParentSeesChildOutput(t *testing.T) {
	withCleanGlobal(t)

	var seen any
	obj := Object(Prop("n", String().Pipe(ParseNumber))).Pipe(func(v any) (any, error) {
		seen = v.(map[string]any)["n"]
		return v, nil
	})

	_, err := obj.Validate(map[string]any{"n": "7"})

	require.NoError(t, err)
	assert.Equal(t, 7.0, seen)
}

func TestClone_DisabledMutatesInput(t *testing.T) {
	withCleanGlobal(t)
	require.NoError(t, Configure(models.Options{Clone: models.NoClone()}))

	shape := Object(Prop("age", String().Pipe(ParseNumber)))
	input := map[string]any{"age": "42"}

	out, err := shape.Validate(input)

	require.NoError(t, err)
	assert.Equal(t, 42.0, input["age"])
	assert.Equal(t, 42.0, out.(map[string]any)["age"])
}

func TestClone_CustomFunction(t *testing.T) {
	withCleanGlobal(t)

	cloned := 0
	shape, err := Object(Prop("age", String().Pipe(ParseNumber))).Configure(models.Options{
		Clone: models.CloneWith(func(v any) any {
			cloned++
			src := v.(map[string]any)
			dst := make(map[string]any, len(src))
			for k, val := range src {
				dst[k] = val
			}
			return dst
		}),
	})
	require.NoError(t, err)
	input := map[string]any{"age": "42"}

	_, err = shape.Validate(input)

	require.NoError(t, err)
	assert.Equal(t, 1, cloned)
	assert.Equal(t, "42", input["age"])
}

func TestClone_SkippedForNonTransformingTypes(t *testing.T) {
	withCleanGlobal(t)

	cloned := 0
	require.NoError(t, Configure(models.Options{
		Clone: models.CloneWith(func(v any) any { cloned++; return v }),
	}))
	shape := Object(Prop("age", Number()))

	_, err := shape.Validate(map[string]any{"age": 1})

	require.NoError(t, err)
	assert.Zero(t, cloned)
}

func TestUnion(t *testing.T) {
	withCleanGlobal(t)

	t.Run("first matching branch wins", func(t *testing.T) {
		u := Union(String().Pipe(ToUpper), String().Pipe(ToLower))

		out, err := u.Validate("MiXeD")

		require.NoError(t, err)
		assert.Equal(t, "MIXED", out)
	})

	t.Run("same path joins expectations", func(t *testing.T) {
		u := Union(String(), Number())

		_, err := u.Validate(true)

		errs := validationErrors(t, err)
		require.Equal(t, 1, errs.Len())
		e := errs.Errors[0]
		assert.Equal(t, models.CodeUnion, e.Code())
		assert.True(t, e.IsComposite())
		assert.Len(t, e.Branches, 2)
		assert.Equal(t, "must be a string or a number (was boolean)", e.Message)
	})

	t.Run("different paths list leaves", func(t *testing.T) {
		u := Union(Object(Prop("a", String())), Object(Prop("b", Number())))

		_, err := u.Validate(map[string]any{"a": 1, "b": "x"})

		require.Error(t, err)
		want := strings.Join([]string{
			"value must be one of:",
			" • a must be a string (was number)",
			" • b must be a number (was string)",
		}, "\n")
		assert.Equal(t, want, err.Error())
	})

	t.Run("composite bypasses message customization", func(t *testing.T) {
		inner, err := String().Configure(models.Options{
			Messages: models.MessageHandlers{Message: func(string, models.ErrorContext) string { return "custom" }},
		})
		require.NoError(t, err)
		form := Object(Prop("id", Union(inner, Number())))

		_, err = form.Validate(map[string]any{"id": true})

		require.Error(t, err)
		assert.Equal(t, "id must be a string or a number (was boolean)", err.Error())
	})

	t.Run("configured union skips problem and message", func(t *testing.T) {
		calls := 0
		u, err := Union(String(), Number()).Configure(models.Options{
			Messages: models.MessageHandlers{
				Problem: func(expected, _ string, _ models.ErrorContext) string {
					calls++
					return "PROB " + expected
				},
				Message: func(problem string, _ models.ErrorContext) string {
					calls++
					return "CUSTOM: " + problem
				},
			},
		})
		require.NoError(t, err)

		_, err = u.Validate(true)

		errs := validationErrors(t, err)
		require.Equal(t, 1, errs.Len())
		assert.Zero(t, calls)
		assert.Equal(t, "must be a string or a number (was boolean)", errs.Errors[0].Message)
		assert.True(t, errs.Errors[0].IsComposite())
	})

	t.Run("configured union by code skips problem and message", func(t *testing.T) {
		u, err := Union(String(), Number()).Configure(models.Options{
			Messages: models.MessageHandlers{
				Expected: func(models.ErrorContext) string { return "an id" },
				Message:  func(string, models.ErrorContext) string { return "CUSTOM" },
			},
		}, models.CodeUnion)
		require.NoError(t, err)
		form := Object(Prop("id", u))

		_, err = form.Validate(map[string]any{"id": false})

		require.Error(t, err)
		assert.Equal(t, "id must be an id (was boolean)", err.Error())
	})

	t.Run("described union", func(t *testing.T) {
		u := Union(String(), Number()).Describe("an identifier")

		_, err := u.Validate(nil)

		errs := validationErrors(t, err)
		require.Equal(t, 1, errs.Len())
		assert.Equal(t, "must be an identifier (was null)", errs.Errors[0].Message)
		assert.Len(t, errs.Errors[0].Branches, 2)
	})
}
