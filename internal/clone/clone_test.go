package clone

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name    string
	Tags    []string
	Created time.Time
	secret  string
}

func TestDeep_Nil(t *testing.T) {
	assert.Nil(t, Deep(nil))
}

func TestDeep_Scalars(t *testing.T) {
	assert.Equal(t, 42, Deep(42))
	assert.Equal(t, "x", Deep("x"))
	assert.Equal(t, true, Deep(true))
}

func TestDeep_NestedMapIsIndependent(t *testing.T) {
	src := map[string]any{
		"name": "Alice",
		"address": map[string]any{
			"city": "Paris",
		},
		"tags": []any{"a", "b"},
	}

	out, ok := Deep(src).(map[string]any)
	require.True(t, ok)
	if diff := cmp.Diff(src, out); diff != "" {
		t.Fatalf("copy differs from source (-src +copy):\n%s", diff)
	}

	out["address"].(map[string]any)["city"] = "Rome"
	out["tags"].([]any)[0] = "z"

	assert.Equal(t, "Paris", src["address"].(map[string]any)["city"])
	assert.Equal(t, "a", src["tags"].([]any)[0])
}

func TestDeep_PreservesDynamicType(t *testing.T) {
	src := &profile{Name: "bob", Tags: []string{"x"}, Created: time.Unix(10, 0), secret: "s"}

	out, ok := Deep(src).(*profile)
	require.True(t, ok)
	assert.NotSame(t, src, out)
	assert.Equal(t, "bob", out.Name)
	assert.Equal(t, "s", out.secret)
	assert.True(t, src.Created.Equal(out.Created))

	out.Tags[0] = "y"
	assert.Equal(t, "x", src.Tags[0])
}

func TestDeep_CopiesUnexportedFields(t *testing.T) {
	type bag struct {
		items []string
		meta  map[string]any
	}
	src := &bag{items: []string{"a"}, meta: map[string]any{"k": "v"}}

	out := Deep(src).(*bag)
	out.items[0] = "b"
	out.meta["k"] = "w"

	assert.Equal(t, "a", src.items[0])
	assert.Equal(t, "v", src.meta["k"])
}

func TestDeep_PreservesSharedReferences(t *testing.T) {
	shared := map[string]any{"n": 1}
	src := map[string]any{"a": shared, "b": shared}

	out := Deep(src).(map[string]any)
	a := out["a"].(map[string]any)
	b := out["b"].(map[string]any)

	a["n"] = 2
	assert.Equal(t, 2, b["n"], "shared map must stay shared in the copy")
	assert.Equal(t, 1, shared["n"])
}

func TestDeep_Cycle(t *testing.T) {
	type node struct {
		Next *node
		V    int
	}
	n := &node{V: 1}
	n.Next = n

	out := Deep(n).(*node)
	assert.NotSame(t, n, out)
	assert.Same(t, out, out.Next)
}
