package dsl_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/zskema"
	g "github.com/reoring/zskema/dsl"
)

func pair() *g.ObjectSchema {
	return g.Object(g.Shape{"a": g.Number(), "b": g.Number()})
}

func TestObject_UnknownKeyPolicies(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{"a": 1, "b": 2, "extra": true}

	v, err := zskema.Parse(ctx, pair(), in)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": 1.0, "b": 2.0}, v); diff != "" {
		t.Fatalf("strip mismatch (-want +got):\n%s", diff)
	}

	r := zskema.SafeParse(ctx, pair().Strict(), in)
	if r.OK() || len(r.Issues) != 1 {
		t.Fatalf("strict: want one issue, got %+v", r.Issues)
	}
	if !r.Issues[0].Path.Equal(zskema.Path{"extra"}) || r.Issues[0].Code != zskema.CodeUnrecognizedKey {
		t.Fatalf("strict: unexpected issue %+v", r.Issues[0])
	}

	v, err = zskema.Parse(ctx, pair().Passthrough(), in)
	if err != nil {
		t.Fatalf("passthrough: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": 1.0, "b": 2.0, "extra": true}, v); diff != "" {
		t.Fatalf("passthrough mismatch (-want +got):\n%s", diff)
	}

	r = zskema.SafeParse(ctx, pair().Catchall(g.String()), in)
	if r.OK() || !r.Issues[0].Path.Equal(zskema.Path{"extra"}) || r.Issues[0].Code != zskema.CodeInvalidType {
		t.Fatalf("catchall: want invalid_type at extra, got %+v", r.Issues)
	}
	v, err = zskema.Parse(ctx, pair().Catchall(g.Boolean()), in)
	if err != nil {
		t.Fatalf("catchall ok: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": 1.0, "b": 2.0, "extra": true}, v); diff != "" {
		t.Fatalf("catchall mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_AccumulatesFieldIssues(t *testing.T) {
	ctx := context.Background()
	s := g.Object(g.Shape{
		"name":  g.String(),
		"age":   g.Number().Int(),
		"email": g.String().Email(),
	})
	r := zskema.SafeParse(ctx, s, map[string]any{"age": 1.5, "email": "nope"})
	if r.OK() {
		t.Fatalf("expected failure")
	}
	want := []string{"age", "email", "name"}
	if len(r.Issues) != len(want) {
		t.Fatalf("want %d issues, got %+v", len(want), r.Issues)
	}
	for i, p := range want {
		if r.Issues[i].Path.String() != p {
			t.Fatalf("issue %d path = %q, want %q", i, r.Issues[i].Path, p)
		}
	}
	if r.Issues[2].Message != "Required" {
		t.Fatalf("missing field message = %q", r.Issues[2].Message)
	}
	if err := r.Err(); err.Error() != "age: Expected integer, received float; email: Invalid email; name: Required" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}

func TestObject_FailFast(t *testing.T) {
	ctx := zskema.WithFailFast(context.Background(), true)
	s := g.Object(g.Shape{"a": g.String(), "b": g.String()})
	r := zskema.SafeParse(ctx, s, map[string]any{})
	if len(r.Issues) != 1 || r.Issues[0].Path.String() != "a" {
		t.Fatalf("fail-fast: want only the first issue, got %+v", r.Issues)
	}
}

func TestObject_RejectsNonObjects(t *testing.T) {
	ctx := context.Background()
	for _, in := range []any{nil, []any{}, "x", 1, zskema.Undefined} {
		r := zskema.SafeParse(ctx, pair(), in)
		if r.OK() || r.Issues[0].Code != zskema.CodeInvalidType {
			t.Fatalf("input %v: want invalid_type, got %+v", in, r.Issues)
		}
	}
}

func TestObject_OptionalFieldsAreOmitted(t *testing.T) {
	ctx := context.Background()
	s := g.Object(g.Shape{
		"name": g.String(),
		"nick": g.Optional(g.String()),
		"role": g.Default(g.String(), "member"),
	})
	v, err := zskema.Parse(ctx, s, map[string]any{"name": "reo"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"name": "reo", "role": "member"}, v); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_TypedMapInput(t *testing.T) {
	ctx := context.Background()
	v, err := zskema.Parse(ctx, pair(), map[string]int{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": 1.0, "b": 2.0}, v); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestObject_ShapeAlgebra(t *testing.T) {
	ctx := context.Background()
	base := g.Object(g.Shape{"id": g.String(), "name": g.String()})

	ext := base.Extend(g.Shape{"name": g.Number(), "age": g.Number()})
	if diff := cmp.Diff([]string{"age", "id", "name"}, ext.Keys()); diff != "" {
		t.Fatalf("extend keys (-want +got):\n%s", diff)
	}
	if !zskema.Is(ctx, ext, map[string]any{"id": "1", "name": 2, "age": 3}) {
		t.Fatalf("extend: right side must override name")
	}
	if len(base.Keys()) != 2 {
		t.Fatalf("extend mutated the base schema")
	}

	merged := base.Strict().Merge(g.Object(g.Shape{"age": g.Number()}).Passthrough())
	if merged.Policy() != zskema.UnknownStrict {
		t.Fatalf("merge keeps the receiver policy, got %v", merged.Policy())
	}
	if diff := cmp.Diff([]string{"age", "id", "name"}, merged.Keys()); diff != "" {
		t.Fatalf("merge keys (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"id"}, base.Pick("id", "missing").Keys()); diff != "" {
		t.Fatalf("pick (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name"}, base.Omit("id").Keys()); diff != "" {
		t.Fatalf("omit (-want +got):\n%s", diff)
	}

	partial := base.Partial()
	if !zskema.Is(ctx, partial, map[string]any{}) {
		t.Fatalf("partial: every field optional")
	}
	onlyName := base.Partial("name")
	if zskema.Is(ctx, onlyName, map[string]any{}) || !zskema.Is(ctx, onlyName, map[string]any{"id": "x"}) {
		t.Fatalf("partial(name): only name optional")
	}
	if zskema.Is(ctx, partial.Required(), map[string]any{}) {
		t.Fatalf("required: optional wrappers removed")
	}

	keys := base.Keyof()
	if diff := cmp.Diff([]string{"id", "name"}, keys.Options()); diff != "" {
		t.Fatalf("keyof (-want +got):\n%s", diff)
	}
	if !zskema.Is(ctx, keys, "id") || zskema.Is(ctx, keys, "age") {
		t.Fatalf("keyof membership")
	}
}

func TestObject_NestedPaths(t *testing.T) {
	ctx := context.Background()
	s := g.Object(g.Shape{
		"items": g.Array(g.Object(g.Shape{"name": g.String()})),
	})
	r := zskema.SafeParse(ctx, s, map[string]any{
		"items": []any{map[string]any{"name": "a"}, map[string]any{"name": 2}},
	})
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if got := r.Issues.Error(); got != "items[1].name: Expected string, received number" {
		t.Fatalf("unexpected error text %q", got)
	}
	if got := r.Issues[0].Path.Pointer(); got != "/items/1/name" {
		t.Fatalf("pointer = %q", got)
	}
}
