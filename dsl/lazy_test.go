package dsl_test

import (
	"context"
	"sync"
	"testing"

	"github.com/reoring/zskema"
	g "github.com/reoring/zskema/dsl"
)

func TestLazy_RecursiveSchema(t *testing.T) {
	ctx := context.Background()
	var node zskema.Schema
	node = g.Object(g.Shape{
		"name":     g.String(),
		"children": g.Optional(g.Array(g.Lazy(func() zskema.Schema { return node }))),
	})

	tree := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "b", "children": []any{map[string]any{"name": 3}}},
		},
	}
	r := zskema.SafeParse(ctx, node, tree)
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if got := r.Issues[0].Path.String(); got != "children[1].children[0].name" {
		t.Fatalf("unexpected path %q", got)
	}
	tree["children"].([]any)[1].(map[string]any)["children"] = []any{map[string]any{"name": "c"}}
	if !zskema.Is(ctx, node, tree) {
		t.Fatalf("valid tree rejected")
	}
}

func TestLazy_ResolvesOnEveryEvaluation(t *testing.T) {
	ctx := context.Background()
	var target zskema.Schema = g.String()
	calls := 0
	l := g.Lazy(func() zskema.Schema { calls++; return target })

	if !zskema.Is(ctx, l, "x") {
		t.Fatalf("string expected")
	}
	target = g.Number()
	if !zskema.Is(ctx, l, 1) || calls != 2 {
		t.Fatalf("lazy must re-resolve, calls=%d", calls)
	}
	if r := zskema.SafeParse(ctx, g.Lazy(func() zskema.Schema { return nil }), 1); r.OK() {
		t.Fatalf("nil resolution must fail")
	}
}

func TestSchemas_ConcurrentEvaluation(t *testing.T) {
	ctx := context.Background()
	s := g.Object(g.Shape{
		"id":   g.String().Min(1),
		"tags": g.Array(g.Enum("a", "b")).Max(3),
	}).Strict()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := map[string]any{"id": "x", "tags": []any{"a"}}
			if i%2 == 1 {
				in["tags"] = []any{"c"}
			}
			if got := zskema.Is(ctx, s, in); got != (i%2 == 0) {
				t.Errorf("goroutine %d: Is=%v", i, got)
			}
		}(i)
	}
	wg.Wait()
}

func TestKindOf(t *testing.T) {
	cases := map[g.Kind]zskema.Schema{
		g.KindString:             g.String(),
		g.KindTransform:          g.String().Trim(),
		g.KindUnknown:            g.Unknown(),
		g.KindAny:                g.Any(),
		g.KindOptional:           g.Nullish(g.String()),
		g.KindDiscriminatedUnion: g.MustDiscriminatedUnion("k", g.Object(g.Shape{"k": g.Literal("x")})),
		g.KindOther:              zskema.SchemaFunc(func(context.Context, any, zskema.Path, bool) zskema.Result { return zskema.OK(nil) }),
	}
	for want, s := range cases {
		if got := g.KindOf(s); got != want {
			t.Fatalf("KindOf = %v, want %v", got, want)
		}
	}
	if g.KindRecord.String() != "record" {
		t.Fatalf("kind name: %s", g.KindRecord)
	}
}
