package rules_test

import (
	"context"
	"testing"

	"github.com/reoring/zskema"
	g "github.com/reoring/zskema/dsl"
	"github.com/reoring/zskema/rules"
)

func order() zskema.Schema {
	item := g.Object(g.Shape{"sku": g.String(), "qty": g.Number().Int()})
	return rules.Apply(
		g.Object(g.Shape{
			"status": g.Enum("draft", "submitted"),
			"items":  g.Array(item),
			"note":   g.Optional(g.String()),
		}),
		rules.UniqueBy("/items", "sku"),
		rules.If("/status", rules.Eq, "submitted").Then(rules.AtLeastOne("/items")),
	)
}

func TestUniqueBy(t *testing.T) {
	ctx := context.Background()
	r := zskema.SafeParse(ctx, order(), map[string]any{
		"status": "draft",
		"items": []any{
			map[string]any{"sku": "a", "qty": 1},
			map[string]any{"sku": "b", "qty": 1},
			map[string]any{"sku": "a", "qty": 2},
		},
	})
	if r.OK() || len(r.Issues) != 1 {
		t.Fatalf("want one duplicate issue, got %+v", r.Issues)
	}
	it := r.Issues[0]
	if it.Code != zskema.CodeNotUnique || it.Path.String() != "items[2].sku" {
		t.Fatalf("unexpected issue %+v", it)
	}
	if it.Params["first"] != 0 || it.Params["dup"] != 2 {
		t.Fatalf("unexpected params %v", it.Params)
	}
}

func TestIfThen(t *testing.T) {
	ctx := context.Background()
	if !zskema.Is(ctx, order(), map[string]any{"status": "draft", "items": []any{}}) {
		t.Fatalf("draft orders may be empty")
	}
	r := zskema.SafeParse(ctx, order(), map[string]any{"status": "submitted", "items": []any{}})
	if r.OK() || r.Issues[0].Code != zskema.CodeTooSmall || r.Issues[0].Path.String() != "items" {
		t.Fatalf("submitted orders need items, got %+v", r.Issues)
	}
}

func TestRulesSkipInvalidInput(t *testing.T) {
	ctx := context.Background()
	r := zskema.SafeParse(ctx, order(), map[string]any{"status": "bogus", "items": []any{}})
	if r.OK() || len(r.Issues) != 1 || r.Issues[0].Code != zskema.CodeInvalidEnum {
		t.Fatalf("schema issues come first and rules are skipped, got %+v", r.Issues)
	}
}

func TestConditionals(t *testing.T) {
	v := map[string]any{"age": 20.0, "country": "JP", "tags": []any{"x"}}
	cases := []struct {
		name string
		c    rules.Conditional
		want bool
	}{
		{"eq", rules.If("/country", rules.Eq, "JP"), true},
		{"ne", rules.If("/country", rules.Ne, "JP"), false},
		{"ge int vs float", rules.If("/age", rules.Ge, 20), true},
		{"lt", rules.If("/age", rules.Lt, 18), false},
		{"string order", rules.If("/country", rules.Gt, "AA"), true},
		{"missing", rules.If("/missing", rules.Eq, nil), false},
		{"index", rules.If("/tags/0", rules.Eq, "x"), true},
		{"and", rules.If("/age", rules.Ge, 18).And(rules.If("/country", rules.Eq, "US")), false},
		{"or", rules.If("/age", rules.Ge, 18).Or(rules.If("/country", rules.Eq, "US")), true},
		{"all", rules.IfAll(rules.If("/age", rules.Gt, 1), rules.If("/age", rules.Lt, 30)), true},
		{"any", rules.IfAny(rules.If("/age", rules.Gt, 100), rules.If("/age", rules.Lt, 0)), false},
	}
	for _, tc := range cases {
		if got := tc.c.Holds(v); got != tc.want {
			t.Fatalf("%s: Holds=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestAndOr(t *testing.T) {
	ctx := context.Background()
	fail := func(msg string) rules.Rule {
		return func(_ context.Context, _ any, path zskema.Path) zskema.Issues {
			return zskema.Issues{zskema.IssueAt(path, zskema.CodeCustom, msg)}
		}
	}
	pass := func(context.Context, any, zskema.Path) zskema.Issues { return nil }
	double := rules.And(fail("a"), fail("b"))

	if iss := rules.And(fail("a"), nil, fail("b"))(ctx, nil, nil); len(iss) != 2 {
		t.Fatalf("and collects all issues, got %v", iss)
	}
	if iss := rules.And(fail("a"), fail("b"))(zskema.WithFailFast(ctx, true), nil, nil); len(iss) != 1 {
		t.Fatalf("and stops early in fail-fast mode, got %v", iss)
	}
	if iss := rules.Or(fail("a"), pass)(ctx, nil, nil); len(iss) != 0 {
		t.Fatalf("or succeeds on any passing branch, got %v", iss)
	}
	if iss := rules.Or(double, fail("c"))(ctx, nil, nil); len(iss) != 1 || iss[0].Message != "c" {
		t.Fatalf("or returns the smallest failing branch, got %v", iss)
	}
}

func TestFieldsEqualAndRequired(t *testing.T) {
	ctx := context.Background()
	signup := rules.Apply(
		g.Object(g.Shape{
			"password": g.String().Min(8),
			"confirm":  g.String(),
			"referrer": g.Optional(g.String()),
			"plan":     g.Enum("free", "pro"),
		}),
		rules.FieldsEqual("/password", "/confirm"),
		rules.If("/plan", rules.Eq, "pro").Then(rules.Required("/referrer")),
	)

	r := zskema.SafeParse(ctx, signup, map[string]any{"password": "secret123", "confirm": "secret124", "plan": "free"})
	if r.OK() || r.Issues[0].Path.String() != "confirm" || r.Issues[0].Message != "Must equal password" {
		t.Fatalf("mismatch: %+v", r.Issues)
	}
	r = zskema.SafeParse(ctx, signup, map[string]any{"password": "secret123", "confirm": "secret123", "plan": "pro"})
	if r.OK() || r.Issues[0].Path.String() != "referrer" || r.Issues[0].Message != "Required" {
		t.Fatalf("pro plan requires referrer: %+v", r.Issues)
	}
	if !zskema.Is(ctx, signup, map[string]any{"password": "secret123", "confirm": "secret123", "plan": "pro", "referrer": "x"}) {
		t.Fatalf("valid signup rejected")
	}
}
