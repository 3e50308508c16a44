package zskema_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reoring/zskema"
	g "github.com/reoring/zskema/dsl"
)

func TestIssues_ErrorFormat(t *testing.T) {
	iss := zskema.Issues{
		{Path: zskema.Path{"user", "emails", 0}, Message: "Invalid email"},
		{Message: "Invalid input"},
	}
	if got := iss.Error(); got != "user.emails[0]: Invalid email; Invalid input" {
		t.Fatalf("Error() = %q", got)
	}
	if (zskema.Issues{}).Error() != "" {
		t.Fatalf("empty issues render empty")
	}
}

func TestAsIssues(t *testing.T) {
	_, err := zskema.Parse(context.Background(), g.String(), 1)
	wrapped := fmt.Errorf("load config: %w", err)
	iss, ok := zskema.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Code != zskema.CodeInvalidType {
		t.Fatalf("AsIssues = %v, %v", iss, ok)
	}
	if _, ok := zskema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain errors carry no issues")
	}
	if _, ok := zskema.AsIssues(nil); ok {
		t.Fatalf("nil carries no issues")
	}
}

func TestIssueAtParams(t *testing.T) {
	it := zskema.IssueAt(zskema.Path{"a"}, zskema.CodeTooSmall, "too small", "min", 3, 42, "ignored")
	if it.Params["min"] != 3 || len(it.Params) != 1 {
		t.Fatalf("params = %v", it.Params)
	}
	if it.String() != "a: too small" {
		t.Fatalf("String() = %q", it.String())
	}
}

func TestEntryPoints(t *testing.T) {
	ctx := context.Background()
	s := g.Number()

	if v, err := zskema.Parse(ctx, s, 1); err != nil || v != float64(1) {
		t.Fatalf("Parse: v=%v err=%v", v, err)
	}
	if _, err := zskema.Parse(ctx, s, "1"); err == nil {
		t.Fatalf("Parse must not coerce")
	}
	if v, err := zskema.Coerce(ctx, s, "1"); err != nil || v != float64(1) {
		t.Fatalf("Coerce: v=%v err=%v", v, err)
	}
	if r := zskema.SafeCoerce(ctx, s, "x"); r.OK() || r.Err() == nil {
		t.Fatalf("SafeCoerce must report failure as data")
	}
	if r := zskema.SafeParse(ctx, nil, 1); r.OK() || r.Issues[0].Code != zskema.CodeParseError {
		t.Fatalf("nil schema: %+v", r)
	}
	//nolint:staticcheck // nil context is accepted
	if !zskema.Is(nil, s, 1) {
		t.Fatalf("nil context falls back to Background")
	}

	defer func() {
		r := recover()
		if _, ok := r.(zskema.Issues); !ok {
			t.Fatalf("MustParse should panic with Issues, got %v", r)
		}
	}()
	zskema.MustParse(ctx, s, "x")
}

func TestResult(t *testing.T) {
	if r := zskema.OK(nil); !r.OK() || r.Err() != nil {
		t.Fatalf("OK(nil) must succeed")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("Fail without issues must panic")
		}
	}()
	zskema.Fail()
}

func TestSchemaFunc(t *testing.T) {
	even := zskema.SchemaFunc(func(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
		f, ok := zskema.AsNumber(v)
		if !ok || int(f)%2 != 0 {
			return zskema.Fail(zskema.IssueAt(path, zskema.CodeCustom, "even number expected"))
		}
		return zskema.OK(f)
	})
	s := g.Object(g.Shape{"n": even})
	r := zskema.SafeParse(context.Background(), s, map[string]any{"n": 3})
	if r.OK() || r.Issues.Error() != "n: even number expected" {
		t.Fatalf("custom schema: %+v", r.Issues)
	}
}
