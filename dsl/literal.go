package dsl

import (
	"context"
	"sort"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// LiteralSchema accepts exactly one constant value.
type LiteralSchema struct {
	value any
}

var _ zskema.Schema = LiteralSchema{}

// Literal accepts only values equal to v (same kind, same value; numbers
// compare numerically across Go numeric types).
func Literal(v any) LiteralSchema { return LiteralSchema{value: v} }

// Value returns the configured constant.
func (l LiteralSchema) Value() any { return l.value }

func (l LiteralSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if !zskema.StrictEqual(v, l.value) {
		expected := zskema.Render(l.value)
		return zskema.Fail(zskema.Issue{
			Path:     path,
			Code:     zskema.CodeInvalidLiteral,
			Message:  messages.T(messages.InvalidLiteral, messages.KV("expected", expected)),
			Expected: expected,
			Received: zskema.Render(v),
		})
	}
	return zskema.OK(l.value)
}

// EnumSchema accepts one of a fixed, ordered set of strings.
type EnumSchema struct {
	values []string
	set    map[string]struct{}
}

var _ zskema.Schema = (*EnumSchema)(nil)

// Enum builds an enum schema; duplicate values are kept once, in first-seen
// order.
func Enum(values ...string) *EnumSchema {
	e := &EnumSchema{set: make(map[string]struct{}, len(values))}
	for _, v := range values {
		if _, dup := e.set[v]; dup {
			continue
		}
		e.set[v] = struct{}{}
		e.values = append(e.values, v)
	}
	return e
}

// Options returns a copy of the allowed values in declaration order.
func (e *EnumSchema) Options() []string { return append([]string(nil), e.values...) }

// Extract returns a new enum restricted to the given values (in e's order).
func (e *EnumSchema) Extract(values ...string) *EnumSchema {
	keep := make(map[string]struct{}, len(values))
	for _, v := range values {
		keep[v] = struct{}{}
	}
	var out []string
	for _, v := range e.values {
		if _, ok := keep[v]; ok {
			out = append(out, v)
		}
	}
	return Enum(out...)
}

// Exclude returns a new enum without the given values.
func (e *EnumSchema) Exclude(values ...string) *EnumSchema {
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}
	var out []string
	for _, v := range e.values {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}
	return Enum(out...)
}

func (e *EnumSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	s, ok := v.(string)
	if !ok {
		return zskema.Fail(invalidType(path, quoteList(e.values), v))
	}
	if _, ok := e.set[s]; !ok {
		expected := quoteList(e.values)
		return zskema.Fail(zskema.Issue{
			Path:     path,
			Code:     zskema.CodeInvalidEnum,
			Message:  messages.T(messages.InvalidEnum, messages.KV("expected", expected, "received", "'"+s+"'")),
			Expected: expected,
			Received: s,
			Params:   map[string]any{"options": e.Options()},
		})
	}
	return zskema.OK(s)
}

// NativeEnumSchema accepts any value of a named enumeration. Values may be
// strings or numbers.
type NativeEnumSchema struct {
	names  []string
	values []any
}

var _ zskema.Schema = (*NativeEnumSchema)(nil)

// NativeEnum builds a schema from a name -> value enumeration, e.g.
//
//	NativeEnum(map[string]any{"Red": 0, "Green": 1, "Blue": "blue"})
func NativeEnum(enum map[string]any) *NativeEnumSchema {
	names := make([]string, 0, len(enum))
	for k := range enum {
		names = append(names, k)
	}
	sort.Strings(names)
	values := make([]any, len(names))
	for i, k := range names {
		values[i] = enum[k]
	}
	return &NativeEnumSchema{names: names, values: values}
}

// Values returns the enumeration values ordered by member name.
func (n *NativeEnumSchema) Values() []any { return append([]any(nil), n.values...) }

func (n *NativeEnumSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	for _, want := range n.values {
		if zskema.StrictEqual(v, want) {
			return zskema.OK(want)
		}
	}
	rendered := make([]string, len(n.values))
	for i, want := range n.values {
		rendered[i] = zskema.Render(want)
	}
	expected := quoteList(rendered)
	return zskema.Fail(zskema.Issue{
		Path:     path,
		Code:     zskema.CodeInvalidEnum,
		Message:  messages.T(messages.InvalidEnum, messages.KV("expected", expected, "received", zskema.Render(v))),
		Expected: expected,
		Received: zskema.Render(v),
	})
}
