package dsl

import (
	"context"
	"strconv"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// ArraySchema validates every element against one schema, then applies
// count checks.
type ArraySchema struct {
	elem   zskema.Schema
	checks []check[int]
}

var _ zskema.Schema = (*ArraySchema)(nil)

// Array returns a schema for sequences whose elements satisfy elem.
func Array(elem zskema.Schema) *ArraySchema { return &ArraySchema{elem: elem} }

func (a *ArraySchema) with(c check[int]) *ArraySchema {
	return &ArraySchema{elem: a.elem, checks: withCheck(a.checks, c)}
}

// Element returns the element schema.
func (a *ArraySchema) Element() zskema.Schema { return a.elem }

// Min requires at least n elements.
func (a *ArraySchema) Min(n int, msg ...string) *ArraySchema {
	return a.with(check[int]{
		code:    zskema.CodeTooSmall,
		message: pickMessage(msg, messages.T(messages.ArrayTooShort, messages.KV("min", strconv.Itoa(n)))),
		params:  []any{"type", "array", "min", n},
		ok:      func(l int) bool { return l >= n },
	})
}

// Max allows at most n elements.
func (a *ArraySchema) Max(n int, msg ...string) *ArraySchema {
	return a.with(check[int]{
		code:    zskema.CodeTooBig,
		message: pickMessage(msg, messages.T(messages.ArrayTooLong, messages.KV("max", strconv.Itoa(n)))),
		params:  []any{"type", "array", "max", n},
		ok:      func(l int) bool { return l <= n },
	})
}

// Length requires exactly n elements. Fewer is too_small, more too_big.
func (a *ArraySchema) Length(n int, msg ...string) *ArraySchema {
	message := pickMessage(msg, messages.T(messages.ArrayLength, messages.KV("length", strconv.Itoa(n))))
	params := []any{"type", "array", "length", n}
	return a.with(check[int]{
		code:    zskema.CodeTooSmall,
		message: message,
		params:  params,
		ok:      func(l int) bool { return l >= n },
	}).with(check[int]{
		code:    zskema.CodeTooBig,
		message: message,
		params:  params,
		ok:      func(l int) bool { return l <= n },
	})
}

// Nonempty is Min(1).
func (a *ArraySchema) Nonempty(msg ...string) *ArraySchema { return a.Min(1, msg...) }

func (a *ArraySchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	in, ok := zskema.AsArray(v)
	if !ok {
		return zskema.Fail(invalidType(path, "array", v))
	}
	failFast := zskema.IsFailFast(ctx)
	out := make([]any, len(in))
	var issues zskema.Issues
	for i, e := range in {
		r := evaluate(ctx, a.elem, e, path.Index(i), coerce)
		if !r.OK() {
			issues = zskema.AppendIssues(issues, r.Issues...)
			if failFast {
				break
			}
			continue
		}
		out[i] = r.Value
	}
	if len(issues) > 0 {
		return zskema.Result{Issues: issues}
	}
	if it, ok := runChecks(a.checks, len(out), path); !ok {
		return zskema.Fail(it)
	}
	return zskema.OK(out)
}

// TupleSchema validates a fixed-length sequence position by position.
type TupleSchema struct {
	items []zskema.Schema
}

var _ zskema.Schema = (*TupleSchema)(nil)

// Tuple returns a schema for sequences of exactly len(items) elements.
func Tuple(items ...zskema.Schema) *TupleSchema {
	return &TupleSchema{items: append([]zskema.Schema(nil), items...)}
}

// Items returns a copy of the positional schemas.
func (t *TupleSchema) Items() []zskema.Schema { return append([]zskema.Schema(nil), t.items...) }

func (t *TupleSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	in, ok := zskema.AsArray(v)
	if !ok {
		return zskema.Fail(invalidType(path, "array", v))
	}
	if len(in) != len(t.items) {
		code := zskema.CodeTooSmall
		if len(in) > len(t.items) {
			code = zskema.CodeTooBig
		}
		return zskema.Fail(zskema.IssueAt(path, code,
			messages.T(messages.TupleLength, messages.KV("length", strconv.Itoa(len(t.items)), "received", strconv.Itoa(len(in)))),
			"type", "tuple", "length", len(t.items)))
	}
	failFast := zskema.IsFailFast(ctx)
	out := make([]any, len(in))
	var issues zskema.Issues
	for i, s := range t.items {
		r := evaluate(ctx, s, in[i], path.Index(i), coerce)
		if !r.OK() {
			issues = zskema.AppendIssues(issues, r.Issues...)
			if failFast {
				break
			}
			continue
		}
		out[i] = r.Value
	}
	if len(issues) > 0 {
		return zskema.Result{Issues: issues}
	}
	return zskema.OK(out)
}
