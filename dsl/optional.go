package dsl

import (
	"context"

	"github.com/reoring/zskema"
)

// OptionalSchema accepts zskema.Undefined in addition to its inner schema.
type OptionalSchema struct{ inner zskema.Schema }

// Optional lets Undefined through as Undefined.
func Optional(s zskema.Schema) *OptionalSchema { return &OptionalSchema{inner: s} }

// Unwrap returns the inner schema.
func (o *OptionalSchema) Unwrap() zskema.Schema { return o.inner }

func (o *OptionalSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if zskema.IsUndefined(v) {
		return zskema.OK(zskema.Undefined)
	}
	return evaluate(ctx, o.inner, v, path, coerce)
}

// NullableSchema accepts nil in addition to its inner schema.
type NullableSchema struct{ inner zskema.Schema }

// Nullable lets nil through as nil.
func Nullable(s zskema.Schema) *NullableSchema { return &NullableSchema{inner: s} }

// Unwrap returns the inner schema.
func (n *NullableSchema) Unwrap() zskema.Schema { return n.inner }

func (n *NullableSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if v == nil {
		return zskema.OK(nil)
	}
	return evaluate(ctx, n.inner, v, path, coerce)
}

// Nullish is Optional(Nullable(s)).
func Nullish(s zskema.Schema) *OptionalSchema { return Optional(Nullable(s)) }

// DefaultSchema substitutes a value for Undefined. The substitute is not
// validated.
type DefaultSchema struct {
	inner zskema.Schema
	value func() any
}

// Default returns v whenever the input is Undefined.
func Default(s zskema.Schema, v any) *DefaultSchema {
	return &DefaultSchema{inner: s, value: func() any { return v }}
}

// DefaultFunc calls fn for a fresh default on each Undefined input; use it
// for mutable defaults such as maps and slices.
func DefaultFunc(s zskema.Schema, fn func() any) *DefaultSchema {
	return &DefaultSchema{inner: s, value: fn}
}

// Unwrap returns the inner schema.
func (d *DefaultSchema) Unwrap() zskema.Schema { return d.inner }

func (d *DefaultSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if zskema.IsUndefined(v) {
		return zskema.OK(d.value())
	}
	return evaluate(ctx, d.inner, v, path, coerce)
}

// CatchSchema replaces any failure of its inner schema with a fallback value.
type CatchSchema struct {
	inner    zskema.Schema
	fallback any
}

// Catch returns fallback instead of failing.
func Catch(s zskema.Schema, fallback any) *CatchSchema {
	return &CatchSchema{inner: s, fallback: fallback}
}

// Unwrap returns the inner schema.
func (c *CatchSchema) Unwrap() zskema.Schema { return c.inner }

func (c *CatchSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	r := evaluate(ctx, c.inner, v, path, coerce)
	if !r.OK() {
		return zskema.OK(c.fallback)
	}
	return r
}
