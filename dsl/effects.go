package dsl

import (
	"context"
	"fmt"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// TransformFunc maps a validated value to a new one. A returned error (or a
// panic) becomes a single transform issue.
type TransformFunc func(ctx context.Context, v any) (any, error)

// Predicate reports whether a validated value is acceptable.
type Predicate func(ctx context.Context, v any) bool

// RefineFunc inspects a validated value and returns any issues found. Issue
// paths are taken as given, so callers usually build them from path.
type RefineFunc func(ctx context.Context, v any, path zskema.Path) zskema.Issues

// As adapts a typed function to TransformFunc. A value that is not an In is
// reported as a transform error.
func As[In, Out any](fn func(In) (Out, error)) TransformFunc {
	return func(_ context.Context, v any) (any, error) {
		in, ok := v.(In)
		if !ok {
			var zero In
			return nil, fmt.Errorf("expected %T, got %s", zero, zskema.TypeName(v))
		}
		return fn(in)
	}
}

// TransformSchema validates with an inner schema, then maps the value.
type TransformSchema struct {
	inner zskema.Schema
	fn    TransformFunc
}

var _ zskema.Schema = (*TransformSchema)(nil)

// Transform validates with s, then applies fn.
func Transform(s zskema.Schema, fn TransformFunc) *TransformSchema {
	return &TransformSchema{inner: s, fn: fn}
}

// Unwrap returns the inner schema.
func (t *TransformSchema) Unwrap() zskema.Schema { return t.inner }

func (t *TransformSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	r := evaluate(ctx, t.inner, v, path, coerce)
	if !r.OK() {
		return r
	}
	out, err := safeTransform(ctx, t.fn, r.Value)
	if err != nil {
		return zskema.Fail(zskema.IssueAt(path, zskema.CodeTransform,
			messages.T(messages.TransformFailed, messages.KV("reason", err.Error())),
			"reason", err.Error()))
	}
	return zskema.OK(out)
}

func safeTransform(ctx context.Context, fn TransformFunc, v any) (out any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return fn(ctx, v)
}

// PreprocessSchema maps the raw input before validation.
type PreprocessSchema struct {
	fn    TransformFunc
	inner zskema.Schema
}

var _ zskema.Schema = (*PreprocessSchema)(nil)

// Preprocess applies fn to the raw input and validates the result with s.
func Preprocess(fn TransformFunc, s zskema.Schema) *PreprocessSchema {
	return &PreprocessSchema{fn: fn, inner: s}
}

func (p *PreprocessSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	mapped, err := safeTransform(ctx, p.fn, v)
	if err != nil {
		return zskema.Fail(zskema.IssueAt(path, zskema.CodeTransform,
			messages.T(messages.TransformFailed, messages.KV("reason", err.Error())),
			"reason", err.Error()))
	}
	return evaluate(ctx, p.inner, mapped, path, coerce)
}

// RefineSchema adds a custom check on top of an inner schema.
type RefineSchema struct {
	inner zskema.Schema
	fn    RefineFunc
}

var _ zskema.Schema = (*RefineSchema)(nil)

// Refine fails with one custom issue when pred rejects the validated value.
// The default message is "Invalid input".
func Refine(s zskema.Schema, pred Predicate, msg ...string) *RefineSchema {
	message := pickMessage(msg, messages.T(messages.InvalidInput, nil))
	return SuperRefine(s, func(ctx context.Context, v any, path zskema.Path) zskema.Issues {
		if pred(ctx, v) {
			return nil
		}
		return zskema.Issues{{Path: path, Code: zskema.CodeCustom, Message: message}}
	})
}

// SuperRefine lets fn report any number of issues.
func SuperRefine(s zskema.Schema, fn RefineFunc) *RefineSchema {
	return &RefineSchema{inner: s, fn: fn}
}

// Unwrap returns the inner schema.
func (r *RefineSchema) Unwrap() zskema.Schema { return r.inner }

func (r *RefineSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	res := evaluate(ctx, r.inner, v, path, coerce)
	if !res.OK() {
		return res
	}
	if iss := r.fn(ctx, res.Value, path); len(iss) > 0 {
		return zskema.Fail(iss...)
	}
	return res
}

// PipeSchema feeds the output of one schema into another.
type PipeSchema struct {
	in, out zskema.Schema
}

var _ zskema.Schema = (*PipeSchema)(nil)

// Pipe validates with in, then validates in's output with out at the same
// path.
func Pipe(in, out zskema.Schema) *PipeSchema { return &PipeSchema{in: in, out: out} }

// Stages returns the two piped schemas.
func (p *PipeSchema) Stages() (in, out zskema.Schema) { return p.in, p.out }

func (p *PipeSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	r := evaluate(ctx, p.in, v, path, coerce)
	if !r.OK() {
		return r
	}
	return evaluate(ctx, p.out, r.Value, path, coerce)
}
