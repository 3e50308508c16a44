package dsl

import (
	"context"
	"sort"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// Shape maps field names to their schemas.
type Shape map[string]zskema.Schema

// ObjectSchema validates string-keyed objects against a fixed field map.
type ObjectSchema struct {
	shape    Shape
	keys     []string // sorted
	policy   zskema.UnknownPolicy
	catchall zskema.Schema
}

var _ zskema.Schema = (*ObjectSchema)(nil)

// Object builds an object schema in strip mode. The shape is copied.
func Object(shape Shape) *ObjectSchema {
	return newObject(shape, zskema.UnknownStrip, nil)
}

func newObject(shape Shape, policy zskema.UnknownPolicy, catchall zskema.Schema) *ObjectSchema {
	cp := make(Shape, len(shape))
	keys := make([]string, 0, len(shape))
	for k, s := range shape {
		cp[k] = s
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &ObjectSchema{shape: cp, keys: keys, policy: policy, catchall: catchall}
}

func (o *ObjectSchema) with(shape Shape) *ObjectSchema {
	return newObject(shape, o.policy, o.catchall)
}

// Strict reports every unknown key as an unrecognized_key issue.
func (o *ObjectSchema) Strict() *ObjectSchema {
	return newObject(o.shape, zskema.UnknownStrict, nil)
}

// Strip silently drops unknown keys (the default).
func (o *ObjectSchema) Strip() *ObjectSchema {
	return newObject(o.shape, zskema.UnknownStrip, nil)
}

// Passthrough copies unknown keys into the output unvalidated.
func (o *ObjectSchema) Passthrough() *ObjectSchema {
	return newObject(o.shape, zskema.UnknownPassthrough, nil)
}

// Catchall validates every unknown key's value against s.
func (o *ObjectSchema) Catchall(s zskema.Schema) *ObjectSchema {
	return newObject(o.shape, zskema.UnknownCatchall, s)
}

// Policy returns the unknown-key policy.
func (o *ObjectSchema) Policy() zskema.UnknownPolicy { return o.policy }

// Shape returns a copy of the field map.
func (o *ObjectSchema) Shape() Shape {
	cp := make(Shape, len(o.shape))
	for k, s := range o.shape {
		cp[k] = s
	}
	return cp
}

// Keys returns the declared field names, sorted.
func (o *ObjectSchema) Keys() []string { return append([]string(nil), o.keys...) }

// Field returns the schema declared for key.
func (o *ObjectSchema) Field(key string) (zskema.Schema, bool) {
	s, ok := o.shape[key]
	return s, ok
}

// Extend adds or overrides fields.
func (o *ObjectSchema) Extend(fields Shape) *ObjectSchema {
	next := o.Shape()
	for k, s := range fields {
		next[k] = s
	}
	return o.with(next)
}

// Merge extends o with other's fields. The receiver's unknown-key policy is
// kept.
func (o *ObjectSchema) Merge(other *ObjectSchema) *ObjectSchema {
	if other == nil {
		return o.with(o.shape)
	}
	return o.Extend(other.shape)
}

// Pick keeps only the named fields; unknown names are ignored.
func (o *ObjectSchema) Pick(keys ...string) *ObjectSchema {
	next := make(Shape, len(keys))
	for _, k := range keys {
		if s, ok := o.shape[k]; ok {
			next[k] = s
		}
	}
	return o.with(next)
}

// Omit drops the named fields.
func (o *ObjectSchema) Omit(keys ...string) *ObjectSchema {
	next := o.Shape()
	for _, k := range keys {
		delete(next, k)
	}
	return o.with(next)
}

// Partial wraps fields in Optional: all of them, or only the named keys.
func (o *ObjectSchema) Partial(keys ...string) *ObjectSchema {
	next := o.Shape()
	for k, s := range next {
		if selected(keys, k) {
			if _, already := s.(*OptionalSchema); !already {
				next[k] = Optional(s)
			}
		}
	}
	return o.with(next)
}

// Required removes an Optional wrapper from fields: all of them, or only the
// named keys.
func (o *ObjectSchema) Required(keys ...string) *ObjectSchema {
	next := o.Shape()
	for k, s := range next {
		if !selected(keys, k) {
			continue
		}
		for {
			opt, ok := s.(*OptionalSchema)
			if !ok {
				break
			}
			s = opt.Unwrap()
		}
		next[k] = s
	}
	return o.with(next)
}

func selected(keys []string, k string) bool {
	if len(keys) == 0 {
		return true
	}
	for _, want := range keys {
		if want == k {
			return true
		}
	}
	return false
}

// Keyof returns an enum of the declared field names.
func (o *ObjectSchema) Keyof() *EnumSchema { return Enum(o.keys...) }

func (o *ObjectSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	in, ok := zskema.AsObject(v)
	if !ok {
		return zskema.Fail(invalidType(path, "object", v))
	}
	failFast := zskema.IsFailFast(ctx)
	out := make(map[string]any, len(o.keys))
	var issues zskema.Issues
	for _, k := range o.keys {
		raw, present := in[k]
		if !present {
			raw = zskema.Undefined
		}
		r := evaluate(ctx, o.shape[k], raw, path.Key(k), coerce)
		if !r.OK() {
			issues = zskema.AppendIssues(issues, r.Issues...)
			if failFast {
				return zskema.Result{Issues: issues}
			}
			continue
		}
		if !zskema.IsUndefined(r.Value) {
			out[k] = r.Value
		}
	}

	var unknown []string
	for k := range in {
		if _, known := o.shape[k]; !known {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		switch {
		case o.catchall != nil:
			r := evaluate(ctx, o.catchall, in[k], path.Key(k), coerce)
			if !r.OK() {
				issues = zskema.AppendIssues(issues, r.Issues...)
				if failFast {
					return zskema.Result{Issues: issues}
				}
				continue
			}
			if !zskema.IsUndefined(r.Value) {
				out[k] = r.Value
			}
		case o.policy == zskema.UnknownStrict:
			issues = zskema.AppendIssues(issues, zskema.Issue{
				Path:    path.Key(k),
				Code:    zskema.CodeUnrecognizedKey,
				Message: messages.T(messages.UnrecognizedKey, messages.KV("key", k)),
				Params:  map[string]any{"key": k},
			})
			if failFast {
				return zskema.Result{Issues: issues}
			}
		case o.policy == zskema.UnknownPassthrough:
			out[k] = in[k]
		}
	}
	if len(issues) > 0 {
		return zskema.Result{Issues: issues}
	}
	return zskema.OK(out)
}
