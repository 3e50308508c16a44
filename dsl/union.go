package dsl

import (
	"context"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// UnionSchema accepts the first member that validates.
type UnionSchema struct {
	options []zskema.Schema
}

var _ zskema.Schema = (*UnionSchema)(nil)

// Union tries options in order. When none match the result is a single
// invalid_union issue; member issues are not reported.
func Union(options ...zskema.Schema) *UnionSchema {
	return &UnionSchema{options: append([]zskema.Schema(nil), options...)}
}

// Options returns a copy of the members in declaration order.
func (u *UnionSchema) Options() []zskema.Schema { return append([]zskema.Schema(nil), u.options...) }

func (u *UnionSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	for _, s := range u.options {
		if r := evaluate(ctx, s, v, path, coerce); r.OK() {
			return r
		}
	}
	return zskema.Fail(zskema.Issue{
		Path:     path,
		Code:     zskema.CodeInvalidUnion,
		Message:  messages.T(messages.InvalidUnion, nil),
		Received: zskema.TypeName(v),
	})
}

// IntersectionSchema requires both sides to validate.
type IntersectionSchema struct {
	left, right zskema.Schema
}

var _ zskema.Schema = (*IntersectionSchema)(nil)

// Intersection validates with left, then right. Object outputs are
// shallow-merged with right winning; otherwise the left output is returned.
func Intersection(left, right zskema.Schema) *IntersectionSchema {
	return &IntersectionSchema{left: left, right: right}
}

// Sides returns both schemas.
func (i *IntersectionSchema) Sides() (left, right zskema.Schema) { return i.left, i.right }

func (i *IntersectionSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	l := evaluate(ctx, i.left, v, path, coerce)
	if !l.OK() {
		return l
	}
	r := evaluate(ctx, i.right, v, path, coerce)
	if !r.OK() {
		return r
	}
	lm, lok := l.Value.(map[string]any)
	rm, rok := r.Value.(map[string]any)
	if !lok || !rok || lm == nil || rm == nil {
		return l
	}
	merged := make(map[string]any, len(lm)+len(rm))
	for k, val := range lm {
		merged[k] = val
	}
	for k, val := range rm {
		merged[k] = val
	}
	return zskema.OK(merged)
}
