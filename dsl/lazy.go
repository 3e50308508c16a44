package dsl

import (
	"context"

	"github.com/reoring/zskema"
)

// LazySchema resolves its schema on every evaluation. It is how recursive
// schemas refer to themselves.
type LazySchema struct {
	resolve func() zskema.Schema
}

var _ zskema.Schema = (*LazySchema)(nil)

// Lazy defers to resolve, which is called on each evaluation.
//
//	var node zskema.Schema
//	node = dsl.Object(dsl.Shape{
//		"children": dsl.Array(dsl.Lazy(func() zskema.Schema { return node })),
//	})
func Lazy(resolve func() zskema.Schema) *LazySchema { return &LazySchema{resolve: resolve} }

// Resolve calls the resolver.
func (l *LazySchema) Resolve() zskema.Schema { return l.resolve() }

func (l *LazySchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	s := l.resolve()
	if s == nil {
		return zskema.Fail(zskema.Issue{Path: path, Code: zskema.CodeParseError, Message: "lazy schema resolved to nil"})
	}
	return s.Evaluate(ctx, v, path, coerce)
}
