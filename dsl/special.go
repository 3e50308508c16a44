package dsl

import (
	"context"
	"reflect"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// AnySchema accepts every value unchanged. Any() and Unknown() share it.
type AnySchema struct{ unknown bool }

// Any accepts every value.
func Any() AnySchema { return AnySchema{} }

// Unknown accepts every value; it differs from Any only in intent.
func Unknown() AnySchema { return AnySchema{unknown: true} }

func (AnySchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	return zskema.OK(v)
}

// NeverSchema rejects every value.
type NeverSchema struct{}

// Never rejects every value.
func Never() NeverSchema { return NeverSchema{} }

func (NeverSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	received := zskema.TypeName(v)
	return zskema.Fail(zskema.Issue{
		Path:     path,
		Code:     zskema.CodeInvalidType,
		Message:  messages.T(messages.NeverAccepts, messages.KV("received", received)),
		Expected: "never",
		Received: received,
	})
}

// NullSchema accepts only nil.
type NullSchema struct{}

// Null accepts only nil (null).
func Null() NullSchema { return NullSchema{} }

func (NullSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if v != nil {
		return zskema.Fail(invalidType(path, "null", v))
	}
	return zskema.OK(nil)
}

// UndefinedSchema accepts only zskema.Undefined.
type UndefinedSchema struct{}

// Undefined accepts only the zskema.Undefined sentinel.
func Undefined() UndefinedSchema { return UndefinedSchema{} }

func (UndefinedSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if !zskema.IsUndefined(v) {
		return zskema.Fail(invalidType(path, "undefined", v))
	}
	return zskema.OK(zskema.Undefined)
}

// InstanceSchema accepts values whose dynamic type is (or implements) a
// configured Go type.
type InstanceSchema struct {
	typ reflect.Type
}

// InstanceOf accepts values assignable to T. For interface types this means
// "implements T".
func InstanceOf[T any]() InstanceSchema { return InstanceSchema{typ: reflect.TypeFor[T]()} }

// Type returns the configured type.
func (s InstanceSchema) Type() reflect.Type { return s.typ }

func (s InstanceSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if v == nil || zskema.IsUndefined(v) || !reflect.TypeOf(v).AssignableTo(s.typ) {
		expected := s.typ.String()
		return zskema.Fail(zskema.Issue{
			Path:     path,
			Code:     zskema.CodeInvalidType,
			Message:  messages.T(messages.InvalidInstance, messages.KV("expected", expected)),
			Expected: expected,
			Received: zskema.TypeName(v),
		})
	}
	return zskema.OK(v)
}
