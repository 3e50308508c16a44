package dsl

import (
	"context"

	"github.com/reoring/zskema"
)

// BooleanSchema validates booleans.
type BooleanSchema struct{}

var _ zskema.Schema = BooleanSchema{}

// Boolean returns the boolean schema.
func Boolean() BooleanSchema { return BooleanSchema{} }

func (BooleanSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if coerce {
		v = coerceBoolean(v)
	}
	b, ok := v.(bool)
	if !ok {
		return zskema.Fail(invalidType(path, "boolean", v))
	}
	return zskema.OK(b)
}

// coerceBoolean accepts "true"/1 and "false"/0 only; anything else is left
// unchanged.
func coerceBoolean(v any) any {
	if s, ok := v.(string); ok {
		switch s {
		case "true":
			return true
		case "false":
			return false
		}
		return v
	}
	if f, ok := zskema.AsNumber(v); ok {
		switch f {
		case 1:
			return true
		case 0:
			return false
		}
	}
	return v
}
