package zskema

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode parses v with s and projects the validated value into T. Struct
// fields are matched by their json tag (falling back to the field name), so
// the same types used with encoding/json can be filled from a schema result.
func Decode[T any](ctx context.Context, s Schema, v any) (T, error) {
	var out T
	r := SafeParse(ctx, s, v)
	if !r.OK() {
		return out, r.Issues
	}
	if err := Project(r.Value, &out); err != nil {
		return out, Issues{{Code: CodeParseError, Message: err.Error()}}
	}
	return out, nil
}

// Project copies an already validated value into out, which must be a
// non-nil pointer.
func Project(v any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		TagName:    "json",
		ZeroFields: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc("2006-01-02T15:04:05Z07:00"),
		),
	})
	if err != nil {
		return fmt.Errorf("zskema: project: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("zskema: project: %w", err)
	}
	return nil
}
