package dsl

import (
	"context"
	"sort"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// RecordSchema validates objects with arbitrary keys: every key against a key
// schema and every value against a value schema.
type RecordSchema struct {
	key   zskema.Schema
	value zskema.Schema
}

var _ zskema.Schema = (*RecordSchema)(nil)

// Record accepts any string key.
func Record(value zskema.Schema) *RecordSchema { return RecordOf(String(), value) }

// RecordOf validates keys with key and values with value.
func RecordOf(key, value zskema.Schema) *RecordSchema {
	return &RecordSchema{key: key, value: value}
}

// Key returns the key schema.
func (r *RecordSchema) Key() zskema.Schema { return r.key }

// Value returns the value schema.
func (r *RecordSchema) Value() zskema.Schema { return r.value }

func (r *RecordSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	in, ok := zskema.AsObject(v)
	if !ok {
		return zskema.Fail(invalidType(path, "object", v))
	}
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	failFast := zskema.IsFailFast(ctx)
	out := make(map[string]any, len(in))
	var issues zskema.Issues
	for _, k := range keys {
		kp := path.Key(k)
		kr := evaluate(ctx, r.key, k, kp, coerce)
		if !kr.OK() {
			issues = zskema.AppendIssues(issues, zskema.Issue{
				Path:     kp,
				Code:     zskema.CodeInvalidKey,
				Message:  messages.T(messages.InvalidKey, nil),
				Received: k,
				Params:   map[string]any{"issues": kr.Issues},
			})
			if failFast {
				return zskema.Result{Issues: issues}
			}
			continue
		}
		outKey, isStr := kr.Value.(string)
		if !isStr {
			outKey = k
		}
		vr := evaluate(ctx, r.value, in[k], kp, coerce)
		if !vr.OK() {
			issues = zskema.AppendIssues(issues, vr.Issues...)
			if failFast {
				return zskema.Result{Issues: issues}
			}
			continue
		}
		if !zskema.IsUndefined(vr.Value) {
			out[outKey] = vr.Value
		}
	}
	if len(issues) > 0 {
		return zskema.Result{Issues: issues}
	}
	return zskema.OK(out)
}
