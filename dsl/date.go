package dsl

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// maxDateMillis bounds numeric coercion to the ±100,000,000 day range of a
// valid timestamp.
const maxDateMillis = 8.64e15

// dateLayouts are tried in order when coercing strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateSchema validates time.Time values. The zero time.Time is treated as an
// invalid timestamp.
type DateSchema struct {
	checks []check[time.Time]
}

var _ zskema.Schema = (*DateSchema)(nil)

// Date returns a date schema without checks.
func Date() *DateSchema { return &DateSchema{} }

func (s *DateSchema) with(c check[time.Time]) *DateSchema {
	return &DateSchema{checks: withCheck(s.checks, c)}
}

// Min requires an instant at or after t.
func (s *DateSchema) Min(t time.Time, msg ...string) *DateSchema {
	return s.with(check[time.Time]{
		code:    zskema.CodeTooSmall,
		message: pickMessage(msg, messages.T(messages.DateTooEarly, messages.KV("min", t.UTC().Format(time.RFC3339Nano)))),
		params:  []any{"type", "date", "min", t},
		ok:      func(v time.Time) bool { return !v.Before(t) },
	})
}

// Max requires an instant at or before t.
func (s *DateSchema) Max(t time.Time, msg ...string) *DateSchema {
	return s.with(check[time.Time]{
		code:    zskema.CodeTooBig,
		message: pickMessage(msg, messages.T(messages.DateTooLate, messages.KV("max", t.UTC().Format(time.RFC3339Nano)))),
		params:  []any{"type", "date", "max", t},
		ok:      func(v time.Time) bool { return !v.After(t) },
	})
}

func (s *DateSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if coerce {
		v = coerceDate(v)
	}
	t, ok := v.(time.Time)
	if !ok {
		return zskema.Fail(invalidType(path, "date", v))
	}
	if t.IsZero() {
		return zskema.Fail(zskema.Issue{Path: path, Code: zskema.CodeInvalidDate, Message: messages.T(messages.InvalidDate, nil), Expected: "date", Received: "invalid_date"})
	}
	if it, ok := runChecks(s.checks, t, path); !ok {
		return zskema.Fail(it)
	}
	return zskema.OK(t)
}

// coerceDate builds a time from a string (see dateLayouts) or from Unix
// milliseconds. Failed conversions leave v unchanged.
func coerceDate(v any) any {
	if _, ok := v.(time.Time); ok {
		return v
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return v
	}
	if f, ok := zskema.AsNumber(v); ok {
		if math.IsNaN(f) || math.Abs(f) > maxDateMillis {
			return v
		}
		return time.UnixMilli(int64(f)).UTC()
	}
	return v
}
