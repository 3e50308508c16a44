package dsl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// NumberSchema validates numbers. Any Go numeric kind or json.Number is
// accepted on input; the output is always float64. NaN is rejected.
type NumberSchema struct {
	checks []check[float64]
}

var _ zskema.Schema = (*NumberSchema)(nil)

// Number returns a number schema without checks.
func Number() *NumberSchema { return &NumberSchema{} }

func (s *NumberSchema) with(c check[float64]) *NumberSchema {
	return &NumberSchema{checks: withCheck(s.checks, c)}
}

// Min requires v >= n.
func (s *NumberSchema) Min(n float64, msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:    zskema.CodeTooSmall,
		message: pickMessage(msg, messages.T(messages.NumberTooSmall, messages.KV("min", formatNumber(n)))),
		params:  []any{"type", "number", "min", n, "inclusive", true},
		ok:      func(v float64) bool { return v >= n },
	})
}

// Max requires v <= n.
func (s *NumberSchema) Max(n float64, msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:    zskema.CodeTooBig,
		message: pickMessage(msg, messages.T(messages.NumberTooBig, messages.KV("max", formatNumber(n)))),
		params:  []any{"type", "number", "max", n, "inclusive", true},
		ok:      func(v float64) bool { return v <= n },
	})
}

// Gt requires v > n.
func (s *NumberSchema) Gt(n float64, msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:    zskema.CodeTooSmall,
		message: pickMessage(msg, messages.T(messages.NumberNotGreater, messages.KV("min", formatNumber(n)))),
		params:  []any{"type", "number", "min", n, "inclusive", false},
		ok:      func(v float64) bool { return v > n },
	})
}

// Lt requires v < n.
func (s *NumberSchema) Lt(n float64, msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:    zskema.CodeTooBig,
		message: pickMessage(msg, messages.T(messages.NumberNotLess, messages.KV("max", formatNumber(n)))),
		params:  []any{"type", "number", "max", n, "inclusive", false},
		ok:      func(v float64) bool { return v < n },
	})
}

// Positive requires v > 0.
func (s *NumberSchema) Positive(msg ...string) *NumberSchema { return s.Gt(0, msg...) }

// Negative requires v < 0.
func (s *NumberSchema) Negative(msg ...string) *NumberSchema { return s.Lt(0, msg...) }

// Nonnegative requires v >= 0.
func (s *NumberSchema) Nonnegative(msg ...string) *NumberSchema { return s.Min(0, msg...) }

// Nonpositive requires v <= 0.
func (s *NumberSchema) Nonpositive(msg ...string) *NumberSchema { return s.Max(0, msg...) }

// Int requires an exact integer.
func (s *NumberSchema) Int(msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:     zskema.CodeNotInteger,
		message:  pickMessage(msg, messages.T(messages.NotInteger, nil)),
		expected: "integer",
		ok:       func(v float64) bool { return !math.IsInf(v, 0) && math.Trunc(v) == v },
	})
}

// Finite rejects ±Inf.
func (s *NumberSchema) Finite(msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:    zskema.CodeNotFinite,
		message: pickMessage(msg, messages.T(messages.NotFinite, nil)),
		ok:      func(v float64) bool { return !math.IsInf(v, 0) },
	})
}

// MultipleOf requires math.Mod(v, n) == 0. This is a floating point
// remainder: non-integer divisors give surprising answers (0.3 is not a
// multiple of 0.1). See MultipleOfDecimal.
func (s *NumberSchema) MultipleOf(n float64, msg ...string) *NumberSchema {
	return s.with(check[float64]{
		code:    zskema.CodeNotMultipleOf,
		message: pickMessage(msg, messages.T(messages.NotMultipleOf, messages.KV("value", formatNumber(n)))),
		params:  []any{"multipleOf", n},
		ok:      func(v float64) bool { return math.Mod(v, n) == 0 },
	})
}

// decimalCtx has enough precision for any float64 rendered in shortest form.
var decimalCtx = apd.BaseContext.WithPrecision(64)

// MultipleOfDecimal requires v to be an exact multiple of the decimal step,
// comparing the shortest decimal rendering of v. It panics if step is not a
// valid non-zero decimal.
func (s *NumberSchema) MultipleOfDecimal(step string, msg ...string) *NumberSchema {
	d, _, err := apd.NewFromString(strings.TrimSpace(step))
	if err != nil {
		panic(fmt.Sprintf("dsl: MultipleOfDecimal(%q): %v", step, err))
	}
	if d.IsZero() {
		panic(fmt.Sprintf("dsl: MultipleOfDecimal(%q): zero step", step))
	}
	return s.with(check[float64]{
		code:    zskema.CodeNotMultipleOf,
		message: pickMessage(msg, messages.T(messages.NotMultipleOf, messages.KV("value", d.String()))),
		params:  []any{"multipleOf", d.String()},
		ok: func(v float64) bool {
			if math.IsInf(v, 0) {
				return false
			}
			x, _, err := apd.NewFromString(strconv.FormatFloat(v, 'g', -1, 64))
			if err != nil {
				return false
			}
			var rem apd.Decimal
			if _, err := decimalCtx.Rem(&rem, x, d); err != nil {
				return false
			}
			return rem.IsZero()
		},
	})
}

func (s *NumberSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if coerce {
		v = coerceNumber(v)
	}
	f, ok := zskema.AsNumber(v)
	if !ok || math.IsNaN(f) {
		return zskema.Fail(invalidType(path, "number", v))
	}
	if it, ok := runChecks(s.checks, f, path); !ok {
		return zskema.Fail(it)
	}
	return zskema.OK(f)
}

// coerceNumber parses strings and maps booleans to 1/0. A string that does
// not parse (including the empty string) is left as is and then fails the
// base check. Infinity is only recognized as "Infinity" with an optional
// sign; "inf" and friends fail.
func coerceNumber(v any) any {
	switch t := v.(type) {
	case string:
		t = strings.TrimSpace(t)
		switch t {
		case "Infinity", "+Infinity":
			return math.Inf(1)
		case "-Infinity":
			return math.Inf(-1)
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			// out of range literals such as "1e400" still round to ±Inf
			var ne *strconv.NumError
			if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
				return v
			}
		} else if math.IsInf(f, 0) {
			return v
		}
		if math.IsNaN(f) {
			return v
		}
		return f
	case bool:
		if t {
			return float64(1)
		}
		return float64(0)
	}
	return v
}
