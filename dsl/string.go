package dsl

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// emailPattern is a permissive local@domain.tld shape, not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StringSchema validates strings. Lengths count Unicode code points.
type StringSchema struct {
	checks []check[string]
}

var _ zskema.Schema = (*StringSchema)(nil)

// String returns a string schema without checks.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) with(c check[string]) *StringSchema {
	return &StringSchema{checks: withCheck(s.checks, c)}
}

// Min requires at least n characters.
func (s *StringSchema) Min(n int, msg ...string) *StringSchema {
	return s.with(check[string]{
		code:    zskema.CodeTooSmall,
		message: pickMessage(msg, messages.T(messages.StringTooShort, messages.KV("min", strconv.Itoa(n)))),
		params:  []any{"type", "string", "min", n},
		ok:      func(v string) bool { return utf8.RuneCountInString(v) >= n },
	})
}

// Max allows at most n characters.
func (s *StringSchema) Max(n int, msg ...string) *StringSchema {
	return s.with(check[string]{
		code:    zskema.CodeTooBig,
		message: pickMessage(msg, messages.T(messages.StringTooLong, messages.KV("max", strconv.Itoa(n)))),
		params:  []any{"type", "string", "max", n},
		ok:      func(v string) bool { return utf8.RuneCountInString(v) <= n },
	})
}

// Length requires exactly n characters. Shorter input is too_small, longer
// input too_big.
func (s *StringSchema) Length(n int, msg ...string) *StringSchema {
	message := pickMessage(msg, messages.T(messages.StringLength, messages.KV("length", strconv.Itoa(n))))
	params := []any{"type", "string", "length", n}
	return s.with(check[string]{
		code:    zskema.CodeTooSmall,
		message: message,
		params:  params,
		ok:      func(v string) bool { return utf8.RuneCountInString(v) >= n },
	}).with(check[string]{
		code:    zskema.CodeTooBig,
		message: message,
		params:  params,
		ok:      func(v string) bool { return utf8.RuneCountInString(v) <= n },
	})
}

// Nonempty is Min(1).
func (s *StringSchema) Nonempty(msg ...string) *StringSchema { return s.Min(1, msg...) }

// Pattern requires a regular expression match.
func (s *StringSchema) Pattern(re *regexp.Regexp, msg ...string) *StringSchema {
	return s.with(check[string]{
		code:     zskema.CodeInvalidString,
		message:  pickMessage(msg, messages.T(messages.InvalidRegex, nil)),
		expected: re.String(),
		params:   []any{"validation", "regex", "pattern", re.String()},
		ok:       re.MatchString,
	})
}

// Regex is Pattern.
func (s *StringSchema) Regex(re *regexp.Regexp, msg ...string) *StringSchema {
	return s.Pattern(re, msg...)
}

// Email requires a local@domain.tld shaped address.
func (s *StringSchema) Email(msg ...string) *StringSchema {
	return s.with(check[string]{
		code:     zskema.CodeInvalidString,
		message:  pickMessage(msg, messages.T(messages.InvalidEmail, nil)),
		expected: "email",
		params:   []any{"validation", "email"},
		ok:       emailPattern.MatchString,
	})
}

// URL requires an absolute URL (a scheme is mandatory).
func (s *StringSchema) URL(msg ...string) *StringSchema {
	return s.with(check[string]{
		code:     zskema.CodeInvalidString,
		message:  pickMessage(msg, messages.T(messages.InvalidURL, nil)),
		expected: "url",
		params:   []any{"validation", "url"},
		ok: func(v string) bool {
			u, err := url.Parse(v)
			return err == nil && u.Scheme != ""
		},
	})
}

// StartsWith requires the given prefix.
func (s *StringSchema) StartsWith(prefix string, msg ...string) *StringSchema {
	return s.with(check[string]{
		code:     zskema.CodeInvalidString,
		message:  pickMessage(msg, messages.T(messages.InvalidStartsWith, messages.KV("value", prefix))),
		expected: "startsWith",
		params:   []any{"validation", "startsWith", "value", prefix},
		ok:       func(v string) bool { return strings.HasPrefix(v, prefix) },
	})
}

// EndsWith requires the given suffix.
func (s *StringSchema) EndsWith(suffix string, msg ...string) *StringSchema {
	return s.with(check[string]{
		code:     zskema.CodeInvalidString,
		message:  pickMessage(msg, messages.T(messages.InvalidEndsWith, messages.KV("value", suffix))),
		expected: "endsWith",
		params:   []any{"validation", "endsWith", "value", suffix},
		ok:       func(v string) bool { return strings.HasSuffix(v, suffix) },
	})
}

// Includes requires the given substring.
func (s *StringSchema) Includes(sub string, msg ...string) *StringSchema {
	return s.with(check[string]{
		code:     zskema.CodeInvalidString,
		message:  pickMessage(msg, messages.T(messages.InvalidIncludes, messages.KV("value", sub))),
		expected: "includes",
		params:   []any{"validation", "includes", "value", sub},
		ok:       func(v string) bool { return strings.Contains(v, sub) },
	})
}

// Trim validates with s, then strips leading and trailing white space.
func (s *StringSchema) Trim() *TransformSchema { return Transform(s, mapString(strings.TrimSpace)) }

// ToLowerCase validates with s, then lower-cases the value.
func (s *StringSchema) ToLowerCase() *TransformSchema { return Transform(s, mapString(strings.ToLower)) }

// ToUpperCase validates with s, then upper-cases the value.
func (s *StringSchema) ToUpperCase() *TransformSchema { return Transform(s, mapString(strings.ToUpper)) }

func mapString(fn func(string) string) TransformFunc {
	return As(func(v string) (string, error) { return fn(v), nil })
}

func (s *StringSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	if coerce {
		v = coerceString(v)
	}
	str, ok := v.(string)
	if !ok {
		return zskema.Fail(invalidType(path, "string", v))
	}
	if it, ok := runChecks(s.checks, str, path); !ok {
		return zskema.Fail(it)
	}
	return zskema.OK(str)
}

// coerceString mirrors String(x): null and undefined become "".
func coerceString(v any) any {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	}
	if zskema.IsUndefined(v) {
		return ""
	}
	if f, ok := zskema.AsNumber(v); ok {
		return formatNumber(f)
	}
	if arr, ok := zskema.AsArray(v); ok {
		parts := make([]string, len(arr))
		for i, e := range arr {
			if e == nil || zskema.IsUndefined(e) {
				continue
			}
			parts[i], _ = coerceString(e).(string)
		}
		return strings.Join(parts, ",")
	}
	if _, ok := zskema.AsObject(v); ok {
		return "[object Object]"
	}
	return zskema.Render(v)
}
