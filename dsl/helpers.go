package dsl

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// check is one refinement attached to a leaf schema. Checks run in the order
// they were attached and stop at the first failure.
type check[T any] struct {
	code     string
	message  string
	expected string
	params   []any
	ok       func(T) bool
}

// withCheck returns a new slice; the receiver's backing array is never shared.
func withCheck[T any](cs []check[T], c check[T]) []check[T] {
	out := make([]check[T], len(cs), len(cs)+1)
	copy(out, cs)
	return append(out, c)
}

func runChecks[T any](cs []check[T], v T, path zskema.Path) (zskema.Issue, bool) {
	for _, c := range cs {
		if c.ok(v) {
			continue
		}
		it := zskema.IssueAt(path, c.code, c.message, c.params...)
		it.Expected = c.expected
		return it, false
	}
	return zskema.Issue{}, true
}

// pickMessage returns the caller supplied message, if any, or def.
func pickMessage(custom []string, def string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return def
}

func invalidType(path zskema.Path, expected string, v any) zskema.Issue {
	received := zskema.TypeName(v)
	msg := messages.T(messages.InvalidType, messages.KV("expected", expected, "received", received))
	if zskema.IsUndefined(v) {
		msg = messages.T(messages.Required, nil)
	}
	return zskema.Issue{Path: path, Code: zskema.CodeInvalidType, Message: msg, Expected: expected, Received: received}
}

// formatNumber renders f the way a JavaScript runtime would print it, which
// keeps messages and string coercion free of Go's exponent style for
// ordinary magnitudes.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return trimExponent(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops leading zeros from the exponent: "1e-07" -> "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

func quoteList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "'" + v + "'"
	}
	return strings.Join(parts, " | ")
}

// evaluate is a nil-safe call into a child schema.
func evaluate(ctx context.Context, s zskema.Schema, v any, path zskema.Path, coerce bool) zskema.Result {
	if s == nil {
		return zskema.Fail(zskema.Issue{Path: path, Code: zskema.CodeParseError, Message: "nil schema"})
	}
	return s.Evaluate(ctx, v, path, coerce)
}
