package zskema

import "context"

// Schema is an immutable validation node. Evaluate checks v at path, applying
// per-kind coercion when coerce is set, and returns either the (possibly
// transformed) value or the issues found. Implementations must not retain or
// mutate state across calls; one Schema may be evaluated concurrently.
type Schema interface {
	Evaluate(ctx context.Context, v any, path Path, coerce bool) Result
}

// SchemaFunc adapts a plain function to Schema.
type SchemaFunc func(ctx context.Context, v any, path Path, coerce bool) Result

func (f SchemaFunc) Evaluate(ctx context.Context, v any, path Path, coerce bool) Result {
	return f(ctx, v, path, coerce)
}

// Parse evaluates v without coercion and returns the validated value, or the
// Issues as error.
func Parse(ctx context.Context, s Schema, v any) (any, error) {
	r := SafeParse(ctx, s, v)
	if !r.OK() {
		return nil, r.Issues
	}
	return r.Value, nil
}

// MustParse is like Parse but panics with the Issues on failure.
func MustParse(ctx context.Context, s Schema, v any) any {
	out, err := Parse(ctx, s, v)
	if err != nil {
		panic(err)
	}
	return out
}

// SafeParse evaluates v without coercion and returns the Result; it never
// returns failure through an error.
func SafeParse(ctx context.Context, s Schema, v any) Result {
	return evaluateRoot(ctx, s, v, false)
}

// Coerce evaluates v with coercion enabled.
func Coerce(ctx context.Context, s Schema, v any) (any, error) {
	r := SafeCoerce(ctx, s, v)
	if !r.OK() {
		return nil, r.Issues
	}
	return r.Value, nil
}

// SafeCoerce evaluates v with coercion enabled and returns the Result.
func SafeCoerce(ctx context.Context, s Schema, v any) Result {
	return evaluateRoot(ctx, s, v, true)
}

// Is returns true if v conforms to s (SafeParse succeeds).
func Is(ctx context.Context, s Schema, v any) bool {
	return SafeParse(ctx, s, v).OK()
}

func evaluateRoot(ctx context.Context, s Schema, v any, coerce bool) Result {
	if s == nil {
		return Fail(Issue{Code: CodeParseError, Message: "nil schema"})
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return s.Evaluate(ctx, v, Root(), coerce)
}

// ---- Parse-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that makes structural schemas stop at
// the first failing child instead of accumulating every issue.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current evaluation should stop on the first
// issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
