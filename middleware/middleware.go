// Package middleware validates HTTP request bodies with a zskema schema
// before they reach a handler.
package middleware

import (
	"context"
	"errors"
	"net/http"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/source"
)

// DefaultMaxBodyBytes caps request bodies unless WithMaxBodyBytes is used.
const DefaultMaxBodyBytes = 1 << 20

type ctxKeyValue struct{}

// validated wraps the body so a nil (JSON null) result is still present.
type validated struct{ value any }

// ContextWithValue attaches a validated body to ctx.
func ContextWithValue(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyValue{}, validated{value: v})
}

// ValueFromContext returns the validated body stored by ValidateJSON. The
// boolean is true whenever a body was stored, even if it validated to nil.
func ValueFromContext(ctx context.Context) (any, bool) {
	b, ok := ctx.Value(ctxKeyValue{}).(validated)
	if !ok {
		return nil, false
	}
	return b.value, true
}

// DecodeFromContext projects the validated body into T (see zskema.Project).
func DecodeFromContext[T any](ctx context.Context) (T, error) {
	var out T
	v, ok := ValueFromContext(ctx)
	if !ok {
		return out, errors.New("middleware: no validated body in context")
	}
	err := zskema.Project(v, &out)
	return out, err
}

type config struct {
	coerce   bool
	maxBytes int64
	source   []source.Option
	onError  func(http.ResponseWriter, *http.Request, zskema.Issues)
}

// Option configures ValidateJSON.
type Option func(*config)

// WithCoercion evaluates bodies with coercion enabled.
func WithCoercion() Option { return func(c *config) { c.coerce = true } }

// WithMaxBodyBytes overrides DefaultMaxBodyBytes. n <= 0 disables the cap.
func WithMaxBodyBytes(n int64) Option { return func(c *config) { c.maxBytes = n } }

// WithSourceOptions forwards decoding options (number mode, duplicate keys,
// depth) to the JSON source. Duplicate keys are errors by default.
func WithSourceOptions(opts ...source.Option) Option {
	return func(c *config) { c.source = append(c.source, opts...) }
}

// WithErrorHandler replaces the default 400 JSON response.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, zskema.Issues)) Option {
	return func(c *config) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// ValidateJSON decodes the request body as JSON, evaluates it with s and
// stores the validated value in the request context. Failures never reach
// next.
func ValidateJSON(s zskema.Schema, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{maxBytes: DefaultMaxBodyBytes, onError: WriteIssues}
	for _, opt := range opts {
		opt(cfg)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := r.Body
			if cfg.maxBytes > 0 {
				body = http.MaxBytesReader(w, r.Body, cfg.maxBytes)
			}
			v, err := source.JSONReader(body, cfg.source...)
			if err != nil {
				cfg.onError(w, r, zskema.Issues{zskema.DecodeIssue(err)})
				return
			}
			ctx := r.Context()
			var res zskema.Result
			if cfg.coerce {
				res = zskema.SafeCoerce(ctx, s, v)
			} else {
				res = zskema.SafeParse(ctx, s, v)
			}
			if !res.OK() {
				cfg.onError(w, r, res.Issues)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithValue(ctx, res.Value)))
		})
	}
}

// IssuePayload is one entry of ErrorPayload.
type IssuePayload struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorPayload shapes Issues for JSON responses; paths are JSON Pointers.
func ErrorPayload(issues zskema.Issues) map[string]any {
	out := make([]IssuePayload, len(issues))
	for i, it := range issues {
		out[i] = IssuePayload{Path: it.Path.Pointer(), Code: it.Code, Message: it.Message}
	}
	return map[string]any{"issues": out}
}

// WriteIssues responds 400 with ErrorPayload as JSON.
func WriteIssues(w http.ResponseWriter, _ *http.Request, issues zskema.Issues) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = gojson.NewEncoder(w).Encode(ErrorPayload(issues))
}
