package zskema

import (
	"errors"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeInvalidLiteral       = "invalid_literal"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidDate          = "invalid_date"
	CodeInvalidString        = "invalid_string"
	CodeTooSmall             = "too_small"
	CodeTooBig               = "too_big"
	CodeNotInteger           = "not_integer"
	CodeNotFinite            = "not_finite"
	CodeNotMultipleOf        = "not_multiple_of"
	CodeUnrecognizedKey      = "unrecognized_key"
	CodeInvalidKey           = "invalid_key"
	CodeInvalidUnion         = "invalid_union"
	CodeInvalidIntersection  = "invalid_intersection"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeCustom               = "custom"
	CodeTransform            = "transform"
	CodeParseError           = "parse_error"
	CodeDuplicateKey         = "duplicate_key"
	CodeNotUnique            = "not_unique"
)

// Issue is a single validation failure.
type Issue struct {
	Path    Path
	Code    string
	Message string
	// Expected and Received are informal, human readable hints
	// (e.g. "number" / "string").
	Expected string
	Received string
	// Params carries structured parameters (e.g., {"min":1}) for callers that
	// render their own messages.
	Params map[string]any
}

// String renders "path: message", or only the message at the root.
func (it Issue) String() string {
	if len(it.Path) == 0 {
		return it.Message
	}
	return it.Path.String() + ": " + it.Message
}

// Issues is a collection of validation failures that implements error. A
// failed evaluation always carries at least one Issue.
type Issues []Issue

// Error joins every issue as "path: message" separated by "; ".
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(it.String())
	}
	return b.String()
}

// Codes returns the issue codes in order; handy in tests and logs.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with provided code, message and
// key/value params.
func IssueAt(p Path, code, msg string, kv ...any) Issue {
	it := Issue{Path: p, Code: code, Message: msg}
	if len(kv) > 1 {
		it.Params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				it.Params[k] = kv[i+1]
			}
		}
	}
	return it
}
