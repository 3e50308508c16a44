package zskema

import (
	"context"
	"errors"
	"strings"

	"github.com/reoring/zskema/source"
)

// Format names an input encoding accepted by ParseBytes.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// ParseFormat maps "json", "yaml" or "yml" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	}
	return FormatJSON, false
}

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ParseBytes decodes data in the given format and evaluates the result with
// s. Decoding failures are reported as issues, never as a separate error.
func ParseBytes(ctx context.Context, s Schema, f Format, data []byte, coerce bool, opts ...source.Option) Result {
	var (
		v   any
		err error
	)
	switch f {
	case FormatYAML:
		v, err = source.YAML(data, opts...)
	default:
		v, err = source.JSON(data, opts...)
	}
	if err != nil {
		return Fail(DecodeIssue(err))
	}
	return evaluateRoot(ctx, s, v, coerce)
}

// ParseJSON decodes JSON bytes and evaluates them without coercion.
func ParseJSON(ctx context.Context, s Schema, data []byte, opts ...source.Option) Result {
	return ParseBytes(ctx, s, FormatJSON, data, false, opts...)
}

// ParseYAML decodes the first YAML document and evaluates it without coercion.
func ParseYAML(ctx context.Context, s Schema, data []byte, opts ...source.Option) Result {
	return ParseBytes(ctx, s, FormatYAML, data, false, opts...)
}

// DecodeIssue converts a source decoding error into an issue: duplicate keys
// and depth overruns keep their location, anything else is a root
// parse_error.
func DecodeIssue(err error) Issue {
	var dup *source.DuplicateKeyError
	if errors.As(err, &dup) {
		return Issue{Path: ParsePointer(dup.Pointer), Code: CodeDuplicateKey, Message: "Duplicate key " + dup.Key}
	}
	var depth *source.DepthError
	if errors.As(err, &depth) {
		return Issue{Path: ParsePointer(depth.Pointer), Code: CodeParseError, Message: err.Error()}
	}
	return Issue{Code: CodeParseError, Message: err.Error()}
}
