// Package messages holds the default English text for issue codes.
package messages

import "strings"

// Message key constants. Most match an issue code; some codes have several
// message variants (e.g. too_small for strings versus arrays).
const (
	InvalidType          = "invalid_type"
	Required             = "required"
	InvalidLiteral       = "invalid_literal"
	InvalidEnum          = "invalid_enum"
	InvalidDate          = "invalid_date"
	InvalidEmail         = "invalid_email"
	InvalidURL           = "invalid_url"
	InvalidRegex         = "invalid_regex"
	InvalidStartsWith    = "invalid_starts_with"
	InvalidEndsWith      = "invalid_ends_with"
	InvalidIncludes      = "invalid_includes"
	StringTooShort       = "string_too_short"
	StringTooLong        = "string_too_long"
	StringLength         = "string_length"
	ArrayTooShort        = "array_too_short"
	ArrayTooLong         = "array_too_long"
	ArrayLength          = "array_length"
	TupleLength          = "tuple_length"
	NumberTooSmall       = "number_too_small"
	NumberTooBig         = "number_too_big"
	NumberNotGreater     = "number_not_greater"
	NumberNotLess        = "number_not_less"
	NotInteger           = "not_integer"
	NotFinite            = "not_finite"
	NotMultipleOf        = "not_multiple_of"
	DateTooEarly         = "date_too_early"
	DateTooLate          = "date_too_late"
	UnrecognizedKey      = "unrecognized_key"
	InvalidKey           = "invalid_key"
	InvalidUnion         = "invalid_union"
	InvalidIntersection  = "invalid_intersection"
	DiscriminatorMissing = "discriminator_missing"
	DiscriminatorUnknown = "discriminator_unknown"
	InvalidInput         = "invalid_input"
	TransformFailed      = "transform_failed"
	NeverAccepts         = "never"
	InvalidInstance      = "invalid_instance"
	AtLeastOne           = "at_least_one"
	NotUnique            = "not_unique"
	FieldsNotEqual       = "fields_not_equal"
)

var catalog = map[string]string{
	InvalidType:          "Expected {expected}, received {received}",
	Required:             "Required",
	InvalidLiteral:       "Invalid literal value, expected {expected}",
	InvalidEnum:          "Invalid enum value. Expected {expected}, received {received}",
	InvalidDate:          "Invalid date",
	InvalidEmail:         "Invalid email",
	InvalidURL:           "Invalid url",
	InvalidRegex:         "Invalid",
	InvalidStartsWith:    "Invalid input: must start with \"{value}\"",
	InvalidEndsWith:      "Invalid input: must end with \"{value}\"",
	InvalidIncludes:      "Invalid input: must include \"{value}\"",
	StringTooShort:       "String must contain at least {min} character(s)",
	StringTooLong:        "String must contain at most {max} character(s)",
	StringLength:         "String must contain exactly {length} character(s)",
	ArrayTooShort:        "Array must contain at least {min} element(s)",
	ArrayTooLong:         "Array must contain at most {max} element(s)",
	ArrayLength:          "Array must contain exactly {length} element(s)",
	TupleLength:          "Tuple must contain exactly {length} element(s), received {received}",
	NumberTooSmall:       "Number must be greater than or equal to {min}",
	NumberTooBig:         "Number must be less than or equal to {max}",
	NumberNotGreater:     "Number must be greater than {min}",
	NumberNotLess:        "Number must be less than {max}",
	NotInteger:           "Expected integer, received float",
	NotFinite:            "Number must be finite",
	NotMultipleOf:        "Number must be a multiple of {value}",
	DateTooEarly:         "Date must be greater than or equal to {min}",
	DateTooLate:          "Date must be smaller than or equal to {max}",
	UnrecognizedKey:      "Unrecognized key: \"{key}\"",
	InvalidKey:           "Invalid key in record",
	InvalidUnion:         "Invalid input",
	InvalidIntersection:  "Intersection results could not be merged",
	DiscriminatorMissing: "Missing discriminator key \"{key}\"",
	DiscriminatorUnknown: "Invalid discriminator value. Expected {expected}, received {received}",
	InvalidInput:         "Invalid input",
	TransformFailed:      "Transform failed: {reason}",
	NeverAccepts:         "Expected never, received {received}",
	InvalidInstance:      "Input not instance of {expected}",
	AtLeastOne:           "At least 1 item is required",
	NotUnique:            "Duplicate value {value}, first seen at index {first}",
	FieldsNotEqual:       "Must equal {other}",
}

// T renders the message registered for key, substituting "{name}"
// placeholders from data. Unknown keys render as the key itself.
func T(key string, data map[string]string) string {
	tmpl, ok := catalog[key]
	if !ok {
		return key
	}
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// KV builds a data map from alternating key/value strings.
func KV(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}
