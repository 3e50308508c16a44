package zskema

// UnknownPolicy controls how object keys that are not declared in a shape are
// handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Reject each unknown key with an issue.
	UnknownPassthrough                      // Copy unknown keys into the output unmodified.
	UnknownCatchall                         // Validate unknown values against a catchall schema.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrip:
		return "strip"
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	case UnknownCatchall:
		return "catchall"
	default:
		return "unknown"
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks an absent value. Object fields missing from the input are
// evaluated as Undefined, and a field whose result is Undefined is left out of
// the output object. It is distinct from nil, which stands for null.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}
