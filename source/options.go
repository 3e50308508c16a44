package source

// NumberMode dictates how JSON numbers are represented after decoding.
type NumberMode int

const (
	NumberFloat64 NumberMode = iota // Decode numbers as float64 (default).
	NumberJSON                      // Keep json.Number to preserve the literal text.
)

// DuplicateKeys controls handling of repeated keys inside one JSON object.
type DuplicateKeys int

const (
	DupError  DuplicateKeys = iota // Fail with *DuplicateKeyError (default).
	DupIgnore                      // Last value wins, as encoding/json does.
)

type options struct {
	numbers  NumberMode
	dup      DuplicateKeys
	maxDepth int
}

// Option configures decoding.
type Option func(*options)

// WithNumberMode selects the number representation.
func WithNumberMode(m NumberMode) Option { return func(o *options) { o.numbers = m } }

// WithDuplicateKeys selects the duplicate key policy.
func WithDuplicateKeys(d DuplicateKeys) Option { return func(o *options) { o.dup = d } }

// WithMaxDepth caps container nesting; 0 means unlimited.
func WithMaxDepth(n int) Option { return func(o *options) { o.maxDepth = n } }

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
