// Package catalog keeps a named set of schemas so tools such as the zskema
// CLI can select one by name.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/reoring/zskema"
)

// ErrUnknownSchema is returned by Lookup for unregistered names.
var ErrUnknownSchema = errors.New("unknown schema")

// ErrDuplicateSchema is returned by Register when the name is taken.
var ErrDuplicateSchema = errors.New("schema already registered")

// Entry is a registered schema with a one-line description.
type Entry struct {
	Name        string
	Description string
	Schema      zskema.Schema
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets a structured logger for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{entries: map[string]Entry{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Register adds s under name.
func (r *Registry) Register(name, description string, s zskema.Schema) error {
	if name == "" {
		return errors.New("catalog: empty schema name")
	}
	if s == nil {
		return fmt.Errorf("catalog: schema %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[name]; dup {
		return fmt.Errorf("catalog: %w: %s", ErrDuplicateSchema, name)
	}
	r.entries[name] = Entry{Name: name, Description: description, Schema: s}
	r.logger.Debug("schema registered", "name", name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name, description string, s zskema.Schema) {
	if err := r.Register(name, description, s); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("catalog: %w: %s", ErrUnknownSchema, name)
	}
	return e, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Entries returns every entry ordered by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		if e, ok := r.entries[n]; ok {
			out = append(out, e)
		}
	}
	return out
}
