package dsl

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/internal/messages"
)

// ErrDiscriminator is wrapped by every DiscriminatedUnion construction error.
var ErrDiscriminator = errors.New("invalid discriminated union")

// DiscriminatedUnionSchema selects an object variant by the literal value of
// one key.
type DiscriminatedUnionSchema struct {
	key      string
	variants []*ObjectSchema
	lookup   map[any]*ObjectSchema
	values   []string // rendered, declaration order
}

var _ zskema.Schema = (*DiscriminatedUnionSchema)(nil)

// DiscriminatedUnion builds the lookup table. Every variant must declare key
// as a Literal field, and no two variants may share a literal value.
func DiscriminatedUnion(key string, variants ...*ObjectSchema) (*DiscriminatedUnionSchema, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: no variants", ErrDiscriminator)
	}
	d := &DiscriminatedUnionSchema{
		key:      key,
		variants: append([]*ObjectSchema(nil), variants...),
		lookup:   make(map[any]*ObjectSchema, len(variants)),
	}
	for i, v := range variants {
		if v == nil {
			return nil, fmt.Errorf("%w: variant %d is nil", ErrDiscriminator, i)
		}
		field, ok := v.Field(key)
		if !ok {
			return nil, fmt.Errorf("%w: variant %d has no %q field", ErrDiscriminator, i, key)
		}
		lit, ok := field.(LiteralSchema)
		if !ok {
			return nil, fmt.Errorf("%w: variant %d field %q is not a literal", ErrDiscriminator, i, key)
		}
		lk, ok := lookupKey(lit.Value())
		if !ok {
			return nil, fmt.Errorf("%w: variant %d literal %s is not hashable", ErrDiscriminator, i, zskema.Render(lit.Value()))
		}
		if _, dup := d.lookup[lk]; dup {
			return nil, fmt.Errorf("%w: duplicate discriminator value %s", ErrDiscriminator, zskema.Render(lit.Value()))
		}
		d.lookup[lk] = v
		d.values = append(d.values, zskema.Render(lit.Value()))
	}
	return d, nil
}

// MustDiscriminatedUnion is like DiscriminatedUnion but panics on error.
func MustDiscriminatedUnion(key string, variants ...*ObjectSchema) *DiscriminatedUnionSchema {
	d, err := DiscriminatedUnion(key, variants...)
	if err != nil {
		panic(err)
	}
	return d
}

// lookupKey normalizes numbers to float64 so 1 and 1.0 select the same
// variant.
func lookupKey(v any) (any, bool) {
	if f, ok := zskema.AsNumber(v); ok {
		return f, true
	}
	if v == nil {
		return nil, true
	}
	if !hashable(reflect.ValueOf(v)) {
		return nil, false
	}
	return v, true
}

// hashable reports whether rv can be used as a map key without panicking.
// Comparable array and struct types may still hold unhashable values in
// interface elements, so those are checked element by element.
func hashable(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return hashable(rv.Elem())
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !hashable(rv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if !hashable(rv.Field(i)) {
				return false
			}
		}
		return true
	}
	return rv.Type().Comparable()
}

// Discriminator returns the key name.
func (d *DiscriminatedUnionSchema) Discriminator() string { return d.key }

// Options returns the variants in declaration order.
func (d *DiscriminatedUnionSchema) Options() []*ObjectSchema {
	return append([]*ObjectSchema(nil), d.variants...)
}

func (d *DiscriminatedUnionSchema) Evaluate(ctx context.Context, v any, path zskema.Path, coerce bool) zskema.Result {
	in, ok := zskema.AsObject(v)
	if !ok {
		return zskema.Fail(invalidType(path, "object", v))
	}
	kp := path.Key(d.key)
	raw, present := in[d.key]
	if !present {
		return zskema.Fail(zskema.IssueAt(kp, zskema.CodeDiscriminatorMissing,
			messages.T(messages.DiscriminatorMissing, messages.KV("key", d.key)),
			"key", d.key))
	}
	var variant *ObjectSchema
	if lk, ok := lookupKey(raw); ok {
		variant = d.lookup[lk]
	}
	if variant == nil {
		expected := strings.Join(d.values, " | ")
		received := zskema.Render(raw)
		return zskema.Fail(zskema.Issue{
			Path:     kp,
			Code:     zskema.CodeDiscriminatorUnknown,
			Message:  messages.T(messages.DiscriminatorUnknown, messages.KV("expected", expected, "received", received)),
			Expected: expected,
			Received: received,
		})
	}
	return variant.Evaluate(ctx, in, path, coerce)
}

