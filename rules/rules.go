// Package rules provides reusable cross-field checks for object and array
// schemas. A Rule has the same shape as dsl.RefineFunc, so rules compose with
// dsl.SuperRefine directly or through Apply.
package rules

import (
	"context"
	"strconv"

	"github.com/reoring/zskema"
	"github.com/reoring/zskema/dsl"
	"github.com/reoring/zskema/internal/messages"
)

// Rule inspects an already validated value and reports issues relative to
// path.
type Rule = dsl.RefineFunc

// Apply attaches rules to s. Rules run only when s succeeds.
func Apply(s zskema.Schema, rules ...Rule) *dsl.RefineSchema {
	return dsl.SuperRefine(s, And(rules...))
}

// Op defines simple comparison operators for If(...).Then(...)
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Conditional composes conditional execution of rules.
type Conditional struct {
	path zskema.Path
	op   Op
	want any
	all  []Conditional // composite AND
	any  []Conditional // composite OR
}

// If builds a conditional that compares the value at a JSON Pointer (e.g.
// "/status") with want.
func If(pointer string, op Op, want any) Conditional {
	return Conditional{path: zskema.ParsePointer(pointer), op: op, want: want}
}

// IfAll builds a conditional that requires all conditions to hold.
func IfAll(conds ...Conditional) Conditional { return Conditional{all: conds} }

// IfAny builds a conditional that requires any condition to hold.
func IfAny(conds ...Conditional) Conditional { return Conditional{any: conds} }

// And combines the receiver with additional conditions using logical AND.
func (c Conditional) And(others ...Conditional) Conditional {
	return IfAll(append([]Conditional{c}, others...)...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Conditional) Or(others ...Conditional) Conditional {
	return IfAny(append([]Conditional{c}, others...)...)
}

// Holds reports whether the condition is satisfied by v.
func (c Conditional) Holds(v any) bool {
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !it.Holds(v) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, it := range c.any {
			if it.Holds(v) {
				return true
			}
		}
		return false
	}
	cur, ok := valueAt(v, c.path)
	if !ok {
		return false
	}
	return compare(cur, c.op, c.want)
}

// Then attaches rules to run when the condition is satisfied.
func (c Conditional) Then(rules ...Rule) Rule {
	and := And(rules...)
	return func(ctx context.Context, v any, path zskema.Path) zskema.Issues {
		if !c.Holds(v) {
			return nil
		}
		return and(ctx, v, path)
	}
}

// And executes all rules and concatenates their issues, stopping early in
// fail-fast mode.
func And(rules ...Rule) Rule {
	return func(ctx context.Context, v any, path zskema.Path) zskema.Issues {
		var out zskema.Issues
		for _, r := range rules {
			if r == nil {
				continue
			}
			if iss := r(ctx, v, path); len(iss) > 0 {
				out = zskema.AppendIssues(out, iss...)
				if zskema.IsFailFast(ctx) {
					return out
				}
			}
		}
		return out
	}
}

// Or succeeds if any rule returns no issues. When all fail, the branch with
// the fewest issues is returned.
func Or(rules ...Rule) Rule {
	return func(ctx context.Context, v any, path zskema.Path) zskema.Issues {
		var best zskema.Issues
		bestSet := false
		for _, r := range rules {
			if r == nil {
				continue
			}
			iss := r(ctx, v, path)
			if len(iss) == 0 {
				return nil
			}
			if !bestSet || len(iss) < len(best) {
				best = iss
				bestSet = true
			}
		}
		return best
	}
}

// Required reports a missing (or null) value at pointer.
func Required(pointer string) Rule {
	rel := zskema.ParsePointer(pointer)
	return func(_ context.Context, v any, path zskema.Path) zskema.Issues {
		if cur, ok := valueAt(v, rel); ok && cur != nil && !zskema.IsUndefined(cur) {
			return nil
		}
		return zskema.Issues{{
			Path:     path.Concat(rel),
			Code:     zskema.CodeInvalidType,
			Message:  messages.T(messages.Required, nil),
			Received: "undefined",
		}}
	}
}

// AtLeastOne ensures the collection at pointer has at least 1 element.
// Missing values and non-collections are left to the schema.
func AtLeastOne(pointer string) Rule {
	rel := zskema.ParsePointer(pointer)
	return func(_ context.Context, v any, path zskema.Path) zskema.Issues {
		cur, ok := valueAt(v, rel)
		if !ok {
			return nil
		}
		arr, ok := zskema.AsArray(cur)
		if !ok || len(arr) > 0 {
			return nil
		}
		return zskema.Issues{zskema.IssueAt(path.Concat(rel), zskema.CodeTooSmall,
			messages.T(messages.AtLeastOne, nil), "type", "array", "min", 1)}
	}
}

// UniqueBy ensures elements of the collection at collectionPointer have
// distinct values at keyPointer (relative to each element, "" for the
// element itself). Keys compare with zskema.StrictEqual semantics, so 1 and
// "1" are different.
func UniqueBy(collectionPointer, keyPointer string) Rule {
	cp := zskema.ParsePointer(collectionPointer)
	kp := zskema.ParsePointer(keyPointer)
	return func(_ context.Context, v any, path zskema.Path) zskema.Issues {
		cur, ok := valueAt(v, cp)
		if !ok {
			return nil
		}
		arr, ok := zskema.AsArray(cur)
		if !ok {
			return nil
		}
		type seenKey struct {
			kind string
			repr string
		}
		seen := map[seenKey]int{}
		var out zskema.Issues
		for i, elem := range arr {
			kv, ok := valueAt(elem, kp)
			if !ok {
				continue
			}
			k := seenKey{kind: zskema.TypeName(kv), repr: zskema.Render(kv)}
			if j, dup := seen[k]; dup {
				out = zskema.AppendIssues(out, zskema.IssueAt(
					path.Concat(cp).Index(i).Concat(kp),
					zskema.CodeNotUnique,
					messages.T(messages.NotUnique, messages.KV("value", k.repr, "first", strconv.Itoa(j))),
					"first", j, "dup", i, "key", k.repr,
				))
				continue
			}
			seen[k] = i
		}
		return out
	}
}

// FieldsEqual requires the values at two pointers to be equal (e.g. password
// and confirmation). The issue is reported at the second pointer.
func FieldsEqual(pointer, otherPointer string) Rule {
	a := zskema.ParsePointer(pointer)
	b := zskema.ParsePointer(otherPointer)
	return func(_ context.Context, v any, path zskema.Path) zskema.Issues {
		av, _ := valueAt(v, a)
		bv, _ := valueAt(v, b)
		if zskema.StrictEqual(av, bv) {
			return nil
		}
		return zskema.Issues{zskema.IssueAt(path.Concat(b), zskema.CodeCustom,
			messages.T(messages.FieldsNotEqual, messages.KV("other", a.String())),
			"other", a.String())}
	}
}

// ------- helpers -------

// valueAt walks objects by key and arrays by index. Absent keys report
// false.
func valueAt(v any, rel zskema.Path) (any, bool) {
	cur := v
	for _, seg := range rel {
		switch s := seg.(type) {
		case string:
			m, ok := zskema.AsObject(cur)
			if !ok {
				return nil, false
			}
			next, ok := m[s]
			if !ok {
				return nil, false
			}
			cur = next
		case int:
			arr, ok := zskema.AsArray(cur)
			if ok {
				if s < 0 || s >= len(arr) {
					return nil, false
				}
				cur = arr[s]
				continue
			}
			// digit keys on objects
			m, ok := zskema.AsObject(cur)
			if !ok {
				return nil, false
			}
			next, ok := m[strconv.Itoa(s)]
			if !ok {
				return nil, false
			}
			cur = next
		default:
			return nil, false
		}
	}
	return cur, true
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return zskema.StrictEqual(cur, want)
	case Ne:
		return !zskema.StrictEqual(cur, want)
	case Lt, Le, Gt, Ge:
		return compareOrdered(cur, op, want)
	default:
		return false
	}
}

// compareOrdered supports numbers and strings.
func compareOrdered(cur any, op Op, want any) bool {
	if a, ok := zskema.AsNumber(cur); ok {
		b, ok := zskema.AsNumber(want)
		if !ok {
			return false
		}
		return ordered(a, op, b)
	}
	if a, ok := cur.(string); ok {
		b, ok := want.(string)
		if !ok {
			return false
		}
		return ordered(a, op, b)
	}
	return false
}

func ordered[T float64 | string](a T, op Op, b T) bool {
	switch op {
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	}
	return false
}
