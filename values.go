package zskema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	gojson "github.com/goccy/go-json"
)

// TypeName reports the runtime shape of v using the vocabulary of the value
// model: "null", "undefined", "string", "number", "nan", "boolean", "date",
// "array", "object" or "function". Anything else is reported by Go type name.
func TypeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return "string"
	case bool:
		return "boolean"
	case time.Time:
		return "date"
	case json.Number:
		if _, err := strconv.ParseFloat(string(t), 64); err != nil {
			return "string"
		}
		return "number"
	}
	if f, ok := AsNumber(v); ok {
		if math.IsNaN(f) {
			return "nan"
		}
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	case reflect.Func:
		return "function"
	}
	return fmt.Sprintf("%T", v)
}

// AsNumber converts any Go numeric kind or json.Number to float64. It reports
// false for every other shape (strings are not numbers here).
func AsNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// AsObject returns v as map[string]any when it is a non-nil map keyed by
// strings. Maps of other value types are copied through reflection.
func AsObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if t == nil {
			return nil, false
		}
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// AsArray returns v as []any when it is a slice or an array. Typed slices are
// copied through reflection.
func AsArray(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// StrictEqual compares two values the way a literal check does: same shape
// and same value. Numbers compare by numeric value whatever their Go type.
func StrictEqual(a, b any) bool {
	if fa, ok := AsNumber(a); ok {
		fb, ok := AsNumber(b)
		return ok && fa == fb
	}
	if _, ok := AsNumber(b); ok {
		return false
	}
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() && (!ra.Type().Comparable() || !rb.Type().Comparable()) {
		return false
	}
	return a == b
}

// Render formats v for diagnostics: JSON when it can be marshaled, a Go
// representation otherwise.
func Render(v any) string {
	switch t := v.(type) {
	case undefined:
		return "undefined"
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	}
	if f, ok := AsNumber(v); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
