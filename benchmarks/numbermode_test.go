package benchmarks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/reoring/zskema"
	g "github.com/reoring/zskema/dsl"
	"github.com/reoring/zskema/source"
)

// Micro: small object with numeric fields
func numberSchema(keys ...string) zskema.Schema {
	shape := g.Shape{}
	for _, k := range keys {
		shape[k] = g.Number()
	}
	return g.Object(shape)
}

func benchParseJSON(b *testing.B, s zskema.Schema, data []byte, opts ...source.Option) {
	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r := zskema.ParseJSON(ctx, s, data, opts...); !r.OK() {
			b.Fatal(r.Issues)
		}
	}
}

func Benchmark_NumberMode_Small_JSONNumber(b *testing.B) {
	benchParseJSON(b, numberSchema("a", "b", "c"), []byte(`{"a":1,"b":2.5,"c":-3.75}`),
		source.WithNumberMode(source.NumberJSON))
}

func Benchmark_NumberMode_Small_Float64(b *testing.B) {
	benchParseJSON(b, numberSchema("a", "b", "c"), []byte(`{"a":1,"b":2.5,"c":-3.75}`))
}

func generateNumericJSONArray(num int) []byte {
	var buf bytes.Buffer
	buf.Grow(num * 48)
	buf.WriteByte('[')
	for i := 0; i < num; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		// oscillate values to avoid trivial constant folding
		buf.WriteString(`{"x":`)
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString(`,"y":`)
		if i%2 == 0 {
			buf.WriteString("1.5")
		} else {
			buf.WriteString("2.5")
		}
		buf.WriteString(`,"z":-3.75}`)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

const hugeN = 50000

func Benchmark_NumberMode_HugeArray_JSONNumber(b *testing.B) {
	benchParseJSON(b, g.Array(numberSchema("x", "y", "z")), generateNumericJSONArray(hugeN),
		source.WithNumberMode(source.NumberJSON))
}

func Benchmark_NumberMode_HugeArray_Float64(b *testing.B) {
	benchParseJSON(b, g.Array(numberSchema("x", "y", "z")), generateNumericJSONArray(hugeN))
}

// Baseline: decode with encoding/json, then evaluate the tree.
func Benchmark_HugeArray_StdlibDecodeThenParse(b *testing.B) {
	ctx := context.Background()
	s := g.Array(numberSchema("x", "y", "z"))
	data := generateNumericJSONArray(hugeN)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
		if r := zskema.SafeParse(ctx, s, v); !r.OK() {
			b.Fatal(r.Issues)
		}
	}
}

func Benchmark_HugeArray_Coerce(b *testing.B) {
	ctx := context.Background()
	s := g.Array(numberSchema("x", "y", "z"))
	var v any
	if err := json.Unmarshal(generateNumericJSONArray(hugeN), &v); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r := zskema.SafeCoerce(ctx, s, v); !r.OK() {
			b.Fatal(r.Issues)
		}
	}
}
