// Package zskema validates, coerces and transforms untyped values (as produced
// by decoding JSON or YAML into any) against a composed, immutable schema.
//
// The root package holds the shared model:
//
// - Schema: the single evaluation capability every node implements
// - Result/Issue/Issues: the outcome of an evaluation and the aggregate error
// - Path: key/index segments locating an issue inside the input
// - Parse/SafeParse/Coerce/SafeCoerce/Is: the top-level entry points
//
// Schema kinds and combinators live in the dsl package; reusable cross-field
// refinements live in rules; byte decoding lives in source.
//
// Typical usage:
//
//	user := dsl.Object(dsl.Shape{
//	    "id":    dsl.String().Nonempty(),
//	    "email": dsl.String().Email(),
//	    "age":   dsl.Optional(dsl.Number().Int().Nonnegative()),
//	})
//	v, err := zskema.Parse(ctx, user, raw)
//	res := zskema.SafeCoerce(ctx, user, raw)
//	if !res.OK() {
//	    for _, it := range res.Issues {
//	        fmt.Println(it.Path, it.Message)
//	    }
//	}
package zskema
