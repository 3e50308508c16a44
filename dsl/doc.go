// Package dsl provides the schema kinds and combinators for zskema.
//
// Overview
//   - Leaf schemas: String(), Number(), Boolean(), Date(), Literal(v), Enum(...), NativeEnum(m),
//     Any(), Unknown(), Never(), Null(), Undefined(), InstanceOf[T]().
//   - Structural schemas: Object(Shape), Array(elem), Tuple(items...), Record(value), RecordOf(key, value).
//   - Combinators: Optional, Nullable, Nullish, Default, Catch, Transform, Refine, SuperRefine,
//     Preprocess, Pipe, Union, Intersection, DiscriminatedUnion, Lazy.
//   - Object shape algebra: Extend, Merge, Pick, Omit, Partial, Required, Keyof, Strict,
//     Strip, Passthrough, Catchall.
//
// Every schema value is immutable. Check and modifier methods return a new
// schema and leave the receiver untouched, so a base schema can be shared and
// specialized freely:
//
//	name := dsl.String().Trim()
//	short := dsl.String().Max(8) // String() is not affected
//
// Evaluation
//
// All kinds implement zskema.Schema. Evaluate walks the tree once; leaf and
// combinator failures produce exactly one issue, structural schemas collect
// the issues of every failing child (unless zskema.WithFailFast is set on the
// context). Coercion is a single flag passed unchanged down the tree.
//
//	shape := dsl.MustDiscriminatedUnion("type",
//	    dsl.Object(dsl.Shape{"type": dsl.Literal("circle"), "radius": dsl.Number().Positive()}),
//	    dsl.Object(dsl.Shape{"type": dsl.Literal("rect"), "w": dsl.Number(), "h": dsl.Number()}),
//	)
//	res := zskema.SafeParse(ctx, shape, map[string]any{"type": "circle", "radius": 5.0})
//
// Recursive schemas
//
//	var category zskema.Schema
//	category = dsl.Object(dsl.Shape{
//	    "name":     dsl.String(),
//	    "children": dsl.Array(dsl.Lazy(func() zskema.Schema { return category })),
//	})
//
// Known limitation: Number().MultipleOf uses floating point remainder, which is
// unreliable for non-integer divisors (0.3 is not a multiple of 0.1). Use
// MultipleOfDecimal for exact decimal steps.
package dsl
