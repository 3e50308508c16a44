package dsl

import "github.com/reoring/zskema"

// Kind names the node types built by this package.
type Kind int

const (
	KindOther Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindLiteral
	KindEnum
	KindNativeEnum
	KindAny
	KindUnknown
	KindNever
	KindNull
	KindUndefined
	KindInstance
	KindObject
	KindArray
	KindTuple
	KindRecord
	KindOptional
	KindNullable
	KindDefault
	KindCatch
	KindTransform
	KindPreprocess
	KindRefine
	KindPipe
	KindUnion
	KindIntersection
	KindDiscriminatedUnion
	KindLazy
)

var kindNames = [...]string{
	KindOther:              "other",
	KindString:             "string",
	KindNumber:             "number",
	KindBoolean:            "boolean",
	KindDate:               "date",
	KindLiteral:            "literal",
	KindEnum:               "enum",
	KindNativeEnum:         "nativeEnum",
	KindAny:                "any",
	KindUnknown:            "unknown",
	KindNever:              "never",
	KindNull:               "null",
	KindUndefined:          "undefined",
	KindInstance:           "instanceof",
	KindObject:             "object",
	KindArray:              "array",
	KindTuple:              "tuple",
	KindRecord:             "record",
	KindOptional:           "optional",
	KindNullable:           "nullable",
	KindDefault:            "default",
	KindCatch:              "catch",
	KindTransform:          "transform",
	KindPreprocess:         "preprocess",
	KindRefine:             "refine",
	KindPipe:               "pipe",
	KindUnion:              "union",
	KindIntersection:       "intersection",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindLazy:               "lazy",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindOther]
	}
	return kindNames[k]
}

// KindOf classifies s. Schemas defined outside this package report
// KindOther.
func KindOf(s zskema.Schema) Kind {
	switch t := s.(type) {
	case *StringSchema:
		return KindString
	case *NumberSchema:
		return KindNumber
	case BooleanSchema:
		return KindBoolean
	case *DateSchema:
		return KindDate
	case LiteralSchema:
		return KindLiteral
	case *EnumSchema:
		return KindEnum
	case *NativeEnumSchema:
		return KindNativeEnum
	case AnySchema:
		if t.unknown {
			return KindUnknown
		}
		return KindAny
	case NeverSchema:
		return KindNever
	case NullSchema:
		return KindNull
	case UndefinedSchema:
		return KindUndefined
	case InstanceSchema:
		return KindInstance
	case *ObjectSchema:
		return KindObject
	case *ArraySchema:
		return KindArray
	case *TupleSchema:
		return KindTuple
	case *RecordSchema:
		return KindRecord
	case *OptionalSchema:
		return KindOptional
	case *NullableSchema:
		return KindNullable
	case *DefaultSchema:
		return KindDefault
	case *CatchSchema:
		return KindCatch
	case *TransformSchema:
		return KindTransform
	case *PreprocessSchema:
		return KindPreprocess
	case *RefineSchema:
		return KindRefine
	case *PipeSchema:
		return KindPipe
	case *UnionSchema:
		return KindUnion
	case *IntersectionSchema:
		return KindIntersection
	case *DiscriminatedUnionSchema:
		return KindDiscriminatedUnion
	case *LazySchema:
		return KindLazy
	}
	return KindOther
}
