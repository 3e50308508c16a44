package catalog

import (
	"regexp"

	"github.com/reoring/zskema"
	g "github.com/reoring/zskema/dsl"
	"github.com/reoring/zskema/rules"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)
	versionPattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+$`)
)

// Default returns a registry preloaded with the built-in example schemas.
func Default(opts ...Option) *Registry {
	r := New(opts...)
	r.MustRegister("user", "User account with profile and tags", User())
	r.MustRegister("shape", "Geometric shape keyed by \"type\"", Shape())
	r.MustRegister("service-config", "Service deployment configuration", ServiceConfig())
	return r
}

// User validates a user account.
func User() zskema.Schema {
	return g.Object(g.Shape{
		"id":     g.String().Nonempty(),
		"email":  g.String().Email(),
		"name":   g.String().Min(1).Max(100),
		"age":    g.Optional(g.Number().Int().Nonnegative()),
		"role":   g.Default(g.Enum("admin", "member", "guest"), "member"),
		"tags":   g.DefaultFunc(g.Array(g.String()).Max(20), func() any { return []any{} }),
		"joined": g.Optional(g.Date()),
	}).Strict()
}

// Shape is a discriminated union over circles, rectangles and points.
func Shape() zskema.Schema {
	return g.MustDiscriminatedUnion("type",
		g.Object(g.Shape{"type": g.Literal("circle"), "radius": g.Number().Positive()}),
		g.Object(g.Shape{"type": g.Literal("rect"), "width": g.Number().Positive(), "height": g.Number().Positive()}),
		g.Object(g.Shape{"type": g.Literal("point"), "x": g.Number(), "y": g.Number()}),
	)
}

// ServiceConfig validates a small deployment manifest, typically read from
// YAML.
func ServiceConfig() zskema.Schema {
	port := g.Number().Int().Min(1).Max(65535)
	env := g.Record(g.Union(g.String(), g.Number(), g.Boolean()))
	endpoint := g.Object(g.Shape{
		"path":    g.String().StartsWith("/"),
		"methods": g.Array(g.Enum("GET", "POST", "PUT", "PATCH", "DELETE")).Nonempty(),
		"timeout": g.Optional(g.Number().Positive().Max(300)),
	})
	return rules.Apply(
		g.Object(g.Shape{
			"name":      g.String().Pattern(slugPattern),
			"version":   g.String().Pattern(versionPattern),
			"replicas":  g.Default(g.Number().Int().Min(0).Max(100), 1.0),
			"port":      port,
			"env":       g.Optional(env),
			"endpoints": g.Array(endpoint),
			"public":    g.Default(g.Boolean(), false),
			"tls": g.Optional(g.Object(g.Shape{
				"cert": g.String().Nonempty(),
				"key":  g.String().Nonempty(),
			})),
		}),
		rules.UniqueBy("/endpoints", "path"),
		rules.If("/public", rules.Eq, true).Then(rules.Required("/tls")),
	)
}
