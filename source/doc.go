// Package source decodes raw JSON or YAML bytes into the untyped value model
// consumed by zskema schemas: map[string]any, []any, string, float64 (or
// json.Number), bool and nil.
//
// JSON is read token by token through goccy/go-json so duplicate object keys
// can be reported instead of silently overwritten; YAML is decoded with
// gopkg.in/yaml.v3 and normalized into the same shapes.
package source
