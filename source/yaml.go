package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML decodes the first document of data. Mappings become map[string]any
// (non-string keys are rendered with fmt.Sprint), sequences become []any and
// integers become float64 (or json.Number with WithNumberMode(NumberJSON)).
// An empty document decodes to nil.
func YAML(data []byte, opts ...Option) (any, error) {
	o := buildOptions(opts)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	return normalizeYAML(node, o), nil
}

// YAMLDocuments decodes every document of a multi-document stream.
func YAMLDocuments(data []byte, opts ...Option) ([]any, error) {
	o := buildOptions(opts)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []any
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("source: yaml document %d: %w", len(out), err)
		}
		out = append(out, normalizeYAML(node, o))
	}
}

func normalizeYAML(v any, o options) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv, o)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = normalizeYAML(vv, o)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i], o)
		}
		return arr
	case int:
		return yamlNumber(fmt.Sprint(t), float64(t), o)
	case int64:
		return yamlNumber(fmt.Sprint(t), float64(t), o)
	case uint64:
		return yamlNumber(fmt.Sprint(t), float64(t), o)
	case float64:
		if o.numbers == NumberJSON {
			return yamlNumber(fmt.Sprint(t), t, o)
		}
		return t
	default:
		return v
	}
}

func yamlNumber(lit string, f float64, o options) any {
	if o.numbers == NumberJSON {
		return json.Number(lit)
	}
	return f
}
