package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// ErrTrailingData is returned when more than one JSON value is present.
var ErrTrailingData = errors.New("source: trailing data after JSON value")

// DuplicateKeyError reports a key repeated inside one object.
type DuplicateKeyError struct {
	Pointer string // JSON Pointer of the repeated key.
	Key     string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("source: duplicate key %q at %s", e.Key, e.Pointer)
}

// DepthError reports input nested deeper than WithMaxDepth allows.
type DepthError struct {
	Pointer string
	Max     int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("source: max depth %d exceeded at %s", e.Max, e.Pointer)
}

// JSON decodes a single JSON value from data.
func JSON(data []byte, opts ...Option) (any, error) {
	return JSONReader(bytes.NewReader(data), opts...)
}

// JSONReader decodes a single JSON value from r.
func JSONReader(r io.Reader, opts ...Option) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	d := &decoder{dec: dec, opt: buildOptions(opts)}
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := d.value(tok, nil, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

type decoder struct {
	dec *gojson.Decoder
	opt options
}

func (d *decoder) value(tok gojson.Token, path []string, depth int) (any, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		if d.opt.maxDepth > 0 && depth >= d.opt.maxDepth {
			return nil, &DepthError{Pointer: pointer(path), Max: d.opt.maxDepth}
		}
		switch t {
		case '{':
			return d.object(path, depth+1)
		case '[':
			return d.array(path, depth+1)
		}
		return nil, fmt.Errorf("source: unexpected delimiter %q at %s", rune(t), pointer(path))
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	case json.Number:
		return d.number(string(t))
	case float64:
		return d.number(strconv.FormatFloat(t, 'g', -1, 64))
	}
	return nil, fmt.Errorf("source: unexpected token %T at %s", tok, pointer(path))
}

func (d *decoder) number(lit string) (any, error) {
	if d.opt.numbers == NumberJSON {
		return json.Number(lit), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("source: number %q: %w", lit, err)
	}
	return f, nil
}

func (d *decoder) object(path []string, depth int) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, unexpected(err)
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == '}' {
			return m, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: expected object key at %s", pointer(path))
		}
		child := append(path[:len(path):len(path)], key)
		if _, dup := m[key]; dup && d.opt.dup == DupError {
			return nil, &DuplicateKeyError{Pointer: pointer(child), Key: key}
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, unexpected(err)
		}
		v, err := d.value(vt, child, depth)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
}

func (d *decoder) array(path []string, depth int) (any, error) {
	arr := []any{}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, unexpected(err)
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == ']' {
			return arr, nil
		}
		child := append(path[:len(path):len(path)], strconv.Itoa(len(arr)))
		v, err := d.value(tok, child, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func pointer(parts []string) string {
	if len(parts) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1"))
	}
	return b.String()
}
