package zskema

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an ordered list of segments locating a value inside a nested input.
// Each segment is either a string (object key) or an int (array/tuple index).
// The root path is empty.
type Path []any

// Root returns the empty path.
func Root() Path { return nil }

// Key returns a new path extended with an object key. The receiver is never
// modified, so sibling descents can share a parent path safely.
func (p Path) Key(name string) Path { return p.extend(name) }

// Index returns a new path extended with an array index.
func (p Path) Index(i int) Path { return p.extend(i) }

func (p Path) extend(seg any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// Concat returns a new path made of p followed by rel.
func (p Path) Concat(rel Path) Path {
	if len(rel) == 0 {
		return p
	}
	out := make(Path, 0, len(p)+len(rel))
	out = append(out, p...)
	return append(out, rel...)
}

// String renders the path with dotted keys and bracketed indices, e.g.
// "items[2].price". The root path renders as "".
func (p Path) String() string {
	b := &strings.Builder{}
	for i, seg := range p {
		switch s := seg.(type) {
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s))
			b.WriteByte(']')
		case string:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s)
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(b, s)
		}
	}
	return b.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer ("/" for the root).
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case int:
			b.WriteString(strconv.Itoa(s))
		case string:
			// escape '~' -> '~0', '/' -> '~1'
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
		default:
			fmt.Fprint(b, s)
		}
	}
	return b.String()
}

// Equal reports whether two paths have the same segments.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// ParsePointer splits a JSON Pointer into a Path. Segments made only of
// digits become indices. "" and "/" yield the root path.
func ParsePointer(ptr string) Path {
	if ptr == "" || ptr == "/" {
		return nil
	}
	var out Path
	for _, part := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		if part == "" {
			continue
		}
		if i, err := strconv.Atoi(part); err == nil && i >= 0 {
			out = append(out, i)
			continue
		}
		out = append(out, strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~"))
	}
	return out
}
