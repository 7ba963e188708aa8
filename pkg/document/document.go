package document

import (
	"fmt"
	"time"
)

// Document is the in-memory representation of one stored record: a mapping
// from field name to value. Values are restricted to the kinds enumerated by
// Kind; anything else is reported as KindInvalid during validation rather
// than being rejected here, so a Document can be built from arbitrary input
// and checked afterwards.
type Document map[string]any

// Kind identifies which member of the document value union a Go value
// belongs to.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindInt64
	KindFloat
	KindBool
	KindDateTime
	KindDocument
	KindList
)

// String returns the type tag used in error messages and schema declarations.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "long"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindDocument:
		return "document"
	case KindList:
		return "array"
	default:
		return "invalid"
	}
}

// KindOf performs the structural match over the value union. Plain int and
// int32 normalize to KindInt, int64 to KindInt64; both map[string]any and
// Document report KindDocument.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int, int32:
		return KindInt
	case int64:
		return KindInt64
	case float32, float64:
		return KindFloat
	case bool:
		return KindBool
	case time.Time:
		return KindDateTime
	case Document, map[string]any:
		return KindDocument
	case []any:
		return KindList
	default:
		return KindInvalid
	}
}

// AsDocument reports whether v is document-shaped and returns it as a
// Document sharing the same underlying map, so mutations (for example
// materialized defaults) are visible through the original value.
func AsDocument(v any) (Document, bool) {
	switch d := v.(type) {
	case Document:
		return d, true
	case map[string]any:
		return Document(d), true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of d. Nested documents and lists are copied
// recursively; scalar values are copied by assignment. A nil receiver yields
// an empty, non-nil Document so callers can mutate the result freely.
func Clone(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue preserves the concrete type of nested values: a map[string]any
// stays a map[string]any, a Document stays a Document.
func cloneValue(v any) any {
	switch val := v.(type) {
	case Document:
		return Clone(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, el := range val {
			out[k] = cloneValue(el)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			out[i] = cloneValue(el)
		}
		return out
	default:
		return v
	}
}

// Child appends a field name to a dotted path. An empty base path yields the
// bare name.
func Child(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// Index appends a collection index to a path, producing "field[2]" style
// segments used for per-element error attribution.
func Index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
