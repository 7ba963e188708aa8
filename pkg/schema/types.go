package schema

import (
	"strings"

	"github.com/docshape/docshape/pkg/document"
)

// FieldType describes the declared type of one field. It is a closed set:
// the scalar kinds below, a nested *Schema, an Array of a FieldType, or a
// Mixed union of FieldTypes.
type FieldType interface {
	fieldType()
	String() string
}

// Scalar is a primitive field kind.
type Scalar int

const (
	String Scalar = iota
	Int
	Int64
	Float
	Bool
	DateTime
)

func (Scalar) fieldType() {}

func (s Scalar) String() string { return s.kind().String() }

// kind maps the scalar to the document value kind it accepts.
func (s Scalar) kind() document.Kind {
	switch s {
	case String:
		return document.KindString
	case Int:
		return document.KindInt
	case Int64:
		return document.KindInt64
	case Float:
		return document.KindFloat
	case Bool:
		return document.KindBool
	case DateTime:
		return document.KindDateTime
	default:
		return document.KindInvalid
	}
}

// matches reports whether a concrete value satisfies the scalar kind.
// An int is also accepted where a long is declared, since the document
// union stores small literals as int.
func (s Scalar) matches(v any) bool {
	k := document.KindOf(v)
	if k == s.kind() {
		return true
	}
	return s == Int64 && k == document.KindInt
}

// Array declares an embedded collection whose every element is validated
// independently against Elem.
type Array struct {
	Elem FieldType
}

// ArrayOf builds an embedded-collection type: ArrayOf(String) for a list of
// strings, ArrayOf(commentSchema) for a list of sub-documents.
func ArrayOf(elem FieldType) Array {
	return Array{Elem: elem}
}

func (Array) fieldType() {}

func (a Array) String() string {
	if a.Elem == nil {
		return "array"
	}
	return "array of " + a.Elem.String()
}

// Mixed declares a union type: a value is accepted when it matches any of
// the member types. Members are tried in declaration order.
type Mixed struct {
	members []FieldType
}

// MixedOf builds a union type. A union of a single type is meaningless, so
// the signature demands at least two members.
func MixedOf(first, second FieldType, rest ...FieldType) Mixed {
	members := make([]FieldType, 0, 2+len(rest))
	members = append(members, first, second)
	members = append(members, rest...)
	return Mixed{members: members}
}

func (Mixed) fieldType() {}

func (m Mixed) String() string {
	names := make([]string, len(m.members))
	for i, t := range m.members {
		if t == nil {
			names[i] = "invalid"
			continue
		}
		names[i] = t.String()
	}
	return strings.Join(names, " or ")
}

func (*Schema) fieldType() {}

func (s *Schema) String() string { return "document" }
