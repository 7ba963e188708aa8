package schema

import (
	"fmt"

	"github.com/docshape/docshape/pkg/document"
)

// Validate walks the document against the schema and returns nil or a
// *ValidationError carrying every violation found. The walk never stops
// early: all fields, nested documents, and collection elements are visited
// and all failing validators on a field are recorded.
//
// Defaults are materialized into doc before any other check, so a resolved
// default is itself subject to type checking, and the caller observes the
// defaulted document afterwards. An explicit nil value is not absence: it is
// accepted as-is on nullable fields and rejected otherwise, and it never
// resolves a default.
func (s *Schema) Validate(doc document.Document) error {
	ve := newValidationError()
	s.walk(doc, "", ve)
	if ve.empty() {
		return nil
	}
	return ve
}

func (s *Schema) walk(doc document.Document, path string, ve *ValidationError) {
	for _, name := range s.order {
		f := s.fields[name]
		p := document.Child(path, name)

		v, present := doc[name]
		if present && v == nil {
			if !f.Nullable {
				ve.add(p, "must not be null")
			}
			continue
		}
		if !present && f.Default != nil {
			v = f.Default.resolve()
			if v != nil {
				doc[name] = v
				present = true
			}
		}
		if !present {
			if f.Required {
				ve.add(p, "field is required")
			}
			continue
		}

		if !checkValue(f.Type, v, p, ve) {
			continue
		}
		for _, fn := range f.Validate {
			if err := fn(v); err != nil {
				ve.add(p, err.Error())
			}
		}
	}
}

// checkValue type-checks one value against its declared type, recursing into
// nested documents and collection elements. It reports whether the value's
// outer shape matched; validators only run on shape-correct values, though
// inner violations may still have been recorded.
func checkValue(t FieldType, v any, path string, ve *ValidationError) bool {
	switch ft := t.(type) {
	case Scalar:
		if !ft.matches(v) {
			ve.add(path, fmt.Sprintf("must be of type %s, got %s", ft, document.KindOf(v)))
			return false
		}
	case *Schema:
		sub, ok := document.AsDocument(v)
		if !ok {
			ve.add(path, fmt.Sprintf("must be a document, got %s", document.KindOf(v)))
			return false
		}
		ft.walk(sub, path, ve)
	case Array:
		items, ok := v.([]any)
		if !ok {
			ve.add(path, fmt.Sprintf("must be an array, got %s", document.KindOf(v)))
			return false
		}
		for i, el := range items {
			ep := document.Index(path, i)
			if el == nil {
				ve.add(ep, "element must not be null")
				continue
			}
			checkValue(ft.Elem, el, ep, ve)
		}
	case Mixed:
		for _, member := range ft.members {
			if shapeMatches(member, v) {
				return checkValue(member, v, path, ve)
			}
		}
		ve.add(path, fmt.Sprintf("must be of type %s, got %s", ft, document.KindOf(v)))
		return false
	}
	return true
}

// shapeMatches reports whether a value's outer shape fits a type, without
// recording violations. Mixed uses it to pick the member a value belongs to
// before recursing.
func shapeMatches(t FieldType, v any) bool {
	switch ft := t.(type) {
	case Scalar:
		return ft.matches(v)
	case *Schema:
		_, ok := document.AsDocument(v)
		return ok
	case Array:
		_, ok := v.([]any)
		return ok
	case Mixed:
		for _, member := range ft.members {
			if shapeMatches(member, v) {
				return true
			}
		}
	}
	return false
}
