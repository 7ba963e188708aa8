package schema

import (
	"context"
	"fmt"
	"sort"

	"github.com/docshape/docshape/pkg/document"
)

// Hook runs at a lifecycle event with the in-flight document view. Returning
// a non-nil error aborts the remainder of the pipeline for that event.
type Hook func(ctx context.Context, doc document.Document) error

// Virtual is a computed field: a getter deriving a value from the document
// and an optional setter writing an incoming value back into the literal
// fields it affects. Getters must be side-effect-free and idempotent; the
// accessor layer may call them any number of times. Virtuals are never
// walked by the validation engine.
type Virtual struct {
	Get func(doc document.Document) any
	Set func(doc document.Document, v any) error
}

// Schema is an immutable tree of field declarations plus the registries for
// virtual fields and lifecycle hooks. Build one with New, register virtuals
// and hooks during setup, then share it freely: validation only ever reads
// the schema, so concurrent use is safe once registration is done.
type Schema struct {
	fields   Fields
	order    []string
	virtuals map[string]Virtual
	pre      map[string][]Hook
	post     map[string][]Hook
}

// New builds a Schema from field declarations. The optional order lists
// field names in the order validation should walk them (and therefore the
// order error trees are keyed in); names left out of the order are appended
// alphabetically. New fails with a *StructuralError on a nil or unknown
// field type, an order entry that names no field, or a cyclic nesting.
func New(fields Fields, order ...string) (*Schema, error) {
	s := &Schema{
		fields:   make(Fields, len(fields)),
		virtuals: make(map[string]Virtual),
		pre:      make(map[string][]Hook),
		post:     make(map[string][]Hook),
	}
	for name, f := range fields {
		s.fields[name] = f
	}

	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if _, ok := s.fields[name]; !ok {
			return nil, &StructuralError{Field: name, Reason: "ordered name is not a declared field"}
		}
		if seen[name] {
			return nil, &StructuralError{Field: name, Reason: "duplicate name in field order"}
		}
		seen[name] = true
		s.order = append(s.order, name)
	}
	var rest []string
	for name := range s.fields {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	s.order = append(s.order, rest...)

	for _, name := range s.order {
		if err := checkType(name, s.fields[name].Type, map[*Schema]bool{s: true}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew is New for statically-declared schemas; it panics on a
// StructuralError.
func MustNew(fields Fields, order ...string) *Schema {
	s, err := New(fields, order...)
	if err != nil {
		panic(err)
	}
	return s
}

// checkType rejects nil and foreign field types and walks nested schemas
// with the current recursion path, so a self-referential schema fails fast
// at build time instead of looping during validation.
func checkType(name string, t FieldType, path map[*Schema]bool) error {
	switch ft := t.(type) {
	case Scalar:
		if ft.kind() == document.KindInvalid {
			return &StructuralError{Field: name, Reason: fmt.Sprintf("unknown scalar kind %d", ft)}
		}
	case *Schema:
		if ft == nil {
			return &StructuralError{Field: name, Reason: "nil nested schema"}
		}
		if path[ft] {
			return &StructuralError{Field: name, Reason: "cyclic schema nesting"}
		}
		path[ft] = true
		for _, sub := range ft.order {
			if err := checkType(document.Child(name, sub), ft.fields[sub].Type, path); err != nil {
				return err
			}
		}
		delete(path, ft)
	case Array:
		if ft.Elem == nil {
			return &StructuralError{Field: name, Reason: "array field has no element type"}
		}
		return checkType(name, ft.Elem, path)
	case Mixed:
		if len(ft.members) < 2 {
			return &StructuralError{Field: name, Reason: "mixed type requires at least two members"}
		}
		for _, member := range ft.members {
			if err := checkType(name, member, path); err != nil {
				return err
			}
		}
	case nil:
		return &StructuralError{Field: name, Reason: "missing field type"}
	default:
		return &StructuralError{Field: name, Reason: fmt.Sprintf("unsupported field type %T", t)}
	}
	return nil
}

// Virtual registers a computed field. The name must not collide with a
// literal field or an already-registered virtual; getter is mandatory,
// setter may be nil for a read-only virtual.
func (s *Schema) Virtual(name string, getter func(document.Document) any, setter func(document.Document, any) error) error {
	if getter == nil {
		return &StructuralError{Field: name, Reason: "virtual requires a getter"}
	}
	if _, ok := s.fields[name]; ok {
		return &StructuralError{Field: name, Reason: "virtual name collides with a literal field"}
	}
	if _, ok := s.virtuals[name]; ok {
		return &StructuralError{Field: name, Reason: "virtual already registered"}
	}
	s.virtuals[name] = Virtual{Get: getter, Set: setter}
	return nil
}

// LookupVirtual returns the virtual registered under name, if any.
func (s *Schema) LookupVirtual(name string) (Virtual, bool) {
	v, ok := s.virtuals[name]
	return v, ok
}

// Pre appends hooks to run before the given lifecycle event, in registration
// order.
func (s *Schema) Pre(event string, hooks ...Hook) {
	s.pre[event] = append(s.pre[event], hooks...)
}

// Post appends hooks to run after the given lifecycle event, in registration
// order.
func (s *Schema) Post(event string, hooks ...Hook) {
	s.post[event] = append(s.post[event], hooks...)
}

// PreHooks returns the pre-event hook chain in registration order.
func (s *Schema) PreHooks(event string) []Hook {
	return s.pre[event]
}

// PostHooks returns the post-event hook chain in registration order.
func (s *Schema) PostHooks(event string) []Hook {
	return s.post[event]
}

// FieldNames returns the field names in walk order.
func (s *Schema) FieldNames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// LookupField returns the declaration of the named literal field.
func (s *Schema) LookupField(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}
