package schema

import "github.com/docshape/docshape/pkg/validator"

// Field declares one field of a schema: its type, whether a value must be
// present after default resolution, an optional default, and the validators
// run against present, type-correct values.
//
// Nullable permits an explicit null as a stored value. Null is distinct from
// absence: a required nullable field rejects a missing key but accepts null,
// and an explicit null never triggers default resolution.
type Field struct {
	Type     FieldType
	Required bool
	Nullable bool
	Default  *Default
	Validate []validator.Validator
}

// Fields maps field names to their declarations.
type Fields map[string]Field

// Default is a tagged variant: either a literal value materialized as-is, or
// a zero-argument producer invoked fresh on every resolution. Producers are
// never memoized, so time-varying defaults such as "now" are correct per
// save.
type Default struct {
	literal  any
	producer func() any
}

// Literal declares a fixed default value.
func Literal(v any) *Default {
	return &Default{literal: v}
}

// Producer declares a default computed at resolution time.
func Producer(fn func() any) *Default {
	return &Default{producer: fn}
}

func (d *Default) resolve() any {
	if d.producer != nil {
		return d.producer()
	}
	return d.literal
}
