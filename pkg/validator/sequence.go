package validator

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

var (
	errNotSequence = errors.New("must be a string or an array")
	errNotString   = errors.New("must be a string")
)

// Length fails unless the value's length is at least min and, when a max is
// given, at most max. It applies to strings and arrays; anything else fails
// with a type message (the engine only reaches a validator after the value
// passed its declared type check, so this path signals a schema
// misconfiguration rather than bad data).
func Length(min int, max ...int) Validator {
	return func(v any) error {
		var n int
		switch s := v.(type) {
		case string:
			n = len(s)
		case []any:
			n = len(s)
		default:
			return errNotSequence
		}
		if n < min {
			return fmt.Errorf("length must be >= %d", min)
		}
		if len(max) > 0 && n > max[0] {
			return fmt.Errorf("length must be <= %d", max[0])
		}
		return nil
	}
}

// Match fails unless the string value matches pattern as a full-string
// regular expression. The pattern is compiled once when the schema is
// declared; an invalid pattern is a programming error and panics immediately
// so misconfiguration prevents startup instead of surfacing per document.
func Match(pattern string) Validator {
	re := regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return errNotString
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match pattern %q", pattern)
		}
		return nil
	}
}

// OneOf fails unless the value is equal to one of the given literals.
// Numeric literals compare by magnitude so OneOf(1, 2) accepts int64(2).
func OneOf(values ...any) Validator {
	return func(v any) error {
		if slices.ContainsFunc(values, func(allowed any) bool {
			return literalEqual(v, allowed)
		}) {
			return nil
		}
		return fmt.Errorf("must be one of %v", values)
	}
}

func literalEqual(a, b any) bool {
	an, aok := numeric(a)
	bn, bok := numeric(b)
	if aok && bok {
		return an == bn
	}
	if aok != bok {
		return false
	}
	return a == b
}
