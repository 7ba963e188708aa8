package validator

import (
	"errors"
	"fmt"
)

// Validator checks a single field value. A nil return means the value passed;
// a non-nil error carries the human-readable violation message. Custom
// validators are any function with this signature; the engine treats them
// identically to the factories in this package.
type Validator func(value any) error

// numeric widens any member of the document value union that supports
// ordering into float64. Validators that compare magnitudes use it so one
// factory covers int, long, and float fields alike.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

var errNotANumber = errors.New("must be a number")

// GTE fails unless the value is greater than or equal to bound.
func GTE(bound float64) Validator {
	return func(v any) error {
		n, ok := numeric(v)
		if !ok {
			return errNotANumber
		}
		if n < bound {
			return fmt.Errorf("must be >= %v", bound)
		}
		return nil
	}
}

// LTE fails unless the value is less than or equal to bound.
func LTE(bound float64) Validator {
	return func(v any) error {
		n, ok := numeric(v)
		if !ok {
			return errNotANumber
		}
		if n > bound {
			return fmt.Errorf("must be <= %v", bound)
		}
		return nil
	}
}

// GT fails unless the value is strictly greater than bound.
func GT(bound float64) Validator {
	return func(v any) error {
		n, ok := numeric(v)
		if !ok {
			return errNotANumber
		}
		if n <= bound {
			return fmt.Errorf("must be > %v", bound)
		}
		return nil
	}
}

// LT fails unless the value is strictly less than bound.
func LT(bound float64) Validator {
	return func(v any) error {
		n, ok := numeric(v)
		if !ok {
			return errNotANumber
		}
		if n >= bound {
			return fmt.Errorf("must be < %v", bound)
		}
		return nil
	}
}

// Between fails unless min <= value <= max.
func Between(min, max float64) Validator {
	return func(v any) error {
		n, ok := numeric(v)
		if !ok {
			return errNotANumber
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %v and %v", min, max)
		}
		return nil
	}
}
