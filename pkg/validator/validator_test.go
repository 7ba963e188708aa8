package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshape/docshape/pkg/validator"
)

func TestComparisons(t *testing.T) {
	t.Parallel()

	t.Run("gte passes at and above the bound", func(t *testing.T) {
		v := validator.GTE(0)
		assert.NoError(t, v(0))
		assert.NoError(t, v(4))
		assert.NoError(t, v(int64(10)))
		assert.NoError(t, v(0.5))
	})

	t.Run("gte fails below the bound with a descriptive message", func(t *testing.T) {
		err := validator.GTE(0)(-1)
		require.Error(t, err)
		assert.Equal(t, "must be >= 0", err.Error())
	})

	t.Run("lte fails above the bound", func(t *testing.T) {
		v := validator.LTE(10)
		assert.NoError(t, v(10))
		assert.EqualError(t, v(11), "must be <= 10")
	})

	t.Run("gt excludes the bound itself", func(t *testing.T) {
		v := validator.GT(5)
		assert.EqualError(t, v(5), "must be > 5")
		assert.NoError(t, v(6))
	})

	t.Run("lt excludes the bound itself", func(t *testing.T) {
		v := validator.LT(5)
		assert.EqualError(t, v(5), "must be < 5")
		assert.NoError(t, v(4))
	})

	t.Run("between is inclusive on both ends", func(t *testing.T) {
		v := validator.Between(1, 3)
		assert.NoError(t, v(1))
		assert.NoError(t, v(3))
		assert.EqualError(t, v(0), "must be between 1 and 3")
		assert.EqualError(t, v(4), "must be between 1 and 3")
	})

	t.Run("non-numeric input reports a type message", func(t *testing.T) {
		assert.EqualError(t, validator.GTE(0)("four"), "must be a number")
	})
}

func TestLength(t *testing.T) {
	t.Parallel()

	t.Run("minimum only", func(t *testing.T) {
		v := validator.Length(1)
		assert.NoError(t, v("a"))
		assert.NoError(t, v([]any{1, 2, 3}))
		assert.EqualError(t, v(""), "length must be >= 1")
		assert.EqualError(t, v([]any{}), "length must be >= 1")
	})

	t.Run("minimum and maximum", func(t *testing.T) {
		v := validator.Length(2, 3)
		assert.NoError(t, v("ab"))
		assert.NoError(t, v("abc"))
		assert.EqualError(t, v("abcd"), "length must be <= 3")
	})

	t.Run("non-sequence input", func(t *testing.T) {
		assert.EqualError(t, validator.Length(1)(42), "must be a string or an array")
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("anchors the pattern to the whole string", func(t *testing.T) {
		v := validator.Match(`[a-z]+`)
		assert.NoError(t, v("abc"))
		assert.Error(t, v("abc1"))
		assert.Error(t, v("1abc"))
	})

	t.Run("reports the pattern in the message", func(t *testing.T) {
		err := validator.Match(`\d{4}`)("12")
		require.Error(t, err)
		assert.Equal(t, `must match pattern "\d{4}"`, err.Error())
	})

	t.Run("invalid pattern panics at declaration time", func(t *testing.T) {
		assert.Panics(t, func() { validator.Match(`(`) })
	})
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	t.Run("accepts members", func(t *testing.T) {
		v := validator.OneOf("cooking", "politics")
		assert.NoError(t, v("cooking"))
		assert.Error(t, v("sports"))
	})

	t.Run("numeric members compare across integer widths", func(t *testing.T) {
		v := validator.OneOf(1, 2, 3)
		assert.NoError(t, v(int64(2)))
		assert.NoError(t, v(3.0))
		assert.Error(t, v(4))
	})

	t.Run("mixed kinds never match each other", func(t *testing.T) {
		v := validator.OneOf(1, "1")
		assert.NoError(t, v("1"))
		assert.NoError(t, v(1))
		assert.Error(t, v(true))
	})
}

func TestCustomValidator(t *testing.T) {
	t.Parallel()

	even := validator.Validator(func(v any) error {
		if n, ok := v.(int); ok && n%2 == 0 {
			return nil
		}
		return assert.AnError
	})
	assert.NoError(t, even(2))
	assert.Error(t, even(3))
}
