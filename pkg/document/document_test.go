package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshape/docshape/pkg/document"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	t.Run("scalar kinds", func(t *testing.T) {
		assert.Equal(t, document.KindString, document.KindOf("hello"))
		assert.Equal(t, document.KindInt, document.KindOf(42))
		assert.Equal(t, document.KindInt, document.KindOf(int32(42)))
		assert.Equal(t, document.KindInt64, document.KindOf(int64(42)))
		assert.Equal(t, document.KindFloat, document.KindOf(3.14))
		assert.Equal(t, document.KindFloat, document.KindOf(float32(3.14)))
		assert.Equal(t, document.KindBool, document.KindOf(true))
		assert.Equal(t, document.KindDateTime, document.KindOf(time.Now()))
	})

	t.Run("composite kinds", func(t *testing.T) {
		assert.Equal(t, document.KindDocument, document.KindOf(document.Document{}))
		assert.Equal(t, document.KindDocument, document.KindOf(map[string]any{}))
		assert.Equal(t, document.KindList, document.KindOf([]any{1, 2}))
	})

	t.Run("outside the union", func(t *testing.T) {
		assert.Equal(t, document.KindInvalid, document.KindOf(nil))
		assert.Equal(t, document.KindInvalid, document.KindOf(struct{}{}))
		assert.Equal(t, document.KindInvalid, document.KindOf([]string{"a"}))
	})
}

func TestAsDocument(t *testing.T) {
	t.Parallel()

	t.Run("shares underlying storage", func(t *testing.T) {
		raw := map[string]any{"a": 1}
		d, ok := document.AsDocument(raw)
		require.True(t, ok)
		d["b"] = 2
		assert.Equal(t, 2, raw["b"])
	})

	t.Run("rejects non-documents", func(t *testing.T) {
		_, ok := document.AsDocument([]any{1})
		assert.False(t, ok)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("deep copies nested state", func(t *testing.T) {
		orig := document.Document{
			"name": "post",
			"meta": document.Document{"views": 3},
			"tags": []any{"a", map[string]any{"k": "v"}},
		}
		clone := document.Clone(orig)
		require.Equal(t, orig, clone)
		assert.IsType(t, document.Document{}, clone["meta"])
		assert.IsType(t, map[string]any{}, clone["tags"].([]any)[1])

		clone["meta"].(document.Document)["views"] = 99
		clone["tags"].([]any)[0] = "z"
		assert.Equal(t, 3, orig["meta"].(document.Document)["views"])
		assert.Equal(t, "a", orig["tags"].([]any)[0])
	})

	t.Run("nil document clones to empty", func(t *testing.T) {
		clone := document.Clone(nil)
		require.NotNil(t, clone)
		assert.Empty(t, clone)
	})
}

func TestPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "author", document.Child("", "author"))
	assert.Equal(t, "author.first", document.Child("author", "first"))
	assert.Equal(t, "comments[2]", document.Index("comments", 2))
	assert.Equal(t, "comments[0].email", document.Child(document.Index("comments", 0), "email"))
}
