package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshape/docshape/pkg/document"
	"github.com/docshape/docshape/pkg/model"
	"github.com/docshape/docshape/pkg/redisstore"
	"github.com/docshape/docshape/pkg/schema"
)

func mustCarSchema(t *testing.T) *schema.Schema {
	t.Helper()
	return schema.MustNew(schema.Fields{
		"name":   {Type: schema.String, Required: true},
		"wheels": {Type: schema.Int, Default: schema.Literal(4)},
	}, "name", "wheels")
}

func newStore(t *testing.T, opts ...redisstore.Option) *redisstore.Store {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.New(client, opts...)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("every kind survives the wire format", func(t *testing.T) {
		s := newStore(t)
		when := time.Date(2012, 4, 5, 10, 30, 0, 0, time.UTC)
		in := document.Document{
			"name":    "Brum",
			"wheels":  4,
			"mileage": int64(1 << 40),
			"ratio":   0.25,
			"whole":   4.0,
			"active":  true,
			"created": when,
			"meta":    document.Document{"views": 3},
			"tags":    []any{"blog", 7},
		}

		id, err := s.InsertOrUpdate(ctx, in)
		require.NoError(t, err)

		out, err := s.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Brum", out["name"])
		assert.Equal(t, 4, out["wheels"])
		assert.Equal(t, int64(1<<40), out["mileage"])
		assert.Equal(t, 0.25, out["ratio"])
		assert.Equal(t, 4.0, out["whole"])
		assert.Equal(t, document.KindFloat, document.KindOf(out["whole"]))
		assert.Equal(t, true, out["active"])
		assert.Equal(t, when, out["created"])
		assert.Equal(t, document.Document{"views": 3}, out["meta"])
		assert.Equal(t, []any{"blog", 7}, out["tags"])
	})

	t.Run("upsert replaces under the same identifier", func(t *testing.T) {
		s := newStore(t)
		id, err := s.InsertOrUpdate(ctx, document.Document{"name": "a"})
		require.NoError(t, err)

		again, err := s.InsertOrUpdate(ctx, document.Document{"_id": id, "name": "b"})
		require.NoError(t, err)
		assert.Equal(t, id, again)

		out, err := s.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "b", out["name"])
	})
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	_, err := s.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newStore(t)
	id, err := s.InsertOrUpdate(ctx, document.Document{"name": "x"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(ctx, id))
	assert.ErrorIs(t, s.DeleteByID(ctx, id), model.ErrNotFound)
}

func TestModelIntegration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sch := mustCarSchema(t)
	s := newStore(t, redisstore.WithKeyPrefix("cars"))
	cars := model.New(sch, s)

	in := cars.NewInstance(document.Document{"name": "Brum"})
	require.NoError(t, in.Save(ctx))

	found, err := cars.FindByID(ctx, in.ID())
	require.NoError(t, err)
	assert.Equal(t, "Brum", found.Get("name"))
	assert.Equal(t, 4, found.Get("wheels"))
	require.NoError(t, found.Delete(ctx))

	_, err = cars.FindByID(ctx, in.ID())
	assert.ErrorIs(t, err, model.ErrNotFound)
}
