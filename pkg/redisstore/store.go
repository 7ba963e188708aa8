package redisstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/docshape/docshape/pkg/document"
	"github.com/docshape/docshape/pkg/model"
)

// Store implements model.Collection over Redis. Each document is one JSON
// value at "<prefix>:<id>"; identifiers are string uuids assigned on first
// insert. Safe for concurrent use, as the client is.
type Store struct {
	client  *redis.Client
	prefix  string
	idField string
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides the key namespace (default "doc").
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithIDField overrides the document field carrying the identifier. Must
// match the model's setting.
func WithIDField(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.idField = name
		}
	}
}

// New wraps a connected Redis client.
func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{client: client, prefix: "doc", idField: "_id"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(id string) string {
	return s.prefix + ":" + id
}

func (s *Store) InsertOrUpdate(ctx context.Context, doc document.Document) (string, error) {
	id, _ := doc[s.idField].(string)
	if id == "" {
		id = uuid.NewString()
	}
	stored := document.Clone(doc)
	delete(stored, s.idField)

	payload, err := encode(stored)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(id), payload, 0).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (document.Document, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return decode(payload)
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
