package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/docshape/docshape/pkg/document"
	"github.com/docshape/docshape/pkg/model"
)

// Store is an in-memory model.Collection for tests and local development.
// Documents are deep-cloned on the way in and out, so no caller ever holds
// a reference into the store's state. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	docs    map[string]document.Document
	idField string
	err     error
}

// Option configures a Store.
type Option func(*Store)

// WithIDField overrides the document field consulted for an existing
// identifier on upsert. Must match the model's setting.
func WithIDField(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.idField = name
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		docs:    make(map[string]document.Document),
		idField: "_id",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailWith makes every subsequent operation return err; nil restores normal
// behavior. Tests use it to simulate store-level failures.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// InsertOrUpdate stores a copy of doc. A document without an identifier is
// assigned a random one; a document carrying an identifier replaces
// whatever is stored under it.
func (s *Store) InsertOrUpdate(ctx context.Context, doc document.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}

	id, _ := doc[s.idField].(string)
	if id == "" {
		id = uuid.NewString()
	}
	stored := document.Clone(doc)
	stored[s.idField] = id
	s.docs[id] = stored
	return id, nil
}

// FindByID returns a copy of the document stored under id, or
// model.ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id string) (document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}

	doc, ok := s.docs[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return document.Clone(doc), nil
}

// DeleteByID removes the document stored under id, or reports
// model.ErrNotFound.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	if _, ok := s.docs[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// Len reports how many documents the store holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
