package model

import (
	"context"
	"errors"
	"log/slog"

	"github.com/docshape/docshape/pkg/document"
	"github.com/docshape/docshape/pkg/schema"
)

// defaultIDField is where the store-assigned identifier lives in a
// document unless overridden with WithIDField.
const defaultIDField = "_id"

// Model binds a schema to a persistence collection and acts as the factory
// for document instances. A Model is read-only after construction; any
// number of goroutines may create, validate, and save instances through it
// concurrently, since every instance exclusively owns its own document.
type Model struct {
	schema  *schema.Schema
	coll    Collection
	log     *slog.Logger
	idField string
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithLogger sets the structured logger the save pipeline reports to.
// Without it the model is silent.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithIDField overrides the document field holding the store identifier.
func WithIDField(name string) Option {
	return func(m *Model) {
		if name != "" {
			m.idField = name
		}
	}
}

// New builds a Model from a schema and a persistence collection. Every
// instance created through the returned Model shares the same schema and
// collection references.
func New(s *schema.Schema, coll Collection, opts ...Option) *Model {
	m := &Model{
		schema:  s,
		coll:    coll,
		log:     slog.New(slog.DiscardHandler),
		idField: defaultIDField,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Schema returns the schema this model was built from.
func (m *Model) Schema() *schema.Schema { return m.schema }

// NewInstance wraps an initial document in an unpersisted instance. The
// document is deep-cloned, so the caller's map is never shared; nil yields
// an empty document. No validation happens at construction time.
func (m *Model) NewInstance(doc document.Document) *Instance {
	return &Instance{model: m, doc: document.Clone(doc)}
}

// FindByID loads the document stored under id and hydrates an instance.
// Absence surfaces as ErrNotFound; any other store failure is wrapped in a
// *PersistenceError.
func (m *Model) FindByID(ctx context.Context, id string) (*Instance, error) {
	doc, err := m.coll.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "find", Err: err}
	}
	in := &Instance{model: m, doc: document.Clone(doc)}
	in.doc[m.idField] = id
	return in, nil
}
