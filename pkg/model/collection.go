package model

import (
	"context"

	"github.com/docshape/docshape/pkg/document"
)

// Collection is the persistence collaborator the model layer delegates
// storage to. Implementations provide simple CRUD keyed by document
// identifier; the model layer never interprets store-level failures, it
// wraps them in *PersistenceError and surfaces them as-is.
//
// InsertOrUpdate persists the document and returns its identifier: the one
// already present in the document, or a newly assigned one for first
// inserts. FindByID returns ErrNotFound (possibly wrapped) for an absent
// identifier.
type Collection interface {
	InsertOrUpdate(ctx context.Context, doc document.Document) (string, error)
	FindByID(ctx context.Context, id string) (document.Document, error)
	DeleteByID(ctx context.Context, id string) error
}
